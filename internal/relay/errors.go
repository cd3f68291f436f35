package relay

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Kind buckets relay failures so the HTTP layer can pick a status code and a
// localized message without inspecting provider error text itself.
type Kind int

const (
	// KindUnknown is an upstream failure we could not classify. Its raw
	// message is surfaced to the caller verbatim.
	KindUnknown Kind = iota
	// KindConfiguration means the relay is missing its credential or model.
	KindConfiguration
	// KindInvalidInput means the caller's prompt or source image failed
	// validation before any upstream call was made.
	KindInvalidInput
	// KindAuth means the upstream rejected our credential.
	KindAuth
	// KindRateLimited means the upstream throttled or exhausted quota.
	KindRateLimited
	// KindPolicyRejected means the upstream's safety policy refused the
	// request content.
	KindPolicyRejected
	// KindNoImage means the upstream answered successfully but returned no
	// image data in any candidate.
	KindNoImage
)

// Error is the single error type the relay returns. Message is safe to show
// to end users; Err retains the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from any error produced by this package.
// Non-relay errors classify as KindUnknown.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// HTTPStatus maps a failure kind to the response status the API contract
// promises for it.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindPolicyRejected:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// classifyUpstream turns a raw provider error into a relay Error. Structured
// API status codes are checked first; the message substring scan is a
// fallback for transport-level and wrapped errors that carry no code.
func classifyUpstream(err error) *Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newError(KindAuth, apiErr.Message, err)
		case http.StatusTooManyRequests:
			return newError(KindRateLimited, apiErr.Message, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "permission"):
		return newError(KindAuth, err.Error(), err)
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "limit"):
		return newError(KindRateLimited, err.Error(), err)
	case strings.Contains(msg, "safety") || strings.Contains(msg, "policy") ||
		strings.Contains(msg, "blocked"):
		return newError(KindPolicyRejected, err.Error(), err)
	}
	return newError(KindUnknown, err.Error(), err)
}
