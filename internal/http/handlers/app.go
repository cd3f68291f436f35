// Package handlers implements the HTTP API surface.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"imagestudio/internal/i18n"
	"imagestudio/internal/imagedata"
	"imagestudio/internal/infra"
	"imagestudio/internal/middleware"
	"imagestudio/internal/relay"
)

// ImageRelay is the upstream dependency of the image endpoints. It is nil
// when no credential is configured; handlers answer with a configuration
// error in that case instead of failing at startup.
type ImageRelay interface {
	Generate(ctx context.Context, prompt string) (imagedata.Payload, error)
	Edit(ctx context.Context, source imagedata.Payload, instruction string) (imagedata.Payload, error)
	Model() string
}

// App bundles the dependencies the handlers share.
type App struct {
	Config *infra.Config
	Log    infra.Logger
	Relay  ImageRelay
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the localized message for key as the API's error shape.
func writeError(w http.ResponseWriter, r *http.Request, status int, key string) {
	locale := middleware.LocaleFromContext(r.Context())
	writeJSON(w, status, map[string]string{"error": i18n.T(locale, key)})
}

// writeErrorMessage emits a raw, already-final message. Used for upstream
// failures we could not classify, whose text is passed through verbatim.
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// relayErrorKey picks the message key for a relay failure. The edit flag
// switches between the generate- and edit-specific copy where the catalog
// distinguishes them.
func relayErrorKey(err error, edit bool) string {
	switch {
	case errors.Is(err, relay.ErrPromptEmpty):
		return i18n.KeyPromptEmpty
	case errors.Is(err, relay.ErrPromptTooLong):
		return i18n.KeyPromptTooLong
	case errors.Is(err, relay.ErrInstructionEmpty):
		return i18n.KeyEditPromptEmpty
	case errors.Is(err, relay.ErrInstructionTooLong):
		return i18n.KeyEditPromptTooLong
	case errors.Is(err, relay.ErrSourceFetch):
		return i18n.KeySourceFetchFailed
	case errors.Is(err, relay.ErrSourceInvalid),
		errors.Is(err, imagedata.ErrUnsupportedMIMEType),
		errors.Is(err, imagedata.ErrTooLarge),
		errors.Is(err, imagedata.ErrEmpty):
		return i18n.KeyInvalidImageData
	}

	switch relay.KindOf(err) {
	case relay.KindConfiguration:
		return i18n.KeyMissingCredential
	case relay.KindAuth:
		return i18n.KeyInvalidCredential
	case relay.KindRateLimited:
		return i18n.KeyRateLimited
	case relay.KindPolicyRejected:
		return i18n.KeyPolicyRejected
	case relay.KindNoImage:
		if edit {
			return i18n.KeyNoImageEdited
		}
		return i18n.KeyNoImageGenerated
	}
	if edit {
		return i18n.KeyEditFailed
	}
	return i18n.KeyGenerateFailed
}

// writeRelayError maps a relay failure onto the response contract. Known
// kinds answer with localized copy; unknown upstream failures keep their raw
// message and get logged for diagnosis.
func (a *App) writeRelayError(w http.ResponseWriter, r *http.Request, err error, edit bool) {
	kind := relay.KindOf(err)
	status := relay.HTTPStatus(kind)

	if kind == relay.KindUnknown {
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("unclassified upstream failure")
		var re *relay.Error
		if errors.As(err, &re) && re.Message != "" {
			writeErrorMessage(w, status, re.Message)
			return
		}
		writeErrorMessage(w, status, err.Error())
		return
	}

	writeError(w, r, status, relayErrorKey(err, edit))
}

// decodeJSON reads a JSON body into dst, distinguishing oversized bodies
// from malformed ones only in the log.
func (a *App) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.Log.Warn().Str("path", r.URL.Path).Int64("limit", maxErr.Limit).Msg("request body over limit")
		}
		writeError(w, r, http.StatusBadRequest, i18n.KeyInvalidPayload)
		return false
	}
	return true
}
