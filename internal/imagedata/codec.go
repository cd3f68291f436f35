// Package imagedata implements the image payload model and the conversions
// between data URIs, raw bytes, and base64 transport form.
package imagedata

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultMIMEType is assumed whenever the provider or a data URI omits one.
const DefaultMIMEType = "image/png"

// MaxUploadBytes caps user-supplied source images, matching the edit
// endpoint's body limit.
const MaxUploadBytes = 10 << 20

var (
	ErrNotDataURI          = errors.New("imagedata: not a data URI")
	ErrUnsupportedRef      = errors.New("imagedata: unsupported image reference")
	ErrUnsupportedMIMEType = errors.New("imagedata: unsupported image type")
	ErrTooLarge            = errors.New("imagedata: image exceeds size limit")
	ErrEmpty               = errors.New("imagedata: empty image data")
)

// acceptedTypes lists the upload formats the relay forwards to the provider.
var acceptedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

// Payload is an image held either inline (MIME type plus bytes) or as a
// remote http(s) reference. Exactly one variant is populated.
type Payload struct {
	mime string
	data []byte
	url  string
}

// NewInline builds an inline payload. An empty MIME type defaults to PNG.
func NewInline(mimeType string, data []byte) Payload {
	if strings.TrimSpace(mimeType) == "" {
		mimeType = DefaultMIMEType
	}
	return Payload{mime: mimeType, data: data}
}

// NewRemote builds a payload referencing image bytes by URL.
func NewRemote(url string) Payload {
	return Payload{url: url}
}

// Inline reports whether the payload carries bytes directly.
func (p Payload) Inline() bool { return p.url == "" && len(p.data) > 0 }

// Remote reports whether the payload references bytes by URL.
func (p Payload) Remote() bool { return p.url != "" }

// MIMEType returns the inline MIME type; empty for remote payloads.
func (p Payload) MIMEType() string { return p.mime }

// Bytes returns the inline image bytes; nil for remote payloads.
func (p Payload) Bytes() []byte { return p.data }

// URL returns the remote reference; empty for inline payloads.
func (p Payload) URL() string { return p.url }

// DataURI encodes an inline payload as a data URI. Remote payloads return
// their URL unchanged so callers can hand either form to an <img> source.
func (p Payload) DataURI() string {
	if p.Remote() {
		return p.url
	}
	return fmt.Sprintf("data:%s;base64,%s", p.mime, base64.StdEncoding.EncodeToString(p.data))
}

// IsDataURI reports whether s looks like an inline image data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

// IsHTTPURL reports whether s is an http or https reference.
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ParseDataURI decodes a data URI into an inline payload. The base64 payload
// is decoded eagerly so a corrupt string fails here instead of at the
// provider.
func ParseDataURI(s string) (Payload, error) {
	if !strings.HasPrefix(s, "data:") {
		return Payload{}, ErrNotDataURI
	}
	header, encoded, ok := strings.Cut(s, ",")
	if !ok {
		return Payload{}, ErrNotDataURI
	}
	meta := strings.TrimPrefix(header, "data:")
	mimeType := meta
	if idx := strings.Index(meta, ";"); idx >= 0 {
		mimeType = meta[:idx]
	}
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("imagedata: decode base64: %w", err)
	}
	if len(data) == 0 {
		return Payload{}, ErrEmpty
	}
	return Payload{mime: mimeType, data: data}, nil
}

// FromString turns a client-supplied image reference into a payload:
// data URIs become inline payloads, http(s) URLs become remote references,
// anything else is rejected.
func FromString(s string) (Payload, error) {
	s = strings.TrimSpace(s)
	switch {
	case IsDataURI(s):
		return ParseDataURI(s)
	case IsHTTPURL(s):
		return NewRemote(s), nil
	default:
		return Payload{}, ErrUnsupportedRef
	}
}

// DetectMIMEType sniffs the MIME type from raw bytes.
func DetectMIMEType(data []byte) string {
	return http.DetectContentType(data)
}

// ValidateUpload checks a source image against the accepted formats and the
// size cap before it is relayed.
func ValidateUpload(mimeType string, size int) error {
	if size <= 0 {
		return ErrEmpty
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	if _, ok := acceptedTypes[strings.ToLower(strings.TrimSpace(mimeType))]; !ok {
		return ErrUnsupportedMIMEType
	}
	return nil
}
