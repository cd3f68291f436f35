package imagedata

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantData []byte
		wantErr  error
	}{
		{
			name:     "png payload",
			input:    "data:image/png;base64,AAAA",
			wantMIME: "image/png",
			wantData: []byte{0, 0, 0},
		},
		{
			name:     "jpeg payload",
			input:    "data:image/jpeg;base64,aGVsbG8=",
			wantMIME: "image/jpeg",
			wantData: []byte("hello"),
		},
		{
			name:    "missing comma",
			input:   "data:image/png;base64",
			wantErr: ErrNotDataURI,
		},
		{
			name:    "not a data uri",
			input:   "https://example.com/a.png",
			wantErr: ErrNotDataURI,
		},
		{
			name:    "empty payload",
			input:   "data:image/png;base64,",
			wantErr: ErrEmpty,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseDataURI(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error mismatch: got %v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.MIMEType() != tc.wantMIME {
				t.Fatalf("MIME mismatch: got %q want %q", p.MIMEType(), tc.wantMIME)
			}
			if !bytes.Equal(p.Bytes(), tc.wantData) {
				t.Fatalf("data mismatch: got %v want %v", p.Bytes(), tc.wantData)
			}
		})
	}
}

func TestParseDataURIRejectsCorruptBase64(t *testing.T) {
	if _, err := ParseDataURI("data:image/png;base64,!!!"); err == nil {
		t.Fatal("expected error for corrupt base64")
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 1, 2, 3},
		[]byte("arbitrary-binary\x00\xff\xfe"),
		bytes.Repeat([]byte{0xAB}, 1024),
	}
	for _, data := range payloads {
		original := NewInline("image/webp", data)
		decoded, err := ParseDataURI(original.DataURI())
		if err != nil {
			t.Fatalf("round trip parse failed: %v", err)
		}
		if decoded.MIMEType() != "image/webp" {
			t.Fatalf("MIME changed in round trip: %q", decoded.MIMEType())
		}
		if !bytes.Equal(decoded.Bytes(), data) {
			t.Fatal("bytes changed in round trip")
		}
	}
}

func TestDataURIScenario(t *testing.T) {
	// Provider returning raw bytes {0,0,0} must surface as base64 "AAAA".
	p := NewInline("image/png", []byte{0, 0, 0})
	if got := p.DataURI(); got != "data:image/png;base64,AAAA" {
		t.Fatalf("DataURI mismatch: got %q", got)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantInline bool
		wantRemote bool
		wantErr    bool
	}{
		{name: "data uri", input: "data:image/png;base64,AAAA", wantInline: true},
		{name: "http url", input: "http://example.com/x.png", wantRemote: true},
		{name: "https url", input: "https://example.com/x.png", wantRemote: true},
		{name: "plain text", input: "a red bicycle", wantErr: true},
		{name: "file url", input: "file:///tmp/x.png", wantErr: true},
		{name: "non-image data uri", input: "data:text/plain;base64,aGk=", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := FromString(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Inline() != tc.wantInline || p.Remote() != tc.wantRemote {
				t.Fatalf("variant mismatch: inline=%v remote=%v", p.Inline(), p.Remote())
			}
		})
	}
}

func TestPayloadVariantsAreExclusive(t *testing.T) {
	inline := NewInline("", []byte{1})
	if inline.MIMEType() != DefaultMIMEType {
		t.Fatalf("default MIME mismatch: %q", inline.MIMEType())
	}
	if inline.Remote() {
		t.Fatal("inline payload must not be remote")
	}
	remote := NewRemote("https://example.com/a.png")
	if remote.Inline() {
		t.Fatal("remote payload must not be inline")
	}
	if remote.DataURI() != "https://example.com/a.png" {
		t.Fatalf("remote DataURI mismatch: %q", remote.DataURI())
	}
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload("image/png", 100); err != nil {
		t.Fatalf("png should be accepted: %v", err)
	}
	if err := ValidateUpload("image/webp", 100); err != nil {
		t.Fatalf("webp should be accepted: %v", err)
	}
	if err := ValidateUpload("text/html", 100); !errors.Is(err, ErrUnsupportedMIMEType) {
		t.Fatalf("html should be rejected, got %v", err)
	}
	if err := ValidateUpload("image/png", MaxUploadBytes+1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("oversized upload should be rejected, got %v", err)
	}
	if err := ValidateUpload("image/png", 0); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty upload should be rejected, got %v", err)
	}
}

func TestDetectMIMEType(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	if got := DetectMIMEType(png); got != "image/png" {
		t.Fatalf("DetectMIMEType mismatch: got %q", got)
	}
	if got := DetectMIMEType([]byte("plain text content")); strings.HasPrefix(got, "image/") {
		t.Fatalf("text sniffed as image: %q", got)
	}
}
