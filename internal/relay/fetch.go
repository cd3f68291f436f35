package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"imagestudio/internal/imagedata"
)

// maxSourceBytes bounds how much of a remote edit source we will read.
const maxSourceBytes = 10 << 20

// SourceFetcher downloads a remote image referenced by URL so it can be sent
// upstream as inline bytes.
type SourceFetcher struct {
	client *http.Client
}

// NewSourceFetcher builds a fetcher with a bounded request timeout.
func NewSourceFetcher(timeout time.Duration) *SourceFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SourceFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads url and returns its bytes with a MIME type. The declared
// Content-Type is trusted when it is an image type; otherwise the type is
// sniffed from the payload.
func (f *SourceFetcher) Fetch(ctx context.Context, url string) (imagedata.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return imagedata.Payload{}, fmt.Errorf("build source request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return imagedata.Payload{}, fmt.Errorf("fetch source image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return imagedata.Payload{}, fmt.Errorf("fetch source image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes+1))
	if err != nil {
		return imagedata.Payload{}, fmt.Errorf("read source image: %w", err)
	}
	if len(data) > maxSourceBytes {
		return imagedata.Payload{}, fmt.Errorf("source image exceeds %d bytes", maxSourceBytes)
	}
	if len(data) == 0 {
		return imagedata.Payload{}, fmt.Errorf("source image is empty")
	}

	mime := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if !strings.HasPrefix(mime, "image/") {
		mime = imagedata.DetectMIMEType(data)
	}
	return imagedata.NewInline(mime, data), nil
}
