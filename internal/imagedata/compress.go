package imagedata

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// RecompressQuality is the JPEG quality used when shrinking oversized
// edit sources before they are relayed inline.
const RecompressQuality = 80

// CompressToJPEG re-encodes image data (PNG, GIF, JPEG, WebP) as JPEG at the
// given quality.
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShrinkForRelay returns the source unchanged while it fits maxBytes and
// otherwise recompresses it to JPEG. A source that cannot be decoded passes
// through untouched; the provider is the authority on whether it can consume
// the bytes.
func ShrinkForRelay(data []byte, mimeType string, maxBytes int) ([]byte, string) {
	if maxBytes <= 0 || len(data) <= maxBytes {
		return data, mimeType
	}
	compressed, err := CompressToJPEG(data, RecompressQuality)
	if err != nil || len(compressed) >= len(data) {
		return data, mimeType
	}
	return compressed, "image/jpeg"
}
