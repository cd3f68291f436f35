package relay

import (
	"google.golang.org/genai"

	"imagestudio/internal/imagedata"
)

// firstInlineImage scans candidates in order and returns the first part that
// carries inline image bytes. Text parts are commentary the model sometimes
// adds alongside the image; they are skipped, not treated as failure. A
// missing MIME type defaults to PNG, which is what the provider emits in
// practice.
func firstInlineImage(resp *genai.GenerateContentResponse) (imagedata.Payload, bool) {
	if resp == nil {
		return imagedata.Payload{}, false
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			return imagedata.NewInline(part.InlineData.MIMEType, part.InlineData.Data), true
		}
	}
	return imagedata.Payload{}, false
}
