// Package relay forwards generation and edit requests to the Gemini image
// model and normalizes its responses into inline image payloads.
package relay

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"imagestudio/internal/imagedata"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash-image-preview"

const (
	// MaxPromptChars caps a generation description after trimming.
	MaxPromptChars = 1000
	// MaxInstructionChars caps an edit instruction after trimming.
	MaxInstructionChars = 500

	// maxInlineRelayBytes is the size above which an edit source is
	// recompressed to JPEG before being sent inline.
	maxInlineRelayBytes = 4 << 20
)

// Validation sentinels. Handlers match these to pick the localized message
// for the 400 response.
var (
	ErrPromptEmpty        = errors.New("relay: prompt is empty")
	ErrPromptTooLong      = errors.New("relay: prompt exceeds limit")
	ErrInstructionEmpty   = errors.New("relay: edit instruction is empty")
	ErrInstructionTooLong = errors.New("relay: edit instruction exceeds limit")
	ErrSourceInvalid      = errors.New("relay: source image is invalid")
	ErrSourceFetch        = errors.New("relay: source image fetch failed")
)

// ValidateGeneratePrompt trims the description and checks its bounds,
// returning the trimmed form.
func ValidateGeneratePrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrPromptEmpty
	}
	if len([]rune(prompt)) > MaxPromptChars {
		return "", ErrPromptTooLong
	}
	return prompt, nil
}

// ValidateEditInstruction trims the instruction and checks its bounds,
// returning the trimmed form.
func ValidateEditInstruction(instruction string) (string, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return "", ErrInstructionEmpty
	}
	if len([]rune(instruction)) > MaxInstructionChars {
		return "", ErrInstructionTooLong
	}
	return instruction, nil
}

// caller is the seam between the relay and the SDK so tests can substitute
// a stub and assert no upstream traffic happens on rejected input.
type caller interface {
	generateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type sdkCaller struct {
	client *genai.Client
}

func (c *sdkCaller) generateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// Relay holds a configured upstream client for one model.
type Relay struct {
	caller  caller
	model   string
	fetcher *SourceFetcher
	log     zerolog.Logger
}

// New builds a relay against the Gemini API backend. An empty API key is a
// configuration error; the caller decides whether that is fatal at startup
// or a per-request failure.
func New(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Relay, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, newError(KindConfiguration, "missing API key", nil)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, newError(KindConfiguration, "create upstream client", err)
	}

	return &Relay{
		caller:  &sdkCaller{client: client},
		model:   model,
		fetcher: NewSourceFetcher(30 * time.Second),
		log:     log,
	}, nil
}

// Model returns the configured model identifier.
func (r *Relay) Model() string { return r.model }

// Generate produces an image for the given description and returns it as an
// inline payload. No upstream call is made when validation fails.
func (r *Relay) Generate(ctx context.Context, prompt string) (imagedata.Payload, error) {
	prompt, err := ValidateGeneratePrompt(prompt)
	if err != nil {
		return imagedata.Payload{}, newError(KindInvalidInput, err.Error(), err)
	}

	parts := []*genai.Part{genai.NewPartFromText(buildGeneratePrompt(prompt))}
	payload, err := r.call(ctx, parts)
	if err != nil {
		r.log.Error().Err(err).Str("op", "generate").Msg("upstream call failed")
		return imagedata.Payload{}, err
	}
	return payload, nil
}

// Edit applies an instruction to a source image and returns the edited image
// as an inline payload. Remote sources are downloaded first; oversized
// sources are recompressed before the upstream call.
func (r *Relay) Edit(ctx context.Context, source imagedata.Payload, instruction string) (imagedata.Payload, error) {
	instruction, err := ValidateEditInstruction(instruction)
	if err != nil {
		return imagedata.Payload{}, newError(KindInvalidInput, err.Error(), err)
	}

	if source.Remote() {
		fetched, err := r.fetcher.Fetch(ctx, source.URL())
		if err != nil {
			r.log.Warn().Err(err).Str("op", "edit").Msg("source image fetch failed")
			return imagedata.Payload{}, newError(KindInvalidInput, err.Error(), errors.Join(ErrSourceFetch, err))
		}
		source = fetched
	}
	if !source.Inline() {
		return imagedata.Payload{}, newError(KindInvalidInput, ErrSourceInvalid.Error(), ErrSourceInvalid)
	}
	if err := imagedata.ValidateUpload(source.MIMEType(), len(source.Bytes())); err != nil {
		return imagedata.Payload{}, newError(KindInvalidInput, err.Error(), errors.Join(ErrSourceInvalid, err))
	}

	data, mime := imagedata.ShrinkForRelay(source.Bytes(), source.MIMEType(), maxInlineRelayBytes)

	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
		genai.NewPartFromText(buildEditPrompt(instruction)),
	}
	payload, err := r.call(ctx, parts)
	if err != nil {
		r.log.Error().Err(err).Str("op", "edit").Msg("upstream call failed")
		return imagedata.Payload{}, err
	}
	return payload, nil
}

func (r *Relay) call(ctx context.Context, parts []*genai.Part) (imagedata.Payload, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	started := time.Now()
	resp, err := r.caller.generateContent(ctx, r.model, contents, config)
	if err != nil {
		return imagedata.Payload{}, classifyUpstream(err)
	}
	r.log.Debug().Dur("duration", time.Since(started)).Str("model", r.model).Msg("upstream call completed")

	payload, ok := firstInlineImage(resp)
	if !ok {
		return imagedata.Payload{}, newError(KindNoImage, "no image data in response", nil)
	}
	return payload, nil
}
