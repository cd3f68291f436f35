package handlers

import (
	"net/http"

	"imagestudio/internal/i18n"
	"imagestudio/internal/relay"
)

type generateRequest struct {
	Prompt *string `json:"prompt"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
}

// Generate handles POST /api/generate: it validates the description, relays
// it upstream, and answers with the produced image as a data URI.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	if req.Prompt == nil {
		writeError(w, r, http.StatusBadRequest, i18n.KeyPromptRequired)
		return
	}

	prompt, err := relay.ValidateGeneratePrompt(*req.Prompt)
	if err != nil {
		a.writeRelayError(w, r, err, false)
		return
	}

	if a.Relay == nil {
		writeError(w, r, http.StatusInternalServerError, i18n.KeyMissingCredential)
		return
	}

	payload, err := a.Relay.Generate(r.Context(), prompt)
	if err != nil {
		a.writeRelayError(w, r, err, false)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:  true,
		ImageURL: payload.DataURI(),
		Prompt:   prompt,
	})
}
