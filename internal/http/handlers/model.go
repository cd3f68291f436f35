package handlers

import "net/http"

type modelResponse struct {
	Model      string `json:"model"`
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
}

// ModelInfo handles GET /api/model and reports which upstream model the
// relay targets and whether a credential is configured.
func (a *App) ModelInfo(w http.ResponseWriter, r *http.Request) {
	model := a.Config.GeminiModel
	if a.Relay != nil {
		model = a.Relay.Model()
	}
	writeJSON(w, http.StatusOK, modelResponse{
		Model:      model,
		Provider:   "gemini",
		Configured: a.Config.CredentialConfigured(),
	})
}
