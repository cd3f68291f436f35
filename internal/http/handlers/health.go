package handlers

import "net/http"

// Health handles GET /health for liveness probes.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    a.Config.AppEnv,
	})
}
