package httpapi

import (
	"encoding/json"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"imagestudio/internal/http/handlers"
	"imagestudio/internal/i18n"
	"imagestudio/internal/middleware"
)

// NewRouter assembles the HTTP routing tree. The rate limiter guards only
// the endpoints that spend provider quota; capability and health endpoints
// stay unmetered.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(app.Log))
	r.Use(middleware.CORS(app.Config.AllowedOrigins))
	r.Use(middleware.I18N(app.Config.DefaultLocale, lookup))

	r.NotFound(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		writeLocalizedError(w, req, stdhttp.StatusNotFound, i18n.KeyNotFound)
	})
	r.MethodNotAllowed(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		writeLocalizedError(w, req, stdhttp.StatusMethodNotAllowed, i18n.KeyMethodNotAllowed)
	})

	r.Get("/health", app.Health)

	limiter := middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/model", app.ModelInfo)
		r.Get("/environment", app.Environment)

		r.With(limiter, middleware.MaxBytes(app.Config.GenerateBodyMax)).
			Post("/generate", app.Generate)
		r.With(limiter, middleware.MaxBytes(app.Config.EditBodyMax)).
			Post("/edit", app.Edit)
		r.With(middleware.MaxBytes(app.Config.EditBodyMax)).
			Post("/export", app.Export)
	})

	return r
}

func writeLocalizedError(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, key string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": i18n.T(middleware.LocaleFromContext(r.Context()), key),
	})
}
