package handlers

import (
	"net/http"
	"strconv"

	"imagestudio/internal/browser"
	"imagestudio/internal/middleware"
)

type environmentResponse struct {
	Environment   browser.Environment   `json:"environment"`
	SaveStrategy  browser.SaveStrategy  `json:"saveStrategy"`
	ShareStrategy browser.ShareStrategy `json:"shareStrategy"`
	CopyStrategy  browser.CopyStrategy  `json:"copyStrategy"`
	Locale        string                `json:"locale"`
	Country       string                `json:"country,omitempty"`
}

// Environment handles GET /api/environment. The browser classification comes
// from the User-Agent header; capabilities the server cannot see (the share
// API, rich clipboard) are reported by the client as query parameters. The
// resolved locale and country are echoed so the client renders its own copy
// in the same language the API answers with.
func (a *App) Environment(w http.ResponseWriter, r *http.Request) {
	env := browser.Detect(r.UserAgent())
	canShare := boolQuery(r, "canShare")
	richClipboard := boolQuery(r, "richClipboard")

	writeJSON(w, http.StatusOK, environmentResponse{
		Environment:   env,
		SaveStrategy:  browser.SaveStrategyFor(env),
		ShareStrategy: browser.ShareStrategyFor(env, canShare),
		CopyStrategy:  browser.CopyStrategyFor(richClipboard),
		Locale:        middleware.LocaleFromContext(r.Context()),
		Country:       middleware.CountryFromContext(r.Context()),
	})
}

func boolQuery(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}
