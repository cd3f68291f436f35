package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"imagestudio/internal/browser"
	"imagestudio/internal/i18n"
	"imagestudio/internal/imagedata"
	"imagestudio/internal/middleware"
)

type exportRequest struct {
	ImageURL *string `json:"imageUrl"`
	Filename string  `json:"filename"`
}

// longPressPage renders the saved image full-width with an instruction to
// long-press it, for environments where attachment downloads do not work.
var longPressPage = template.Must(template.New("longpress").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #111; color: #eee; font-family: sans-serif; text-align: center; }
p { padding: 12px; font-size: 15px; }
img { max-width: 100%; height: auto; }
</style>
</head>
<body>
<p>{{.Hint}}</p>
<img src="{{.ImageSrc}}" alt="">
</body>
</html>
`))

type longPressData struct {
	Lang     string
	Title    string
	Hint     string
	ImageSrc template.URL
}

// Export handles POST /api/export. Desktop and Android clients get the raw
// image bytes as an attachment download; WeChat and iOS clients get an HTML
// page instructing them to long-press and save, since those environments
// ignore synthetic downloads.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	if req.ImageURL == nil || *req.ImageURL == "" {
		writeError(w, r, http.StatusBadRequest, i18n.KeyEditImageRequired)
		return
	}

	payload, err := imagedata.ParseDataURI(*req.ImageURL)
	if err != nil {
		if errors.Is(err, imagedata.ErrNotDataURI) {
			writeError(w, r, http.StatusBadRequest, i18n.KeyInvalidImageFormat)
			return
		}
		writeError(w, r, http.StatusBadRequest, i18n.KeyInvalidImageData)
		return
	}

	env := browser.Detect(r.UserAgent())
	if browser.SaveStrategyFor(env) == browser.SaveLongPress {
		a.renderLongPressPage(w, r, payload)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("ai-image-%d%s", time.Now().Unix(), extensionForMIME(payload.MIMEType()))
	}
	w.Header().Set("Content-Type", payload.MIMEType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload.Bytes())
}

func (a *App) renderLongPressPage(w http.ResponseWriter, r *http.Request, payload imagedata.Payload) {
	locale := middleware.LocaleFromContext(r.Context())
	hint := "长按图片保存到相册"
	title := "保存图片"
	if locale == "en" {
		hint = "Press and hold the image to save it"
		title = "Save image"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := longPressPage.Execute(w, longPressData{
		Lang:     locale,
		Title:    title,
		Hint:     hint,
		ImageSrc: template.URL(payload.DataURI()),
	}); err != nil {
		a.Log.Error().Err(err).Msg("render long-press page")
	}
}

func extensionForMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
