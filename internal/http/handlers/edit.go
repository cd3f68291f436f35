package handlers

import (
	"errors"
	"net/http"

	"imagestudio/internal/i18n"
	"imagestudio/internal/imagedata"
	"imagestudio/internal/relay"
)

type editRequest struct {
	ImageURL   *string `json:"imageUrl"`
	EditPrompt *string `json:"editPrompt"`
}

type editResponse struct {
	Success          bool   `json:"success"`
	ImageURL         string `json:"imageUrl"`
	OriginalImageURL string `json:"originalImageUrl"`
	EditPrompt       string `json:"editPrompt"`
}

// Edit handles POST /api/edit: it validates the source reference and the
// instruction, relays both upstream, and answers with the edited image as a
// data URI alongside the original reference.
func (a *App) Edit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	if req.ImageURL == nil || *req.ImageURL == "" {
		writeError(w, r, http.StatusBadRequest, i18n.KeyEditImageRequired)
		return
	}
	if req.EditPrompt == nil {
		writeError(w, r, http.StatusBadRequest, i18n.KeyEditPromptRequired)
		return
	}

	instruction, err := relay.ValidateEditInstruction(*req.EditPrompt)
	if err != nil {
		a.writeRelayError(w, r, err, true)
		return
	}

	source, err := imagedata.FromString(*req.ImageURL)
	if err != nil {
		if errors.Is(err, imagedata.ErrUnsupportedRef) {
			writeError(w, r, http.StatusBadRequest, i18n.KeyInvalidImageFormat)
			return
		}
		writeError(w, r, http.StatusBadRequest, i18n.KeyInvalidImageData)
		return
	}

	if a.Relay == nil {
		writeError(w, r, http.StatusInternalServerError, i18n.KeyMissingCredential)
		return
	}

	payload, err := a.Relay.Edit(r.Context(), source, instruction)
	if err != nil {
		a.writeRelayError(w, r, err, true)
		return
	}

	writeJSON(w, http.StatusOK, editResponse{
		Success:          true,
		ImageURL:         payload.DataURI(),
		OriginalImageURL: *req.ImageURL,
		EditPrompt:       instruction,
	})
}
