package handlers

import (
	"net/http"

	"galleryhub/internal/models"
)

type ImageResponse struct {
	ImageURL string `json:"IMAGE_URL"`
}

// UploadImage stores the "image" file of a multipart form and returns its public URL.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request, user *models.User) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, CodeUploadError, http.StatusBadRequest)
		return
	}

	upload, closeImage, err := formFile(r, "image")
	if err != nil || upload == nil {
		writeValidationError(w, []string{"image"})
		return
	}
	defer closeImage()

	url, err := h.MediaService.UploadImage(r.Context(), *upload)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, ImageResponse{ImageURL: url}, http.StatusCreated)
}
