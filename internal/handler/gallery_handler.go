package handlers

import (
	"net/http"

	"galleryhub/internal/models"
)

type CreateGalleryRequest struct {
	Name  string `json:"name" validate:"required,max=30"`
	Image string `json:"image" validate:"required,url,max=2000"`
}

type CreatedGalleryResponse struct {
	Message   string `json:"MESSAGE"`
	GalleryID string `json:"GALLERY_ID"`
}

type BookmarkListResponse struct {
	List []models.BookmarkedGallery `json:"LIST"`
}

func (h *Handlers) ListGalleries(w http.ResponseWriter, r *http.Request) {
	galleries, err := h.GalleryService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}
	if galleries == nil {
		galleries = []models.Gallery{}
	}

	writeSuccess(w, MessageResponse{Message: galleries}, http.StatusOK)
}

func (h *Handlers) CreateGallery(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req CreateGalleryRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	gallery, err := h.GalleryService.Create(r.Context(), req.Name, req.Image)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, CreatedGalleryResponse{Message: CodeSuccess, GalleryID: gallery.GalleryID}, http.StatusCreated)
}

func (h *Handlers) ToggleBookmark(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, err := pathID(r, "gallery_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := h.InteractionService.ToggleBookmark(r.Context(), user.UserID, galleryID)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeToggle(w, result, CodeBookmarkCreated)
}

func (h *Handlers) BookmarkList(w http.ResponseWriter, r *http.Request, user *models.User) {
	bookmarks, err := h.InteractionService.ListBookmarks(r.Context(), user.UserID)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.BookmarkedGallery{}
	}

	writeSuccess(w, BookmarkListResponse{List: bookmarks}, http.StatusOK)
}

// writeToggle answers 201 with createdCode when a pairing was created and 204 when it was removed.
func writeToggle(w http.ResponseWriter, result models.ToggleResult, createdCode string) {
	if result == models.Created {
		writeMessage(w, createdCode, http.StatusCreated)
		return
	}
	writeNoContent(w)
}
