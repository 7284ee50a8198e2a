package handlers

import (
	"net/http"

	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
	"galleryhub/internal/service"
)

type CreatePostingRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=2000"`
}

// UpdatePostingRequest is a partial update; omitted fields are kept.
type UpdatePostingRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content   *string `json:"content" validate:"omitempty,min=1,max=2000"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,url,max=2000"`
}

type CreatedPostingResponse struct {
	Message   string `json:"MESSAGE"`
	PostingID string `json:"POSTING_ID"`
}

// postingIDs reads the gallery and posting path variables.
func postingIDs(r *http.Request) (string, string, error) {
	galleryID, err := pathID(r, "gallery_id")
	if err != nil {
		return "", "", err
	}
	postingID, err := pathID(r, "posting_id")
	if err != nil {
		return "", "", err
	}
	return galleryID, postingID, nil
}

func (h *Handlers) CreatePosting(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, err := pathID(r, "gallery_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	var req CreatePostingRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	posting, err := h.PostingService.Create(r.Context(), service.CreatePostingInput{
		GalleryID: galleryID,
		UserID:    user.UserID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeSuccess(w, CreatedPostingResponse{Message: CodeSuccess, PostingID: posting.PostingID}, http.StatusCreated)
}

func (h *Handlers) ListPostings(w http.ResponseWriter, r *http.Request) {
	galleryID, err := pathID(r, "gallery_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	page, err := h.PostingService.List(r.Context(), galleryID, pagination.ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, MessageResponse{Message: page}, http.StatusOK)
}

// GetPosting returns the posting detail. Every call counts as a view.
func (h *Handlers) GetPosting(w http.ResponseWriter, r *http.Request) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	detail, err := h.PostingService.Read(r.Context(), galleryID, postingID)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeSuccess(w, MessageResponse{Message: detail}, http.StatusOK)
}

func (h *Handlers) UpdatePosting(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	var req UpdatePostingRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	update := models.PostingUpdate{Title: req.Title, Content: req.Content, Thumbnail: req.Thumbnail}
	if err := h.PostingService.Update(r.Context(), galleryID, postingID, user.UserID, update); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeMessage(w, CodeSuccess, http.StatusCreated)
}

func (h *Handlers) DeletePosting(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	if err := h.PostingService.Delete(r.Context(), galleryID, postingID, user.UserID); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeNoContent(w)
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	result, err := h.InteractionService.ToggleLike(r.Context(), user.UserID, galleryID, postingID)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeToggle(w, result, CodeLikeCreated)
}
