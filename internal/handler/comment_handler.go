package handlers

import (
	"net/http"

	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
)

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type CreatedCommentResponse struct {
	Message   string `json:"MESSAGE"`
	CommentID string `json:"COMMENT_ID"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	var req CommentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	comment, err := h.CommentService.Create(r.Context(), galleryID, postingID, user.UserID, req.Content)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeSuccess(w, CreatedCommentResponse{Message: CodeSuccess, CommentID: comment.CommentID}, http.StatusCreated)
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	page, err := h.CommentService.List(r.Context(), galleryID, postingID, pagination.ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeSuccess(w, MessageResponse{Message: page}, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}
	commentID, err := pathID(r, "comment_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	var req CommentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	if err := h.CommentService.Update(r.Context(), galleryID, postingID, commentID, user.UserID, req.Content); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeMessage(w, CodeSuccess, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request, user *models.User) {
	galleryID, postingID, err := postingIDs(r)
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}
	commentID, err := pathID(r, "comment_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	if err := h.CommentService.Delete(r.Context(), galleryID, postingID, commentID, user.UserID); err != nil {
		h.handleError(w, r, err, http.StatusNotFound)
		return
	}

	writeNoContent(w)
}
