package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"galleryhub/internal/models"
)

const (
	CodeSuccess          = "SUCCESS"
	CodeKeyError         = "KEY_ERROR"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeForbidden        = "FORBIDDEN"
	CodeNicknameExists   = "NICKNAME_ALREADY_EXISTS"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeUploadError      = "UPLOAD_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeGalleryNotFound  = "GALLERY_DOES_NOT_EXIST"
	CodePostingNotFound  = "POSTING_DOES_NOT_EXIST"
	CodeCommentNotFound  = "COMMENT_DOES_NOT_EXIST"
	CodeUserNotFound     = "NOT_FOUND_USER"
	CodeBookmarkCreated  = "BOOKMARK_CREATED"
	CodeLikeCreated      = "LIKE_CREATED"
	CodeServiceNotReady  = "SERVICE_UNAVAILABLE"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeResourceNotFound = "NOT_FOUND"
)

// notFoundCodes maps a missing entity to the code sent to clients.
var notFoundCodes = map[*models.NotFoundError]string{
	models.ErrGalleryNotFound: CodeGalleryNotFound,
	models.ErrPostingNotFound: CodePostingNotFound,
	models.ErrCommentNotFound: CodeCommentNotFound,
	models.ErrUserNotFound:    CodeUserNotFound,
}

type MessageResponse struct {
	Message any `json:"MESSAGE"`
}

type ValidationResponse struct {
	Message string   `json:"MESSAGE"`
	Fields  []string `json:"FIELDS,omitempty"`
}

// WriteError sends {"MESSAGE": code} for a failed request.
func WriteError(w http.ResponseWriter, code string, statusCode int) {
	writeSuccess(w, MessageResponse{Message: code}, statusCode)
}

// writeMessage sends {"MESSAGE": code} for a successful request.
func writeMessage(w http.ResponseWriter, code string, statusCode int) {
	writeSuccess(w, MessageResponse{Message: code}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeValidationError(w http.ResponseWriter, fields []string) {
	writeSuccess(w, ValidationResponse{Message: CodeKeyError, Fields: fields}, http.StatusBadRequest)
}

// handleError converts a service error into the response for an endpoint.
// notFoundStatus is the status that endpoint uses when an entity is missing.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int) {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeValidationError(w, validationErr.Fields)
	case errors.As(err, &notFoundErr):
		code, ok := notFoundCodes[notFoundErr]
		if !ok {
			code = CodeResourceNotFound
		}
		WriteError(w, code, notFoundStatus)
	case errors.Is(err, models.ErrInvalidToken):
		WriteError(w, CodeInvalidToken, http.StatusBadRequest)
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, CodeForbidden, http.StatusForbidden)
	case errors.Is(err, models.ErrDuplicate):
		WriteError(w, CodeNicknameExists, http.StatusBadRequest)
	case errors.Is(err, models.ErrUpload):
		h.Log.Warn("upload failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteError(w, CodeUploadError, http.StatusBadRequest)
	case errors.Is(err, models.ErrUpstream):
		h.Log.Error("identity provider failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteError(w, CodeUpstreamError, http.StatusBadGateway)
	default:
		h.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		WriteError(w, CodeInternalError, http.StatusInternalServerError)
	}
}
