package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicate    = errors.New("duplicate")
	ErrUpstream     = errors.New("upstream error")
	ErrUpload       = errors.New("upload error")
)

// NotFoundError names the missing entity and matches ErrNotFound.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrGalleryNotFound = &NotFoundError{Entity: "gallery"}
	ErrPostingNotFound = &NotFoundError{Entity: "posting"}
	ErrCommentNotFound = &NotFoundError{Entity: "comment"}
)

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}
