package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"galleryhub/internal/models"
	"galleryhub/internal/storage"
)

// Upload is a file received from a multipart form.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type MediaService interface {
	UploadImage(ctx context.Context, upload Upload) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

type mediaService struct {
	storage storage.Storage
	baseURL string
}

func NewMediaService(storage storage.Storage, baseURL string) MediaService {
	return &mediaService{storage: storage, baseURL: baseURL}
}

// UploadImage stores the file and returns its public URL.
func (s *mediaService) UploadImage(ctx context.Context, upload Upload) (string, error) {
	if upload.Body == nil || upload.FileName == "" {
		return "", fmt.Errorf("%w: empty file", models.ErrUpload)
	}

	key, err := s.storage.Upload(ctx, upload.FileName, upload.ContentType, upload.Body, upload.Size)
	if err != nil {
		if errors.Is(err, models.ErrUpload) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", models.ErrUpload, err)
	}

	return storage.PublicURL(s.baseURL, key), nil
}

// DeleteImage removes an object previously returned by UploadImage.
func (s *mediaService) DeleteImage(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, storage.PublicURL(s.baseURL, ""))
	if key == "" {
		return nil
	}
	return s.storage.Delete(ctx, key)
}
