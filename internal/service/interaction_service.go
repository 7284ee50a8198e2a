package service

import (
	"context"

	"galleryhub/internal/metrics"
	"galleryhub/internal/models"
	"galleryhub/internal/repository"
)

type InteractionService interface {
	ToggleBookmark(ctx context.Context, userID, galleryID string) (models.ToggleResult, error)
	ListBookmarks(ctx context.Context, userID string) ([]models.BookmarkedGallery, error)
	ToggleLike(ctx context.Context, userID, galleryID, postingID string) (models.ToggleResult, error)
}

type interactionService struct {
	postingRepo  repository.PostingRepository
	bookmarkRepo repository.BookmarkRepository
	likeRepo     repository.LikeRepository
}

func NewInteractionService(postingRepo repository.PostingRepository, bookmarkRepo repository.BookmarkRepository, likeRepo repository.LikeRepository) InteractionService {
	return &interactionService{
		postingRepo:  postingRepo,
		bookmarkRepo: bookmarkRepo,
		likeRepo:     likeRepo,
	}
}

// ToggleBookmark relies on the foreign key to reject unknown galleries.
func (s *interactionService) ToggleBookmark(ctx context.Context, userID, galleryID string) (models.ToggleResult, error) {
	result, err := s.bookmarkRepo.Toggle(ctx, userID, galleryID)
	if err != nil {
		return 0, err
	}

	metrics.RecordToggle("bookmark", result.String())
	return result, nil
}

func (s *interactionService) ListBookmarks(ctx context.Context, userID string) ([]models.BookmarkedGallery, error) {
	return s.bookmarkRepo.ListByUser(ctx, userID)
}

func (s *interactionService) ToggleLike(ctx context.Context, userID, galleryID, postingID string) (models.ToggleResult, error) {
	exists, err := s.postingRepo.Exists(ctx, galleryID, postingID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.ErrPostingNotFound
	}

	result, err := s.likeRepo.Toggle(ctx, userID, postingID)
	if err != nil {
		return 0, err
	}

	metrics.RecordToggle("like", result.String())
	return result, nil
}
