package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"galleryhub/internal/models"
	"galleryhub/internal/repository"
)

type ProfileService interface {
	BuildProfile(ctx context.Context, targetUserID, requestingUserID string) (*models.ProfileView, error)
}

type profileService struct {
	userRepo     repository.UserRepository
	postingRepo  repository.PostingRepository
	bookmarkRepo repository.BookmarkRepository
}

func NewProfileService(userRepo repository.UserRepository, postingRepo repository.PostingRepository, bookmarkRepo repository.BookmarkRepository) ProfileService {
	return &profileService{
		userRepo:     userRepo,
		postingRepo:  postingRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// BuildProfile assembles the target's namecard and activity lists. Commented
// postings keep one entry per comment.
func (s *profileService) BuildProfile(ctx context.Context, targetUserID, requestingUserID string) (*models.ProfileView, error) {
	user, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	var (
		histories []models.History
		bookmarks []models.BookmarkedGallery
		postings  []models.PostingSummary
		liked     []models.PostingSummary
		commented []models.PostingSummary
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		histories, err = s.userRepo.ListHistories(ctx, targetUserID)
		return err
	})
	eg.Go(func() error {
		var err error
		bookmarks, err = s.bookmarkRepo.ListByUser(ctx, targetUserID)
		return err
	})
	eg.Go(func() error {
		var err error
		postings, err = s.postingRepo.ListByUser(ctx, targetUserID)
		return err
	})
	eg.Go(func() error {
		var err error
		liked, err = s.postingRepo.ListLikedByUser(ctx, targetUserID)
		return err
	})
	eg.Go(func() error {
		var err error
		commented, err = s.postingRepo.ListCommentedByUser(ctx, targetUserID)
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return &models.ProfileView{
		Namecard:          *namecardOf(user, histories),
		Bookmarks:         nonNil(bookmarks),
		Postings:          nonNil(postings),
		LikedPostings:     nonNil(liked),
		CommentedPostings: nonNil(commented),
		IsEditable:        targetUserID == requestingUserID,
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
