package service

import (
	"context"

	"galleryhub/internal/content"
	"galleryhub/internal/metrics"
	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
	"galleryhub/internal/repository"
)

type CreatePostingInput struct {
	GalleryID string
	UserID    string
	Title     string
	Content   string
}

type PostingService interface {
	Create(ctx context.Context, in CreatePostingInput) (*models.Posting, error)
	List(ctx context.Context, galleryID string, page int) (pagination.Page[models.PostingListItem], error)
	Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error)
	Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error
	Delete(ctx context.Context, galleryID, postingID, userID string) error
}

type postingService struct {
	galleryRepo      repository.GalleryRepository
	postingRepo      repository.PostingRepository
	defaultThumbnail string
}

func NewPostingService(galleryRepo repository.GalleryRepository, postingRepo repository.PostingRepository, defaultThumbnail string) PostingService {
	return &postingService{
		galleryRepo:      galleryRepo,
		postingRepo:      postingRepo,
		defaultThumbnail: defaultThumbnail,
	}
}

func (s *postingService) Create(ctx context.Context, in CreatePostingInput) (*models.Posting, error) {
	if err := s.requireGallery(ctx, in.GalleryID); err != nil {
		return nil, err
	}

	posting := &models.Posting{
		GalleryID: in.GalleryID,
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		Thumbnail: content.ExtractThumbnail(in.Content, s.defaultThumbnail),
	}

	if err := s.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}

	return posting, nil
}

// List returns one page of the gallery's postings, oldest first.
func (s *postingService) List(ctx context.Context, galleryID string, page int) (pagination.Page[models.PostingListItem], error) {
	if err := s.requireGallery(ctx, galleryID); err != nil {
		return pagination.Page[models.PostingListItem]{}, err
	}

	total, err := s.postingRepo.CountByGallery(ctx, galleryID)
	if err != nil {
		return pagination.Page[models.PostingListItem]{}, err
	}

	pager := pagination.New(total, pagination.PageSize, page)
	if pager.OutOfRange() {
		return pagination.FromPager[models.PostingListItem](pager, nil), nil
	}

	items, err := s.postingRepo.ListByGallery(ctx, galleryID, pager.Limit(), pager.Offset())
	if err != nil {
		return pagination.Page[models.PostingListItem]{}, err
	}

	return pagination.FromPager(pager, items), nil
}

// Read counts a view on every call.
func (s *postingService) Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error) {
	detail, err := s.postingRepo.Read(ctx, galleryID, postingID)
	if err != nil {
		return nil, err
	}

	metrics.RecordPostingView()
	return detail, nil
}

// Update applies the partial update. New content without an explicit thumbnail
// re-derives the thumbnail from the content.
func (s *postingService) Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error {
	if update.Content != nil && update.Thumbnail == nil {
		thumbnail := content.ExtractThumbnail(*update.Content, s.defaultThumbnail)
		update.Thumbnail = &thumbnail
	}

	return s.postingRepo.Update(ctx, galleryID, postingID, userID, update)
}

func (s *postingService) Delete(ctx context.Context, galleryID, postingID, userID string) error {
	return s.postingRepo.Delete(ctx, galleryID, postingID, userID)
}

func (s *postingService) requireGallery(ctx context.Context, galleryID string) error {
	exists, err := s.galleryRepo.Exists(ctx, galleryID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrGalleryNotFound
	}
	return nil
}
