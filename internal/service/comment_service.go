package service

import (
	"context"

	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
	"galleryhub/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, galleryID, postingID, userID, content string) (*models.Comment, error)
	List(ctx context.Context, galleryID, postingID string, page int) (pagination.Page[models.CommentItem], error)
	Update(ctx context.Context, galleryID, postingID, commentID, userID, content string) error
	Delete(ctx context.Context, galleryID, postingID, commentID, userID string) error
}

type commentService struct {
	postingRepo repository.PostingRepository
	commentRepo repository.CommentRepository
}

func NewCommentService(postingRepo repository.PostingRepository, commentRepo repository.CommentRepository) CommentService {
	return &commentService{
		postingRepo: postingRepo,
		commentRepo: commentRepo,
	}
}

func (s *commentService) Create(ctx context.Context, galleryID, postingID, userID, content string) (*models.Comment, error) {
	if err := s.requirePosting(ctx, galleryID, postingID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostingID: postingID,
		UserID:    userID,
		Content:   content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) List(ctx context.Context, galleryID, postingID string, page int) (pagination.Page[models.CommentItem], error) {
	if err := s.requirePosting(ctx, galleryID, postingID); err != nil {
		return pagination.Page[models.CommentItem]{}, err
	}

	total, err := s.commentRepo.CountByPosting(ctx, postingID)
	if err != nil {
		return pagination.Page[models.CommentItem]{}, err
	}

	pager := pagination.New(total, pagination.PageSize, page)
	if pager.OutOfRange() {
		return pagination.FromPager[models.CommentItem](pager, nil), nil
	}

	items, err := s.commentRepo.ListByPosting(ctx, postingID, pager.Limit(), pager.Offset())
	if err != nil {
		return pagination.Page[models.CommentItem]{}, err
	}

	return pagination.FromPager(pager, items), nil
}

func (s *commentService) Update(ctx context.Context, galleryID, postingID, commentID, userID, content string) error {
	if err := s.requirePosting(ctx, galleryID, postingID); err != nil {
		return err
	}
	return s.commentRepo.Update(ctx, postingID, commentID, userID, content)
}

func (s *commentService) Delete(ctx context.Context, galleryID, postingID, commentID, userID string) error {
	if err := s.requirePosting(ctx, galleryID, postingID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, postingID, commentID, userID)
}

func (s *commentService) requirePosting(ctx context.Context, galleryID, postingID string) error {
	exists, err := s.postingRepo.Exists(ctx, galleryID, postingID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrPostingNotFound
	}
	return nil
}
