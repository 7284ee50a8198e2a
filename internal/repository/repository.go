package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"galleryhub/internal/models"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetOrCreateByProvider(ctx context.Context, provider, providerID string, profile models.ProviderProfile) (*models.User, bool, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	UpdateNickname(ctx context.Context, userID, nickname string) error
	UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate) error
	ListHistories(ctx context.Context, userID string) ([]models.History, error)
	DeleteUser(ctx context.Context, userID string) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]models.Gallery, error)
	Exists(ctx context.Context, galleryID string) (bool, error)
	Create(ctx context.Context, gallery *models.Gallery) error
}

type PostingRepository interface {
	Create(ctx context.Context, posting *models.Posting) error
	Exists(ctx context.Context, galleryID, postingID string) (bool, error)
	CountByGallery(ctx context.Context, galleryID string) (int, error)
	ListByGallery(ctx context.Context, galleryID string, limit, offset int) ([]models.PostingListItem, error)
	Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error)
	Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error
	Delete(ctx context.Context, galleryID, postingID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]models.PostingSummary, error)
	ListLikedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error)
	ListCommentedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	CountByPosting(ctx context.Context, postingID string) (int, error)
	ListByPosting(ctx context.Context, postingID string, limit, offset int) ([]models.CommentItem, error)
	Update(ctx context.Context, postingID, commentID, userID, content string) error
	Delete(ctx context.Context, postingID, commentID, userID string) error
}

type BookmarkRepository interface {
	Toggle(ctx context.Context, userID, galleryID string) (models.ToggleResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.BookmarkedGallery, error)
}

type LikeRepository interface {
	Toggle(ctx context.Context, userID, postingID string) (models.ToggleResult, error)
}

type StatusRepository interface {
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	User     UserRepository
	Gallery  GalleryRepository
	Posting  PostingRepository
	Comment  CommentRepository
	Bookmark BookmarkRepository
	Like     LikeRepository
	Status   StatusRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Gallery:  NewGalleryRepository(db),
		Posting:  NewPostingRepository(db),
		Comment:  NewCommentRepository(db),
		Bookmark: NewBookmarkRepository(db),
		Like:     NewLikeRepository(db),
		Status:   NewStatusRepository(db),
	}
}
