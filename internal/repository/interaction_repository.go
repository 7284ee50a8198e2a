package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"galleryhub/internal/models"
)

type bookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Toggle(ctx context.Context, userID, galleryID string) (models.ToggleResult, error) {
	return toggle(ctx, r.db, toggleQueries{
		insert: `
			INSERT INTO bookmarks (bookmark_id, user_id, gallery_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, gallery_id) DO NOTHING
		`,
		insertArgs: []any{uuid.New().String(), userID, galleryID, time.Now()},
		delete:     `DELETE FROM bookmarks WHERE user_id = $1 AND gallery_id = $2`,
		deleteArgs: []any{userID, galleryID},
		notFound:   models.ErrGalleryNotFound,
	})
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.BookmarkedGallery, error) {
	galleries := make([]models.BookmarkedGallery, 0)

	query := `
		SELECT g.gallery_id, g.name AS gallery_name, g.image AS gallery_image
		FROM bookmarks b
		JOIN galleries g ON g.gallery_id = b.gallery_id
		WHERE b.user_id = $1
		ORDER BY b.created_at, b.bookmark_id
	`

	if err := r.db.SelectContext(ctx, &galleries, query, userID); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return galleries, nil
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(ctx context.Context, userID, postingID string) (models.ToggleResult, error) {
	return toggle(ctx, r.db, toggleQueries{
		insert: `
			INSERT INTO likes (like_id, user_id, posting_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, posting_id) DO NOTHING
		`,
		insertArgs: []any{uuid.New().String(), userID, postingID, time.Now()},
		delete:     `DELETE FROM likes WHERE user_id = $1 AND posting_id = $2`,
		deleteArgs: []any{userID, postingID},
		notFound:   models.ErrPostingNotFound,
	})
}
