package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"galleryhub/internal/database"
	"galleryhub/internal/models"
)

type postingRepository struct {
	db *sqlx.DB
}

func NewPostingRepository(db *sqlx.DB) PostingRepository {
	return &postingRepository{db: db}
}

// Create stores the posting together with its zeroed view counter.
func (r *postingRepository) Create(ctx context.Context, posting *models.Posting) error {
	if posting.PostingID == "" {
		posting.PostingID = uuid.New().String()
	}

	now := time.Now()
	posting.CreatedAt = now
	posting.UpdatedAt = now

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO postings
			(posting_id, gallery_id, user_id, title, content, thumbnail, created_at, updated_at)
			VALUES
			(:posting_id, :gallery_id, :user_id, :title, :content, :thumbnail, :created_at, :updated_at)
		`, posting)
		if err != nil {
			if isForeignKeyViolation(err) {
				return models.ErrGalleryNotFound
			}
			return fmt.Errorf("create posting: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO viewcounts (posting_id, view_count) VALUES ($1, 0)`, posting.PostingID)
		if err != nil {
			return fmt.Errorf("create viewcount: %w", err)
		}

		return nil
	})
}

func (r *postingRepository) Exists(ctx context.Context, galleryID, postingID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM postings WHERE posting_id = $1 AND gallery_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, postingID, galleryID); err != nil {
		return false, fmt.Errorf("check posting: %w", err)
	}

	return exists, nil
}

func (r *postingRepository) CountByGallery(ctx context.Context, galleryID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM postings WHERE gallery_id = $1`

	if err := r.db.GetContext(ctx, &count, query, galleryID); err != nil {
		return 0, fmt.Errorf("count postings: %w", err)
	}

	return count, nil
}

func (r *postingRepository) ListByGallery(ctx context.Context, galleryID string, limit, offset int) ([]models.PostingListItem, error) {
	items := make([]models.PostingListItem, 0, limit)

	query := `
		SELECT p.posting_id, p.title, p.thumbnail, p.user_id, u.nickname,
		       (SELECT COUNT(*) FROM comments c WHERE c.posting_id = p.posting_id) AS comment_count,
		       COALESCE(v.view_count, 0) AS view_count,
		       p.created_at
		FROM postings p
		JOIN users u ON u.user_id = p.user_id
		LEFT JOIN viewcounts v ON v.posting_id = p.posting_id
		WHERE p.gallery_id = $1
		ORDER BY p.created_at, p.posting_id
		LIMIT $2 OFFSET $3
	`

	if err := r.db.SelectContext(ctx, &items, query, galleryID, limit, offset); err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}

	return items, nil
}

// Read bumps the posting's view counter by one and returns the detail view,
// including whether the posting is the first or last one of its gallery.
func (r *postingRepository) Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error) {
	var detail models.PostingDetail

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO viewcounts (posting_id, view_count)
			SELECT posting_id, 1 FROM postings WHERE posting_id = $1 AND gallery_id = $2
			ON CONFLICT (posting_id) DO UPDATE SET view_count = viewcounts.view_count + 1
		`, postingID, galleryID)
		if err != nil {
			return fmt.Errorf("increment viewcount: %w", err)
		}

		counted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("increment viewcount rows: %w", err)
		}
		if counted == 0 {
			return models.ErrPostingNotFound
		}

		err = tx.GetContext(ctx, &detail, `
			SELECT p.posting_id, p.gallery_id, g.name AS gallery_name, p.title, p.content, p.thumbnail,
			       p.user_id, u.nickname, u.image AS user_image,
			       COALESCE(v.view_count, 0) AS view_count,
			       (SELECT COUNT(*) FROM likes l WHERE l.posting_id = p.posting_id) AS like_count,
			       (SELECT COUNT(*) FROM comments c WHERE c.posting_id = p.posting_id) AS comment_count,
			       NOT EXISTS (
			           SELECT 1 FROM postings e
			           WHERE e.gallery_id = p.gallery_id
			             AND (e.created_at, e.posting_id) < (p.created_at, p.posting_id)
			       ) AS is_first,
			       NOT EXISTS (
			           SELECT 1 FROM postings e
			           WHERE e.gallery_id = p.gallery_id
			             AND (e.created_at, e.posting_id) > (p.created_at, p.posting_id)
			       ) AS is_last,
			       p.created_at, p.updated_at
			FROM postings p
			JOIN galleries g ON g.gallery_id = p.gallery_id
			JOIN users u ON u.user_id = p.user_id
			LEFT JOIN viewcounts v ON v.posting_id = p.posting_id
			WHERE p.posting_id = $1 AND p.gallery_id = $2
		`, postingID, galleryID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.ErrPostingNotFound
			}
			return fmt.Errorf("get posting detail: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *postingRepository) Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := lockOwned(ctx, tx,
			`SELECT user_id FROM postings WHERE posting_id = $1 AND gallery_id = $2 FOR UPDATE`,
			[]any{postingID, galleryID}, userID, models.ErrPostingNotFound)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE postings SET
				title = COALESCE($1, title),
				content = COALESCE($2, content),
				thumbnail = COALESCE($3, thumbnail),
				updated_at = $4
			WHERE posting_id = $5
		`, update.Title, update.Content, update.Thumbnail, time.Now(), postingID)
		if err != nil {
			return fmt.Errorf("update posting: %w", err)
		}

		return nil
	})
}

func (r *postingRepository) Delete(ctx context.Context, galleryID, postingID, userID string) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := lockOwned(ctx, tx,
			`SELECT user_id FROM postings WHERE posting_id = $1 AND gallery_id = $2 FOR UPDATE`,
			[]any{postingID, galleryID}, userID, models.ErrPostingNotFound)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM postings WHERE posting_id = $1`, postingID); err != nil {
			return fmt.Errorf("delete posting: %w", err)
		}

		return nil
	})
}

func (r *postingRepository) ListByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return r.summaries(ctx, `
		SELECT p.gallery_id, p.posting_id, p.title, p.content, p.created_at
		FROM postings p
		WHERE p.user_id = $1
		ORDER BY p.created_at, p.posting_id
	`, userID)
}

func (r *postingRepository) ListLikedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return r.summaries(ctx, `
		SELECT p.gallery_id, p.posting_id, p.title, p.content, p.created_at
		FROM likes l
		JOIN postings p ON p.posting_id = l.posting_id
		WHERE l.user_id = $1
		ORDER BY l.created_at, l.like_id
	`, userID)
}

// ListCommentedByUser yields one row per comment, so a posting commented on
// twice appears twice.
func (r *postingRepository) ListCommentedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return r.summaries(ctx, `
		SELECT p.gallery_id, p.posting_id, p.title, p.content, p.created_at
		FROM comments c
		JOIN postings p ON p.posting_id = c.posting_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.comment_id
	`, userID)
}

func (r *postingRepository) summaries(ctx context.Context, query string, userID string) ([]models.PostingSummary, error) {
	postings := make([]models.PostingSummary, 0)

	if err := r.db.SelectContext(ctx, &postings, query, userID); err != nil {
		return nil, fmt.Errorf("list user postings: %w", err)
	}

	return postings, nil
}

// lockOwned locks the row selected by query and checks that it belongs to userID.
func lockOwned(ctx context.Context, tx *sqlx.Tx, query string, args []any, userID string, notFound error) error {
	var ownerID string

	err := tx.GetContext(ctx, &ownerID, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("load owner: %w", err)
	}

	if ownerID != userID {
		return models.ErrForbidden
	}

	return nil
}
