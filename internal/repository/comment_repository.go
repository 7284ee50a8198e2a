package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"galleryhub/internal/database"
	"galleryhub/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (comment_id, posting_id, user_id, content, created_at, updated_at)
		VALUES (:comment_id, :posting_id, :user_id, :content, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrPostingNotFound
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) CountByPosting(ctx context.Context, postingID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM comments WHERE posting_id = $1`

	if err := r.db.GetContext(ctx, &count, query, postingID); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

func (r *commentRepository) ListByPosting(ctx context.Context, postingID string, limit, offset int) ([]models.CommentItem, error) {
	comments := make([]models.CommentItem, 0, limit)

	query := `
		SELECT c.comment_id, c.user_id, u.nickname, u.image AS user_image,
		       c.content, c.created_at, c.updated_at
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.posting_id = $1
		ORDER BY c.created_at, c.comment_id
		LIMIT $2 OFFSET $3
	`

	if err := r.db.SelectContext(ctx, &comments, query, postingID, limit, offset); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, postingID, commentID, userID, content string) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := lockOwned(ctx, tx,
			`SELECT user_id FROM comments WHERE comment_id = $1 AND posting_id = $2 FOR UPDATE`,
			[]any{commentID, postingID}, userID, models.ErrCommentNotFound)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE comments SET content = $1, updated_at = $2 WHERE comment_id = $3`,
			content, time.Now(), commentID)
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}

		return nil
	})
}

func (r *commentRepository) Delete(ctx context.Context, postingID, commentID, userID string) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := lockOwned(ctx, tx,
			`SELECT user_id FROM comments WHERE comment_id = $1 AND posting_id = $2 FOR UPDATE`,
			[]any{commentID, postingID}, userID, models.ErrCommentNotFound)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		return nil
	})
}
