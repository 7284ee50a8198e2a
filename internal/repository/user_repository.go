package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"galleryhub/internal/database"
	"galleryhub/internal/models"
)

// providerColumns maps a social provider to the column holding its stable user id.
var providerColumns = map[string]string{
	models.ProviderKakao: "kakao_id",
	models.ProviderNaver: "naver_id",
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	return &user, nil
}

// GetOrCreateByProvider inserts a user for the provider id unless one already exists,
// then loads it. The insert is a single conflict-tolerant statement, so concurrent
// first logins cannot create two users.
func (r *userRepository) GetOrCreateByProvider(ctx context.Context, provider, providerID string, profile models.ProviderProfile) (*models.User, bool, error) {
	column, ok := providerColumns[provider]
	if !ok {
		return nil, false, fmt.Errorf("unknown provider %q", provider)
	}
	if providerID == "" {
		return nil, false, errors.New("empty provider id")
	}

	now := time.Now()
	insert := fmt.Sprintf(`
		INSERT INTO users (user_id, %[1]s, name, email, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (%[1]s) WHERE %[1]s IS NOT NULL DO NOTHING
	`, column)

	res, err := r.db.ExecContext(ctx, insert,
		uuid.New().String(),
		providerID,
		nullable(profile.Name),
		nullable(profile.Email),
		nullable(profile.Image),
		now,
	)
	if err != nil {
		return nil, false, fmt.Errorf("create %s user: %w", provider, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("create %s user rows: %w", provider, err)
	}

	var user models.User
	query := fmt.Sprintf(`SELECT * FROM users WHERE %s = $1`, column)
	if err = r.db.GetContext(ctx, &user, query, providerID); err != nil {
		return nil, false, fmt.Errorf("get %s user: %w", provider, err)
	}

	return &user, inserted == 1, nil
}

func (r *userRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE nickname = $1)`

	if err := r.db.GetContext(ctx, &exists, query, nickname); err != nil {
		return false, fmt.Errorf("check nickname: %w", err)
	}

	return exists, nil
}

func (r *userRepository) UpdateNickname(ctx context.Context, userID, nickname string) error {
	query := `UPDATE users SET nickname = $1, updated_at = $2 WHERE user_id = $3`

	result, err := r.db.ExecContext(ctx, query, nickname, time.Now(), userID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicate
		}
		return fmt.Errorf("update nickname: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update nickname rows: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// UpdateNamecard applies the non-nil fields of update and, when update.Works is set,
// replaces the user's histories, all in one transaction.
func (r *userRepository) UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	addSet := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addSet("name", update.Name)
	addSet("image", update.Image)
	addSet("slogan", update.Slogan)
	addSet("introduce", update.Introduce)
	addSet("email", update.Email)
	addSet("location", update.Location)

	args = append(args, time.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d`, strings.Join(sets, ", "), len(args))

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update namecard: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update namecard rows: %w", err)
		}
		if rowsAffected == 0 {
			return models.ErrUserNotFound
		}

		if update.Works == nil {
			return nil
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM histories WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("clear histories: %w", err)
		}

		for i, work := range update.Works {
			history := models.History{
				HistoryID: uuid.New().String(),
				UserID:    userID,
				Year:      work.Year,
				Title:     work.Title,
				Subtitle:  work.Subtitle,
				Position:  i,
			}
			_, err = tx.NamedExecContext(ctx, `
				INSERT INTO histories (history_id, user_id, year, title, subtitle, position)
				VALUES (:history_id, :user_id, :year, :title, :subtitle, :position)
			`, history)
			if err != nil {
				return fmt.Errorf("create history: %w", err)
			}
		}

		return nil
	})
}

func (r *userRepository) ListHistories(ctx context.Context, userID string) ([]models.History, error) {
	histories := make([]models.History, 0)

	query := `SELECT * FROM histories WHERE user_id = $1 ORDER BY position, history_id`

	if err := r.db.SelectContext(ctx, &histories, query, userID); err != nil {
		return nil, fmt.Errorf("list histories: %w", err)
	}

	return histories, nil
}

// DeleteUser removes the user; postings, comments, histories, bookmarks and likes
// go with it through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
