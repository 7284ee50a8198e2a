package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"galleryhub/internal/database"
	"galleryhub/internal/models"
)

// toggleQueries describes a unique join row that a toggle inserts or removes.
// insert must use ON CONFLICT DO NOTHING so that its affected-row count is the
// single existence check deciding between create and delete.
type toggleQueries struct {
	insert     string
	insertArgs []any
	delete     string
	deleteArgs []any
	// notFound is returned when the referenced parent row is missing.
	notFound error
}

func toggle(ctx context.Context, db *sqlx.DB, q toggleQueries) (models.ToggleResult, error) {
	var result models.ToggleResult

	err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, q.insert, q.insertArgs...)
		if err != nil {
			if isForeignKeyViolation(err) {
				return q.notFound
			}
			return fmt.Errorf("toggle insert: %w", err)
		}

		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("toggle insert rows: %w", err)
		}
		if inserted == 1 {
			result = models.Created
			return nil
		}

		if _, err = tx.ExecContext(ctx, q.delete, q.deleteArgs...); err != nil {
			return fmt.Errorf("toggle delete: %w", err)
		}
		result = models.Removed
		return nil
	})
	if err != nil {
		return 0, err
	}

	return result, nil
}
