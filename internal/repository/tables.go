package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SchemaTables are the tables the service needs before it can serve traffic.
var SchemaTables = []string{
	"users", "histories", "galleries", "postings",
	"comments", "bookmarks", "likes", "viewcounts",
}

type statusRepository struct {
	db *sqlx.DB
}

func NewStatusRepository(db *sqlx.DB) StatusRepository {
	return &statusRepository{db: db}
}

// CountTables returns how many of SchemaTables exist in the public schema.
func (r *statusRepository) CountTables(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = ANY($1)
	`, pq.Array(SchemaTables))
	if err != nil {
		return 0, fmt.Errorf("count schema tables: %w", err)
	}

	return count, nil
}
