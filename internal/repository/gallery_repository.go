package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"galleryhub/internal/models"
)

type galleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) List(ctx context.Context) ([]models.Gallery, error) {
	galleries := make([]models.Gallery, 0)

	query := `SELECT gallery_id, name, image FROM galleries ORDER BY created_at, gallery_id`

	if err := r.db.SelectContext(ctx, &galleries, query); err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}

	return galleries, nil
}

func (r *galleryRepository) Exists(ctx context.Context, galleryID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM galleries WHERE gallery_id = $1)`

	if err := r.db.GetContext(ctx, &exists, query, galleryID); err != nil {
		return false, fmt.Errorf("check gallery: %w", err)
	}

	return exists, nil
}

func (r *galleryRepository) Create(ctx context.Context, gallery *models.Gallery) error {
	if gallery.GalleryID == "" {
		gallery.GalleryID = uuid.New().String()
	}

	query := `INSERT INTO galleries (gallery_id, name, image, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, gallery.GalleryID, gallery.Name, gallery.Image, time.Now()); err != nil {
		return fmt.Errorf("create gallery: %w", err)
	}

	return nil
}
