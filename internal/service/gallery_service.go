package service

import (
	"context"

	"galleryhub/internal/models"
	"galleryhub/internal/repository"
)

type GalleryService interface {
	List(ctx context.Context) ([]models.Gallery, error)
	Create(ctx context.Context, name, image string) (*models.Gallery, error)
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
}

func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) List(ctx context.Context) ([]models.Gallery, error) {
	return s.galleryRepo.List(ctx)
}

func (s *galleryService) Create(ctx context.Context, name, image string) (*models.Gallery, error) {
	gallery := &models.Gallery{Name: name, Image: image}

	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		return nil, err
	}

	return gallery, nil
}
