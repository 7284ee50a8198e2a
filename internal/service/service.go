package service

import (
	"go.uber.org/zap"

	"galleryhub/internal/config"
	"galleryhub/internal/oauth"
	"galleryhub/internal/repository"
	"galleryhub/internal/storage"
)

type Service struct {
	Auth        AuthService
	Token       TokenService
	User        UserService
	Gallery     GalleryService
	Posting     PostingService
	Comment     CommentService
	Interaction InteractionService
	Profile     ProfileService
	Media       MediaService
	Status      StatusService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, db Pinger, providers map[string]oauth.Provider, log *zap.Logger) (*Service, error) {
	tokens, err := NewTokenService(cfg)
	if err != nil {
		return nil, err
	}

	media := NewMediaService(storage, cfg.MinIO.BaseURL)

	return &Service{
		Auth:        NewAuthService(rep.User, tokens, providers, log),
		Token:       tokens,
		User:        NewUserService(rep.User, media),
		Gallery:     NewGalleryService(rep.Gallery),
		Posting:     NewPostingService(rep.Gallery, rep.Posting, cfg.DefaultThumbnail),
		Comment:     NewCommentService(rep.Posting, rep.Comment),
		Interaction: NewInteractionService(rep.Posting, rep.Bookmark, rep.Like),
		Profile:     NewProfileService(rep.User, rep.Posting, rep.Bookmark),
		Media:       media,
		Status:      NewStatusService(db, rep.Status),
	}, nil
}
