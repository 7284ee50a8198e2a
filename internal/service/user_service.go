package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"galleryhub/internal/models"
	"galleryhub/internal/repository"
)

type UserService interface {
	SetNickname(ctx context.Context, userID, nickname string) error
	GetNamecard(ctx context.Context, userID string) (*models.Namecard, error)
	UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate, image *Upload) error
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	media    MediaService
}

func NewUserService(userRepo repository.UserRepository, media MediaService) UserService {
	return &userService{
		userRepo: userRepo,
		media:    media,
	}
}

func (s *userService) SetNickname(ctx context.Context, userID, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return &models.ValidationError{Fields: []string{"nickname"}}
	}

	exists, err := s.userRepo.NicknameExists(ctx, nickname)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrDuplicate
	}

	// the unique index still decides when two users race for the same name
	return s.userRepo.UpdateNickname(ctx, userID, nickname)
}

func (s *userService) GetNamecard(ctx context.Context, userID string) (*models.Namecard, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	histories, err := s.userRepo.ListHistories(ctx, userID)
	if err != nil {
		return nil, err
	}

	return namecardOf(user, histories), nil
}

// UpdateNamecard uploads the optional avatar first so a failed upload changes nothing.
func (s *userService) UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate, image *Upload) error {
	if image != nil {
		url, err := s.media.UploadImage(ctx, *image)
		if err != nil {
			return err
		}
		update.Image = &url
	}

	if update.IsEmpty() {
		return nil
	}

	if err := s.userRepo.UpdateNamecard(ctx, userID, update); err != nil {
		if image != nil {
			// the stored avatar is unreferenced now; a failed cleanup only leaves an orphan object
			_ = s.media.DeleteImage(ctx, *update.Image)
		}
		return fmt.Errorf("update namecard: %w", err)
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func namecardOf(user *models.User, histories []models.History) *models.Namecard {
	return &models.Namecard{
		Image:     user.Image,
		Name:      user.Name,
		Slogan:    user.Slogan,
		Introduce: user.Introduce,
		Email:     user.Email,
		Location:  user.Location,
		Works: slice.Map(histories, func(_ int, h models.History) models.Work {
			return models.Work{Year: h.Year, Title: h.Title, Subtitle: h.Subtitle}
		}),
	}
}
