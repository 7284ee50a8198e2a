package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"galleryhub/internal/metrics"
	"galleryhub/internal/models"
	"galleryhub/internal/oauth"
	"galleryhub/internal/repository"
)

type LoginResult struct {
	User          *models.User
	Token         string
	NeedsNickname bool
	Created       bool
}

type AuthService interface {
	ExchangeProviderIdentity(ctx context.Context, provider, accessToken string) (*models.User, bool, error)
	Login(ctx context.Context, provider, accessToken string) (*LoginResult, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    TokenService
	providers map[string]oauth.Provider
	log       *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, providers map[string]oauth.Provider, log *zap.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		providers: providers,
		log:       log,
	}
}

// ExchangeProviderIdentity resolves the provider access token to a local user,
// creating it on first login. Nothing is written when the provider call fails.
func (s *authService) ExchangeProviderIdentity(ctx context.Context, provider, accessToken string) (*models.User, bool, error) {
	if accessToken == "" {
		return nil, false, models.ErrInvalidToken
	}

	p, ok := s.providers[provider]
	if !ok {
		return nil, false, fmt.Errorf("%w: unknown provider %q", models.ErrInvalidToken, provider)
	}

	identity, err := p.FetchIdentity(ctx, accessToken)
	if err != nil {
		metrics.RecordProviderLogin(provider, false)
		s.log.Error("provider identity lookup failed",
			zap.String("provider", provider),
			zap.Error(err))
		return nil, false, err
	}
	metrics.RecordProviderLogin(provider, true)

	user, created, err := s.userRepo.GetOrCreateByProvider(ctx, provider, identity.ProviderID, identity.Profile)
	if err != nil {
		return nil, false, fmt.Errorf("resolve %s user: %w", provider, err)
	}

	if created {
		s.log.Info("user created from provider login",
			zap.String("provider", provider),
			zap.String("user_id", user.UserID))
	}

	return user, created, nil
}

func (s *authService) Login(ctx context.Context, provider, accessToken string) (*LoginResult, error) {
	user, created, err := s.ExchangeProviderIdentity(ctx, provider, accessToken)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueSessionToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &LoginResult{
		User:          user,
		Token:         token,
		NeedsNickname: user.NeedsNickname(),
		Created:       created,
	}, nil
}

// Authenticate verifies a session token and loads its user. A valid token for a
// user that no longer exists yields ErrUserNotFound.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.tokens.VerifySessionToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}

	return user, nil
}
