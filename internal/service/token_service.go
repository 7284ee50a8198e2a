package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"galleryhub/internal/config"
	"galleryhub/internal/models"
)

// userIDClaim is the session token claim holding the user id.
const userIDClaim = "id"

type TokenService interface {
	IssueSessionToken(userID string) (string, error)
	VerifySessionToken(tokenString string) (string, error)
}

type tokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) (TokenService, error) {
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is not set")
	}

	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", cfg.JWTAlgorithm)
	}

	return &tokenService{
		secret: []byte(cfg.JWTSecretKey),
		method: method,
		ttl:    cfg.TokenTTL,
	}, nil
}

// IssueSessionToken signs a token for userID. Tokens carry no expiry unless a TTL is configured.
func (s *tokenService) IssueSessionToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		userIDClaim: userID,
	}
	if s.ttl > 0 {
		now := time.Now()
		claims["iat"] = now.Unix()
		claims["exp"] = now.Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(s.method, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) VerifySessionToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", models.ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.ErrInvalidToken
	}

	userID, ok := claims[userIDClaim].(string)
	if !ok || userID == "" {
		return "", models.ErrInvalidToken
	}

	return userID, nil
}
