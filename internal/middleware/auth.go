package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"galleryhub/internal/models"
)

// AuthedHandlerFunc is a handler that runs only for a resolved, existing user.
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *models.User)

type UserResolver interface {
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type contextKey struct{}

var userKey contextKey

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

type Authenticator struct {
	resolver UserResolver
	header   string
	log      *zap.Logger
}

func NewAuthenticator(resolver UserResolver, header string, log *zap.Logger) *Authenticator {
	if header == "" {
		header = "Authorization"
	}
	return &Authenticator{resolver: resolver, header: header, log: log}
}

// Require wraps h so it only runs with a verified session token whose user exists.
func (a *Authenticator) Require(h AuthedHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r.Header.Get(a.header))
		if token == "" {
			writeMessage(w, http.StatusBadRequest, "INVALID_TOKEN")
			return
		}

		user, err := a.resolver.Authenticate(r.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrInvalidToken):
			writeMessage(w, http.StatusBadRequest, "INVALID_TOKEN")
			return
		case errors.Is(err, models.ErrNotFound):
			writeMessage(w, http.StatusBadRequest, "INVALID_USER")
			return
		default:
			a.log.Error("authenticate request", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "INTERNAL_ERROR")
			return
		}

		h(w, r.WithContext(WithUser(r.Context(), user)), user)
	})
}

// ExtractToken accepts both a bare token and "Bearer <token>".
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func writeMessage(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"MESSAGE": code})
}
