package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"galleryhub/internal/middleware"
)

type LoginResponse struct {
	Token            string `json:"TOKEN"`
	NicknameRequired bool   `json:"NICKNAME_REQUIRED"`
}

// ProviderLogin exchanges a social provider access token, sent in the auth
// header, for a session token.
func (h *Handlers) ProviderLogin(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := middleware.ExtractToken(r.Header.Get(h.Cfg.AuthHeader))
		if accessToken == "" {
			WriteError(w, CodeInvalidToken, http.StatusBadRequest)
			return
		}

		result, err := h.AuthService.Login(r.Context(), provider, accessToken)
		if err != nil {
			h.handleError(w, r, err, http.StatusBadRequest)
			return
		}

		if result.Created {
			h.Log.Info("user signed up",
				zap.String("provider", provider),
				zap.String("user_id", result.User.UserID))
		}

		writeSuccess(w, LoginResponse{
			Token:            result.Token,
			NicknameRequired: result.NeedsNickname,
		}, http.StatusOK)
	}
}
