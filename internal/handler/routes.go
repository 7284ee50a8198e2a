package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"galleryhub/internal/metrics"
	"galleryhub/internal/middleware"
	"galleryhub/internal/models"
)

// RegisterRoutes mounts every endpoint on router. Protected endpoints are
// wrapped by auth.Require; the rest are public.
func (h *Handlers) RegisterRoutes(router *mux.Router, auth *middleware.Authenticator) {
	router.Use(metrics.InstrumentHandler)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/kakao", h.ProviderLogin(models.ProviderKakao)).Methods(http.MethodPost)
	users.HandleFunc("/naver", h.ProviderLogin(models.ProviderNaver)).Methods(http.MethodPost)
	users.Handle("/nickname", auth.Require(h.SetNickname)).Methods(http.MethodPost)
	users.Handle("/namecard", auth.Require(h.GetNamecard)).Methods(http.MethodGet)
	users.Handle("/namecard", auth.Require(h.UpdateNamecard)).Methods(http.MethodPost)
	users.Handle("/myprofile", auth.Require(h.MyProfile)).Methods(http.MethodGet)
	users.Handle("/me", auth.Require(h.DeleteMe)).Methods(http.MethodDelete)
	users.Handle("/{user_id}/profile", auth.Require(h.UserProfile)).Methods(http.MethodGet)

	router.Handle("/images", auth.Require(h.UploadImage)).Methods(http.MethodPost)

	router.HandleFunc("/galleries", h.ListGalleries).Methods(http.MethodGet)
	router.Handle("/galleries", auth.Require(h.CreateGallery)).Methods(http.MethodPost)

	galleries := router.PathPrefix("/galleries").Subrouter()
	// must precede /{gallery_id}
	galleries.Handle("/bookmark-list", auth.Require(h.BookmarkList)).Methods(http.MethodGet)
	galleries.HandleFunc("/{gallery_id}", h.ListPostings).Methods(http.MethodGet)
	galleries.Handle("/{gallery_id}", auth.Require(h.CreatePosting)).Methods(http.MethodPost)
	galleries.Handle("/{gallery_id}/bookmark", auth.Require(h.ToggleBookmark)).Methods(http.MethodPost)
	galleries.HandleFunc("/{gallery_id}/{posting_id}", h.GetPosting).Methods(http.MethodGet)
	galleries.Handle("/{gallery_id}/{posting_id}", auth.Require(h.UpdatePosting)).Methods(http.MethodPatch)
	galleries.Handle("/{gallery_id}/{posting_id}", auth.Require(h.DeletePosting)).Methods(http.MethodDelete)
	galleries.Handle("/{gallery_id}/{posting_id}/like", auth.Require(h.ToggleLike)).Methods(http.MethodPost)
	galleries.HandleFunc("/{gallery_id}/{posting_id}/comments", h.ListComments).Methods(http.MethodGet)
	galleries.Handle("/{gallery_id}/{posting_id}/comments", auth.Require(h.CreateComment)).Methods(http.MethodPost)
	galleries.Handle("/{gallery_id}/{posting_id}/comments/{comment_id}", auth.Require(h.UpdateComment)).Methods(http.MethodPatch)
	galleries.Handle("/{gallery_id}/{posting_id}/comments/{comment_id}", auth.Require(h.DeleteComment)).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, CodeResourceNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, CodeMethodNotAllowed, http.StatusMethodNotAllowed)
	})
}
