package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"galleryhub/internal/config"
	"galleryhub/internal/models"
	"galleryhub/internal/service"
)

type Handlers struct {
	AuthService        service.AuthService
	UserService        service.UserService
	GalleryService     service.GalleryService
	PostingService     service.PostingService
	CommentService     service.CommentService
	InteractionService service.InteractionService
	ProfileService     service.ProfileService
	MediaService       service.MediaService
	StatusService      service.StatusService
	Cfg                *config.Config
	Validate           *validator.Validate
	Log                *zap.Logger
}

func NewHandlers(service *service.Service, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:        service.Auth,
		UserService:        service.User,
		GalleryService:     service.Gallery,
		PostingService:     service.Posting,
		CommentService:     service.Comment,
		InteractionService: service.Interaction,
		ProfileService:     service.Profile,
		MediaService:       service.Media,
		StatusService:      service.Status,
		Cfg:                config,
		Validate:           NewValidator(),
		Log:                log,
	}
}

// NewValidator reports failed fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// pathEntities names the entity each path variable refers to.
var pathEntities = map[string]error{
	"gallery_id": models.ErrGalleryNotFound,
	"posting_id": models.ErrPostingNotFound,
	"comment_id": models.ErrCommentNotFound,
	"user_id":    models.ErrUserNotFound,
}

// pathID returns a path variable that must be a UUID. Anything else cannot name
// an existing row and is reported as that entity's NotFound.
func pathID(r *http.Request, name string) (string, error) {
	id := mux.Vars(r)[name]
	if _, err := uuid.Parse(id); err != nil {
		if notFound, ok := pathEntities[name]; ok {
			return "", notFound
		}
		return "", models.ErrNotFound
	}
	return id, nil
}

// decodeAndValidate reads a JSON body into req and validates it.
func (h *Handlers) decodeAndValidate(r *http.Request, req interface{}) error {
	// malformed or empty bodies get the generic key error without field detail
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &models.ValidationError{}
	}
	return h.validate(req)
}

func (h *Handlers) validate(req interface{}) error {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &models.ValidationError{}
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fieldPath(fe.Namespace()))
	}
	return &models.ValidationError{Fields: fields}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
