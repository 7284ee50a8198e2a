package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/ecodeclub/ekit/slice"

	"galleryhub/internal/models"
	"galleryhub/internal/service"
)

type NicknameRequest struct {
	Nickname string `json:"nickname" validate:"required,max=20"`
}

type WorkRequest struct {
	Year     int     `json:"year" validate:"required,gte=1900,lte=2100"`
	Title    string  `json:"title" validate:"required,max=100"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=100"`
}

// NamecardForm holds the multipart fields of a namecard update. Absent fields stay nil.
type NamecardForm struct {
	Name      *string       `json:"name" validate:"omitempty,max=30"`
	Slogan    *string       `json:"slogan" validate:"omitempty,max=100"`
	Introduce *string       `json:"introduce" validate:"omitempty,max=1000"`
	Email     *string       `json:"email" validate:"omitempty,email,max=200"`
	Location  *string       `json:"location" validate:"omitempty,max=100"`
	Works     []WorkRequest `json:"works" validate:"omitempty,dive"`
}

func (f NamecardForm) toUpdate() models.NamecardUpdate {
	update := models.NamecardUpdate{
		Name:      f.Name,
		Slogan:    f.Slogan,
		Introduce: f.Introduce,
		Email:     f.Email,
		Location:  f.Location,
	}
	if f.Works != nil {
		update.Works = slice.Map(f.Works, func(_ int, w WorkRequest) models.Work {
			return models.Work{Year: w.Year, Title: w.Title, Subtitle: w.Subtitle}
		})
	}
	return update
}

func (h *Handlers) SetNickname(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req NicknameRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := h.UserService.SetNickname(r.Context(), user.UserID, req.Nickname); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeMessage(w, CodeSuccess, http.StatusOK)
}

func (h *Handlers) GetNamecard(w http.ResponseWriter, r *http.Request, user *models.User) {
	namecard, err := h.UserService.GetNamecard(r.Context(), user.UserID)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, MessageResponse{Message: namecard}, http.StatusOK)
}

// UpdateNamecard reads a multipart form: plain text fields, "works" as a JSON
// array and an optional "image" file.
func (h *Handlers) UpdateNamecard(w http.ResponseWriter, r *http.Request, user *models.User) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeValidationError(w, nil)
		return
	}

	form, err := parseNamecardForm(r.MultipartForm)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := h.validate(&form); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	image, closeImage, err := formFile(r, "image")
	if err != nil {
		writeValidationError(w, []string{"image"})
		return
	}
	defer closeImage()

	if err := h.UserService.UpdateNamecard(r.Context(), user.UserID, form.toUpdate(), image); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeMessage(w, CodeSuccess, http.StatusCreated)
}

func (h *Handlers) MyProfile(w http.ResponseWriter, r *http.Request, user *models.User) {
	h.writeProfile(w, r, user.UserID, user.UserID)
}

func (h *Handlers) UserProfile(w http.ResponseWriter, r *http.Request, user *models.User) {
	targetID, err := pathID(r, "user_id")
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}
	h.writeProfile(w, r, targetID, user.UserID)
}

func (h *Handlers) writeProfile(w http.ResponseWriter, r *http.Request, targetID, requesterID string) {
	profile, err := h.ProfileService.BuildProfile(r.Context(), targetID, requesterID)
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeSuccess(w, MessageResponse{Message: profile}, http.StatusOK)
}

func (h *Handlers) DeleteMe(w http.ResponseWriter, r *http.Request, user *models.User) {
	if err := h.UserService.DeleteUser(r.Context(), user.UserID); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	writeNoContent(w)
}

func parseNamecardForm(form *multipart.Form) (NamecardForm, error) {
	var out NamecardForm
	field := func(name string) *string {
		values, ok := form.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		v := values[0]
		return &v
	}

	out.Name = field("name")
	out.Slogan = field("slogan")
	out.Introduce = field("introduce")
	out.Email = field("email")
	out.Location = field("location")

	if raw := field("works"); raw != nil {
		out.Works = []WorkRequest{}
		if err := json.Unmarshal([]byte(*raw), &out.Works); err != nil {
			return out, &models.ValidationError{Fields: []string{"works"}}
		}
	}
	return out, nil
}

// formFile returns the named file of a parsed multipart form, or nil when the
// field was not sent. The returned func closes the file.
func formFile(r *http.Request, name string) (*service.Upload, func(), error) {
	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}

	return &service.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}
