package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
	"galleryhub/internal/service"
)

func strPtr(s string) *string {
	return &s
}

func TestCreatePosting(t *testing.T) {
	path := "/galleries/" + galleryID

	tests := []struct {
		name        string
		body        map[string]string
		serviceErr  error
		wantStatus  int
		wantMessage string
		wantFields  []string
	}{
		{
			name:       "created",
			body:       map[string]string{"title": "Hello", "content": "first"},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing gallery is 404",
			body:        map[string]string{"title": "Hello", "content": "first"},
			serviceErr:  models.ErrGalleryNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: CodeGalleryNotFound,
		},
		{
			name:       "missing content",
			body:       map[string]string{"title": "Hello"},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"content"},
		},
		{
			name:       "title and content longer than their columns",
			body:       map[string]string{"title": strings.Repeat("t", 150), "content": strings.Repeat("c", 3000)},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"title", "content"},
		},
		{
			name:       "limits count characters not bytes",
			body:       map[string]string{"title": strings.Repeat("갤", 100), "content": strings.Repeat("러", 2000)},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.wantFields == nil {
				in := service.CreatePostingInput{GalleryID: galleryID, UserID: userID, Title: tt.body["title"], Content: tt.body["content"]}
				if tt.serviceErr != nil {
					f.postings.On("Create", mock.Anything, in).Return(nil, tt.serviceErr)
				} else {
					f.postings.On("Create", mock.Anything, in).Return(&models.Posting{PostingID: postingID}, nil)
				}
			}

			rr := f.do(http.MethodPost, path, jsonBody(t, tt.body), true)
			assert.Equal(t, tt.wantStatus, rr.Code)

			switch {
			case tt.wantFields != nil:
				assert.Equal(t, tt.wantFields, fields(t, rr))
			case tt.wantMessage != "":
				assert.Equal(t, tt.wantMessage, decode(t, rr)["MESSAGE"])
			default:
				assert.JSONEq(t, `{"MESSAGE":"SUCCESS","POSTING_ID":"`+postingID+`"}`, rr.Body.String())
			}
		})
	}
}

func TestListPostings(t *testing.T) {
	t.Run("page past the end is empty", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("List", mock.Anything, galleryID, 7).
			Return(pagination.Page[models.PostingListItem]{Items: []models.PostingListItem{}, Page: 7, TotalPages: 2}, nil)

		rr := f.do(http.MethodGet, "/galleries/"+galleryID+"?page=7", nil, false)
		require.Equal(t, http.StatusOK, rr.Code)
		page := decode(t, rr)["MESSAGE"].(map[string]any)
		assert.Empty(t, page["items"])
		assert.Equal(t, false, page["has_next"])
	})

	t.Run("missing gallery is 400", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("List", mock.Anything, galleryID, 1).
			Return(pagination.Page[models.PostingListItem]{}, models.ErrGalleryNotFound)

		rr := f.do(http.MethodGet, "/galleries/"+galleryID, nil, false)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, CodeGalleryNotFound, decode(t, rr)["MESSAGE"])
	})
}

func TestGetPosting(t *testing.T) {
	t.Run("detail", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("Read", mock.Anything, galleryID, postingID).Return(&models.PostingDetail{
			PostingID: postingID,
			GalleryID: galleryID,
			Title:     "Hello",
			ViewCount: 3,
			IsFirst:   true,
			IsLast:    true,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		rr := f.do(http.MethodGet, "/galleries/"+galleryID+"/"+postingID, nil, false)
		require.Equal(t, http.StatusOK, rr.Code)
		detail := decode(t, rr)["MESSAGE"].(map[string]any)
		assert.Equal(t, "Hello", detail["title"])
		assert.Equal(t, float64(3), detail["view_count"])
		assert.Equal(t, true, detail["is_first"])
	})

	t.Run("missing posting", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("Read", mock.Anything, galleryID, postingID).Return(nil, models.ErrPostingNotFound)

		rr := f.do(http.MethodGet, "/galleries/"+galleryID+"/"+postingID, nil, false)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, CodePostingNotFound, decode(t, rr)["MESSAGE"])
	})

	t.Run("non uuid posting id", func(t *testing.T) {
		f := newFixture(t)

		rr := f.do(http.MethodGet, "/galleries/"+galleryID+"/abc", nil, false)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, CodePostingNotFound, decode(t, rr)["MESSAGE"])
	})
}

func TestUpdatePosting(t *testing.T) {
	path := "/galleries/" + galleryID + "/" + postingID

	t.Run("partial update keeps omitted fields nil", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("Update", mock.Anything, galleryID, postingID, userID,
			models.PostingUpdate{Title: strPtr("Renamed")}).Return(nil)

		rr := f.do(http.MethodPatch, path, jsonBody(t, map[string]string{"title": "Renamed"}), true)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, CodeSuccess, decode(t, rr)["MESSAGE"])
	})

	t.Run("not the author", func(t *testing.T) {
		f := newFixture(t)
		f.postings.On("Update", mock.Anything, galleryID, postingID, userID, mock.Anything).Return(models.ErrForbidden)

		rr := f.do(http.MethodPatch, path, jsonBody(t, map[string]string{"content": "mine now"}), true)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, CodeForbidden, decode(t, rr)["MESSAGE"])
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		f := newFixture(t)

		rr := f.do(http.MethodPatch, path, jsonBody(t, map[string]string{"title": ""}), true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"title"}, fields(t, rr))
	})
}

func TestDeletePosting(t *testing.T) {
	path := "/galleries/" + galleryID + "/" + postingID

	f := newFixture(t)
	f.postings.On("Delete", mock.Anything, galleryID, postingID, userID).Return(nil).Once()
	f.postings.On("Delete", mock.Anything, galleryID, postingID, userID).Return(models.ErrPostingNotFound).Once()

	rr := f.do(http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.Bytes())

	rr = f.do(http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, CodePostingNotFound, decode(t, rr)["MESSAGE"])
}

func TestToggleLike(t *testing.T) {
	path := "/galleries/" + galleryID + "/" + postingID + "/like"

	f := newFixture(t)
	f.interaction.On("ToggleLike", mock.Anything, userID, galleryID, postingID).Return(models.Created, nil).Once()
	f.interaction.On("ToggleLike", mock.Anything, userID, galleryID, postingID).Return(models.Removed, nil).Once()
	f.interaction.On("ToggleLike", mock.Anything, userID, galleryID, postingID).Return(models.ToggleResult(0), models.ErrPostingNotFound).Once()

	rr := f.do(http.MethodPost, path, nil, true)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, CodeLikeCreated, decode(t, rr)["MESSAGE"])

	rr = f.do(http.MethodPost, path, nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = f.do(http.MethodPost, path, nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, CodePostingNotFound, decode(t, rr)["MESSAGE"])
}

func TestComments(t *testing.T) {
	base := "/galleries/" + galleryID + "/" + postingID + "/comments"

	t.Run("create", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("Create", mock.Anything, galleryID, postingID, userID, "nice").
			Return(&models.Comment{CommentID: commentID}, nil)

		rr := f.do(http.MethodPost, base, jsonBody(t, map[string]string{"content": "nice"}), true)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"MESSAGE":"SUCCESS","COMMENT_ID":"`+commentID+`"}`, rr.Body.String())
	})

	t.Run("list is public and paged", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("List", mock.Anything, galleryID, postingID, 2).Return(pagination.Page[models.CommentItem]{
			Items:      []models.CommentItem{{CommentID: commentID, Content: "nice"}},
			Page:       2,
			TotalPages: 3,
			HasNext:    true,
		}, nil)

		rr := f.do(http.MethodGet, base+"?page=2", nil, false)
		require.Equal(t, http.StatusOK, rr.Code)
		page := decode(t, rr)["MESSAGE"].(map[string]any)
		assert.Equal(t, true, page["has_next"])
		assert.Len(t, page["items"], 1)
	})

	t.Run("list on missing posting", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("List", mock.Anything, galleryID, postingID, 1).
			Return(pagination.Page[models.CommentItem]{}, models.ErrPostingNotFound)

		rr := f.do(http.MethodGet, base, nil, false)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, CodePostingNotFound, decode(t, rr)["MESSAGE"])
	})

	t.Run("content longer than the column", func(t *testing.T) {
		f := newFixture(t)

		rr := f.do(http.MethodPost, base, jsonBody(t, map[string]string{"content": strings.Repeat("a", 800)}), true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"content"}, fields(t, rr))
	})

	t.Run("update by someone else", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("Update", mock.Anything, galleryID, postingID, commentID, userID, "edited").Return(models.ErrForbidden)

		rr := f.do(http.MethodPatch, base+"/"+commentID, jsonBody(t, map[string]string{"content": "edited"}), true)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("update", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("Update", mock.Anything, galleryID, postingID, commentID, userID, "edited").Return(nil)

		rr := f.do(http.MethodPatch, base+"/"+commentID, jsonBody(t, map[string]string{"content": "edited"}), true)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("Delete", mock.Anything, galleryID, postingID, commentID, userID).Return(models.ErrCommentNotFound)

		rr := f.do(http.MethodDelete, base+"/"+commentID, nil, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, CodeCommentNotFound, decode(t, rr)["MESSAGE"])
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("Delete", mock.Anything, galleryID, postingID, commentID, userID).Return(nil)

		rr := f.do(http.MethodDelete, base+"/"+commentID, nil, true)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
