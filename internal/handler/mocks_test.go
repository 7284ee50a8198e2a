package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"galleryhub/internal/models"
	"galleryhub/internal/pagination"
	"galleryhub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ExchangeProviderIdentity(ctx context.Context, provider, accessToken string) (*models.User, bool, error) {
	args := m.Called(ctx, provider, accessToken)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, provider, accessToken string) (*service.LoginResult, error) {
	args := m.Called(ctx, provider, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SetNickname(ctx context.Context, userID, nickname string) error {
	return m.Called(ctx, userID, nickname).Error(0)
}

func (m *MockUserService) GetNamecard(ctx context.Context, userID string) (*models.Namecard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Namecard), args.Error(1)
}

func (m *MockUserService) UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate, image *service.Upload) error {
	return m.Called(ctx, userID, update, image).Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context) ([]models.Gallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryService) Create(ctx context.Context, name, image string) (*models.Gallery, error) {
	args := m.Called(ctx, name, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gallery), args.Error(1)
}

type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) Create(ctx context.Context, in service.CreatePostingInput) (*models.Posting, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Posting), args.Error(1)
}

func (m *MockPostingService) List(ctx context.Context, galleryID string, page int) (pagination.Page[models.PostingListItem], error) {
	args := m.Called(ctx, galleryID, page)
	return args.Get(0).(pagination.Page[models.PostingListItem]), args.Error(1)
}

func (m *MockPostingService) Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error) {
	args := m.Called(ctx, galleryID, postingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostingDetail), args.Error(1)
}

func (m *MockPostingService) Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error {
	return m.Called(ctx, galleryID, postingID, userID, update).Error(0)
}

func (m *MockPostingService) Delete(ctx context.Context, galleryID, postingID, userID string) error {
	return m.Called(ctx, galleryID, postingID, userID).Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, galleryID, postingID, userID, content string) (*models.Comment, error) {
	args := m.Called(ctx, galleryID, postingID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, galleryID, postingID string, page int) (pagination.Page[models.CommentItem], error) {
	args := m.Called(ctx, galleryID, postingID, page)
	return args.Get(0).(pagination.Page[models.CommentItem]), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, galleryID, postingID, commentID, userID, content string) error {
	return m.Called(ctx, galleryID, postingID, commentID, userID, content).Error(0)
}

func (m *MockCommentService) Delete(ctx context.Context, galleryID, postingID, commentID, userID string) error {
	return m.Called(ctx, galleryID, postingID, commentID, userID).Error(0)
}

type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) ToggleBookmark(ctx context.Context, userID, galleryID string) (models.ToggleResult, error) {
	args := m.Called(ctx, userID, galleryID)
	return args.Get(0).(models.ToggleResult), args.Error(1)
}

func (m *MockInteractionService) ListBookmarks(ctx context.Context, userID string) ([]models.BookmarkedGallery, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookmarkedGallery), args.Error(1)
}

func (m *MockInteractionService) ToggleLike(ctx context.Context, userID, galleryID, postingID string) (models.ToggleResult, error) {
	args := m.Called(ctx, userID, galleryID, postingID)
	return args.Get(0).(models.ToggleResult), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) BuildProfile(ctx context.Context, targetUserID, requestingUserID string) (*models.ProfileView, error) {
	args := m.Called(ctx, targetUserID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileView), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, upload service.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) DeleteImage(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) Check(ctx context.Context) (service.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Status), args.Error(1)
}
