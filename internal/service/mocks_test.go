package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"galleryhub/internal/models"
	"galleryhub/internal/oauth"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetOrCreateByProvider(ctx context.Context, provider, providerID string, profile models.ProviderProfile) (*models.User, bool, error) {
	args := m.Called(ctx, provider, providerID, profile)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	args := m.Called(ctx, nickname)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateNickname(ctx context.Context, userID, nickname string) error {
	return m.Called(ctx, userID, nickname).Error(0)
}

func (m *MockUserRepository) UpdateNamecard(ctx context.Context, userID string, update models.NamecardUpdate) error {
	return m.Called(ctx, userID, update).Error(0)
}

func (m *MockUserRepository) ListHistories(ctx context.Context, userID string) ([]models.History, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.History), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]models.Gallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) Exists(ctx context.Context, galleryID string) (bool, error) {
	args := m.Called(ctx, galleryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGalleryRepository) Create(ctx context.Context, gallery *models.Gallery) error {
	return m.Called(ctx, gallery).Error(0)
}

type MockPostingRepository struct {
	mock.Mock
}

func (m *MockPostingRepository) Create(ctx context.Context, posting *models.Posting) error {
	return m.Called(ctx, posting).Error(0)
}

func (m *MockPostingRepository) Exists(ctx context.Context, galleryID, postingID string) (bool, error) {
	args := m.Called(ctx, galleryID, postingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostingRepository) CountByGallery(ctx context.Context, galleryID string) (int, error) {
	args := m.Called(ctx, galleryID)
	return args.Int(0), args.Error(1)
}

func (m *MockPostingRepository) ListByGallery(ctx context.Context, galleryID string, limit, offset int) ([]models.PostingListItem, error) {
	args := m.Called(ctx, galleryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostingListItem), args.Error(1)
}

func (m *MockPostingRepository) Read(ctx context.Context, galleryID, postingID string) (*models.PostingDetail, error) {
	args := m.Called(ctx, galleryID, postingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostingDetail), args.Error(1)
}

func (m *MockPostingRepository) Update(ctx context.Context, galleryID, postingID, userID string, update models.PostingUpdate) error {
	return m.Called(ctx, galleryID, postingID, userID, update).Error(0)
}

func (m *MockPostingRepository) Delete(ctx context.Context, galleryID, postingID, userID string) error {
	return m.Called(ctx, galleryID, postingID, userID).Error(0)
}

func (m *MockPostingRepository) summaries(args mock.Arguments) ([]models.PostingSummary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostingSummary), args.Error(1)
}

func (m *MockPostingRepository) ListByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return m.summaries(m.Called(ctx, userID))
}

func (m *MockPostingRepository) ListLikedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return m.summaries(m.Called(ctx, userID))
}

func (m *MockPostingRepository) ListCommentedByUser(ctx context.Context, userID string) ([]models.PostingSummary, error) {
	return m.summaries(m.Called(ctx, userID))
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) CountByPosting(ctx context.Context, postingID string) (int, error) {
	args := m.Called(ctx, postingID)
	return args.Int(0), args.Error(1)
}

func (m *MockCommentRepository) ListByPosting(ctx context.Context, postingID string, limit, offset int) ([]models.CommentItem, error) {
	args := m.Called(ctx, postingID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentItem), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, postingID, commentID, userID, content string) error {
	return m.Called(ctx, postingID, commentID, userID, content).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, postingID, commentID, userID string) error {
	return m.Called(ctx, postingID, commentID, userID).Error(0)
}

type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Toggle(ctx context.Context, userID, galleryID string) (models.ToggleResult, error) {
	args := m.Called(ctx, userID, galleryID)
	return args.Get(0).(models.ToggleResult), args.Error(1)
}

func (m *MockBookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.BookmarkedGallery, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookmarkedGallery), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, userID, postingID string) (models.ToggleResult, error) {
	args := m.Called(ctx, userID, postingID)
	return args.Get(0).(models.ToggleResult), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockProvider struct {
	mock.Mock
	name string
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) FetchIdentity(ctx context.Context, accessToken string) (oauth.Identity, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(oauth.Identity), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, contentType, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
