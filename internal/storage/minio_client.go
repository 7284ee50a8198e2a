package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"galleryhub/internal/config"
	"galleryhub/internal/models"
)

// Storage is the media upload collaborator: it stores a file and returns its key.
type Storage interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	m := &MinIOClient{client: client, bucket: cfg.MinIO.BucketName}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = m.ensureBucket(ctx, cfg.MinIO.Region); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}

	if err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", m.bucket, err)
	}

	return nil
}

func (m *MinIOClient) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error) {
	key := ObjectKey(fileName)
	if contentType == "" {
		contentType = ContentType(fileName)
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", models.ErrUpload, key, err)
	}

	return key, nil
}

func (m *MinIOClient) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: remove %s: %v", models.ErrUpload, key, err)
	}
	return nil
}

// ObjectKey prefixes the base file name with a random hex id so uploads never collide.
func ObjectKey(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "") + base
}

func ContentType(fileName string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}

// PublicURL joins the media base URL and a storage key.
func PublicURL(baseURL, key string) string {
	if baseURL == "" {
		return key
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + key
}
