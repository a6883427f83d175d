package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bigmanpc/api/internal/config"
)

// ObjectStore holds product images in a bucket so the API stays
// stateless across instances.
type ObjectStore struct {
	client *minio.Client
	cfg    config.StorageConfig
}

func NewObjectStore(cfg config.StorageConfig) (*ObjectStore, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &ObjectStore{
		client: client,
		cfg:    cfg,
	}, nil
}

func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.BucketImages)
	if err != nil {
		return fmt.Errorf("bucket exists %s: %w", s.cfg.BucketImages, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.BucketImages, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.cfg.BucketImages, err)
		}
	}
	return nil
}

func (s *ObjectStore) PutImage(ctx context.Context, objectKey string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.cfg.BucketImages, objectKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// PublicURL builds the browsable URL for a stored object.
func (s *ObjectStore) PublicURL(objectKey string) string {
	base := strings.TrimSuffix(s.cfg.Endpoint, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.BucketImages, objectKey)
}
