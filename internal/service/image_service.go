package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/rs/zerolog"

	"bigmanpc/api/internal/config"
	"bigmanpc/api/internal/ids"
	"bigmanpc/api/internal/media/sniffer"
	"bigmanpc/api/internal/media/svg"
)

// DefaultImagePath is what a product gets when the admin form submits no
// image file. The odd-looking value is the path the storefront bundles.
const DefaultImagePath = "/src/assets/images/pc1.svg"

var (
	ErrImageTooLarge = errors.New("file is too large, maximum size is 5MB")
	ErrImageType     = errors.New("invalid file type, allowed types: JPG, PNG, GIF, SVG, WEBP")
)

// ImageStore is satisfied by storage.ObjectStore.
type ImageStore interface {
	PutImage(ctx context.Context, objectKey string, r io.Reader, size int64, contentType string) error
	PublicURL(objectKey string) string
}

type ImageService struct {
	store ImageStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewImageService(store ImageStore, cfg *config.AppConfig, log zerolog.Logger) *ImageService {
	return &ImageService{store: store, cfg: cfg, log: log}
}

// Save validates and stores an uploaded product image, returning the URL
// to record on the product. A nil header means no file was submitted and
// yields the default image path.
func (s *ImageService) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return DefaultImagePath, nil
	}

	if header.Size > s.cfg.Storage.MaxUploadSize {
		return "", ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.Storage.MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.Storage.MaxUploadSize {
		return "", ErrImageTooLarge
	}
	if len(data) == 0 {
		return "", ErrImageType
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	result, err := sniffer.DetectHead(head)
	if err != nil {
		return "", ErrImageType
	}

	if result.Type == sniffer.TypeSVG {
		clean, err := svg.Sanitize(data)
		if err != nil {
			return "", ErrImageType
		}
		data = clean
	}

	objectKey := fmt.Sprintf("products/%s.%s", ids.New(), result.Type)

	if err := s.store.PutImage(ctx, objectKey, bytes.NewReader(data), int64(len(data)), result.MIME); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return s.store.PublicURL(objectKey), nil
}
