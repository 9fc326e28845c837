package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholarstream/internal/apperror"
	"scholarstream/internal/storage"
)

const (
	MaxImageSize   = 5 << 20
	ImageURLExpiry = 7 * 24 * time.Hour

	imagePrefix = "images/"
)

// UploadedImage is the stored key and a presigned download URL.
type UploadedImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageService stores university and profile images in object storage.
type ImageService interface {
	// Upload stores the image under images/<uuid><ext>. The extension comes
	// from filename.
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*UploadedImage, error)
	// Open streams a stored image by its file name under images/.
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

type imageService struct {
	store storage.Storage
}

// NewImageService returns an ImageService. With a nil store every call
// reports the service as unavailable.
func NewImageService(store storage.Storage) ImageService {
	return &imageService{store: store}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*UploadedImage, error) {
	if s.store == nil {
		return nil, apperror.Unavailable("Image storage is not configured")
	}
	if r == nil {
		return nil, apperror.BadRequest("file is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.BadRequest("Only image files are allowed")
	}
	if size > MaxImageSize {
		return nil, apperror.BadRequest("Image must not exceed 5 MiB")
	}

	key := imagePrefix + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("upload to storage: %w", err))
	}

	url, err := s.store.PresignGet(ctx, info.Key, ImageURLExpiry)
	if err != nil {
		// Remove the object so no unreachable upload is left behind.
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, apperror.Internal(fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr))
		}
		return nil, apperror.Internal(fmt.Errorf("presign failed: %w", err))
	}
	return &UploadedImage{Key: info.Key, URL: url}, nil
}

func (s *imageService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, storage.ObjectInfo{}, apperror.Unavailable("Image storage is not configured")
	}
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, storage.ObjectInfo{}, apperror.BadRequest("Invalid image name")
	}

	rc, info, err := s.store.Get(ctx, imagePrefix+name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, storage.ObjectInfo{}, apperror.NotFound("Image not found")
	}
	if err != nil {
		return nil, storage.ObjectInfo{}, apperror.Internal(err)
	}
	return rc, info, nil
}
