package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file exceeds the upload size limit")
)

// UploadService validates an incoming image and hands the bytes to the blob
// store. Validation always happens before any storage call.
type UploadService struct {
	blob     BlobClient
	maxBytes int64
}

func NewUploadService(blob BlobClient, maxBytes int64) *UploadService {
	return &UploadService{blob: blob, maxBytes: maxBytes}
}

func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload checks content type and size, generates a collision-resistant name
// keeping the original extension, and stores the file. Returns the public URL.
func (s *UploadService) Upload(ctx context.Context, originalName, contentType string, size int64, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	if size > s.maxBytes {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := uuid.New().String() + ext

	url, err := s.blob.Put(ctx, filename, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", filename, err)
	}
	return url, nil
}
