package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize bounds a single image upload.
const MaxUploadSize = 5 << 20 // 5 MB

var (
	ErrFileTooLarge    = errors.New("image exceeds the 5 MB limit")
	ErrUnsupportedType = errors.New("only image uploads are accepted")
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// FileStorage persists an uploaded image and returns the reference the
// owning record stores. Saving completes before that record is written.
type FileStorage interface {
	Save(file *multipart.FileHeader) (string, error)
}

// LocalFileStorage writes uploads to a directory served under /uploads.
type LocalFileStorage struct {
	uploadDir string
}

func NewLocalFileStorage(uploadDir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{uploadDir: uploadDir}, nil
}

func (s *LocalFileStorage) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", ErrUnsupportedType
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
