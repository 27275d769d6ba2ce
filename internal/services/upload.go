package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// UploadService reads uploaded résumés into memory after checking their
// type and size.
type UploadService interface {
	ReadFile(file *multipart.FileHeader) ([]byte, error)
	Read(filename string, size int64, src io.Reader) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{maxFileSize: maxFileSize}
}

func (s *uploadService) ReadFile(file *multipart.FileHeader) ([]byte, error) {
	if err := s.check(file.Filename, file.Size); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.read(src)
}

// Read applies the same checks to a résumé that does not arrive as a
// multipart upload. A negative size skips the declared-size check.
func (s *uploadService) Read(filename string, size int64, src io.Reader) ([]byte, error) {
	if err := s.check(filename, size); err != nil {
		return nil, err
	}
	return s.read(src)
}

func (s *uploadService) check(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	if size > s.maxFileSize {
		return fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}
	return nil
}

func (s *uploadService) read(src io.Reader) ([]byte, error) {
	// One extra byte detects a body larger than the declared size.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return data, nil
}
