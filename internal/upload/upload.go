// Package upload owns the managed storage directory for product images:
// validating and depositing uploads, serving them back, and removing files
// whose owning record is gone.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// URLPrefix is the public path images are served under. A product image path
// starting with it marks the file as owned by this store.
const URLPrefix = "/uploads/"

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image exceeds size limit")
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) *Store {
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Save validates an uploaded image (extension, declared content type, sniffed
// content, size) and deposits it under a fresh collision-free name. Returns
// the public path to store on the product record.
func (s *Store) Save(file multipart.File, hdr *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(hdr.Filename))
	if !allowedExts[ext] {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}

	if declared := hdr.Header.Get("Content-Type"); declared != "" && !allowedTypes[declared] {
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedType, declared)
	}

	if hdr.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, hdr.Size)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: over %d bytes", ErrTooLarge, s.maxBytes)
	}

	if mt := mimetype.Detect(data); !allowedTypes[mt.String()] {
		return "", fmt.Errorf("%w: detected %q", ErrUnsupportedType, mt.String())
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	return URLPrefix + name, nil
}

// Owns reports whether path points into the managed directory. External
// asset paths (seed images and the like) are never ours.
func (s *Store) Owns(path string) bool {
	return strings.HasPrefix(path, URLPrefix)
}

// Remove deletes the file behind an owned image path. Unowned paths and
// already-missing files are no-ops.
func (s *Store) Remove(path string) error {
	if !s.Owns(path) {
		return nil
	}

	// Base strips any traversal in the stored path.
	name := filepath.Base(strings.TrimPrefix(path, URLPrefix))
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// FileServer serves the managed directory under URLPrefix.
func (s *Store) FileServer() http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(http.Dir(s.dir)))
}
