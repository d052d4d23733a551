// AngelaMos | 2026
// store.go

package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/agrovia-exports/go-backend/internal/core"
)

// PublicPrefix is the only namespace asset paths may live under. The
// delete validator enforces it unconditionally, admin callers included.
const PublicPrefix = "/uploads/"

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Store manages uploaded image files under a single directory mapped to
// the /uploads/ URL prefix.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "uploads"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Save writes an uploaded file under a fresh name and returns its
// public path, which always falls under /uploads/ so a later Delete
// accepts it.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf(
			"unsupported file type %q: %w",
			ext,
			core.ErrInvalidInput,
		)
	}

	name := uuid.New().String() + ext

	diskPath, err := s.diskPath(PublicPrefix + name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		//nolint:errcheck // cleanup of partial write
		_ = f.Close()
		_ = os.Remove(diskPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}

	return PublicPrefix + name, nil
}

// Delete removes the file behind a public path. Deleting a path that
// does not exist on disk is a success, not an error; the returned bool
// reports whether a file was actually removed.
func (s *Store) Delete(path string) (bool, error) {
	diskPath, err := s.diskPath(path)
	if err != nil {
		return false, err
	}

	if err := os.Remove(diskPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove file: %w", err)
	}

	return true, nil
}

// diskPath maps a public /uploads/ path onto the store directory,
// rejecting anything outside the prefix or escaping the directory.
func (s *Store) diskPath(path string) (string, error) {
	if !strings.HasPrefix(path, PublicPrefix) {
		return "", fmt.Errorf(
			"path %q outside %s namespace: %w",
			path,
			PublicPrefix,
			core.ErrInvalidInput,
		)
	}

	rel := strings.TrimPrefix(path, PublicPrefix)
	if rel == "" {
		return "", fmt.Errorf("empty asset path: %w", core.ErrInvalidInput)
	}

	full := filepath.Join(s.dir, filepath.FromSlash(rel))

	absBase, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("resolve base dir: %w", err)
	}

	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	if absFull != absBase &&
		!strings.HasPrefix(absFull, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf(
			"path %q escapes upload directory: %w",
			path,
			core.ErrInvalidInput,
		)
	}

	if absFull == absBase {
		return "", fmt.Errorf("empty asset path: %w", core.ErrInvalidInput)
	}

	return absFull, nil
}
