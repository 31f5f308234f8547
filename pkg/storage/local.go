package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage writes objects below a base directory. Paths that would
// resolve outside of it are rejected.
type LocalStorage struct {
	baseDir      string // Absolute path
	baseURL      string // URL prefix for serving files, e.g. "/files/"
	writeTimeout time.Duration
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalWriteTimeout bounds each Put. Without it the caller's context
// deadline applies.
func WithLocalWriteTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.writeTimeout = timeout
	}
}

// NewLocalStorage creates storage rooted at baseDir, creating the directory
// if needed.
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Put writes data to path. The object is written to a temporary file in the
// same directory and renamed into place, so readers never see a partial image.
func (s *LocalStorage) Put(ctx context.Context, path string, data []byte, contentType string) (*Object, error) {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}
	if absPath == s.baseDir {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, err)
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := os.Rename(tmpName, absPath); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, err)
	}

	relPath, err := filepath.Rel(s.baseDir, absPath)
	if err != nil {
		relPath = path
	}

	return &Object{
		Path:        filepath.ToSlash(relPath),
		Size:        int64(len(data)),
		ContentType: contentType,
		Location:    absPath,
	}, nil
}

// Exists reports whether a file exists at path.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}
	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(absPath)
	return err == nil
}

// Delete removes a single file. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteObject, err)
	}
	return nil
}

// URL returns the public URL for a file.
func (s *LocalStorage) URL(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))
	if strings.HasPrefix(path, "/") {
		return path
	}
	return s.baseURL + path
}

// resolvePath joins path onto baseDir and rejects results outside of it.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	rel, err := filepath.Rel(s.baseDir, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return absPath, nil
}
