package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore saves files to a directory on local disk. Development default.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the target directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the file under the store directory, creating subdirectories
// as needed. path must be a relative, already-sanitized storage path.
func (s *LocalStore) Save(ctx context.Context, path string, file io.Reader, contentType string) (*FileInfo, error) {
	full := filepath.Join(s.dir, filepath.Clean(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	out, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	size, err := io.Copy(out, file)
	if err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &FileInfo{
		URL:      s.URL(path),
		FileName: filepath.Base(path),
		FileSize: size,
		FileType: contentType,
	}, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Clean(path)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// URL returns the serving URL for a stored file.
func (s *LocalStore) URL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}
