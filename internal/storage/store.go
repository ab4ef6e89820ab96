// Package storage archives originally uploaded attendance workbooks. The
// parsed row matrix lives in PostgreSQL; the untouched source file is kept
// here so a disputed payroll month can be re-checked against the original.
package storage

import (
	"context"
	"io"
)

// FileInfo describes a stored file.
type FileInfo struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// Store abstracts the archive backend so handlers don't care whether files
// land on local disk (development) or Cloudflare R2 (production).
type Store interface {
	Save(ctx context.Context, path string, file io.Reader, contentType string) (*FileInfo, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
