// Package storage persists uploaded note files on the local
// filesystem. Stored names are random, so concurrent uploads never
// collide and callers never control the on-disk name.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the uploaded file under a generated unique name that
// keeps the original extension, and returns that name as the handle
// to store alongside the entity row.
func (fs *FileStore) Save(file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(fs.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	log.Debug().Str("file", name).Int64("size", file.Size).Msg("stored upload")
	return name, nil
}

// Path resolves a stored handle to the on-disk path.
func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.dir, name)
}

// Readable reports whether the stored file exists and is a regular
// readable file.
func (fs *FileStore) Readable(name string) bool {
	f, err := os.Open(fs.Path(name))
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
