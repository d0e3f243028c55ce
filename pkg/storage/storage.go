package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the document store collaborator. The service only records
// path/size/name; blob contents are never interpreted.
type BlobStore interface {
	Save(ctx context.Context, path string, r io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

// FileStore keeps blobs on the local filesystem under a root directory.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	full, err := s.resolve(path)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return 0, fmt.Errorf("create blob directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return 0, fmt.Errorf("create blob %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(full)
		return 0, fmt.Errorf("write blob %s: %w", path, err)
	}

	return n, nil
}

func (s *FileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", path, err)
	}

	return f, nil
}

func (s *FileStore) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}

	return nil
}

// resolve rejects paths that would escape the storage root.
func (s *FileStore) resolve(path string) (string, error) {
	clean := filepath.Clean(path)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}
