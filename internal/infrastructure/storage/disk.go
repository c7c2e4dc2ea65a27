// Package storage provides the local-disk file store backing admin uploads.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// DiskStore writes uploads to a directory and maps them to a public URL
// base, which the HTTP layer serves statically.
type DiskStore struct {
	dir        string
	publicBase string
}

// NewDiskStore ensures the upload directory exists and returns the store.
func NewDiskStore(dir, publicBase string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, publicBase: publicBase}, nil
}

// Save writes the file under the given name and returns its public path.
// The name is generated upstream; only its base is used so a crafted
// filename cannot escape the directory.
func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path.Join(s.publicBase, name), nil
}
