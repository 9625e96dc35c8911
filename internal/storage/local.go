// Package storage is the blob area floor plan binaries are written to.
// The metadata rows in Postgres reference blobs by their stored name.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore persists blobs under a single directory on the local
// filesystem.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes a blob under the given stored name. The name is generated by
// the caller and never derived from user input, so no path cleaning beyond
// Base is needed.
func (s *LocalStore) Save(ctx context.Context, storedName string, content []byte) error {
	path := filepath.Join(s.dir, filepath.Base(storedName))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to save blob %s: %w", storedName, err)
	}
	return nil
}

// Remove deletes a stored blob. Missing blobs are not an error.
func (s *LocalStore) Remove(ctx context.Context, storedName string) error {
	path := filepath.Join(s.dir, filepath.Base(storedName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
