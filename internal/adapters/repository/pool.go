// Package repository persists the candidate pool and the per-day files.
// Everything is whole-file JSON I/O: the pool is durable input shared
// between tools, daily files are derived output. Writes are whole-file
// overwrites; generation is idempotent so a crashed run is safely
// re-run.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/departed/internal/domain/model"
)

// File and directory permissions for generated artifacts.
const (
	filePermission = 0o644
	dirPermission  = 0o755
)

// PoolStore reads and writes the candidate pool file.
type PoolStore struct {
	path       string
	backupPath string
}

// NewPoolStore creates a PoolStore for the given pool path.
func NewPoolStore(path string, opts ...PoolOption) *PoolStore {
	s := &PoolStore{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the whole pool. A missing file is ErrPoolMissing so
// callers can distinguish "run the scraper first" from corruption.
func (s *PoolStore) Load(ctx context.Context) ([]model.Celebrity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPoolMissing, s.path)
		}
		return nil, fmt.Errorf("read pool: %w", err)
	}

	var pool []model.Celebrity
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolCorrupt, err)
	}
	return pool, nil
}

// Save writes the pool pretty-printed so the file stays reviewable in
// diffs. Parent directories are created as needed.
func (s *PoolStore) Save(ctx context.Context, pool []model.Celebrity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPermission); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pool: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}
	return nil
}

// Backup copies the current pool to the backup path before an
// overwrite attempt. No existing pool is not an error; there is simply
// nothing to back up.
func (s *PoolStore) Backup(ctx context.Context) (bool, error) {
	if s.backupPath == "" {
		return false, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read pool for backup: %w", err)
	}

	if err := os.WriteFile(s.backupPath, data, filePermission); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// Path returns the pool file path.
func (s *PoolStore) Path() string {
	return s.path
}
