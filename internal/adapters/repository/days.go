package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/departed/internal/domain/model"
)

// manifestFile maps day numbers to filename stems; it is the only file
// in the days directory that reveals the date mapping.
const manifestFile = "manifest.json"

// DayStore writes daily slice files and the manifest.
type DayStore struct {
	dir string
}

// NewDayStore creates a DayStore rooted at dir.
func NewDayStore(dir string) *DayStore {
	return &DayStore{dir: dir}
}

// WriteSlice persists one day's celebrities under the obfuscated stem.
// The content is compact JSON; daily files are fetched by the game
// client, not read by humans.
func (s *DayStore) WriteSlice(ctx context.Context, stem string, slice []model.Celebrity) error {
	if err := os.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("create days dir: %w", err)
	}

	data, err := json.Marshal(slice)
	if err != nil {
		return fmt.Errorf("encode slice %s: %w", stem, err)
	}
	path := filepath.Join(s.dir, stem+".json")
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write slice %s: %w", stem, err)
	}
	return nil
}

// ReadSlice loads one day's celebrities back by stem.
func (s *DayStore) ReadSlice(ctx context.Context, stem string) ([]model.Celebrity, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, stem+".json"))
	if err != nil {
		return nil, fmt.Errorf("read slice %s: %w", stem, err)
	}
	var slice []model.Celebrity
	if err := json.Unmarshal(data, &slice); err != nil {
		return nil, fmt.Errorf("decode slice %s: %w", stem, err)
	}
	return slice, nil
}

// WriteManifest persists the day-number-to-stem mapping, pretty-printed.
func (s *DayStore) WriteManifest(ctx context.Context, manifest map[string]string) error {
	if err := os.MkdirAll(s.dir, dirPermission); err != nil {
		return fmt.Errorf("create days dir: %w", err)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(s.dir, manifestFile)
	if err := os.WriteFile(path, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the day-number-to-stem mapping.
func (s *DayStore) ReadManifest(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var manifest map[string]string
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return manifest, nil
}

// Dir returns the days directory path.
func (s *DayStore) Dir() string {
	return s.dir
}
