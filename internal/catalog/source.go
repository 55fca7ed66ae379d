package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// Source yields a fresh catalog snapshot for each call. Implementations
// must not cache between calls; every request sees the backing data as it
// currently is.
type Source interface {
	Load(ctx context.Context) ([]entity.Business, error)
}

// FileSource reads the catalog from a JSON file on every Load.
type FileSource struct {
	path string
}

// NewFileSource creates a catalog source backed by the given JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads, decodes and validates the whole catalog file.
func (s *FileSource) Load(ctx context.Context) ([]entity.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var businesses []entity.Business
	if err := json.Unmarshal(data, &businesses); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	if err := Validate(businesses); err != nil {
		return nil, err
	}

	return businesses, nil
}

// Validate checks snapshot-level invariants: positive unique ids, required
// text fields, rating within [0, 5] and a non-negative review count.
// A single malformed entry fails the whole snapshot.
func Validate(businesses []entity.Business) error {
	seen := make(map[int]struct{}, len(businesses))
	for i, b := range businesses {
		if b.ID <= 0 {
			return fmt.Errorf("catalog entry %d: id must be positive, got %d", i, b.ID)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("catalog entry %d: duplicate id %d", i, b.ID)
		}
		seen[b.ID] = struct{}{}

		if b.Name == "" {
			return fmt.Errorf("catalog entry %d (id %d): name is required", i, b.ID)
		}
		if b.Category == "" {
			return fmt.Errorf("catalog entry %d (id %d): category is required", i, b.ID)
		}
		if b.Location == "" {
			return fmt.Errorf("catalog entry %d (id %d): location is required", i, b.ID)
		}
		if b.Rating < 0 || b.Rating > 5 {
			return fmt.Errorf("catalog entry %d (id %d): rating %.2f outside [0, 5]", i, b.ID, b.Rating)
		}
		if b.Reviews < 0 {
			return fmt.Errorf("catalog entry %d (id %d): reviews must not be negative", i, b.ID)
		}
	}
	return nil
}
