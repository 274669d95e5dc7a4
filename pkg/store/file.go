package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// File stores each design as a JSON file in a directory. Intended for CLI
// workflows where designs are inspected and versioned as plain files.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file-backed store rooted at baseDir. An empty baseDir
// defaults to ~/.config/aiarchitect/designs/.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "aiarchitect", "designs")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create design dir")
	}
	return &File{baseDir: baseDir}, nil
}

func (f *File) path(id string) string {
	return filepath.Join(f.baseDir, id+".json")
}

func (f *File) Save(ctx context.Context, d *design.ArchitecturalDesign) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := design.MarshalDesign(d)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "encode design")
	}

	id := NewID()
	if err := os.WriteFile(f.path(id), data, 0o600); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write design file")
	}
	return id, nil
}

func (f *File) Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "design %s not found", id)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read design file")
	}

	d, err := design.UnmarshalDesign(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode design %s", id)
	}
	return d, nil
}

func (f *File) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove design file")
	}
	return nil
}

func (f *File) List(ctx context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read design dir")
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *File) Close() error { return nil }
