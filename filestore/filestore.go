// Package filestore implements nodegraph.Store over a directory of flat
// JSON documents. Preferences live in a single preferences.json file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meikuraledutech/nodegraph"
)

const (
	docExt          = ".json"
	preferencesFile = "preferences.json"
)

var _ nodegraph.Store = (*FileStore)(nil)

// FileStore keeps one <name>.json file per graph under Dir.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir. Call CreateSchema before use.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string { return s.dir }

// CreateSchema creates the storage directory.
func (s *FileStore) CreateSchema(ctx context.Context) error {
	return os.MkdirAll(s.dir, 0o755)
}

// DropSchema removes every document and the preferences file. Other files
// in the directory are left alone.
func (s *FileStore) DropSchema(ctx context.Context) error {
	names, err := s.ListGraphs(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := s.DeleteGraph(ctx, name); err != nil {
			return err
		}
	}
	if err := os.Remove(filepath.Join(s.dir, preferencesFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) path(name string) (string, error) {
	if !nodegraph.ValidName(name) || name+docExt == preferencesFile {
		return "", fmt.Errorf("%w: %q", nodegraph.ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+docExt), nil
}

// SaveGraph writes g as an indented JSON document. The file is written to
// a temporary name first and renamed into place.
func (s *FileStore) SaveGraph(ctx context.Context, name string, g *nodegraph.Graph) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := nodegraph.MarshalDocument(*g)
	if err != nil {
		return err
	}
	return writeFile(p, data)
}

// GetGraph reads and validates a document. Returns nil, nil if not found.
func (s *FileStore) GetGraph(ctx context.Context, name string) (*nodegraph.Graph, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("nodegraph: read document: %w", err)
	}
	g, err := nodegraph.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGraph removes a document. No error if it doesn't exist.
func (s *FileStore) DeleteGraph(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("nodegraph: delete document: %w", err)
	}
	return nil
}

// ListGraphs returns the sorted names of stored documents.
// Returns an empty slice (not nil) if none found.
func (s *FileStore) ListGraphs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("nodegraph: list documents: %w", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || e.Name() == preferencesFile {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), docExt)
		if ok && nodegraph.ValidName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// GetPreference returns the stored value for key and whether it was set.
func (s *FileStore) GetPreference(ctx context.Context, key string) (string, bool, error) {
	prefs, err := s.loadPreferences()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key]
	return v, ok, nil
}

// SetPreference stores a preference.
func (s *FileStore) SetPreference(ctx context.Context, key, value string) error {
	prefs, err := s.loadPreferences()
	if err != nil {
		return err
	}
	prefs[key] = value
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, preferencesFile), data)
}

func (s *FileStore) loadPreferences() (map[string]string, error) {
	prefs := make(map[string]string)
	data, err := os.ReadFile(filepath.Join(s.dir, preferencesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return prefs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("nodegraph: parse preferences: %w", err)
	}
	return prefs, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
