package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shikostudio/vitrine/internal/apperr"
)

// sectionName restricts section keys to flat lowercase tokens so that a
// request path can never address a file outside the data directory.
var sectionName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// FS implements Provider backed by one JSON file per section under a
// data directory.
type FS struct {
	root string // absolute path to data directory
}

// NewFS creates a new FS provider rooted at the given directory, creating
// it if absent.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("store: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// ValidSection reports whether name is an acceptable section key.
func ValidSection(name string) bool {
	return sectionName.MatchString(name)
}

func (f *FS) path(section string) (string, error) {
	if !ValidSection(section) {
		return "", fmt.Errorf("store: invalid section name: %q", section)
	}
	return filepath.Join(f.root, section+".json"), nil
}

// List returns the names of every persisted section.
func (f *FS) List() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if ValidSection(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// Read returns the raw document bytes for section.
func (f *FS) Read(section string) ([]byte, error) {
	p, err := f.path(section)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store: read %s: %w", section, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("store: read %s: %w", section, err)
	}
	return data, nil
}

// Write atomically replaces the document: tmp file → fsync → rename.
func (f *FS) Write(section string, doc []byte) error {
	p, err := f.path(section)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.root, 0o755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(f.root, ".vitrine-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(doc); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// Exists reports whether a document is persisted for section.
func (f *FS) Exists(section string) bool {
	p, err := f.path(section)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Root returns the absolute data directory path.
func (f *FS) Root() string {
	return f.root
}
