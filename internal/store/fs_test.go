package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shikostudio/vitrine/internal/apperr"
)

func tempStore(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempStore(t)
	doc := []byte(`{"title":"My Portfolio","lang":"en"}`)
	if err := s.Write("general", doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("general")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestReadMissingIsNotFound(t *testing.T) {
	s := tempStore(t)
	_, err := s.Read("hero")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestInvalidSectionNames(t *testing.T) {
	s := tempStore(t)
	cases := []string{
		"../../etc/passwd",
		"../outside",
		"/etc/shadow",
		"Hero",
		"a b",
		"",
	}
	for _, name := range cases {
		if _, err := s.Read(name); err == nil || errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Read(%q): expected invalid-name error, got %v", name, err)
		}
		if err := s.Write(name, []byte("{}")); err == nil {
			t.Errorf("Write(%q): expected error", name)
		}
	}
}

func TestList(t *testing.T) {
	s := tempStore(t)
	_ = s.Write("hero", []byte("{}"))
	_ = s.Write("portfolio", []byte("{}"))

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("len = %d, want 2", len(names))
	}
}

func TestExists(t *testing.T) {
	s := tempStore(t)
	if s.Exists("footer") {
		t.Error("footer should not exist yet")
	}
	_ = s.Write("footer", []byte("{}"))
	if !s.Exists("footer") {
		t.Error("footer should exist after write")
	}
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	s := tempStore(t)
	_ = s.Write("about", []byte(`{"text1":"v1"}`))
	if err := s.Write("about", []byte(`{"text1":"v2"}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("about")
	if string(got) != `{"text1":"v2"}` {
		t.Errorf("expected updated content, got %q", got)
	}
	matches, _ := filepath.Glob(filepath.Join(s.root, ".vitrine-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFSCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if _, err := NewFS(dir); err != nil {
		t.Fatalf("NewFS should create missing dir: %v", err)
	}
}
