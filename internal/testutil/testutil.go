// Package testutil provides shared test helpers for setting up data
// directories and journal databases.
package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/journal"
	"github.com/shikostudio/vitrine/internal/store"
)

// TestJournal creates a temporary SQLite journal that is automatically
// cleaned up.
func TestJournal(t *testing.T) *journal.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "vitrine-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := journal.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestStore creates a temporary data directory with a store.Provider.
func TestStore(t *testing.T) (string, store.Provider) {
	t.Helper()
	dataDir := t.TempDir()
	fs, err := store.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	return dataDir, fs
}

// TestService creates a content service over a temporary data directory,
// seeded with the default documents.
func TestService(t *testing.T) *content.Service {
	t.Helper()
	_, fs := TestStore(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := content.NewService(fs, logger)
	if err := svc.Seed(t.Context()); err != nil {
		t.Fatal(err)
	}
	return svc
}
