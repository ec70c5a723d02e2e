package editor

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/testutil"
)

// The session tests use an in-memory ContentAPI; this one runs the full
// stack against the real service over seeded on-disk documents.
func TestSessionOverSeededService(t *testing.T) {
	svc := testutil.TestService(t)
	local := NewLocalStore(filepath.Join(t.TempDir(), "local.json"))

	s, err := NewSession(svc, local)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	if err := s.BeginPortfolio(IndexNew); err != nil {
		t.Fatal(err)
	}
	item := s.StagedPortfolio()
	item.Title = "Seeded roundtrip"
	item.Category = content.Categories[0]
	if err := s.CommitPortfolio(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// The committed item is durable in the section document.
	var p content.Portfolio
	doc, err := svc.Get(ctx, content.SectionPortfolio)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(doc, &p); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, it := range p.Items {
		if it.Title == "Seeded roundtrip" {
			found = true
		}
	}
	if !found {
		t.Error("committed item missing from persisted document")
	}
}
