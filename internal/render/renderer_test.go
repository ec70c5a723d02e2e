package render

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/store"
)

func seededSnapshot(t *testing.T) (*content.Service, SnapshotFunc) {
	t.Helper()
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	svc := content.NewService(fs, nil)
	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return svc, svc.Snapshot
}

func testRenderer(t *testing.T, snapshot SnapshotFunc) *Renderer {
	t.Helper()
	out := filepath.Join(t.TempDir(), "index.html")
	r, err := New(snapshot, out, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderIdempotent(t *testing.T) {
	_, snapshot := seededSnapshot(t)
	r := testRenderer(t, snapshot)

	sn := snapshot(context.Background())
	first, report, err := r.Render(sn)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if report.Partial() {
		t.Fatalf("unexpected degraded sections: %v", report.SectionErrors)
	}
	second, _, err := r.Render(sn)
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if first != second {
		t.Error("render is not idempotent for an unchanged snapshot")
	}
}

func TestRenderSubstitutesDocuments(t *testing.T) {
	svc, snapshot := seededSnapshot(t)
	ctx := context.Background()
	_, _ = svc.Save(ctx, content.SectionGeneral, json.RawMessage(`{"title":"Studio Site","lang":"de"}`))
	_, _ = svc.Save(ctx, content.SectionFooter, json.RawMessage(`{"copyright":"© 2026 Studio"}`))

	r := testRenderer(t, snapshot)
	page, _, err := r.Render(snapshot(ctx))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		`<html lang="de">`,
		`<title>Studio Site</title>`,
		`© 2026 Studio`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderHeroMarkupUnescapedOtherFieldsEscaped(t *testing.T) {
	svc, snapshot := seededSnapshot(t)
	ctx := context.Background()
	_, _ = svc.Save(ctx, content.SectionHero, json.RawMessage(
		`{"title":"Digital <span class=\"accent\">art</span>","description":"a<b>c"}`))

	r := testRenderer(t, snapshot)
	page, _, err := r.Render(snapshot(ctx))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(page, `<span class="accent">art</span>`) {
		t.Error("hero title markup should be preserved")
	}
	if !strings.Contains(page, "a&lt;b&gt;c") {
		t.Error("hero description should be escaped")
	}
}

func TestRenderEmptyCollectionsUsePlaceholders(t *testing.T) {
	svc, snapshot := seededSnapshot(t)
	ctx := context.Background()
	_, _ = svc.Save(ctx, content.SectionPortfolio, json.RawMessage(`{"items":[]}`))
	_, _ = svc.Save(ctx, content.SectionFuture, json.RawMessage(`{"items":[]}`))

	r := testRenderer(t, snapshot)
	page, _, err := r.Render(snapshot(ctx))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(page, "<!-- No projects yet -->") {
		t.Error("missing portfolio placeholder")
	}
	if !strings.Contains(page, "<!-- No plans yet -->") {
		t.Error("missing timeline placeholder")
	}
}

func TestRenderDegradesPerSection(t *testing.T) {
	fs, _ := store.NewFS(t.TempDir())
	svc := content.NewService(fs, nil)
	ctx := context.Background()
	_ = svc.Seed(ctx)
	// Corrupt one document on disk.
	_ = fs.Write(content.SectionAbout, []byte(`{broken`))

	r := testRenderer(t, svc.Snapshot)
	page, report, err := r.Render(svc.Snapshot(ctx))
	if err != nil {
		t.Fatalf("Render should survive a broken section: %v", err)
	}
	if _, ok := report.SectionErrors[content.SectionAbout]; !ok {
		t.Error("broken section not reported")
	}
	// Other sections still render.
	if !strings.Contains(page, "Shiko studio") {
		t.Error("intact sections should still render")
	}
}

func TestRegenerateWritesOutput(t *testing.T) {
	_, snapshot := seededSnapshot(t)
	out := filepath.Join(t.TempDir(), "public", "index.html")
	r, err := New(snapshot, out, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Regenerate(context.Background()); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("output does not look like a page")
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(out), ".vitrine-page-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFromFile(t *testing.T) {
	_, snapshot := seededSnapshot(t)
	tmplPath := filepath.Join(t.TempDir(), "page.tmpl")
	if err := os.WriteFile(tmplPath, []byte(`<html lang="{{.Lang}}"><title>{{.Title}}</title></html>`), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := NewFromFile(tmplPath, snapshot, filepath.Join(t.TempDir(), "index.html"), nil)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}
	page, _, err := r.Render(snapshot(context.Background()))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(page, "<title>My Portfolio</title>") {
		t.Errorf("custom template not applied: %q", page)
	}
}
