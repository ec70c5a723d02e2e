// Package render derives the static public page from a content snapshot.
// Rendering is a pure function of the snapshot: the same snapshot always
// yields the same bytes, and no document is mutated. Each section loads
// independently; a broken section degrades to its empty placeholder and is
// reported, never blocking the others.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/shikostudio/vitrine/internal/content"
)

// SnapshotFunc supplies the current full document snapshot.
type SnapshotFunc func(ctx context.Context) *content.Snapshot

// Report records per-section load failures of one render pass. A non-empty
// report with a nil render error is a partial failure: the page was still
// produced with placeholders for the listed sections.
type Report struct {
	SectionErrors map[string]error
}

// Partial reports whether any section degraded.
func (r *Report) Partial() bool {
	return len(r.SectionErrors) > 0
}

// pageView is the template payload. HeroTitle is admin-authored markup
// (accent spans) and bypasses escaping; everything else auto-escapes.
type pageView struct {
	Lang      string
	Title     string
	Header    content.Header
	Hero      content.Hero
	HeroTitle template.HTML
	About     content.About
	Portfolio content.Portfolio
	Future    content.Future
	Contact   content.Contact
	Footer    content.Footer
}

// Renderer produces and writes the generated public page.
type Renderer struct {
	tmpl       *template.Template
	snapshot   SnapshotFunc
	outputPath string
	logger     *slog.Logger

	mu sync.Mutex // serializes output writes
}

// New creates a Renderer with the embedded default page template.
func New(snapshot SnapshotFunc, outputPath string, logger *slog.Logger) (*Renderer, error) {
	return newWithTemplate(pageTemplate, snapshot, outputPath, logger)
}

// NewFromFile creates a Renderer with a template loaded from path.
func NewFromFile(path string, snapshot SnapshotFunc, outputPath string, logger *slog.Logger) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read template %s: %w", path, err)
	}
	return newWithTemplate(string(data), snapshot, outputPath, logger)
}

func newWithTemplate(text string, snapshot SnapshotFunc, outputPath string, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.New("page").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("render: parse template: %w", err)
	}
	return &Renderer{
		tmpl:       tmpl,
		snapshot:   snapshot,
		outputPath: outputPath,
		logger:     logger,
	}, nil
}

// Render produces the page for the given snapshot. The returned Report
// lists sections that degraded to placeholders; the error is non-nil only
// for total failure (template execution).
func (r *Renderer) Render(sn *content.Snapshot) (string, *Report, error) {
	report := &Report{SectionErrors: make(map[string]error)}
	view := pageView{Lang: "en"}

	load := func(section string, v any) bool {
		if err := sn.Decode(section, v); err != nil {
			report.SectionErrors[section] = err
			return false
		}
		return true
	}

	var general content.General
	if load(content.SectionGeneral, &general) {
		if general.Lang != "" {
			view.Lang = general.Lang
		}
		view.Title = general.Title
	}
	load(content.SectionHeader, &view.Header)
	if load(content.SectionHero, &view.Hero) {
		view.HeroTitle = template.HTML(view.Hero.Title)
	}
	load(content.SectionAbout, &view.About)
	load(content.SectionPortfolio, &view.Portfolio)
	load(content.SectionFuture, &view.Future)
	load(content.SectionContact, &view.Contact)
	load(content.SectionFooter, &view.Footer)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", report, fmt.Errorf("render: execute: %w", err)
	}
	return buf.String(), report, nil
}

// Regenerate renders the current snapshot and writes the page to the
// output path. Per-section degradation is logged and tolerated; only a
// total render or write failure is returned.
func (r *Renderer) Regenerate(ctx context.Context) error {
	sn := r.snapshot(ctx)
	page, report, err := r.Render(sn)
	if err != nil {
		return err
	}
	for section, serr := range report.SectionErrors {
		r.logger.Warn("section skipped during regeneration",
			slog.String("section", section),
			slog.String("error", serr.Error()))
	}
	if err := r.writeOutput([]byte(page)); err != nil {
		return err
	}
	r.logger.Info("page regenerated",
		slog.String("output", r.outputPath),
		slog.Int("degraded_sections", len(report.SectionErrors)))
	return nil
}

// writeOutput writes atomically: tmp file → rename, so readers never see a
// half-written page.
func (r *Renderer) writeOutput(page []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: mkdir output: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".vitrine-page-*")
	if err != nil {
		return fmt.Errorf("render: create temp: %w", err)
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()
	if _, err := tmp.Write(page); err != nil {
		return fmt.Errorf("render: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("render: close temp: %w", err)
	}
	if err := os.Rename(tmpName, r.outputPath); err != nil {
		return fmt.Errorf("render: rename: %w", err)
	}
	success = true
	return nil
}
