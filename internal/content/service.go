package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shikostudio/vitrine/internal/apperr"
	"github.com/shikostudio/vitrine/internal/store"
)

// Regenerator re-derives the static public page from the current snapshot.
type Regenerator interface {
	Regenerate(ctx context.Context) error
}

// Recorder journals successful saves.
type Recorder interface {
	Record(section, checksum string) error
}

// SaveResult distinguishes "not saved" from "saved but page stale".
type SaveResult struct {
	Saved       bool
	Regenerated bool
}

// Service coordinates the document store, the edit journal and page
// regeneration.
type Service struct {
	store   store.Provider
	logger  *slog.Logger
	regen   Regenerator
	journal Recorder
}

// NewService creates a content service. Regenerator and Recorder are
// optional and attached via the With* setters.
func NewService(p store.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: p, logger: logger}
}

// WithRegenerator attaches the page regenerator invoked after saves.
func (s *Service) WithRegenerator(r Regenerator) *Service {
	s.regen = r
	return s
}

// WithRecorder attaches the save journal.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.journal = r
	return s
}

// Seed writes the default document for every required section that is
// missing, so reads of the required set never miss afterwards.
func (s *Service) Seed(_ context.Context) error {
	defaults := Defaults()
	for _, section := range Required() {
		if s.store.Exists(section) {
			continue
		}
		doc, err := json.MarshalIndent(defaults[section], "", "  ")
		if err != nil {
			return fmt.Errorf("content: marshal default %s: %w", section, err)
		}
		if err := s.store.Write(section, doc); err != nil {
			return fmt.Errorf("content: seed %s: %w", section, err)
		}
		s.logger.Info("seeded section", slog.String("section", section))
	}
	return nil
}

// Get returns the persisted document for section. A missing section is an
// apperr.ErrNotFound; reads never create files.
func (s *Service) Get(_ context.Context, section string) (json.RawMessage, error) {
	if !store.ValidSection(section) {
		return nil, fmt.Errorf("content: invalid section %q: %w", section, apperr.ErrMalformed)
	}
	return s.store.Read(section)
}

// Save replaces the document for section wholesale, journals the save, and
// regenerates the public page for every section except features. The body
// is pass-through: no field validation or dedup happens here, only the
// parse-boundary check that it is a JSON object.
//
// When the write succeeded but regeneration failed, the returned SaveResult
// has Saved=true alongside the error so callers can report "saved but page
// stale" rather than a total failure.
func (s *Service) Save(ctx context.Context, section string, body json.RawMessage) (*SaveResult, error) {
	if !store.ValidSection(section) {
		return &SaveResult{}, fmt.Errorf("content: invalid section %q: %w", section, apperr.ErrMalformed)
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil || parsed == nil {
		return &SaveResult{}, fmt.Errorf("content: parse %s: %w", section, apperr.ErrMalformed)
	}
	doc, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return &SaveResult{}, fmt.Errorf("content: marshal %s: %w", section, err)
	}

	if err := s.store.Write(section, doc); err != nil {
		return &SaveResult{}, err
	}

	if s.journal != nil {
		if err := s.journal.Record(section, sha256sum(doc)); err != nil {
			// The document is durable; a journaling miss is not worth a 500.
			s.logger.Warn("journal record failed",
				slog.String("section", section),
				slog.String("error", err.Error()))
		}
	}

	res := &SaveResult{Saved: true}
	if section == SectionFeatures || s.regen == nil {
		return res, nil
	}

	// The write above completed before this read-after-write regeneration.
	if err := s.regen.Regenerate(ctx); err != nil {
		return res, fmt.Errorf("content: regenerate after %s: %w", section, err)
	}
	res.Regenerated = true
	return res, nil
}

// Snapshot loads every required section best-effort. Sections that fail
// to load are recorded per section and do not abort the snapshot.
func (s *Service) Snapshot(_ context.Context) *Snapshot {
	sn := &Snapshot{
		docs: make(map[string]json.RawMessage, len(required)),
		errs: make(map[string]error),
	}
	for _, section := range Required() {
		raw, err := s.store.Read(section)
		if err != nil {
			sn.errs[section] = err
			continue
		}
		sn.docs[section] = raw
	}
	return sn
}

func sha256sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
