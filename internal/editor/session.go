package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/shikostudio/vitrine/internal/apperr"
	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/status"
)

// IndexNew marks "creating a new item" in the staged-edit state machine.
const IndexNew = -1

// ContentAPI is the slice of the content service the editor needs.
type ContentAPI interface {
	Get(ctx context.Context, section string) (json.RawMessage, error)
	Save(ctx context.Context, section string, body json.RawMessage) (*content.SaveResult, error)
}

// collection is the staged-edit state machine for one ordered collection:
// idle → editing(index|IndexNew) → idle. The staged item is a deep-enough
// copy; cancelling leaves the collection untouched.
type collection[T any] struct {
	items  []T
	staged *T
	index  int
	clone  func(T) T
}

func (c *collection[T]) begin(i int) error {
	if c.staged != nil {
		return fmt.Errorf("editor: already editing")
	}
	switch {
	case i == IndexNew:
		var zero T
		c.staged = &zero
	case i >= 0 && i < len(c.items):
		cp := c.clone(c.items[i])
		c.staged = &cp
	default:
		return fmt.Errorf("editor: index %d out of range", i)
	}
	c.index = i
	return nil
}

func (c *collection[T]) editing() bool { return c.staged != nil }

// committed returns the collection with the staged item applied: append
// for IndexNew, replace in place otherwise.
func (c *collection[T]) committed() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	if c.index == IndexNew {
		return append(out, *c.staged)
	}
	out[c.index] = *c.staged
	return out
}

func (c *collection[T]) cancel() {
	c.staged = nil
	c.index = IndexNew
}

// Session owns the admin editing state: working copies of the collection
// documents, the staged item per collection, the merged status catalog and
// the draft cache. Nothing here touches the document store until a commit
// or delete persists the whole collection in one save.
type Session struct {
	api     ContentAPI
	catalog *status.Catalog
	drafts  *DraftCache

	mu        sync.Mutex
	portfolio collection[content.PortfolioItem]
	future    collection[content.FutureItem]
}

// NewSession creates a Session over the content API and admin-local state.
func NewSession(api ContentAPI, local *LocalStore) (*Session, error) {
	catalog, err := status.NewCatalog(local)
	if err != nil {
		return nil, err
	}
	s := &Session{
		api:     api,
		catalog: catalog,
		drafts:  NewDraftCache(local),
	}
	s.portfolio = collection[content.PortfolioItem]{index: IndexNew, clone: clonePortfolioItem}
	s.future = collection[content.FutureItem]{index: IndexNew, clone: func(it content.FutureItem) content.FutureItem { return it }}
	return s, nil
}

func clonePortfolioItem(it content.PortfolioItem) content.PortfolioItem {
	cp := it
	cp.Images = append([]string(nil), it.Images...)
	cp.Tags = append([]string(nil), it.Tags...)
	cp.Technologies = append([]content.Technology(nil), it.Technologies...)
	return cp
}

// Catalog returns the merged status catalog backing status selection.
func (s *Session) Catalog() *status.Catalog { return s.catalog }

// Drafts returns the field draft cache.
func (s *Session) Drafts() *DraftCache { return s.drafts }

// Load fetches the collection documents into working copies. A missing
// document is treated as an empty collection, not a failure.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p content.Portfolio
	if err := s.fetch(ctx, content.SectionPortfolio, &p); err != nil {
		return err
	}
	var f content.Future
	if err := s.fetch(ctx, content.SectionFuture, &f); err != nil {
		return err
	}
	s.portfolio.items = p.Items
	s.future.items = f.Items
	return nil
}

func (s *Session) fetch(ctx context.Context, section string, v any) error {
	raw, err := s.api.Get(ctx, section)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("editor: decode %s: %w", section, err)
	}
	return nil
}

// PortfolioItems returns a copy of the working collection.
func (s *Session) PortfolioItems() []content.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]content.PortfolioItem, len(s.portfolio.items))
	for i, it := range s.portfolio.items {
		out[i] = clonePortfolioItem(it)
	}
	return out
}

// FutureItems returns a copy of the working collection.
func (s *Session) FutureItems() []content.FutureItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]content.FutureItem(nil), s.future.items...)
}

// BeginPortfolio starts editing the item at index i, or a new item for
// IndexNew. New items start with the default status selected.
func (s *Session) BeginPortfolio(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.portfolio.begin(i); err != nil {
		return err
	}
	if i == IndexNew {
		s.portfolio.staged.Status = status.Default().ID
	}
	return nil
}

// StagedPortfolio returns the staged portfolio item for mutation, or nil
// when idle.
func (s *Session) StagedPortfolio() *content.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.staged
}

// SetStatus selects the status of the staged item. Selection is single
// choice; the raw id is stored even if the catalog entry is later deleted.
func (s *Session) SetStatus(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return fmt.Errorf("editor: no staged portfolio item")
	}
	s.portfolio.staged.Status = id
	return nil
}

// AddTag appends a tag to the staged item. An exact duplicate is rejected
// with apperr.ErrDuplicate so the UI can warn instead of silently
// ignoring it.
func (s *Session) AddTag(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return fmt.Errorf("editor: no staged portfolio item")
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("editor: tag is required")
	}
	for _, t := range s.portfolio.staged.Tags {
		if t == tag {
			return fmt.Errorf("editor: tag %q: %w", tag, apperr.ErrDuplicate)
		}
	}
	s.portfolio.staged.Tags = append(s.portfolio.staged.Tags, tag)
	return nil
}

// RemoveTag drops a tag from the staged item.
func (s *Session) RemoveTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return
	}
	tags := s.portfolio.staged.Tags
	for i, t := range tags {
		if t == tag {
			s.portfolio.staged.Tags = append(tags[:i], tags[i+1:]...)
			return
		}
	}
}

// AddTechnology appends a technology to the staged item. Names matching
// an existing entry case-insensitively are rejected with
// apperr.ErrDuplicate.
func (s *Session) AddTechnology(name, icon string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return fmt.Errorf("editor: no staged portfolio item")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("editor: technology name is required")
	}
	for _, t := range s.portfolio.staged.Technologies {
		if strings.EqualFold(t.Name, name) {
			return fmt.Errorf("editor: technology %q: %w", name, apperr.ErrDuplicate)
		}
	}
	s.portfolio.staged.Technologies = append(s.portfolio.staged.Technologies,
		content.Technology{Name: name, Icon: icon})
	return nil
}

// RemoveTechnology drops a technology from the staged item by name.
func (s *Session) RemoveTechnology(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return
	}
	techs := s.portfolio.staged.Technologies
	for i, t := range techs {
		if strings.EqualFold(t.Name, name) {
			s.portfolio.staged.Technologies = append(techs[:i], techs[i+1:]...)
			return
		}
	}
}

// TechSuggestion is one quick-add entry; Added marks presets already on
// the staged item so the picker can grey them out instead of hiding them.
type TechSuggestion struct {
	content.TechPreset
	Added bool
}

// TechSuggestions returns the popular preset shortlist for the quick-add
// grid. Entries matching a staged technology (case-insensitive, same rule
// as AddTechnology) are flagged rather than filtered out.
func (s *Session) TechSuggestions() []TechSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	popular := content.PopularTechnologies()
	out := make([]TechSuggestion, 0, len(popular))
	for _, p := range popular {
		sug := TechSuggestion{TechPreset: p}
		if s.portfolio.editing() {
			for _, t := range s.portfolio.staged.Technologies {
				if strings.EqualFold(t.Name, p.Name) {
					sug.Added = true
					break
				}
			}
		}
		out = append(out, sug)
	}
	return out
}

// AddTechnologyFromPreset stages a preset's technology on the current
// item. Duplicates are rejected the same way as free-form adds.
func (s *Session) AddTechnologyFromPreset(p content.TechPreset) error {
	return s.AddTechnology(p.Name, p.Icon)
}

// CommitPortfolio validates the staged item, applies it (append or
// replace in place) and persists the entire collection in one save. On a
// save failure the staged item stays intact so the edit is not lost.
func (s *Session) CommitPortfolio(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.portfolio.editing() {
		return fmt.Errorf("editor: no staged portfolio item")
	}
	if err := validatePortfolioItem(s.portfolio.staged); err != nil {
		return err
	}
	items := s.portfolio.committed()
	if err := s.savePortfolio(ctx, items); err != nil {
		return err
	}
	s.portfolio.items = items
	s.portfolio.cancel()
	return nil
}

// CancelPortfolio discards the staged item. The working collection and
// the persisted document are untouched.
func (s *Session) CancelPortfolio() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio.cancel()
}

// DeletePortfolio removes the item at index i immediately (no staging)
// and persists the whole collection. Deletion requires confirm=true.
func (s *Session) DeletePortfolio(ctx context.Context, i int, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !confirm {
		return fmt.Errorf("editor: delete requires confirmation")
	}
	if i < 0 || i >= len(s.portfolio.items) {
		return fmt.Errorf("editor: index %d out of range", i)
	}
	items := make([]content.PortfolioItem, 0, len(s.portfolio.items)-1)
	items = append(items, s.portfolio.items[:i]...)
	items = append(items, s.portfolio.items[i+1:]...)
	if err := s.savePortfolio(ctx, items); err != nil {
		return err
	}
	s.portfolio.items = items
	return nil
}

// MovePortfolio reorders the collection, moving the item at from to
// position to, and persists the whole collection.
func (s *Session) MovePortfolio(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.portfolio.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("editor: move %d→%d out of range", from, to)
	}
	items := make([]content.PortfolioItem, n)
	copy(items, s.portfolio.items)
	it := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]content.PortfolioItem{it}, items[to:]...)...)
	if err := s.savePortfolio(ctx, items); err != nil {
		return err
	}
	s.portfolio.items = items
	return nil
}

func (s *Session) savePortfolio(ctx context.Context, items []content.PortfolioItem) error {
	doc, err := json.Marshal(content.Portfolio{Items: items})
	if err != nil {
		return fmt.Errorf("editor: marshal portfolio: %w", err)
	}
	_, err = s.api.Save(ctx, content.SectionPortfolio, doc)
	return err
}

// BeginFuture starts editing the future-plan item at index i, or a new
// one for IndexNew.
func (s *Session) BeginFuture(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.future.begin(i)
}

// StagedFuture returns the staged future item for mutation, or nil.
func (s *Session) StagedFuture() *content.FutureItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.future.staged
}

// CommitFuture validates and applies the staged future item, persisting
// the entire collection.
func (s *Session) CommitFuture(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.future.editing() {
		return fmt.Errorf("editor: no staged future item")
	}
	if err := validation.ValidateStruct(s.future.staged,
		validation.Field(&s.future.staged.Title, validation.Required),
	); err != nil {
		return fmt.Errorf("editor: future item: %w", err)
	}
	items := s.future.committed()
	if err := s.saveFuture(ctx, items); err != nil {
		return err
	}
	s.future.items = items
	s.future.cancel()
	return nil
}

// CancelFuture discards the staged future item.
func (s *Session) CancelFuture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.future.cancel()
}

// DeleteFuture removes the future item at index i with confirmation and
// persists the whole collection.
func (s *Session) DeleteFuture(ctx context.Context, i int, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !confirm {
		return fmt.Errorf("editor: delete requires confirmation")
	}
	if i < 0 || i >= len(s.future.items) {
		return fmt.Errorf("editor: index %d out of range", i)
	}
	items := make([]content.FutureItem, 0, len(s.future.items)-1)
	items = append(items, s.future.items[:i]...)
	items = append(items, s.future.items[i+1:]...)
	if err := s.saveFuture(ctx, items); err != nil {
		return err
	}
	s.future.items = items
	return nil
}

func (s *Session) saveFuture(ctx context.Context, items []content.FutureItem) error {
	doc, err := json.Marshal(content.Future{Items: items})
	if err != nil {
		return fmt.Errorf("editor: marshal future: %w", err)
	}
	_, err = s.api.Save(ctx, content.SectionFuture, doc)
	return err
}

func validatePortfolioItem(it *content.PortfolioItem) error {
	cats := make([]any, len(content.Categories))
	for i, c := range content.Categories {
		cats[i] = c
	}
	if err := validation.ValidateStruct(it,
		validation.Field(&it.Title, validation.Required),
		validation.Field(&it.Category, validation.Required, validation.In(cats...)),
	); err != nil {
		return fmt.Errorf("editor: portfolio item: %w", err)
	}
	return nil
}
