package editor

import (
	"fmt"
	"time"

	"github.com/shikostudio/vitrine/internal/apperr"
)

// DraftTTL is how long a saved field draft stays restorable.
const DraftTTL = 24 * time.Hour

// Draft is a restorable per-field value.
type Draft struct {
	Field   string    `json:"field"`
	Value   string    `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

// DraftCache is the best-effort per-field autosave cache. Restore offers a
// draft back to the caller; it never applies one, so a stale draft can
// never overwrite newer in-progress edits.
type DraftCache struct {
	store *LocalStore
	ttl   time.Duration
	now   func() time.Time
}

// NewDraftCache creates a cache over store with the default expiry.
func NewDraftCache(store *LocalStore) *DraftCache {
	return &DraftCache{store: store, ttl: DraftTTL, now: time.Now}
}

// Save stores the current value of a field.
func (c *DraftCache) Save(field, value string) error {
	if field == "" {
		return fmt.Errorf("editor: draft field is required")
	}
	return c.store.putDraft(field, draftEntry{Value: value, SavedAt: c.now()})
}

// Restore returns the stored draft for field. An expired draft is pruned
// and reported via apperr.ErrStaleDraft; a missing one via
// apperr.ErrNotFound.
func (c *DraftCache) Restore(field string) (*Draft, error) {
	e, ok, err := c.store.getDraft(field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("editor: draft %s: %w", field, apperr.ErrNotFound)
	}
	if c.now().Sub(e.SavedAt) > c.ttl {
		_ = c.store.deleteDraft(field)
		return nil, fmt.Errorf("editor: draft %s: %w", field, apperr.ErrStaleDraft)
	}
	return &Draft{Field: field, Value: e.Value, SavedAt: e.SavedAt}, nil
}

// Clear removes the draft for field, typically after a successful commit.
func (c *DraftCache) Clear(field string) error {
	return c.store.deleteDraft(field)
}
