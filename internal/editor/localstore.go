// Package editor implements the admin editing model: staged collection
// edits with a single bulk save, the custom status extension, and the
// best-effort field draft cache. All state is owned by an explicit
// Session, never by package globals.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shikostudio/vitrine/internal/status"
)

// LocalStore persists admin-local state (custom statuses and field drafts)
// in a single JSON file under the state directory. It is the server-side
// rendition of the browser's local storage: additive and never
// authoritative over the document store.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

type draftEntry struct {
	Value   string    `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

type localState struct {
	CustomStatuses []status.Status       `json:"customStatuses,omitempty"`
	Drafts         map[string]draftEntry `json:"drafts,omitempty"`
}

// NewLocalStore creates a store writing to path. The file is created on
// first save.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (ls *LocalStore) load() (*localState, error) {
	st := &localState{Drafts: map[string]draftEntry{}}
	data, err := os.ReadFile(ls.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("editor: read local state: %w", err)
	}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("editor: parse local state: %w", err)
	}
	if st.Drafts == nil {
		st.Drafts = map[string]draftEntry{}
	}
	return st, nil
}

func (ls *LocalStore) save(st *localState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("editor: marshal local state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(ls.path), 0o755); err != nil {
		return fmt.Errorf("editor: mkdir state dir: %w", err)
	}
	if err := os.WriteFile(ls.path, data, 0o644); err != nil {
		return fmt.Errorf("editor: write local state: %w", err)
	}
	return nil
}

func (ls *LocalStore) update(fn func(*localState)) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	st, err := ls.load()
	if err != nil {
		return err
	}
	fn(st)
	return ls.save(st)
}

// LoadCustom implements status.CustomStore.
func (ls *LocalStore) LoadCustom() ([]status.Status, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	st, err := ls.load()
	if err != nil {
		return nil, err
	}
	return st.CustomStatuses, nil
}

// SaveCustom implements status.CustomStore.
func (ls *LocalStore) SaveCustom(custom []status.Status) error {
	return ls.update(func(st *localState) {
		st.CustomStatuses = custom
	})
}

func (ls *LocalStore) putDraft(field string, e draftEntry) error {
	return ls.update(func(st *localState) {
		st.Drafts[field] = e
	})
}

func (ls *LocalStore) getDraft(field string) (draftEntry, bool, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	st, err := ls.load()
	if err != nil {
		return draftEntry{}, false, err
	}
	e, ok := st.Drafts[field]
	return e, ok, nil
}

func (ls *LocalStore) deleteDraft(field string) error {
	return ls.update(func(st *localState) {
		delete(st.Drafts, field)
	})
}
