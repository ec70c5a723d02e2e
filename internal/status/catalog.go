// Package status implements the merged project status catalog: a fixed
// built-in baseline plus a persisted custom extension. Lookups resolve
// custom entries first, then built-ins, then fall back to the default
// entry so that items referencing a deleted status never fail to render.
package status

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shikostudio/vitrine/internal/apperr"
)

// CustomIDPrefix namespaces generated custom status ids away from the
// built-in id space.
const CustomIDPrefix = "custom-"

// Status is one catalog entry.
type Status struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor,omitempty"`
}

// builtins is the fixed server-held baseline. Order matters for display.
var builtins = []Status{
	{
		ID:          "active",
		Name:        "Active",
		Icon:        "✅",
		Description: "Project is live",
		Color:       "#10b981",
		BgColor:     "#064e3b",
	},
	{
		ID:          "coming-soon",
		Name:        "Coming soon",
		Icon:        "🚀",
		Description: "In development",
		Color:       "#8b5cf6",
		BgColor:     "#581c87",
	},
	{
		ID:          "paused",
		Name:        "Paused",
		Icon:        "⏸️",
		Description: "Temporarily inactive",
		Color:       "#f59e0b",
		BgColor:     "#92400e",
	},
}

// Default returns the fallback entry used for unknown status ids.
func Default() Status {
	return builtins[0]
}

// Builtin returns a copy of the built-in baseline.
func Builtin() []Status {
	out := make([]Status, len(builtins))
	copy(out, builtins)
	return out
}

// IsBuiltin reports whether id belongs to the fixed baseline.
func IsBuiltin(id string) bool {
	for _, s := range builtins {
		if s.ID == id {
			return true
		}
	}
	return false
}

// CustomStore persists the custom extension of the catalog.
type CustomStore interface {
	LoadCustom() ([]Status, error)
	SaveCustom([]Status) error
}

// Catalog is the merged status catalog. Custom entries take precedence
// only for their own ids; the built-in baseline is immutable.
type Catalog struct {
	store  CustomStore
	custom []Status // insertion order preserved for display
}

// NewCatalog builds a catalog, loading custom entries from store.
// A nil store yields a builtin-only catalog.
func NewCatalog(store CustomStore) (*Catalog, error) {
	c := &Catalog{store: store}
	if store != nil {
		custom, err := store.LoadCustom()
		if err != nil {
			return nil, fmt.Errorf("status: load custom: %w", err)
		}
		// Custom entries may not shadow built-in ids.
		for _, s := range custom {
			if !IsBuiltin(s.ID) {
				c.custom = append(c.custom, s)
			}
		}
	}
	return c, nil
}

// Lookup finds an entry by id in the merged catalog.
func (c *Catalog) Lookup(id string) (Status, bool) {
	for _, s := range c.custom {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range builtins {
		if s.ID == id {
			return s, true
		}
	}
	return Status{}, false
}

// Resolve returns the entry for id, falling back to the default entry
// when id is unknown or empty. It never fails.
func (c *Catalog) Resolve(id string) Status {
	if s, ok := c.Lookup(id); ok {
		return s
	}
	return Default()
}

// All returns the merged catalog: built-ins first, then custom entries in
// insertion order.
func (c *Catalog) All() []Status {
	out := make([]Status, 0, len(builtins)+len(c.custom))
	out = append(out, builtins...)
	out = append(out, c.custom...)
	return out
}

// AddCustom creates a new custom entry with a generated id and persists
// the custom extension.
func (c *Catalog) AddCustom(name, icon, description, color string) (Status, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Status{}, fmt.Errorf("status: name is required")
	}
	s := Status{
		ID:          CustomIDPrefix + uuid.NewString(),
		Name:        name,
		Icon:        icon,
		Description: description,
		Color:       color,
	}
	c.custom = append(c.custom, s)
	if err := c.persist(); err != nil {
		c.custom = c.custom[:len(c.custom)-1]
		return Status{}, err
	}
	return s, nil
}

// Delete removes a custom entry. Built-in ids are rejected with
// apperr.ErrBuiltin; the catalog is left unchanged. Items referencing a
// deleted id keep their raw status and fall back on next resolve.
func (c *Catalog) Delete(id string) error {
	if IsBuiltin(id) {
		return fmt.Errorf("status: delete %s: %w", id, apperr.ErrBuiltin)
	}
	for i, s := range c.custom {
		if s.ID == id {
			c.custom = append(c.custom[:i], c.custom[i+1:]...)
			return c.persist()
		}
	}
	return fmt.Errorf("status: delete %s: %w", id, apperr.ErrNotFound)
}

func (c *Catalog) persist() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.SaveCustom(c.custom); err != nil {
		return fmt.Errorf("status: save custom: %w", err)
	}
	return nil
}
