// Package public builds the interactive public views from a fetched
// document snapshot: the filterable portfolio grid, status badges and the
// project detail modal. It is strictly read-only over the snapshot and
// never writes back; the statically generated page is untouched.
package public

import (
	"fmt"
	"html"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/status"
)

// FilterAll is the universal category filter.
const FilterAll = "all"

// Action is the primary modal action: the external link when the project
// is active and has one, otherwise a disabled state echoing the status.
type Action struct {
	Enabled bool
	Href    string
	Note    string
}

// Card is one rendered grid entry. Free-text fields are HTML-escaped.
type Card struct {
	Index       int
	Title       string
	Description string
	Category    string
	Image       string
	Tags        []string
	Status      status.Status
	ShowBadge   bool
	Action      Action
}

// View holds the fetched snapshot data the public page hydrates from.
type View struct {
	items    []content.PortfolioItem
	catalog  *status.Catalog
	features content.Features
}

// NewView builds a view over already-fetched documents. Filtering and
// modals operate on this data without refetching.
func NewView(p content.Portfolio, catalog *status.Catalog, features content.Features) *View {
	if catalog == nil {
		catalog, _ = status.NewCatalog(nil)
	}
	return &View{items: p.Items, catalog: catalog, features: features}
}

func (v *View) card(i int) Card {
	it := v.items[i]
	st := v.catalog.Resolve(it.Status)
	return Card{
		Index:       i,
		Title:       html.EscapeString(it.Title),
		Description: html.EscapeString(it.Description),
		Category:    it.Category,
		Image:       it.MainImage(),
		Tags:        escapeAll(it.Tags),
		Status:      st,
		ShowBadge:   st.ID != status.Default().ID,
		Action:      v.action(it, st),
	}
}

func (v *View) action(it content.PortfolioItem, st status.Status) Action {
	if st.ID == status.Default().ID && it.Link != "" && it.Link != "#" {
		return Action{Enabled: true, Href: it.Link}
	}
	note := fmt.Sprintf("%s %s", st.Icon, html.EscapeString(st.Name))
	if st.Description != "" {
		note += " — " + html.EscapeString(st.Description)
	}
	return Action{Note: note}
}

// Grid returns the cards matching the category filter. FilterAll matches
// everything, and when the filter feature is not interactive the filter is
// ignored entirely.
func (v *View) Grid(filter string) []Card {
	applyFilter := filter != FilterAll && v.features.State("filter").Interactive()
	out := []Card{}
	for i, it := range v.items {
		if applyFilter && it.Category != filter {
			continue
		}
		out = append(out, v.card(i))
	}
	return out
}

// Modal is the detail view of one project.
type Modal struct {
	Index           int
	Title           string
	LongDescription string
	Images          []string
	mainImage       int
	Tags            []string
	Technologies    []content.Technology
	Status          status.Status
	Action          Action

	closed bool
}

// MainImage returns the currently selected gallery image, defaulting to
// the first.
func (m *Modal) MainImage() string {
	if len(m.Images) == 0 {
		return ""
	}
	return m.Images[m.mainImage]
}

// SelectImage swaps the main image to the thumbnail at index i.
func (m *Modal) SelectImage(i int) error {
	if m.closed {
		return fmt.Errorf("public: modal is closed")
	}
	if i < 0 || i >= len(m.Images) {
		return fmt.Errorf("public: image index %d out of range", i)
	}
	m.mainImage = i
	return nil
}

// Closed reports whether the modal has been torn down.
func (m *Modal) Closed() bool { return m.closed }

// ModalController enforces the single-open-modal invariant: opening a new
// modal first tears down the previous one so stale view state (and, on a
// real page, its escape-key handler) cannot leak.
type ModalController struct {
	current *Modal
}

// Open builds the modal for the item at index i, closing any modal that
// is still open.
func (mc *ModalController) Open(v *View, i int) (*Modal, error) {
	if i < 0 || i >= len(v.items) {
		return nil, fmt.Errorf("public: item index %d out of range", i)
	}
	if mc.current != nil {
		mc.Close()
	}

	it := v.items[i]
	st := v.catalog.Resolve(it.Status)
	longDesc := it.LongDescription
	if longDesc == "" {
		longDesc = it.Description
	}
	images := it.Images
	if len(images) == 0 && it.Image != "" {
		images = []string{it.Image}
	}
	m := &Modal{
		Index:           i,
		Title:           html.EscapeString(it.Title),
		LongDescription: html.EscapeString(longDesc),
		Images:          images,
		Tags:            escapeAll(it.Tags),
		Technologies:    it.Technologies,
		Status:          st,
		Action:          v.action(it, st),
	}
	mc.current = m
	return m, nil
}

// Current returns the open modal, or nil.
func (mc *ModalController) Current() *Modal { return mc.current }

// Close tears down the open modal, if any.
func (mc *ModalController) Close() {
	if mc.current != nil {
		mc.current.closed = true
		mc.current = nil
	}
}

func escapeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = html.EscapeString(s)
	}
	return out
}
