package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/journal"
)

// NewRouter creates a chi router with all content API routes mounted.
// db may be nil; the stats endpoint then reports unavailable.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *content.Service, db *journal.DB, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, db)

	r := chi.NewRouter()

	// Admin dashboard.
	r.Get("/admin/stats", h.Stats)

	// SSE endpoint.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	// Section documents. Registered last so the fixed routes above win.
	r.Get("/{section}", h.GetSection)
	r.Post("/{section}", h.SaveSection)

	return r
}
