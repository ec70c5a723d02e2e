package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shikostudio/vitrine/internal/apperr"
	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/journal"
)

// maxBodyBytes caps save requests at 10 MB to leave room for inlined
// image data.
const maxBodyBytes = 10 << 20

// Handler holds API route handlers.
type Handler struct {
	svc     *content.Service
	journal *journal.DB
}

// NewHandler creates a new Handler. db may be nil when no edit journal
// is configured; the stats endpoint then reports it as unavailable.
func NewHandler(svc *content.Service, db *journal.DB) *Handler {
	return &Handler{svc: svc, journal: db}
}

// GetSection handles GET /api/{section}.
//
//	@Summary		Read a section document
//	@Tags			content
//	@Produce		json
//	@Param			section	path		string	true	"Section name"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Router			/{section} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	doc, err := h.svc.Get(r.Context(), section)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrMalformed):
			writeJSON(w, http.StatusBadRequest, errorBody("invalid section name"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("File not found"))
		default:
			slog.Error("get section failed", slog.String("section", section), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeRaw(w, http.StatusOK, doc)
}

// SaveSection handles POST /api/{section}.
//
//	@Summary		Replace a section document and regenerate the page
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			section	path		string			true	"Section name"
//	@Param			body	body		map[string]any	true	"Section document"
//	@Success		200		{object}	SaveResponse
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	SaveErrorResponse
//	@Router			/{section} [post]
func (h *Handler) SaveSection(w http.ResponseWriter, r *http.Request) {
	// Portfolio images arrive as data URIs, so documents run large.
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	section := chi.URLParam(r, "section")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return
	}

	res, err := h.svc.Save(r.Context(), section, body)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrMalformed):
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		case res != nil && res.Saved:
			// The document is on disk; only the page rebuild failed.
			slog.Error("regenerate after save failed", slog.String("section", section), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, SaveErrorResponse{
				Error: "saved but page regeneration failed",
				Saved: true,
			})
		default:
			slog.Error("save section failed", slog.String("section", section), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, SaveErrorResponse{
				Error: "failed to save data",
				Saved: false,
			})
		}
		return
	}
	writeJSON(w, http.StatusOK, SaveResponse{Success: true})
}

// Stats handles GET /api/admin/stats.
//
//	@Summary		Edit journal statistics
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Failure		503	{object}	errResponse
//	@Router			/admin/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody("journal unavailable"))
		return
	}
	stats, err := h.journal.Stats()
	if err != nil {
		slog.Error("journal stats failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
