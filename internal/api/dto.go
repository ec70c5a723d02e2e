package api

import (
	"github.com/shikostudio/vitrine/internal/journal"
)

// SaveResponse is returned after a successful section save.
type SaveResponse struct {
	Success bool `json:"success" example:"true" validate:"required"`
}

// SaveErrorResponse reports a failed save. Saved distinguishes a document
// that was persisted but whose page regeneration failed from one that was
// never written.
type SaveErrorResponse struct {
	Error string `json:"error" example:"failed to save data" validate:"required"`
	Saved bool   `json:"saved" example:"false" validate:"required"`
}

// StatsResponse wraps the edit journal statistics (aliased from the
// journal layer).
type StatsResponse = journal.Stats

// SectionStat mirrors a per-section journal entry for swag.
type SectionStat = journal.SectionStat
