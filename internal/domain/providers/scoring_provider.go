package providers

import (
	"context"

	"github.com/openpharma/pharmafind/internal/domain/entities"
)

// PharmacyScore is one scored entry returned by the scoring service. The
// service may legitimately omit entries for some candidates.
type PharmacyScore struct {
	PharmacyID string  `json:"pharmacy_id"`
	AIScore    float64 `json:"ai_score"`
}

// ScoringProvider assigns relevance scores to a candidate batch. It is a
// best-effort collaborator: implementations must degrade to an empty score
// list (never an error that aborts the search) when the backing service is
// down, slow, or returns garbage. Callers treat a missing score as zero.
type ScoringProvider interface {
	// Healthy probes the scoring service
	Healthy(ctx context.Context) bool

	// Score submits the full candidate batch in one call and returns the
	// scores the service produced
	Score(ctx context.Context, candidates []*entities.SearchCandidate) ([]PharmacyScore, error)
}
