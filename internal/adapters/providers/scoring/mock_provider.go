package scoring

import (
	"context"

	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/providers"
)

// MockProvider is a deterministic scoring provider for local development
// and tests. Closer candidates score higher.
type MockProvider struct{}

// Ensure MockProvider implements ScoringProvider
var _ providers.ScoringProvider = (*MockProvider)(nil)

// NewMockProvider creates a new mock scoring provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Healthy always reports the mock as live
func (p *MockProvider) Healthy(ctx context.Context) bool {
	return true
}

// Score assigns a proximity-decayed score to every candidate
func (p *MockProvider) Score(ctx context.Context, candidates []*entities.SearchCandidate) ([]providers.PharmacyScore, error) {
	scores := make([]providers.PharmacyScore, 0, len(candidates))
	for _, c := range candidates {
		// 1.0 at 0 km, 0.5 at 10 km.
		score := 1.0 / (1.0 + c.DistanceMeters()/10000.0)
		scores = append(scores, providers.PharmacyScore{
			PharmacyID: c.PharmacyID,
			AIScore:    score,
		})
	}
	return scores, nil
}
