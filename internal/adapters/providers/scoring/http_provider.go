package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/providers"
)

const (
	healthPath = "/health"
	scorePath  = "/predict"
)

// HTTPProvider implements ScoringProvider against the external relevance
// scoring service. Both the liveness probe and the batch scoring call are
// bounded by the configured timeout; the caller decides what to do when
// either fails.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure HTTPProvider implements ScoringProvider
var _ providers.ScoringProvider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a new scoring provider
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return NewHTTPProviderWithClient(baseURL, &http.Client{Timeout: timeout})
}

// NewHTTPProviderWithClient allows overriding the HTTP client (used for tests)
func NewHTTPProviderWithClient(baseURL string, httpClient *http.Client) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Healthy probes the scoring service's liveness endpoint
func (p *HTTPProvider) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+healthPath, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Score submits the full candidate batch in one request and returns the
// scored pairs. The service may omit candidates it has no opinion on.
func (p *HTTPProvider) Score(ctx context.Context, candidates []*entities.SearchCandidate) ([]providers.PharmacyScore, error) {
	body, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidates: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+scorePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scoring request returned status %d", resp.StatusCode)
	}

	var scores []providers.PharmacyScore
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	return scores, nil
}
