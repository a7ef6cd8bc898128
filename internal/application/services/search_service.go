package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/providers"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	"github.com/openpharma/pharmafind/internal/infrastructure/observability"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

// SearchRequest is one validated medicine search.
type SearchRequest struct {
	SessionID    string
	MedicineName string
	Latitude     float64
	Longitude    float64
}

// SearchResult is the ranked response payload for one search.
type SearchResult struct {
	Message      string                      `json:"message"`
	MedicineName string                      `json:"medicine_name"`
	TotalResults int                         `json:"total_results"`
	Pharmacies   []*entities.SearchCandidate `json:"pharmacies"`
}

// SearchService runs the search pipeline: session upsert, availability
// filter, proximity query, merge, score enrichment, ranking. Steps execute
// strictly in that order within one request.
type SearchService struct {
	medicineRepo   repositories.MedicineRepository
	searchRepo     repositories.MedicineSearchRepository
	pharmacyRepo   repositories.PharmacyRepository
	sessionRepo    repositories.SessionRepository
	scoringProv    providers.ScoringProvider
	radiusMeters   float64
	scoringTimeout time.Duration
	metrics        *observability.Metrics

	cacheProv       providers.CacheProvider
	cacheTTLSeconds int
}

// NewSearchService creates a new search service. searchRepo may be nil, in
// which case name matching always runs against the database. scoringProv
// may be nil, in which case every candidate scores zero.
func NewSearchService(
	medicineRepo repositories.MedicineRepository,
	searchRepo repositories.MedicineSearchRepository,
	pharmacyRepo repositories.PharmacyRepository,
	sessionRepo repositories.SessionRepository,
	scoringProv providers.ScoringProvider,
	radiusMeters float64,
	scoringTimeout time.Duration,
) *SearchService {
	return &SearchService{
		medicineRepo:   medicineRepo,
		searchRepo:     searchRepo,
		pharmacyRepo:   pharmacyRepo,
		sessionRepo:    sessionRepo,
		scoringProv:    scoringProv,
		radiusMeters:   radiusMeters,
		scoringTimeout: scoringTimeout,
	}
}

// SetMetrics attaches application metrics
func (s *SearchService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// SetCache enables short-lived caching of availability lookups. Cache
// reads and writes are best effort; any cache failure falls through to
// the backing store.
func (s *SearchService) SetCache(cacheProv providers.CacheProvider, ttlSeconds int) {
	s.cacheProv = cacheProv
	s.cacheTTLSeconds = ttlSeconds
}

// Search executes one medicine search
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	origin := entities.Location{Latitude: req.Latitude, Longitude: req.Longitude}

	// Record the search context before touching the inventory store so the
	// session reflects the latest query even when nothing is found.
	session := &entities.Session{
		SessionID:   req.SessionID,
		SearchInput: entities.SearchInput{MedicineName: req.MedicineName},
		Location:    origin,
		Timestamp:   time.Now(),
	}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	medicines, err := s.findAvailable(ctx, req.MedicineName)
	if err != nil {
		return nil, err
	}
	if len(medicines) == 0 {
		return nil, apperrors.NewNotFoundError("no pharmacies found nearby")
	}

	nearby, err := s.pharmacyRepo.NearbyWithin(ctx, origin, s.radiusMeters, pharmacyIDs(medicines))
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		return nil, apperrors.NewNotFoundError("no pharmacies found nearby")
	}

	candidates := merge(nearby, medicines)

	s.enrich(ctx, candidates)

	rank(candidates)

	observability.RecordSearchMetric(ctx, s.metrics, len(candidates))

	return &SearchResult{
		Message:      "Search completed",
		MedicineName: req.MedicineName,
		TotalResults: len(candidates),
		Pharmacies:   candidates,
	}, nil
}

func validateRequest(req SearchRequest) error {
	if strings.TrimSpace(req.MedicineName) == "" {
		return apperrors.NewValidationError("medicine_name is required")
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

// findAvailable prefers the search index when configured, falling back to
// the database when the index is unreachable. Results are cached briefly
// when a cache is attached; popular queries hit the stores once per TTL.
func (s *SearchService) findAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	cacheKey := "availability:" + strings.ToLower(strings.TrimSpace(medicineName))

	if s.cacheProv != nil && s.cacheTTLSeconds > 0 {
		if raw, err := s.cacheProv.Get(ctx, cacheKey); err == nil {
			var medicines []*entities.Medicine
			if err := json.Unmarshal(raw, &medicines); err == nil {
				return medicines, nil
			}
		}
	}

	medicines, err := s.lookupAvailable(ctx, medicineName)
	if err != nil {
		return nil, err
	}

	if s.cacheProv != nil && s.cacheTTLSeconds > 0 {
		if raw, err := json.Marshal(medicines); err == nil {
			if err := s.cacheProv.Set(ctx, cacheKey, raw, s.cacheTTLSeconds); err != nil {
				logger(ctx).Debug().Err(err).Msg("failed to cache availability lookup")
			}
		}
	}

	return medicines, nil
}

func (s *SearchService) lookupAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	if s.searchRepo != nil {
		medicines, err := s.searchRepo.FindAvailable(ctx, medicineName)
		if err == nil {
			return medicines, nil
		}
		logger(ctx).Warn().Err(err).Msg("medicine index unavailable, falling back to database")
	}
	return s.medicineRepo.FindAvailable(ctx, medicineName)
}

func pharmacyIDs(medicines []*entities.Medicine) []string {
	seen := make(map[string]struct{}, len(medicines))
	ids := make([]string, 0, len(medicines))
	for _, m := range medicines {
		if _, ok := seen[m.PharmacyID]; ok {
			continue
		}
		seen[m.PharmacyID] = struct{}{}
		ids = append(ids, m.PharmacyID)
	}
	return ids
}

// merge joins each nearby pharmacy with its matching medicine record. When
// a pharmacy has several matching records (brand variants of the same
// query) the first one in repository order wins, so each pharmacy yields
// exactly one candidate.
func merge(nearby []entities.PharmacyDistance, medicines []*entities.Medicine) []*entities.SearchCandidate {
	byPharmacy := make(map[string]*entities.Medicine, len(medicines))
	for _, m := range medicines {
		if _, ok := byPharmacy[m.PharmacyID]; !ok {
			byPharmacy[m.PharmacyID] = m
		}
	}

	candidates := make([]*entities.SearchCandidate, 0, len(nearby))
	for _, pd := range nearby {
		medicine, ok := byPharmacy[pd.Pharmacy.PharmacyID]
		if !ok {
			continue
		}

		candidate := &entities.SearchCandidate{
			PharmacyID:   pd.Pharmacy.PharmacyID,
			Name:         pd.Pharmacy.Name,
			City:         pd.Pharmacy.Address.City,
			State:        pd.Pharmacy.Address.State,
			MedicineName: medicine.MedicineName,
			BrandName:    medicine.BrandName,
			Price:        medicine.Price,
			Stock:        medicine.Stock,
			ExpiryDate:   medicine.ExpiryDate,
		}
		candidate.SetDistanceMeters(pd.DistanceMeters)
		candidates = append(candidates, candidate)
	}

	return candidates
}

// enrich asks the scoring service for relevance scores. Scoring is a
// quality enhancement, never a hard dependency: on probe failure, timeout,
// transport error or a malformed response every candidate keeps a zero
// score and the search still succeeds.
func (s *SearchService) enrich(ctx context.Context, candidates []*entities.SearchCandidate) {
	if s.scoringProv == nil {
		return
	}

	scoringCtx, cancel := context.WithTimeout(ctx, s.scoringTimeout)
	defer cancel()

	if !s.scoringProv.Healthy(scoringCtx) {
		logger(ctx).Warn().Msg("scoring service failed liveness probe, returning zero scores")
		observability.RecordScoringFallback(ctx, s.metrics)
		return
	}

	scores, err := s.scoringProv.Score(scoringCtx, candidates)
	if err != nil {
		logger(ctx).Warn().Err(err).Msg("scoring service call failed, returning zero scores")
		observability.RecordScoringFallback(ctx, s.metrics)
		return
	}

	byID := make(map[string]float64, len(scores))
	for _, score := range scores {
		byID[score.PharmacyID] = score.AIScore
	}

	// Candidates the service omitted keep a zero score.
	for _, c := range candidates {
		c.AIScore = byID[c.PharmacyID]
	}
}

// rank sorts candidates by score descending; equal scores fall back to
// distance ascending so a degraded scoring run still yields nearest-first
// ordering.
func rank(candidates []*entities.SearchCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].AIScore != candidates[j].AIScore {
			return candidates[i].AIScore > candidates[j].AIScore
		}
		return candidates[i].DistanceMeters() < candidates[j].DistanceMeters()
	})
}
