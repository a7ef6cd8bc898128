package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/providers"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

type MockMedicineRepo struct {
	mock.Mock
}

func (m *MockMedicineRepo) Create(ctx context.Context, medicine *entities.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepo) ListByPharmacy(ctx context.Context, pharmacyID string) ([]*entities.Medicine, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medicine), args.Error(1)
}

func (m *MockMedicineRepo) FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	args := m.Called(ctx, medicineName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medicine), args.Error(1)
}

type MockPharmacyRepo struct {
	mock.Mock
}

func (m *MockPharmacyRepo) Create(ctx context.Context, pharmacy *entities.Pharmacy) error {
	args := m.Called(ctx, pharmacy)
	return args.Error(0)
}

func (m *MockPharmacyRepo) GetByID(ctx context.Context, pharmacyID string) (*entities.Pharmacy, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pharmacy), args.Error(1)
}

func (m *MockPharmacyRepo) NearbyWithin(ctx context.Context, origin entities.Location, radiusMeters float64, pharmacyIDs []string) ([]entities.PharmacyDistance, error) {
	args := m.Called(ctx, origin, radiusMeters, pharmacyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PharmacyDistance), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *MockSessionRepo) Upsert(ctx context.Context, session *entities.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockScoringProvider struct {
	mock.Mock
}

func (m *MockScoringProvider) Healthy(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockScoringProvider) Score(ctx context.Context, candidates []*entities.SearchCandidate) ([]providers.PharmacyScore, error) {
	args := m.Called(ctx, candidates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]providers.PharmacyScore), args.Error(1)
}

func pharmacyAt(id, name string, distanceMeters float64) entities.PharmacyDistance {
	return entities.PharmacyDistance{
		Pharmacy: &entities.Pharmacy{
			PharmacyID: id,
			Name:       name,
			Address:    entities.Address{City: "Lagos", State: "Lagos"},
		},
		DistanceMeters: distanceMeters,
	}
}

func medicineAt(pharmacyID, name string, stock int) *entities.Medicine {
	return &entities.Medicine{
		ID:           "med-" + pharmacyID,
		PharmacyID:   pharmacyID,
		MedicineName: name,
		Price:        850,
		Stock:        stock,
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
	}
}

func newTestService(medicineRepo *MockMedicineRepo, pharmacyRepo *MockPharmacyRepo, sessionRepo *MockSessionRepo, scoringProv providers.ScoringProvider) *SearchService {
	return NewSearchService(medicineRepo, nil, pharmacyRepo, sessionRepo, scoringProv, 20000, time.Second)
}

func TestSearch_SingleMatchRankedWithScore(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)
	scoringProv := new(MockScoringProvider)

	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-x", "Paracetamol 500mg", 5)}, nil)
	pharmacyRepo.On("NearbyWithin", mock.Anything, mock.Anything, 20000.0, []string{"ph-x"}).
		Return([]entities.PharmacyDistance{pharmacyAt("ph-x", "Pharmacy X", 2000)}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	scoringProv.On("Healthy", mock.Anything).Return(true)
	scoringProv.On("Score", mock.Anything, mock.Anything).
		Return([]providers.PharmacyScore{{PharmacyID: "ph-x", AIScore: 0.8}}, nil)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, scoringProv)

	result, err := svc.Search(context.Background(), SearchRequest{
		SessionID:    "s1",
		MedicineName: "Paracetamol",
		Latitude:     6.5244,
		Longitude:    3.3792,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalResults)
	assert.Equal(t, "ph-x", result.Pharmacies[0].PharmacyID)
	assert.Equal(t, 0.8, result.Pharmacies[0].AIScore)
	assert.Equal(t, 2.0, result.Pharmacies[0].DistanceKm)
	assert.Equal(t, 5, result.Pharmacies[0].Stock)
}

func TestSearch_NoPharmacyWithinRadius(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)

	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-y", "Paracetamol 500mg", 5)}, nil)
	// Pharmacy Y sits at 25 km; the repository excludes it.
	pharmacyRepo.On("NearbyWithin", mock.Anything, mock.Anything, 20000.0, []string{"ph-y"}).
		Return([]entities.PharmacyDistance{}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, nil)

	result, err := svc.Search(context.Background(), SearchRequest{
		SessionID:    "s1",
		MedicineName: "Paracetamol",
		Latitude:     6.5,
		Longitude:    3.4,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "no pharmacies found nearby")
}

func TestSearch_NoMatchingMedicine(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)

	medicineRepo.On("FindAvailable", mock.Anything, "Nonexistium").
		Return([]*entities.Medicine{}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, nil)

	_, err := svc.Search(context.Background(), SearchRequest{
		SessionID:    "s1",
		MedicineName: "Nonexistium",
		Latitude:     6.5,
		Longitude:    3.4,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	pharmacyRepo.AssertNotCalled(t, "NearbyWithin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_ScoringFailureFailsOpen(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)
	scoringProv := new(MockScoringProvider)

	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{
			medicineAt("ph-a", "Paracetamol 500mg", 5),
			medicineAt("ph-b", "Paracetamol 500mg", 9),
		}, nil)
	pharmacyRepo.On("NearbyWithin", mock.Anything, mock.Anything, 20000.0, []string{"ph-a", "ph-b"}).
		Return([]entities.PharmacyDistance{
			pharmacyAt("ph-a", "Pharmacy A", 3000),
			pharmacyAt("ph-b", "Pharmacy B", 1000),
		}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	scoringProv.On("Healthy", mock.Anything).Return(true)
	scoringProv.On("Score", mock.Anything, mock.Anything).
		Return(nil, errors.New("context deadline exceeded"))

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, scoringProv)

	// Repeated identical searches keep succeeding with zero scores.
	for i := 0; i < 2; i++ {
		result, err := svc.Search(context.Background(), SearchRequest{
			SessionID:    "s1",
			MedicineName: "Paracetamol",
			Latitude:     6.5,
			Longitude:    3.4,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.TotalResults)
		for _, c := range result.Pharmacies {
			assert.Equal(t, 0.0, c.AIScore)
		}
		// All-zero scores fall back to nearest-first ordering.
		assert.Equal(t, "ph-b", result.Pharmacies[0].PharmacyID)
		assert.Equal(t, "ph-a", result.Pharmacies[1].PharmacyID)
	}
}

func TestSearch_ProbeFailureSkipsScoringCall(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)
	scoringProv := new(MockScoringProvider)

	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-a", "Paracetamol 500mg", 5)}, nil)
	pharmacyRepo.On("NearbyWithin", mock.Anything, mock.Anything, 20000.0, []string{"ph-a"}).
		Return([]entities.PharmacyDistance{pharmacyAt("ph-a", "Pharmacy A", 3000)}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	scoringProv.On("Healthy", mock.Anything).Return(false)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, scoringProv)

	result, err := svc.Search(context.Background(), SearchRequest{
		SessionID:    "s1",
		MedicineName: "Paracetamol",
		Latitude:     6.5,
		Longitude:    3.4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.Pharmacies[0].AIScore)
	scoringProv.AssertNotCalled(t, "Score", mock.Anything, mock.Anything)
}

func TestSearch_OmittedScoresDefaultToZero(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)
	scoringProv := new(MockScoringProvider)

	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{
			medicineAt("ph-a", "Paracetamol 500mg", 5),
			medicineAt("ph-b", "Paracetamol 500mg", 9),
		}, nil)
	pharmacyRepo.On("NearbyWithin", mock.Anything, mock.Anything, 20000.0, []string{"ph-a", "ph-b"}).
		Return([]entities.PharmacyDistance{
			pharmacyAt("ph-a", "Pharmacy A", 3000),
			pharmacyAt("ph-b", "Pharmacy B", 1000),
		}, nil)
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	scoringProv.On("Healthy", mock.Anything).Return(true)
	scoringProv.On("Score", mock.Anything, mock.Anything).
		Return([]providers.PharmacyScore{{PharmacyID: "ph-a", AIScore: 0.4}}, nil)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, scoringProv)

	result, err := svc.Search(context.Background(), SearchRequest{
		SessionID:    "s1",
		MedicineName: "Paracetamol",
		Latitude:     6.5,
		Longitude:    3.4,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ph-a", result.Pharmacies[0].PharmacyID)
	assert.Equal(t, 0.4, result.Pharmacies[0].AIScore)
	assert.Equal(t, 0.0, result.Pharmacies[1].AIScore)
}

func TestSearch_SessionUpsertRecordsLatestQuery(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)

	medicineRepo.On("FindAvailable", mock.Anything, mock.Anything).
		Return([]*entities.Medicine{}, nil)

	var lastUpsert *entities.Session
	sessionRepo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			lastUpsert = args.Get(1).(*entities.Session)
		}).
		Return(nil)

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, nil)

	_, _ = svc.Search(context.Background(), SearchRequest{
		SessionID: "s1", MedicineName: "Paracetamol", Latitude: 6.5, Longitude: 3.4,
	})
	_, _ = svc.Search(context.Background(), SearchRequest{
		SessionID: "s1", MedicineName: "Ibuprofen", Latitude: 7.4, Longitude: 3.9,
	})

	sessionRepo.AssertNumberOfCalls(t, "Upsert", 2)
	assert.Equal(t, "s1", lastUpsert.SessionID)
	assert.Equal(t, "Ibuprofen", lastUpsert.SearchInput.MedicineName)
	assert.Equal(t, 7.4, lastUpsert.Location.Latitude)
	assert.False(t, lastUpsert.Timestamp.IsZero())
}

func TestSearch_SessionStoreFailureIsFatal(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	pharmacyRepo := new(MockPharmacyRepo)
	sessionRepo := new(MockSessionRepo)

	sessionRepo.On("Upsert", mock.Anything, mock.Anything).
		Return(apperrors.NewInternalError("redis down", errors.New("dial tcp: refused")))

	svc := newTestService(medicineRepo, pharmacyRepo, sessionRepo, nil)

	_, err := svc.Search(context.Background(), SearchRequest{
		SessionID: "s1", MedicineName: "Paracetamol", Latitude: 6.5, Longitude: 3.4,
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	medicineRepo.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything)
}

func TestSearch_Validation(t *testing.T) {
	svc := newTestService(new(MockMedicineRepo), new(MockPharmacyRepo), new(MockSessionRepo), nil)

	cases := []struct {
		name string
		req  SearchRequest
	}{
		{"empty medicine name", SearchRequest{SessionID: "s1", MedicineName: "  ", Latitude: 6.5, Longitude: 3.4}},
		{"latitude out of range", SearchRequest{SessionID: "s1", MedicineName: "Paracetamol", Latitude: 91, Longitude: 3.4}},
		{"longitude out of range", SearchRequest{SessionID: "s1", MedicineName: "Paracetamol", Latitude: 6.5, Longitude: -181}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tc.req)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
}

func TestMerge_PicksFirstMatchPerPharmacy(t *testing.T) {
	nearby := []entities.PharmacyDistance{pharmacyAt("ph-a", "Pharmacy A", 1500)}
	medicines := []*entities.Medicine{
		{ID: "m1", PharmacyID: "ph-a", MedicineName: "Paracetamol 500mg", BrandName: "Panadol", Price: 900, Stock: 10, ExpiryDate: time.Now().AddDate(2, 0, 0)},
		{ID: "m2", PharmacyID: "ph-a", MedicineName: "Paracetamol 500mg", BrandName: "Emzor", Price: 700, Stock: 30, ExpiryDate: time.Now().AddDate(1, 0, 0)},
	}

	candidates := merge(nearby, medicines)

	// One candidate per pharmacy; the first record in repository order wins.
	assert.Len(t, candidates, 1)
	assert.Equal(t, "Panadol", candidates[0].BrandName)
	assert.Equal(t, 900.0, candidates[0].Price)
	assert.Equal(t, 1.5, candidates[0].DistanceKm)
}

func TestMerge_DropsPharmaciesWithoutMatchingRecord(t *testing.T) {
	nearby := []entities.PharmacyDistance{
		pharmacyAt("ph-a", "Pharmacy A", 1500),
		pharmacyAt("ph-b", "Pharmacy B", 2500),
	}
	medicines := []*entities.Medicine{medicineAt("ph-a", "Paracetamol 500mg", 5)}

	candidates := merge(nearby, medicines)

	assert.Len(t, candidates, 1)
	assert.Equal(t, "ph-a", candidates[0].PharmacyID)
}

func TestRank_ScoreDescending(t *testing.T) {
	a := &entities.SearchCandidate{PharmacyID: "a", AIScore: 0.2}
	b := &entities.SearchCandidate{PharmacyID: "b", AIScore: 0.9}
	c := &entities.SearchCandidate{PharmacyID: "c", AIScore: 0.5}

	candidates := []*entities.SearchCandidate{a, b, c}
	rank(candidates)

	assert.Equal(t, "b", candidates[0].PharmacyID)
	assert.Equal(t, "c", candidates[1].PharmacyID)
	assert.Equal(t, "a", candidates[2].PharmacyID)
}

func TestRank_DistanceBreaksScoreTies(t *testing.T) {
	far := &entities.SearchCandidate{PharmacyID: "far", AIScore: 0.5}
	far.SetDistanceMeters(8000)
	near := &entities.SearchCandidate{PharmacyID: "near", AIScore: 0.5}
	near.SetDistanceMeters(1200)

	candidates := []*entities.SearchCandidate{far, near}
	rank(candidates)

	assert.Equal(t, "near", candidates[0].PharmacyID)
	assert.Equal(t, "far", candidates[1].PharmacyID)
}

func TestRank_AllZeroScoresFallBackToDistance(t *testing.T) {
	c1 := &entities.SearchCandidate{PharmacyID: "c1"}
	c1.SetDistanceMeters(9000)
	c2 := &entities.SearchCandidate{PharmacyID: "c2"}
	c2.SetDistanceMeters(500)
	c3 := &entities.SearchCandidate{PharmacyID: "c3"}
	c3.SetDistanceMeters(4000)

	candidates := []*entities.SearchCandidate{c1, c2, c3}
	rank(candidates)

	assert.Equal(t, "c2", candidates[0].PharmacyID)
	assert.Equal(t, "c3", candidates[1].PharmacyID)
	assert.Equal(t, "c1", candidates[2].PharmacyID)
}

func TestFindAvailable_IndexErrorFallsBackToDatabase(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	searchRepo := new(MockSearchIndex)

	searchRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return(nil, errors.New("typesense unreachable"))
	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-a", "Paracetamol 500mg", 5)}, nil)

	svc := NewSearchService(medicineRepo, searchRepo, new(MockPharmacyRepo), new(MockSessionRepo), nil, 20000, time.Second)

	medicines, err := svc.findAvailable(context.Background(), "Paracetamol")

	assert.NoError(t, err)
	assert.Len(t, medicines, 1)
	medicineRepo.AssertCalled(t, "FindAvailable", mock.Anything, "Paracetamol")
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func TestFindAvailable_ServesRepeatLookupsFromCache(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	cacheProv := new(MockCacheProvider)

	stored := make(map[string][]byte)
	cacheProv.On("Get", mock.Anything, "availability:paracetamol").
		Return(nil, errors.New("key not found")).Once()
	cacheProv.On("Set", mock.Anything, "availability:paracetamol", mock.Anything, 30).
		Run(func(args mock.Arguments) {
			stored[args.String(1)] = args.Get(2).([]byte)
		}).
		Return(nil).Once()
	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-a", "Paracetamol 500mg", 5)}, nil).Once()

	svc := NewSearchService(medicineRepo, nil, new(MockPharmacyRepo), new(MockSessionRepo), nil, 20000, time.Second)
	svc.SetCache(cacheProv, 30)

	first, err := svc.findAvailable(context.Background(), "Paracetamol")
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// Second lookup is served from the cached bytes; the repository is
	// never touched again.
	cacheProv.On("Get", mock.Anything, "availability:paracetamol").
		Return(stored["availability:paracetamol"], nil).Once()

	second, err := svc.findAvailable(context.Background(), "Paracetamol")
	assert.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, "ph-a", second[0].PharmacyID)

	medicineRepo.AssertNumberOfCalls(t, "FindAvailable", 1)
}

func TestFindAvailable_CacheWriteFailureIsNonFatal(t *testing.T) {
	medicineRepo := new(MockMedicineRepo)
	cacheProv := new(MockCacheProvider)

	cacheProv.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("key not found"))
	cacheProv.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis: connection pool exhausted"))
	medicineRepo.On("FindAvailable", mock.Anything, "Paracetamol").
		Return([]*entities.Medicine{medicineAt("ph-a", "Paracetamol 500mg", 5)}, nil)

	svc := NewSearchService(medicineRepo, nil, new(MockPharmacyRepo), new(MockSessionRepo), nil, 20000, time.Second)
	svc.SetCache(cacheProv, 30)

	medicines, err := svc.findAvailable(context.Background(), "Paracetamol")

	assert.NoError(t, err)
	assert.Len(t, medicines, 1)
}

type MockSearchIndex struct {
	mock.Mock
}

func (m *MockSearchIndex) FindAvailable(ctx context.Context, medicineName string) ([]*entities.Medicine, error) {
	args := m.Called(ctx, medicineName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medicine), args.Error(1)
}

func (m *MockSearchIndex) Index(ctx context.Context, medicine *entities.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockSearchIndex) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
