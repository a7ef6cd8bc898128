package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/openpharma/pharmafind/internal/api/middleware"
	"github.com/openpharma/pharmafind/internal/application/services"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

type MockSearchRunner struct {
	mock.Mock
}

func (m *MockSearchRunner) Search(ctx context.Context, req services.SearchRequest) (*services.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SearchResult), args.Error(1)
}

func searchBody(t *testing.T, body map[string]interface{}) *bytes.Reader {
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func serveSearch(handler *SearchHandler, req *http.Request) *httptest.ResponseRecorder {
	// Run through the session middleware so the handler sees a resolved id.
	mw := middleware.NewSessionMiddleware(services.NewSessionService(nil), "session_id", "X-Session-ID", 3600)
	rec := httptest.NewRecorder()
	mw.Middleware(http.HandlerFunc(handler.SearchMedicine)).ServeHTTP(rec, req)
	return rec
}

func TestSearchMedicine_Success(t *testing.T) {
	candidate := &entities.SearchCandidate{
		PharmacyID:   "ph-x",
		Name:         "Pharmacy X",
		MedicineName: "Paracetamol 500mg",
		Price:        850,
		Stock:        12,
		AIScore:      0.8,
	}
	candidate.SetDistanceMeters(2000)

	runner := new(MockSearchRunner)
	runner.On("Search", mock.Anything, mock.MatchedBy(func(req services.SearchRequest) bool {
		return req.MedicineName == "Paracetamol" && req.Latitude == 6.5244 && req.SessionID != ""
	})).Return(&services.SearchResult{
		Message:      "Search completed",
		MedicineName: "Paracetamol",
		TotalResults: 1,
		Pharmacies:   []*entities.SearchCandidate{candidate},
	}, nil)

	handler := NewSearchHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/search", searchBody(t, map[string]interface{}{
		"medicine_name": "Paracetamol",
		"latitude":      6.5244,
		"longitude":     3.3792,
	}))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Search completed", resp["message"])
	assert.Equal(t, float64(1), resp["total_results"])

	pharmacies := resp["pharmacies"].([]interface{})
	first := pharmacies[0].(map[string]interface{})
	assert.Equal(t, "ph-x", first["pharmacy_id"])
	assert.Equal(t, 0.8, first["ai_score"])
	assert.Equal(t, 2.0, first["distance_km"])
}

func TestSearchMedicine_MissingCoordinates(t *testing.T) {
	runner := new(MockSearchRunner)
	handler := NewSearchHandler(runner)

	req := httptest.NewRequest(http.MethodPost, "/api/search", searchBody(t, map[string]interface{}{
		"medicine_name": "Paracetamol",
	}))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	runner.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchMedicine_InvalidBody(t *testing.T) {
	handler := NewSearchHandler(new(MockSearchRunner))

	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader([]byte("not json")))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchMedicine_ValidationErrorMapsTo400(t *testing.T) {
	runner := new(MockSearchRunner)
	runner.On("Search", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("medicine_name is required"))

	handler := NewSearchHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/search", searchBody(t, map[string]interface{}{
		"medicine_name": "  ",
		"latitude":      6.5,
		"longitude":     3.4,
	}))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "medicine_name is required")
}

func TestSearchMedicine_NotFoundMapsTo404(t *testing.T) {
	runner := new(MockSearchRunner)
	runner.On("Search", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("no pharmacies found nearby"))

	handler := NewSearchHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/search", searchBody(t, map[string]interface{}{
		"medicine_name": "Paracetamol",
		"latitude":      6.5,
		"longitude":     3.4,
	}))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no pharmacies found nearby")
}

func TestSearchMedicine_InternalErrorIsOpaque(t *testing.T) {
	runner := new(MockSearchRunner)
	runner.On("Search", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInternalError("query failed: relation medicines does not exist", nil))

	handler := NewSearchHandler(runner)
	req := httptest.NewRequest(http.MethodPost, "/api/search", searchBody(t, map[string]interface{}{
		"medicine_name": "Paracetamol",
		"latitude":      6.5,
		"longitude":     3.4,
	}))

	rec := serveSearch(handler, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
	assert.NotContains(t, rec.Body.String(), "relation medicines")
}
