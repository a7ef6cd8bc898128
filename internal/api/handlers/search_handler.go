package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openpharma/pharmafind/internal/api/middleware"
	"github.com/openpharma/pharmafind/internal/application/services"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

// SearchRunner executes medicine searches
type SearchRunner interface {
	Search(ctx context.Context, req services.SearchRequest) (*services.SearchResult, error)
}

// SearchHandler handles medicine search HTTP requests
type SearchHandler struct {
	searchService SearchRunner
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchRunner) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

type searchRequestBody struct {
	MedicineName string   `json:"medicine_name"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// SearchMedicine handles POST /api/search
func (h *SearchHandler) SearchMedicine(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Latitude == nil || body.Longitude == nil {
		respondWithError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	req := services.SearchRequest{
		SessionID:    middleware.SessionIDFromContext(r.Context()),
		MedicineName: body.MedicineName,
		Latitude:     *body.Latitude,
		Longitude:    *body.Longitude,
	}

	result, err := h.searchService.Search(r.Context(), req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"message": message,
	})
}

// respondWithAppError maps the error taxonomy to HTTP statuses. Internal
// detail never leaks to the client.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
}
