package handlers

import (
	"context"
	"net/http"

	"github.com/openpharma/pharmafind/internal/api/middleware"
	"github.com/openpharma/pharmafind/internal/domain/entities"
)

// SessionReader retrieves session records
type SessionReader interface {
	Get(ctx context.Context, sessionID string) (*entities.Session, error)
}

// SessionHandler handles session inspection requests
type SessionHandler struct {
	sessionService SessionReader
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService SessionReader) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// GetSession handles GET /api/session. It returns the caller's most recent
// search context, or 404 once the session has expired.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		respondWithError(w, http.StatusBadRequest, "session identifier is required")
		return
	}

	session, err := h.sessionService.Get(r.Context(), sessionID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}
