package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

// SessionService owns per-client session identifiers and records. It is
// the only component that writes session state.
type SessionService struct {
	repo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// GetOrCreateID returns the supplied session identifier, minting a fresh
// one when the client sent none.
func (s *SessionService) GetOrCreateID(suppliedID string) string {
	if suppliedID != "" {
		return suppliedID
	}
	return uuid.NewString()
}

// Get retrieves the session for the given id. Expired sessions are
// reported as not found.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return session, nil
}

// Delete removes the session for the given id
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
