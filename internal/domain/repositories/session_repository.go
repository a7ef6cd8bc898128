package repositories

import (
	"context"

	"github.com/openpharma/pharmafind/internal/domain/entities"
)

// SessionRepository defines the keyed session store. Exactly one record
// exists per session id; Upsert must be atomic per key so concurrent
// searches from the same client cannot create duplicates.
type SessionRepository interface {
	// Get retrieves the session for the given id. Returns (nil, nil) when
	// the session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*entities.Session, error)

	// Upsert overwrites the session record and resets its time-to-live.
	Upsert(ctx context.Context, session *entities.Session) error

	// Delete removes the session record
	Delete(ctx context.Context, sessionID string) error
}
