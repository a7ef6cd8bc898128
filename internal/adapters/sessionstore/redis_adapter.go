package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/openpharma/pharmafind/internal/domain/entities"
	"github.com/openpharma/pharmafind/internal/domain/repositories"
	redisclient "github.com/openpharma/pharmafind/internal/infrastructure/clients/redis"
	apperrors "github.com/openpharma/pharmafind/pkg/errors"
)

const keyPrefix = "session:"

// RedisAdapter implements SessionRepository on Redis. Each session is one
// key written with SET ... EX, so the upsert and the TTL reset are a single
// atomic operation per session id, and expired sessions are evicted by the
// store itself.
type RedisAdapter struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisAdapter creates a new Redis session adapter
func NewRedisAdapter(client *redisclient.Client, ttlSeconds int) repositories.SessionRepository {
	return &RedisAdapter{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func (a *RedisAdapter) key(sessionID string) string {
	return keyPrefix + sessionID
}

// Get retrieves a session. Expired or unknown ids yield (nil, nil).
func (a *RedisAdapter) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	val, err := a.client.Client().Get(ctx, a.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get session", err)
	}

	session := &entities.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal session", err)
	}

	return session, nil
}

// Upsert overwrites the session record and resets its TTL
func (a *RedisAdapter) Upsert(ctx context.Context, session *entities.Session) error {
	if session.SessionID == "" {
		return apperrors.NewValidationError("session_id is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal session", err)
	}

	if err := a.client.Client().Set(ctx, a.key(session.SessionID), data, a.ttl).Err(); err != nil {
		return apperrors.NewInternalError("failed to upsert session", err)
	}

	return nil
}

// Delete removes the session record
func (a *RedisAdapter) Delete(ctx context.Context, sessionID string) error {
	if err := a.client.Client().Del(ctx, a.key(sessionID)).Err(); err != nil {
		return apperrors.NewInternalError("failed to delete session", err)
	}
	return nil
}
