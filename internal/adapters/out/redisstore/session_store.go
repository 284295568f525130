// Package redisstore keeps login sessions in redis. Keys are namespaced with
// a "session:" prefix and expire through redis TTLs, so logged-out and stale
// sessions need no sweeper.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

const keyPrefix = "session:"

// SessionStore implements ports.SessionStore on redis.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a redis-backed session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put stores the session with the given time to live.
func (s *SessionStore) Put(ctx context.Context, sessionID string, accountID kernel.UUID, ttl time.Duration) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionId")
	}
	if err := accountID.Validate(); err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+sessionID, accountID.String(), ttl).Err()
}

// Get resolves a session to its account ID. Unknown and expired sessions are
// indistinguishable; both come back as NotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (kernel.UUID, error) {
	if sessionID == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("sessionId")
	}

	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("session", sessionID)
		}
		return kernel.UUID{}, err
	}

	accountID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, err
	}

	return accountID, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionId")
	}

	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
