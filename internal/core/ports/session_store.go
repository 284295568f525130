package ports

import (
	"context"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

// SessionStore keeps the mapping from session identifiers (cookie values) to
// account identifiers. Entries expire after the configured TTL.
type SessionStore interface {
	// Put stores the session with the given time to live.
	Put(ctx context.Context, sessionID string, accountID kernel.UUID, ttl time.Duration) error

	// Get resolves a session to its account ID. Returns an ObjectNotFound
	// taxonomy error for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (kernel.UUID, error)

	// Delete removes the session, logging the user out.
	Delete(ctx context.Context, sessionID string) error
}
