package ports

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
)

// SubstanceRepository defines the persistence contract for catalog substances.
// Listing and search stay on the query side; the engine only needs existence
// and status checks plus moderator write operations.
type SubstanceRepository interface {
	// Add persists a new substance.
	Add(ctx context.Context, aggregate *substance.Substance) error

	// Update persists changes to an existing substance.
	Update(ctx context.Context, aggregate *substance.Substance) error

	// Get retrieves a substance by ID regardless of its catalog status, so
	// historical compositions stay resolvable. Returns an ObjectNotFound
	// taxonomy error when absent.
	Get(ctx context.Context, id kernel.UUID) (*substance.Substance, error)
}
