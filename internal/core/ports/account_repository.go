package ports

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/account"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account. A duplicate username surfaces as a
	// Conflict taxonomy error (unique index on username).
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists profile or credential changes.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by ID.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its login name.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
