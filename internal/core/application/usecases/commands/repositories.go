// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, capability
// authorization, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names only the repositories it touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MedicineRepoFactory provides access to the medicine repository within a transaction.
	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	// SubstanceRepoFactory provides access to the substance repository within a transaction.
	SubstanceRepoFactory interface {
		SubstanceRepository() ports.SubstanceRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// MedicineUoW manages transactions for medicine-only operations
	// (form, decide, withdraw, dose callback, line removal).
	MedicineUoW interface {
		TxManager
		MedicineRepoFactory
	}

	// MedicineUoWFactory creates new medicine unit of work instances.
	MedicineUoWFactory interface {
		Create() MedicineUoW
	}

	// CatalogUoW manages transactions for substance catalog operations.
	CatalogUoW interface {
		TxManager
		SubstanceRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ComposeUoW manages transactions that span the medicine aggregate and
	// the catalog, used when adding a substance to a draft.
	ComposeUoW interface {
		TxManager
		MedicineRepoFactory
		SubstanceRepoFactory
	}

	// ComposeUoWFactory creates new compose unit of work instances.
	ComposeUoWFactory interface {
		Create() ComposeUoW
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
