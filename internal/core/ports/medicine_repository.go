package ports

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// MedicineRepository defines the persistence contract for medicine order
// aggregates. Besides plain retrieval it carries the two storage-level
// guarantees the engine relies on:
//
//   - GetOrCreateDraft is atomic under concurrent calls for the same owner
//     (backed by a partial unique index on (owner_id) WHERE status = Draft)
//   - Transition is a compare-and-set against the expected current status,
//     so concurrent transitions produce exactly one winner
type MedicineRepository interface {
	// Get retrieves an order with its composition by unique identifier.
	// Returns an ObjectNotFound taxonomy error when absent.
	Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// GetDraftByOwner retrieves the owner's current draft, or an
	// ObjectNotFound error when the owner has none.
	GetDraftByOwner(ctx context.Context, ownerID kernel.UUID) (*medicine.Medicine, error)

	// GetOrCreateDraft returns the owner's existing draft or atomically
	// creates one. Under concurrent calls for the same owner exactly one
	// draft is created; every other caller observes and reuses it.
	GetOrCreateDraft(ctx context.Context, ownerID kernel.UUID) (*medicine.Medicine, error)

	// Transition persists the aggregate's status, dates and moderator with a
	// compare-and-set guard: the write applies only while the stored status
	// still equals from. A lost race returns a Conflict taxonomy error.
	Transition(ctx context.Context, aggregate *medicine.Medicine, from medicine.Status) error

	// SaveDose writes the aggregate's dose unconditionally, regardless of
	// the stored status. Returns ObjectNotFound when the order is absent.
	SaveDose(ctx context.Context, aggregate *medicine.Medicine) error

	// AddLine appends a composition line. The (medicine, substance) unique
	// index backs the no-duplicate invariant; a duplicate insert surfaces as
	// a Conflict taxonomy error.
	AddLine(ctx context.Context, medicineID kernel.UUID, line medicine.CompositionLine) error

	// RemoveLine deletes the line for substanceID. Returns ObjectNotFound
	// when no such line exists.
	RemoveLine(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID) error

	// UpdateLineWeight replaces the weight of an existing line. Returns
	// ObjectNotFound when no such line exists.
	UpdateLineWeight(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID, weight float64) error
}
