package queries

import (
	"errors"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrGetMedicineQueryIsNotConstructed = errors.New(
	"GetMedicineQuery must be created via NewGetMedicineQuery constructor",
)

// GetMedicineQuery retrieves one order with its materialized composition.
type GetMedicineQuery struct {
	callerID    kernel.UUID
	isModerator bool
	medicineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMedicineQuery creates the query.
func NewGetMedicineQuery(callerID kernel.UUID, isModerator bool, medicineID kernel.UUID) (GetMedicineQuery, error) {
	if err := callerID.Validate(); err != nil {
		return GetMedicineQuery{}, err
	}
	if err := medicineID.Validate(); err != nil {
		return GetMedicineQuery{}, err
	}

	return GetMedicineQuery{
		callerID:    callerID,
		isModerator: isModerator,
		medicineID:  medicineID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMedicineQuery) Validate() error {
	return q.guard.Validate(ErrGetMedicineQueryIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (q GetMedicineQuery) CallerID() kernel.UUID {
	return q.callerID
}

// IsModerator reports whether the caller may read other owners' orders.
func (q GetMedicineQuery) IsModerator() bool {
	return q.isModerator
}

// MedicineID returns the order to fetch.
func (q GetMedicineQuery) MedicineID() kernel.UUID {
	return q.medicineID
}

// GetMedicineQueryResponse is the full order view with its composition.
type GetMedicineQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Status        medicine.Status
	Dose          *float64
	DateCreated   time.Time
	DateFormation *time.Time
	DateComplete  *time.Time
	Composition   []CompositionLineView
}

// CompositionLineView is one substance inside the order, joined with its
// catalog metadata.
type CompositionLineView struct {
	SubstanceID   kernel.UUID
	SubstanceName string
	ImageRef      string
	Weight        float64
}
