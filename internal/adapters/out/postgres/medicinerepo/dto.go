// Package medicinerepo persists medicine order aggregates with GORM. It maps
// the aggregate to two tables: medicines for the order itself and
// medicine_substances for the composition lines. The composite primary key on
// medicine_substances backs the one-line-per-substance invariant; a partial
// unique index on medicines (owner_id) WHERE status = draft backs the
// one-draft-per-owner invariant and is created by the migration step in main.
package medicinerepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// MedicineDTO represents the database structure for persisting orders.
type MedicineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Status        int       `gorm:"index"`
	Dose          *float64
	DateCreated   time.Time
	DateFormation *time.Time
	DateComplete  *time.Time
	ModeratorID   *uuid.UUID           `gorm:"type:uuid"`
	Composition   []CompositionLineDTO `gorm:"foreignKey:MedicineID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "medicines".
func (MedicineDTO) TableName() string {
	return "medicines"
}

// CompositionLineDTO represents one substance inside an order. The composite
// primary key doubles as the uniqueness guarantee for (medicine, substance).
type CompositionLineDTO struct {
	MedicineID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubstanceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Weight      float64
}

// TableName overrides GORM's default naming to use "medicine_substances".
func (CompositionLineDTO) TableName() string {
	return "medicine_substances"
}

func fromDomain(aggregate *medicine.Medicine) MedicineDTO {
	var moderatorID *uuid.UUID
	if id := aggregate.ModeratorID(); id != nil {
		raw := id.Bytes()
		moderatorID = &raw
	}

	lines := make([]CompositionLineDTO, 0, len(aggregate.Composition()))
	for _, line := range aggregate.Composition() {
		lines = append(lines, CompositionLineDTO{
			MedicineID:  aggregate.ID().Bytes(),
			SubstanceID: line.SubstanceID().Bytes(),
			Weight:      line.Weight(),
		})
	}

	return MedicineDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Status:        int(aggregate.Status()),
		Dose:          aggregate.Dose(),
		DateCreated:   aggregate.DateCreated(),
		DateFormation: aggregate.DateFormation(),
		DateComplete:  aggregate.DateComplete(),
		ModeratorID:   moderatorID,
		Composition:   lines,
	}
}

func toDomain(dto MedicineDTO) (*medicine.Medicine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var moderatorID *kernel.UUID
	if dto.ModeratorID != nil {
		mID, modErr := kernel.UUIDFromBytes((*dto.ModeratorID)[:])
		if modErr != nil {
			return nil, modErr
		}
		moderatorID = &mID
	}

	lines := make([]medicine.CompositionLine, 0, len(dto.Composition))
	for _, lineDTO := range dto.Composition {
		substanceID, subErr := kernel.UUIDFromBytes(lineDTO.SubstanceID[:])
		if subErr != nil {
			return nil, subErr
		}

		line, lineErr := medicine.NewCompositionLine(substanceID, lineDTO.Weight)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return medicine.RestoreMedicine(
		id,
		ownerID,
		medicine.Status(dto.Status),
		dto.Dose,
		dto.DateCreated,
		dto.DateFormation,
		dto.DateComplete,
		moderatorID,
		lines,
	)
}
