// Package substancerepo persists catalog substances with GORM.
package substancerepo

import (
	"github.com/google/uuid"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
)

// SubstanceDTO represents the database structure for persisting substances.
type SubstanceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	Number      int
	ImageRef    string
	Status      int `gorm:"index"`
}

// TableName overrides GORM's default naming to use "substances".
func (SubstanceDTO) TableName() string {
	return "substances"
}

func fromDomain(aggregate *substance.Substance) SubstanceDTO {
	return SubstanceDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Number:      aggregate.Number(),
		ImageRef:    aggregate.ImageRef(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto SubstanceDTO) (*substance.Substance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return substance.RestoreSubstance(
		id,
		dto.Name,
		dto.Description,
		dto.Number,
		dto.ImageRef,
		substance.Status(dto.Status),
	)
}
