package substancerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// GormSubstanceRepository implements SubstanceRepository using GORM.
type GormSubstanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubstanceRepository creates a new GORM substance repository.
func NewGormSubstanceRepository(db *gorm.DB, tracker aggregateTracker) *GormSubstanceRepository {
	return &GormSubstanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new substance to the database.
func (r *GormSubstanceRepository) Add(ctx context.Context, aggregate *substance.Substance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing substance to the database.
func (r *GormSubstanceRepository) Update(ctx context.Context, aggregate *substance.Substance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SubstanceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("substance", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a substance by ID regardless of its catalog status.
func (r *GormSubstanceRepository) Get(ctx context.Context, id kernel.UUID) (*substance.Substance, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubstanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("substance", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
