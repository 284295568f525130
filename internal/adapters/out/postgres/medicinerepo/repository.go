package medicinerepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// GormMedicineRepository implements MedicineRepository using GORM.
type GormMedicineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMedicineRepository creates a new GORM medicine repository.
func NewGormMedicineRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicineRepository {
	return &GormMedicineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves an order with its composition lines.
func (r *GormMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	err := r.db.WithContext(ctx).Preload("Composition").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDraftByOwner retrieves the owner's current draft order.
func (r *GormMedicineRepository) GetDraftByOwner(ctx context.Context, ownerID kernel.UUID) (*medicine.Medicine, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	err := r.db.WithContext(ctx).Preload("Composition").
		First(&dto, "owner_id = ? AND status = ?", ownerID.Bytes(), int(medicine.StatusDraft)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("draft", ownerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOrCreateDraft returns the owner's draft, creating it when absent.
//
// The insert targets the partial unique index on (owner_id) WHERE status =
// draft with DO NOTHING, so under concurrent calls exactly one row is created
// and every caller observes it on the follow-up read.
func (r *GormMedicineRepository) GetOrCreateDraft(ctx context.Context, ownerID kernel.UUID) (*medicine.Medicine, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	draft, err := medicine.NewDraft(kernel.NewUUID(), ownerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	dto := fromDomain(draft)
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Name: "status"}, Value: int(medicine.StatusDraft)},
		}},
		DoNothing: true,
	}).Create(&dto).Error
	if err != nil {
		return nil, err
	}

	existing, err := r.GetDraftByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(existing.ID(), existing)
	return existing, nil
}

// Transition persists a status change with a compare-and-set guard on the
// expected current status. A write that matches no row means a concurrent
// transition already moved the order; that surfaces as Conflict.
func (r *GormMedicineRepository) Transition(ctx context.Context, aggregate *medicine.Medicine, from medicine.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var moderatorID any
	if id := aggregate.ModeratorID(); id != nil {
		moderatorID = id.Bytes()
	}

	result := r.db.WithContext(ctx).Model(&MedicineDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(from)).
		Updates(map[string]any{
			"status":         int(aggregate.Status()),
			"date_formation": aggregate.DateFormation(),
			"date_complete":  aggregate.DateComplete(),
			"moderator_id":   moderatorID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("status",
			errors.New("medicine is no longer "+from.String()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// SaveDose writes the dose without any status guard. The dosing callback is
// an independent write path and must land whatever state the order is in.
func (r *GormMedicineRepository) SaveDose(ctx context.Context, aggregate *medicine.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MedicineDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("dose", aggregate.Dose())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddLine appends a composition line. Requires gorm's TranslateError so a
// composite key violation comes back as gorm.ErrDuplicatedKey.
func (r *GormMedicineRepository) AddLine(ctx context.Context, medicineID kernel.UUID, line medicine.CompositionLine) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	dto := CompositionLineDTO{
		MedicineID:  medicineID.Bytes(),
		SubstanceID: line.SubstanceID().Bytes(),
		Weight:      line.Weight(),
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("substanceId",
				errors.New("substance is already in the composition"))
		}
		return err
	}

	return nil
}

// RemoveLine deletes the line for the given substance.
func (r *GormMedicineRepository) RemoveLine(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	if err := substanceID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("medicine_id = ? AND substance_id = ?", medicineID.Bytes(), substanceID.Bytes()).
		Delete(&CompositionLineDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("substanceId", substanceID.String())
	}

	return nil
}

// UpdateLineWeight replaces the weight of an existing line.
func (r *GormMedicineRepository) UpdateLineWeight(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID, weight float64) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	if err := substanceID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CompositionLineDTO{}).
		Where("medicine_id = ? AND substance_id = ?", medicineID.Bytes(), substanceID.Bytes()).
		Update("weight", weight)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("substanceId", substanceID.String())
	}

	return nil
}
