package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// GetMedicineQueryHandler retrieves one order with its composition joined
// against the substance catalog.
//
// Visibility: the owner always sees their order, moderators see any order
// that has left the Draft status, and deleted orders are not found for
// everyone. Denied access reads as NotFound so the response does not leak
// which order IDs exist.
type GetMedicineQueryHandler struct {
	db *gorm.DB
}

// NewGetMedicineQueryHandler creates a handler for single order reads.
func NewGetMedicineQueryHandler(db *gorm.DB) GetMedicineQueryHandler {
	return GetMedicineQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMedicineQueryHandler) Handle(
	ctx context.Context,
	query GetMedicineQuery,
) (GetMedicineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMedicineQueryResponse{}, err
	}

	var row struct {
		ID            uuid.UUID
		OwnerID       uuid.UUID
		Status        int
		Dose          *float64
		DateCreated   time.Time
		DateFormation *time.Time
		DateComplete  *time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			dose,
			date_created,
			date_formation,
			date_complete
		FROM medicines
		WHERE id = ?
	`, query.MedicineID().Bytes()).Scan(&row).Error
	if err != nil {
		return GetMedicineQueryResponse{}, err
	}

	notFound := errs.NewObjectNotFoundError("medicine", query.MedicineID().String())
	if row.ID == uuid.Nil {
		return GetMedicineQueryResponse{}, notFound
	}

	status := medicine.Status(row.Status)
	isOwner := row.OwnerID == query.CallerID().Bytes()
	switch {
	case status == medicine.StatusDeleted:
		return GetMedicineQueryResponse{}, notFound
	case isOwner:
		// owner reads their order in any live status
	case query.IsModerator() && status != medicine.StatusDraft:
		// moderators read orders once submitted
	default:
		return GetMedicineQueryResponse{}, notFound
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetMedicineQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(row.OwnerID[:])
	if err != nil {
		return GetMedicineQueryResponse{}, err
	}

	composition, err := h.loadComposition(ctx, query.MedicineID())
	if err != nil {
		return GetMedicineQueryResponse{}, err
	}

	return GetMedicineQueryResponse{
		ID:            id,
		OwnerID:       ownerID,
		Status:        status,
		Dose:          row.Dose,
		DateCreated:   row.DateCreated,
		DateFormation: row.DateFormation,
		DateComplete:  row.DateComplete,
		Composition:   composition,
	}, nil
}

func (h GetMedicineQueryHandler) loadComposition(ctx context.Context, medicineID kernel.UUID) ([]CompositionLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ms.substance_id,
			s.name,
			s.image_ref,
			ms.weight
		FROM medicine_substances ms
		JOIN substances s ON s.id = ms.substance_id
		WHERE ms.medicine_id = ?
		ORDER BY s.name
	`, medicineID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]CompositionLineView, 0)
	for rows.Next() {
		var line CompositionLineView
		var substanceID uuid.UUID

		if err = rows.Scan(&substanceID, &line.SubstanceName, &line.ImageRef, &line.Weight); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(substanceID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.SubstanceID = id

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
