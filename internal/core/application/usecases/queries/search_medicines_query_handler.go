package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// SearchMedicinesQueryHandler lists submitted orders from the database.
type SearchMedicinesQueryHandler struct {
	db *gorm.DB
}

// NewSearchMedicinesQueryHandler creates a handler for order listings.
func NewSearchMedicinesQueryHandler(db *gorm.DB) SearchMedicinesQueryHandler {
	return SearchMedicinesQueryHandler{db: db}
}

// padFormationRange widens the requested formation-date window by one day on
// each side. Clients send bare dates while date_formation holds timestamps;
// the padding keeps orders submitted late on a boundary day inside the range.
func padFormationRange(start *time.Time, end *time.Time) (*time.Time, *time.Time) {
	if start != nil {
		padded := start.AddDate(0, 0, -1)
		start = &padded
	}
	if end != nil {
		padded := end.AddDate(0, 0, 1)
		end = &padded
	}
	return start, end
}

// Handle executes the listing. Orders are sorted by creation date, newest
// first.
func (h SearchMedicinesQueryHandler) Handle(
	ctx context.Context,
	query SearchMedicinesQuery,
) ([]SearchMedicinesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			owner_id,
			status,
			dose,
			date_created,
			date_formation,
			date_complete
		FROM medicines
		WHERE status NOT IN (?, ?)
	`
	args := []any{int(medicine.StatusDraft), int(medicine.StatusDeleted)}

	if !query.IsModerator() {
		sql += " AND owner_id = ?"
		args = append(args, query.CallerID().Bytes())
	}

	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, int(*status))
	}

	start, end := padFormationRange(query.DateFormationStart(), query.DateFormationEnd())
	if start != nil {
		sql += " AND date_formation >= ?"
		args = append(args, *start)
	}
	if end != nil {
		sql += " AND date_formation <= ?"
		args = append(args, *end)
	}

	sql += " ORDER BY date_created DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medicines := make([]SearchMedicinesQueryResponse, 0)
	for rows.Next() {
		var resp SearchMedicinesQueryResponse
		var id, ownerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&ownerID,
			&status,
			&resp.Dose,
			&resp.DateCreated,
			&resp.DateFormation,
			&resp.DateComplete,
		)
		if err != nil {
			return nil, err
		}

		medicineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = medicineID

		owner, ownerErr := kernel.UUIDFromBytes(ownerID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		resp.OwnerID = owner
		resp.Status = medicine.Status(status)

		medicines = append(medicines, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return medicines, nil
}
