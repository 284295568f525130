package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
)

// SearchSubstancesQueryHandler lists the active catalog from the database.
type SearchSubstancesQueryHandler struct {
	db *gorm.DB
}

// NewSearchSubstancesQueryHandler creates a handler for catalog listings.
func NewSearchSubstancesQueryHandler(db *gorm.DB) SearchSubstancesQueryHandler {
	return SearchSubstancesQueryHandler{db: db}
}

// Handle executes the listing, sorted by catalog number. Archived substances
// never appear regardless of the name filter.
func (h SearchSubstancesQueryHandler) Handle(
	ctx context.Context,
	query SearchSubstancesQuery,
) (SearchSubstancesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchSubstancesQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			number,
			image_ref
		FROM substances
		WHERE status = ?
	`
	args := []any{int(substance.StatusActive)}

	if query.Name() != "" {
		sql += " AND name ILIKE ?"
		args = append(args, "%"+query.Name()+"%")
	}

	sql += " ORDER BY number"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return SearchSubstancesQueryResponse{}, err
	}
	defer rows.Close()

	resp := SearchSubstancesQueryResponse{Substances: make([]SubstanceView, 0)}
	for rows.Next() {
		var view SubstanceView
		var id uuid.UUID

		err = rows.Scan(&id, &view.Name, &view.Description, &view.Number, &view.ImageRef)
		if err != nil {
			return SearchSubstancesQueryResponse{}, err
		}

		substanceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return SearchSubstancesQueryResponse{}, idErr
		}
		view.ID = substanceID

		resp.Substances = append(resp.Substances, view)
	}

	if err = rows.Err(); err != nil {
		return SearchSubstancesQueryResponse{}, err
	}

	if callerID := query.CallerID(); callerID != nil {
		if err = h.attachDraftContext(ctx, *callerID, &resp); err != nil {
			return SearchSubstancesQueryResponse{}, err
		}
	}

	return resp, nil
}

func (h SearchSubstancesQueryHandler) attachDraftContext(
	ctx context.Context,
	callerID kernel.UUID,
	resp *SearchSubstancesQueryResponse,
) error {
	var row struct {
		ID        uuid.UUID
		LineCount int
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			COUNT(ms.substance_id) AS line_count
		FROM medicines m
		LEFT JOIN medicine_substances ms ON ms.medicine_id = m.id
		WHERE m.owner_id = ? AND m.status = ?
		GROUP BY m.id
	`, callerID.Bytes(), int(medicine.StatusDraft)).Scan(&row).Error
	if err != nil {
		return err
	}

	if row.ID == uuid.Nil {
		return nil
	}

	draftID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return err
	}

	resp.DraftID = &draftID
	resp.DraftLineCount = row.LineCount
	return nil
}
