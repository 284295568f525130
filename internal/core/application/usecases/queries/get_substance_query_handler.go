package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// GetSubstanceQueryHandler retrieves one substance from the database.
type GetSubstanceQueryHandler struct {
	db *gorm.DB
}

// NewGetSubstanceQueryHandler creates a handler for single substance reads.
func NewGetSubstanceQueryHandler(db *gorm.DB) GetSubstanceQueryHandler {
	return GetSubstanceQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSubstanceQueryHandler) Handle(
	ctx context.Context,
	query GetSubstanceQuery,
) (GetSubstanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSubstanceQueryResponse{}, err
	}

	var row struct {
		ID          uuid.UUID
		Name        string
		Description string
		Number      int
		ImageRef    string
		Status      int
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			number,
			image_ref,
			status
		FROM substances
		WHERE id = ?
	`, query.SubstanceID().Bytes()).Scan(&row).Error
	if err != nil {
		return GetSubstanceQueryResponse{}, err
	}

	if row.ID == uuid.Nil {
		return GetSubstanceQueryResponse{}, errs.NewObjectNotFoundError(
			"substance", query.SubstanceID().String())
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetSubstanceQueryResponse{}, err
	}

	return GetSubstanceQueryResponse{
		ID:          id,
		Name:        row.Name,
		Description: row.Description,
		Number:      row.Number,
		ImageRef:    row.ImageRef,
		Status:      substance.Status(row.Status),
	}, nil
}
