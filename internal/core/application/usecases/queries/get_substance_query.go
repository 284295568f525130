package queries

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrGetSubstanceQueryIsNotConstructed = errors.New(
	"GetSubstanceQuery must be created via NewGetSubstanceQuery constructor",
)

// GetSubstanceQuery retrieves one substance regardless of catalog status, so
// compositions referencing archived substances stay resolvable.
type GetSubstanceQuery struct {
	substanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubstanceQuery creates the query.
func NewGetSubstanceQuery(substanceID kernel.UUID) (GetSubstanceQuery, error) {
	if err := substanceID.Validate(); err != nil {
		return GetSubstanceQuery{}, err
	}

	return GetSubstanceQuery{
		substanceID: substanceID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubstanceQuery) Validate() error {
	return q.guard.Validate(ErrGetSubstanceQueryIsNotConstructed)
}

// SubstanceID returns the substance to fetch.
func (q GetSubstanceQuery) SubstanceID() kernel.UUID {
	return q.substanceID
}

// GetSubstanceQueryResponse is the full catalog view of one substance.
type GetSubstanceQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Number      int
	ImageRef    string
	Status      substance.Status
}
