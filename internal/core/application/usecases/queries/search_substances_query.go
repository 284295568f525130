package queries

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrSearchSubstancesQueryIsNotConstructed = errors.New(
	"SearchSubstancesQuery must be created via NewSearchSubstancesQuery constructor",
)

// SearchSubstancesQuery lists active catalog substances, optionally filtered
// by name. When the caller is authenticated the response also carries their
// current draft order and its line count for the catalog page header.
type SearchSubstancesQuery struct {
	callerID *kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewSearchSubstancesQuery creates the query. The caller is nil for anonymous
// browsing; the name filter is optional.
func NewSearchSubstancesQuery(callerID *kernel.UUID, name string) (SearchSubstancesQuery, error) {
	if callerID != nil {
		if err := callerID.Validate(); err != nil {
			return SearchSubstancesQuery{}, err
		}
	}

	return SearchSubstancesQuery{
		callerID: callerID,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchSubstancesQuery) Validate() error {
	return q.guard.Validate(ErrSearchSubstancesQueryIsNotConstructed)
}

// CallerID returns the authenticated caller, or nil.
func (q SearchSubstancesQuery) CallerID() *kernel.UUID {
	return q.callerID
}

// Name returns the optional name filter.
func (q SearchSubstancesQuery) Name() string {
	return q.name
}

// SearchSubstancesQueryResponse is the catalog listing with the caller's
// draft context.
type SearchSubstancesQueryResponse struct {
	Substances []SubstanceView
	// DraftID is the caller's current draft order, nil when the caller is
	// anonymous or has no draft.
	DraftID *kernel.UUID
	// DraftLineCount is the number of composition lines in that draft.
	DraftLineCount int
}

// SubstanceView is one catalog row.
type SubstanceView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Number      int
	ImageRef    string
}
