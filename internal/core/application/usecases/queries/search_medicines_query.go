// Package queries contains read-side operations. Handlers go straight to the
// database with raw SQL instead of loading aggregates, keeping the read path
// independent from the command side.
package queries

import (
	"errors"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrSearchMedicinesQueryIsNotConstructed = errors.New(
	"SearchMedicinesQuery must be created via NewSearchMedicinesQuery constructor",
)

// SearchMedicinesQuery lists submitted orders. Draft and deleted orders never
// appear here; customers see only their own orders while moderators see all.
type SearchMedicinesQuery struct {
	callerID           kernel.UUID
	isModerator        bool
	status             *medicine.Status
	dateFormationStart *time.Time
	dateFormationEnd   *time.Time

	guard guard.ConstructorGuard
}

// NewSearchMedicinesQuery creates the query. The status and formation-date
// filters are optional. A filter on Draft or Deleted is accepted and simply
// matches nothing, since those statuses are never listed.
func NewSearchMedicinesQuery(
	callerID kernel.UUID,
	isModerator bool,
	status *medicine.Status,
	dateFormationStart *time.Time,
	dateFormationEnd *time.Time,
) (SearchMedicinesQuery, error) {
	if err := callerID.Validate(); err != nil {
		return SearchMedicinesQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return SearchMedicinesQuery{}, err
		}
	}

	return SearchMedicinesQuery{
		callerID:           callerID,
		isModerator:        isModerator,
		status:             status,
		dateFormationStart: dateFormationStart,
		dateFormationEnd:   dateFormationEnd,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchMedicinesQuery) Validate() error {
	return q.guard.Validate(ErrSearchMedicinesQueryIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (q SearchMedicinesQuery) CallerID() kernel.UUID {
	return q.callerID
}

// IsModerator reports whether the caller sees every owner's orders.
func (q SearchMedicinesQuery) IsModerator() bool {
	return q.isModerator
}

// Status returns the optional status filter.
func (q SearchMedicinesQuery) Status() *medicine.Status {
	return q.status
}

// DateFormationStart returns the optional lower bound on the submission date.
func (q SearchMedicinesQuery) DateFormationStart() *time.Time {
	return q.dateFormationStart
}

// DateFormationEnd returns the optional upper bound on the submission date.
func (q SearchMedicinesQuery) DateFormationEnd() *time.Time {
	return q.dateFormationEnd
}

// SearchMedicinesQueryResponse is one row of the order listing.
type SearchMedicinesQueryResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	Status        medicine.Status
	Dose          *float64
	DateCreated   time.Time
	DateFormation *time.Time
	DateComplete  *time.Time
}
