package medicine

import (
	"fmt"

	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// Status represents the lifecycle state of a medicine order.
// It implements a state machine with defined transitions:
//
//	Draft ──┬──> Formed ──┬──> Completed
//	        │             └──> Rejected
//	        └──> Deleted
//
// Completed, Rejected and Deleted are terminal. The numeric values are part of
// the persisted and public contract and must not be reordered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial state: the order is being assembled by its
	// owner and is invisible to everyone else.
	StatusDraft

	// StatusFormed means the owner submitted the order for moderation.
	StatusFormed

	// StatusCompleted means a moderator approved the order. The computed dose
	// arrives asynchronously after this transition.
	StatusCompleted

	// StatusRejected means a moderator denied the order.
	StatusRejected

	// StatusDeleted means the owner withdrew the order while still a draft.
	StatusDeleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusDraft:     "Draft",
		StatusFormed:    "Formed",
		StatusCompleted: "Completed",
		StatusRejected:  "Rejected",
		StatusDeleted:   "Deleted",
	}
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < StatusDraft || s > StatusDeleted {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid medicine status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Form transitions the status to Formed. Valid only from Draft.
func (s Status) Form() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewConflictErrorWithCause("medicine status",
			fmt.Errorf("%s is not a valid status to form", s))
	}
	return StatusFormed, nil
}

// Complete transitions the status to Completed. Valid only from Formed.
func (s Status) Complete() (Status, error) {
	if s != StatusFormed {
		return 0, errs.NewConflictErrorWithCause("medicine status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return StatusCompleted, nil
}

// Reject transitions the status to Rejected. Valid only from Formed.
func (s Status) Reject() (Status, error) {
	if s != StatusFormed {
		return 0, errs.NewConflictErrorWithCause("medicine status",
			fmt.Errorf("%s is not a valid status to reject", s))
	}
	return StatusRejected, nil
}

// Delete transitions the status to Deleted. Valid only from Draft.
func (s Status) Delete() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewConflictErrorWithCause("medicine status",
			fmt.Errorf("%s is not a valid status to delete", s))
	}
	return StatusDeleted, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusDeleted
}
