package substance

import (
	"fmt"

	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// Status represents the catalog state of a substance.
//
// Substances are never hard-deleted: archiving flips the status so historical
// medicine compositions stay resolvable while the substance disappears from
// listings and can no longer be added to new drafts.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the substance is listed in the catalog and may be
	// added to draft medicines.
	StatusActive

	// StatusArchived means the substance was soft-deleted by a moderator.
	// It remains referenceable by existing compositions.
	StatusArchived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusArchived: "Archived",
	}
}

// Validate checks that the status is one of the defined catalog states.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusArchived {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid substance status", s))
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
