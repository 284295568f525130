package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrRemoveSubstanceFromDraftCommandIsNotConstructed = errors.New(
	"RemoveSubstanceFromDraftCommand must be created via NewRemoveSubstanceFromDraftCommand constructor",
)

// RemoveSubstanceFromDraftCommand requests removal of one composition line
// from the caller's draft medicine.
type RemoveSubstanceFromDraftCommand struct { //nolint:recvcheck //using for validation
	callerID    kernel.UUID
	callerRole  access.Role
	medicineID  kernel.UUID
	substanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveSubstanceFromDraftCommand creates the command, validating all identifiers.
func NewRemoveSubstanceFromDraftCommand(
	callerID kernel.UUID,
	callerRole access.Role,
	medicineID kernel.UUID,
	substanceID kernel.UUID,
) (RemoveSubstanceFromDraftCommand, error) {
	cmd := RemoveSubstanceFromDraftCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setMedicineID(medicineID),
		cmd.setSubstanceID(substanceID),
	); err != nil {
		return RemoveSubstanceFromDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveSubstanceFromDraftCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSubstanceFromDraftCommandIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (c RemoveSubstanceFromDraftCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the caller's resolved role.
func (c RemoveSubstanceFromDraftCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the draft order to change.
func (c RemoveSubstanceFromDraftCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// SubstanceID returns the substance whose line should be removed.
func (c RemoveSubstanceFromDraftCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

func (c *RemoveSubstanceFromDraftCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}

func (c *RemoveSubstanceFromDraftCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}

func (c *RemoveSubstanceFromDraftCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}
