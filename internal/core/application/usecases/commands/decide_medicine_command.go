package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrDecideMedicineCommandIsNotConstructed = errors.New(
	"DecideMedicineCommand must be created via NewDecideMedicineCommand constructor",
)

// Outcome is a moderator verdict for a formed order.
type Outcome int

const (
	// OutcomeUnknown is the zero value, never valid in a command.
	OutcomeUnknown Outcome = iota
	// OutcomeApprove moves the order to Completed and triggers dose calculation.
	OutcomeApprove
	// OutcomeReject moves the order to Rejected.
	OutcomeReject
)

// Validate checks that the outcome is one of the declared verdicts.
func (o Outcome) Validate() error {
	if o != OutcomeApprove && o != OutcomeReject {
		return errs.NewValueIsInvalidError("outcome")
	}
	return nil
}

// DecideMedicineCommand records a moderator verdict on a formed order.
type DecideMedicineCommand struct { //nolint:recvcheck //using for validation
	moderatorID kernel.UUID
	callerRole  access.Role
	medicineID  kernel.UUID
	outcome     Outcome

	guard guard.ConstructorGuard
}

// NewDecideMedicineCommand creates the command.
func NewDecideMedicineCommand(
	moderatorID kernel.UUID,
	callerRole access.Role,
	medicineID kernel.UUID,
	outcome Outcome,
) (DecideMedicineCommand, error) {
	cmd := DecideMedicineCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setModeratorID(moderatorID),
		cmd.setMedicineID(medicineID),
		cmd.setOutcome(outcome),
	); err != nil {
		return DecideMedicineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideMedicineCommand) Validate() error {
	return c.guard.Validate(ErrDecideMedicineCommandIsNotConstructed)
}

// ModeratorID returns the deciding moderator.
func (c DecideMedicineCommand) ModeratorID() kernel.UUID {
	return c.moderatorID
}

// CallerRole returns the caller's resolved role.
func (c DecideMedicineCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the order under decision.
func (c DecideMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Outcome returns the verdict.
func (c DecideMedicineCommand) Outcome() Outcome {
	return c.outcome
}

func (c *DecideMedicineCommand) setModeratorID(moderatorID kernel.UUID) error {
	if err := moderatorID.Validate(); err != nil {
		return err
	}
	c.moderatorID = moderatorID
	return nil
}

func (c *DecideMedicineCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}

func (c *DecideMedicineCommand) setOutcome(outcome Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	c.outcome = outcome
	return nil
}
