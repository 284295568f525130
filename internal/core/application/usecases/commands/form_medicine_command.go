package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrFormMedicineCommandIsNotConstructed = errors.New(
	"FormMedicineCommand must be created via NewFormMedicineCommand constructor",
)

// FormMedicineCommand submits the caller's draft order for moderation.
type FormMedicineCommand struct { //nolint:recvcheck //using for validation
	callerID   kernel.UUID
	callerRole access.Role
	medicineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFormMedicineCommand creates the command.
func NewFormMedicineCommand(
	callerID kernel.UUID,
	callerRole access.Role,
	medicineID kernel.UUID,
) (FormMedicineCommand, error) {
	cmd := FormMedicineCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setMedicineID(medicineID),
	); err != nil {
		return FormMedicineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FormMedicineCommand) Validate() error {
	return c.guard.Validate(ErrFormMedicineCommandIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (c FormMedicineCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the caller's resolved role.
func (c FormMedicineCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the draft order to submit.
func (c FormMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c *FormMedicineCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}

func (c *FormMedicineCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}
