package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrWithdrawMedicineCommandIsNotConstructed = errors.New(
	"WithdrawMedicineCommand must be created via NewWithdrawMedicineCommand constructor",
)

// WithdrawMedicineCommand deletes the caller's draft order.
type WithdrawMedicineCommand struct { //nolint:recvcheck //using for validation
	callerID   kernel.UUID
	callerRole access.Role
	medicineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawMedicineCommand creates the command.
func NewWithdrawMedicineCommand(
	callerID kernel.UUID,
	callerRole access.Role,
	medicineID kernel.UUID,
) (WithdrawMedicineCommand, error) {
	cmd := WithdrawMedicineCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setMedicineID(medicineID),
	); err != nil {
		return WithdrawMedicineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawMedicineCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawMedicineCommandIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (c WithdrawMedicineCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the caller's resolved role.
func (c WithdrawMedicineCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the draft order to delete.
func (c WithdrawMedicineCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c *WithdrawMedicineCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}

func (c *WithdrawMedicineCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}
