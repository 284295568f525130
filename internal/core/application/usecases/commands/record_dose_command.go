package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrRecordDoseCommandIsNotConstructed = errors.New(
	"RecordDoseCommand must be created via NewRecordDoseCommand constructor",
)

// RecordDoseCommand carries the dosing service callback payload.
//
// The value is stored as received. The dosing service owns its meaning,
// including sentinel values it may send for failed calculations.
type RecordDoseCommand struct { //nolint:recvcheck //using for validation
	callerRole access.Role
	medicineID kernel.UUID
	value      float64

	guard guard.ConstructorGuard
}

// NewRecordDoseCommand creates the command.
func NewRecordDoseCommand(
	callerRole access.Role,
	medicineID kernel.UUID,
	value float64,
) (RecordDoseCommand, error) {
	cmd := RecordDoseCommand{
		callerRole: callerRole,
		value:      value,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setMedicineID(medicineID); err != nil {
		return RecordDoseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDoseCommand) Validate() error {
	return c.guard.Validate(ErrRecordDoseCommandIsNotConstructed)
}

// CallerRole returns the caller's resolved role.
func (c RecordDoseCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the order receiving the dose.
func (c RecordDoseCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Value returns the computed dose.
func (c RecordDoseCommand) Value() float64 {
	return c.value
}

func (c *RecordDoseCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}
