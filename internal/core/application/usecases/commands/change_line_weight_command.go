package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrChangeLineWeightCommandIsNotConstructed = errors.New(
	"ChangeLineWeightCommand must be created via NewChangeLineWeightCommand constructor",
)

// ChangeLineWeightCommand requests a new weight for one composition line of
// the caller's draft medicine.
type ChangeLineWeightCommand struct { //nolint:recvcheck //using for validation
	callerID    kernel.UUID
	callerRole  access.Role
	medicineID  kernel.UUID
	substanceID kernel.UUID
	weight      float64

	guard guard.ConstructorGuard
}

// NewChangeLineWeightCommand creates the command. The weight must be positive.
func NewChangeLineWeightCommand(
	callerID kernel.UUID,
	callerRole access.Role,
	medicineID kernel.UUID,
	substanceID kernel.UUID,
	weight float64,
) (ChangeLineWeightCommand, error) {
	cmd := ChangeLineWeightCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setMedicineID(medicineID),
		cmd.setSubstanceID(substanceID),
		cmd.setWeight(weight),
	); err != nil {
		return ChangeLineWeightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeLineWeightCommand) Validate() error {
	return c.guard.Validate(ErrChangeLineWeightCommandIsNotConstructed)
}

// CallerID returns the identity of the requesting user.
func (c ChangeLineWeightCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the caller's resolved role.
func (c ChangeLineWeightCommand) CallerRole() access.Role {
	return c.callerRole
}

// MedicineID returns the draft order to change.
func (c ChangeLineWeightCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// SubstanceID returns the substance whose line should be re-weighted.
func (c ChangeLineWeightCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

// Weight returns the new quantity.
func (c ChangeLineWeightCommand) Weight() float64 {
	return c.weight
}

func (c *ChangeLineWeightCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}

func (c *ChangeLineWeightCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	c.medicineID = medicineID
	return nil
}

func (c *ChangeLineWeightCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}

func (c *ChangeLineWeightCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	c.weight = weight
	return nil
}
