package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrUpdateSubstanceCommandIsNotConstructed = errors.New(
	"UpdateSubstanceCommand must be created via NewUpdateSubstanceCommand constructor",
)

// UpdateSubstanceCommand changes the catalog attributes of a substance.
type UpdateSubstanceCommand struct { //nolint:recvcheck //using for validation
	callerRole  access.Role
	substanceID kernel.UUID
	name        string
	description string
	number      int
	imageRef    string

	guard guard.ConstructorGuard
}

// NewUpdateSubstanceCommand creates the command.
func NewUpdateSubstanceCommand(
	callerRole access.Role,
	substanceID kernel.UUID,
	name string,
	description string,
	number int,
	imageRef string,
) (UpdateSubstanceCommand, error) {
	cmd := UpdateSubstanceCommand{
		callerRole:  callerRole,
		description: description,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubstanceID(substanceID),
		cmd.setName(name),
		cmd.setNumber(number),
	); err != nil {
		return UpdateSubstanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSubstanceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSubstanceCommandIsNotConstructed)
}

// CallerRole returns the caller's resolved role.
func (c UpdateSubstanceCommand) CallerRole() access.Role {
	return c.callerRole
}

// SubstanceID returns the substance to update.
func (c UpdateSubstanceCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

// Name returns the new catalog name.
func (c UpdateSubstanceCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateSubstanceCommand) Description() string {
	return c.description
}

// Number returns the new registry number.
func (c UpdateSubstanceCommand) Number() int {
	return c.number
}

// ImageRef returns the new image reference, possibly empty.
func (c UpdateSubstanceCommand) ImageRef() string {
	return c.imageRef
}

func (c *UpdateSubstanceCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}

func (c *UpdateSubstanceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateSubstanceCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	c.number = number
	return nil
}
