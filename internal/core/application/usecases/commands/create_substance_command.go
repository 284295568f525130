package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrCreateSubstanceCommandIsNotConstructed = errors.New(
	"CreateSubstanceCommand must be created via NewCreateSubstanceCommand constructor",
)

// CreateSubstanceCommand adds a new substance to the catalog.
type CreateSubstanceCommand struct { //nolint:recvcheck //using for validation
	callerRole  access.Role
	substanceID kernel.UUID
	name        string
	description string
	number      int
	imageRef    string

	guard guard.ConstructorGuard
}

// NewCreateSubstanceCommand creates the command. The name must be non-empty
// and the number positive; the description and image reference are optional.
func NewCreateSubstanceCommand(
	callerRole access.Role,
	substanceID kernel.UUID,
	name string,
	description string,
	number int,
	imageRef string,
) (CreateSubstanceCommand, error) {
	cmd := CreateSubstanceCommand{
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
		return CreateSubstanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSubstanceCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubstanceCommandIsNotConstructed)
}

// CallerRole returns the caller's resolved role.
func (c CreateSubstanceCommand) CallerRole() access.Role {
	return c.callerRole
}

// SubstanceID returns the identifier for the new substance.
func (c CreateSubstanceCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

// Name returns the catalog name.
func (c CreateSubstanceCommand) Name() string {
	return c.name
}

// Description returns the free-form description.
func (c CreateSubstanceCommand) Description() string {
	return c.description
}

// Number returns the registry number.
func (c CreateSubstanceCommand) Number() int {
	return c.number
}

// ImageRef returns the image reference, possibly empty.
func (c CreateSubstanceCommand) ImageRef() string {
	return c.imageRef
}

func (c *CreateSubstanceCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}

func (c *CreateSubstanceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateSubstanceCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	c.number = number
	return nil
}
