package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrAddSubstanceToDraftCommandIsNotConstructed = errors.New(
	"AddSubstanceToDraftCommand must be created via NewAddSubstanceToDraftCommand constructor",
)

// AddSubstanceToDraftCommand requests that a substance be added to the
// caller's draft medicine. When the caller has no draft yet, one is created
// atomically as part of handling the command.
type AddSubstanceToDraftCommand struct { //nolint:recvcheck //using for validation
	callerID    kernel.UUID
	callerRole  access.Role
	substanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddSubstanceToDraftCommand creates the command, validating both identifiers.
func NewAddSubstanceToDraftCommand(
	callerID kernel.UUID,
	callerRole access.Role,
	substanceID kernel.UUID,
) (AddSubstanceToDraftCommand, error) {
	cmd := AddSubstanceToDraftCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setSubstanceID(substanceID),
	); err != nil {
		return AddSubstanceToDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSubstanceToDraftCommand) Validate() error {
	return c.guard.Validate(ErrAddSubstanceToDraftCommandIsNotConstructed)
}

// CallerID returns the identity of the user assembling the draft.
func (c AddSubstanceToDraftCommand) CallerID() kernel.UUID {
	return c.callerID
}

// CallerRole returns the caller's resolved role.
func (c AddSubstanceToDraftCommand) CallerRole() access.Role {
	return c.callerRole
}

// SubstanceID returns the substance to add.
func (c AddSubstanceToDraftCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

func (c *AddSubstanceToDraftCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}

func (c *AddSubstanceToDraftCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}
