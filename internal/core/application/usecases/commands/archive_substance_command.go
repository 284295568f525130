package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrArchiveSubstanceCommandIsNotConstructed = errors.New(
	"ArchiveSubstanceCommand must be created via NewArchiveSubstanceCommand constructor",
)

// ArchiveSubstanceCommand soft-deletes a substance from the catalog.
type ArchiveSubstanceCommand struct { //nolint:recvcheck //using for validation
	callerRole  access.Role
	substanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveSubstanceCommand creates the command.
func NewArchiveSubstanceCommand(
	callerRole access.Role,
	substanceID kernel.UUID,
) (ArchiveSubstanceCommand, error) {
	cmd := ArchiveSubstanceCommand{
		callerRole: callerRole,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setSubstanceID(substanceID); err != nil {
		return ArchiveSubstanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveSubstanceCommand) Validate() error {
	return c.guard.Validate(ErrArchiveSubstanceCommandIsNotConstructed)
}

// CallerRole returns the caller's resolved role.
func (c ArchiveSubstanceCommand) CallerRole() access.Role {
	return c.callerRole
}

// SubstanceID returns the substance to archive.
func (c ArchiveSubstanceCommand) SubstanceID() kernel.UUID {
	return c.substanceID
}

func (c *ArchiveSubstanceCommand) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	c.substanceID = substanceID
	return nil
}
