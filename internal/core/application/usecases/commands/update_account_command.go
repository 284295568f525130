package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrUpdateAccountCommandIsNotConstructed = errors.New(
	"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
)

// UpdateAccountCommand changes the caller's own profile. Empty fields keep
// their current values; at least one field must be set.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewUpdateAccountCommand creates the command.
func NewUpdateAccountCommand(
	callerID kernel.UUID,
	username string,
	email string,
	password string,
) (UpdateAccountCommand, error) {
	cmd := UpdateAccountCommand{
		username: username,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setCallerID(callerID); err != nil {
		return UpdateAccountCommand{}, err
	}

	if username == "" && email == "" && password == "" {
		return UpdateAccountCommand{}, errs.NewValueIsRequiredError("username, email or password")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

// CallerID returns the account being updated.
func (c UpdateAccountCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Username returns the new login name, empty to keep the current one.
func (c UpdateAccountCommand) Username() string {
	return c.username
}

// Email returns the new contact email, empty to keep the current one.
func (c UpdateAccountCommand) Email() string {
	return c.email
}

// Password returns the new plain-text password, empty to keep the current one.
func (c UpdateAccountCommand) Password() string {
	return c.password
}

func (c *UpdateAccountCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}
