package commands

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand creates a new customer account. Registration is open
// to anonymous callers, so it carries no role.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	username  string
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates the command. The password travels in
// plain text here; it is hashed by the handler before touching storage.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	username string,
	email string,
	password string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Username returns the login name.
func (c RegisterAccountCommand) Username() string {
	return c.username
}

// Email returns the contact email, possibly empty.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plain-text password.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
