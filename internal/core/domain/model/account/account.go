// Package account provides the user entity consumed by the access policy.
// Authentication itself (sessions, cookies) lives in the adapters; the domain
// only carries the resolved identity and the moderator flag.
package account

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account was not created via
// NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account represents a registered user of the service.
type Account struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	isModerator  bool

	isConstructed bool
}

// NewAccount creates a regular (non-moderator) account. The password hash is
// produced by the password package before the account reaches the domain.
func NewAccount(id kernel.UUID, username string, email string, passwordHash string) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	a.email = email
	return a, nil
}

// RestoreAccount reconstructs an account from persistence.
func RestoreAccount(
	id kernel.UUID,
	username string,
	email string,
	passwordHash string,
	isModerator bool,
) (*Account, error) {
	a, err := NewAccount(id, username, email, passwordHash)
	if err != nil {
		return nil, err
	}
	a.isModerator = isModerator
	return a, nil
}

// Validate ensures the account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Username returns the login name.
func (a *Account) Username() string {
	return a.username
}

// Email returns the contact email, possibly empty.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored credential hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// IsModerator reports whether the account carries moderator authority.
func (a *Account) IsModerator() bool {
	return a.isModerator
}

// UpdateProfile changes username and email; empty arguments keep the current value.
func (a *Account) UpdateProfile(username string, email string) error {
	if username != "" {
		if err := a.setUsername(username); err != nil {
			return err
		}
	}
	if email != "" {
		a.email = email
	}
	return nil
}

// ChangePasswordHash replaces the credential hash.
func (a *Account) ChangePasswordHash(passwordHash string) error {
	return a.setPasswordHash(passwordHash)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
