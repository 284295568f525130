package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/password"
)

// UpdateAccountCommandHandler handles profile changes to the caller's own
// account. Ownership is established upstream by resolving the caller from the
// session, so no extra authorization check is needed here.
type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateAccountCommandHandler creates a handler for profile changes.
func NewUpdateAccountCommandHandler(uowFactory AccountUoWFactory) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. A taken username surfaces as Conflict from
// the repository's unique index.
func (h *UpdateAccountCommandHandler) Handle(ctx context.Context, cmd UpdateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, cmd.CallerID())
	if err != nil {
		return err
	}

	if err = acc.UpdateProfile(cmd.Username(), cmd.Email()); err != nil {
		return err
	}

	if cmd.Password() != "" {
		hash, hashErr := password.Hash(cmd.Password())
		if hashErr != nil {
			return hashErr
		}
		if err = acc.ChangePasswordHash(hash); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
