package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/account"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/password"
)

// RegisterAccountCommandHandler handles account registration.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for registrations.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. A taken username surfaces as Conflict from
// the repository's unique index.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := password.Hash(cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Username(), cmd.Email(), hash)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
