package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
)

// CreateSubstanceCommandHandler handles catalog additions.
type CreateSubstanceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateSubstanceCommandHandler creates a handler for catalog additions.
func NewCreateSubstanceCommandHandler(uowFactory CatalogUoWFactory) CreateSubstanceCommandHandler {
	return CreateSubstanceCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command. Fails with Forbidden when the caller is not
// a moderator.
func (h *CreateSubstanceCommandHandler) Handle(ctx context.Context, cmd CreateSubstanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Authorize(cmd.CallerRole(), access.CapManageCatalog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sub, err := substance.NewSubstance(
		cmd.SubstanceID(), cmd.Name(), cmd.Description(), cmd.Number(), cmd.ImageRef())
	if err != nil {
		return err
	}

	if err = uow.SubstanceRepository().Add(ctx, sub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
