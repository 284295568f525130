package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
)

// ArchiveSubstanceCommandHandler handles catalog removals.
//
// Archiving is a soft delete: existing composition lines keep pointing at the
// substance, only new additions are blocked.
type ArchiveSubstanceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewArchiveSubstanceCommandHandler creates a handler for catalog removals.
func NewArchiveSubstanceCommandHandler(uowFactory CatalogUoWFactory) ArchiveSubstanceCommandHandler {
	return ArchiveSubstanceCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the substance is absent, Forbidden when the caller
// is not a moderator, Conflict when the substance is already archived.
func (h *ArchiveSubstanceCommandHandler) Handle(ctx context.Context, cmd ArchiveSubstanceCommand) error {
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

	substanceRepo := uow.SubstanceRepository()
	sub, err := substanceRepo.Get(ctx, cmd.SubstanceID())
	if err != nil {
		return err
	}

	if err = sub.Archive(); err != nil {
		return err
	}

	if err = substanceRepo.Update(ctx, sub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
