package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
)

// UpdateSubstanceCommandHandler handles catalog edits.
type UpdateSubstanceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateSubstanceCommandHandler creates a handler for catalog edits.
func NewUpdateSubstanceCommandHandler(uowFactory CatalogUoWFactory) UpdateSubstanceCommandHandler {
	return UpdateSubstanceCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the substance is absent, Forbidden when the caller
// is not a moderator. Archived substances stay editable; the catalog status
// only controls availability for new drafts.
func (h *UpdateSubstanceCommandHandler) Handle(ctx context.Context, cmd UpdateSubstanceCommand) error {
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

	if err = sub.Rename(cmd.Name(), cmd.Description()); err != nil {
		return err
	}
	if err = sub.ChangeNumber(cmd.Number()); err != nil {
		return err
	}
	// Empty image reference means keep the current one.
	if cmd.ImageRef() != "" {
		if err = sub.AttachImage(cmd.ImageRef()); err != nil {
			return err
		}
	}

	if err = substanceRepo.Update(ctx, sub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
