package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
)

// RemoveSubstanceFromDraftCommandHandler handles composition line removals.
type RemoveSubstanceFromDraftCommandHandler struct {
	uowFactory ComposeUoWFactory
}

// NewRemoveSubstanceFromDraftCommandHandler creates a handler for line removals.
func NewRemoveSubstanceFromDraftCommandHandler(uowFactory ComposeUoWFactory) RemoveSubstanceFromDraftCommandHandler {
	return RemoveSubstanceFromDraftCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the draft's remaining materialized
// composition. The aggregate enforces ownership and the Draft-only window;
// removal outside Draft is rejected here, not silently ignored by the ledger.
func (h *RemoveSubstanceFromDraftCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveSubstanceFromDraftCommand,
) ([]CompositionLineResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := access.Authorize(cmd.CallerRole(), access.CapComposeMedicine); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	medicineRepo := uow.MedicineRepository()
	med, err := medicineRepo.Get(ctx, cmd.MedicineID())
	if err != nil {
		return nil, err
	}

	if err = med.RemoveSubstance(cmd.CallerID(), cmd.SubstanceID()); err != nil {
		return nil, err
	}

	if err = medicineRepo.RemoveLine(ctx, med.ID(), cmd.SubstanceID()); err != nil {
		return nil, err
	}

	composition, err := materializeComposition(ctx, med, uow.SubstanceRepository())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return composition, nil
}
