package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
)

// ChangeLineWeightCommandHandler handles composition weight changes.
type ChangeLineWeightCommandHandler struct {
	uowFactory MedicineUoWFactory
}

// NewChangeLineWeightCommandHandler creates a handler for weight changes.
func NewChangeLineWeightCommandHandler(uowFactory MedicineUoWFactory) ChangeLineWeightCommandHandler {
	return ChangeLineWeightCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the order or line is absent, Forbidden when the
// caller does not own the draft or the order already left the Draft status.
func (h *ChangeLineWeightCommandHandler) Handle(ctx context.Context, cmd ChangeLineWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Authorize(cmd.CallerRole(), access.CapComposeMedicine); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	medicineRepo := uow.MedicineRepository()
	med, err := medicineRepo.Get(ctx, cmd.MedicineID())
	if err != nil {
		return err
	}

	if err = med.ChangeWeight(cmd.CallerID(), cmd.SubstanceID(), cmd.Weight()); err != nil {
		return err
	}

	if err = medicineRepo.UpdateLineWeight(ctx, med.ID(), cmd.SubstanceID(), cmd.Weight()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
