package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
)

// RecordDoseCommandHandler handles the asynchronous dosing callback.
//
// The write is deliberately not gated on the order status. The callback races
// with the approval transition and may land while the order is still Formed
// or long after it was Completed; rejecting out-of-order callbacks would lose
// doses that were legitimately requested.
type RecordDoseCommandHandler struct {
	uowFactory MedicineUoWFactory
}

// NewRecordDoseCommandHandler creates a handler for dosing callbacks.
func NewRecordDoseCommandHandler(uowFactory MedicineUoWFactory) RecordDoseCommandHandler {
	return RecordDoseCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the order is absent, Forbidden when the caller is
// not the dosing service.
func (h *RecordDoseCommandHandler) Handle(ctx context.Context, cmd RecordDoseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Authorize(cmd.CallerRole(), access.CapRecordDose); err != nil {
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

	med.SetDose(cmd.Value())

	if err = medicineRepo.SaveDose(ctx, med); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
