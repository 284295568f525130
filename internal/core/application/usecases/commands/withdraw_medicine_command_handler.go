package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// WithdrawMedicineCommandHandler handles draft deletion.
type WithdrawMedicineCommandHandler struct {
	uowFactory MedicineUoWFactory
}

// NewWithdrawMedicineCommandHandler creates a handler for draft withdrawal.
func NewWithdrawMedicineCommandHandler(uowFactory MedicineUoWFactory) WithdrawMedicineCommandHandler {
	return WithdrawMedicineCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the order is absent, Forbidden when the caller is
// not the owner, Conflict when the order already left the Draft status.
func (h *WithdrawMedicineCommandHandler) Handle(ctx context.Context, cmd WithdrawMedicineCommand) error {
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

	if err = med.Withdraw(cmd.CallerID()); err != nil {
		return err
	}

	if err = medicineRepo.Transition(ctx, med, medicine.StatusDraft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
