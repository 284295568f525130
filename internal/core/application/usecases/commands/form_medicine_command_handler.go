package commands

import (
	"context"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// FormMedicineCommandHandler handles draft submission.
//
// The status write is a compare-and-set from Draft: when two submissions (or
// a submission and a withdrawal) race, exactly one wins and the loser gets a
// Conflict taxonomy error.
type FormMedicineCommandHandler struct {
	uowFactory MedicineUoWFactory
}

// NewFormMedicineCommandHandler creates a handler for draft submissions.
func NewFormMedicineCommandHandler(uowFactory MedicineUoWFactory) FormMedicineCommandHandler {
	return FormMedicineCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command.
//
// Fails with NotFound when the order is absent, Forbidden when the caller is
// not the owner, Conflict when the order already left Draft. An empty draft
// may be submitted; composition is not checked here.
func (h *FormMedicineCommandHandler) Handle(ctx context.Context, cmd FormMedicineCommand) error {
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

	if err = med.Form(cmd.CallerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = medicineRepo.Transition(ctx, med, medicine.StatusDraft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
