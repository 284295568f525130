package commands

import (
	"context"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
)

// DecideMedicineCommandHandler handles moderator verdicts.
//
// An approval triggers the dose calculation request before the guarded status
// write. The request is fire-and-forget, so a decide that later loses the
// compare-and-set may still have asked for a dose; the dosing callback path
// tolerates that because dose writes are not gated on status.
type DecideMedicineCommandHandler struct {
	uowFactory    MedicineUoWFactory
	doseRequester ports.DoseRequester
}

// NewDecideMedicineCommandHandler creates a handler for moderation decisions.
func NewDecideMedicineCommandHandler(
	uowFactory MedicineUoWFactory,
	doseRequester ports.DoseRequester,
) DecideMedicineCommandHandler {
	return DecideMedicineCommandHandler{
		uowFactory:    uowFactory,
		doseRequester: doseRequester,
	}
}

// Handle processes the command.
//
// Fails with NotFound when the order is absent, Forbidden when the caller is
// not a moderator, Conflict when the order is not in the Formed status or a
// concurrent decision won the transition.
func (h *DecideMedicineCommandHandler) Handle(ctx context.Context, cmd DecideMedicineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := access.Authorize(cmd.CallerRole(), access.CapDecideMedicine); err != nil {
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

	now := time.Now().UTC()
	switch cmd.Outcome() {
	case OutcomeApprove:
		if err = med.Complete(cmd.ModeratorID(), now); err != nil {
			return err
		}
		h.doseRequester.RequestDose(ctx, med.ID())
	default:
		if err = med.Reject(cmd.ModeratorID(), now); err != nil {
			return err
		}
	}

	if err = medicineRepo.Transition(ctx, med, medicine.StatusFormed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
