package commands

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// AddSubstanceToDraftCommandHandler handles composition additions.
//
// The handler carries both halves of the draft-uniqueness contract: the
// repository's atomic get-or-create guarantees at most one draft per owner
// even under concurrent requests, and the (medicine, substance) unique index
// backs the no-duplicate-line invariant the aggregate checks in memory.
type AddSubstanceToDraftCommandHandler struct {
	uowFactory ComposeUoWFactory
}

// NewAddSubstanceToDraftCommandHandler creates a handler for composition additions.
func NewAddSubstanceToDraftCommandHandler(uowFactory ComposeUoWFactory) AddSubstanceToDraftCommandHandler {
	return AddSubstanceToDraftCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the draft's full materialized
// composition after the addition.
//
// Fails with NotFound when the substance is unknown or archived, Conflict
// when the pair already exists, Forbidden when the caller may not compose.
func (h *AddSubstanceToDraftCommandHandler) Handle(
	ctx context.Context,
	cmd AddSubstanceToDraftCommand,
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

	substanceRepo := uow.SubstanceRepository()
	sub, err := substanceRepo.Get(ctx, cmd.SubstanceID())
	if err != nil {
		return nil, err
	}

	// Archived substances stay readable for history but are closed to new drafts.
	if !sub.IsActive() {
		return nil, errs.NewObjectNotFoundError("substanceId", cmd.SubstanceID().String())
	}

	medicineRepo := uow.MedicineRepository()
	draft, err := medicineRepo.GetOrCreateDraft(ctx, cmd.CallerID())
	if err != nil {
		return nil, err
	}

	if err = draft.AddSubstance(cmd.CallerID(), sub.ID()); err != nil {
		return nil, err
	}

	line, _ := draft.Line(sub.ID())
	if err = medicineRepo.AddLine(ctx, draft.ID(), line); err != nil {
		return nil, err
	}

	composition, err := materializeComposition(ctx, draft, substanceRepo)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return composition, nil
}
