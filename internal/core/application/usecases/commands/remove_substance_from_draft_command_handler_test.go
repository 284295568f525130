package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/commands"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

func TestRemoveSubstanceFromDraftCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	removedID := kernel.NewUUID()
	keptID := kernel.NewUUID()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewRemoveSubstanceFromDraftCommand(callerID, access.RoleCustomer, medicineID, removedID)
	require.NoError(t, err)

	draft, err := medicine.NewDraft(medicineID, callerID, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, draft.AddSubstance(callerID, removedID))
	require.NoError(t, draft.AddSubstance(callerID, keptID))

	kept, err := substance.NewSubstance(keptID, "Lidocaine", "anesthetic", 202, "")
	require.NoError(t, err)

	substanceRepo := new(MockSubstanceRepository)
	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(draft, nil).Once(),
		medicineRepo.On("RemoveLine", mock.Anything, medicineID, removedID).Return(nil).Once(),
		uow.On("SubstanceRepository").Return(substanceRepo).Once(),
		substanceRepo.On("Get", mock.Anything, keptID).Return(kept, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveSubstanceFromDraftCommandHandler(factory)
	composition, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, composition, 1)
	require.True(t, composition[0].SubstanceID.IsEqual(keptID))
	require.Equal(t, "Lidocaine", composition[0].SubstanceName)
	substanceRepo.AssertExpectations(t)
	medicineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveSubstanceFromDraftCommandHandler_Handle_LineMissing(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewRemoveSubstanceFromDraftCommand(callerID, access.RoleCustomer, medicineID, kernel.NewUUID())
	require.NoError(t, err)

	draft, err := medicine.NewDraft(medicineID, callerID, time.Now().UTC())
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveSubstanceFromDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRemoveSubstanceFromDraftCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveSubstanceFromDraftCommand(
		kernel.NewUUID(), access.RoleAnonymous, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockComposeUoWFactory)
	h := commands.NewRemoveSubstanceFromDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
