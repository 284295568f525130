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
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

func formedMedicine(t *testing.T, id kernel.UUID) *medicine.Medicine {
	t.Helper()
	formedAt := time.Now().UTC()
	med, err := medicine.RestoreMedicine(
		id, kernel.NewUUID(), medicine.StatusFormed,
		nil, formedAt.Add(-time.Hour), &formedAt, nil, nil, nil)
	require.NoError(t, err)
	return med
}

func TestDecideMedicineCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	moderatorID := kernel.NewUUID()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewDecideMedicineCommand(
		moderatorID, access.RoleModerator, medicineID, commands.OutcomeApprove)
	require.NoError(t, err)

	med := formedMedicine(t, medicineID)

	medicineRepo := new(MockMedicineRepository)
	requester := new(MockDoseRequester)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(med, nil).Once(),
		requester.On("RequestDose", mock.Anything, medicineID).Once(),
		medicineRepo.On("Transition", mock.Anything, med, medicine.StatusFormed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideMedicineCommandHandler(factory, requester)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, medicine.StatusCompleted, med.Status())
	require.NotNil(t, med.ModeratorID())
	require.True(t, med.ModeratorID().IsEqual(moderatorID))
	require.NotNil(t, med.DateComplete())
	requester.AssertExpectations(t)
	medicineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideMedicineCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	moderatorID := kernel.NewUUID()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewDecideMedicineCommand(
		moderatorID, access.RoleModerator, medicineID, commands.OutcomeReject)
	require.NoError(t, err)

	med := formedMedicine(t, medicineID)

	medicineRepo := new(MockMedicineRepository)
	requester := new(MockDoseRequester)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(med, nil).Once(),
		medicineRepo.On("Transition", mock.Anything, med, medicine.StatusFormed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideMedicineCommandHandler(factory, requester)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, medicine.StatusRejected, med.Status())
	requester.AssertNotCalled(t, "RequestDose", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDecideMedicineCommandHandler_Handle_NotFormed(t *testing.T) {
	ctx := t.Context()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewDecideMedicineCommand(
		kernel.NewUUID(), access.RoleModerator, medicineID, commands.OutcomeApprove)
	require.NoError(t, err)

	draft, err := medicine.NewDraft(medicineID, kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	requester := new(MockDoseRequester)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideMedicineCommandHandler(factory, requester)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	requester.AssertNotCalled(t, "RequestDose", mock.Anything, mock.Anything)
}

func TestDecideMedicineCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewDecideMedicineCommand(
		kernel.NewUUID(), access.RoleModerator, medicineID, commands.OutcomeApprove)
	require.NoError(t, err)

	med := formedMedicine(t, medicineID)

	medicineRepo := new(MockMedicineRepository)
	requester := new(MockDoseRequester)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(med, nil).Once(),
		requester.On("RequestDose", mock.Anything, medicineID).Once(),
		medicineRepo.On("Transition", mock.Anything, med, medicine.StatusFormed).
			Return(errs.NewConflictError("status")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideMedicineCommandHandler(factory, requester)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestDecideMedicineCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDecideMedicineCommand(
		kernel.NewUUID(), access.RoleCustomer, kernel.NewUUID(), commands.OutcomeApprove)
	require.NoError(t, err)

	factory := new(MockMedicineUoWFactory)
	h := commands.NewDecideMedicineCommandHandler(factory, new(MockDoseRequester))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewDecideMedicineCommand_InvalidOutcome(t *testing.T) {
	_, err := commands.NewDecideMedicineCommand(
		kernel.NewUUID(), access.RoleModerator, kernel.NewUUID(), commands.OutcomeUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
