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

func TestRecordDoseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewRecordDoseCommand(access.RoleRemoteService, medicineID, 12.5)
	require.NoError(t, err)

	med := formedMedicine(t, medicineID)

	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(med, nil).Once(),
		medicineRepo.On("SaveDose", mock.Anything, med).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDoseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, med.Dose())
	require.InDelta(t, 12.5, *med.Dose(), 0.0001)
	// The callback is not gated on status: the order is still Formed here.
	require.Equal(t, medicine.StatusFormed, med.Status())
	medicineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordDoseCommandHandler_Handle_DraftOrderStillAccepts(t *testing.T) {
	ctx := t.Context()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewRecordDoseCommand(access.RoleRemoteService, medicineID, -1)
	require.NoError(t, err)

	draft, err := medicine.NewDraft(medicineID, kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).Return(draft, nil).Once(),
		medicineRepo.On("SaveDose", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDoseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, draft.Dose())
	uow.AssertExpectations(t)
}

func TestRecordDoseCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()

	for _, role := range []access.Role{access.RoleAnonymous, access.RoleCustomer, access.RoleModerator} {
		cmd, err := commands.NewRecordDoseCommand(role, kernel.NewUUID(), 1)
		require.NoError(t, err)

		factory := new(MockMedicineUoWFactory)
		h := commands.NewRecordDoseCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrForbidden, "role %s", role)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestRecordDoseCommandHandler_Handle_UnknownMedicine(t *testing.T) {
	ctx := t.Context()
	medicineID := kernel.NewUUID()
	cmd, err := commands.NewRecordDoseCommand(access.RoleRemoteService, medicineID, 3)
	require.NoError(t, err)

	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("Get", mock.Anything, medicineID).
			Return(nil, errs.NewObjectNotFoundError("medicineId", medicineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMedicineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordDoseCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
