package commands_test

import (
	"errors"
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

func activeSubstance(t *testing.T, id kernel.UUID) *substance.Substance {
	t.Helper()
	sub, err := substance.NewSubstance(id, "Paracetamol", "analgesic", 101, "")
	require.NoError(t, err)
	return sub
}

func TestAddSubstanceToDraftCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	substanceID := kernel.NewUUID()
	cmd, err := commands.NewAddSubstanceToDraftCommand(callerID, access.RoleCustomer, substanceID)
	require.NoError(t, err)

	draft, err := medicine.NewDraft(kernel.NewUUID(), callerID, time.Now().UTC())
	require.NoError(t, err)

	substanceRepo := new(MockSubstanceRepository)
	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubstanceRepository").Return(substanceRepo).Once(),
		substanceRepo.On("Get", mock.Anything, substanceID).Return(activeSubstance(t, substanceID), nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("GetOrCreateDraft", mock.Anything, callerID).Return(draft, nil).Once(),
		medicineRepo.On("AddLine", mock.Anything, draft.ID(), mock.MatchedBy(func(line medicine.CompositionLine) bool {
			return line.SubstanceID().IsEqual(substanceID) && line.Weight() == medicine.DefaultWeight
		})).Return(nil).Once(),
		// the composition is materialized against the catalog before commit
		substanceRepo.On("Get", mock.Anything, substanceID).Return(activeSubstance(t, substanceID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	composition, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, composition, 1)
	require.True(t, composition[0].SubstanceID.IsEqual(substanceID))
	require.Equal(t, "Paracetamol", composition[0].SubstanceName)
	require.Equal(t, medicine.DefaultWeight, composition[0].Weight)
	substanceRepo.AssertExpectations(t)
	medicineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddSubstanceToDraftCommandHandler_Handle_ArchivedSubstance(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	substanceID := kernel.NewUUID()
	cmd, err := commands.NewAddSubstanceToDraftCommand(callerID, access.RoleCustomer, substanceID)
	require.NoError(t, err)

	archived := activeSubstance(t, substanceID)
	require.NoError(t, archived.Archive())

	substanceRepo := new(MockSubstanceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubstanceRepository").Return(substanceRepo).Once(),
		substanceRepo.On("Get", mock.Anything, substanceID).Return(archived, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	substanceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddSubstanceToDraftCommandHandler_Handle_DuplicateLine(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	substanceID := kernel.NewUUID()
	cmd, err := commands.NewAddSubstanceToDraftCommand(callerID, access.RoleCustomer, substanceID)
	require.NoError(t, err)

	draft, err := medicine.NewDraft(kernel.NewUUID(), callerID, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, draft.AddSubstance(callerID, substanceID))

	substanceRepo := new(MockSubstanceRepository)
	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubstanceRepository").Return(substanceRepo).Once(),
		substanceRepo.On("Get", mock.Anything, substanceID).Return(activeSubstance(t, substanceID), nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("GetOrCreateDraft", mock.Anything, callerID).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestAddSubstanceToDraftCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddSubstanceToDraftCommand(kernel.NewUUID(), access.RoleAnonymous, kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockComposeUoWFactory)
	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestAddSubstanceToDraftCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockComposeUoWFactory)
	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	_, err := h.Handle(ctx, commands.AddSubstanceToDraftCommand{})
	require.Error(t, err)
}

func TestAddSubstanceToDraftCommandHandler_Handle_GetOrCreateError(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	substanceID := kernel.NewUUID()
	cmd, err := commands.NewAddSubstanceToDraftCommand(callerID, access.RoleCustomer, substanceID)
	require.NoError(t, err)

	substanceRepo := new(MockSubstanceRepository)
	medicineRepo := new(MockMedicineRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubstanceRepository").Return(substanceRepo).Once(),
		substanceRepo.On("Get", mock.Anything, substanceID).Return(activeSubstance(t, substanceID), nil).Once(),
		uow.On("MedicineRepository").Return(medicineRepo).Once(),
		medicineRepo.On("GetOrCreateDraft", mock.Anything, callerID).Return(nil, errors.New("db down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComposeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddSubstanceToDraftCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
