package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/commands"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/account"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
)

type MockMedicineRepository struct{ mock.Mock }

func (m *MockMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicine.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) GetDraftByOwner(_ context.Context, _ kernel.UUID) (*medicine.Medicine, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMedicineRepository) GetOrCreateDraft(ctx context.Context, ownerID kernel.UUID) (*medicine.Medicine, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicine.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Transition(ctx context.Context, aggregate *medicine.Medicine, from medicine.Status) error {
	args := m.Called(ctx, aggregate, from)
	return args.Error(0)
}

func (m *MockMedicineRepository) SaveDose(ctx context.Context, aggregate *medicine.Medicine) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMedicineRepository) AddLine(ctx context.Context, medicineID kernel.UUID, line medicine.CompositionLine) error {
	args := m.Called(ctx, medicineID, line)
	return args.Error(0)
}

func (m *MockMedicineRepository) RemoveLine(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID) error {
	args := m.Called(ctx, medicineID, substanceID)
	return args.Error(0)
}

func (m *MockMedicineRepository) UpdateLineWeight(ctx context.Context, medicineID kernel.UUID, substanceID kernel.UUID, weight float64) error {
	args := m.Called(ctx, medicineID, substanceID, weight)
	return args.Error(0)
}

type MockSubstanceRepository struct{ mock.Mock }

func (m *MockSubstanceRepository) Add(ctx context.Context, aggregate *substance.Substance) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubstanceRepository) Update(ctx context.Context, aggregate *substance.Substance) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubstanceRepository) Get(ctx context.Context, id kernel.UUID) (*substance.Substance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*substance.Substance), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(_ context.Context, _ string) (*account.Account, error) {
	return nil, errors.New("not implemented in mock")
}

// MockUoW satisfies every command UoW interface so one mock serves all
// handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) MedicineRepository() ports.MedicineRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicineRepository)
}

func (m *MockUoW) SubstanceRepository() ports.SubstanceRepository {
	args := m.Called()
	return args.Get(0).(ports.SubstanceRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockMedicineUoWFactory struct{ mock.Mock }

func (m *MockMedicineUoWFactory) Create() commands.MedicineUoW {
	args := m.Called()
	return args.Get(0).(commands.MedicineUoW)
}

type MockComposeUoWFactory struct{ mock.Mock }

func (m *MockComposeUoWFactory) Create() commands.ComposeUoW {
	args := m.Called()
	return args.Get(0).(commands.ComposeUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockDoseRequester struct{ mock.Mock }

func (m *MockDoseRequester) RequestDose(ctx context.Context, medicineID kernel.UUID) {
	m.Called(ctx, medicineID)
}
