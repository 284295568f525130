package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/dosing"
	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/postgres"
	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/redisstore"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/commands"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/queries"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
)

// CompositionRoot wires adapters to use cases. All handler creators return
// fresh instances; the unit of work factory hands each one its own
// transaction scope.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	sessionStore  *redisstore.SessionStore
	doseRequester *dosing.Client
}

// NewCompositionRoot builds the object graph from the shared infrastructure
// handles.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore:  redisstore.NewSessionStore(redisClient),
		doseRequester: dosing.NewClient(config.DosingServiceURL, logger),
	}
}

// SessionStore exposes the redis-backed session storage.
func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

// AccountRepository exposes a non-transactional account repository for the
// auth middleware and login flow.
func (c *CompositionRoot) AccountRepository() ports.AccountRepository {
	return c.uowFactory.Create().AccountRepository()
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) medicineUoWFactory() commands.MedicineUoWFactory {
	return FuncMedicineUoWFactory(func() commands.MedicineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) composeUoWFactory() commands.ComposeUoWFactory {
	return FuncComposeUoWFactory(func() commands.ComposeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSubstanceCommandHandler() commands.CreateSubstanceCommandHandler {
	return commands.NewCreateSubstanceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSubstanceCommandHandler() commands.UpdateSubstanceCommandHandler {
	return commands.NewUpdateSubstanceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateArchiveSubstanceCommandHandler() commands.ArchiveSubstanceCommandHandler {
	return commands.NewArchiveSubstanceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddSubstanceToDraftCommandHandler() commands.AddSubstanceToDraftCommandHandler {
	return commands.NewAddSubstanceToDraftCommandHandler(c.composeUoWFactory())
}

func (c *CompositionRoot) CreateRemoveSubstanceFromDraftCommandHandler() commands.RemoveSubstanceFromDraftCommandHandler {
	return commands.NewRemoveSubstanceFromDraftCommandHandler(c.composeUoWFactory())
}

func (c *CompositionRoot) CreateChangeLineWeightCommandHandler() commands.ChangeLineWeightCommandHandler {
	return commands.NewChangeLineWeightCommandHandler(c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateFormMedicineCommandHandler() commands.FormMedicineCommandHandler {
	return commands.NewFormMedicineCommandHandler(c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateDecideMedicineCommandHandler() commands.DecideMedicineCommandHandler {
	return commands.NewDecideMedicineCommandHandler(c.medicineUoWFactory(), c.doseRequester)
}

func (c *CompositionRoot) CreateWithdrawMedicineCommandHandler() commands.WithdrawMedicineCommandHandler {
	return commands.NewWithdrawMedicineCommandHandler(c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateRecordDoseCommandHandler() commands.RecordDoseCommandHandler {
	return commands.NewRecordDoseCommandHandler(c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAccountCommandHandler() commands.UpdateAccountCommandHandler {
	return commands.NewUpdateAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateSearchSubstancesQueryHandler() queries.SearchSubstancesQueryHandler {
	return queries.NewSearchSubstancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSubstanceQueryHandler() queries.GetSubstanceQueryHandler {
	return queries.NewGetSubstanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchMedicinesQueryHandler() queries.SearchMedicinesQueryHandler {
	return queries.NewSearchMedicinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMedicineQueryHandler() queries.GetMedicineQueryHandler {
	return queries.NewGetMedicineQueryHandler(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncMedicineUoWFactory func() commands.MedicineUoW

func (f FuncMedicineUoWFactory) Create() commands.MedicineUoW {
	return f()
}

type FuncComposeUoWFactory func() commands.ComposeUoW

func (f FuncComposeUoWFactory) Create() commands.ComposeUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
