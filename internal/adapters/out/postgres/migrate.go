package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/postgres/accountrepo"
	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/postgres/medicinerepo"
	"github.com/cnrcvk7/Asynchronous-service/internal/adapters/out/postgres/substancerepo"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
)

// Migrate creates the schema and the partial unique index that guarantees at
// most one draft order per owner. GORM's tag syntax cannot express a partial
// index, so it is created with raw SQL after AutoMigrate.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&substancerepo.SubstanceDTO{},
		&accountrepo.AccountDTO{},
		&medicinerepo.MedicineDTO{},
		&medicinerepo.CompositionLineDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec(fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_medicines_owner_draft
		 ON medicines (owner_id) WHERE status = %d`,
		int(medicine.StatusDraft),
	)).Error
}
