// Package accountrepo persists user accounts with GORM. The unique index on
// username backs the registration conflict check.
package accountrepo

import (
	"github.com/google/uuid"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/account"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string
	IsModerator  bool
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		IsModerator:  aggregate.IsModerator(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Username, dto.Email, dto.PasswordHash, dto.IsModerator)
}
