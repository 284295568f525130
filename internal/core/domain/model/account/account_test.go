package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/account"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates a customer account", func(t *testing.T) {
		id := kernel.NewUUID()

		acc, err := account.NewAccount(id, "alice", "alice@example.com", "hash")

		require.NoError(t, err)
		assert.True(t, acc.ID().IsEqual(id))
		assert.Equal(t, "alice", acc.Username())
		assert.Equal(t, "alice@example.com", acc.Email())
		assert.Equal(t, "hash", acc.PasswordHash())
		assert.False(t, acc.IsModerator())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := account.NewAccount(kernel.UUID{}, "", "alice@example.com", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreAccount_KeepsModeratorFlag(t *testing.T) {
	acc, err := account.RestoreAccount(kernel.NewUUID(), "bob", "bob@example.com", "hash", true)

	require.NoError(t, err)
	assert.True(t, acc.IsModerator())
}

func TestAccount_UpdateProfile(t *testing.T) {
	newAccount := func(t *testing.T) *account.Account {
		t.Helper()
		acc, err := account.NewAccount(kernel.NewUUID(), "alice", "alice@example.com", "hash")
		require.NoError(t, err)
		return acc
	}

	t.Run("changes username and email", func(t *testing.T) {
		acc := newAccount(t)

		require.NoError(t, acc.UpdateProfile("alicia", "alicia@example.com"))

		assert.Equal(t, "alicia", acc.Username())
		assert.Equal(t, "alicia@example.com", acc.Email())
	})

	t.Run("empty arguments keep the current values", func(t *testing.T) {
		acc := newAccount(t)

		require.NoError(t, acc.UpdateProfile("", ""))

		assert.Equal(t, "alice", acc.Username())
		assert.Equal(t, "alice@example.com", acc.Email())
	})
}

func TestAccount_ChangePasswordHash(t *testing.T) {
	acc, err := account.NewAccount(kernel.NewUUID(), "alice", "alice@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, acc.ChangePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", acc.PasswordHash())

	assert.ErrorIs(t, acc.ChangePasswordHash(""), errs.ErrValueIsRequired)
}
