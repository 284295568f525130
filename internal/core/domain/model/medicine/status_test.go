package medicine_test

import (
	"testing"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []medicine.Status{
		medicine.StatusDraft,
		medicine.StatusFormed,
		medicine.StatusCompleted,
		medicine.StatusRejected,
		medicine.StatusDeleted,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, medicine.StatusUnknown.Validate())
		require.Error(t, medicine.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", medicine.StatusDraft.String())
	assert.Equal(t, "Formed", medicine.StatusFormed.String())
	assert.Equal(t, "Completed", medicine.StatusCompleted.String())
	assert.Equal(t, "Rejected", medicine.StatusRejected.String())
	assert.Equal(t, "Deleted", medicine.StatusDeleted.String())
	assert.Equal(t, "Unknown", medicine.Status(42).String())
}

func TestStatus_Form(t *testing.T) {
	t.Run("draft can be formed", func(t *testing.T) {
		next, err := medicine.StatusDraft.Form()

		require.NoError(t, err)
		assert.Equal(t, medicine.StatusFormed, next)
	})

	for _, s := range []medicine.Status{
		medicine.StatusFormed,
		medicine.StatusCompleted,
		medicine.StatusRejected,
		medicine.StatusDeleted,
		medicine.StatusUnknown,
	} {
		t.Run("cannot form from "+s.String(), func(t *testing.T) {
			_, err := s.Form()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestStatus_Decide(t *testing.T) {
	t.Run("formed can be completed", func(t *testing.T) {
		next, err := medicine.StatusFormed.Complete()

		require.NoError(t, err)
		assert.Equal(t, medicine.StatusCompleted, next)
	})

	t.Run("formed can be rejected", func(t *testing.T) {
		next, err := medicine.StatusFormed.Reject()

		require.NoError(t, err)
		assert.Equal(t, medicine.StatusRejected, next)
	})

	for _, s := range []medicine.Status{
		medicine.StatusDraft,
		medicine.StatusCompleted,
		medicine.StatusRejected,
		medicine.StatusDeleted,
	} {
		t.Run("cannot decide from "+s.String(), func(t *testing.T) {
			_, err := s.Complete()
			require.ErrorIs(t, err, errs.ErrConflict)

			_, err = s.Reject()
			require.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestStatus_Delete(t *testing.T) {
	t.Run("draft can be deleted", func(t *testing.T) {
		next, err := medicine.StatusDraft.Delete()

		require.NoError(t, err)
		assert.Equal(t, medicine.StatusDeleted, next)
	})

	for _, s := range []medicine.Status{
		medicine.StatusFormed,
		medicine.StatusCompleted,
		medicine.StatusRejected,
		medicine.StatusDeleted,
	} {
		t.Run("cannot delete from "+s.String(), func(t *testing.T) {
			_, err := s.Delete()

			require.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, medicine.StatusDraft.IsTerminal())
	assert.False(t, medicine.StatusFormed.IsTerminal())
	assert.True(t, medicine.StatusCompleted.IsTerminal())
	assert.True(t, medicine.StatusRejected.IsTerminal())
	assert.True(t, medicine.StatusDeleted.IsTerminal())
}
