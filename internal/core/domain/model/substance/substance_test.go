package substance_test

import (
	"testing"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubstance(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create active substance with valid parameters", func(t *testing.T) {
		s, err := substance.NewSubstance(validID, "Paracetamol", "analgesic", 42, "images/paracetamol.png")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "Paracetamol", s.Name())
		assert.Equal(t, "analgesic", s.Description())
		assert.Equal(t, 42, s.Number())
		assert.Equal(t, "images/paracetamol.png", s.ImageRef())
		assert.Equal(t, substance.StatusActive, s.Status())
		assert.True(t, s.IsActive())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := substance.NewSubstance(invalidID, "Paracetamol", "", 42, "")

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		s, err := substance.NewSubstance(validID, "", "", 42, "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive number", func(t *testing.T) {
		s, err := substance.NewSubstance(validID, "Paracetamol", "", 0, "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreSubstance(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore archived substance", func(t *testing.T) {
		s, err := substance.RestoreSubstance(validID, "Caffeine", "", 7, "", substance.StatusArchived)

		require.NoError(t, err)
		assert.Equal(t, substance.StatusArchived, s.Status())
		assert.False(t, s.IsActive())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		s, err := substance.RestoreSubstance(validID, "Caffeine", "", 7, "", substance.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestSubstance_Archive(t *testing.T) {
	t.Run("archives an active substance", func(t *testing.T) {
		s, _ := substance.NewSubstance(kernel.NewUUID(), "Menthol", "", 3, "")

		require.NoError(t, s.Archive())
		assert.Equal(t, substance.StatusArchived, s.Status())
	})

	t.Run("archiving twice yields conflict", func(t *testing.T) {
		s, _ := substance.NewSubstance(kernel.NewUUID(), "Menthol", "", 3, "")
		require.NoError(t, s.Archive())

		err := s.Archive()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestSubstance_Edit(t *testing.T) {
	t.Run("rename updates name and description", func(t *testing.T) {
		s, _ := substance.NewSubstance(kernel.NewUUID(), "Menthol", "old", 3, "")

		require.NoError(t, s.Rename("Levomenthol", "new"))
		assert.Equal(t, "Levomenthol", s.Name())
		assert.Equal(t, "new", s.Description())
	})

	t.Run("rename rejects empty name", func(t *testing.T) {
		s, _ := substance.NewSubstance(kernel.NewUUID(), "Menthol", "", 3, "")

		require.Error(t, s.Rename("", ""))
		assert.Equal(t, "Menthol", s.Name())
	})

	t.Run("attach image requires a reference", func(t *testing.T) {
		s, _ := substance.NewSubstance(kernel.NewUUID(), "Menthol", "", 3, "")

		require.Error(t, s.AttachImage(""))
		require.NoError(t, s.AttachImage("images/menthol.png"))
		assert.Equal(t, "images/menthol.png", s.ImageRef())
	})
}

func TestSubstance_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var s substance.Substance

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, substance.ErrSubstanceIsNotConstructed, err)
	})
}
