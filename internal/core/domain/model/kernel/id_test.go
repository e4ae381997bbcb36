package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create valid ID from positive value", func(t *testing.T) {
		id, err := kernel.NewID(7)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(7), id.Int64())
		assert.Equal(t, "7", id.String())
	})

	t.Run("should reject zero value", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := kernel.NewID(-3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, err := kernel.NewID(42)
		require.NoError(t, err)
		b, err := kernel.NewID(42)
		require.NoError(t, err)
		c, err := kernel.NewID(43)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("should reject zero-value ID", func(t *testing.T) {
		var id kernel.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID must be created")
	})
}
