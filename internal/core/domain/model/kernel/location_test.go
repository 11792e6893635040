package kernel_test

import (
	"testing"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create location and normalize state", func(t *testing.T) {
		loc, err := kernel.NewLocation(" Dallas ", "tx")

		require.NoError(t, err)
		assert.Equal(t, "Dallas", loc.City())
		assert.Equal(t, "TX", loc.State())
		assert.Equal(t, "Dallas, TX", loc.String())
		require.NoError(t, loc.Validate())
	})

	t.Run("should join missing parts", func(t *testing.T) {
		_, err := kernel.NewLocation("", " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "state")
	})

	t.Run("should compare city case-insensitively", func(t *testing.T) {
		a, _ := kernel.NewLocation("Memphis", "TN")
		b, _ := kernel.NewLocation("memphis", "tn")
		c, _ := kernel.NewLocation("Memphis", "AR")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var loc kernel.Location

		require.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
	})
}
