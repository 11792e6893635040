package listing_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFreightParams(t *testing.T) listing.FreightParams {
	t.Helper()
	pickup, err := kernel.NewLocation("Dallas", "tx")
	require.NoError(t, err)
	delivery, err := kernel.NewLocation("Denver", "CO")
	require.NoError(t, err)

	return listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: "Dry Van",
		WeightLbs:     42000,
		RateCents:     185000,
		AvailableDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		ContactName:   " Alice ",
		ContactPhone:  "555-0100",
		Notes:         "Dock 4",
	}
}

func TestNewFreight(t *testing.T) {
	t.Run("should create valid freight", func(t *testing.T) {
		f, err := listing.NewFreight(validFreightParams(t))

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.Equal(t, "Dallas, TX to Denver, CO", f.Route())
		assert.Equal(t, 42000, f.WeightLbs())
		assert.Equal(t, int64(185000), f.RateCents())
		assert.Equal(t, "Alice", f.ContactName())
	})

	t.Run("should accept weight bounds", func(t *testing.T) {
		for _, w := range []int{listing.MinWeightLbs, listing.MaxWeightLbs} {
			p := validFreightParams(t)
			p.WeightLbs = w

			_, err := listing.NewFreight(p)

			require.NoError(t, err)
		}
	})

	t.Run("should refuse weight out of range", func(t *testing.T) {
		for _, w := range []int{0, -1, listing.MaxWeightLbs + 1} {
			p := validFreightParams(t)
			p.WeightLbs = w

			_, err := listing.NewFreight(p)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should refuse non-positive rate", func(t *testing.T) {
		p := validFreightParams(t)
		p.RateCents = 0

		_, err := listing.NewFreight(p)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join missing fields", func(t *testing.T) {
		_, err := listing.NewFreight(listing.FreightParams{WeightLbs: 10, RateCents: 1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "pickup")
		assert.Contains(t, err.Error(), "delivery")
		assert.Contains(t, err.Error(), "equipment type")
		assert.Contains(t, err.Error(), "available date")
	})

	t.Run("params round-trip", func(t *testing.T) {
		f, err := listing.NewFreight(validFreightParams(t))
		require.NoError(t, err)

		again, err := listing.NewFreight(f.Params())

		require.NoError(t, err)
		assert.Equal(t, f, again)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var f listing.Freight

		require.ErrorIs(t, f.Validate(), listing.ErrFreightIsNotConstructed)
	})
}
