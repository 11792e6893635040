package commands_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/domain/services"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func testAllowList(t *testing.T) identity.AdminAllowList {
	t.Helper()
	list, err := identity.NewAdminAllowList([]string{"admin@allowlist.com"})
	require.NoError(t, err)
	return list
}

func testCredentials() services.Credentials {
	return services.NewCredentials(bcrypt.MinCost)
}

func testClock() *kernel.FixedClock {
	return &kernel.FixedClock{At: testNow}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := testCredentials().Hash(password)
	require.NoError(t, err)
	return hash
}

// pendingShipper returns a stored pending shipper without recorded notifications.
func pendingShipper(t *testing.T, email string) *identity.Identity {
	t.Helper()
	i, err := identity.NewIdentity(
		kernel.NewUUID(),
		mustEmail(t, email),
		"Alice",
		identity.Shipper,
		identity.ShipperProfile{BusinessName: "Acme Freight"},
		"",
		testNow.Add(-24 * time.Hour),
	)
	require.NoError(t, err)
	_ = i.PullNotifications()
	return i
}

func pendingShipperWithPassword(t *testing.T, email, password string) *identity.Identity {
	t.Helper()
	i, err := identity.NewIdentity(
		kernel.NewUUID(),
		mustEmail(t, email),
		"Alice",
		identity.Shipper,
		identity.ShipperProfile{BusinessName: "Acme Freight"},
		hashOf(t, password),
		testNow.Add(-24 * time.Hour),
	)
	require.NoError(t, err)
	_ = i.PullNotifications()
	return i
}

func approvedShipper(t *testing.T, email string) *identity.Identity {
	t.Helper()
	i := pendingShipper(t, email)
	require.NoError(t, i.Approve(testNow.Add(-time.Hour)))
	_ = i.PullNotifications()
	return i
}

func pendingListing(t *testing.T, owner *identity.Identity) *listing.Listing {
	t.Helper()
	pickup, err := kernel.NewLocation("Dallas", "TX")
	require.NoError(t, err)
	delivery, err := kernel.NewLocation("Denver", "CO")
	require.NoError(t, err)
	freight, err := listing.NewFreight(freightParams(pickup, delivery))
	require.NoError(t, err)

	l, err := listing.NewListing(
		kernel.NewUUID(),
		listing.Owner{ID: owner.ID(), Name: owner.Name(), Email: owner.Email()},
		freight,
		testNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return l
}

func freightParams(pickup, delivery kernel.Location) listing.FreightParams {
	return listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: "Dry Van",
		WeightLbs:     42000,
		RateCents:     185000,
		AvailableDate: testNow.AddDate(0, 0, 1),
	}
}
