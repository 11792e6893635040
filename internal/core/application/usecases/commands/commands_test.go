package commands_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterIdentityCommand(t *testing.T) {
	profile := identity.ShipperProfile{BusinessName: "Acme Freight"}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRegisterIdentityCommand(" Shipper@X.com ", "Alice", identity.Shipper, profile, "secret")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "shipper@x.com", cmd.Email().String())
		assert.Equal(t, identity.Shipper, cmd.Role())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := commands.NewRegisterIdentityCommand("not-an-email", " ", identity.UnknownRole, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewLoginCommand(t *testing.T) {
	cmd, err := commands.NewLoginCommand("Admin@Allowlist.com", "pw", identity.Admin)
	require.NoError(t, err)
	assert.Equal(t, "admin@allowlist.com", cmd.Email().String())
	assert.Equal(t, identity.Admin, cmd.RequestedRole())

	_, err = commands.NewLoginCommand("", "pw", identity.Shipper)
	require.Error(t, err)
}

func TestReviewIdentityCommands(t *testing.T) {
	id, adminID := kernel.NewUUID(), kernel.NewUUID()

	approve, err := commands.NewApproveIdentityCommand(id, adminID)
	require.NoError(t, err)
	assert.True(t, approve.IdentityID().IsEqual(id))
	assert.True(t, approve.ActingAdminID().IsEqual(adminID))

	_, err = commands.NewRejectIdentityCommand(kernel.UUID{}, adminID)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	restore, err := commands.NewRestoreIdentityCommand(id, adminID, identity.Approved)
	require.NoError(t, err)
	assert.Equal(t, identity.Approved, restore.Status())

	_, err = commands.NewRestoreIdentityCommand(id, adminID, identity.Rejected)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestRemoveIdentityCommands(t *testing.T) {
	_, err := commands.NewRemoveIdentityCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewReinstateIdentityCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, commands.RemoveIdentityCommand{}.Validate(), commands.ErrRemoveIdentityCommandIsNotConstructed)
}

func TestListingCommands(t *testing.T) {
	t.Run("submit rejects bad freight", func(t *testing.T) {
		pickup, err := kernel.NewLocation("Dallas", "TX")
		require.NoError(t, err)
		delivery, err := kernel.NewLocation("Denver", "CO")
		require.NoError(t, err)
		params := freightParams(pickup, delivery)
		params.WeightLbs = listing.MaxWeightLbs + 1

		_, err = commands.NewSubmitListingCommand(kernel.NewUUID(), params)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("review ids are required", func(t *testing.T) {
		_, err := commands.NewApproveListingCommand(kernel.UUID{}, kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewRemoveListingCommand(kernel.NewUUID(), kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("reject reason is trimmed and optional", func(t *testing.T) {
		cmd, err := commands.NewRejectListingCommand(kernel.NewUUID(), kernel.NewUUID(), "  ")
		require.NoError(t, err)
		assert.Empty(t, cmd.Reason())
	})
}
