package listing_test

import (
	"testing"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

func newListing(t *testing.T) (*listing.Listing, listing.Owner) {
	t.Helper()
	email, err := kernel.NewEmail("shipper@x.com")
	require.NoError(t, err)
	owner := listing.Owner{ID: kernel.NewUUID(), Name: "Alice", Email: email}
	freight, err := listing.NewFreight(validFreightParams(t))
	require.NoError(t, err)

	l, err := listing.NewListing(kernel.NewUUID(), owner, freight, submittedAt)
	require.NoError(t, err)
	return l, owner
}

func TestNewListing(t *testing.T) {
	t.Run("should start pending", func(t *testing.T) {
		l, owner := newListing(t)

		require.NoError(t, l.Validate())
		assert.Equal(t, listing.Pending, l.Status())
		assert.Equal(t, submittedAt, l.SubmissionDate())
		assert.True(t, l.Owner().ID.IsEqual(owner.ID))
		assert.Nil(t, l.ApprovalDate())
		assert.Nil(t, l.ReviewedBy())
		assert.Empty(t, l.PullNotifications())
	})

	t.Run("should fail without owner and freight", func(t *testing.T) {
		l, err := listing.NewListing(kernel.NewUUID(), listing.Owner{}, listing.Freight{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, l)
		assert.Contains(t, err.Error(), "owner")
		assert.Contains(t, err.Error(), "freight must be created")
		assert.Contains(t, err.Error(), "submission date")
	})
}

func TestListing_Approve(t *testing.T) {
	t.Run("should approve pending listing", func(t *testing.T) {
		l, _ := newListing(t)
		admin := kernel.NewUUID()
		at := submittedAt.Add(time.Hour)

		require.NoError(t, l.Approve(admin, at))

		assert.Equal(t, listing.Approved, l.Status())
		assert.Equal(t, at, *l.ApprovalDate())
		assert.True(t, l.ReviewedBy().IsEqual(admin))
		sent := l.PullNotifications()
		require.Len(t, sent, 1)
		assert.Equal(t, notification.ListingApproved, sent[0].Kind)
		assert.Equal(t, "shipper@x.com", sent[0].Recipient.String())
		assert.Equal(t, l.ID().String(), sent[0].Context[notification.KeyListingID])
		assert.Equal(t, "Dallas, TX to Denver, CO", sent[0].Context[notification.KeyRoute])
	})

	t.Run("reviewed listing cannot be reviewed again", func(t *testing.T) {
		l, _ := newListing(t)
		require.NoError(t, l.Approve(kernel.NewUUID(), submittedAt))

		require.ErrorIs(t, l.Approve(kernel.NewUUID(), submittedAt), errs.ErrInvalidTransition)
		require.ErrorIs(t, l.Reject(kernel.NewUUID(), "late", submittedAt), errs.ErrInvalidTransition)
		assert.Equal(t, listing.Approved, l.Status())
	})

	t.Run("needs admin id", func(t *testing.T) {
		l, _ := newListing(t)

		require.ErrorIs(t, l.Approve(kernel.UUID{}, submittedAt), errs.ErrValueIsRequired)
		assert.Equal(t, listing.Pending, l.Status())
	})
}

func TestListing_Reject(t *testing.T) {
	t.Run("should keep reason and notify", func(t *testing.T) {
		l, _ := newListing(t)
		admin := kernel.NewUUID()
		at := submittedAt.Add(time.Hour)

		require.NoError(t, l.Reject(admin, " Rate too low ", at))

		assert.Equal(t, listing.Rejected, l.Status())
		assert.Equal(t, "Rate too low", l.RejectionReason())
		assert.Equal(t, at, *l.ApprovalDate())
		sent := l.PullNotifications()
		require.Len(t, sent, 1)
		assert.Equal(t, notification.ListingRejected, sent[0].Kind)
		assert.Equal(t, "Rate too low", sent[0].Context[notification.KeyReason])
	})

	t.Run("reason is optional", func(t *testing.T) {
		l, _ := newListing(t)

		require.NoError(t, l.Reject(kernel.NewUUID(), "", submittedAt))

		sent := l.PullNotifications()
		require.Len(t, sent, 1)
		assert.NotContains(t, sent[0].Context, notification.KeyReason)
	})

	t.Run("rejected listing cannot be approved", func(t *testing.T) {
		l, _ := newListing(t)
		require.NoError(t, l.Reject(kernel.NewUUID(), "", submittedAt))

		require.ErrorIs(t, l.Approve(kernel.NewUUID(), submittedAt), errs.ErrInvalidTransition)
	})
}

func TestListing_EnsureOwner(t *testing.T) {
	l, owner := newListing(t)

	require.NoError(t, l.EnsureOwner(owner.ID))
	require.ErrorIs(t, l.EnsureOwner(kernel.NewUUID()), errs.ErrNotAuthorized)
}

func TestRestoreListing(t *testing.T) {
	l, _ := newListing(t)
	require.NoError(t, l.Reject(kernel.NewUUID(), "Rate too low", submittedAt.Add(time.Hour)))

	restored, err := listing.RestoreListing(l.Snapshot())

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(l))
	assert.Equal(t, l.Snapshot(), restored.Snapshot())

	s := l.Snapshot()
	s.Status = listing.UnknownStatus
	_, err = listing.RestoreListing(s)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus(t *testing.T) {
	s, err := listing.ParseStatus("Rejected")
	require.NoError(t, err)
	assert.Equal(t, listing.Rejected, s)

	_, err = listing.ParseStatus("archived")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = listing.UnknownStatus.Approve()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
