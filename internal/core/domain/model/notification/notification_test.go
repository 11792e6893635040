package notification_test

import (
	"testing"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutbox(t *testing.T) {
	email, err := kernel.NewEmail("shipper@x.com")
	require.NoError(t, err)
	var box notification.Outbox

	box.Record(notification.New(email, notification.AccountApproved, nil))
	box.Record(notification.New(email, notification.AccountRejected, map[string]string{"k": "v"}))

	assert.Len(t, box.Pending(), 2)
	drained := box.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, notification.AccountApproved, drained[0].Kind)
	assert.NotNil(t, drained[0].Context)
	assert.Equal(t, "v", drained[1].Context["k"])
	assert.Empty(t, box.Drain())
}

func TestKinds(t *testing.T) {
	kinds := notification.Kinds()

	assert.Len(t, kinds, 6)
	assert.Contains(t, kinds, notification.RegistrationReceived)
	assert.Contains(t, kinds, notification.ListingRejected)
}
