package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Create(ctx context.Context, identityID kernel.UUID) (ports.Session, error) {
	args := m.Called(ctx, identityID)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (ports.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionStore) DeleteByIdentity(ctx context.Context, identityID kernel.UUID) (int, error) {
	args := m.Called(ctx, identityID)
	return args.Int(0), args.Error(1)
}

// MockIdentityRepository only answers Get; the access query never writes.
type MockIdentityRepository struct {
	mock.Mock
	ports.IdentityRepository
}

func (m *MockIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

type MockUoW struct {
	ports.UnitOfWork
	repo ports.IdentityRepository
}

func (m MockUoW) IdentityRepository() ports.IdentityRepository {
	return m.repo
}

type MockUoWFactory struct{ repo ports.IdentityRepository }

func (f MockUoWFactory) Create() ports.UnitOfWork {
	return MockUoW{repo: f.repo}
}

func newApprovedShipper(t *testing.T) *identity.Identity {
	t.Helper()
	email, err := kernel.NewEmail("shipper@x.com")
	require.NoError(t, err)
	i, err := identity.NewIdentity(kernel.NewUUID(), email, "Alice", identity.Shipper,
		identity.ShipperProfile{BusinessName: "Acme Freight"}, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, i.Approve(time.Now()))
	return i
}

func TestGetAccessQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	shipper := newApprovedShipper(t)

	t.Run("approved shipper may submit listings", func(t *testing.T) {
		sessions := new(MockSessionStore)
		repo := new(MockIdentityRepository)
		sessions.On("Get", ctx, "token-1").Return(ports.Session{Token: "token-1", IdentityID: shipper.ID()}, nil).Once()
		repo.On("Get", ctx, shipper.ID()).Return(shipper, nil).Once()

		handler := queries.NewGetAccessQueryHandler(sessions, MockUoWFactory{repo: repo}, services.NewAccessGate())
		access, err := handler.Handle(ctx, queries.NewGetAccessQuery(" token-1 "))

		require.NoError(t, err)
		assert.True(t, access.IsAuthenticated)
		assert.True(t, access.IsApproved)
		assert.False(t, access.IsAdmin)
		assert.True(t, access.CanSubmitListing)
		assert.Same(t, shipper, access.Identity)
	})

	t.Run("empty token is anonymous", func(t *testing.T) {
		sessions := new(MockSessionStore)

		handler := queries.NewGetAccessQueryHandler(sessions, MockUoWFactory{}, services.NewAccessGate())
		access, err := handler.Handle(ctx, queries.NewGetAccessQuery("  "))

		require.NoError(t, err)
		assert.Equal(t, services.Access{}, access)
		sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unknown session is anonymous", func(t *testing.T) {
		sessions := new(MockSessionStore)
		sessions.On("Get", ctx, "stale").Return(ports.Session{}, errs.NewObjectNotFoundError("session", "stale")).Once()

		handler := queries.NewGetAccessQueryHandler(sessions, MockUoWFactory{}, services.NewAccessGate())
		access, err := handler.Handle(ctx, queries.NewGetAccessQuery("stale"))

		require.NoError(t, err)
		assert.False(t, access.IsAuthenticated)
	})

	t.Run("removed identity is anonymous", func(t *testing.T) {
		sessions := new(MockSessionStore)
		repo := new(MockIdentityRepository)
		sessions.On("Get", ctx, "token-1").Return(ports.Session{Token: "token-1", IdentityID: shipper.ID()}, nil).Once()
		repo.On("Get", ctx, shipper.ID()).Return(nil, errs.NewObjectNotFoundError("identity", shipper.ID())).Once()

		handler := queries.NewGetAccessQueryHandler(sessions, MockUoWFactory{repo: repo}, services.NewAccessGate())
		access, err := handler.Handle(ctx, queries.NewGetAccessQuery("token-1"))

		require.NoError(t, err)
		assert.False(t, access.IsAuthenticated)
		assert.Nil(t, access.Identity)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		sessions := new(MockSessionStore)
		sessions.On("Get", ctx, "token-1").Return(ports.Session{}, errors.New("redis down")).Once()

		handler := queries.NewGetAccessQueryHandler(sessions, MockUoWFactory{}, services.NewAccessGate())
		_, err := handler.Handle(ctx, queries.NewGetAccessQuery("token-1"))

		require.EqualError(t, err, "redis down")
	})

	t.Run("query must be constructed", func(t *testing.T) {
		handler := queries.NewGetAccessQueryHandler(new(MockSessionStore), MockUoWFactory{}, services.NewAccessGate())
		_, err := handler.Handle(ctx, queries.GetAccessQuery{})

		require.ErrorIs(t, err, queries.ErrGetAccessQueryIsNotConstructed)
	})
}
