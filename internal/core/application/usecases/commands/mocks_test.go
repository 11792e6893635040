package commands_test

import (
	"context"
	"time"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type MockIdentityRepository struct{ mock.Mock }

func (m *MockIdentityRepository) Add(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIdentityRepository) Update(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) FindByEmail(ctx context.Context, email kernel.Email) (*identity.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) GetAll(ctx context.Context) ([]*identity.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRemovedIdentityRepository struct{ mock.Mock }

func (m *MockRemovedIdentityRepository) Add(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockRemovedIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockRemovedIdentityRepository) GetAll(ctx context.Context) ([]*identity.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*identity.Identity), args.Error(1)
}

func (m *MockRemovedIdentityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) GetAll(ctx context.Context) ([]*listing.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies both IdentityUoW and ListingUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

func (m *MockUoW) RemovedIdentityRepository() ports.RemovedIdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.RemovedIdentityRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.IdentityUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

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
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteByIdentity(ctx context.Context, identityID kernel.UUID) (int, error) {
	args := m.Called(ctx, identityID)
	return args.Int(0), args.Error(1)
}

type MockSink struct{ mock.Mock }

func (m *MockSink) Notify(ctx context.Context, n notification.Notification) {
	m.Called(ctx, n)
}

func kindIs(kind notification.Kind, recipient string) interface{} {
	return mock.MatchedBy(func(n notification.Notification) bool {
		return n.Kind == kind && n.Recipient.String() == recipient
	})
}
