package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "loadboard/internal/adapters/out/postgres"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/testutil/containers"

	"github.com/stretchr/testify/suite"
)

var registeredAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises GormUnitOfWork against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *containers.PostgresContainer
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	suite.pg = containers.NewPostgresContainer(suite.T())

	allowList, err := identity.NewAdminAllowList([]string{"admin@allowlist.com"})
	suite.Require().NoError(err)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.pg.DB, allowList)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate())
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipper(email string) *identity.Identity {
	addr, err := kernel.NewEmail(email)
	suite.Require().NoError(err)

	i, err := identity.NewIdentity(
		kernel.NewUUID(),
		addr,
		"Alice",
		identity.Shipper,
		identity.ShipperProfile{BusinessName: "Acme Freight"},
		"",
		registeredAt,
	)
	suite.Require().NoError(err)
	return i
}

func (suite *UnitOfWorkIntegrationTestSuite) add(i *identity.Identity) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.IdentityRepository().Add(ctx, i))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.IdentityRepository())
	suite.NotNil(uow1.RemovedIdentityRepository())
	suite.NotNil(uow1.ListingRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterCommitKeepsChanges() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.IdentityRepository().Add(ctx, shipper))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))

	stored, err := suite.factory.Create().IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(shipper))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RemoveMovesIdentityAtomically() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com")
	suite.add(shipper)
	suite.Require().NoError(shipper.MarkRemoved(registeredAt.Add(time.Hour)))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RemovedIdentityRepository().Add(ctx, shipper))
	suite.Require().NoError(uow.IdentityRepository().Delete(ctx, shipper.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	_, err := reader.IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	removed, err := reader.RemovedIdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.True(removed.IsRemoved())
	suite.Equal(registeredAt.Add(time.Hour), removed.RemovedDate().UTC())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackLeavesBothCollectionsUntouched() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com")
	suite.add(shipper)
	suite.Require().NoError(shipper.MarkRemoved(registeredAt.Add(time.Hour)))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RemovedIdentityRepository().Add(ctx, shipper))
	suite.Require().NoError(uow.IdentityRepository().Delete(ctx, shipper.ID()))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	active, err := reader.IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.False(active.IsRemoved())

	_, err = reader.RemovedIdentityRepository().Get(ctx, shipper.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ListingAndOwnerInOneTransaction() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com")
	suite.add(shipper)

	pickup, err := kernel.NewLocation("Dallas", "TX")
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation("Denver", "CO")
	suite.Require().NoError(err)
	freight, err := listing.NewFreight(listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: "Reefer",
		WeightLbs:     30000,
		RateCents:     250000,
		AvailableDate: registeredAt.AddDate(0, 0, 2),
	})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	owner, err := uow.IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	l, err := listing.NewListing(kernel.NewUUID(),
		listing.Owner{ID: owner.ID(), Name: owner.Name(), Email: owner.Email()},
		freight, registeredAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ListingRepository().Add(ctx, l))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().ListingRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal("Alice", stored.Owner().Name)
	suite.Equal("shipper@x.com", stored.Owner().Email.String())
}

// Two admins reviewing the same identity at once is a known race: nothing
// serializes the read-modify-write cycles and the last commit wins.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentReviewsLastCommitWins() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com")
	suite.add(shipper)

	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	approving, err := first.IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	rejecting, err := second.IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(approving.Approve(registeredAt.Add(time.Hour)))
	suite.Require().NoError(rejecting.Reject(registeredAt.Add(2 * time.Hour)))

	suite.Require().NoError(first.IdentityRepository().Update(ctx, approving))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().NoError(second.IdentityRepository().Update(ctx, rejecting))
	suite.Require().NoError(second.Commit(ctx))

	stored, err := suite.factory.Create().IdentityRepository().Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.Equal(identity.Rejected, stored.Status())
	suite.Nil(stored.ApprovalDate())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
