package identityrepo_test

import (
	"context"
	"testing"
	"time"

	"loadboard/internal/adapters/out/postgres/identityrepo"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/testutil/containers"

	"github.com/stretchr/testify/suite"
)

var registeredAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type IdentityRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *containers.PostgresContainer
	active  *identityrepo.GormIdentityRepository
	removed *identityrepo.GormRemovedIdentityRepository
}

func (suite *IdentityRepositoryIntegrationTestSuite) SetupSuite() {
	suite.pg = containers.NewPostgresContainer(suite.T())

	allowList, err := identity.NewAdminAllowList([]string{"admin@allowlist.com"})
	suite.Require().NoError(err)

	suite.active = identityrepo.NewGormIdentityRepository(suite.pg.DB, allowList)
	suite.removed = identityrepo.NewGormRemovedIdentityRepository(suite.pg.DB)
}

func (suite *IdentityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *IdentityRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate())
	}
}

func (suite *IdentityRepositoryIntegrationTestSuite) email(raw string) kernel.Email {
	e, err := kernel.NewEmail(raw)
	suite.Require().NoError(err)
	return e
}

func (suite *IdentityRepositoryIntegrationTestSuite) newShipper(email string, at time.Time) *identity.Identity {
	i, err := identity.NewIdentity(kernel.NewUUID(), suite.email(email), "Alice", identity.Shipper,
		identity.ShipperProfile{BusinessName: "Acme Freight", Phone: "555-0100"}, "", at)
	suite.Require().NoError(err)
	return i
}

func (suite *IdentityRepositoryIntegrationTestSuite) newCarrier(email string, at time.Time) *identity.Identity {
	i, err := identity.NewIdentity(kernel.NewUUID(), suite.email(email), "Bob", identity.Carrier,
		identity.CarrierProfile{
			BusinessName: "Bob Hauling",
			DOTNumber:    "1234567",
			MCNumber:     "MC-42",
			Equipment:    []string{"Flatbed", "Step Deck"},
		}, "$2a$04$hash", at)
	suite.Require().NoError(err)
	return i
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestAdd_RoundTripsCarrierProfile() {
	ctx := context.Background()
	carrier := suite.newCarrier("carrier@x.com", registeredAt)

	suite.Require().NoError(suite.active.Add(ctx, carrier))

	stored, err := suite.active.Get(ctx, carrier.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(carrier))
	suite.Equal(identity.Carrier, stored.Role())
	suite.Equal(identity.Pending, stored.Status())
	suite.Equal(identity.Verified, stored.Verification())
	suite.Equal("$2a$04$hash", stored.CredentialHash())

	profile, ok := stored.Profile().(identity.CarrierProfile)
	suite.Require().True(ok)
	suite.Equal("MC-42", profile.MCNumber)
	suite.Equal([]string{"Flatbed", "Step Deck"}, profile.Equipment)
	suite.Empty(stored.PullNotifications())
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.active.Add(ctx, suite.newShipper("shipper@x.com", registeredAt)))

	err := suite.active.Add(ctx, suite.newCarrier("shipper@x.com", registeredAt))

	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentity)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestUpdate_ClearsDates() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com", registeredAt)
	suite.Require().NoError(shipper.Reject(registeredAt.Add(time.Hour)))
	suite.Require().NoError(suite.active.Add(ctx, shipper))

	suite.Require().NoError(shipper.Restore(identity.Pending, registeredAt.Add(2*time.Hour)))
	suite.Require().NoError(suite.active.Update(ctx, shipper))

	stored, err := suite.active.Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.Equal(identity.Pending, stored.Status())
	suite.Nil(stored.RejectionDate())
	suite.Nil(stored.ApprovalDate())
	suite.Require().NotNil(stored.RestorationDate())
	suite.Equal(registeredAt.Add(2*time.Hour), stored.RestorationDate().UTC())
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	err := suite.active.Update(context.Background(), suite.newShipper("shipper@x.com", registeredAt))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.active.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestFindByEmail_IsCaseInsensitive() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com", registeredAt)
	suite.Require().NoError(suite.active.Add(ctx, shipper))

	found, err := suite.active.FindByEmail(ctx, suite.email("Shipper@X.COM"))

	suite.Require().NoError(err)
	suite.True(found.IsEqual(shipper))
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestLoad_NormalizesAllowListedIdentity() {
	ctx := context.Background()
	listed := suite.newShipper("admin@allowlist.com", registeredAt)
	suite.Require().NoError(suite.active.Add(ctx, listed))

	stored, err := suite.active.Get(ctx, listed.ID())

	suite.Require().NoError(err)
	suite.Equal(identity.Admin, stored.Role())
	suite.Equal(identity.Approved, stored.Status())
	suite.Require().NotNil(stored.ApprovalDate())
	suite.Equal(registeredAt, stored.ApprovalDate().UTC())

	var row identityrepo.IdentityDTO
	suite.Require().NoError(suite.pg.DB.First(&row, "id = ?", listed.ID().Bytes()).Error)
	suite.Equal(int(identity.Shipper), row.Role, "loading does not write the normalization back")
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestGetAll_OrderedByRegistration() {
	ctx := context.Background()
	later := suite.newShipper("later@x.com", registeredAt.Add(time.Hour))
	earlier := suite.newCarrier("earlier@x.com", registeredAt)
	suite.Require().NoError(suite.active.Add(ctx, later))
	suite.Require().NoError(suite.active.Add(ctx, earlier))

	all, err := suite.active.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].IsEqual(earlier))
	suite.True(all[1].IsEqual(later))
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com", registeredAt)
	suite.Require().NoError(suite.active.Add(ctx, shipper))

	suite.Require().NoError(suite.active.Delete(ctx, shipper.ID()))
	suite.Require().ErrorIs(suite.active.Delete(ctx, shipper.ID()), errs.ErrObjectNotFound)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestRemoved_RoundTrip() {
	ctx := context.Background()
	shipper := suite.newShipper("shipper@x.com", registeredAt)
	suite.Require().NoError(shipper.Approve(registeredAt.Add(time.Hour)))
	suite.Require().NoError(shipper.MarkRemoved(registeredAt.Add(2 * time.Hour)))

	suite.Require().NoError(suite.removed.Add(ctx, shipper))

	stored, err := suite.removed.Get(ctx, shipper.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsRemoved())
	suite.Equal(identity.Approved, stored.Status())
	suite.Equal(registeredAt.Add(2*time.Hour), stored.RemovedDate().UTC())
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestRemoved_AddRequiresRemovalDate() {
	err := suite.removed.Add(context.Background(), suite.newShipper("shipper@x.com", registeredAt))

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *IdentityRepositoryIntegrationTestSuite) TestRemoved_SameAddressTwice() {
	ctx := context.Background()
	first := suite.newShipper("shipper@x.com", registeredAt)
	second := suite.newShipper("shipper@x.com", registeredAt.Add(time.Hour))
	suite.Require().NoError(first.MarkRemoved(registeredAt.Add(time.Hour)))
	suite.Require().NoError(second.MarkRemoved(registeredAt.Add(2 * time.Hour)))

	suite.Require().NoError(suite.removed.Add(ctx, first))
	suite.Require().NoError(suite.removed.Add(ctx, second))

	all, err := suite.removed.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].IsEqual(second), "most recently removed first")

	suite.Require().NoError(suite.removed.Delete(ctx, first.ID()))
	suite.Require().ErrorIs(suite.removed.Delete(ctx, first.ID()), errs.ErrObjectNotFound)
}

func TestIdentityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityRepositoryIntegrationTestSuite))
}
