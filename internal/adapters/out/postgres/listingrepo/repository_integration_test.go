package listingrepo_test

import (
	"context"
	"testing"
	"time"

	"loadboard/internal/adapters/out/postgres/listingrepo"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/testutil/containers"

	"github.com/stretchr/testify/suite"
)

var submittedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type ListingRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *containers.PostgresContainer
	repository *listingrepo.GormListingRepository
	owner      listing.Owner
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupSuite() {
	suite.pg = containers.NewPostgresContainer(suite.T())
	suite.repository = listingrepo.NewGormListingRepository(suite.pg.DB)

	email, err := kernel.NewEmail("shipper@x.com")
	suite.Require().NoError(err)
	suite.owner = listing.Owner{ID: kernel.NewUUID(), Name: "Alice", Email: email}
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *ListingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate())
	}
}

func (suite *ListingRepositoryIntegrationTestSuite) newListing(at time.Time) *listing.Listing {
	pickup, err := kernel.NewLocation("Dallas", "TX")
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation("Denver", "CO")
	suite.Require().NoError(err)

	freight, err := listing.NewFreight(listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: "Dry Van",
		WeightLbs:     42000,
		RateCents:     185000,
		AvailableDate: at.AddDate(0, 0, 1),
		ContactName:   "Dispatch",
		ContactPhone:  "555-0100",
		Notes:         "Dock hours 8-4",
	})
	suite.Require().NoError(err)

	l, err := listing.NewListing(kernel.NewUUID(), suite.owner, freight, at)
	suite.Require().NoError(err)
	return l
}

func (suite *ListingRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	l := suite.newListing(submittedAt)

	suite.Require().NoError(suite.repository.Add(ctx, l))

	stored, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(l))
	suite.Equal(listing.Pending, stored.Status())
	suite.Equal("Dallas, TX to Denver, CO", stored.Freight().Route())
	suite.Equal(int64(185000), stored.Freight().RateCents())
	suite.Equal("Dock hours 8-4", stored.Freight().Notes())
	suite.True(stored.Owner().ID.IsEqual(suite.owner.ID))
	suite.Nil(stored.ReviewedBy())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestUpdate_PersistsReview() {
	ctx := context.Background()
	l := suite.newListing(submittedAt)
	suite.Require().NoError(suite.repository.Add(ctx, l))

	adminID := kernel.NewUUID()
	suite.Require().NoError(l.Reject(adminID, "Rate too low", submittedAt.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, l))

	stored, err := suite.repository.Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(listing.Rejected, stored.Status())
	suite.Equal("Rate too low", stored.RejectionReason())
	suite.Require().NotNil(stored.ReviewedBy())
	suite.True(stored.ReviewedBy().IsEqual(adminID))
	suite.Equal(submittedAt.Add(time.Hour), stored.ApprovalDate().UTC())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	err := suite.repository.Update(context.Background(), suite.newListing(submittedAt))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListingRepositoryIntegrationTestSuite) TestGetAll_OrderedBySubmission() {
	ctx := context.Background()
	later := suite.newListing(submittedAt.Add(time.Hour))
	earlier := suite.newListing(submittedAt)
	suite.Require().NoError(suite.repository.Add(ctx, later))
	suite.Require().NoError(suite.repository.Add(ctx, earlier))

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].IsEqual(earlier))
	suite.True(all[1].IsEqual(later))
}

func (suite *ListingRepositoryIntegrationTestSuite) TestDelete_IsPermanent() {
	ctx := context.Background()
	l := suite.newListing(submittedAt)
	suite.Require().NoError(suite.repository.Add(ctx, l))

	suite.Require().NoError(suite.repository.Delete(ctx, l.ID()))

	_, err := suite.repository.Get(ctx, l.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, l.ID()), errs.ErrObjectNotFound)
}

func TestListingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryIntegrationTestSuite))
}
