package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/loadrequestrepo"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/rating"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	loads   *loadrequestrepo.GormLoadRequestRepository
	bids    *bidrepo.GormBidRepository
	trucks  *truckrepo.GormTruckRepository
	ratings *ratingrepo.GormRatingRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.loads = loadrequestrepo.NewGormLoadRequestRepository(db, &mockAggregateTracker{})
	suite.bids = bidrepo.NewGormBidRepository(db, &mockAggregateTracker{})
	suite.trucks = truckrepo.NewGormTruckRepository(db, &mockAggregateTracker{})
	suite.ratings = ratingrepo.NewGormRatingRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *QueryHandlersTestSuite) addLoad(createdAt time.Time) *loadrequest.LoadRequest {
	pickup, err := kernel.NewLocation("Shymkent", 42.34, 69.59)
	suite.Require().NoError(err)
	dropoff, err := kernel.NewLocation("Aktobe", 50.28, 57.16)
	suite.Require().NoError(err)
	route, err := loadrequest.NewRoute(pickup, dropoff, 1340)
	suite.Require().NoError(err)
	cargo, err := loadrequest.NewCargo("cement", 20, 1)
	suite.Require().NoError(err)

	load, err := loadrequest.NewLoadRequest(kernel.NewUUID(), kernel.NewUUID(), route, cargo,
		520000, "on delivery", "", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loads.Add(suite.T().Context(), load))
	return load
}

func (suite *QueryHandlersTestSuite) addTruck(truckerID kernel.UUID, plate string) *truck.Truck {
	t, err := truck.NewTruck(kernel.NewUUID(), truckerID, "dump", 25, plate, "Yerlan", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.trucks.Add(suite.T().Context(), t))
	return t
}

func (suite *QueryHandlersTestSuite) TestListVisibleLoads_HidesRejectedAndClosedLoads() {
	ctx := suite.T().Context()
	truckerID := kernel.NewUUID()
	now := time.Now()

	newer := suite.addLoad(now)
	older := suite.addLoad(now.Add(-time.Hour))
	rejected := suite.addLoad(now.Add(-2 * time.Hour))
	accepted := suite.addLoad(now.Add(-3 * time.Hour))

	rejection, err := bid.NewRejection(rejected.ID(), truckerID, "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.bids.AddRejection(ctx, rejection))

	suite.Require().NoError(accepted.Accept(accepted.ClientID(), kernel.NewUUID(), now))
	suite.Require().NoError(suite.loads.Update(ctx, accepted))

	query, err := queries.NewListVisibleLoadsQuery(truckerID)
	suite.Require().NoError(err)

	loads, err := queries.NewListVisibleLoadsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(loads, 2)
	suite.True(loads[0].ID.IsEqual(older.ID()))
	suite.True(loads[1].ID.IsEqual(newer.ID()))
	suite.Equal("open", loads[0].Status)
	suite.Equal("Shymkent", loads[0].Pickup.Address)
	suite.Equal("cement", loads[0].GoodsType)

	otherQuery, err := queries.NewListVisibleLoadsQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	others, err := queries.NewListVisibleLoadsQueryHandler(suite.db).Handle(ctx, otherQuery)
	suite.Require().NoError(err)
	suite.Len(others, 3, "a rejection only hides the load from the trucker who rejected it")
}

func (suite *QueryHandlersTestSuite) TestListVisibleLoads_Empty() {
	query, err := queries.NewListVisibleLoadsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	loads, err := queries.NewListVisibleLoadsQueryHandler(suite.db).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(loads)
	suite.Empty(loads)
}

func (suite *QueryHandlersTestSuite) TestGetLoadRequest_IncludesBidHistory() {
	ctx := suite.T().Context()
	now := time.Now()
	load := suite.addLoad(now)
	winnerTruck := suite.addTruck(kernel.NewUUID(), "100WIN01")

	winner, err := bid.NewBid(kernel.NewUUID(), load.ID(), winnerTruck.TruckerID(),
		[]kernel.UUID{winnerTruck.ID()}, 500000, now)
	suite.Require().NoError(err)
	loser, err := bid.NewBid(kernel.NewUUID(), load.ID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()}, 480000, now.Add(time.Second))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.bids.Add(ctx, winner))
	suite.Require().NoError(suite.bids.Add(ctx, loser))

	suite.Require().NoError(load.Accept(load.ClientID(), winner.ID(), now))
	suite.Require().NoError(winner.Accept(now))
	suite.Require().NoError(loser.Supersede(now))
	suite.Require().NoError(suite.loads.Update(ctx, load))
	suite.Require().NoError(suite.bids.Update(ctx, winner))
	suite.Require().NoError(suite.bids.Update(ctx, loser))

	query, err := queries.NewGetLoadRequestQuery(load.ID())
	suite.Require().NoError(err)

	details, err := queries.NewGetLoadRequestQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("accepted", details.Status)
	suite.Require().NotNil(details.AcceptedBidID)
	suite.True(details.AcceptedBidID.IsEqual(winner.ID()))
	suite.NotNil(details.Timeline.AcceptedAt)
	suite.Nil(details.Timeline.DeliveredAt)
	suite.Require().Len(details.Bids, 2)
	suite.Equal("accepted", details.Bids[0].Status)
	suite.Require().Len(details.Bids[0].TruckIDs, 1)
	suite.True(details.Bids[0].TruckIDs[0].IsEqual(winnerTruck.ID()))
	suite.Equal("superseded", details.Bids[1].Status)
}

func (suite *QueryHandlersTestSuite) TestGetLoadRequest_NotFound() {
	query, err := queries.NewGetLoadRequestQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetLoadRequestQueryHandler(suite.db).Handle(suite.T().Context(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetRating() {
	ctx := suite.T().Context()
	loadID := kernel.NewUUID()
	score, err := rating.NewScore(4)
	suite.Require().NoError(err)
	participants := rating.Participants{
		RaterID:   kernel.NewUUID(),
		RaterRole: rating.Trucker,
		RatedID:   kernel.NewUUID(),
		RatedRole: rating.Client,
	}
	stored, err := rating.NewRating(kernel.NewUUID(), loadID, kernel.NewUUID(), participants, score, "paid on time", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ratings.Add(ctx, stored))

	query, err := queries.NewGetRatingQuery(loadID, rating.Trucker)
	suite.Require().NoError(err)

	view, err := queries.NewGetRatingQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(stored.ID()))
	suite.Equal("trucker", view.RaterRole)
	suite.Equal("client", view.RatedRole)
	suite.Equal(4, view.Score)
	suite.Equal("paid on time", view.Comment)

	query, err = queries.NewGetRatingQuery(loadID, rating.Client)
	suite.Require().NoError(err)
	_, err = queries.NewGetRatingQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestListTruckerTrucks() {
	ctx := suite.T().Context()
	truckerID := kernel.NewUUID()
	busy := suite.addTruck(truckerID, "B200AA01")
	free := suite.addTruck(truckerID, "A100AA01")
	suite.addTruck(kernel.NewUUID(), "C300AA01")

	bidID := kernel.NewUUID()
	suite.Require().NoError(busy.Reserve(bidID))
	suite.Require().NoError(suite.trucks.Update(ctx, busy))

	query, err := queries.NewListTruckerTrucksQuery(truckerID)
	suite.Require().NoError(err)

	trucks, err := queries.NewListTruckerTrucksQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(trucks, 2)
	suite.True(trucks[0].ID.IsEqual(free.ID()))
	suite.Equal("standby", trucks[0].Status)
	suite.Nil(trucks[0].OccupyingBidID)
	suite.Equal("reserved", trucks[1].Status)
	suite.Require().NotNil(trucks[1].OccupyingBidID)
	suite.True(trucks[1].OccupyingBidID.IsEqual(bidID))
}

func (suite *QueryHandlersTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	query, err := queries.NewListVisibleLoadsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loads, err := queries.NewListVisibleLoadsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(loads)
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
