package ratingrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RatingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ratingrepo.GormRatingRepository
	tracker    *MockAggregateTracker
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = ratingrepo.NewGormRatingRepository(suite.db, suite.tracker)
}

func (suite *RatingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RatingRepositoryIntegrationTestSuite) newRating(loadID kernel.UUID, raterRole rating.Role, value int) *rating.Rating {
	score, err := rating.NewScore(value)
	suite.Require().NoError(err)

	r, err := rating.NewRating(kernel.NewUUID(), loadID, kernel.NewUUID(), rating.Participants{
		RaterID:   kernel.NewUUID(),
		RaterRole: raterRole,
		RatedID:   kernel.NewUUID(),
		RatedRole: raterRole.Counterpart(),
	}, score, "on time", time.Now())
	suite.Require().NoError(err)
	return r
}

func (suite *RatingRepositoryIntegrationTestSuite) TestAddAndGetByLoadRequestAndRole() {
	ctx := suite.T().Context()
	loadID := kernel.NewUUID()
	byClient := suite.newRating(loadID, rating.Client, 5)
	byTrucker := suite.newRating(loadID, rating.Trucker, 3)

	suite.Require().NoError(suite.repository.Add(ctx, byClient))
	suite.Require().NoError(suite.repository.Add(ctx, byTrucker))

	got, err := suite.repository.GetByLoadRequestAndRole(ctx, loadID, rating.Client)
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(byClient.ID()))
	suite.Equal(5, got.Score().Value())
	suite.Equal(rating.Trucker, got.Participants().RatedRole)
	suite.True(got.Participants().RaterID.IsEqual(byClient.Participants().RaterID))
	suite.Equal("on time", got.Comment())

	got, err = suite.repository.GetByLoadRequestAndRole(ctx, loadID, rating.Trucker)
	suite.Require().NoError(err)
	suite.Equal(3, got.Score().Value())
}

func (suite *RatingRepositoryIntegrationTestSuite) TestAdd_SecondRatingFromSameSideIsDuplicate() {
	ctx := suite.T().Context()
	loadID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRating(loadID, rating.Client, 4)))

	err := suite.repository.Add(ctx, suite.newRating(loadID, rating.Client, 1))

	suite.Require().ErrorIs(err, rating.ErrDuplicateRating)

	var count int64
	suite.Require().NoError(suite.db.Model(&ratingrepo.RatingDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *RatingRepositoryIntegrationTestSuite) TestGetByLoadRequestAndRole_NotFound() {
	_, err := suite.repository.GetByLoadRequestAndRole(suite.T().Context(), kernel.NewUUID(), rating.Trucker)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRatingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RatingRepositoryIntegrationTestSuite))
}
