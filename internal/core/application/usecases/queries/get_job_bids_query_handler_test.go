package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetJobBidsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetJobBidsQueryHandler
}

func (suite *GetJobBidsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bidrepo.BidDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetJobBidsQueryHandler(db)
}

func (suite *GetJobBidsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetJobBidsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bids CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetJobBidsQueryHandlerTestSuite) TestHandle_NoBids_ReturnsEmptySlice() {
	query, err := queries.NewGetJobBidsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetJobBidsQueryHandlerTestSuite) TestHandle_FiltersByJob() {
	jobID := kernel.NewUUID()
	otherJobID := kernel.NewUUID()

	first := suite.createBid(jobID, 4200, "Can load same day")
	second := suite.createBid(jobID, 3900, "")
	foreign := suite.createBid(otherJobID, 5000, "")
	suite.saveBids(first, second, foreign)

	query, err := queries.NewGetJobBidsQuery(jobID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	prices := map[float64]queries.GetJobBidsQueryResponse{}
	for _, r := range result {
		suite.True(jobID.IsEqual(r.JobID))
		suite.Equal("Pending", r.Status)
		prices[r.Price] = r
	}
	suite.Contains(prices, 4200.0)
	suite.Contains(prices, 3900.0)
	suite.Equal("Can load same day", prices[4200].Notes)
}

func (suite *GetJobBidsQueryHandlerTestSuite) TestHandle_StatusStringsReflectTransitions() {
	jobID := kernel.NewUUID()

	accepted := suite.createBid(jobID, 4100, "")
	suite.Require().NoError(accepted.Accept())

	rejected := suite.createBid(jobID, 4500, "")
	suite.Require().NoError(rejected.Reject())

	suite.saveBids(accepted, rejected)

	query, err := queries.NewGetJobBidsQuery(jobID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	statuses := map[string]bool{}
	for _, r := range result {
		statuses[r.Status] = true
	}
	suite.True(statuses["Accepted"])
	suite.True(statuses["Rejected"])
}

func (suite *GetJobBidsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetJobBidsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetJobBidsQueryHandlerTestSuite) createBid(jobID kernel.UUID, price float64, notes string) *bid.Bid {
	b, err := bid.NewBid(kernel.NewUUID(), jobID, kernel.NewUUID(), price, notes)
	suite.Require().NoError(err)

	return b
}

func (suite *GetJobBidsQueryHandlerTestSuite) saveBids(bids ...*bid.Bid) {
	repo := bidrepo.NewGormBidRepository(suite.db, &mockAggregateTracker{})
	for _, b := range bids {
		err := repo.Add(context.Background(), b)
		suite.Require().NoError(err)
	}
}

func TestGetJobBidsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetJobBidsQueryHandlerTestSuite))
}
