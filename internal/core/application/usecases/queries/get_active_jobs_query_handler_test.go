package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveJobsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveJobsQueryHandler
}

func (suite *GetActiveJobsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&jobrepo.JobDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveJobsQueryHandler(db)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveJobsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_WithJobs_ReturnsAllOrderedByRequestedDate() {
	later := suite.createJob(time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	earlier := suite.createJob(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	suite.saveJobs(later, earlier)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(earlier.ID().IsEqual(result[0].ID))
	suite.True(later.ID().IsEqual(result[1].ID))
	suite.Equal("Open", result[0].Status)
	suite.Nil(result[0].AcceptedBidID)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_TerminalJobs_AreExcluded() {
	active := suite.createJob(time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC))

	cancelled := suite.createJob(time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(cancelled.Cancel())

	bidID := kernel.NewUUID()
	completed, err := job.RestoreJob(
		kernel.NewUUID(), kernel.NewUUID(),
		suite.waypoint(24.7136, 46.6753, "Warehouse 4, Riyadh"),
		suite.waypoint(21.4858, 39.1925, "Port gate 2, Jeddah"),
		time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
		1500, "flatbed",
		job.Completed, &bidID,
	)
	suite.Require().NoError(err)

	suite.saveJobs(active, cancelled, completed)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(active.ID().IsEqual(result[0].ID))
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_AcceptedBid_IsMapped() {
	bidID := kernel.NewUUID()
	awarded, err := job.RestoreJob(
		kernel.NewUUID(), kernel.NewUUID(),
		suite.waypoint(24.7136, 46.6753, "Warehouse 4, Riyadh"),
		suite.waypoint(21.4858, 39.1925, "Port gate 2, Jeddah"),
		time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		900, "reefer",
		job.InTransit, &bidID,
	)
	suite.Require().NoError(err)
	suite.saveJobs(awarded)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("InTransit", result[0].Status)
	suite.Require().NotNil(result[0].AcceptedBidID)
	suite.True(bidID.IsEqual(*result[0].AcceptedBidID))
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveJobsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveJobsQuery constructor")
}

func (suite *GetActiveJobsQueryHandlerTestSuite) waypoint(lat, lng float64, address string) job.Waypoint {
	point, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)

	wp, err := job.NewWaypoint(point, address)
	suite.Require().NoError(err)

	return wp
}

func (suite *GetActiveJobsQueryHandlerTestSuite) createJob(requestedDate time.Time) *job.Job {
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		suite.waypoint(24.7136, 46.6753, "Warehouse 4, Riyadh"),
		suite.waypoint(21.4858, 39.1925, "Port gate 2, Jeddah"),
		requestedDate,
		1500,
		"flatbed",
	)
	suite.Require().NoError(err)

	return j
}

func (suite *GetActiveJobsQueryHandlerTestSuite) saveJobs(jobs ...*job.Job) {
	repo := jobrepo.NewGormJobRepository(suite.db, &mockAggregateTracker{})
	for _, j := range jobs {
		err := repo.Add(context.Background(), j)
		suite.Require().NoError(err)
	}
}

func TestGetActiveJobsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveJobsQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker shared by the query handler suites.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
