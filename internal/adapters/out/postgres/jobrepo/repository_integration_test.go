package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// JobRepositoryIntegrationTestSuite provides integration tests for JobRepository
// using PostgreSQL containers to verify database persistence behavior.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Bids are needed for the accepted-bid join in GetAllTrackedByCarrier.
	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}, &bidrepo.BidDTO{}))
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs, bids").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	ctx := context.Background()

	testJob := suite.createTestJob()
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()

	err := suite.repository.Add(ctx, testJob)
	suite.Require().NoError(err)

	suite.assertJobCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_ExistingJob_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestJob()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.ShipperID().IsEqual(retrieved.ShipperID()))
	suite.Equal(original.Pickup().Point().Latitude(), retrieved.Pickup().Point().Latitude())
	suite.Equal(original.Delivery().Address(), retrieved.Delivery().Address())
	suite.Equal(original.WeightKg(), retrieved.WeightKg())
	suite.Equal(job.Open, retrieved.Status())
	suite.Nil(retrieved.AcceptedBid())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_AcceptedBidPersists() {
	ctx := context.Background()

	testJob := suite.createTestJob()
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testJob))

	bidID := kernel.NewUUID()
	suite.Require().NoError(testJob.AcceptBid(bidID))
	suite.Require().NoError(suite.repository.Update(ctx, testJob))

	retrieved, err := suite.repository.Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.BidAccepted, retrieved.Status())
	suite.Require().NotNil(retrieved.AcceptedBid())
	suite.True(bidID.IsEqual(*retrieved.AcceptedBid()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_NonExistentJob_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestJob())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsJob() {
	ctx := context.Background()

	testJob := suite.createTestJob()
	suite.tracker.On("TrackAggregate", testJob.ID(), testJob).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testJob))

	// Row locks need an explicit transaction around the repository.
	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := jobrepo.NewGormJobRepository(tx, suite.tracker)
	retrieved, err := txRepo.GetForUpdate(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.True(testJob.ID().IsEqual(retrieved.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllTrackedByCarrier_FiltersByAcceptedBidAndStatus() {
	ctx := context.Background()
	carrierID := kernel.NewUUID()
	otherCarrierID := kernel.NewUUID()
	bidRepository := bidrepo.NewGormBidRepository(suite.db, suite.tracker)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	awarded := suite.createAwardedJob(ctx, bidRepository, carrierID, job.BidAccepted)
	moving := suite.createAwardedJob(ctx, bidRepository, carrierID, job.InTransit)
	suite.createAwardedJob(ctx, bidRepository, carrierID, job.Completed)
	suite.createAwardedJob(ctx, bidRepository, otherCarrierID, job.InTransit)

	openJob := suite.createTestJob()
	suite.Require().NoError(suite.repository.Add(ctx, openJob))

	tracked, err := suite.repository.GetAllTrackedByCarrier(ctx, carrierID)
	suite.Require().NoError(err)
	suite.Require().Len(tracked, 2)

	trackedIDs := map[string]bool{}
	for _, j := range tracked {
		trackedIDs[j.ID().String()] = true
	}
	suite.True(trackedIDs[awarded.ID().String()])
	suite.True(trackedIDs[moving.ID().String()])
}

// createAwardedJob persists a bid by the carrier and a job that accepted it,
// then forces the job into the requested status.
func (suite *JobRepositoryIntegrationTestSuite) createAwardedJob(
	ctx context.Context,
	bidRepository *bidrepo.GormBidRepository,
	carrierID kernel.UUID,
	status job.Status,
) *job.Job {
	testJob := suite.createTestJob()

	acceptedBid, err := bid.RestoreBid(
		kernel.NewUUID(), testJob.ID(), carrierID, 1200, "", bid.Accepted)
	suite.Require().NoError(err)
	suite.Require().NoError(bidRepository.Add(ctx, acceptedBid))

	bidID := acceptedBid.ID()
	awarded, err := job.RestoreJob(
		testJob.ID(),
		testJob.ShipperID(),
		testJob.Pickup(),
		testJob.Delivery(),
		testJob.RequestedDate(),
		testJob.WeightKg(),
		testJob.EquipmentType(),
		status,
		&bidID,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, awarded))

	return awarded
}

// createTestJob creates a basic open job with default values.
func (suite *JobRepositoryIntegrationTestSuite) createTestJob() *job.Job {
	pickupPoint, err := kernel.NewGeoPoint(24.7136, 46.6753)
	suite.Require().NoError(err)
	pickup, err := job.NewWaypoint(pickupPoint, "warehouse 12, Riyadh")
	suite.Require().NoError(err)

	deliveryPoint, err := kernel.NewGeoPoint(21.4858, 39.1925)
	suite.Require().NoError(err)
	delivery, err := job.NewWaypoint(deliveryPoint, "port gate 3, Jeddah")
	suite.Require().NoError(err)

	testJob, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pickup,
		delivery,
		time.Now().Truncate(time.Second),
		1500,
		"flatbed",
	)
	suite.Require().NoError(err)
	return testJob
}

func (suite *JobRepositoryIntegrationTestSuite) assertJobCount(expected int) {
	var count int64
	err := suite.db.Model(&jobrepo.JobDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
