package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/adapters/out/postgres/positionrepo"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/position"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
// The central scenario is bid acceptance, which must commit the job and all
// bid writes atomically or not at all.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{}, &bidrepo.BidDTO{}, &positionrepo.PositionDTO{})
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, bids, carrier_positions").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.JobRepository())
	suite.NotNil(uow1.BidRepository())
	suite.NotNil(uow1.PositionRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin must not open a nested transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin must fail")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin must fail")
}

// TestBidAcceptance_AllWritesCommitTogether covers the three-write award:
// the job gains the accepted bid reference, the winning bid flips to
// Accepted and the losing bid flips to Rejected, all in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestBidAcceptance_AllWritesCommitTogether() {
	ctx := context.Background()

	testJob := createTestJob(suite.T())
	winner := createTestBid(suite.T(), testJob.ID())
	loser := createTestBid(suite.T(), testJob.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(seedUow.BidRepository().Add(ctx, winner))
	suite.Require().NoError(seedUow.BidRepository().Add(ctx, loser))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedJob, err := uow.JobRepository().GetForUpdate(ctx, testJob.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(lockedJob.AcceptBid(winner.ID()))
	suite.Require().NoError(winner.Accept())
	suite.Require().NoError(loser.Reject())

	suite.Require().NoError(uow.JobRepository().Update(ctx, lockedJob))
	suite.Require().NoError(uow.BidRepository().Update(ctx, winner))
	suite.Require().NoError(uow.BidRepository().Update(ctx, loser))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()

	persistedJob, err := verifyUow.JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.BidAccepted, persistedJob.Status())
	suite.Require().NotNil(persistedJob.AcceptedBid())
	suite.True(winner.ID().IsEqual(*persistedJob.AcceptedBid()))

	persistedWinner, err := verifyUow.BidRepository().Get(ctx, winner.ID())
	suite.Require().NoError(err)
	suite.Equal(bid.Accepted, persistedWinner.Status())

	persistedLoser, err := verifyUow.BidRepository().Get(ctx, loser.ID())
	suite.Require().NoError(err)
	suite.Equal(bid.Rejected, persistedLoser.Status())
}

// TestBidAcceptance_ConcurrentAccepts_OnlyOneWins races two acceptances of
// different bids on the same job. The FOR UPDATE row lock serializes them;
// the transaction that acquires the lock second sees the already awarded job
// and fails the status check.
func (suite *UnitOfWorkIntegrationTestSuite) TestBidAcceptance_ConcurrentAccepts_OnlyOneWins() {
	ctx := context.Background()

	testJob := createTestJob(suite.T())
	first := createTestBid(suite.T(), testJob.ID())
	second := createTestBid(suite.T(), testJob.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(seedUow.BidRepository().Add(ctx, first))
	suite.Require().NoError(seedUow.BidRepository().Add(ctx, second))

	accept := func(bidID kernel.UUID) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		lockedJob, err := uow.JobRepository().GetForUpdate(ctx, testJob.ID())
		if err != nil {
			return err
		}
		if err = lockedJob.AcceptBid(bidID); err != nil {
			return err
		}
		if err = uow.JobRepository().Update(ctx, lockedJob); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	results := make(chan error, 2)
	go func() { results <- accept(first.ID()) }()
	go func() { results <- accept(second.ID()) }()

	var committed int
	var loserErr error
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			loserErr = err
		} else {
			committed++
		}
	}

	suite.Equal(1, committed, "exactly one acceptance must commit")
	suite.Require().ErrorIs(loserErr, job.ErrInvalidTransition)

	verifyUow := suite.factory.Create()
	persistedJob, err := verifyUow.JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.BidAccepted, persistedJob.Status())
	suite.Require().NotNil(persistedJob.AcceptedBid())
	suite.True(first.ID().IsEqual(*persistedJob.AcceptedBid()) ||
		second.ID().IsEqual(*persistedJob.AcceptedBid()))
}

// TestBidAcceptance_RollbackLeavesNoPartialState verifies that a failure
// after some of the three writes leaves neither the job nor any bid changed.
func (suite *UnitOfWorkIntegrationTestSuite) TestBidAcceptance_RollbackLeavesNoPartialState() {
	ctx := context.Background()

	testJob := createTestJob(suite.T())
	winner := createTestBid(suite.T(), testJob.ID())

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.JobRepository().Add(ctx, testJob))
	suite.Require().NoError(seedUow.BidRepository().Add(ctx, winner))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedJob, err := uow.JobRepository().GetForUpdate(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(lockedJob.AcceptBid(winner.ID()))
	suite.Require().NoError(uow.JobRepository().Update(ctx, lockedJob))

	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	persistedJob, err := verifyUow.JobRepository().Get(ctx, testJob.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Open, persistedJob.Status())
	suite.Nil(persistedJob.AcceptedBid())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation_BetweenTransactions() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	job1 := createTestJob(suite.T())
	job2 := createTestJob(suite.T())

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.JobRepository().Add(ctx, job1))
	suite.Require().NoError(uow2.JobRepository().Add(ctx, job2))

	_, err := uow1.JobRepository().Get(ctx, job2.ID())
	suite.Require().Error(err, "uncommitted rows must not leak between transactions")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err = verifyUow.JobRepository().Get(ctx, job1.ID())
	suite.Require().NoError(err)

	_, err = verifyUow.JobRepository().Get(ctx, job2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_OperationsAutoCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPosition := createTestPosition(suite.T())
	suite.Require().NoError(uow.PositionRepository().Upsert(ctx, testPosition))

	verifyUow := suite.factory.Create()
	retrieved, err := verifyUow.PositionRepository().Get(ctx, testPosition.CarrierID())
	suite.Require().NoError(err)
	suite.True(testPosition.CarrierID().IsEqual(retrieved.CarrierID()))
}

func createTestJob(t *testing.T) *job.Job {
	t.Helper()

	pickupPoint, err := kernel.NewGeoPoint(24.7136, 46.6753)
	if err != nil {
		t.Fatal(err)
	}
	pickup, err := job.NewWaypoint(pickupPoint, "warehouse 12")
	if err != nil {
		t.Fatal(err)
	}

	deliveryPoint, err := kernel.NewGeoPoint(21.4858, 39.1925)
	if err != nil {
		t.Fatal(err)
	}
	delivery, err := job.NewWaypoint(deliveryPoint, "port gate 3")
	if err != nil {
		t.Fatal(err)
	}

	testJob, err := job.NewJob(
		kernel.NewUUID(), kernel.NewUUID(), pickup, delivery, time.Now(), 1500, "flatbed")
	if err != nil {
		t.Fatal(err)
	}
	return testJob
}

func createTestBid(t *testing.T, jobID kernel.UUID) *bid.Bid {
	t.Helper()

	testBid, err := bid.NewBid(kernel.NewUUID(), jobID, kernel.NewUUID(), 1200, "")
	if err != nil {
		t.Fatal(err)
	}
	return testBid
}

func createTestPosition(t *testing.T) *position.CarrierPosition {
	t.Helper()

	point, err := kernel.NewGeoPoint(24.7, 46.6)
	if err != nil {
		t.Fatal(err)
	}
	testPosition, err := position.NewCarrierPosition(kernel.NewUUID(), point, 0, 0, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return testPosition
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
