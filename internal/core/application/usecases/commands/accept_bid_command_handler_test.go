package commands_test

import (
	"context"
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	awardedJob := testOpenJob(t, shipperID)
	winnerCarrier := kernel.NewUUID()
	loserCarrier := kernel.NewUUID()
	winner := testPendingBid(t, awardedJob.ID(), winnerCarrier)
	loser := testPendingBid(t, awardedJob.ID(), loserCarrier)
	require.NoError(t, awardedJob.ReceiveBid())

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), winner.ID(), shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("BidRepository").Return(bidRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	bidRepo.On("Get", mock.Anything, winner.ID()).Return(winner, nil).Once()
	bidRepo.On("GetAllPendingByJob", mock.Anything, awardedJob.ID()).
		Return([]*bid.Bid{winner, loser}, nil).Once()
	jobRepo.On("Update", mock.Anything, awardedJob).Return(nil).Once()
	bidRepo.On("Update", mock.Anything, winner).Return(nil).Once()
	bidRepo.On("Update", mock.Anything, loser).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	bus := newLenientEventBus()

	h := commands.NewAcceptBidCommandHandler(factory, bus)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, job.BidAccepted, awardedJob.Status())
	assert.True(t, winner.ID().IsEqual(*awardedJob.AcceptedBid()))
	assert.Equal(t, bid.Accepted, winner.Status())
	assert.Equal(t, bid.Rejected, loser.Status())

	require.Len(t, bus.published, 2)
	accepted, ok := bus.published[0].Payload.(events.BidAccepted)
	require.True(t, ok)
	assert.True(t, winner.ID().IsEqual(accepted.BidID))
	require.Len(t, accepted.RejectedCarrierID, 1)
	assert.True(t, loserCarrier.IsEqual(accepted.RejectedCarrierID[0]))
	assert.Equal(t, events.TopicJobTransitioned, bus.published[1].Topic)

	jobRepo.AssertExpectations(t)
	bidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptBidCommandHandler_Handle_NotJobShipper(t *testing.T) {
	ctx := t.Context()
	awardedJob := testOpenJob(t, kernel.NewUUID())
	winner := testPendingBid(t, awardedJob.ID(), kernel.NewUUID())

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), winner.ID(), kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	bus := newLenientEventBus()

	h := commands.NewAcceptBidCommandHandler(factory, bus)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotJobShipper)
	assert.Equal(t, job.Open, awardedJob.Status())
	assert.Empty(t, bus.published)
}

func TestAcceptBidCommandHandler_Handle_BidNotFound(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	awardedJob := testOpenJob(t, shipperID)
	missingBidID := kernel.NewUUID()

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), missingBidID, shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("BidRepository").Return(bidRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	bidRepo.On("Get", mock.Anything, missingBidID).
		Return(nil, errs.NewObjectNotFoundError("bidID", missingBidID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, newLenientEventBus())
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrBidNotFound)
}

func TestAcceptBidCommandHandler_Handle_BidOnAnotherJob(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	awardedJob := testOpenJob(t, shipperID)
	foreignBid := testPendingBid(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), foreignBid.ID(), shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("BidRepository").Return(bidRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	bidRepo.On("Get", mock.Anything, foreignBid.ID()).Return(foreignBid, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, newLenientEventBus())
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrBidNotFound)
	assert.Equal(t, job.Open, awardedJob.Status())
}

func TestAcceptBidCommandHandler_Handle_SecondAcceptanceFails(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	awardedJob := testOpenJob(t, shipperID)
	firstWinner := kernel.NewUUID()
	require.NoError(t, awardedJob.AcceptBid(firstWinner))
	challenger := testPendingBid(t, awardedJob.ID(), kernel.NewUUID())

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), challenger.ID(), shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("BidRepository").Return(bidRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	bidRepo.On("Get", mock.Anything, challenger.ID()).Return(challenger, nil).Once()
	bidRepo.On("GetAllPendingByJob", mock.Anything, awardedJob.ID()).
		Return([]*bid.Bid{challenger}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	bus := newLenientEventBus()

	h := commands.NewAcceptBidCommandHandler(factory, bus)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)
	assert.True(t, firstWinner.IsEqual(*awardedJob.AcceptedBid()))
	assert.Equal(t, bid.Pending, challenger.Status())
	assert.Empty(t, bus.published)
}

func TestAcceptBidCommandHandler_Handle_LockTimeout(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	jobID := kernel.NewUUID()

	cmd, err := commands.NewAcceptBidCommand(jobID, kernel.NewUUID(), shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	jobRepo.On("GetForUpdate", mock.Anything, jobID).
		Return(nil, context.DeadlineExceeded).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, newLenientEventBus())
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrTimeout)
}

func TestAcceptBidCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	awardedJob := testOpenJob(t, shipperID)
	winner := testPendingBid(t, awardedJob.ID(), kernel.NewUUID())

	cmd, err := commands.NewAcceptBidCommand(awardedJob.ID(), winner.ID(), shipperID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("BidRepository").Return(bidRepo)
	jobRepo.On("GetForUpdate", mock.Anything, awardedJob.ID()).Return(awardedJob, nil).Once()
	bidRepo.On("Get", mock.Anything, winner.ID()).Return(winner, nil).Once()
	bidRepo.On("GetAllPendingByJob", mock.Anything, awardedJob.ID()).
		Return([]*bid.Bid{winner}, nil).Once()
	jobRepo.On("Update", mock.Anything, awardedJob).Return(nil).Once()
	bidRepo.On("Update", mock.Anything, winner).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	bus := newLenientEventBus()

	h := commands.NewAcceptBidCommandHandler(factory, bus)
	require.Error(t, h.Handle(ctx, cmd))
	assert.Empty(t, bus.published)
}

func TestAcceptBidCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewAcceptBidCommandHandler(new(MockUoWFactory), newLenientEventBus())

	require.Error(t, h.Handle(ctx, commands.AcceptBidCommand{}))
}
