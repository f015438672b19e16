package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/ports"
)

// ErrDuplicateBid is returned when a carrier already has a bid on the job.
// Bids are append-only, so a second offer from the same carrier is refused
// rather than treated as an update.
var ErrDuplicateBid = errors.New("carrier already has a bid on this job")

// SubmitBidCommandHandler handles bid placement on open jobs.
// The first bid moves the job from Open to AwaitingBids; later bids leave
// the status untouched. Jobs past AwaitingBids refuse new bids.
type SubmitBidCommandHandler struct {
	uowFactory UoWFactory
	eventBus   ports.EventBus
}

// NewSubmitBidCommandHandler creates a handler for bid placement operations.
func NewSubmitBidCommandHandler(uowFactory UoWFactory, eventBus ports.EventBus) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the bid submission command.
// The job row is locked so a concurrent acceptance cannot slip in between
// the status check and the bid insert. Publishes BidSubmitted after commit.
func (h SubmitBidCommandHandler) Handle(ctx context.Context, cmd SubmitBidCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h SubmitBidCommandHandler) handle(ctx context.Context, cmd SubmitBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedJob, err := uow.JobRepository().GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = trackedJob.ReceiveBid(); err != nil {
		return err
	}

	newBid, err := bid.NewBid(cmd.BidID(), cmd.JobID(), cmd.CarrierID(), cmd.Price(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.BidRepository().Add(ctx, newBid); err != nil {
		return err
	}

	if err = uow.JobRepository().Update(ctx, trackedJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicBidSubmitted, events.BidSubmitted{
		BidID:     newBid.ID(),
		JobID:     trackedJob.ID(),
		ShipperID: trackedJob.ShipperID(),
		CarrierID: newBid.CarrierID(),
		Price:     newBid.Price(),
	})

	return nil
}
