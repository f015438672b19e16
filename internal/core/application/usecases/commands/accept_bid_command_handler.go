package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var (
	// ErrBidNotFound is returned when the bid does not exist or does not
	// belong to the job named in the command.
	ErrBidNotFound = errors.New("bid not found on this job")

	// ErrNotJobShipper is returned when the acting user does not own the job.
	ErrNotJobShipper = errors.New("only the job's shipper may decide on its bids")
)

// AcceptBidCommandHandler awards a job to a single bid.
//
// Acceptance touches three kinds of rows atomically: the job gains the
// accepted bid reference and moves to BidAccepted, the winning bid moves to
// Accepted, and every other pending bid on the job moves to Rejected. All
// writes happen in one transaction under the job's row lock, so two
// concurrent acceptances on the same job serialize and the loser fails on
// the status check. At most one bid per job ever reaches Accepted.
type AcceptBidCommandHandler struct {
	uowFactory UoWFactory
	eventBus   ports.EventBus
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance operations.
func NewAcceptBidCommandHandler(uowFactory UoWFactory, eventBus ports.EventBus) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the bid acceptance command.
// Publishes BidAccepted and JobTransitioned after the transaction commits.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h AcceptBidCommandHandler) handle(ctx context.Context, cmd AcceptBidCommand) error {
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

	jobRepo := uow.JobRepository()
	bidRepo := uow.BidRepository()

	awardedJob, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !awardedJob.ShipperID().IsEqual(cmd.ShipperID()) {
		return ErrNotJobShipper
	}

	winningBid, err := bidRepo.Get(ctx, cmd.BidID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrBidNotFound
	}
	if err != nil {
		return err
	}
	if !winningBid.JobID().IsEqual(awardedJob.ID()) {
		return ErrBidNotFound
	}

	losingBids, err := bidRepo.GetAllPendingByJob(ctx, awardedJob.ID())
	if err != nil {
		return err
	}

	statusBefore := awardedJob.Status()
	if err = awardedJob.AcceptBid(winningBid.ID()); err != nil {
		return err
	}

	if err = winningBid.Accept(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, awardedJob); err != nil {
		return err
	}

	if err = bidRepo.Update(ctx, winningBid); err != nil {
		return err
	}

	rejectedCarrierIDs := make([]kernel.UUID, 0, len(losingBids))
	for _, losingBid := range losingBids {
		if losingBid.IsEqual(winningBid) {
			continue
		}

		if err = losingBid.Reject(); err != nil {
			return err
		}

		if err = bidRepo.Update(ctx, losingBid); err != nil {
			return err
		}

		rejectedCarrierIDs = append(rejectedCarrierIDs, losingBid.CarrierID())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicBidAccepted, events.BidAccepted{
		BidID:             winningBid.ID(),
		JobID:             awardedJob.ID(),
		ShipperID:         awardedJob.ShipperID(),
		CarrierID:         winningBid.CarrierID(),
		RejectedCarrierID: rejectedCarrierIDs,
	})

	carrierID := winningBid.CarrierID()
	_ = h.eventBus.Publish(ctx, events.TopicJobTransitioned, events.JobTransitioned{
		JobID:     awardedJob.ID(),
		ShipperID: awardedJob.ShipperID(),
		CarrierID: &carrierID,
		From:      statusBefore,
		To:        awardedJob.Status(),
	})

	return nil
}
