package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/events"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// RejectBidCommandHandler declines a single pending bid.
// Unlike acceptance this touches only the bid row, but the job lock is still
// taken so a concurrent acceptance cannot reject the same bid twice.
type RejectBidCommandHandler struct {
	uowFactory UoWFactory
	eventBus   ports.EventBus
}

// NewRejectBidCommandHandler creates a handler for bid rejection operations.
func NewRejectBidCommandHandler(uowFactory UoWFactory, eventBus ports.EventBus) RejectBidCommandHandler {
	return RejectBidCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the bid rejection command.
// Publishes BidRejected after the transaction commits.
func (h RejectBidCommandHandler) Handle(ctx context.Context, cmd RejectBidCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h RejectBidCommandHandler) handle(ctx context.Context, cmd RejectBidCommand) error {
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

	ownedJob, err := uow.JobRepository().GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !ownedJob.ShipperID().IsEqual(cmd.ShipperID()) {
		return ErrNotJobShipper
	}

	declinedBid, err := uow.BidRepository().Get(ctx, cmd.BidID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrBidNotFound
	}
	if err != nil {
		return err
	}
	if !declinedBid.JobID().IsEqual(ownedJob.ID()) {
		return ErrBidNotFound
	}

	if err = declinedBid.Reject(); err != nil {
		return err
	}

	if err = uow.BidRepository().Update(ctx, declinedBid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicBidRejected, events.BidRejected{
		BidID:     declinedBid.ID(),
		JobID:     ownedJob.ID(),
		CarrierID: declinedBid.CarrierID(),
	})

	return nil
}
