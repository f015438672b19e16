package commands

import (
	"context"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// AdvanceJobCommandHandler moves jobs along the fulfillment path under the
// job's row lock, so concurrent advances serialize and the loser fails the
// expected-status check.
type AdvanceJobCommandHandler struct {
	uowFactory UoWFactory
	eventBus   ports.EventBus
}

// NewAdvanceJobCommandHandler creates a handler for job advancement operations.
func NewAdvanceJobCommandHandler(uowFactory UoWFactory, eventBus ports.EventBus) AdvanceJobCommandHandler {
	return AdvanceJobCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the job advancement command.
// Publishes JobTransitioned after the transaction commits; the event names
// the assigned carrier so both parties learn about the move.
func (h AdvanceJobCommandHandler) Handle(ctx context.Context, cmd AdvanceJobCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h AdvanceJobCommandHandler) handle(ctx context.Context, cmd AdvanceJobCommand) error {
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

	advancedJob, err := uow.JobRepository().GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = advancedJob.Advance(cmd.ExpectedFrom(), cmd.To()); err != nil {
		return err
	}

	if err = uow.JobRepository().Update(ctx, advancedJob); err != nil {
		return err
	}

	carrierID, err := assignedCarrier(ctx, uow, advancedJob)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicJobTransitioned, events.JobTransitioned{
		JobID:     advancedJob.ID(),
		ShipperID: advancedJob.ShipperID(),
		CarrierID: carrierID,
		From:      cmd.ExpectedFrom(),
		To:        advancedJob.Status(),
	})

	return nil
}

// assignedCarrier resolves the carrier behind the job's accepted bid, or nil
// when no bid has been accepted yet.
func assignedCarrier(ctx context.Context, uow UoW, j *job.Job) (*kernel.UUID, error) {
	bidID := j.AcceptedBid()
	if bidID == nil {
		return nil, nil
	}

	acceptedBid, err := uow.BidRepository().Get(ctx, *bidID)
	if err != nil {
		return nil, err
	}

	carrierID := acceptedBid.CarrierID()
	return &carrierID, nil
}
