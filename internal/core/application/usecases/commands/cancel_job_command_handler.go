package commands

import (
	"context"

	"freight/internal/core/domain/events"
	"freight/internal/core/ports"
)

// CancelJobCommandHandler withdraws a job from the marketplace.
// Pending bids are left untouched; they simply become inert because the
// cancelled job refuses all further bid operations.
type CancelJobCommandHandler struct {
	uowFactory UoWFactory
	eventBus   ports.EventBus
}

// NewCancelJobCommandHandler creates a handler for job cancellation operations.
func NewCancelJobCommandHandler(uowFactory UoWFactory, eventBus ports.EventBus) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the job cancellation command.
// Publishes JobTransitioned after the transaction commits; a carrier already
// assigned through an accepted bid is named in the event so it learns about
// the cancellation.
func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h CancelJobCommandHandler) handle(ctx context.Context, cmd CancelJobCommand) error {
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

	cancelledJob, err := uow.JobRepository().GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !cancelledJob.ShipperID().IsEqual(cmd.ShipperID()) {
		return ErrNotJobShipper
	}

	statusBefore := cancelledJob.Status()
	if err = cancelledJob.Cancel(); err != nil {
		return err
	}

	if err = uow.JobRepository().Update(ctx, cancelledJob); err != nil {
		return err
	}

	carrierID, err := assignedCarrier(ctx, uow, cancelledJob)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicJobTransitioned, events.JobTransitioned{
		JobID:     cancelledJob.ID(),
		ShipperID: cancelledJob.ShipperID(),
		CarrierID: carrierID,
		From:      statusBefore,
		To:        cancelledJob.Status(),
	})

	return nil
}
