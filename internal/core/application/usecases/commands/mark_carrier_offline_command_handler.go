package commands

import (
	"context"

	"freight/internal/core/domain/events"
	"freight/internal/core/ports"
)

// MarkCarrierOfflineCommandHandler flags carriers as offline while keeping
// their last coordinates readable. Marking an already offline carrier is a
// no-op and publishes nothing.
type MarkCarrierOfflineCommandHandler struct {
	uowFactory PositionUoWFactory
	eventBus   ports.EventBus
}

// NewMarkCarrierOfflineCommandHandler creates a handler for offline transitions.
func NewMarkCarrierOfflineCommandHandler(
	uowFactory PositionUoWFactory,
	eventBus ports.EventBus,
) MarkCarrierOfflineCommandHandler {
	return MarkCarrierOfflineCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the offline command.
// Publishes CarrierWentOffline after commit when the flag actually changed.
func (h MarkCarrierOfflineCommandHandler) Handle(ctx context.Context, cmd MarkCarrierOfflineCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h MarkCarrierOfflineCommandHandler) handle(ctx context.Context, cmd MarkCarrierOfflineCommand) error {
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

	positionRepo := uow.PositionRepository()

	carrierPosition, err := positionRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if !carrierPosition.MarkOffline() {
		return uow.Commit(ctx)
	}

	if err = positionRepo.Upsert(ctx, carrierPosition); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicCarrierWentOffline, events.CarrierWentOffline{
		CarrierID: carrierPosition.CarrierID(),
		LastSeen:  carrierPosition.RecordedAt(),
	})

	return nil
}
