package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/position"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// ReportPositionCommandHandler stores carrier position reports.
// The first report from a carrier creates its row; later reports replace it.
// Every successful write publishes PositionChanged, even when the
// coordinates did not move, because downstream proximity evaluation keys off
// report arrival rather than coordinate deltas. A sign-off report (online
// false) stores the flag with the coordinates and additionally publishes
// CarrierWentOffline.
type ReportPositionCommandHandler struct {
	uowFactory PositionUoWFactory
	eventBus   ports.EventBus
}

// NewReportPositionCommandHandler creates a handler for position report operations.
func NewReportPositionCommandHandler(
	uowFactory PositionUoWFactory,
	eventBus ports.EventBus,
) ReportPositionCommandHandler {
	return ReportPositionCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the position report command.
// The write is last-write-wins; a delayed report replaces a newer one.
func (h ReportPositionCommandHandler) Handle(ctx context.Context, cmd ReportPositionCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h ReportPositionCommandHandler) handle(ctx context.Context, cmd ReportPositionCommand) error {
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
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		carrierPosition, err = position.NewCarrierPosition(
			cmd.CarrierID(), cmd.Point(), cmd.HeadingDeg(), cmd.SpeedKmh(), cmd.RecordedAt())
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = carrierPosition.MoveTo(
			cmd.Point(), cmd.HeadingDeg(), cmd.SpeedKmh(), cmd.RecordedAt()); err != nil {
			return err
		}
	}

	if !cmd.Online() {
		carrierPosition.MarkOffline()
	}

	if err = positionRepo.Upsert(ctx, carrierPosition); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Notification delivery must not fail the command.
	_ = h.eventBus.Publish(ctx, events.TopicPositionChanged, events.PositionChanged{
		CarrierID:  carrierPosition.CarrierID(),
		Latitude:   carrierPosition.Point().Latitude(),
		Longitude:  carrierPosition.Point().Longitude(),
		HeadingDeg: carrierPosition.HeadingDeg(),
		SpeedKmh:   carrierPosition.SpeedKmh(),
		Online:     carrierPosition.IsOnline(),
		RecordedAt: carrierPosition.RecordedAt(),
	})

	if !carrierPosition.IsOnline() {
		_ = h.eventBus.Publish(ctx, events.TopicCarrierWentOffline, events.CarrierWentOffline{
			CarrierID: carrierPosition.CarrierID(),
			LastSeen:  carrierPosition.RecordedAt(),
		})
	}

	return nil
}
