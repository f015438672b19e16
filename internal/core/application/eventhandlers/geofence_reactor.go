// Package eventhandlers contains the subscribers that react to domain
// events: geofence evaluation on position changes and user-facing
// notification dispatch. Handlers consume events from the bus and never
// block the publishing side.
package eventhandlers

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// JobSource supplies the jobs a carrier is currently hauling. Backed by the
// job repository outside of any transaction; geofence evaluation tolerates
// slightly stale reads.
type JobSource interface {
	GetAllTrackedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*job.Job, error)
}

// GeofenceReactor evaluates carrier positions against job waypoints and
// publishes ProximityReached crossings. It also retires tracker state when
// carriers go offline or jobs reach a terminal status, so stale inside
// flags cannot suppress future arrivals.
type GeofenceReactor struct {
	tracker  *services.ProximityTracker
	jobs     JobSource
	eventBus ports.EventBus
	logger   *slog.Logger
}

// NewGeofenceReactor creates a reactor around the given tracker.
func NewGeofenceReactor(
	tracker *services.ProximityTracker,
	jobs JobSource,
	eventBus ports.EventBus,
	logger *slog.Logger,
) *GeofenceReactor {
	return &GeofenceReactor{
		tracker:  tracker,
		jobs:     jobs,
		eventBus: eventBus,
		logger:   logger.With("component", "geofence-reactor"),
	}
}

// Start subscribes to the bus and processes events until ctx is cancelled.
func (r *GeofenceReactor) Start(ctx context.Context) error {
	envelopes, err := r.eventBus.Subscribe(ctx,
		events.TopicPositionChanged,
		events.TopicCarrierWentOffline,
		events.TopicJobTransitioned,
	)
	if err != nil {
		return err
	}

	go func() {
		for envelope := range envelopes {
			r.handle(ctx, envelope)
		}
	}()

	return nil
}

func (r *GeofenceReactor) handle(ctx context.Context, envelope ports.Envelope) {
	switch event := envelope.Payload.(type) {
	case events.PositionChanged:
		r.OnPositionChanged(ctx, event)
	case events.CarrierWentOffline:
		r.OnCarrierWentOffline(event)
	case events.JobTransitioned:
		r.OnJobTransitioned(event)
	default:
		r.logger.Warn("unexpected event payload", "topic", envelope.Topic)
	}
}

// OnPositionChanged evaluates the new position against the carrier's tracked
// jobs and publishes a ProximityReached event per crossing.
func (r *GeofenceReactor) OnPositionChanged(ctx context.Context, event events.PositionChanged) {
	// A sign-off report carries coordinates but no availability; the
	// matching CarrierWentOffline clears the tracker state.
	if !event.Online {
		return
	}

	point, err := kernel.NewGeoPoint(event.Latitude, event.Longitude)
	if err != nil {
		r.logger.Error("invalid coordinates in position event",
			"carrierId", event.CarrierID, "error", err)
		return
	}

	trackedJobs, err := r.jobs.GetAllTrackedByCarrier(ctx, event.CarrierID)
	if err != nil {
		r.logger.Error("failed to load tracked jobs",
			"carrierId", event.CarrierID, "error", err)
		return
	}

	crossings, err := r.tracker.Evaluate(event.CarrierID, point, trackedJobs)
	if err != nil {
		r.logger.Error("proximity evaluation failed",
			"carrierId", event.CarrierID, "error", err)
		return
	}

	for _, crossing := range crossings {
		r.logger.Info("carrier reached waypoint",
			"carrierId", event.CarrierID,
			"jobId", crossing.JobID,
			"waypoint", crossing.WaypointKind.String(),
			"distanceMeters", crossing.DistanceMeters)

		publishErr := r.eventBus.Publish(ctx, events.TopicProximityReached, events.ProximityReached{
			JobID:          crossing.JobID,
			ShipperID:      crossing.ShipperID,
			CarrierID:      event.CarrierID,
			WaypointKind:   crossing.WaypointKind,
			DistanceMeters: crossing.DistanceMeters,
			Approach:       crossing.Approach,
		})
		if publishErr != nil {
			r.logger.Error("failed to publish proximity event", "error", publishErr)
		}
	}
}

// OnCarrierWentOffline drops the carrier's tracker state so its next session
// starts outside every radius.
func (r *GeofenceReactor) OnCarrierWentOffline(event events.CarrierWentOffline) {
	r.tracker.ClearCarrier(event.CarrierID)
}

// OnJobTransitioned drops the job's tracker state once the job can no longer
// produce arrivals.
func (r *GeofenceReactor) OnJobTransitioned(event events.JobTransitioned) {
	if event.To.IsTerminal() {
		r.tracker.ClearJob(event.JobID)
	}
}
