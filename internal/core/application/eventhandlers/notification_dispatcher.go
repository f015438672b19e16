package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"freight/internal/core/domain/events"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// maxLogEntries bounds the per-recipient notification log.
const maxLogEntries = 20

// Notification kinds as seen by clients.
const (
	KindProximityReached = "proximity.reached"
	KindBidSubmitted     = "bid.submitted"
	KindBidAccepted      = "bid.accepted"
	KindBidRejected      = "bid.rejected"
	KindJobTransitioned  = "job.transitioned"
	KindCarrierOffline   = "carrier.offline"
)

type dedupKey struct {
	recipientID kernel.UUID
	kind        string
	subject     string
}

// NotificationDispatcher turns domain events into role-scoped user
// notifications. Shippers hear about activity on their own jobs, carriers
// about decisions on their own bids and arrivals on their assigned jobs,
// operators about every arrival and about carriers dropping offline.
//
// Delivery is fire and forget through a NotificationSender; failures are
// logged and never propagate. Each (recipient, kind, subject) triple is
// delivered at most once per process lifetime, and the last entries per
// recipient are kept in a bounded in-memory log for the feed query.
type NotificationDispatcher struct {
	sender    ports.NotificationSender
	eventBus  ports.EventBus
	operators []kernel.UUID
	logger    *slog.Logger

	mu   sync.Mutex
	seen map[dedupKey]struct{}
	log  map[kernel.UUID][]ports.NotificationRecord
}

// NewNotificationDispatcher creates a dispatcher. The operator identifiers
// come from configuration; they receive fleet-level notifications.
func NewNotificationDispatcher(
	sender ports.NotificationSender,
	eventBus ports.EventBus,
	operators []kernel.UUID,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		sender:    sender,
		eventBus:  eventBus,
		operators: operators,
		logger:    logger.With("component", "notification-dispatcher"),
		seen:      make(map[dedupKey]struct{}),
		log:       make(map[kernel.UUID][]ports.NotificationRecord),
	}
}

// Start subscribes to the bus and dispatches events until ctx is cancelled.
func (d *NotificationDispatcher) Start(ctx context.Context) error {
	envelopes, err := d.eventBus.Subscribe(ctx,
		events.TopicProximityReached,
		events.TopicBidSubmitted,
		events.TopicBidAccepted,
		events.TopicBidRejected,
		events.TopicJobTransitioned,
		events.TopicCarrierWentOffline,
	)
	if err != nil {
		return err
	}

	go func() {
		for envelope := range envelopes {
			d.Dispatch(ctx, envelope)
		}
	}()

	return nil
}

// Dispatch routes one event to its recipients.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, envelope ports.Envelope) {
	switch event := envelope.Payload.(type) {
	case events.ProximityReached:
		// The subject carries the approach number so a genuine re-arrival
		// after leaving the radius is not swallowed as a duplicate.
		notification := ports.Notification{
			Kind:    KindProximityReached,
			Subject: fmt.Sprintf("%s:%s:%d", event.JobID, event.WaypointKind, event.Approach),
			Message: fmt.Sprintf("Carrier is within %.0f m of the %s waypoint",
				event.DistanceMeters, event.WaypointKind),
		}
		d.deliver(ctx, event.ShipperID, notification)
		d.deliver(ctx, event.CarrierID, notification)
		for _, operatorID := range d.operators {
			d.deliver(ctx, operatorID, notification)
		}

	case events.BidSubmitted:
		d.deliver(ctx, event.ShipperID, ports.Notification{
			Kind:    KindBidSubmitted,
			Subject: event.BidID.String(),
			Message: fmt.Sprintf("New bid of %.2f on your job", event.Price),
		})

	case events.BidAccepted:
		d.deliver(ctx, event.CarrierID, ports.Notification{
			Kind:    KindBidAccepted,
			Subject: event.BidID.String(),
			Message: "Your bid was accepted",
		})
		for _, rejectedID := range event.RejectedCarrierID {
			d.deliver(ctx, rejectedID, ports.Notification{
				Kind:    KindBidRejected,
				Subject: event.JobID.String(),
				Message: "The job was awarded to another carrier",
			})
		}

	case events.BidRejected:
		d.deliver(ctx, event.CarrierID, ports.Notification{
			Kind:    KindBidRejected,
			Subject: event.BidID.String(),
			Message: "Your bid was declined",
		})

	case events.JobTransitioned:
		notification := ports.Notification{
			Kind:    KindJobTransitioned,
			Subject: fmt.Sprintf("%s:%s", event.JobID, event.To),
			Message: fmt.Sprintf("Job moved from %s to %s", event.From, event.To),
		}
		d.deliver(ctx, event.ShipperID, notification)
		if event.CarrierID != nil {
			d.deliver(ctx, *event.CarrierID, notification)
		}

	case events.CarrierWentOffline:
		notification := ports.Notification{
			Kind:    KindCarrierOffline,
			Subject: fmt.Sprintf("%s:%d", event.CarrierID, event.LastSeen.Unix()),
			Message: "Carrier stopped reporting positions",
		}
		for _, operatorID := range d.operators {
			d.deliver(ctx, operatorID, notification)
		}

	default:
		d.logger.Warn("unexpected event payload", "topic", envelope.Topic)
	}
}

// Recent returns the recipient's notifications, newest first.
// Implements ports.NotificationLog.
func (d *NotificationDispatcher) Recent(recipientID kernel.UUID) []ports.NotificationRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries := d.log[recipientID]
	recent := make([]ports.NotificationRecord, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		recent = append(recent, entries[i])
	}

	return recent
}

func (d *NotificationDispatcher) deliver(
	ctx context.Context,
	recipientID kernel.UUID,
	notification ports.Notification,
) {
	key := dedupKey{recipientID: recipientID, kind: notification.Kind, subject: notification.Subject}

	d.mu.Lock()
	if _, dup := d.seen[key]; dup {
		d.mu.Unlock()
		return
	}
	d.seen[key] = struct{}{}

	record := ports.NotificationRecord{
		RecipientID:  recipientID,
		Notification: notification,
		SentAt:       time.Now(),
	}
	entries := append(d.log[recipientID], record)
	if len(entries) > maxLogEntries {
		entries = entries[len(entries)-maxLogEntries:]
	}
	d.log[recipientID] = entries
	d.mu.Unlock()

	if err := d.sender.Send(ctx, recipientID, notification); err != nil {
		d.logger.Warn("notification delivery failed",
			"recipientId", recipientID, "kind", notification.Kind, "error", err)
	}
}
