package events

import (
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// Topic names events on the bus. Subscribers pick the topics they care about;
// every event type maps to exactly one topic.
type Topic string

const (
	TopicPositionChanged    Topic = "position.changed"
	TopicCarrierWentOffline Topic = "carrier.went-offline"
	TopicProximityReached   Topic = "proximity.reached"
	TopicBidSubmitted       Topic = "bid.submitted"
	TopicBidAccepted        Topic = "bid.accepted"
	TopicBidRejected        Topic = "bid.rejected"
	TopicJobTransitioned    Topic = "job.transitioned"
)

// PositionChanged is published after every successful position write,
// including writes that store the same coordinates as before.
type PositionChanged struct {
	CarrierID  kernel.UUID `json:"carrierId"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	HeadingDeg float64     `json:"headingDeg"`
	SpeedKmh   float64     `json:"speedKmh"`
	Online     bool        `json:"online"`
	RecordedAt time.Time   `json:"recordedAt"`
}

// CarrierWentOffline is published when a carrier is marked offline. The last
// known coordinates stay readable; this event only reports the flag change.
type CarrierWentOffline struct {
	CarrierID kernel.UUID `json:"carrierId"`
	LastSeen  time.Time   `json:"lastSeen"`
}

// ProximityReached is published when a carrier crosses into the arrival
// radius of a job waypoint. It fires once per approach; the carrier has to
// leave the radius before the same waypoint can fire again.
type ProximityReached struct {
	JobID          kernel.UUID      `json:"jobId"`
	ShipperID      kernel.UUID      `json:"shipperId"`
	CarrierID      kernel.UUID      `json:"carrierId"`
	WaypointKind   job.WaypointKind `json:"waypointKind"`
	DistanceMeters float64          `json:"distanceMeters"`
	// Approach numbers the carrier's entries into this waypoint's radius,
	// starting at one. A second approach after leaving the radius is a new
	// arrival, not a repeat of the first.
	Approach int `json:"approach"`
}

// BidSubmitted is published when a carrier places a bid on an open job.
type BidSubmitted struct {
	BidID     kernel.UUID `json:"bidId"`
	JobID     kernel.UUID `json:"jobId"`
	ShipperID kernel.UUID `json:"shipperId"`
	CarrierID kernel.UUID `json:"carrierId"`
	Price     float64     `json:"price"`
}

// BidAccepted is published after the acceptance transaction commits. Losing
// carriers are listed so they can be notified about the implicit rejection.
type BidAccepted struct {
	BidID             kernel.UUID   `json:"bidId"`
	JobID             kernel.UUID   `json:"jobId"`
	ShipperID         kernel.UUID   `json:"shipperId"`
	CarrierID         kernel.UUID   `json:"carrierId"`
	RejectedCarrierID []kernel.UUID `json:"rejectedCarrierIds"`
}

// BidRejected is published when a shipper explicitly declines a single bid.
type BidRejected struct {
	BidID     kernel.UUID `json:"bidId"`
	JobID     kernel.UUID `json:"jobId"`
	CarrierID kernel.UUID `json:"carrierId"`
}

// JobTransitioned is published on every job status change, including
// cancellation.
type JobTransitioned struct {
	JobID     kernel.UUID  `json:"jobId"`
	ShipperID kernel.UUID  `json:"shipperId"`
	CarrierID *kernel.UUID `json:"carrierId,omitempty"`
	From      job.Status   `json:"from"`
	To        job.Status   `json:"to"`
}
