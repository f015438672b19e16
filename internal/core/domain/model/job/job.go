package job

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created through
// NewJob or RestoreJob. This ensures all jobs are properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// Job is the aggregate root for a single transport work order (a shipment).
// It owns the lifecycle status and the reference to the accepted bid.
//
// Invariants:
//   - pickup and delivery waypoints are immutable once the job exists
//   - status transitions follow the closed state machine in Status
//   - acceptedBidID is set exactly once, at the transition to BidAccepted,
//     and is never cleared afterwards (it survives cancellation)
//   - weight must be positive
//
// All mutations go through validated methods; direct struct initialization is
// rejected by Validate.
type Job struct {
	id            kernel.UUID
	shipperID     kernel.UUID
	pickup        Waypoint
	delivery      Waypoint
	requestedDate time.Time
	weightKg      float64
	equipmentType string
	status        Status
	acceptedBidID *kernel.UUID

	isConstructed bool
}

// NewJob creates a Job in Open status with no accepted bid.
// Waypoint geometry is treated as an immutable input from the job-creation flow.
func NewJob(
	id kernel.UUID,
	shipperID kernel.UUID,
	pickup Waypoint,
	delivery Waypoint,
	requestedDate time.Time,
	weightKg float64,
	equipmentType string,
) (*Job, error) {
	j := &Job{
		requestedDate: requestedDate,
		equipmentType: equipmentType,
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setShipperID(shipperID),
		j.setWaypoints(pickup, delivery),
		j.setWeight(weightKg),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence, including its current status
// and accepted bid reference. Used by repositories; validates the same invariants
// as NewJob plus status/accepted-bid consistency.
func RestoreJob(
	id kernel.UUID,
	shipperID kernel.UUID,
	pickup Waypoint,
	delivery Waypoint,
	requestedDate time.Time,
	weightKg float64,
	equipmentType string,
	status Status,
	acceptedBidID *kernel.UUID,
) (*Job, error) {
	j, err := NewJob(id, shipperID, pickup, delivery, requestedDate, weightKg, equipmentType)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveAcceptedBid(acceptedBidID != nil); err != nil {
		return nil, err
	}
	if acceptedBidID != nil {
		if err = acceptedBidID.Validate(); err != nil {
			return nil, err
		}
	}

	j.status = status
	j.acceptedBidID = acceptedBidID
	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// ShipperID returns the identifier of the shipper who created the job.
func (j *Job) ShipperID() kernel.UUID {
	return j.shipperID
}

// Pickup returns the pickup waypoint.
func (j *Job) Pickup() Waypoint {
	return j.pickup
}

// Delivery returns the delivery waypoint.
func (j *Job) Delivery() Waypoint {
	return j.delivery
}

// RequestedDate returns the date the shipper requested transport for.
func (j *Job) RequestedDate() time.Time {
	return j.requestedDate
}

// WeightKg returns the shipment weight in kilograms.
func (j *Job) WeightKg() float64 {
	return j.weightKg
}

// EquipmentType returns the free-form equipment requirement (e.g. "flatbed").
func (j *Job) EquipmentType() string {
	return j.equipmentType
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// AcceptedBid returns the accepted bid's ID, or nil while no bid is accepted.
func (j *Job) AcceptedBid() *kernel.UUID {
	return j.acceptedBidID
}

// RelevantWaypoint returns the waypoint that matters for proximity detection in
// the current status: pickup while BidAccepted, delivery while InTransit.
// The boolean is false for every other status, in which case proximity
// evaluation is inert for this job.
func (j *Job) RelevantWaypoint() (Waypoint, WaypointKind, bool) {
	switch j.status {
	case BidAccepted:
		return j.pickup, WaypointPickup, true
	case InTransit:
		return j.delivery, WaypointDelivery, true
	default:
		return Waypoint{}, WaypointUnknown, false
	}
}

// ReceiveBid advances Open to AwaitingBids on bid submission.
// Idempotent while AwaitingBids; fails with ErrInvalidTransition otherwise.
func (j *Job) ReceiveBid() error {
	newStatus, err := j.status.ReceiveBid()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// AcceptBid records the accepted bid and moves the job to BidAccepted.
// Allowed from Open or AwaitingBids only; the accepted bid reference is set
// exactly once and never cleared.
func (j *Job) AcceptBid(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	if j.acceptedBidID != nil {
		return fmt.Errorf("%w: job already has an accepted bid", ErrInvalidTransition)
	}

	newStatus, err := j.status.AcceptBid()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.acceptedBidID = &bidID
	return nil
}

// Advance performs the generic guarded transition used by the carrier-facing
// "start trip" and "confirm delivery" actions. Fails with ErrInvalidTransition
// when the current status differs from expectedFrom or the pair is not allowed.
func (j *Job) Advance(expectedFrom Status, to Status) error {
	if j.status != expectedFrom {
		return fmt.Errorf("%w: job is %s, expected %s", ErrInvalidTransition, j.status, expectedFrom)
	}

	newStatus, err := j.status.TransitionTo(to)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel moves any non-terminal job to Cancelled. Bids are not touched; they
// remain in their last-known state for audit.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.shipperID = id
	return nil
}

func (j *Job) setWaypoints(pickup Waypoint, delivery Waypoint) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	j.pickup = pickup
	j.delivery = delivery
	return nil
}

func (j *Job) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	j.weightKg = weightKg
	return nil
}
