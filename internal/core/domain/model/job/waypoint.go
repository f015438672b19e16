package job

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrWaypointIsNotConstructed is returned when validating a zero-value Waypoint.
var ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError(
	"waypoint must be created via NewWaypoint constructor")

// WaypointKind distinguishes the two waypoints of a job.
type WaypointKind int

const (
	// WaypointUnknown is the invalid zero value.
	WaypointUnknown WaypointKind = iota

	// WaypointPickup is the loading point, relevant while the job is BidAccepted.
	WaypointPickup

	// WaypointDelivery is the drop-off point, relevant while the job is InTransit.
	WaypointDelivery
)

// String implements fmt.Stringer.
func (k WaypointKind) String() string {
	switch k {
	case WaypointPickup:
		return "Pickup"
	case WaypointDelivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}

// Validate checks that the kind is Pickup or Delivery.
func (k WaypointKind) Validate() error {
	if k != WaypointPickup && k != WaypointDelivery {
		return errs.NewValueIsInvalidError("waypoint kind")
	}
	return nil
}

// Waypoint is an immutable geographic stop of a job: coordinates plus the
// human-readable address shown to the actors. Waypoints are supplied at job
// creation and never change afterwards.
type Waypoint struct {
	point   kernel.GeoPoint
	address string

	guard guard.ConstructorGuard
}

// NewWaypoint creates a Waypoint from a validated point and a non-empty address.
func NewWaypoint(point kernel.GeoPoint, address string) (Waypoint, error) {
	if err := point.Validate(); err != nil {
		return Waypoint{}, err
	}
	if address == "" {
		return Waypoint{}, errs.NewValueIsRequiredError("address")
	}

	return Waypoint{
		point:   point,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Waypoint was created via NewWaypoint.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Point returns the waypoint coordinates.
func (w Waypoint) Point() kernel.GeoPoint {
	return w.point
}

// Address returns the human-readable address.
func (w Waypoint) Address() string {
	return w.address
}

// IsEqual reports whether two waypoints share coordinates and address.
func (w Waypoint) IsEqual(other Waypoint) (bool, error) {
	if err := errors.Join(w.Validate(), other.Validate()); err != nil {
		return false, err
	}

	samePoint, err := w.point.IsEqual(other.point)
	if err != nil {
		return false, err
	}

	return samePoint && w.address == other.address, nil
}
