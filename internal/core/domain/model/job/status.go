package job

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned whenever a status change is requested that the
// state machine does not allow. The wrapped message names the offending states.
var ErrInvalidTransition = errors.New("invalid job status transition")

// Status represents the lifecycle state of a shipment job.
// It implements a closed state machine:
//
//	Open ──> AwaitingBids ──> BidAccepted ──> InTransit ──> Completed
//	  │            │               │              │
//	  └────────────┴───────────────┴──────────────┴──> Cancelled
//
// A bid submission moves Open to AwaitingBids (idempotent on AwaitingBids);
// accepting a bid is allowed from Open or AwaitingBids; Completed and Cancelled
// are terminal. Any other transition fails with ErrInvalidTransition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of a freshly created job with no bids yet.
	Open

	// AwaitingBids indicates at least one bid has been submitted.
	AwaitingBids

	// BidAccepted indicates the shipper accepted a bid; the assigned carrier
	// is expected to head to the pickup waypoint.
	BidAccepted

	// InTransit indicates the carrier confirmed the start of the trip and is
	// moving toward the delivery waypoint.
	InTransit

	// Completed indicates the carrier confirmed delivery. Terminal.
	Completed

	// Cancelled is reachable from any non-terminal status. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Open:         "Open",
		AwaitingBids: "AwaitingBids",
		BidAccepted:  "BidAccepted",
		InTransit:    "InTransit",
		Completed:    "Completed",
		Cancelled:    "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:         "Open",
		AwaitingBids: "AwaitingBids",
		BidAccepted:  "BidAccepted",
		InTransit:    "InTransit",
		Completed:    "Completed",
		Cancelled:    "Cancelled",
	}
}

// StatusFromString maps the textual form back to a Status.
// Returns Unknown for unrecognized input.
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value;
// invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ReceiveBid transitions the status on bid submission.
//
// Valid transitions:
//   - Open -> AwaitingBids
//   - AwaitingBids -> AwaitingBids (idempotent)
func (s Status) ReceiveBid() (Status, error) {
	if s != Open && s != AwaitingBids {
		return 0, fmt.Errorf("%w: cannot receive bid in status %s", ErrInvalidTransition, s)
	}

	return AwaitingBids, nil
}

// AcceptBid transitions the status when the shipper accepts a bid.
//
// Valid transitions:
//   - Open -> BidAccepted
//   - AwaitingBids -> BidAccepted
func (s Status) AcceptBid() (Status, error) {
	if s != Open && s != AwaitingBids {
		return 0, fmt.Errorf("%w: cannot accept bid in status %s", ErrInvalidTransition, s)
	}

	return BidAccepted, nil
}

// TransitionTo performs the generic guarded carrier-driven transition.
//
// Valid transitions:
//   - BidAccepted -> InTransit (carrier confirms start)
//   - InTransit -> Completed (carrier confirms delivery)
func (s Status) TransitionTo(to Status) (Status, error) {
	if (s == BidAccepted && to == InTransit) || (s == InTransit && to == Completed) {
		return to, nil
	}

	return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot cancel in terminal status %s", ErrInvalidTransition, s)
	}

	return Cancelled, nil
}

// ValidateCanHaveAcceptedBid validates consistency between the status and the
// presence of an accepted bid reference.
//
// Business rules:
//   - Open and AwaitingBids jobs must not reference an accepted bid
//   - BidAccepted, InTransit and Completed jobs must reference one
//   - Cancelled jobs may carry the reference if a bid had been accepted
//     before cancellation (the reference is never cleared)
func (s Status) ValidateCanHaveAcceptedBid(hasAcceptedBid bool) error {
	if hasAcceptedBid && (s == Open || s == AwaitingBids) {
		return fmt.Errorf("%w: %s must not reference an accepted bid", ErrInvalidTransition, s)
	}

	if !hasAcceptedBid && (s == BidAccepted || s == InTransit || s == Completed) {
		return fmt.Errorf("%w: %s requires an accepted bid", ErrInvalidTransition, s)
	}

	return nil
}
