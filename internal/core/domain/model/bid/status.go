package bid

import (
	"errors"
	"fmt"
)

// ErrBidNotPending is returned when accepting or rejecting a bid that has
// already left the Pending state.
var ErrBidNotPending = errors.New("bid is not pending")

// Status represents the state of a carrier's bid on a job.
//
//	Pending ──> Accepted
//	   └──────> Rejected
//
// Both Accepted and Rejected are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every submitted bid.
	Pending

	// Accepted indicates the shipper chose this bid. At most one bid per job
	// ever reaches this status.
	Accepted

	// Rejected indicates the bid was declined, either explicitly or because
	// a competing bid was accepted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
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

// Validate checks that the Status is one of the defined bid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("bid status is invalid: %d", s)
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

// Accept transitions Pending to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: status is %s", ErrBidNotPending, s)
	}

	return Accepted, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: status is %s", ErrBidNotPending, s)
	}

	return Rejected, nil
}
