package bid

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrBidIsNotConstructed is returned when a Bid instance was not created through
// NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid constructor")

// Bid is a carrier's priced offer against an open job. Bids are append-only:
// once submitted they are never edited, only accepted or rejected.
//
// Invariants:
//   - price is strictly positive
//   - status transitions only Pending -> Accepted or Pending -> Rejected
//   - a carrier holds at most one bid per job (enforced by the persistence
//     layer's unique index; the aggregate cannot see its siblings)
type Bid struct {
	id        kernel.UUID
	jobID     kernel.UUID
	carrierID kernel.UUID
	price     float64
	notes     string
	status    Status

	isConstructed bool
}

// NewBid creates a Bid in Pending status.
func NewBid(
	id kernel.UUID,
	jobID kernel.UUID,
	carrierID kernel.UUID,
	price float64,
	notes string,
) (*Bid, error) {
	b := &Bid{
		notes:         notes,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setJobID(jobID),
		b.setCarrierID(carrierID),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBid reconstructs a Bid from persistence with its stored status.
func RestoreBid(
	id kernel.UUID,
	jobID kernel.UUID,
	carrierID kernel.UUID,
	price float64,
	notes string,
	status Status,
) (*Bid, error) {
	b, err := NewBid(id, jobID, carrierID, price, notes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	b.status = status
	return b, nil
}

// Validate ensures the Bid was created through a constructor.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// IsEqual compares two bids by identifier.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// JobID returns the identifier of the job this bid targets.
func (b *Bid) JobID() kernel.UUID {
	return b.jobID
}

// CarrierID returns the identifier of the bidding carrier.
func (b *Bid) CarrierID() kernel.UUID {
	return b.carrierID
}

// Price returns the offered price.
func (b *Bid) Price() float64 {
	return b.price
}

// Notes returns the carrier's free-form notes.
func (b *Bid) Notes() string {
	return b.notes
}

// Status returns the current bid status.
func (b *Bid) Status() Status {
	return b.status
}

// Accept marks a Pending bid as Accepted.
func (b *Bid) Accept() error {
	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Reject marks a Pending bid as Rejected.
func (b *Bid) Reject() error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.jobID = id
	return nil
}

func (b *Bid) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.carrierID = id
	return nil
}

func (b *Bid) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is not greater than 0", price))
	}
	b.price = price
	return nil
}
