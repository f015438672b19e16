package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRejectBidCommandIsNotConstructed = errors.New(
	"RejectBidCommand must be created via NewRejectBidCommand constructor",
)

// RejectBidCommand represents a shipper's explicit decline of a single bid.
// The job stays open to the remaining bids.
type RejectBidCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	bidID     kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBidCommand creates a command to reject a bid.
func NewRejectBidCommand(jobID, bidID, shipperID kernel.UUID) (RejectBidCommand, error) {
	command := RejectBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setBidID(bidID),
		command.setShipperID(shipperID),
	); err != nil {
		return RejectBidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBidCommand) Validate() error {
	return c.guard.Validate(ErrRejectBidCommandIsNotConstructed)
}

// JobID returns the identifier of the job the bid belongs to.
func (c RejectBidCommand) JobID() kernel.UUID {
	return c.jobID
}

// BidID returns the identifier of the bid being declined.
func (c RejectBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ShipperID returns the identifier of the acting shipper.
func (c RejectBidCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *RejectBidCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RejectBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *RejectBidCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
