package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents a shipper's decision to award the job to one
// of the submitted bids.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	bidID     kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a bid.
// The shipper identifier is the acting user; the handler verifies it
// against the job's owner.
func NewAcceptBidCommand(jobID, bidID, shipperID kernel.UUID) (AcceptBidCommand, error) {
	command := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setBidID(bidID),
		command.setShipperID(shipperID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// JobID returns the identifier of the job being awarded.
func (c AcceptBidCommand) JobID() kernel.UUID {
	return c.jobID
}

// BidID returns the identifier of the winning bid.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ShipperID returns the identifier of the acting shipper.
func (c AcceptBidCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *AcceptBidCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *AcceptBidCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
