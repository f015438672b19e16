package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSubmitBidCommandIsNotConstructed = errors.New(
	"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
)

// SubmitBidCommand represents a carrier's priced offer on an open job.
//
// Example:
//
//	cmd, err := NewSubmitBidCommand(kernel.NewUUID(), jobID, carrierID, 950, "can load same day")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSubmitBidCommandHandler(uowFactory, bus)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDuplicateBid) {
//	    // carrier already has a bid on this job
//	}
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	bidID     kernel.UUID
	jobID     kernel.UUID
	carrierID kernel.UUID
	price     float64
	notes     string

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand creates a command to place a bid on a job.
// Validates identifiers and requires a strictly positive price.
func NewSubmitBidCommand(
	bidID kernel.UUID,
	jobID kernel.UUID,
	carrierID kernel.UUID,
	price float64,
	notes string,
) (SubmitBidCommand, error) {
	command := SubmitBidCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBidID(bidID),
		command.setJobID(jobID),
		command.setCarrierID(carrierID),
		command.setPrice(price),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

// BidID returns the identifier assigned to the new bid.
func (c SubmitBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// JobID returns the identifier of the target job.
func (c SubmitBidCommand) JobID() kernel.UUID {
	return c.jobID
}

// CarrierID returns the identifier of the bidding carrier.
func (c SubmitBidCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Price returns the offered price.
func (c SubmitBidCommand) Price() float64 {
	return c.price
}

// Notes returns the carrier's free-form notes, may be empty.
func (c SubmitBidCommand) Notes() string {
	return c.notes
}

func (c *SubmitBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	c.bidID = bidID
	return nil
}

func (c *SubmitBidCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *SubmitBidCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SubmitBidCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
