package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a shipper's withdrawal of a job. Allowed from
// every non-terminal status; an accepted bid reference, if any, is kept for
// the audit trail.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	shipperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID, shipperID kernel.UUID) (CancelJobCommand, error) {
	command := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setShipperID(shipperID),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being cancelled.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ShipperID returns the identifier of the acting shipper.
func (c CancelJobCommand) ShipperID() kernel.UUID {
	return c.shipperID
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}

	c.shipperID = shipperID
	return nil
}
