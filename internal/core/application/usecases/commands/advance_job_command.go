package commands

import (
	"errors"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAdvanceJobCommandIsNotConstructed = errors.New(
	"AdvanceJobCommand must be created via NewAdvanceJobCommand constructor",
)

// AdvanceJobCommand moves a job one step along the fulfillment path, either
// BidAccepted to InTransit or InTransit to Completed. The caller states the
// status it believes the job is in; a mismatch means someone else changed
// the job first and the command fails instead of guessing.
type AdvanceJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	expectedFrom job.Status
	to           job.Status

	guard guard.ConstructorGuard
}

// NewAdvanceJobCommand creates a command to advance a job's status.
func NewAdvanceJobCommand(jobID kernel.UUID, expectedFrom, to job.Status) (AdvanceJobCommand, error) {
	command := AdvanceJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setJobID(jobID),
		command.setStatuses(expectedFrom, to),
	); err != nil {
		return AdvanceJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceJobCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being advanced.
func (c AdvanceJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ExpectedFrom returns the status the caller expects the job to be in.
func (c AdvanceJobCommand) ExpectedFrom() job.Status {
	return c.expectedFrom
}

// To returns the target status.
func (c AdvanceJobCommand) To() job.Status {
	return c.to
}

func (c *AdvanceJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AdvanceJobCommand) setStatuses(expectedFrom, to job.Status) error {
	if err := expectedFrom.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	c.expectedFrom = expectedFrom
	c.to = to
	return nil
}
