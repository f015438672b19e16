package commands

import (
	"context"

	"freight/internal/core/domain/model/job"
)

// CreateJobCommandHandler handles the business logic for posting new jobs.
// Jobs start in Open status and become visible to carriers immediately.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
// Uses a transaction to ensure the job is properly persisted or rolled back on error.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	return mapTimeout(h.handle(ctx, cmd))
}

func (h CreateJobCommandHandler) handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newJob, err := job.NewJob(
		cmd.JobID(),
		cmd.ShipperID(),
		cmd.Pickup(),
		cmd.Delivery(),
		cmd.RequestedDate(),
		cmd.WeightKg(),
		cmd.EquipmentType(),
	)
	if err != nil {
		return err
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
