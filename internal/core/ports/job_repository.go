package ports

import (
	"context"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no job with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate retrieves a job and locks its row for the duration of
	// the surrounding transaction. Concurrent callers serialize on the
	// lock, so only one mutation of the job proceeds at a time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllTrackedByCarrier retrieves the jobs whose accepted bid belongs
	// to the given carrier and whose status still involves movement, that
	// is BidAccepted or InTransit.
	GetAllTrackedByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*job.Job, error)
}
