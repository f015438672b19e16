package ports

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for bid aggregates.
type BidRepository interface {
	// Add persists a new bid. Returns ErrDuplicateBid from the commands
	// package when the carrier already has a bid on the same job; the
	// storage enforces this with a unique index.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists changes to an existing bid.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid by its unique identifier.
	// Returns errs.ObjectNotFoundError when no bid with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetAllByJob retrieves every bid placed on the given job.
	GetAllByJob(ctx context.Context, jobID kernel.UUID) ([]*bid.Bid, error)

	// GetAllPendingByJob retrieves the bids on the given job that are
	// still in Pending status.
	GetAllPendingByJob(ctx context.Context, jobID kernel.UUID) ([]*bid.Bid, error)
}
