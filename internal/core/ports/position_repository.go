package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/position"
)

// PositionRepository defines the persistence contract for carrier positions.
// One row per carrier; writes replace the previous report.
type PositionRepository interface {
	// Upsert stores the position, inserting the carrier's row on first
	// report and replacing it afterwards.
	Upsert(ctx context.Context, aggregate *position.CarrierPosition) error

	// Get retrieves the latest position of a carrier.
	// Returns errs.ObjectNotFoundError when the carrier never reported.
	Get(ctx context.Context, carrierID kernel.UUID) (*position.CarrierPosition, error)

	// GetAllOnline retrieves the latest position of every online carrier.
	GetAllOnline(ctx context.Context) ([]*position.CarrierPosition, error)

	// GetAllStale retrieves online carriers whose latest report is older
	// than the given cutoff. Used by the offline sweeper.
	GetAllStale(ctx context.Context, cutoff time.Time) ([]*position.CarrierPosition, error)
}
