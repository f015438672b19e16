// Package queries contains read-only operations over the storage.
// Query handlers bypass the domain model and read projections directly,
// following the CQRS split: commands go through aggregates, queries go
// through SQL.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetActiveJobsQueryIsNotConstructed = errors.New(
	"GetActiveJobsQuery must be created via NewGetActiveJobsQuery constructor",
)

// GetActiveJobsQuery retrieves every job that has not reached a terminal
// status. Used by the marketplace board and by carriers browsing for work.
type GetActiveJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveJobsQuery creates a query to retrieve active jobs.
func NewGetActiveJobsQuery() GetActiveJobsQuery {
	return GetActiveJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveJobsQueryIsNotConstructed)
}

// GetActiveJobsQueryResponse is the read model of an active job.
type GetActiveJobsQueryResponse struct {
	ID                kernel.UUID
	ShipperID         kernel.UUID
	PickupLatitude    float64
	PickupLongitude   float64
	PickupAddress     string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	DeliveryAddress   string
	RequestedDate     time.Time
	WeightKg          float64
	EquipmentType     string
	Status            string
	AcceptedBidID     *kernel.UUID
}
