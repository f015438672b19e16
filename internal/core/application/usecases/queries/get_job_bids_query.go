package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetJobBidsQueryIsNotConstructed = errors.New(
	"GetJobBidsQuery must be created via NewGetJobBidsQuery constructor",
)

// GetJobBidsQuery retrieves every bid placed on one job, in submission order.
type GetJobBidsQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobBidsQuery creates a query to retrieve a job's bids.
func NewGetJobBidsQuery(jobID kernel.UUID) (GetJobBidsQuery, error) {
	query := GetJobBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setJobID(jobID); err != nil {
		return GetJobBidsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobBidsQueryIsNotConstructed)
}

// JobID returns the identifier of the job whose bids are requested.
func (q GetJobBidsQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *GetJobBidsQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

// GetJobBidsQueryResponse is the read model of a single bid.
type GetJobBidsQueryResponse struct {
	ID        kernel.UUID
	JobID     kernel.UUID
	CarrierID kernel.UUID
	Price     float64
	Notes     string
	Status    string
}
