package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCarrierPositionQueryIsNotConstructed = errors.New(
	"GetCarrierPositionQuery must be created via NewGetCarrierPositionQuery constructor",
)

// GetCarrierPositionQuery retrieves the latest known position of one
// carrier, online or not.
type GetCarrierPositionQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierPositionQuery creates a query to retrieve a carrier's position.
func NewGetCarrierPositionQuery(carrierID kernel.UUID) (GetCarrierPositionQuery, error) {
	query := GetCarrierPositionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCarrierID(carrierID); err != nil {
		return GetCarrierPositionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierPositionQueryIsNotConstructed)
}

// CarrierID returns the identifier of the carrier whose position is requested.
func (q GetCarrierPositionQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

func (q *GetCarrierPositionQuery) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	q.carrierID = carrierID
	return nil
}

// GetCarrierPositionQueryResponse is the read model of a carrier position.
type GetCarrierPositionQueryResponse struct {
	CarrierID  kernel.UUID
	Latitude   float64
	Longitude  float64
	HeadingDeg float64
	SpeedKmh   float64
	Online     bool
	RecordedAt time.Time
}
