package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetCarrierPositionsQueryIsNotConstructed = errors.New(
	"GetCarrierPositionsQuery must be created via NewGetCarrierPositionsQuery constructor",
)

// GetCarrierPositionsQuery retrieves the latest position of every online
// carrier. Feeds the operator live map.
type GetCarrierPositionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarrierPositionsQuery creates a query to retrieve all online positions.
func NewGetCarrierPositionsQuery() GetCarrierPositionsQuery {
	return GetCarrierPositionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierPositionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierPositionsQueryIsNotConstructed)
}
