package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierPositionsQueryHandler reads all online carrier positions.
type GetCarrierPositionsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierPositionsQueryHandler creates a handler for live map queries.
// Requires a GORM database connection for query execution.
func NewGetCarrierPositionsQueryHandler(db *gorm.DB) GetCarrierPositionsQueryHandler {
	return GetCarrierPositionsQueryHandler{db: db}
}

// Handle executes the query to retrieve every online carrier's position.
func (h GetCarrierPositionsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierPositionsQuery,
) ([]GetCarrierPositionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	positions := make([]GetCarrierPositionQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			carrier_id,
			latitude,
			longitude,
			heading_deg,
			speed_kmh,
			online,
			recorded_at
		FROM carrier_positions
		WHERE online
		ORDER BY carrier_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var positionResp GetCarrierPositionQueryResponse
		var carrierID uuid.UUID

		err = rows.Scan(
			&carrierID,
			&positionResp.Latitude,
			&positionResp.Longitude,
			&positionResp.HeadingDeg,
			&positionResp.SpeedKmh,
			&positionResp.Online,
			&positionResp.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		if positionResp.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
			return nil, err
		}

		positions = append(positions, positionResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
