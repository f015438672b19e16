package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierPositionQueryHandler reads a single carrier's latest position.
type GetCarrierPositionQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierPositionQueryHandler creates a handler for single position queries.
// Requires a GORM database connection for query execution.
func NewGetCarrierPositionQueryHandler(db *gorm.DB) GetCarrierPositionQueryHandler {
	return GetCarrierPositionQueryHandler{db: db}
}

// Handle executes the query to retrieve the carrier's latest position.
// Returns errs.ObjectNotFoundError when the carrier never reported.
func (h GetCarrierPositionQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierPositionQuery,
) (GetCarrierPositionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierPositionQueryResponse{}, err
	}

	var positionResp GetCarrierPositionQueryResponse
	var carrierID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			carrier_id,
			latitude,
			longitude,
			heading_deg,
			speed_kmh,
			online,
			recorded_at
		FROM carrier_positions
		WHERE carrier_id = ?
	`, query.CarrierID().Bytes()).Row()

	err := row.Scan(
		&carrierID,
		&positionResp.Latitude,
		&positionResp.Longitude,
		&positionResp.HeadingDeg,
		&positionResp.SpeedKmh,
		&positionResp.Online,
		&positionResp.RecordedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCarrierPositionQueryResponse{},
			errs.NewObjectNotFoundError("carrierID", query.CarrierID())
	}
	if err != nil {
		return GetCarrierPositionQueryResponse{}, err
	}

	if positionResp.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
		return GetCarrierPositionQueryResponse{}, err
	}

	return positionResp, nil
}
