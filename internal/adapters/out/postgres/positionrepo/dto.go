// Package positionrepo provides data transfer objects and mapping functions
// for carrier position persistence. The table holds one row per carrier,
// replaced in place on every report.
package positionrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/position"

	"github.com/google/uuid"
)

// PositionDTO represents the database structure for persisting carrier positions.
type PositionDTO struct {
	CarrierID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude   float64
	Longitude  float64
	HeadingDeg float64
	SpeedKmh   float64
	Online     bool `gorm:"index"`
	RecordedAt time.Time
}

// TableName specifies the database table name for carrier positions.
func (PositionDTO) TableName() string {
	return "carrier_positions"
}

func fromDomain(aggregate *position.CarrierPosition) PositionDTO {
	return PositionDTO{
		CarrierID:  aggregate.CarrierID().Bytes(),
		Latitude:   aggregate.Point().Latitude(),
		Longitude:  aggregate.Point().Longitude(),
		HeadingDeg: aggregate.HeadingDeg(),
		SpeedKmh:   aggregate.SpeedKmh(),
		Online:     aggregate.IsOnline(),
		RecordedAt: aggregate.RecordedAt(),
	}
}

func toDomain(dto PositionDTO) (*position.CarrierPosition, error) {
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return position.RestoreCarrierPosition(
		carrierID,
		point,
		dto.HeadingDeg,
		dto.SpeedKmh,
		dto.Online,
		dto.RecordedAt,
	)
}
