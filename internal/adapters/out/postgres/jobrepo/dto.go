// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. Implements the repository pattern for the job aggregate,
// handling conversion between domain entities and database rows.
package jobrepo

import (
	"time"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Both waypoints are embedded; the status index serves the marketplace
// board query and the geofence lookup by carrier goes through the accepted
// bid join.
type JobDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ShipperID     uuid.UUID   `gorm:"type:uuid;index"`
	Pickup        WaypointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery      WaypointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	RequestedDate time.Time
	WeightKg      float64
	EquipmentType string
	Status        int        `gorm:"index"`
	AcceptedBidID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// WaypointDTO represents an embedded waypoint within the job table.
type WaypointDTO struct {
	Lat     float64
	Lng     float64
	Address string
}

func fromDomain(aggregate *job.Job) JobDTO {
	var acceptedBidID *uuid.UUID
	if id := aggregate.AcceptedBid(); id != nil {
		raw := id.Bytes()
		acceptedBidID = &raw
	}

	return JobDTO{
		ID:            aggregate.ID().Bytes(),
		ShipperID:     aggregate.ShipperID().Bytes(),
		Pickup:        waypointFromDomain(aggregate.Pickup()),
		Delivery:      waypointFromDomain(aggregate.Delivery()),
		RequestedDate: aggregate.RequestedDate(),
		WeightKg:      aggregate.WeightKg(),
		EquipmentType: aggregate.EquipmentType(),
		Status:        int(aggregate.Status()),
		AcceptedBidID: acceptedBidID,
	}
}

func waypointFromDomain(wp job.Waypoint) WaypointDTO {
	return WaypointDTO{
		Lat:     wp.Point().Latitude(),
		Lng:     wp.Point().Longitude(),
		Address: wp.Address(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := waypointToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := waypointToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	var acceptedBidID *kernel.UUID
	if dto.AcceptedBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.AcceptedBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}

		acceptedBidID = &bidID
	}

	return job.RestoreJob(
		id,
		shipperID,
		pickup,
		delivery,
		dto.RequestedDate,
		dto.WeightKg,
		dto.EquipmentType,
		job.Status(dto.Status),
		acceptedBidID,
	)
}

func waypointToDomain(dto WaypointDTO) (job.Waypoint, error) {
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return job.Waypoint{}, err
	}

	return job.NewWaypoint(point, dto.Address)
}
