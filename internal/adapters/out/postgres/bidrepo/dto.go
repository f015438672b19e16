// Package bidrepo provides data transfer objects and mapping functions for
// bid persistence. The unique index on (job_id, carrier_id) backs the
// one-bid-per-carrier rule that the aggregate itself cannot enforce.
package bidrepo

import (
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bid aggregates.
type BidDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_bids_job_carrier"`
	CarrierID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_bids_job_carrier"`
	Price     float64
	Notes     string
	Status    int `gorm:"index"`
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:        aggregate.ID().Bytes(),
		JobID:     aggregate.JobID().Bytes(),
		CarrierID: aggregate.CarrierID().Bytes(),
		Price:     aggregate.Price(),
		Notes:     aggregate.Notes(),
		Status:    int(aggregate.Status()),
	}
}

func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, jobID, carrierID, dto.Price, dto.Notes, bid.Status(dto.Status))
}
