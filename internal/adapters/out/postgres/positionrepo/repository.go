package positionrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/position"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPositionRepository implements PositionRepository using GORM.
type GormPositionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionRepository {
	return &GormPositionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert stores the carrier's position, inserting the row on first report
// and replacing every column afterwards.
func (r *GormPositionRepository) Upsert(
	ctx context.Context,
	aggregate *position.CarrierPosition,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "carrier_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.CarrierID(), aggregate)
	return nil
}

// Get retrieves the latest position of a carrier.
func (r *GormPositionRepository) Get(
	ctx context.Context,
	carrierID kernel.UUID,
) (*position.CarrierPosition, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	err := r.db.WithContext(ctx).First(&dto, "carrier_id = ?", carrierID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier position", carrierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOnline retrieves the latest position of every online carrier.
func (r *GormPositionRepository) GetAllOnline(
	ctx context.Context,
) ([]*position.CarrierPosition, error) {
	var dtos []PositionDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "online = ?", true).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllStale retrieves online carriers whose latest report predates the
// cutoff. The offline sweeper feeds these into MarkCarrierOffline commands.
func (r *GormPositionRepository) GetAllStale(
	ctx context.Context,
	cutoff time.Time,
) ([]*position.CarrierPosition, error) {
	var dtos []PositionDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "online = ? AND recorded_at < ?", true, cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PositionDTO) ([]*position.CarrierPosition, error) {
	positions := make([]*position.CarrierPosition, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, nil
}
