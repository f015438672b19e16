package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveJobsQueryHandler reads active jobs straight from the database.
type GetActiveJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveJobsQueryHandler creates a handler for active job queries.
// Requires a GORM database connection for query execution.
func NewGetActiveJobsQueryHandler(db *gorm.DB) GetActiveJobsQueryHandler {
	return GetActiveJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal jobs.
// Results are sorted by requested date so the most urgent work comes first.
func (h GetActiveJobsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveJobsQuery,
) ([]GetActiveJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetActiveJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper_id,
			pickup_lat,
			pickup_lng,
			pickup_address,
			delivery_lat,
			delivery_lng,
			delivery_address,
			requested_date,
			weight_kg,
			equipment_type,
			status,
			accepted_bid_id
		FROM jobs
		WHERE status NOT IN (?, ?)
		ORDER BY requested_date, id
	`, int(job.Completed), int(job.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobResp GetActiveJobsQueryResponse
		var id, shipperID uuid.UUID
		var status int
		var acceptedBidID sql.Null[uuid.UUID]

		err = rows.Scan(
			&id,
			&shipperID,
			&jobResp.PickupLatitude,
			&jobResp.PickupLongitude,
			&jobResp.PickupAddress,
			&jobResp.DeliveryLatitude,
			&jobResp.DeliveryLongitude,
			&jobResp.DeliveryAddress,
			&jobResp.RequestedDate,
			&jobResp.WeightKg,
			&jobResp.EquipmentType,
			&status,
			&acceptedBidID,
		)
		if err != nil {
			return nil, err
		}
		jobResp.Status = job.Status(status).String()

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ID = jobID

		ownerID, idErr := kernel.UUIDFromBytes(shipperID[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ShipperID = ownerID

		if acceptedBidID.Valid {
			bidID, idErr := kernel.UUIDFromBytes(acceptedBidID.V[:])
			if idErr != nil {
				return nil, idErr
			}
			jobResp.AcceptedBidID = &bidID
		}

		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
