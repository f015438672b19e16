package queries

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobBidsQueryHandler reads a job's bids straight from the database.
type GetJobBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobBidsQueryHandler creates a handler for bid listing queries.
// Requires a GORM database connection for query execution.
func NewGetJobBidsQueryHandler(db *gorm.DB) GetJobBidsQueryHandler {
	return GetJobBidsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bids on a job.
// Results are sorted by creation order via the primary key.
func (h GetJobBidsQueryHandler) Handle(
	ctx context.Context,
	query GetJobBidsQuery,
) ([]GetJobBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]GetJobBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			job_id,
			carrier_id,
			price,
			notes,
			status
		FROM bids
		WHERE job_id = ?
		ORDER BY id
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bidResp GetJobBidsQueryResponse
		var id, jobID, carrierID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&jobID,
			&carrierID,
			&bidResp.Price,
			&bidResp.Notes,
			&status,
		)
		if err != nil {
			return nil, err
		}
		bidResp.Status = bid.Status(status).String()

		if bidResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if bidResp.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return nil, err
		}
		if bidResp.CarrierID, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
			return nil, err
		}

		bids = append(bids, bidResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
