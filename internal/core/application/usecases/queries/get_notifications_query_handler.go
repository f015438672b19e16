package queries

import (
	"context"

	"freight/internal/core/ports"
)

// GetNotificationsQueryHandler reads a user's recent notifications from the
// dispatcher's in-memory log.
type GetNotificationsQueryHandler struct {
	log ports.NotificationLog
}

// NewGetNotificationsQueryHandler creates a handler for notification feed queries.
func NewGetNotificationsQueryHandler(log ports.NotificationLog) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{log: log}
}

// Handle executes the query to retrieve the recipient's recent notifications,
// newest first.
func (h GetNotificationsQueryHandler) Handle(
	_ context.Context,
	query GetNotificationsQuery,
) ([]ports.NotificationRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.log.Recent(query.RecipientID()), nil
}
