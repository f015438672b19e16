package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the recent notifications of one user.
// Notifications live in a bounded in-memory log, not in the database, so a
// restart empties the result. Clients treat this as a convenience feed.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query to retrieve a user's notifications.
func NewGetNotificationsQuery(recipientID kernel.UUID) (GetNotificationsQuery, error) {
	query := GetNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRecipientID(recipientID); err != nil {
		return GetNotificationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientID returns the identifier of the user whose feed is requested.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

func (q *GetNotificationsQuery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	q.recipientID = recipientID
	return nil
}
