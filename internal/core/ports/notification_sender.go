package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Notification is a human-facing message addressed to a single user.
type Notification struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NotificationRecord is a delivered notification kept in the in-memory log.
type NotificationRecord struct {
	RecipientID  kernel.UUID  `json:"recipientId"`
	Notification Notification `json:"notification"`
	SentAt       time.Time    `json:"sentAt"`
}

// NotificationLog exposes the recent notifications kept per recipient.
// The log is bounded; old entries fall off as new ones arrive.
type NotificationLog interface {
	Recent(recipientID kernel.UUID) []NotificationRecord
}

// NotificationSender pushes notifications to connected users. Implementations
// drop the notification silently when the recipient has no live connection;
// the dispatcher's log remains the durable-enough record.
type NotificationSender interface {
	Send(ctx context.Context, recipientID kernel.UUID, notification Notification) error
}
