package notifier

import (
	"context"

	"slotcal/internal/models"
)

// Sink receives booking notifications for delivery outside the HTTP response,
// e.g. mirroring toasts to a chat channel. Delivery is best effort: a failing
// sink never fails the booking command that produced the notification.
type Sink interface {
	// Notify delivers one notification
	Notify(ctx context.Context, notification *models.Notification) error
}
