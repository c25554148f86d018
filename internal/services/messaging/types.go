package messaging

import (
	"time"

	"slotcal/internal/models"
)

// GetBookingConfirmedMessageInput contains parameters for a booking confirmation
type GetBookingConfirmedMessageInput struct {
	// Date is the day the slot was booked on
	Date time.Time

	// Hour is the booked hour
	Hour int
}

// GetBookingConfirmedMessageOutput contains the resulting notification
type GetBookingConfirmedMessageOutput struct {
	Notification *models.Notification
}

// GetAlreadyBookedMessageInput contains parameters for an already-booked rejection
type GetAlreadyBookedMessageInput struct {
	// Date is the day of the rejected attempt
	Date time.Time

	// Hour is the hour that was already taken
	Hour int
}

// GetAlreadyBookedMessageOutput contains the resulting notification
type GetAlreadyBookedMessageOutput struct {
	Notification *models.Notification
}

// GetTimePassedMessageInput contains parameters for a time-passed rejection
type GetTimePassedMessageInput struct {
	// Date is the day of the rejected attempt
	Date time.Time

	// Hour is the hour whose start time has passed
	Hour int
}

// GetTimePassedMessageOutput contains the resulting notification
type GetTimePassedMessageOutput struct {
	Notification *models.Notification
}

// GetCancellationMessageInput contains parameters for a cancellation notice
type GetCancellationMessageInput struct {
	// Date is the day the booking was cancelled on
	Date time.Time

	// Hour is the cancelled hour
	Hour int
}

// GetCancellationMessageOutput contains the resulting notification
type GetCancellationMessageOutput struct {
	Notification *models.Notification
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
}
