package messaging

import "context"

// Service is the interface for the messaging service. It produces the
// user-facing notification for each booking outcome.
type Service interface {
	// GetBookingConfirmedMessage returns the notification for a successful booking
	GetBookingConfirmedMessage(ctx context.Context, input *GetBookingConfirmedMessageInput) (*GetBookingConfirmedMessageOutput, error)

	// GetAlreadyBookedMessage returns the notification for a booking attempt on a taken hour
	GetAlreadyBookedMessage(ctx context.Context, input *GetAlreadyBookedMessageInput) (*GetAlreadyBookedMessageOutput, error)

	// GetTimePassedMessage returns the notification for a booking attempt on a past hour
	GetTimePassedMessage(ctx context.Context, input *GetTimePassedMessageInput) (*GetTimePassedMessageOutput, error)

	// GetCancellationMessage returns the notification for a cancellation
	GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error)
}
