package messaging

import (
	"context"
	"fmt"
	"time"

	"slotcal/internal/models"
)

// dateLayout renders dates the way the original widget did, e.g. "Mon Jun 10 2024"
const dateLayout = "Mon Jan 02 2006"

// service implements the Service interface
type service struct {
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// formatHourRange renders an hour as its slot interval, e.g. "16:00 - 17:00"
func formatHourRange(hour int) string {
	return fmt.Sprintf("%d:00 - %d:00", hour, hour+1)
}

// formatDate renders the day portion of a timestamp
func formatDate(date time.Time) string {
	return date.Format(dateLayout)
}

// GetBookingConfirmedMessage returns the notification for a successful booking
func (s *service) GetBookingConfirmedMessage(ctx context.Context, input *GetBookingConfirmedMessageInput) (*GetBookingConfirmedMessageOutput, error) {
	return &GetBookingConfirmedMessageOutput{
		Notification: &models.Notification{
			Level:   models.NotificationLevelSuccess,
			Message: fmt.Sprintf("Slot booked for %s on %s", formatHourRange(input.Hour), formatDate(input.Date)),
		},
	}, nil
}

// GetAlreadyBookedMessage returns the notification for a booking attempt on a taken hour
func (s *service) GetAlreadyBookedMessage(ctx context.Context, input *GetAlreadyBookedMessageInput) (*GetAlreadyBookedMessageOutput, error) {
	return &GetAlreadyBookedMessageOutput{
		Notification: &models.Notification{
			Level:   models.NotificationLevelError,
			Message: fmt.Sprintf("Slot is already booked for %d:00 on %s", input.Hour, formatDate(input.Date)),
		},
	}, nil
}

// GetTimePassedMessage returns the notification for a booking attempt on a past hour
func (s *service) GetTimePassedMessage(ctx context.Context, input *GetTimePassedMessageInput) (*GetTimePassedMessageOutput, error) {
	return &GetTimePassedMessageOutput{
		Notification: &models.Notification{
			Level:   models.NotificationLevelError,
			Message: "Cannot book a time that has passed.",
		},
	}, nil
}

// GetCancellationMessage returns the notification for a cancellation
func (s *service) GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error) {
	return &GetCancellationMessageOutput{
		Notification: &models.Notification{
			Level:   models.NotificationLevelInfo,
			Message: fmt.Sprintf("Booking canceled for %s on %s", formatHourRange(input.Hour), formatDate(input.Date)),
		},
	}, nil
}
