package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"slotcal/internal/models"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc     Service
	ctx     context.Context
	testDay time.Time
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
	s.testDay = time.Date(2024, 6, 10, 16, 0, 0, 0, time.Local)
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetBookingConfirmedMessage() {
	output, err := s.svc.GetBookingConfirmedMessage(s.ctx, &GetBookingConfirmedMessageInput{
		Date: s.testDay,
		Hour: 16,
	})
	s.Require().NoError(err)

	s.Equal(models.NotificationLevelSuccess, output.Notification.Level)
	s.Equal("Slot booked for 16:00 - 17:00 on Mon Jun 10 2024", output.Notification.Message)
}

func (s *MessagingServiceTestSuite) TestGetBookingConfirmedMessageLastHour() {
	output, err := s.svc.GetBookingConfirmedMessage(s.ctx, &GetBookingConfirmedMessageInput{
		Date: s.testDay,
		Hour: 23,
	})
	s.Require().NoError(err)

	// The last slot of the day runs to 24:00, matching the original widget
	s.Equal("Slot booked for 23:00 - 24:00 on Mon Jun 10 2024", output.Notification.Message)
}

func (s *MessagingServiceTestSuite) TestGetAlreadyBookedMessage() {
	output, err := s.svc.GetAlreadyBookedMessage(s.ctx, &GetAlreadyBookedMessageInput{
		Date: s.testDay,
		Hour: 16,
	})
	s.Require().NoError(err)

	s.Equal(models.NotificationLevelError, output.Notification.Level)
	s.Equal("Slot is already booked for 16:00 on Mon Jun 10 2024", output.Notification.Message)
}

func (s *MessagingServiceTestSuite) TestGetTimePassedMessage() {
	output, err := s.svc.GetTimePassedMessage(s.ctx, &GetTimePassedMessageInput{
		Date: s.testDay,
		Hour: 15,
	})
	s.Require().NoError(err)

	s.Equal(models.NotificationLevelError, output.Notification.Level)
	s.Equal("Cannot book a time that has passed.", output.Notification.Message)
}

func (s *MessagingServiceTestSuite) TestGetCancellationMessage() {
	output, err := s.svc.GetCancellationMessage(s.ctx, &GetCancellationMessageInput{
		Date: s.testDay,
		Hour: 16,
	})
	s.Require().NoError(err)

	s.Equal(models.NotificationLevelInfo, output.Notification.Level)
	s.Equal("Booking canceled for 16:00 - 17:00 on Mon Jun 10 2024", output.Notification.Message)
}
