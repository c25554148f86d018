package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"slotcal/internal/models"
	"slotcal/internal/notifier"
	"slotcal/internal/schedule"
	"slotcal/internal/services/booking"
	bookingMocks "slotcal/internal/services/booking/mocks"
	"slotcal/internal/services/messaging"
)

// captureSink records dispatched notifications for assertions
type captureSink struct {
	notifications []*models.Notification
}

func (c *captureSink) Notify(_ context.Context, n *models.Notification) error {
	c.notifications = append(c.notifications, n)
	return nil
}

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *bookingMocks.MockService
	sink        *captureSink
	router      http.Handler

	testDay     time.Time
	testToken   string
	testSession *models.Session
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = bookingMocks.NewMockService(s.mockCtrl)
	s.sink = &captureSink{}

	messenger, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	handler, err := New(&Config{
		BookingService: s.mockService,
		Messenger:      messenger,
		Sinks:          []notifier.Sink{s.sink},
	})
	s.Require().NoError(err)
	s.router = handler.Routes()

	s.testDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	s.testToken = "test-session-token"
	s.testSession = &models.Session{
		ID:           s.testToken,
		Username:     "test-user",
		SelectedDate: s.testDay,
		CreatedAt:    s.testDay,
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) request(method, path, body string, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if withToken {
		req.Header.Set(sessionTokenHeader, s.testToken)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestLogin() {
	s.mockService.EXPECT().
		Login(gomock.Any(), &booking.LoginInput{
			Username: "test-user",
			Password: "secret",
			Phone:    "555-0100",
		}).
		Return(&booking.LoginOutput{
			SessionID: s.testToken,
			Session:   s.testSession,
		}, nil)

	rec := s.request(http.MethodPost, "/api/login",
		`{"username":"test-user","password":"secret","phone":"555-0100"}`, false)

	s.Equal(http.StatusOK, rec.Code)

	var resp loginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.testToken, resp.Token)
	s.Equal("2024-06-10", resp.Session.SelectedDate)
}

func (s *HandlerTestSuite) TestMissingTokenIsUnauthorized() {
	rec := s.request(http.MethodGet, "/api/slots", "", false)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestBookSlotSuccess() {
	s.mockService.EXPECT().
		BookSlot(gomock.Any(), &booking.BookSlotInput{
			SessionID: s.testToken,
			Hour:      16,
		}).
		Return(&booking.BookSlotOutput{
			Slot: &models.BookedSlot{
				Date: schedule.SlotAt(s.testDay, 16),
				Hour: 16,
			},
		}, nil)

	rec := s.request(http.MethodPost, "/api/slots/16/book", "", true)

	s.Equal(http.StatusOK, rec.Code)

	var resp bookResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Booked)
	s.Equal("success", resp.Notification.Level)
	s.Equal("Slot booked for 16:00 - 17:00 on Mon Jun 10 2024", resp.Notification.Message)

	// The notification is mirrored to the sink
	s.Require().Len(s.sink.notifications, 1)
	s.Equal(models.NotificationLevelSuccess, s.sink.notifications[0].Level)
}

func (s *HandlerTestSuite) TestBookSlotAlreadyBooked() {
	s.mockService.EXPECT().
		BookSlot(gomock.Any(), gomock.Any()).
		Return(nil, booking.ErrSlotAlreadyBooked)
	s.mockService.EXPECT().
		GetSession(gomock.Any(), &booking.GetSessionInput{SessionID: s.testToken}).
		Return(&booking.GetSessionOutput{Session: s.testSession, DayBooked: true}, nil)

	rec := s.request(http.MethodPost, "/api/slots/16/book", "", true)

	s.Equal(http.StatusConflict, rec.Code)

	var resp bookResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Booked)
	s.Equal("error", resp.Notification.Level)
	s.Equal("Slot is already booked for 16:00 on Mon Jun 10 2024", resp.Notification.Message)
}

func (s *HandlerTestSuite) TestBookSlotTimePassed() {
	s.mockService.EXPECT().
		BookSlot(gomock.Any(), gomock.Any()).
		Return(nil, booking.ErrSlotTimePassed)

	rec := s.request(http.MethodPost, "/api/slots/15/book", "", true)

	s.Equal(http.StatusConflict, rec.Code)

	var resp bookResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("error", resp.Notification.Level)
	s.Equal("Cannot book a time that has passed.", resp.Notification.Message)
}

func (s *HandlerTestSuite) TestBookSlotInvalidHour() {
	rec := s.request(http.MethodPost, "/api/slots/abc/book", "", true)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCancelBookingAlwaysNotifies() {
	// Cancelling an hour that was never booked removes nothing but still
	// produces the info toast
	s.mockService.EXPECT().
		CancelBooking(gomock.Any(), &booking.CancelBookingInput{
			SessionID: s.testToken,
			Hour:      16,
		}).
		Return(&booking.CancelBookingOutput{
			Date:    schedule.SlotAt(s.testDay, 16),
			Removed: 0,
		}, nil)

	rec := s.request(http.MethodPost, "/api/slots/16/cancel", "", true)

	s.Equal(http.StatusOK, rec.Code)

	var resp cancelResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(0, resp.Removed)
	s.Equal("info", resp.Notification.Level)
	s.Equal("Booking canceled for 16:00 - 17:00 on Mon Jun 10 2024", resp.Notification.Message)
	s.Len(s.sink.notifications, 1)
}

func (s *HandlerTestSuite) TestGetSlots() {
	s.mockService.EXPECT().
		GetSlots(gomock.Any(), &booking.GetSlotsInput{SessionID: s.testToken}).
		Return(&booking.GetSlotsOutput{
			SelectedDate: s.testDay,
			Slots: []*booking.SlotView{
				{Hour: 15, Start: schedule.SlotAt(s.testDay, 15), Status: models.SlotStatusExpired},
				{Hour: 16, Start: schedule.SlotAt(s.testDay, 16), Status: models.SlotStatusBooked},
				{Hour: 17, Start: schedule.SlotAt(s.testDay, 17), Status: models.SlotStatusBookable},
			},
		}, nil)

	rec := s.request(http.MethodGet, "/api/slots", "", true)

	s.Equal(http.StatusOK, rec.Code)

	var resp slotsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2024-06-10", resp.SelectedDate)
	s.Require().Len(resp.Slots, 3)
	s.Equal("booked", resp.Slots[1].Status)
}

func (s *HandlerTestSuite) TestSelectDate() {
	newDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	s.mockService.EXPECT().
		SelectDate(gomock.Any(), &booking.SelectDateInput{
			SessionID: s.testToken,
			Date:      newDate,
		}).
		Return(&booking.SelectDateOutput{SelectedDate: newDate}, nil)

	rec := s.request(http.MethodPost, "/api/date", `{"date":"2024-07-01"}`, true)

	s.Equal(http.StatusOK, rec.Code)

	var resp selectDateResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2024-07-01", resp.SelectedDate)
}

func (s *HandlerTestSuite) TestSelectDateInvalid() {
	rec := s.request(http.MethodPost, "/api/date", `{"date":"June 10"}`, true)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetCalendar() {
	s.mockService.EXPECT().
		GetCalendar(gomock.Any(), &booking.GetCalendarInput{
			SessionID: s.testToken,
			Year:      2024,
			Month:     time.June,
		}).
		Return(&booking.GetCalendarOutput{
			Year:  2024,
			Month: time.June,
			Tiles: []*booking.TileView{
				{Date: s.testDay, Occupancy: models.OccupancyHalf, Marker: models.TileMarkerPartial},
			},
			SelectedDayBooked: true,
		}, nil)

	rec := s.request(http.MethodGet, "/api/calendar?year=2024&month=6", "", true)

	s.Equal(http.StatusOK, rec.Code)

	var resp calendarResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.DayBooked)
	s.Require().Len(resp.Tiles, 1)
	s.Equal("2024-06-10", resp.Tiles[0].Date)
	s.Equal("partial", resp.Tiles[0].Marker)
}

func (s *HandlerTestSuite) TestGetCalendarInvalidMonth() {
	rec := s.request(http.MethodGet, "/api/calendar?year=2024&month=13", "", true)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestExpiredSessionIsUnauthorized() {
	s.mockService.EXPECT().
		GetSlots(gomock.Any(), gomock.Any()).
		Return(nil, booking.ErrSessionNotFound)

	rec := s.request(http.MethodGet, "/api/slots", "", true)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
