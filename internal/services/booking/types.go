package booking

import (
	"time"

	"slotcal/internal/common/clock"
	"slotcal/internal/common/uuid"
	"slotcal/internal/models"
	sessionRepo "slotcal/internal/repositories/session"
	slotRepo "slotcal/internal/repositories/slot"
)

// Config holds configuration for the booking service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	SlotRepo    slotRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// LoginInput contains the login form fields. None of them are validated;
// empty values are accepted.
type LoginInput struct {
	// Username is the username field
	Username string

	// Password is the password field, accepted and discarded
	Password string

	// Phone is the phone number field
	Phone string
}

// LoginOutput contains the result of opening a session
type LoginOutput struct {
	// SessionID is the token identifying the new session
	SessionID string

	// Session is the freshly created session
	Session *models.Session
}

// LogoutInput contains parameters for closing a session
type LogoutInput struct {
	// SessionID is the token of the session to close
	SessionID string
}

// LogoutOutput contains the result of closing a session
type LogoutOutput struct {
}

// GetSessionInput contains parameters for retrieving a session view
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session view
type GetSessionOutput struct {
	// Session is the stored session
	Session *models.Session

	// DayBooked indicates whether any slot is booked on the selected date
	DayBooked bool
}

// SelectDateInput contains parameters for changing the selected date
type SelectDateInput struct {
	SessionID string

	// Date is the new selected date; any date is accepted
	Date time.Time
}

// SelectDateOutput contains the result of changing the selected date
type SelectDateOutput struct {
	SelectedDate time.Time
}

// BookSlotInput contains parameters for reserving an hour
type BookSlotInput struct {
	SessionID string

	// Hour is the hour-of-day to book on the selected date
	Hour int
}

// BookSlotOutput contains the result of reserving an hour
type BookSlotOutput struct {
	// Slot is the newly booked slot
	Slot *models.BookedSlot
}

// CancelBookingInput contains parameters for releasing an hour
type CancelBookingInput struct {
	SessionID string

	// Hour is the hour-of-day to release on the selected date
	Hour int
}

// CancelBookingOutput contains the result of releasing an hour
type CancelBookingOutput struct {
	// Date is the slot start time the cancellation targeted
	Date time.Time

	// Removed is how many entries the cancellation filtered out; zero when
	// the hour was never booked, which is not an error
	Removed int
}

// SlotView is one row of the derived slot list
type SlotView struct {
	// Hour is the hour-of-day this row covers
	Hour int

	// Start is the slot's start timestamp on the selected date
	Start time.Time

	// Status is booked, bookable or expired
	Status models.SlotStatus
}

// GetSlotsInput contains parameters for deriving the slot list
type GetSlotsInput struct {
	SessionID string
}

// GetSlotsOutput contains the derived slot list
type GetSlotsOutput struct {
	// SelectedDate is the day the list was derived for
	SelectedDate time.Time

	// Slots holds one row per hour of the daily window, in order
	Slots []*SlotView
}

// TileView is the decoration for one day tile in month view
type TileView struct {
	// Date is the day the tile represents
	Date time.Time

	// Occupancy is the day's booked-slot category
	Occupancy models.Occupancy

	// Marker is the visual marker derived from the occupancy
	Marker models.TileMarker
}

// GetCalendarInput contains parameters for deriving month-view tiles
type GetCalendarInput struct {
	SessionID string

	// Year and Month select the rendered month; when Year is zero the
	// selected date's month is used
	Year  int
	Month time.Month
}

// GetCalendarOutput contains the derived month view
type GetCalendarOutput struct {
	// Year and Month identify the rendered month
	Year  int
	Month time.Month

	// Tiles holds one entry per day of the month, in order
	Tiles []*TileView

	// SelectedDayBooked indicates whether the selected date has any booking
	SelectedDayBooked bool
}
