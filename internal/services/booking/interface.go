package booking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go slotcal/internal/services/booking Service

import "context"

// Service defines the interface for booking session operations
type Service interface {
	// Login opens a new booking session. Credentials are never validated.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout closes a session and discards its state
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// GetSession retrieves the current session view
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SelectDate replaces the session's selected date unconditionally
	SelectDate(ctx context.Context, input *SelectDateInput) (*SelectDateOutput, error)

	// BookSlot reserves an hour on the selected date
	BookSlot(ctx context.Context, input *BookSlotInput) (*BookSlotOutput, error)

	// CancelBooking releases an hour on the selected date
	CancelBooking(ctx context.Context, input *CancelBookingInput) (*CancelBookingOutput, error)

	// GetSlots derives the slot list for the selected date
	GetSlots(ctx context.Context, input *GetSlotsInput) (*GetSlotsOutput, error)

	// GetCalendar derives the month-view tile markers
	GetCalendar(ctx context.Context, input *GetCalendarInput) (*GetCalendarOutput, error)
}
