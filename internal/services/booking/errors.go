package booking

// BookingError is a custom error type for booking-related errors
type BookingError string

// Error implements the error interface
func (e BookingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound   BookingError = "session not found"
	ErrHourOutOfRange    BookingError = "hour is outside the booking window"
	ErrSlotAlreadyBooked BookingError = "slot is already booked"
	ErrSlotTimePassed    BookingError = "slot time has passed"
	ErrNilConfig         BookingError = "config cannot be nil"
	ErrNilSessionRepo    BookingError = "session repository cannot be nil"
	ErrNilSlotRepo       BookingError = "slot repository cannot be nil"
	ErrNilClock          BookingError = "clock cannot be nil"
	ErrNilUUIDGenerator  BookingError = "UUID generator cannot be nil"
)
