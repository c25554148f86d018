package models

import (
	"time"
)

// Session represents one logged-in booking session
type Session struct {
	// ID is the opaque token identifying this session
	ID string

	// Username is whatever the user typed at login, echoed back untouched
	Username string

	// Phone is the phone number field from the login form, never validated
	Phone string

	// SelectedDate is the day whose slot list is currently displayed
	SelectedDate time.Time

	// CreatedAt is when the session was created
	CreatedAt time.Time
}
