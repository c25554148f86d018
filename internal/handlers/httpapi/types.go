package httpapi

import "time"

// loginRequest carries the login form fields. None of them are validated.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type sessionResponse struct {
	Username     string `json:"username"`
	SelectedDate string `json:"selectedDate"`
	DayBooked    bool   `json:"dayBooked"`
}

type selectDateRequest struct {
	// Date is the new selected date, formatted 2006-01-02
	Date string `json:"date"`
}

type selectDateResponse struct {
	SelectedDate string `json:"selectedDate"`
}

type notificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type slotRow struct {
	Hour   int       `json:"hour"`
	Start  time.Time `json:"start"`
	Status string    `json:"status"`
}

type slotsResponse struct {
	SelectedDate string    `json:"selectedDate"`
	Slots        []slotRow `json:"slots"`
}

type bookResponse struct {
	Notification notificationResponse `json:"notification"`
	Booked       bool                 `json:"booked"`
}

type cancelResponse struct {
	Notification notificationResponse `json:"notification"`
	Removed      int                  `json:"removed"`
}

type tileRow struct {
	Date      string `json:"date"`
	Occupancy string `json:"occupancy"`
	Marker    string `json:"marker"`
}

type calendarResponse struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Tiles     []tileRow `json:"tiles"`
	DayBooked bool      `json:"dayBooked"`
}

type errorResponse struct {
	Error string `json:"error"`
}
