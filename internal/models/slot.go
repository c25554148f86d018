package models

import (
	"time"
)

// BookedSlot represents one reserved hour on the calendar
type BookedSlot struct {
	// Date is the slot's start timestamp (the booked day at Hour:00)
	Date time.Time

	// Hour is the hour-of-day the slot covers
	Hour int
}

// SlotStatus represents the display state of one hour in the daily window
type SlotStatus string

const (
	// SlotStatusBooked indicates the hour is already reserved
	SlotStatusBooked SlotStatus = "booked"

	// SlotStatusBookable indicates the hour is free and has not started yet
	SlotStatusBookable SlotStatus = "bookable"

	// SlotStatusExpired indicates the hour's start time has passed
	SlotStatusExpired SlotStatus = "expired"
)
