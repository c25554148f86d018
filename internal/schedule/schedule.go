package schedule

import (
	"time"

	"slotcal/internal/models"
)

const (
	// FirstHour is the first bookable hour of the daily window
	FirstHour = 15

	// LastHour is the last bookable hour of the daily window
	LastHour = 23

	// SlotsPerDay is the fixed daily capacity, used as the "full" threshold
	SlotsPerDay = LastHour - FirstHour + 1
)

// Hours returns the ordered hours of the daily booking window
func Hours() []int {
	hours := make([]int, 0, SlotsPerDay)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// HourInWindow reports whether an hour falls inside the daily booking window
func HourInWindow(hour int) bool {
	return hour >= FirstHour && hour <= LastHour
}

// SlotAt returns the start timestamp of the slot at the given hour on the
// given day, with minutes and seconds zeroed
func SlotAt(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SlotBooked reports whether the hour on the selected day is already booked.
// A slot matches on both the full start timestamp and the hour field.
func SlotBooked(slots []*models.BookedSlot, selectedDate time.Time, hour int) bool {
	start := SlotAt(selectedDate, hour)
	for _, slot := range slots {
		if slot.Date.Equal(start) && slot.Hour == hour {
			return true
		}
	}
	return false
}

// CanBook reports whether the slot at the given hour on the selected day has
// not started yet. The comparison is strict: a slot stops being bookable the
// instant its start time is reached.
func CanBook(selectedDate time.Time, hour int, now time.Time) bool {
	return SlotAt(selectedDate, hour).After(now)
}

// DayBooked reports whether any slot is booked on the given calendar day
func DayBooked(slots []*models.BookedSlot, date time.Time) bool {
	for _, slot := range slots {
		if SameDay(slot.Date, date) {
			return true
		}
	}
	return false
}

// DayOccupancy categorizes a calendar day by its booked-slot count
func DayOccupancy(slots []*models.BookedSlot, date time.Time) models.Occupancy {
	count := 0
	for _, slot := range slots {
		if SameDay(slot.Date, date) {
			count++
		}
	}

	if count == SlotsPerDay {
		return models.OccupancyFull
	}
	if count > 0 {
		return models.OccupancyHalf
	}
	return models.OccupancyEmpty
}

// TileMarkerFor maps a day's occupancy to the marker drawn on its month tile
func TileMarkerFor(occupancy models.Occupancy) models.TileMarker {
	switch occupancy {
	case models.OccupancyHalf:
		return models.TileMarkerPartial
	case models.OccupancyFull:
		return models.TileMarkerFull
	default:
		return models.TileMarkerNone
	}
}
