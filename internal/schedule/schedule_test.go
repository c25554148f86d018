package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotcal/internal/models"
)

func slotOn(day time.Time, hour int) *models.BookedSlot {
	return &models.BookedSlot{
		Date: SlotAt(day, hour),
		Hour: hour,
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, []int{15, 16, 17, 18, 19, 20, 21, 22, 23}, Hours())
	assert.Len(t, Hours(), SlotsPerDay)
}

func TestHourInWindow(t *testing.T) {
	assert.False(t, HourInWindow(14))
	assert.True(t, HourInWindow(15))
	assert.True(t, HourInWindow(23))
	assert.False(t, HourInWindow(24))
	assert.False(t, HourInWindow(0))
}

func TestSlotAtZeroesMinutesAndSeconds(t *testing.T) {
	date := time.Date(2024, 6, 10, 9, 42, 31, 500, time.Local)

	start := SlotAt(date, 16)

	assert.Equal(t, time.Date(2024, 6, 10, 16, 0, 0, 0, time.Local), start)
}

func TestSlotBooked(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	slots := []*models.BookedSlot{slotOn(day, 16)}

	assert.True(t, SlotBooked(slots, day, 16))
	assert.False(t, SlotBooked(slots, day, 17))

	// Same hour on a different day is not a match
	assert.False(t, SlotBooked(slots, day.AddDate(0, 0, 1), 16))
}

func TestCanBook(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 6, 10, 20, 30, 0, 0, time.Local)

	assert.False(t, CanBook(day, 18, now), "18:00 has passed at 20:30")
	assert.False(t, CanBook(day, 20, now), "a started hour is no longer bookable")
	assert.True(t, CanBook(day, 21, now), "21:00 is still in the future")

	// A future day is bookable at any hour, a past day at none
	assert.True(t, CanBook(day.AddDate(0, 0, 1), 15, now))
	assert.False(t, CanBook(day.AddDate(0, 0, -1), 23, now))
}

func TestCanBookIsStrict(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	exactlyAtStart := time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local)

	assert.False(t, CanBook(day, 18, exactlyAtStart))
}

func TestDayBooked(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	slots := []*models.BookedSlot{slotOn(day, 19)}

	assert.True(t, DayBooked(slots, day))
	assert.True(t, DayBooked(slots, time.Date(2024, 6, 10, 23, 59, 0, 0, time.Local)))
	assert.False(t, DayBooked(slots, day.AddDate(0, 0, 1)))
	assert.False(t, DayBooked(nil, day))
}

func TestDayOccupancy(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	var slots []*models.BookedSlot
	assert.Equal(t, models.OccupancyEmpty, DayOccupancy(slots, day))

	for _, hour := range Hours() {
		slots = append(slots, slotOn(day, hour))

		want := models.OccupancyHalf
		if len(slots) == SlotsPerDay {
			want = models.OccupancyFull
		}
		assert.Equal(t, want, DayOccupancy(slots, day), "count %d", len(slots))
	}

	// Slots on other days never count toward this day
	otherDay := append(slots, slotOn(day.AddDate(0, 0, 1), 15))
	assert.Equal(t, models.OccupancyFull, DayOccupancy(otherDay, day))
	assert.Equal(t, models.OccupancyHalf, DayOccupancy(otherDay, day.AddDate(0, 0, 1)))
}

func TestTileMarkerFor(t *testing.T) {
	assert.Equal(t, models.TileMarkerNone, TileMarkerFor(models.OccupancyEmpty))
	assert.Equal(t, models.TileMarkerPartial, TileMarkerFor(models.OccupancyHalf))
	assert.Equal(t, models.TileMarkerFull, TileMarkerFor(models.OccupancyFull))
}
