package slot

import (
	"time"

	"slotcal/internal/models"
)

type AddSlotInput struct {
	SessionID string
	Slot      *models.BookedSlot
}

type ListSlotsInput struct {
	SessionID string
}

type ListSlotsOutput struct {
	Slots []*models.BookedSlot
}

type RemoveSlotInput struct {
	SessionID string

	// Date is the slot start timestamp to match
	Date time.Time

	// Hour is the hour field to match
	Hour int
}

type RemoveSlotOutput struct {
	// Removed is the number of entries that were filtered out
	Removed int
}

type ClearSlotsInput struct {
	SessionID string
}
