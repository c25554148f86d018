package slot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go slotcal/internal/repositories/slot Repository

import (
	"context"
)

// Repository defines the interface for per-session booked-slot persistence
type Repository interface {
	// AddSlot appends a booked slot to the session's collection
	AddSlot(ctx context.Context, input *AddSlotInput) error

	// ListSlots retrieves the session's booked slots in insertion order
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)

	// RemoveSlot removes every slot matching the given start time and hour
	RemoveSlot(ctx context.Context, input *RemoveSlotInput) (*RemoveSlotOutput, error)

	// ClearSlots removes all slots for a session
	ClearSlots(ctx context.Context, input *ClearSlotsInput) error
}
