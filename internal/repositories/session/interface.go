package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go slotcal/internal/repositories/session Repository

import (
	"context"

	"slotcal/internal/models"
)

// Repository defines the interface for session state persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by its token
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// UpdateSelectedDate replaces the session's selected date
	UpdateSelectedDate(ctx context.Context, input *UpdateSelectedDateInput) error

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
