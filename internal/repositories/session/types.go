package session

import (
	"time"

	"slotcal/internal/models"
)

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type UpdateSelectedDateInput struct {
	SessionID    string
	SelectedDate time.Time
}

type DeleteSessionInput struct {
	SessionID string
}
