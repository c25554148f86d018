package booking

import (
	"context"
	"fmt"
	"time"

	"slotcal/internal/common/clock"
	"slotcal/internal/common/uuid"
	"slotcal/internal/models"
	sessionRepo "slotcal/internal/repositories/session"
	slotRepo "slotcal/internal/repositories/slot"
	"slotcal/internal/schedule"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	slotRepo      slotRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new booking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		slotRepo:      cfg.SlotRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Login opens a new booking session. There is no credential check: any
// username, password and phone combination is accepted, including empty ones.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	now := s.clock.Now()

	session := &models.Session{
		ID:           s.uuidGenerator.NewUUID(),
		Username:     input.Username,
		Phone:        input.Phone,
		SelectedDate: now,
		CreatedAt:    now,
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginOutput{
		SessionID: session.ID,
		Session:   session,
	}, nil
}

// Logout closes a session, discarding its booked slots
func (s *service) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	err := s.slotRepo.ClearSlots(ctx, &slotRepo.ClearSlotsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear slots: %w", err)
	}

	err = s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	return &LogoutOutput{}, nil
}

// GetSession retrieves the session together with its day-booked flag
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	slots, err := s.listSlots(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:   session,
		DayBooked: schedule.DayBooked(slots, session.SelectedDate),
	}, nil
}

// SelectDate replaces the session's selected date. Any date is accepted.
func (s *service) SelectDate(ctx context.Context, input *SelectDateInput) (*SelectDateOutput, error) {
	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	err := s.sessionRepo.UpdateSelectedDate(ctx, &sessionRepo.UpdateSelectedDateInput{
		SessionID:    input.SessionID,
		SelectedDate: input.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update selected date: %w", err)
	}

	return &SelectDateOutput{
		SelectedDate: input.Date,
	}, nil
}

// BookSlot reserves an hour on the selected date. Preconditions are checked
// in order: the hour must not already be booked, and its start time must not
// have passed. Nothing is written when either check fails.
func (s *service) BookSlot(ctx context.Context, input *BookSlotInput) (*BookSlotOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !schedule.HourInWindow(input.Hour) {
		return nil, ErrHourOutOfRange
	}

	slots, err := s.listSlots(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if schedule.SlotBooked(slots, session.SelectedDate, input.Hour) {
		return nil, ErrSlotAlreadyBooked
	}

	if !schedule.CanBook(session.SelectedDate, input.Hour, s.clock.Now()) {
		return nil, ErrSlotTimePassed
	}

	bookedSlot := &models.BookedSlot{
		Date: schedule.SlotAt(session.SelectedDate, input.Hour),
		Hour: input.Hour,
	}

	err = s.slotRepo.AddSlot(ctx, &slotRepo.AddSlotInput{
		SessionID: input.SessionID,
		Slot:      bookedSlot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add slot: %w", err)
	}

	return &BookSlotOutput{
		Slot: bookedSlot,
	}, nil
}

// CancelBooking releases an hour on the selected date. Unlike BookSlot there
// are no preconditions: cancelling an hour that was never booked, or one
// outside the window, removes nothing and still succeeds.
func (s *service) CancelBooking(ctx context.Context, input *CancelBookingInput) (*CancelBookingOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	start := schedule.SlotAt(session.SelectedDate, input.Hour)

	removeOutput, err := s.slotRepo.RemoveSlot(ctx, &slotRepo.RemoveSlotInput{
		SessionID: input.SessionID,
		Date:      start,
		Hour:      input.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove slot: %w", err)
	}

	return &CancelBookingOutput{
		Date:    start,
		Removed: removeOutput.Removed,
	}, nil
}

// GetSlots derives the slot list for the selected date. Every hour of the
// daily window gets a row; the status is evaluated fresh against the clock.
func (s *service) GetSlots(ctx context.Context, input *GetSlotsInput) (*GetSlotsOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	slots, err := s.listSlots(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	views := make([]*SlotView, 0, schedule.SlotsPerDay)
	for _, hour := range schedule.Hours() {
		status := models.SlotStatusExpired
		switch {
		case schedule.SlotBooked(slots, session.SelectedDate, hour):
			status = models.SlotStatusBooked
		case schedule.CanBook(session.SelectedDate, hour, now):
			status = models.SlotStatusBookable
		}

		views = append(views, &SlotView{
			Hour:   hour,
			Start:  schedule.SlotAt(session.SelectedDate, hour),
			Status: status,
		})
	}

	return &GetSlotsOutput{
		SelectedDate: session.SelectedDate,
		Slots:        views,
	}, nil
}

// GetCalendar derives a tile per day of the requested month. Tiles are
// recomputed from the live slot collection on every call.
func (s *service) GetCalendar(ctx context.Context, input *GetCalendarInput) (*GetCalendarOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	slots, err := s.listSlots(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	year, month := input.Year, input.Month
	if year == 0 {
		year = session.SelectedDate.Year()
		month = session.SelectedDate.Month()
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, session.SelectedDate.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	tiles := make([]*TileView, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, first.Location())
		occupancy := schedule.DayOccupancy(slots, date)

		tiles = append(tiles, &TileView{
			Date:      date,
			Occupancy: occupancy,
			Marker:    schedule.TileMarkerFor(occupancy),
		})
	}

	return &GetCalendarOutput{
		Year:              year,
		Month:             month,
		Tiles:             tiles,
		SelectedDayBooked: schedule.DayBooked(slots, session.SelectedDate),
	}, nil
}

// getSession loads a session, mapping a repository miss to ErrSessionNotFound
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// listSlots loads the session's booked slots
func (s *service) listSlots(ctx context.Context, sessionID string) ([]*models.BookedSlot, error) {
	listOutput, err := s.slotRepo.ListSlots(ctx, &slotRepo.ListSlotsInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	return listOutput.Slots, nil
}
