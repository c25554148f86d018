package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"slotcal/internal/models"
	"slotcal/internal/notifier"
	"slotcal/internal/services/booking"
	"slotcal/internal/services/messaging"
)

const (
	// sessionTokenHeader carries the session token on authenticated requests
	sessionTokenHeader = "X-Session-Token"

	// dateLayout is the wire format for calendar dates
	dateLayout = "2006-01-02"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Handler serves the booking widget API
type Handler struct {
	bookingService booking.Service
	messenger      messaging.Service
	sinks          []notifier.Sink
	logger         *zap.Logger
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// BookingService executes booking commands and queries
	BookingService booking.Service

	// Messenger formats user-facing notifications
	Messenger messaging.Service

	// Sinks optionally mirror notifications out of band
	Sinks []notifier.Sink

	// Logger for request-level logging
	Logger *zap.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BookingService == nil {
		return nil, errors.New("booking service cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		bookingService: cfg.BookingService,
		messenger:      cfg.Messenger,
		sinks:          cfg.Sinks,
		logger:         logger,
	}, nil
}

// Routes builds the chi router for the API
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", sessionTokenHeader},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Post("/logout", h.handleLogout)
			r.Get("/session", h.handleGetSession)
			r.Post("/date", h.handleSelectDate)
			r.Get("/slots", h.handleGetSlots)
			r.Post("/slots/{hour}/book", h.handleBookSlot)
			r.Post("/slots/{hour}/cancel", h.handleCancelBooking)
			r.Get("/calendar", h.handleGetCalendar)
		})
	})

	return router
}

// requireSession rejects requests without a session token
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(sessionTokenHeader)
		if token == "" {
			h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session token"})
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionIDKey).(string)
	return id
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	// An unreadable body is treated as an empty form; login accepts anything
	_ = json.NewDecoder(r.Body).Decode(&req)

	output, err := h.bookingService.Login(r.Context(), &booking.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loginResponse{
		Token: output.SessionID,
		Session: sessionResponse{
			Username:     output.Session.Username,
			SelectedDate: output.Session.SelectedDate.Format(dateLayout),
		},
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, err := h.bookingService.Logout(r.Context(), &booking.LogoutInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.bookingService.GetSession(r.Context(), &booking.GetSessionInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, sessionResponse{
		Username:     output.Session.Username,
		SelectedDate: output.Session.SelectedDate.Format(dateLayout),
		DayBooked:    output.DayBooked,
	})
}

func (h *Handler) handleSelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	output, err := h.bookingService.SelectDate(r.Context(), &booking.SelectDateInput{
		SessionID: sessionID(r),
		Date:      date,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, selectDateResponse{
		SelectedDate: output.SelectedDate.Format(dateLayout),
	})
}

func (h *Handler) handleGetSlots(w http.ResponseWriter, r *http.Request) {
	output, err := h.bookingService.GetSlots(r.Context(), &booking.GetSlotsInput{
		SessionID: sessionID(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	rows := make([]slotRow, 0, len(output.Slots))
	for _, view := range output.Slots {
		rows = append(rows, slotRow{
			Hour:   view.Hour,
			Start:  view.Start,
			Status: string(view.Status),
		})
	}

	h.writeJSON(w, http.StatusOK, slotsResponse{
		SelectedDate: output.SelectedDate.Format(dateLayout),
		Slots:        rows,
	})
}

func (h *Handler) handleBookSlot(w http.ResponseWriter, r *http.Request) {
	hour, ok := h.parseHour(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	output, err := h.bookingService.BookSlot(ctx, &booking.BookSlotInput{
		SessionID: sessionID(r),
		Hour:      hour,
	})

	switch {
	case err == nil:
		msg, msgErr := h.messenger.GetBookingConfirmedMessage(ctx, &messaging.GetBookingConfirmedMessageInput{
			Date: output.Slot.Date,
			Hour: hour,
		})
		if msgErr != nil {
			h.writeServiceError(w, msgErr)
			return
		}

		h.dispatch(ctx, msg.Notification)
		h.writeJSON(w, http.StatusOK, bookResponse{
			Notification: toNotificationResponse(msg.Notification),
			Booked:       true,
		})

	case errors.Is(err, booking.ErrSlotAlreadyBooked):
		// The rejection message names the selected date, which the failed
		// command does not return
		sessionOutput, sessErr := h.bookingService.GetSession(ctx, &booking.GetSessionInput{
			SessionID: sessionID(r),
		})
		if sessErr != nil {
			h.writeServiceError(w, sessErr)
			return
		}

		msg, msgErr := h.messenger.GetAlreadyBookedMessage(ctx, &messaging.GetAlreadyBookedMessageInput{
			Date: sessionOutput.Session.SelectedDate,
			Hour: hour,
		})
		if msgErr != nil {
			h.writeServiceError(w, msgErr)
			return
		}

		h.dispatch(ctx, msg.Notification)
		h.writeJSON(w, http.StatusConflict, bookResponse{
			Notification: toNotificationResponse(msg.Notification),
		})

	case errors.Is(err, booking.ErrSlotTimePassed):
		msg, msgErr := h.messenger.GetTimePassedMessage(ctx, &messaging.GetTimePassedMessageInput{
			Hour: hour,
		})
		if msgErr != nil {
			h.writeServiceError(w, msgErr)
			return
		}

		h.dispatch(ctx, msg.Notification)
		h.writeJSON(w, http.StatusConflict, bookResponse{
			Notification: toNotificationResponse(msg.Notification),
		})

	default:
		h.writeServiceError(w, err)
	}
}

func (h *Handler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	hour, ok := h.parseHour(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	output, err := h.bookingService.CancelBooking(ctx, &booking.CancelBookingInput{
		SessionID: sessionID(r),
		Hour:      hour,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	// Cancellation always notifies, even when nothing was removed
	msg, msgErr := h.messenger.GetCancellationMessage(ctx, &messaging.GetCancellationMessageInput{
		Date: output.Date,
		Hour: hour,
	})
	if msgErr != nil {
		h.writeServiceError(w, msgErr)
		return
	}

	h.dispatch(ctx, msg.Notification)
	h.writeJSON(w, http.StatusOK, cancelResponse{
		Notification: toNotificationResponse(msg.Notification),
		Removed:      output.Removed,
	})
}

func (h *Handler) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	input := &booking.GetCalendarInput{
		SessionID: sessionID(r),
	}

	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid year"})
			return
		}

		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid month"})
			return
		}

		input.Year = year
		input.Month = time.Month(month)
	}

	output, err := h.bookingService.GetCalendar(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	tiles := make([]tileRow, 0, len(output.Tiles))
	for _, tile := range output.Tiles {
		tiles = append(tiles, tileRow{
			Date:      tile.Date.Format(dateLayout),
			Occupancy: string(tile.Occupancy),
			Marker:    string(tile.Marker),
		})
	}

	h.writeJSON(w, http.StatusOK, calendarResponse{
		Year:      output.Year,
		Month:     int(output.Month),
		Tiles:     tiles,
		DayBooked: output.SelectedDayBooked,
	})
}

// parseHour reads the hour path parameter; it only checks for a number, the
// window check belongs to the booking service
func (h *Handler) parseHour(w http.ResponseWriter, r *http.Request) (int, bool) {
	hour, err := strconv.Atoi(chi.URLParam(r, "hour"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hour"})
		return 0, false
	}

	return hour, true
}

// dispatch forwards a notification to the configured sinks. Sink failures are
// logged and swallowed; the user already has the notification in the response.
func (h *Handler) dispatch(ctx context.Context, notification *models.Notification) {
	for _, sink := range h.sinks {
		if err := sink.Notify(ctx, notification); err != nil {
			h.logger.Warn("failed to deliver notification",
				zap.String("level", string(notification.Level)),
				zap.Error(err))
		}
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, booking.ErrHourOutOfRange):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toNotificationResponse(n *models.Notification) notificationResponse {
	return notificationResponse{
		Level:   string(n.Level),
		Message: n.Message,
	}
}
