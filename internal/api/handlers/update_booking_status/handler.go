package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/middleware"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "недопустимый переход статуса бронирования"
	msgStoreUnavailable   = "хранилище бронирований временно недоступно"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	admin := middleware.AdminName(r.Context())

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PUT /bookings/{id} - Invalid transition: booking_id=%s, to=%s, error=%v",
				bookingID, req.Status, err)
			handlers.RespondConflict(w, handlers.CodeInvalidTransition, msgInvalidTransition)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("PUT /bookings/{id} - Store unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w, handlers.CodeStoreUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Status updated: booking_id=%s, status=%s, admin=%s",
		bookingID, booking.Status, admin)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
