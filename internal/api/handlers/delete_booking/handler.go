package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/middleware"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings"
)

const (
	msgDeleted          = "Booking deleted successfully"
	msgNotFound         = "бронирование не найдено"
	msgStoreUnavailable = "хранилище бронирований временно недоступно"
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

// Handle DELETE /api/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	admin := middleware.AdminName(r.Context())

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("DELETE /bookings/{id} - Store unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w, handlers.CodeStoreUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: booking_id=%s, admin=%s", bookingID, admin)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
