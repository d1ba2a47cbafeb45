package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/middleware"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings"
)

const msgStoreUnavailable = "хранилище бронирований временно недоступно"

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

// Handle GET /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin := middleware.AdminName(r.Context())

	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("GET /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, handlers.CodeStoreUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings listed: count=%d, admin=%s", len(list), admin)
	handlers.RespondJSON(w, http.StatusOK, list)
}
