package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	createBooking "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotAlreadyTaken   = "выбранный слот на эту дату уже занят"
	msgStoreUnavailable   = "хранилище бронирований временно недоступно"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, createBooking.ErrSlotAlreadyTaken):
			h.logger.Warn("POST /bookings - Slot already taken: date=%s, slot=%s", req.BookingDate, req.TimeSlot)
			handlers.RespondConflict(w, handlers.CodeSlotAlreadyTaken, msgSlotAlreadyTaken)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, handlers.CodeStoreUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.BookingDate, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, slot=%s",
		result.ID, result.BookingDate, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
