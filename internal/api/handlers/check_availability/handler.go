package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCheckFailed        = "не удалось проверить доступность, попробуйте позже"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingDate == "" {
		h.logger.Warn("POST /availability - Missing booking_date")
		handlers.RespondValidationError(w, domain.NewValidationError("booking_date", "is required"))
		return
	}
	date, err := types.ParseDate(req.BookingDate)
	if err != nil {
		h.logger.Warn("POST /availability - Invalid booking_date %q: %v", req.BookingDate, err)
		handlers.RespondValidationError(w, domain.NewValidationError("booking_date", "must be a date in YYYY-MM-DD format"))
		return
	}

	day, err := h.useCase.Execute(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrAvailabilityCheckFailed):
			h.logger.Error("POST /availability - Check failed: date=%s, error=%v", date, err)
			response := FromDomain(day)
			response.Error = &handlers.ErrorBody{
				Code:    handlers.CodeAvailabilityCheckFailed,
				Message: msgCheckFailed,
			}
			handlers.RespondJSON(w, http.StatusServiceUnavailable, response)

		default:
			h.logger.Error("POST /availability - Failed to check availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability checked: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(day))
}
