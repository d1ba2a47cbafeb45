package get_availability_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	getRange "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/get_availability_range"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

const msgCheckFailed = "не удалось проверить доступность, попробуйте позже"

type Handler struct {
	useCase AvailabilityRangeUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability/range?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := parseDateParam(q.Get("start_date"), "start_date")
	if err != nil {
		h.logger.Warn("GET /availability/range - Invalid query: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}
	end, err := parseDateParam(q.Get("end_date"), "end_date")
	if err != nil {
		h.logger.Warn("GET /availability/range - Invalid query: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /availability/range - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, getRange.ErrAvailabilityCheckFailed):
			h.logger.Error("GET /availability/range - Check failed: %s..%s, error=%v", start, end, err)
			handlers.RespondServiceUnavailable(w, handlers.CodeAvailabilityCheckFailed, msgCheckFailed)

		default:
			h.logger.Error("GET /availability/range - Failed: %s..%s, error=%v", start, end, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/range - %s..%s, days=%d", start, end, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func parseDateParam(raw, field string) (types.Date, error) {
	if raw == "" {
		return types.Date{}, domain.NewValidationError(field, "is required")
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		return types.Date{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}
