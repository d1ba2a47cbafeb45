package check_availability

import (
	"context"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, date types.Date) (domain.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
