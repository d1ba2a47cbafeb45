package get_availability_range

import (
	"context"

	getRange "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/get_availability_range"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type AvailabilityRangeUseCase interface {
	Execute(ctx context.Context, start, end types.Date) (*getRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
