package check_availability

import (
	"context"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MetricsRecorder фиксирует неудачные проверки доступности
type MetricsRecorder interface {
	AvailabilityCheckFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
