package bookings

import (
	"context"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher публикация событий администрирования (best-effort)
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, booking *domain.Booking, from domain.BookingStatus) error
	PublishBookingDeleted(ctx context.Context, id string) error
}

// MetricsRecorder бизнес-метрики администрирования
type MetricsRecorder interface {
	StatusChanged(from, to string)
	BookingDeleted()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
