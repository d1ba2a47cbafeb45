package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EventPublisher публикация событий о бронированиях (best-effort)
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// MetricsRecorder бизнес-метрики создания бронирований
type MetricsRecorder interface {
	BookingCreated()
	SlotConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator func() string
