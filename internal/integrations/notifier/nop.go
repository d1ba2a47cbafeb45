package notifier

import (
	"context"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, *domain.Booking) error { return nil }

func (NopPublisher) PublishStatusChanged(context.Context, *domain.Booking, domain.BookingStatus) error {
	return nil
}

func (NopPublisher) PublishBookingDeleted(context.Context, string) error { return nil }

func (NopPublisher) Close() error { return nil }
