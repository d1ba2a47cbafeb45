package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	switch v := args.Get(0).(type) {
	case func(context.Context, *domain.Booking) *domain.Booking:
		return v(ctx, booking), args.Error(1)
	case *domain.Booking:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) BookingCreated() { m.Called() }
func (m *mockMetrics) SlotConflict()   { m.Called() }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
