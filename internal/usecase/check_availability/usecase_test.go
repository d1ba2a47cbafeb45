package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

type countingMetrics struct {
	failures int
}

func (c *countingMetrics) AvailabilityCheckFailed() { c.failures++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	date := types.MustParseDate("2030-06-15")

	tests := []struct {
		name     string
		bookings []*domain.Booking
		want     map[domain.TimeSlot]domain.SlotState
	}{
		{
			name: "no bookings",
			want: map[domain.TimeSlot]domain.SlotState{
				domain.SlotMorning:   domain.SlotAvailable,
				domain.SlotAfternoon: domain.SlotAvailable,
				domain.SlotEvening:   domain.SlotAvailable,
			},
		},
		{
			name: "pending and confirmed occupy slots",
			bookings: []*domain.Booking{
				{BookingDate: date, TimeSlot: domain.SlotMorning, Status: domain.StatusPending},
				{BookingDate: date, TimeSlot: domain.SlotEvening, Status: domain.StatusConfirmed},
			},
			want: map[domain.TimeSlot]domain.SlotState{
				domain.SlotMorning:   domain.SlotUnavailable,
				domain.SlotAfternoon: domain.SlotAvailable,
				domain.SlotEvening:   domain.SlotUnavailable,
			},
		},
		{
			name: "cancelled booking frees the slot",
			bookings: []*domain.Booking{
				{BookingDate: date, TimeSlot: domain.SlotAfternoon, Status: domain.StatusCancelled},
			},
			want: map[domain.TimeSlot]domain.SlotState{
				domain.SlotMorning:   domain.SlotAvailable,
				domain.SlotAfternoon: domain.SlotAvailable,
				domain.SlotEvening:   domain.SlotAvailable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
				return f.ActiveOnly && f.StartDate.Equal(date) && f.EndDate.Equal(date)
			})).Return(tt.bookings, nil).Once()

			uc := NewUseCase(repo, &countingMetrics{}, nopLogger{})
			got, err := uc.Execute(context.Background(), date)

			require.NoError(t, err)
			assert.Equal(t, date, got.Date)
			assert.Equal(t, tt.want, got.Slots)
			repo.AssertExpectations(t)
		})
	}
}

func TestExecute_StoreFailureYieldsUnknown(t *testing.T) {
	date := types.MustParseDate("2030-06-15")
	repo := &mockBookingRepo{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
	metrics := &countingMetrics{}

	uc := NewUseCase(repo, metrics, nopLogger{})
	got, err := uc.Execute(context.Background(), date)

	require.ErrorIs(t, err, ErrAvailabilityCheckFailed)
	assert.False(t, got.IsKnown())
	for _, s := range domain.AllTimeSlots {
		assert.Equal(t, domain.SlotUnknown, got.State(s))
	}
	assert.Equal(t, 1, metrics.failures)
}
