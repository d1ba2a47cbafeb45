package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

func newBooking(id, date string, slot domain.TimeSlot) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		CustomerName: "John Doe",
		Email:        "john@example.com",
		Phone:        "+1234567890",
		EventType:    "Wedding",
		GuestCount:   100,
		BookingDate:  types.MustParseDate(date),
		TimeSlot:     slot,
		Status:       domain.StatusPending,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Возвращается копия: изменение результата не меняет хранилище
	got.CustomerName = "changed"
	again, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again.CustomerName)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestRepository_CreateRejectsTakenSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("b2", "2030-06-15", domain.SlotMorning))
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	// Другой слот и другая дата свободны
	_, err = repo.Create(ctx, newBooking("b3", "2030-06-15", domain.SlotEvening))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("b4", "2030-06-16", domain.SlotMorning))
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepository_CancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "b1", domain.StatusPending, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)

	_, err = repo.Create(ctx, newBooking("b2", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)
}

func TestRepository_UpdateStatusCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusPending, domain.StatusConfirmed)
	require.NoError(t, err)

	// Второй вызов с устаревшим from
	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusPending, domain.StatusCancelled)
	assert.ErrorIs(t, err, booking.ErrStatusConflict)

	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for i, slot := range domain.AllTimeSlots {
		_, err := repo.Create(ctx, newBooking(fmt.Sprintf("b%d", i), "2030-06-15", slot))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "b1"))
	assert.ErrorIs(t, repo.Delete(ctx, "b1"), booking.ErrBookingNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "unknown"), booking.ErrBookingNotFound)

	all, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b0", all[0].ID)
	assert.Equal(t, "b2", all[1].ID)

	// Слот удаленного бронирования освобожден
	_, err = repo.Create(ctx, newBooking("b9", "2030-06-15", domain.SlotAfternoon))
	require.NoError(t, err)
}

func TestRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("b2", "2030-06-16", domain.SlotMorning))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("b3", "2030-06-15", domain.SlotEvening))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, "b3", domain.StatusPending, domain.StatusCancelled)
	require.NoError(t, err)

	day := types.MustParseDate("2030-06-15")
	active, err := repo.List(ctx, domain.BookingsFilter{StartDate: &day, EndDate: &day, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b1", active[0].ID)

	all, err := repo.List(ctx, domain.BookingsFilter{StartDate: &day, EndDate: &day})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_CanceledContext(t *testing.T) {
	repo := NewRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, newBooking("b1", "2030-06-15", domain.SlotMorning))
	assert.ErrorIs(t, err, booking.ErrExecQuery)

	_, err = repo.List(ctx, domain.BookingsFilter{})
	assert.ErrorIs(t, err, booking.ErrExecQuery)
	assert.Error(t, repo.Ping(ctx))
}

func TestRepository_ConcurrentCreateSameSlot(t *testing.T) {
	const n = 50
	ctx := context.Background()
	repo := NewRepository()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := repo.Create(ctx, newBooking(fmt.Sprintf("b%d", i), "2030-06-15", domain.SlotMorning))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, booking.ErrSlotTaken):
				conflicts++
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)

	all, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
