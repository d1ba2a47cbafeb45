package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings/models"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingPublisher struct {
	mu      sync.Mutex
	changed []string
	deleted []string
	err     error
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, b *domain.Booking, from domain.BookingStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, string(from)+"->"+string(b.Status))
	return p.err
}

func (p *recordingPublisher) PublishBookingDeleted(_ context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, id)
	return p.err
}

type nopMetrics struct{}

func (nopMetrics) StatusChanged(string, string) {}
func (nopMetrics) BookingDeleted()              {}

type failingRepo struct{}

var errStore = errors.New("connection refused")

func (failingRepo) GetByID(context.Context, string) (*domain.Booking, error) { return nil, errStore }
func (failingRepo) List(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return nil, errStore
}
func (failingRepo) UpdateStatus(context.Context, string, domain.BookingStatus, domain.BookingStatus) (*domain.Booking, error) {
	return nil, errStore
}
func (failingRepo) Delete(context.Context, string) error { return errStore }

func newService(t *testing.T) (*Service, *memory.Repository, *recordingPublisher) {
	t.Helper()
	repo := memory.NewRepository()
	pub := &recordingPublisher{}
	return NewService(repo, pub, nopMetrics{}, nopLogger{}), repo, pub
}

func createBooking(t *testing.T, repo *memory.Repository, date string, slot domain.TimeSlot) string {
	t.Helper()
	id := uuid.NewString()
	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:           id,
		CustomerName: "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "+0987654321",
		EventType:    "Anniversary",
		GuestCount:   50,
		BookingDate:  types.MustParseDate(date),
		TimeSlot:     slot,
		Status:       domain.StatusPending,
	})
	require.NoError(t, err)
	return id
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, repo, pub := newService(t)
	id := createBooking(t, repo, "2030-06-15", domain.SlotMorning)

	resp, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	_, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	resp, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	for _, target := range []string{"confirmed", "pending", "cancelled"} {
		_, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: target})
		assert.ErrorIs(t, err, ErrInvalidTransition, target)
	}

	assert.Equal(t, []string{"pending->confirmed", "confirmed->cancelled"}, pub.changed)
}

func TestUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)
	id := createBooking(t, repo, "2030-06-15", domain.SlotMorning)

	_, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "archived"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)

	_, err = svc.UpdateStatus(ctx, uuid.NewString(), &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.UpdateStatus(ctx, "not-a-uuid", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Переход в тот же статус не является ребром
	_, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_ConcurrentChangesDoNotOverwrite(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)
	id := createBooking(t, repo, "2030-06-15", domain.SlotMorning)

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := "confirmed"
			if i%2 == 0 {
				target = "cancelled"
			}
			_, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: target})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}(i)
	}
	wg.Wait()

	// pending -> confirmed -> cancelled: не более двух успешных переходов
	assert.GreaterOrEqual(t, successes, 1)
	assert.LessOrEqual(t, successes, 2)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, pub := newService(t)
	id := createBooking(t, repo, "2030-06-15", domain.SlotMorning)
	other := createBooking(t, repo, "2030-06-15", domain.SlotEvening)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrBookingNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "garbage"), ErrBookingNotFound)

	list, err := svc.List(ctx, &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, other, list[0].ID)
	assert.Equal(t, []string{id}, pub.deleted)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)
	first := createBooking(t, repo, "2030-06-15", domain.SlotMorning)
	second := createBooking(t, repo, "2030-07-01", domain.SlotMorning)
	_, err := svc.UpdateStatus(ctx, second, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	all, err := svc.List(ctx, &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, second, all[1].ID)

	confirmed := "confirmed"
	list, err := svc.List(ctx, &models.ListBookingsRequest{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second, list[0].ID)

	to := types.MustParseDate("2030-06-30")
	list, err = svc.List(ctx, &models.ListBookingsRequest{To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first, list[0].ID)

	bad := "done"
	_, err = svc.List(ctx, &models.ListBookingsRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	from := types.MustParseDate("2030-07-01")
	_, err = svc.List(ctx, &models.ListBookingsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService(t)
	id := createBooking(t, repo, "2030-06-15", domain.SlotAfternoon)

	resp, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "afternoon", resp.TimeSlot)
	assert.Equal(t, "2030-06-15", resp.BookingDate)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingRepo{}, &recordingPublisher{}, nopMetrics{}, nopLogger{})
	id := uuid.NewString()

	_, err := svc.List(ctx, &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, svc.Delete(ctx, id), ErrStoreUnavailable)
}

func TestPublishFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := NewService(repo, &recordingPublisher{err: errors.New("broker down")}, nopMetrics{}, nopLogger{})
	id := createBooking(t, repo, "2030-06-15", domain.SlotMorning)

	_, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, id))
}
