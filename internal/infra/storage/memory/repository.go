package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

type slotKey struct {
	date types.Date
	slot domain.TimeSlot
}

// Repository хранилище бронирований в памяти процесса (локальная разработка и тесты).
// Возвращает те же ошибки, что и PostgreSQL репозиторий.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string
	// activeSlots слот -> id активного бронирования
	activeSlots map[slotKey]string

	now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		bookings:    make(map[string]*domain.Booking),
		activeSlots: make(map[slotKey]string),
		now:         time.Now,
	}
}

// Create проверяет слот и вставляет бронирование под одной блокировкой записи
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create: %v", booking.ErrExecQuery, err)
	}

	created := *b
	now := r.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	key := slotKey{date: created.BookingDate, slot: created.TimeSlot}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[created.ID]; exists {
		return nil, fmt.Errorf("%w: Create - duplicate id %s", booking.ErrExecQuery, created.ID)
	}
	if created.IsActive() {
		if _, taken := r.activeSlots[key]; taken {
			return nil, booking.ErrSlotTaken
		}
		r.activeSlots[key] = created.ID
	}

	r.bookings[created.ID] = &created
	r.order = append(r.order, created.ID)

	result := created
	return &result, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", booking.ErrExecQuery, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	result := *b
	return &result, nil
}

// List возвращает копии бронирований в порядке вставки
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: List: %v", booking.ErrExecQuery, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, id := range r.order {
		b := r.bookings[id]
		if !filter.Matches(b) {
			continue
		}
		c := *b
		result = append(result, &c)
	}
	return result, nil
}

// UpdateStatus compare-and-set статуса
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus: %v", booking.ErrExecQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	if b.Status != from {
		return nil, booking.ErrStatusConflict
	}

	key := slotKey{date: b.BookingDate, slot: b.TimeSlot}
	switch {
	case from.IsActive() && !to.IsActive():
		delete(r.activeSlots, key)
	case !from.IsActive() && to.IsActive():
		if _, taken := r.activeSlots[key]; taken {
			return nil, booking.ErrSlotTaken
		}
		r.activeSlots[key] = id
	}

	b.Status = to
	b.UpdatedAt = r.now().UTC()

	result := *b
	return &result, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", booking.ErrExecQuery, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}

	if b.IsActive() {
		delete(r.activeSlots, slotKey{date: b.BookingDate, slot: b.TimeSlot})
	}
	delete(r.bookings, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping хранилище в памяти всегда доступно
func (r *Repository) Ping(ctx context.Context) error {
	return ctx.Err()
}
