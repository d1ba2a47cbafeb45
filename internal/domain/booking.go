package domain

import (
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// statusTransitions allowed edges of the booking lifecycle.
// A status is never a valid target for itself.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsActive returns true if a booking with this status occupies its slot
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether the lifecycle allows moving from s to target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents a venue reservation request
type Booking struct {
	ID              string
	CustomerName    string
	Email           string
	Phone           string
	EventType       string
	GuestCount      int
	SpecialRequests string
	BookingDate     types.Date
	TimeSlot        TimeSlot
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate  *types.Date    // Начало периода включительно (nil - без ограничения)
	EndDate    *types.Date    // Конец периода включительно (nil - без ограничения)
	Status     *BookingStatus // Фильтр по статусу (опционально)
	ActiveOnly bool           // Только pending и confirmed
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.StartDate != nil && b.BookingDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && b.BookingDate.After(*f.EndDate) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	return true
}
