package models

import (
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// Request модели

// ListBookingsRequest фильтры списка бронирований (все опциональны)
type ListBookingsRequest struct {
	Status *string
	From   *types.Date
	To     *types.Date
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.From,
		EndDate:   r.To,
	}

	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return filter, domain.NewValidationError("to", "must not be before from")
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	EventType       string    `json:"event_type"`
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests"`
	BookingDate     string    `json:"booking_date"` // "2030-06-15"
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Email:           b.Email,
		Phone:           b.Phone,
		EventType:       b.EventType,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		BookingDate:     b.BookingDate.String(),
		TimeSlot:        string(b.TimeSlot),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Пустой список сериализуется как [], а не null.
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", domain.NewValidationError("status", "must be one of: pending, confirmed, cancelled")
	}
	return s, nil
}
