package create_booking

import (
	"time"

	createBooking "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventType       string `json:"event_type"`
	GuestCount      int    `json:"guest_count"`
	SpecialRequests string `json:"special_requests"`
	BookingDate     string `json:"booking_date"` // "2030-06-15"
	TimeSlot        string `json:"time_slot"`    // morning, afternoon, evening
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	EventType       string    `json:"event_type"`
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests"`
	BookingDate     string    `json:"booking_date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты и слота выполняет use case, чтобы ошибка указывала на поле.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		EventType:       r.EventType,
		GuestCount:      r.GuestCount,
		SpecialRequests: r.SpecialRequests,
		BookingDate:     r.BookingDate,
		TimeSlot:        r.TimeSlot,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		EventType:       resp.EventType,
		GuestCount:      resp.GuestCount,
		SpecialRequests: resp.SpecialRequests,
		BookingDate:     resp.BookingDate.String(),
		TimeSlot:        resp.TimeSlot,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.UTC(),
		UpdatedAt:       resp.UpdatedAt.UTC(),
	}
}
