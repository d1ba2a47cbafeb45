package create_booking

import (
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и слот приходят строками и разбираются при валидации.
type Request struct {
	CustomerName    string
	Email           string
	Phone           string
	EventType       string
	GuestCount      int
	SpecialRequests string
	BookingDate     string // YYYY-MM-DD
	TimeSlot        string // morning, afternoon, evening
}

// Rules ограничения площадки из конфигурации
type Rules struct {
	MaxGuestCount      int            // 0 = без ограничения
	AdvanceBookingDays int            // 0 = без ограничения
	Location           *time.Location // часовой пояс площадки, по нему определяется "сегодня"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	CustomerName    string
	Email           string
	Phone           string
	EventType       string
	GuestCount      int
	SpecialRequests string
	BookingDate     types.Date
	TimeSlot        string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
