package notifier

import "time"

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
)

// Event сообщение о бронировании в очереди
type Event struct {
	Type           string          `json:"type"`
	BookingID      string          `json:"booking_id"`
	Status         string          `json:"status,omitempty"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
	Booking        *BookingPayload `json:"booking,omitempty"`
}

// BookingPayload снимок бронирования на момент события
type BookingPayload struct {
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	EventType    string `json:"event_type"`
	GuestCount   int    `json:"guest_count"`
	BookingDate  string `json:"booking_date"`
	TimeSlot     string `json:"time_slot"`
}
