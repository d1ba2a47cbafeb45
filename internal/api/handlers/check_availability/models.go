package check_availability

import (
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	BookingDate string `json:"booking_date"` // "2030-06-15"
}

// AvailabilityResponse HTTP response model.
// Булевы поля заполняются только когда состояние слота известно.
type AvailabilityResponse struct {
	Date               string              `json:"date"`
	MorningAvailable   *bool               `json:"morning_available,omitempty"`
	AfternoonAvailable *bool               `json:"afternoon_available,omitempty"`
	EveningAvailable   *bool               `json:"evening_available,omitempty"`
	Morning            string              `json:"morning"`
	Afternoon          string              `json:"afternoon"`
	Evening            string              `json:"evening"`
	Error              *handlers.ErrorBody `json:"error,omitempty"`
}

// FromDomain конвертирует domain.DayAvailability в HTTP response
func FromDomain(day domain.DayAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:               day.Date.String(),
		MorningAvailable:   availableFlag(day.State(domain.SlotMorning)),
		AfternoonAvailable: availableFlag(day.State(domain.SlotAfternoon)),
		EveningAvailable:   availableFlag(day.State(domain.SlotEvening)),
		Morning:            string(day.State(domain.SlotMorning)),
		Afternoon:          string(day.State(domain.SlotAfternoon)),
		Evening:            string(day.State(domain.SlotEvening)),
	}
}

func availableFlag(state domain.SlotState) *bool {
	if state == domain.SlotUnknown {
		return nil
	}
	v := state == domain.SlotAvailable
	return &v
}
