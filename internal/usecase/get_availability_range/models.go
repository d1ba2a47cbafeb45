package get_availability_range

import (
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// Response занятые слоты по датам периода. Даты без активных бронирований отсутствуют.
type Response struct {
	StartDate types.Date
	EndDate   types.Date
	Days      map[types.Date][]domain.TimeSlot
}
