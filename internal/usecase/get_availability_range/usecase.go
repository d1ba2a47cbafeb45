package get_availability_range

import (
	"context"
	"fmt"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// UseCase занятость слотов за период (для календаря)
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает занятые слоты для каждой даты [start, end], на которую есть активные бронирования
func (uc *UseCase) Execute(ctx context.Context, start, end types.Date) (*Response, error) {
	if err := validateRange(start, end); err != nil {
		uc.logger.Warn("GetAvailabilityRange: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		StartDate:  &start,
		EndDate:    &end,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailabilityRange: failed to list bookings %s..%s: %v", start, end, err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheckFailed, err)
	}

	days := make(map[types.Date][]domain.TimeSlot)
	for _, b := range bookings {
		if !b.IsActive() || b.BookingDate.Before(start) || b.BookingDate.After(end) {
			continue
		}
		days[b.BookingDate] = append(days[b.BookingDate], b.TimeSlot)
	}

	// Слоты каждой даты в порядке дня
	for d, taken := range days {
		days[d] = orderSlots(taken)
	}

	uc.logger.Info("GetAvailabilityRange: %s..%s, %d days with bookings", start, end, len(days))

	return &Response{StartDate: start, EndDate: end, Days: days}, nil
}

func validateRange(start, end types.Date) error {
	if start.IsZero() {
		return domain.NewValidationError("start_date", "is required")
	}
	if end.IsZero() {
		return domain.NewValidationError("end_date", "is required")
	}
	if end.Before(start) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	if start.DaysUntil(end) >= domain.MaxAvailabilityRangeDays {
		return domain.NewValidationError("end_date",
			fmt.Sprintf("range must not exceed %d days", domain.MaxAvailabilityRangeDays))
	}
	return nil
}

func orderSlots(taken []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(taken))
	for _, s := range domain.AllTimeSlots {
		for _, t := range taken {
			if t == s {
				result = append(result, s)
				break
			}
		}
	}
	return result
}
