package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// UseCase проверка занятости слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	metrics     MetricsRecorder
	logger      Logger
}

func NewUseCase(bookingRepo BookingRepository, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute возвращает состояние каждого слота даты.
// Прошедшие даты не отклоняются. При ошибке хранилища все слоты unknown, а err
// оборачивает ErrAvailabilityCheckFailed: результат никогда не подменяется на "свободно".
func (uc *UseCase) Execute(ctx context.Context, date types.Date) (domain.DayAvailability, error) {
	filter := domain.BookingsFilter{
		StartDate:  &date,
		EndDate:    &date,
		ActiveOnly: true,
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings for %s: %v", date, err)
		uc.metrics.AvailabilityCheckFailed()
		return domain.NewDayAvailability(date, domain.SlotUnknown),
			fmt.Errorf("%w: %v", ErrAvailabilityCheckFailed, err)
	}

	result := domain.NewDayAvailability(date, domain.SlotAvailable)
	for _, b := range bookings {
		// Хранилище уже отфильтровало, но слот занимают только активные бронирования этой даты
		if b.IsActive() && b.BookingDate == date && b.TimeSlot.IsValid() {
			result.Slots[b.TimeSlot] = domain.SlotUnavailable
		}
	}

	uc.logger.Info("CheckAvailability: date=%s morning=%s afternoon=%s evening=%s",
		date, result.State(domain.SlotMorning), result.State(domain.SlotAfternoon), result.State(domain.SlotEvening))

	return result, nil
}
