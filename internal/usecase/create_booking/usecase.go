package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	publisher    EventPublisher
	metrics      MetricsRecorder
	rules        Rules
	timeProvider TimeProvider
	newID        IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
	rules Rules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		metrics:      metrics,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность слота заранее не читается: эксклюзивность гарантирует хранилище при вставке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s, guests=%d", req.BookingDate, req.TimeSlot, req.GuestCount)

	// 1. Валидация входных данных
	in := normalize(req)
	if err := validateInput(in); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date, err := types.ParseDate(in.BookingDate)
	if err != nil {
		return nil, domain.NewValidationError("booking_date", "must be a calendar date in YYYY-MM-DD format")
	}

	// 2. Ограничения площадки относительно текущей даты
	now := uc.timeProvider.Now()
	if err := validateRules(in.GuestCount, date, today(now, uc.rules.Location), uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: rules validation failed: %v", err)
		return nil, err
	}

	// 3. Атомарная вставка
	booking := &domain.Booking{
		ID:              uc.newID(),
		CustomerName:    in.CustomerName,
		Email:           in.Email,
		Phone:           in.Phone,
		EventType:       in.EventType,
		GuestCount:      in.GuestCount,
		SpecialRequests: in.SpecialRequests,
		BookingDate:     date,
		TimeSlot:        domain.TimeSlot(in.TimeSlot),
		Status:          domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken", date, booking.TimeSlot)
			uc.metrics.SlotConflict()
			return nil, ErrSlotAlreadyTaken
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrStoreUnavailable, err)
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	// 4. Событие публикуется best-effort и не влияет на результат
	if err := uc.publisher.PublishBookingCreated(context.WithoutCancel(ctx), created); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created id=%s: %v", created.ID, err)
	}

	return &Response{
		ID:              created.ID,
		CustomerName:    created.CustomerName,
		Email:           created.Email,
		Phone:           created.Phone,
		EventType:       created.EventType,
		GuestCount:      created.GuestCount,
		SpecialRequests: created.SpecialRequests,
		BookingDate:     created.BookingDate,
		TimeSlot:        string(created.TimeSlot),
		Status:          string(created.Status),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
