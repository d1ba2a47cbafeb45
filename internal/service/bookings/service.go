package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований.
// Доступ к нему защищает middleware авторизации администратора.
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// List получает бронирования в порядке создания с опциональными фильтрами
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переход проверяется по текущему статусу, а запись выполняется compare-and-set:
// если статус успели поменять между чтением и записью, возвращается ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	target, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return nil, err
	}

	current, err := s.get(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s", current.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, current.Status, target)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s deleted concurrently", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusConflict), errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: booking id=%s changed concurrently: %v", id, err)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStoreUnavailable, err)
		}
	}

	s.metrics.StatusChanged(string(current.Status), string(target))
	s.logger.Info("UpdateStatus: booking id=%s %s -> %s", id, current.Status, target)

	if err := s.publisher.PublishStatusChanged(context.WithoutCancel(ctx), updated, current.Status); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish booking.status_changed id=%s: %v", id, err)
	}

	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование безвозвратно при любом статусе
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if !isValidID(id) {
		s.logger.Warn("Delete: booking id=%s not found", id)
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	s.metrics.BookingDeleted()
	s.logger.Info("Delete: successfully deleted booking id=%s", id)

	if err := s.publisher.PublishBookingDeleted(context.WithoutCancel(ctx), id); err != nil {
		s.logger.Warn("Delete: failed to publish booking.deleted id=%s: %v", id, err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, op, id string) (*domain.Booking, error) {
	// Идентификаторы всегда UUID: иной формат не может существовать в хранилище
	if !isValidID(id) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStoreUnavailable, op, err)
	}
	return booking, nil
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
