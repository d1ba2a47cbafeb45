package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/psqlbuilder"
)

const (
	tableBookings = "bookings"

	// activeSlotIndex уникальный частичный индекс (booking_date, time_slot) по активным статусам
	activeSlotIndex = "bookings_active_slot_uidx"

	pqUniqueViolation = "23505"
)

var bookingColumns = []string{
	"id",
	"customer_name",
	"email",
	"phone",
	"event_type",
	"guest_count",
	"special_requests",
	"booking_date",
	"time_slot",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db           DB
	queryTimeout time.Duration
}

// NewRepository создает новый экземпляр репозитория бронирований.
// queryTimeout ограничивает каждый вызов хранилища (0 = без ограничения).
func NewRepository(db DB, queryTimeout time.Duration) *Repository {
	return &Repository{db: db, queryTimeout: queryTimeout}
}

// Create вставляет бронирование. Эксклюзивность слота обеспечивает уникальный индекс
// bookings_active_slot_uidx, поэтому проверка и вставка происходят атомарно в одном INSERT.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"customer_name",
			"email",
			"phone",
			"event_type",
			"guest_count",
			"special_requests",
			"booking_date",
			"time_slot",
			"status",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.Email,
			booking.Phone,
			booking.EventType,
			booking.GuestCount,
			booking.SpecialRequests,
			booking.BookingDate,
			booking.TimeSlot,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.getByID(ctx, id)
}

func (r *Repository) getByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру в порядке создания
//
// Примеры:
//
//  1. Все бронирования:
//     filter := domain.BookingsFilter{}
//
//  2. Занятые слоты на дату:
//     d := types.MustParseDate("2030-06-15")
//     filter := domain.BookingsFilter{StartDate: &d, EndDate: &d, ActiveOnly: true}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From(tableBookings)

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.ActiveOnly {
		active := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			active[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": active})
	}

	query, args, err := selectBuilder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus меняет статус, только если текущий статус равен from.
// При нуле затронутых строк повторное чтение определяет: бронирования нет или статус уже другой.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == nil {
		return booking, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		if isActiveSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	if _, err := r.getByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, ErrStatusConflict
}

// Delete удаляет бронирование (физическое удаление, восстановление невозможно)
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Ping проверяет доступность БД
func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.Email,
		&booking.Phone,
		&booking.EventType,
		&booking.GuestCount,
		&booking.SpecialRequests,
		&booking.BookingDate,
		&booking.TimeSlot,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isActiveSlotViolation нарушение уникального индекса по активному слоту
func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pqUniqueViolation && pqErr.Constraint == activeSlotIndex
}
