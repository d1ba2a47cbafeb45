package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidTransition возвращается, когда переход статуса не разрешен жизненным циклом
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("bookings: booking store unavailable")
)
