package create_booking

import "errors"

var (
	// ErrSlotAlreadyTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotAlreadyTaken = errors.New("create_booking: slot already taken")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("create_booking: booking store unavailable")
)
