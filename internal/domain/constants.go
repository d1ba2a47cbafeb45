package domain

// Business validation constants
const (
	MaxCustomerNameLength    = 200
	MaxEventTypeLength       = 100
	MaxPhoneLength           = 50
	MaxSpecialRequestsLength = 1000
	MaxAvailabilityRangeDays = 366
)

// Default configuration values
const (
	DefaultMaxGuestCount      = 0 // 0 = unlimited
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
)

// ActiveStatuses список статусов, которые занимают слот.
// Используется при проверке доступности и в уникальном индексе хранилища.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
