package check_availability

import "errors"

// ErrAvailabilityCheckFailed хранилище не ответило, состояние слотов неизвестно
var ErrAvailabilityCheckFailed = errors.New("check_availability: availability check failed")
