package get_availability_range

import "errors"

// ErrAvailabilityCheckFailed хранилище не ответило
var ErrAvailabilityCheckFailed = errors.New("get_availability_range: availability check failed")
