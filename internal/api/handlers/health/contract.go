package health

import "context"

// Pinger проверка доступности хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
