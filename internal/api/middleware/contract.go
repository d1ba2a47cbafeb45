package middleware

import (
	"context"
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth/models"
)

// TokenParser проверяет токен администратора
type TokenParser interface {
	ParseToken(raw string) (*models.Admin, error)
}

// HTTPMetrics сбор HTTP метрик
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Limiter решение о пропуске запроса по ключу клиента
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
