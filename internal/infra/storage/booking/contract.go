package booking

import (
	"context"

	"github.com/m04kA/WeddingSalon-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// DB пул соединений: выполнение запросов и проверка доступности.
// Реализуется *dbmetrics.DB.
type DB interface {
	DBExecutor
	PingContext(ctx context.Context) error
}
