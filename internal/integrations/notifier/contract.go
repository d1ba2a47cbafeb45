package notifier

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel часть *amqp.Channel, используемая клиентом
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Dialer открывает соединение и канал к брокеру. timeout ограничивает TCP подключение и handshake.
type Dialer func(url string, timeout time.Duration) (Channel, func() error, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
