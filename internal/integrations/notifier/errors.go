package notifier

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("notifier: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("notifier: failed to publish event")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notifier: failed to marshal event")

	// ErrClosed возвращается при публикации в закрытый клиент
	ErrClosed = errors.New("notifier: client closed")
)
