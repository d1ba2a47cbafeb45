package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
)

// Client публикует события бронирований в durable очередь RabbitMQ.
// Соединение устанавливается лениво и переоткрывается, если брокер его закрыл.
type Client struct {
	url     string
	queue   string
	timeout time.Duration
	dial    Dialer
	log     Logger
	now     func() time.Time

	mu        sync.Mutex
	ch        Channel
	closeConn func() error
	closed    bool
	// attempt текущая попытка подключения, nil если подключение не идет
	attempt *dialAttempt
}

type dialAttempt struct {
	done chan struct{}
	err  error
}

// NewClient создает клиента. Подключение к брокеру происходит при первой публикации.
func NewClient(url, queue string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		queue:   queue,
		timeout: timeout,
		dial:    dialAMQP,
		log:     log,
		now:     time.Now,
	}
}

func dialAMQP(url string, timeout time.Duration) (Channel, func() error, error) {
	cfg := amqp.Config{}
	if timeout > 0 {
		cfg.Dial = amqp.DefaultDial(timeout)
	}
	conn, err := amqp.DialConfig(url, cfg)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return ch, conn.Close, nil
}

func (c *Client) PublishBookingCreated(ctx context.Context, b *domain.Booking) error {
	return c.publish(ctx, Event{
		Type:       EventBookingCreated,
		BookingID:  b.ID,
		Status:     string(b.Status),
		OccurredAt: c.now().UTC(),
		Booking:    payloadOf(b),
	})
}

func (c *Client) PublishStatusChanged(ctx context.Context, b *domain.Booking, from domain.BookingStatus) error {
	return c.publish(ctx, Event{
		Type:           EventBookingStatusChanged,
		BookingID:      b.ID,
		Status:         string(b.Status),
		PreviousStatus: string(from),
		OccurredAt:     c.now().UTC(),
		Booking:        payloadOf(b),
	})
}

func (c *Client) PublishBookingDeleted(ctx context.Context, id string) error {
	return c.publish(ctx, Event{
		Type:       EventBookingDeleted,
		BookingID:  id,
		OccurredAt: c.now().UTC(),
	})
}

func (c *Client) publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ch, err := c.channel(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Type,
		MessageId:    ev.BookingID + ":" + ev.Type + ":" + ev.OccurredAt.Format(time.RFC3339Nano),
		Body:         body,
	}

	// Публикация в default exchange, routing key = имя очереди
	if err := ch.PublishWithContext(ctx, "", c.queue, false, false, msg); err != nil {
		c.mu.Lock()
		if c.ch == ch {
			c.resetLocked()
		}
		c.mu.Unlock()
		return fmt.Errorf("%w: %s id=%s: %v", ErrPublish, ev.Type, ev.BookingID, err)
	}

	c.log.Info("Notifier: published %s id=%s", ev.Type, ev.BookingID)
	return nil
}

// channel возвращает открытый канал. Подключение идет в фоне одной попыткой на всех,
// вызывающий ждет ее не дольше своего ctx.
func (c *Client) channel(ctx context.Context) (Channel, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.ch != nil && !c.ch.IsClosed() {
		ch := c.ch
		c.mu.Unlock()
		return ch, nil
	}
	attempt := c.attempt
	if attempt == nil {
		c.resetLocked()
		attempt = &dialAttempt{done: make(chan struct{})}
		c.attempt = attempt
		go c.connect(attempt)
	}
	c.mu.Unlock()

	select {
	case <-attempt.done:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrConnect, ctx.Err())
	}
	if attempt.err != nil {
		return nil, attempt.err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if c.ch == nil {
		return nil, fmt.Errorf("%w: connection lost", ErrConnect)
	}
	return c.ch, nil
}

// connect выполняет попытку подключения без удержания c.mu
func (c *Client) connect(attempt *dialAttempt) {
	ch, closeConn, err := c.dial(c.url, c.timeout)
	if err == nil {
		// Очередь durable: сообщения переживают перезапуск брокера
		if _, err = ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = closeConn()
			err = fmt.Errorf("queue declare: %v", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	defer close(attempt.done)
	c.attempt = nil

	switch {
	case err != nil:
		attempt.err = fmt.Errorf("%w: %v", ErrConnect, err)
		c.log.Warn("Notifier: failed to connect to broker: %v", err)
	case c.closed:
		_ = ch.Close()
		_ = closeConn()
		attempt.err = ErrClosed
	default:
		c.ch = ch
		c.closeConn = closeConn
		c.log.Info("Notifier: connected, queue=%s", c.queue)
	}
}

func (c *Client) resetLocked() {
	if c.ch != nil {
		_ = c.ch.Close()
		c.ch = nil
	}
	if c.closeConn != nil {
		_ = c.closeConn()
		c.closeConn = nil
	}
}

// Close закрывает канал и соединение
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.resetLocked()
	return nil
}

func payloadOf(b *domain.Booking) *BookingPayload {
	return &BookingPayload{
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		EventType:    b.EventType,
		GuestCount:   b.GuestCount,
		BookingDate:  b.BookingDate.String(),
		TimeSlot:     string(b.TimeSlot),
	}
}
