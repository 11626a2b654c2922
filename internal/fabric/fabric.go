// Package fabric is the durable publish/subscribe layer between services:
// direct exchanges, durable queues bound by exact routing key, persistent
// messages, explicit acknowledgement with at-least-once redelivery.
package fabric

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/sreekarnv/mint/config"
)

// Handler processes one delivered message. Returning nil acknowledges the
// message; returning an error triggers redelivery, so handlers must be
// idempotent.
type Handler func(ctx context.Context, queue string, body []byte) error

// Broker is threaded through constructors instead of living in a global,
// so services can run against the in-memory implementation in tests.
type Broker interface {
	DeclareTopology() error
	Publish(ctx context.Context, exchange, key string, message interface{}) error
	Consume(ctx context.Context, queue string, handler Handler) error
	Close() error
}

// DeadLetter wraps a message that kept failing after every retry.
type DeadLetter struct {
	OriginalQueue string    `json:"original_queue"`
	Body          string    `json:"body"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

type consumer struct {
	queue   string
	handler Handler
}

// AMQP is the RabbitMQ-backed Broker. Connection loss triggers an
// indefinite reconnect-and-redeclare loop; registered consumers are
// re-attached after every reconnect and unacknowledged messages are
// redelivered by the broker.
type AMQP struct {
	url            string
	reconnectDelay time.Duration
	retry          config.RetryConfig
	deadLetter     bool

	mu        sync.Mutex
	conn      *amqp.Connection
	ch        *amqp.Channel
	consumers []consumer
	closed    bool
}

func NewAMQP(cfg config.Rabbit) (*AMQP, error) {
	b := &AMQP{
		url:            cfg.URL,
		reconnectDelay: cfg.ReconnectDelay,
		retry:          cfg.GetRetryConfig(),
		deadLetter:     cfg.DeadLetter,
	}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *AMQP) connect() error {
	conn, err := amqp.Dial(b.url)
	if err != nil {
		return fmt.Errorf("error connecting to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("error opening channel: %w", err)
	}

	b.mu.Lock()
	b.conn = conn
	b.ch = ch
	b.mu.Unlock()

	go b.watch(conn)
	return nil
}

// watch blocks until the connection drops, then reconnects with a fixed
// delay, redeclares the topology and re-attaches every consumer.
func (b *AMQP) watch(conn *amqp.Connection) {
	err := <-conn.NotifyClose(make(chan *amqp.Error, 1))

	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return
	}

	logrus.Errorf("Broker connection closed: %v. Reconnecting...", err)
	for {
		time.Sleep(b.reconnectDelay)
		if err := b.connect(); err != nil {
			logrus.Errorf("Broker reconnect failed: %s", err.Error())
			continue
		}
		if err := b.DeclareTopology(); err != nil {
			logrus.Errorf("Broker redeclare failed: %s", err.Error())
			continue
		}

		b.mu.Lock()
		consumers := make([]consumer, len(b.consumers))
		copy(consumers, b.consumers)
		b.mu.Unlock()

		for _, c := range consumers {
			if err := b.startConsumer(context.Background(), c); err != nil {
				logrus.Errorf("Error re-attaching consumer for %s: %s", c.queue, err.Error())
			}
		}
		logrus.Info("Broker reconnected, topology redeclared")
		return
	}
}

func (b *AMQP) channel() (*amqp.Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch == nil {
		return nil, fmt.Errorf("broker not initialized")
	}
	return b.ch, nil
}

// DeclareTopology asserts all exchanges, queues and bindings. Safe to call
// repeatedly; redeclaring with conflicting properties fails loudly at the
// broker, which is the signal of a configuration bug.
func (b *AMQP) DeclareTopology() error {
	ch, err := b.channel()
	if err != nil {
		return err
	}

	for _, ex := range Exchanges {
		if err := ch.ExchangeDeclare(ex, "direct", true, false, false, false, nil); err != nil {
			return fmt.Errorf("error declaring exchange %s: %w", ex, err)
		}
	}
	for _, q := range Queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error declaring queue %s: %w", q, err)
		}
	}
	for _, bd := range Bindings {
		if err := ch.QueueBind(bd.Queue, bd.Key, bd.Exchange, false, nil); err != nil {
			return fmt.Errorf("error binding %s to %s/%s: %w", bd.Queue, bd.Exchange, bd.Key, err)
		}
	}
	return nil
}

// Publish serializes the message as JSON and routes it persistently by
// exact key match, retrying transient failures with exponential backoff.
func (b *AMQP) Publish(ctx context.Context, exchange, key string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < b.retry.MaxAttempts; attempt++ {
		ch, err := b.channel()
		if err != nil {
			lastErr = err
		} else {
			err = ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now().UTC(),
				Body:         data,
			})
			if err == nil {
				return nil
			}
			lastErr = err
		}

		if attempt == b.retry.MaxAttempts-1 {
			break
		}
		delay := calculateBackoff(b.retry, attempt)
		logrus.Warnf("Publish retry %d/%d for %s/%s after %v: %v",
			attempt+1, b.retry.MaxAttempts, exchange, key, delay, lastErr)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish to %s/%s after %d attempts: %w",
		exchange, key, b.retry.MaxAttempts, lastErr)
}

// Consume attaches handler to queue. A handler that returns nil acks the
// message. A failing handler is retried in-process with backoff; when
// retries are exhausted the message is either dead-lettered and acked, or
// nacked back onto the queue when dead-lettering is disabled. The latter
// retries poison messages forever.
func (b *AMQP) Consume(ctx context.Context, queue string, handler Handler) error {
	c := consumer{queue: queue, handler: handler}

	b.mu.Lock()
	b.consumers = append(b.consumers, c)
	b.mu.Unlock()

	return b.startConsumer(ctx, c)
}

func (b *AMQP) startConsumer(ctx context.Context, c consumer) error {
	ch, err := b.channel()
	if err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("error consuming queue %s: %w", c.queue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				b.processMessage(ctx, c, msg)
			}
		}
	}()

	logrus.Infof("Listening on queue: %s", c.queue)
	return nil
}

func (b *AMQP) processMessage(ctx context.Context, c consumer, msg amqp.Delivery) {
	var lastErr error
	for attempt := 0; attempt < b.retry.MaxAttempts; attempt++ {
		lastErr = c.handler(ctx, c.queue, msg.Body)
		if lastErr == nil {
			if err := msg.Ack(false); err != nil {
				logrus.Errorf("Error acking message on %s: %s", c.queue, err.Error())
			}
			return
		}

		backoff := calculateBackoff(b.retry, attempt)
		logrus.Warnf("Handler error on %s, attempt %d/%d: %v. Retrying in %v",
			c.queue, attempt+1, b.retry.MaxAttempts, lastErr, backoff)
		time.Sleep(backoff)
	}

	logrus.Errorf("Message failed after %d retries on queue %s: %v",
		b.retry.MaxAttempts, c.queue, lastErr)

	if !b.deadLetter {
		if err := msg.Nack(false, true); err != nil {
			logrus.Errorf("Error nacking message on %s: %s", c.queue, err.Error())
		}
		return
	}

	dead := DeadLetter{
		OriginalQueue: c.queue,
		Body:          string(msg.Body),
		Timestamp:     time.Now().UTC(),
		Attempts:      b.retry.MaxAttempts,
	}
	if err := b.publishToQueue(ctx, QueueDeadLetter, dead); err != nil {
		logrus.Errorf("Failed to dead-letter message from %s: %s", c.queue, err.Error())
		if err := msg.Nack(false, true); err != nil {
			logrus.Errorf("Error nacking message on %s: %s", c.queue, err.Error())
		}
		return
	}
	if err := msg.Ack(false); err != nil {
		logrus.Errorf("Error acking dead-lettered message on %s: %s", c.queue, err.Error())
	}
	logrus.Infof("Message sent to DLQ: original queue=%s", c.queue)
}

// publishToQueue routes through the default exchange straight to a queue.
func (b *AMQP) publishToQueue(ctx context.Context, queue string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	ch, err := b.channel()
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         data,
	})
}

func (b *AMQP) Close() error {
	b.mu.Lock()
	b.closed = true
	conn := b.conn
	b.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}

func calculateBackoff(retry config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * retry.BaseDelay

	if delay > retry.MaxDelay {
		delay = retry.MaxDelay
	}

	if retry.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
