package fabric

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Memory is an in-process Broker with the same binding and redelivery
// semantics as the AMQP implementation. Delivery is synchronous, which
// keeps tests deterministic: Publish returns after every bound handler
// has finished.
type Memory struct {
	mu          sync.Mutex
	maxAttempts int
	handlers    map[string]Handler
	buffers     map[string][][]byte
	deliveries  map[string][][]byte
}

func NewMemory() *Memory {
	return &Memory{
		maxAttempts: 3,
		handlers:    make(map[string]Handler),
		buffers:     make(map[string][][]byte),
		deliveries:  make(map[string][][]byte),
	}
}

func (m *Memory) DeclareTopology() error { return nil }

func (m *Memory) Publish(ctx context.Context, exchange, key string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	delivered := false
	for _, b := range Bindings {
		if b.Exchange == exchange && b.Key == key {
			m.deliver(ctx, b.Queue, data)
			delivered = true
		}
	}
	if !delivered {
		// Direct exchange semantics: an unbound key drops the message.
		return nil
	}
	return nil
}

func (m *Memory) deliver(ctx context.Context, queue string, body []byte) {
	m.mu.Lock()
	m.deliveries[queue] = append(m.deliveries[queue], body)
	handler, ok := m.handlers[queue]
	if !ok {
		m.buffers[queue] = append(m.buffers[queue], body)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.dispatch(ctx, queue, handler, body)
}

func (m *Memory) dispatch(ctx context.Context, queue string, handler Handler, body []byte) {
	var lastErr error
	for attempt := 0; attempt < m.maxAttempts; attempt++ {
		if lastErr = handler(ctx, queue, body); lastErr == nil {
			return
		}
	}

	dead := DeadLetter{
		OriginalQueue: queue,
		Body:          string(body),
		Timestamp:     time.Now().UTC(),
		Attempts:      m.maxAttempts,
	}
	data, _ := json.Marshal(dead)
	if queue != QueueDeadLetter {
		m.deliver(ctx, QueueDeadLetter, data)
	}
}

func (m *Memory) Consume(ctx context.Context, queue string, handler Handler) error {
	m.mu.Lock()
	m.handlers[queue] = handler
	pending := m.buffers[queue]
	m.buffers[queue] = nil
	m.mu.Unlock()

	for _, body := range pending {
		m.dispatch(ctx, queue, handler, body)
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// Deliveries returns every payload routed to queue, in order. Test hook.
func (m *Memory) Deliveries(queue string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.deliveries[queue]))
	copy(out, m.deliveries[queue])
	return out
}
