// Package bus is a small broadcast channel. Screens publish navigation
// requests on it without holding the controller; the controller drains a
// subscription.
package bus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// ErrClosed is returned when publishing on a closed bus.
var ErrClosed = errors.New("bus: closed")

// Publisher is the half of a Bus handed to code that only emits.
type Publisher[T any] interface {
	Publish(ctx context.Context, v T) error
}

// Bus delivers every published value to every subscriber, in publish order.
// Delivery blocks while a subscriber's buffer is full, so a slow subscriber
// slows publishers down instead of losing values.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription[T]
	nextID uint64
	buffer int
	log    *slog.Logger

	closed    *atomic.Bool
	published *atomic.Int64
	delivered *atomic.Int64
}

// Subscription receives values on C until it or the bus is closed.
type Subscription[T any] struct {
	C <-chan T

	bus  *Bus[T]
	id   uint64
	ch   chan T
	done chan struct{}
	once sync.Once
}

// New creates a bus whose subscriptions buffer up to buffer values.
func New[T any](buffer int, log *slog.Logger) *Bus[T] {
	if buffer < 0 {
		buffer = 0
	}
	if log == nil {
		log = slog.Default()
	}
	return &Bus[T]{
		subs:      make(map[uint64]*Subscription[T]),
		buffer:    buffer,
		log:       log,
		closed:    atomic.NewBool(false),
		published: atomic.NewInt64(0),
		delivered: atomic.NewInt64(0),
	}
}

// Subscribe registers a new subscriber. Subscribing to a closed bus returns a
// subscription whose channel is already closed.
func (b *Bus[T]) Subscribe() *Subscription[T] {
	ch := make(chan T, b.buffer)
	s := &Subscription[T]{C: ch, bus: b, ch: ch, done: make(chan struct{})}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		s.once.Do(func() {
			close(s.done)
			close(ch)
		})
		return s
	}
	b.nextID++
	s.id = b.nextID
	b.subs[s.id] = s
	return s
}

// Publish sends v to every current subscriber. It returns ErrClosed after
// Close, or ctx.Err() if ctx ends while a subscriber is full.
func (b *Bus[T]) Publish(ctx context.Context, v T) error {
	if b.closed.Load() {
		b.log.Warn("publish on closed bus dropped")
		return ErrClosed
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	b.published.Inc()
	for _, s := range b.subs {
		select {
		case s.ch <- v:
			b.delivered.Inc()
		case <-s.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close closes every subscription. Further publishes fail with ErrClosed.
func (b *Bus[T]) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.RLock()
	subs := make([]*Subscription[T], 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.Close()
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Bus[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Published counts accepted Publish calls.
func (b *Bus[T]) Published() int64 {
	return b.published.Load()
}

// Delivered counts values handed to subscribers.
func (b *Bus[T]) Delivered() int64 {
	return b.delivered.Load()
}

// Close unsubscribes. Values already buffered stay readable; C is closed
// after them.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		close(s.done)

		b := s.bus
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[s.id]; ok {
			delete(b.subs, s.id)
			close(s.ch)
		}
	})
}
