package events

import (
	"context"
	"log"
	"sync"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"
)

// Subscriber reacts to a domain event after the write that produced it.
// Errors are logged by the bus and never reach the publisher.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, ev entities.DomainEvent) error
}

// Bus fans domain events out to its subscribers from a single worker
// goroutine. Publish never blocks: when the queue is full the event is dropped.
type Bus struct {
	queue       chan entities.DomainEvent
	subscribers []Subscriber

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ interfaces.IEventPublisher = (*Bus)(nil)

func NewBus(size int, subscribers ...Subscriber) *Bus {
	if size <= 0 {
		size = 1
	}
	return &Bus{
		queue:       make(chan entities.DomainEvent, size),
		subscribers: subscribers,
		done:        make(chan struct{}),
	}
}

// Start runs the worker until Close drains the queue.
func (b *Bus) Start(ctx context.Context) {
	go func() {
		defer close(b.done)
		for ev := range b.queue {
			b.dispatch(ctx, ev)
		}
	}()
}

func (b *Bus) Publish(ev entities.DomainEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		log.Printf("[events][bus] publish after close dropped type=%s quote_id=%s", ev.Type, ev.QuoteID)
		return
	}
	select {
	case b.queue <- ev:
	default:
		log.Printf("[events][bus] queue full, event dropped type=%s quote_id=%s sale_id=%s", ev.Type, ev.QuoteID, ev.SaleID)
	}
}

// Close stops accepting events and waits until queued ones are handled.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()
	<-b.done
}

func (b *Bus) dispatch(ctx context.Context, ev entities.DomainEvent) {
	for _, sub := range b.subscribers {
		if err := b.safeHandle(ctx, sub, ev); err != nil {
			log.Printf("[events][%s] handle failed type=%s quote_id=%s err=%v", sub.Name(), ev.Type, ev.QuoteID, err)
		}
	}
}

func (b *Bus) safeHandle(ctx context.Context, sub Subscriber, ev entities.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[events][%s] panic recovered type=%s: %v", sub.Name(), ev.Type, r)
		}
	}()
	return sub.Handle(ctx, ev)
}
