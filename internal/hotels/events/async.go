package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotels/pkg/logger"
)

const asyncQueueSize = 256

var (
	ErrPublisherClosed = errors.New("hotel events publisher closed")
	ErrQueueFull       = errors.New("hotel events queue full")
)

type queuedEvent struct {
	ctx   context.Context
	event HotelEvent
}

// asyncPublisher hands events to a single background worker so a slow broker
// never holds up the request that produced them. Events keep their order.
type asyncPublisher struct {
	inner   Publisher
	timeout time.Duration
	log     *logger.Logger

	queue     chan queuedEvent
	done      chan struct{}
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewAsyncPublisher wraps inner. Each event gets its own timeout, detached from
// the caller's cancellation. Close drains queued events before closing inner.
func NewAsyncPublisher(inner Publisher, timeout time.Duration, log *logger.Logger) Publisher {
	p := &asyncPublisher{
		inner:   inner,
		timeout: timeout,
		log:     log,
		queue:   make(chan queuedEvent, asyncQueueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *asyncPublisher) Publish(ctx context.Context, event HotelEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *asyncPublisher) run() {
	defer close(p.done)

	for q := range p.queue {
		ctx, cancel := context.WithTimeout(q.ctx, p.timeout)
		if err := p.inner.Publish(ctx, q.event); err != nil {
			p.log.FromContext(ctx).Error("Failed to publish hotel event",
				"id", q.event.HotelID,
				"event", q.event.Type,
				"error", err,
			)
		}
		cancel()
	}
}

func (p *asyncPublisher) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
	<-p.done
	return p.inner.Close()
}
