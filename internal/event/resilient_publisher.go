package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/prestige/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus. A failed publish is queued and retried with
// exponential backoff on a background worker; events that exhaust their
// retries, or arrive when the queue is full, go to the dead-letter file.
// Callers are never blocked by handler failures.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	once       sync.Once
	closeOnce  sync.Once
	closeErr   error
	wg         sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// Publish implements Bus. It always returns nil: failures are retried in the background.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

// PublishWithRetry publishes once and queues the event for retry on failure
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}
	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryEntry{event: event, attempts: 1, lastErr: err})
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
		return
	default:
	}
	select {
	case rp.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()
	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		}
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	for entry.attempts <= rp.maxRetries {
		select {
		case <-rp.shutdown:
			rp.writeDeadLetter(entry)
			return
		case <-time.After(CalculateRetryDelay(rp.retryDelay, entry.attempts)):
		}

		err := rp.bus.Publish(context.Background(), entry.event)
		entry.attempts++
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
			return
		}
		entry.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempts", entry.attempts, "error", err)
	}
	logger.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	rp.writeDeadLetter(entry)
}

func (rp *ResilientPublisher) drain() {
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.writeDeadLetter(entry)
		default:
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the worker, dead-letters anything still queued and closes the file
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.once.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		rp.closeOnce.Do(func() { rp.closeErr = rp.deadLetter.Close() })
		return rp.closeErr
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
