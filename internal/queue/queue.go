package queue

import (
	"errors"
	"realestate/server/internal/models"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// EventQueue is an in-memory queue of listing event batches
type EventQueue struct {
	items    chan []*models.ListingEvent
	drained  chan struct{}
	maxSize  int
	closed   bool
	started  bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.ListingEvent) error
}

// NewEventQueue creates a queue holding at most bufferSize batches
func NewEventQueue(bufferSize int, logger *logrus.Logger) *EventQueue {
	if logger == nil {
		logger = logrus.New()
	}
	return &EventQueue{
		items:    make(chan []*models.ListingEvent, bufferSize),
		drained:  make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func([]*models.ListingEvent) error, 0),
	}
}

// Push adds a batch without blocking
func (q *EventQueue) Push(events []*models.ListingEvent) error {
	// The read lock is held across the send so Close cannot close the
	// channel underneath it.
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- events:
		q.logger.WithField("batch_size", len(events)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each batch
func (q *EventQueue) Subscribe(handler func([]*models.ListingEvent) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue. Calling it twice is a no-op.
func (q *EventQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true
	go q.process()
}

func (q *EventQueue) process() {
	defer close(q.drained)
	for batch := range q.items {
		q.processBatch(batch)
	}
}

// processBatch sends the batch to all subscribed handlers
func (q *EventQueue) processBatch(batch []*models.ListingEvent) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close rejects further pushes and, if the queue was started, waits until
// the batches already queued have been handled
func (q *EventQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	started := q.started
	close(q.items)
	q.mu.Unlock()

	if started {
		<-q.drained
	}
	return nil
}

// Len returns the current number of batches in the queue
func (q *EventQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *EventQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
