package processor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realestate/server/config"
	"realestate/server/internal/archive"
	"realestate/server/internal/models"
	"realestate/server/internal/queue"
)

// Transactor runs fc inside a database transaction. *gorm.DB satisfies it.
type Transactor interface {
	Transaction(fc func(*gorm.DB) error, opts ...*sql.TxOptions) error
}

// BatchProcessor buffers listing events and archives them in batches
type BatchProcessor struct {
	db        Transactor
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.EventQueue
	write     func(tx *gorm.DB, events []*models.ListingEvent) error
	now       func() time.Time
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc

	mu      sync.Mutex
	pending []*models.ListingEvent
	stopped bool
}

// NewBatchProcessor creates a new batch processor instance
func NewBatchProcessor(db Transactor, queue *queue.EventQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	if logger == nil {
		logger = logrus.New()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		write:  archive.InsertEvents,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes to the queue and begins the periodic flush
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(p.processBatch)
	p.queue.Start()

	wait := time.Duration(p.config.BatchProcessing.MaxBatchWaitTime) * time.Second
	if wait <= 0 {
		return
	}
	p.waitGroup.Add(1)
	go p.flushLoop(wait)
}

// Stop flushes whatever is buffered, waits for queued batches to be
// archived and rejects later events
func (p *BatchProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()

	p.mu.Lock()
	batch := p.takePending()
	p.stopped = true
	p.mu.Unlock()

	p.enqueue(batch)
	_ = p.queue.Close()
}

// Publish records an event. The buffer is handed to the queue once it
// reaches the configured batch size.
func (p *BatchProcessor) Publish(event models.ListingEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now()
	}

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		p.logger.WithField("kind", event.Kind).Warn("Dropping event published after shutdown")
		return
	}
	p.pending = append(p.pending, &event)
	var batch []*models.ListingEvent
	if len(p.pending) >= p.maxBatchSize() {
		batch = p.takePending()
	}
	p.mu.Unlock()

	p.enqueue(batch)
}

// Flush hands the buffered events to the queue immediately
func (p *BatchProcessor) Flush() {
	p.mu.Lock()
	batch := p.takePending()
	p.mu.Unlock()

	p.enqueue(batch)
}

func (p *BatchProcessor) flushLoop(wait time.Duration) {
	defer p.waitGroup.Done()

	ticker := time.NewTicker(wait)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.Flush()
		}
	}
}

// takePending must be called with mu held
func (p *BatchProcessor) takePending() []*models.ListingEvent {
	batch := p.pending
	p.pending = nil
	return batch
}

func (p *BatchProcessor) enqueue(batch []*models.ListingEvent) {
	if len(batch) == 0 {
		return
	}
	if err := p.queue.Push(batch); err != nil {
		fields := logrus.Fields{"batch_size": len(batch)}
		if errors.Is(err, queue.ErrQueueFull) {
			p.logger.WithFields(fields).Warn("Event queue full, dropping batch")
			return
		}
		p.logger.WithFields(fields).WithError(err).Error("Failed to enqueue batch")
	}
}

func (p *BatchProcessor) maxBatchSize() int {
	if p.config.BatchProcessing.MaxBatchSize <= 0 {
		return 1
	}
	return p.config.BatchProcessing.MaxBatchSize
}

// processBatch archives a single batch with transaction and retry logic
func (p *BatchProcessor) processBatch(batch []*models.ListingEvent) error {
	var err error
	for attempt := 0; attempt <= p.config.BatchProcessing.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.BatchProcessing.MaxRetries)
			time.Sleep(time.Duration(p.config.BatchProcessing.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			return p.write(tx, batch)
		})

		if err == nil {
			p.logger.Debugf("Archived batch of %d events", len(batch))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.BatchProcessing.MaxRetries+1, err)
}
