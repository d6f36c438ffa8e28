package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OCRRunner runs the OCR stage for one document.
type OCRRunner interface {
	RunOCR(ctx context.Context, documentID uuid.UUID) error
}

// Summarizer runs the summary stage for one document.
type Summarizer interface {
	Summarize(ctx context.Context, documentID uuid.UUID) error
}

// ProcessorQueue fans jobs out to a fixed worker pool. Job failures are
// logged only; the outcome of every run is persisted on the document row, so
// callers poll status rather than wait on the queue.
type ProcessorQueue struct {
	ocr     OCRRunner
	summary Summarizer
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(ocr OCRRunner, summary Summarizer, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		ocr:     ocr,
		summary: summary,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) run(workerID int, job Job) {
	// A panicking job must not take the worker down with it.
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("job panicked",
				"worker_id", workerID,
				"document_id", job.DocumentID,
				"kind", job.Kind,
				"panic", r,
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	var err error
	switch job.Kind {
	case JobOCR:
		err = q.ocr.RunOCR(ctx, job.DocumentID)
	case JobSummary:
		err = q.summary.Summarize(ctx, job.DocumentID)
	default:
		q.logger.Error("unknown job kind", "worker_id", workerID, "kind", job.Kind)
		return
	}

	if err != nil {
		q.logger.Error("job failed",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"kind", job.Kind,
			"error", err,
			"queued_for_ms", time.Since(job.SubmittedAt).Milliseconds(),
		)
	} else {
		q.logger.Info("job completed",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"kind", job.Kind,
			"queued_for_ms", time.Since(job.SubmittedAt).Milliseconds(),
		)
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID, "kind", job.Kind)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("job queued", "document_id", job.DocumentID, "kind", job.Kind)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID, "kind", job.Kind)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
