package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingRunner struct {
	mu   sync.Mutex
	ids  []uuid.UUID
	err  error
	done chan struct{}
}

func (r *recordingRunner) record(id uuid.UUID) error {
	r.mu.Lock()
	r.ids = append(r.ids, id)
	r.mu.Unlock()
	if r.done != nil {
		r.done <- struct{}{}
	}
	return r.err
}

func (r *recordingRunner) RunOCR(_ context.Context, id uuid.UUID) error    { return r.record(id) }
func (r *recordingRunner) Summarize(_ context.Context, id uuid.UUID) error { return r.record(id) }

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

func TestQueueDispatchesByKind(t *testing.T) {
	ocr := &recordingRunner{done: make(chan struct{}, 4)}
	sum := &recordingRunner{done: make(chan struct{}, 4)}
	q := NewProcessorQueue(ocr, sum, nil, WithWorkers(2))
	defer q.Shutdown(context.Background())

	ocrID, sumID := uuid.New(), uuid.New()
	if err := q.Enqueue(context.Background(), Job{DocumentID: ocrID, Kind: JobOCR}); err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue(context.Background(), Job{DocumentID: sumID, Kind: JobSummary}); err != nil {
		t.Fatal(err)
	}

	waitFor(t, ocr.done)
	waitFor(t, sum.done)

	if ocr.count() != 1 || ocr.ids[0] != ocrID {
		t.Fatalf("ocr runner got %v, want [%s]", ocr.ids, ocrID)
	}
	if sum.count() != 1 || sum.ids[0] != sumID {
		t.Fatalf("summarizer got %v, want [%s]", sum.ids, sumID)
	}
}

func TestQueueSurvivesJobErrors(t *testing.T) {
	ocr := &recordingRunner{err: errors.New("engine exploded"), done: make(chan struct{}, 8)}
	q := NewProcessorQueue(ocr, &recordingRunner{}, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Kind: JobOCR}); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		waitFor(t, ocr.done)
	}
	if ocr.count() != 3 {
		t.Fatalf("ran %d jobs, want 3 despite failures", ocr.count())
	}
}

type panickyRunner struct {
	mu    sync.Mutex
	calls int
	done  chan struct{}
}

func (r *panickyRunner) RunOCR(_ context.Context, _ uuid.UUID) error {
	r.mu.Lock()
	r.calls++
	n := r.calls
	r.mu.Unlock()
	r.done <- struct{}{}
	if n == 1 {
		panic("job exploded")
	}
	return nil
}

func (r *panickyRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestQueueWorkerSurvivesPanickingJob(t *testing.T) {
	runner := &panickyRunner{done: make(chan struct{}, 4)}
	q := NewProcessorQueue(runner, &recordingRunner{}, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	// First job panics; the single worker must still pick up the second.
	for i := 0; i < 2; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Kind: JobOCR}); err != nil {
			t.Fatal(err)
		}
	}
	waitFor(t, runner.done)
	waitFor(t, runner.done)

	if runner.count() != 2 {
		t.Fatalf("ran %d jobs, want 2 with one worker after a panic", runner.count())
	}
}

func TestQueueShutdownDrains(t *testing.T) {
	ocr := &recordingRunner{}
	q := NewProcessorQueue(ocr, &recordingRunner{}, nil, WithWorkers(2), WithQueueSize(16))

	const n = 10
	for i := 0; i < n; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Kind: JobOCR}); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if ocr.count() != n {
		t.Fatalf("drained %d jobs, want %d", ocr.count(), n)
	}

	// Enqueue after shutdown is a logged no-op.
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Kind: JobOCR}); err != nil {
		t.Fatalf("post-shutdown enqueue returned error: %v", err)
	}
	if ocr.count() != n {
		t.Fatalf("job ran after shutdown")
	}
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job")
	}
}
