package ocr

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"
)

type fakeBackend struct {
	text  string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeBackend) Recognize(ctx context.Context, pngData []byte) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.text, f.err
}

func testImage() image.Image {
	return image.NewGray(image.Rect(0, 0, 4, 4))
}

func TestExtractTextTrimsResult(t *testing.T) {
	backend := &fakeBackend{text: "  Diagnosis: flu \n"}
	eng := NewEngine(Config{}, backend, nil)

	got, err := eng.ExtractText(context.Background(), testImage())
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}
	if got != "Diagnosis: flu" {
		t.Fatalf("ExtractText() = %q, want %q", got, "Diagnosis: flu")
	}
	if backend.calls != 1 {
		t.Fatalf("backend calls = %d, want 1", backend.calls)
	}
}

func TestExtractTextEmptyResult(t *testing.T) {
	backend := &fakeBackend{text: "   \n\t "}
	eng := NewEngine(Config{}, backend, nil)

	_, err := eng.ExtractText(context.Background(), testImage())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("ExtractText() error = %v, want ErrEmptyResult", err)
	}
}

func TestExtractTextBackendFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("engine crashed")}
	eng := NewEngine(Config{}, backend, nil)

	_, err := eng.ExtractText(context.Background(), testImage())
	if !errors.Is(err, ErrEngine) {
		t.Fatalf("ExtractText() error = %v, want ErrEngine", err)
	}
}

func TestExtractTextTimeout(t *testing.T) {
	backend := &fakeBackend{text: "too late", delay: time.Second}
	eng := NewEngine(Config{RecognizeLimit: 20 * time.Millisecond}, backend, nil)

	start := time.Now()
	_, err := eng.ExtractText(context.Background(), testImage())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("ExtractText() error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("timeout took %s, want prompt cancellation", elapsed)
	}
}

func TestExtractTextCallerCancellationIsNotTimeout(t *testing.T) {
	backend := &fakeBackend{text: "too late", delay: time.Second}
	eng := NewEngine(Config{}, backend, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := eng.ExtractText(ctx, testImage())
	if err == nil {
		t.Fatal("ExtractText() expected error")
	}
	if errors.Is(err, ErrTimeout) {
		t.Fatalf("ExtractText() error = %v, caller cancellation reported as timeout", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ExtractText() error = %v, want wrapped context.Canceled", err)
	}
}

func TestExtractTextDeadlineFromBackend(t *testing.T) {
	backend := &fakeBackend{err: context.DeadlineExceeded}
	eng := NewEngine(Config{}, backend, nil)

	_, err := eng.ExtractText(context.Background(), testImage())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("ExtractText() error = %v, want ErrTimeout", err)
	}
}
