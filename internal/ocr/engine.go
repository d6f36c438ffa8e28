package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"github.com/danielokoye/meddocs/internal/imaging"
)

// Sentinel errors for the recognition contract. Callers match with errors.Is;
// the stored ocr_error message carries the wrapped detail.
var (
	// ErrTimeout is returned when recognition exceeds its wall-clock budget.
	ErrTimeout = errors.New("ocr timed out")
	// ErrEmptyResult is returned when the trimmed extracted text is empty.
	// An empty page is a contract violation, not a silent success.
	ErrEmptyResult = errors.New("ocr produced no text")
	// ErrEngine wraps every other extraction failure (corrupt image,
	// unsupported format, engine crash).
	ErrEngine = errors.New("ocr engine failure")
)

// CharWhitelist restricts recognition to ASCII letters, digits, and the
// punctuation that shows up on medical paperwork. Cuts down on line-noise
// glyphs from low-quality scans.
const CharWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	`.,!?@#$%^&*()[]{}<>-_=+;:"/\ `

// Backend recognizes text in a single PNG-encoded image.
type Backend interface {
	Recognize(ctx context.Context, pngData []byte) (string, error)
}

type Config struct {
	// RecognizeLimit is the wall-clock budget for a single recognition call.
	// Zero means the 30s default.
	RecognizeLimit time.Duration
}

// Engine extracts text from a single page image: preprocess, encode, then
// hand off to the recognition backend under a deadline.
type Engine struct {
	cfg     Config
	backend Backend
	logger  *slog.Logger
}

func NewEngine(cfg Config, backend Backend, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RecognizeLimit <= 0 {
		cfg.RecognizeLimit = 30 * time.Second
	}
	return &Engine{cfg: cfg, backend: backend, logger: logger}
}

// ExtractText runs preprocessing then recognition on one page image and
// returns the trimmed text. Single-page only; multi-page assembly lives in
// the pipeline.
func (e *Engine) ExtractText(ctx context.Context, img image.Image) (string, error) {
	start := time.Now()

	pre := imaging.Preprocess(img)
	var buf bytes.Buffer
	if err := png.Encode(&buf, pre); err != nil {
		return "", fmt.Errorf("%w: encode page: %v", ErrEngine, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RecognizeLimit)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := e.backend.Recognize(ctx, buf.Bytes())
		ch <- outcome{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		e.logger.Warn("ocr recognition cancelled", "after", time.Since(start), "cause", ctx.Err())
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, e.cfg.RecognizeLimit)
		}
		// Cancellation from the caller is not a recognition timeout.
		return "", fmt.Errorf("recognition cancelled: %w", ctx.Err())
	case out := <-ch:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) {
				return "", fmt.Errorf("%w after %s", ErrTimeout, e.cfg.RecognizeLimit)
			}
			return "", fmt.Errorf("%w: %v", ErrEngine, out.err)
		}
		text := strings.TrimSpace(out.text)
		if text == "" {
			return "", ErrEmptyResult
		}
		e.logger.Debug("ocr page extracted", "chars", len(text), "duration_ms", time.Since(start).Milliseconds())
		return text, nil
	}
}
