package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/entity"
	"github.com/danielokoye/meddocs/internal/repository"
	"github.com/danielokoye/meddocs/internal/storage"
)

var (
	// ErrSourceFileMissing is stored when the uploaded file has vanished
	// from the file store before extraction could start.
	ErrSourceFileMissing = errors.New("source file missing")
	// ErrNoTextExtracted is stored when a run succeeds mechanically but the
	// assembled transcript is empty after trimming.
	ErrNoTextExtracted = errors.New("no text extracted from document")
)

// TextExtractor runs OCR on a single page image.
type TextExtractor interface {
	ExtractText(ctx context.Context, img image.Image) (string, error)
}

// Rasterizer renders a PDF into ordered page images.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) ([]image.Image, error)
}

// Processor drives the OCR state machine for one document at a time:
//
//	pending/error --(start)--> processing --(success)--> completed
//	processing --(any failure)--> error
//
// It receives a document ID, reloads state through the repository at the
// start of the run, and writes every transition back through the same
// repository. No live document handles cross the async boundary.
type Processor struct {
	docs   repository.DocumentRepository
	files  storage.FileStore
	engine TextExtractor
	raster Rasterizer
	logger *slog.Logger

	// runs collapses concurrent invocations for the same document in this
	// process; the repository's guarded transitions cover other processes.
	runs singleflight.Group
}

func NewProcessor(
	docs repository.DocumentRepository,
	files storage.FileStore,
	engine TextExtractor,
	raster Rasterizer,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{docs: docs, files: files, engine: engine, raster: raster, logger: logger}
}

// RunOCR extracts text for the document and persists the outcome. All
// extraction failures end up in the document's ocr_error field; the returned
// error exists for synchronous callers (CLI, tests) and mirrors it.
func (p *Processor) RunOCR(ctx context.Context, documentID uuid.UUID) error {
	_, err, _ := p.runs.Do("ocr:"+documentID.String(), func() (any, error) {
		return nil, p.runOCR(ctx, documentID)
	})
	return err
}

func (p *Processor) runOCR(ctx context.Context, documentID uuid.UUID) error {
	start := time.Now()

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	// Commit the processing transition before any extraction work, so a
	// crash mid-run leaves a visible "processing" state rather than a
	// silently stale "pending".
	if err := p.docs.StartOCR(ctx, documentID); err != nil {
		if errors.Is(err, repository.ErrAlreadyRunning) {
			p.logger.Warn("ocr run skipped", "document_id", documentID, "reason", "already processing")
		}
		return err
	}

	text, err := p.extract(ctx, doc)

	// The outcome write must land even when the job context itself is what
	// failed (expired budget, cancelled worker); a row left in processing
	// has no recovery path.
	pctx, cancel := persistContext(ctx)
	defer cancel()

	if err != nil {
		p.logger.Error("ocr run failed",
			"document_id", documentID,
			"kind", doc.FileKind,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if ferr := p.docs.FinishOCRFailure(pctx, documentID, err.Error()); ferr != nil {
			p.logger.Error("failed to persist ocr failure", "document_id", documentID, "error", ferr)
		}
		return err
	}

	if err := p.docs.FinishOCRSuccess(pctx, documentID, text); err != nil {
		return fmt.Errorf("persist transcript: %w", err)
	}
	p.logger.Info("ocr run completed",
		"document_id", documentID,
		"kind", doc.FileKind,
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Processor) extract(ctx context.Context, doc *entity.Document) (text string, err error) {
	// A panic anywhere in extraction becomes a stored failure, not a dead
	// worker and a wedged row.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ocr run panicked: %v", r)
		}
	}()

	if !p.files.Exists(doc.FilePath) {
		return "", fmt.Errorf("%w: %s", ErrSourceFileMissing, doc.FilePath)
	}

	var transcript string
	switch doc.FileKind {
	case constants.FileKindPDF:
		pages, err := p.raster.Rasterize(ctx, doc.FilePath)
		if err != nil {
			return "", err
		}
		transcript, err = p.assembleTranscript(ctx, pages)
		if err != nil {
			return "", err
		}
	case constants.FileKindImage:
		img, err := p.files.ReadImage(doc.FilePath)
		if err != nil {
			return "", fmt.Errorf("decode image: %w", err)
		}
		text, err := p.engine.ExtractText(ctx, img)
		if err != nil {
			return "", err
		}
		transcript = text
	default:
		return "", fmt.Errorf("unsupported file kind: %q", doc.FileKind)
	}

	if strings.TrimSpace(transcript) == "" {
		return "", ErrNoTextExtracted
	}
	return transcript, nil
}

// persistContext detaches outcome writes from the job context's
// cancellation while still bounding them.
func persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
}

// assembleTranscript OCRs pages strictly in order, one page image in memory
// at a time, and joins the per-page blocks with blank lines. A failure on
// any page aborts the whole document; no partial transcript survives.
func (p *Processor) assembleTranscript(ctx context.Context, pages []image.Image) (string, error) {
	var b strings.Builder
	for i, page := range pages {
		text, err := p.engine.ExtractText(ctx, page)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n", i+1, text)
	}
	return b.String(), nil
}
