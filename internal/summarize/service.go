package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/repository"
)

var (
	// ErrNoTranscript is returned when summarization is requested before the
	// OCR stage has produced a transcript. The summary status is not touched.
	ErrNoTranscript = errors.New("document has no transcript to summarize")
	// ErrBackend wraps failures from the completion endpoint.
	ErrBackend = errors.New("summarizer backend failure")
)

// Completer produces a summary for a medical transcript.
type Completer interface {
	Complete(ctx context.Context, transcript string) (string, error)
}

// Service drives the summary state machine. It mirrors the OCR processor:
// reload by ID, commit the processing transition up front, persist the
// outcome through guarded repository updates.
type Service struct {
	docs      repository.DocumentRepository
	completer Completer
	logger    *slog.Logger

	runs singleflight.Group
}

func NewService(docs repository.DocumentRepository, completer Completer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, completer: completer, logger: logger}
}

// Summarize generates and persists a summary for the document's stored
// transcript. Summarization never runs implicitly after OCR; every run is an
// explicit request through this method.
func (s *Service) Summarize(ctx context.Context, documentID uuid.UUID) error {
	_, err, _ := s.runs.Do("summary:"+documentID.String(), func() (any, error) {
		return nil, s.summarize(ctx, documentID)
	})
	return err
}

func (s *Service) summarize(ctx context.Context, documentID uuid.UUID) error {
	start := time.Now()

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	// Precondition check before any transition: a missing transcript is a
	// rejected request, not a failed run.
	if doc.OCRStatus != constants.StatusCompleted || doc.OCRText == nil || strings.TrimSpace(*doc.OCRText) == "" {
		s.logger.Warn("summary request rejected",
			"document_id", documentID,
			"ocr_status", doc.OCRStatus,
		)
		return fmt.Errorf("document %s: %w", documentID, ErrNoTranscript)
	}

	if err := s.docs.StartSummary(ctx, documentID); err != nil {
		if errors.Is(err, repository.ErrAlreadyRunning) {
			s.logger.Warn("summary run skipped", "document_id", documentID, "reason", "already processing")
		}
		return err
	}

	summary, err := s.complete(ctx, *doc.OCRText)
	if err == nil && strings.TrimSpace(summary) == "" {
		err = fmt.Errorf("%w: empty summary", ErrBackend)
	}

	// Outcome writes use a context detached from the job's cancellation, so
	// an expired run budget still ends in a stored error, never a row stuck
	// in processing.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err != nil {
		s.logger.Error("summary run failed",
			"document_id", documentID,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if ferr := s.docs.FinishSummaryFailure(pctx, documentID, err.Error()); ferr != nil {
			s.logger.Error("failed to persist summary failure", "document_id", documentID, "error", ferr)
		}
		return err
	}

	if err := s.docs.FinishSummarySuccess(pctx, documentID, summary); err != nil {
		return fmt.Errorf("persist summary: %w", err)
	}
	s.logger.Info("summary run completed",
		"document_id", documentID,
		"chars", len(summary),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// complete guards the backend call so a panic becomes a stored failure.
func (s *Service) complete(ctx context.Context, transcript string) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: summarizer panicked: %v", ErrBackend, r)
		}
	}()
	return s.completer.Complete(ctx, transcript)
}
