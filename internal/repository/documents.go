package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/gen/ent"
	entdoc "github.com/danielokoye/meddocs/gen/ent/document"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
)

// ErrAlreadyRunning is returned by the Start* guards when another run holds
// the processing state for this document. Callers treat it as a no-op.
var ErrAlreadyRunning = errors.New("a processing run is already in flight for this document")

// DocumentRepository persists documents and their per-stage status fields.
// Every status transition is a single atomic UPDATE guarded by the current
// status, so two runs can never interleave writes on the same stage.
type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)

	// StartOCR transitions ocr_status pending/error -> processing and clears
	// ocr_error. Fails with ErrAlreadyRunning if the stage is processing.
	StartOCR(ctx context.Context, id uuid.UUID) error
	FinishOCRSuccess(ctx context.Context, id uuid.UUID, text string) error
	FinishOCRFailure(ctx context.Context, id uuid.UUID, message string) error

	// StartSummary transitions summary_status pending/error -> processing,
	// gated on a completed OCR stage with a stored transcript.
	StartSummary(ctx context.Context, id uuid.UUID) error
	FinishSummarySuccess(ctx context.Context, id uuid.UUID, summary string) error
	FinishSummaryFailure(ctx context.Context, id uuid.UUID, message string) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toEntity(row), nil
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	create := r.ent.Document.Create().
		SetUserID(doc.UserID).
		SetName(doc.Name).
		SetFilePath(doc.FilePath).
		SetFileExt(doc.FileExt).
		SetContentType(doc.ContentType).
		SetFileSize(doc.FileSize).
		SetFileKind(string(doc.FileKind))
	if doc.Category != "" {
		create = create.SetCategory(doc.Category)
	}
	if doc.Tags != "" {
		create = create.SetTags(doc.Tags)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "user_id", doc.UserID, "name", doc.Name, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "user_id", doc.UserID, "kind", doc.FileKind)
	return toEntity(row), nil
}

func (r *documentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.UserID(userID)).
		Order(ent.Desc(entdoc.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out, nil
}

func (r *documentRepo) StartOCR(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.OcrStatusIn(string(constants.StatusPending), string(constants.StatusError)),
		).
		SetOcrStatus(string(constants.StatusProcessing)).
		ClearOcrError().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr start transition failed", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.startConflict(ctx, id, "ocr")
	}
	r.logger.Info("ocr started", "document_id", id)
	return nil
}

func (r *documentRepo) FinishOCRSuccess(ctx context.Context, id uuid.UUID, text string) error {
	_, err := r.ent.Document.Update().
		Where(entdoc.ID(id)).
		SetOcrStatus(string(constants.StatusCompleted)).
		SetOcrText(text).
		ClearOcrError().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr finish(completed) failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("ocr completed", "document_id", id, "chars", len(text))
	return nil
}

func (r *documentRepo) FinishOCRFailure(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Document.Update().
		Where(entdoc.ID(id)).
		SetOcrStatus(string(constants.StatusError)).
		SetOcrError(message).
		ClearOcrText().
		Save(ctx)
	if err != nil {
		r.logger.Error("ocr finish(error) failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("ocr failed", "document_id", id, "error", message)
	return nil
}

func (r *documentRepo) StartSummary(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.SummaryStatusIn(string(constants.StatusPending), string(constants.StatusError)),
			entdoc.OcrStatus(string(constants.StatusCompleted)),
			entdoc.OcrTextNotNil(),
		).
		SetSummaryStatus(string(constants.StatusProcessing)).
		ClearSummaryError().
		Save(ctx)
	if err != nil {
		r.logger.Error("summary start transition failed", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.startConflict(ctx, id, "summary")
	}
	r.logger.Info("summary started", "document_id", id)
	return nil
}

func (r *documentRepo) FinishSummarySuccess(ctx context.Context, id uuid.UUID, summary string) error {
	_, err := r.ent.Document.Update().
		Where(entdoc.ID(id)).
		SetSummaryStatus(string(constants.StatusCompleted)).
		SetSummary(summary).
		ClearSummaryError().
		Save(ctx)
	if err != nil {
		r.logger.Error("summary finish(completed) failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("summary completed", "document_id", id, "chars", len(summary))
	return nil
}

func (r *documentRepo) FinishSummaryFailure(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Document.Update().
		Where(entdoc.ID(id)).
		SetSummaryStatus(string(constants.StatusError)).
		SetSummaryError(message).
		ClearSummary().
		Save(ctx)
	if err != nil {
		r.logger.Error("summary finish(error) failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("summary failed", "document_id", id, "error", message)
	return nil
}

// startConflict reports why a guarded Start* matched no rows.
func (r *documentRepo) startConflict(ctx context.Context, id uuid.UUID, stage string) error {
	exists, err := r.ent.Document.Query().Where(entdoc.ID(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	r.logger.Warn("stage start rejected", "document_id", id, "stage", stage)
	return fmt.Errorf("%s stage for document %s: %w", stage, id, ErrAlreadyRunning)
}

func toEntity(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Category:      row.Category,
		Tags:          row.Tags,
		FilePath:      row.FilePath,
		FileExt:       row.FileExt,
		ContentType:   row.ContentType,
		FileSize:      row.FileSize,
		FileKind:      constants.FileKind(row.FileKind),
		UploadedAt:    row.UploadedAt,
		OCRStatus:     constants.ProcessingStatus(row.OcrStatus),
		OCRText:       row.OcrText,
		OCRError:      row.OcrError,
		SummaryStatus: constants.ProcessingStatus(row.SummaryStatus),
		Summary:       row.Summary,
		SummaryError:  row.SummaryError,
	}
}
