package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/async"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
	"github.com/danielokoye/meddocs/internal/repository"
	"github.com/danielokoye/meddocs/internal/storage"
)

// Service handles document intake and processing triggers. All validation
// happens here, synchronously, before anything is stored or queued; the
// async stages behind the queue only ever see documents that passed it.
type Service struct {
	users  repository.UserRepository
	docs   repository.DocumentRepository
	files  storage.FileStore
	queue  async.Queue
	logger *slog.Logger
}

func NewService(
	users repository.UserRepository,
	docs repository.DocumentRepository,
	files storage.FileStore,
	queue async.Queue,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, docs: docs, files: files, queue: queue, logger: logger}
}

// UploadRequest carries one document upload.
type UploadRequest struct {
	UserID      string
	Name        string
	Category    string
	Tags        string
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadDocument validates, stores, and registers an upload, then queues the
// OCR stage. The returned document is in ocr_status=pending; callers poll
// for progress.
func (s *Service) UploadDocument(ctx context.Context, req UploadRequest) (*entity.Document, error) {
	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		s.logger.Error("invalid user_id format for upload", "user_id", req.UserID, "error", err)
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	kind, ok := constants.MatchUpload(ext, req.ContentType)
	if !ok {
		s.logger.Warn("upload rejected",
			"user_id", userID,
			"filename", filename,
			"content_type", req.ContentType,
			"reason", "unsupported extension/content-type pair",
		)
		return nil, status.Errorf(codes.InvalidArgument,
			"unsupported file type: ext=%q content_type=%q (allowed: jpg, jpeg, png, pdf)", ext, req.ContentType)
	}

	if exists, err := s.users.Exists(ctx, userID); err != nil {
		return nil, status.Errorf(codes.Internal, "check user: %v", err)
	} else if !exists {
		s.logger.Error("user not found for upload", "user_id", userID)
		return nil, status.Error(codes.NotFound, "user not found")
	}

	// Buffer up to the limit plus one byte; the extra byte is how we detect
	// an oversized stream without trusting a declared length.
	content, err := io.ReadAll(io.LimitReader(req.Content, constants.MaxUploadBytes+1))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "read upload: %v", err)
	}
	if len(content) > constants.MaxUploadBytes {
		s.logger.Warn("upload rejected",
			"user_id", userID,
			"filename", filename,
			"reason", "exceeds size limit",
		)
		return nil, status.Errorf(codes.InvalidArgument,
			"file exceeds the %d MiB upload limit", constants.MaxUploadBytes>>20)
	}
	if len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "file is empty")
	}

	path, size, err := s.files.Save(bytes.NewReader(content), filename)
	if err != nil {
		s.logger.Error("failed to store upload", "user_id", userID, "filename", filename, "error", err)
		return nil, status.Errorf(codes.Internal, "store upload: %v", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	doc, err := s.docs.Create(ctx, &entity.Document{
		UserID:      userID,
		Name:        name,
		Category:    strings.TrimSpace(req.Category),
		Tags:        strings.TrimSpace(req.Tags),
		FilePath:    path,
		FileExt:     ext,
		ContentType: strings.TrimSpace(req.ContentType),
		FileSize:    size,
		FileKind:    kind,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "register document: %v", err)
	}

	s.logger.Info("document uploaded",
		"req_id", common.RequestIDFromContext(ctx),
		"document_id", doc.ID,
		"user_id", userID,
		"kind", kind,
		"bytes", size,
	)

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		Kind:        async.JobOCR,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed for document", "document_id", doc.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue failed: %v", err)
	}
	return doc, nil
}

// RequestOCR queues an OCR run for an existing document. Requests against a
// document whose OCR stage is already processing are rejected synchronously.
func (s *Service) RequestOCR(ctx context.Context, documentID string) error {
	id, doc, err := s.loadDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if !constants.Restartable(doc.OCRStatus) {
		if doc.OCRStatus == constants.StatusCompleted {
			return status.Error(codes.Aborted, "OCR already completed for this document")
		}
		return status.Error(codes.Aborted, "an OCR run is already in flight for this document")
	}
	return s.enqueue(ctx, id, async.JobOCR)
}

// RequestSummary queues a summarization run. The transcript precondition is
// checked here so callers get a synchronous rejection instead of a queued
// job that cannot start.
func (s *Service) RequestSummary(ctx context.Context, documentID string) error {
	id, doc, err := s.loadDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.OCRStatus != constants.StatusCompleted || doc.OCRText == nil {
		return status.Error(codes.FailedPrecondition, "document has no transcript; run OCR first")
	}
	if !constants.Restartable(doc.SummaryStatus) {
		if doc.SummaryStatus == constants.StatusCompleted {
			return status.Error(codes.Aborted, "summary already completed for this document")
		}
		return status.Error(codes.Aborted, "a summarization run is already in flight for this document")
	}
	return s.enqueue(ctx, id, async.JobSummary)
}

func (s *Service) loadDocument(ctx context.Context, documentID string) (uuid.UUID, *entity.Document, error) {
	id, err := uuid.Parse(strings.TrimSpace(documentID))
	if err != nil {
		return uuid.Nil, nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return uuid.Nil, nil, status.Error(codes.NotFound, "document not found")
		}
		return uuid.Nil, nil, status.Errorf(codes.Internal, "load document: %v", err)
	}
	return id, doc, nil
}

func (s *Service) enqueue(ctx context.Context, id uuid.UUID, kind async.JobKind) error {
	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		Kind:        kind,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed for document", "document_id", id, "kind", kind, "error", err)
		return status.Errorf(codes.Internal, "enqueue failed: %v", err)
	}
	s.logger.Info("stage requested", "document_id", id, "kind", kind)
	return nil
}
