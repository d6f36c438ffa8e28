package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/danielokoye/meddocs/gen/proto/meddocs/v1"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/ingest"
	"github.com/danielokoye/meddocs/internal/repository"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	ingest *ingest.Service
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewDocumentsService(ing *ingest.Service, docs repository.DocumentRepository, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{ingest: ing, docs: docs, logger: logger}
}

// UploadDocument implements v1.DocumentsServiceServer.
func (s *DocumentsService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	doc, err := s.ingest.UploadDocument(ctx, ingest.UploadRequest{
		UserID:      req.GetUserId(),
		Name:        req.GetName(),
		Category:    req.GetCategory(),
		Tags:        req.GetTags(),
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		Content:     bytes.NewReader(req.GetContent()),
	})
	if err != nil {
		return nil, err
	}
	return &v1.UploadDocumentResponse{
		DocumentId: doc.ID.String(),
		FileKind:   string(doc.FileKind),
		OcrStatus:  string(doc.OCRStatus),
		UploadedAt: doc.UploadedAt.UTC().Format(time.RFC3339),
	}, nil
}

// GetProcessingStatus implements v1.DocumentsServiceServer. The response
// carries transcript length, never the transcript; the summary text rides
// along once its stage completes.
func (s *DocumentsService) GetProcessingStatus(ctx context.Context, req *v1.GetProcessingStatusRequest) (*v1.GetProcessingStatusResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("status lookup failed", "document_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}

	resp := &v1.GetProcessingStatusResponse{
		DocumentId:    doc.ID.String(),
		OcrStatus:     string(doc.OCRStatus),
		TextLength:    int64(doc.TranscriptLength()),
		SummaryStatus: string(doc.SummaryStatus),
	}
	if doc.OCRError != nil {
		resp.OcrError = *doc.OCRError
	}
	if doc.Summary != nil {
		resp.Summary = *doc.Summary
	}
	if doc.SummaryError != nil {
		resp.SummaryError = *doc.SummaryError
	}
	return resp, nil
}

// RunOCR implements v1.DocumentsServiceServer.
func (s *DocumentsService) RunOCR(ctx context.Context, req *v1.RunOCRRequest) (*v1.RunOCRResponse, error) {
	if err := s.ingest.RequestOCR(ctx, req.GetDocumentId()); err != nil {
		return nil, err
	}
	return &v1.RunOCRResponse{}, nil
}

// Summarize implements v1.DocumentsServiceServer.
func (s *DocumentsService) Summarize(ctx context.Context, req *v1.SummarizeRequest) (*v1.SummarizeResponse, error) {
	if err := s.ingest.RequestSummary(ctx, req.GetDocumentId()); err != nil {
		return nil, err
	}
	return &v1.SummarizeResponse{}, nil
}
