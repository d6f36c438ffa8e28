package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/danielokoye/meddocs/gen/proto/meddocs/v1"
	"github.com/danielokoye/meddocs/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportStatusReport(ctx context.Context, req *v1.ExportStatusReportRequest) (*v1.ExportStatusReportResponse, error) {
	uid := strings.TrimSpace(req.GetUserId())
	userID, err := uuid.Parse(uid)
	if err != nil || uid == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}

	xlsx, err := s.svc.ExportStatusXLSX(ctx, userID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", uid, "err", err)
		return nil, status.Errorf(codes.Internal, "export failed: %v", err)
	}
	return &v1.ExportStatusReportResponse{Xlsx: xlsx}, nil
}
