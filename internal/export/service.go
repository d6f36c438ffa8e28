package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/danielokoye/meddocs/internal/repository"
)

// Service produces XLSX bytes summarizing a user's documents and their
// processing state.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportStatusXLSX returns a workbook with one row per document owned by the
// user, newest upload first. Transcript contents stay out of the report;
// only their length is included.
func (s *Service) ExportStatusXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document",
		"Category",
		"Kind",
		"Uploaded",
		"OCR Status",
		"OCR Error",
		"Transcript Chars",
		"Summary Status",
		"Summary Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.Name)
		write(2, d.Category)
		write(3, string(d.FileKind))
		if !d.UploadedAt.IsZero() {
			write(4, d.UploadedAt.UTC().Format("2006-01-02 15:04"))
		} else {
			write(4, "")
		}
		write(5, string(d.OCRStatus))
		write(6, truncate(deref(d.OCRError), 140))
		write(7, d.TranscriptLength())
		write(8, string(d.SummaryStatus))
		write(9, truncate(deref(d.SummaryError), 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // document name
	_ = f.SetColWidth(sheet, "B", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 18) // uploaded
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 48) // ocr error
	_ = f.SetColWidth(sheet, "G", "I", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// truncate caps s at n runes. Error messages can carry multi-byte text, so
// slicing happens on rune boundaries.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
