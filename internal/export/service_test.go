package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/entity"
)

type listOnlyDocs struct {
	docs []*entity.Document
}

func (l *listOnlyDocs) ListByUser(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return l.docs, nil
}

func (l *listOnlyDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (l *listOnlyDocs) Create(context.Context, *entity.Document) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (l *listOnlyDocs) StartOCR(context.Context, uuid.UUID) error { return errors.New("not used") }
func (l *listOnlyDocs) FinishOCRSuccess(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (l *listOnlyDocs) FinishOCRFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (l *listOnlyDocs) StartSummary(context.Context, uuid.UUID) error { return errors.New("not used") }
func (l *listOnlyDocs) FinishSummarySuccess(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (l *listOnlyDocs) FinishSummaryFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}

func TestExportStatusXLSX(t *testing.T) {
	text := "--- Page 1 ---\nDiagnosis: flu\n"
	ocrErr := "ocr engine failure: blurred page"
	docs := &listOnlyDocs{docs: []*entity.Document{
		{
			ID:            uuid.New(),
			Name:          "lab-results",
			Category:      "labs",
			FileKind:      constants.FileKindPDF,
			UploadedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			OCRStatus:     constants.StatusCompleted,
			OCRText:       &text,
			SummaryStatus: constants.StatusPending,
		},
		{
			ID:            uuid.New(),
			Name:          "referral",
			FileKind:      constants.FileKindImage,
			OCRStatus:     constants.StatusError,
			OCRError:      &ocrErr,
			SummaryStatus: constants.StatusPending,
		},
	}}

	svc := NewService(docs, nil)
	out, err := svc.ExportStatusXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportStatusXLSX() error = %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Documents")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Document" || rows[0][4] != "OCR Status" {
		t.Fatalf("unexpected headers: %v", rows[0])
	}
	if rows[1][0] != "lab-results" || rows[1][4] != "completed" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[1][6] != "30" {
		t.Fatalf("transcript chars = %q, want 30", rows[1][6])
	}
	if rows[2][4] != "error" || rows[2][5] != ocrErr {
		t.Fatalf("unexpected error row: %v", rows[2])
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	// Repeated multi-byte runes so any byte-based cut would land mid-rune.
	in := strings.Repeat("é", 10)

	got := truncate(in, 5)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", 4) + "…"; got != want {
		t.Fatalf("truncate = %q, want %q", got, want)
	}
	if got := truncate("short", 140); got != "short" {
		t.Fatalf("truncate under limit = %q, want unchanged", got)
	}
}

func TestExportStatusXLSXEmpty(t *testing.T) {
	svc := NewService(&listOnlyDocs{}, nil)
	out, err := svc.ExportStatusXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportStatusXLSX() error = %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows("Documents")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
}
