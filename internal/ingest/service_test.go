package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/async"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
)

type fakeUsers struct {
	known map[uuid.UUID]bool
}

func (f *fakeUsers) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func (f *fakeUsers) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, errors.New("not used")
}

func (f *fakeUsers) Create(context.Context, string) (*entity.User, error) {
	return nil, errors.New("not used")
}

type fakeDocs struct {
	created []*entity.Document
	byID    map[uuid.UUID]*entity.Document
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return d, nil
}

func (f *fakeDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	doc.ID = uuid.New()
	f.created = append(f.created, doc)
	return doc, nil
}

func (f *fakeDocs) ListByUser(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return nil, errors.New("not used")
}

func (f *fakeDocs) StartOCR(context.Context, uuid.UUID) error { return errors.New("not used") }
func (f *fakeDocs) FinishOCRSuccess(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (f *fakeDocs) FinishOCRFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (f *fakeDocs) StartSummary(context.Context, uuid.UUID) error { return errors.New("not used") }
func (f *fakeDocs) FinishSummarySuccess(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (f *fakeDocs) FinishSummaryFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}

type fakeFiles struct {
	saved [][]byte
}

func (f *fakeFiles) Exists(string) bool                    { return true }
func (f *fakeFiles) ReadBytes(string) ([]byte, error)      { return nil, errors.New("not used") }
func (f *fakeFiles) ReadImage(string) (image.Image, error) { return nil, errors.New("not used") }

func (f *fakeFiles) Save(r io.Reader, originalName string) (string, int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	f.saved = append(f.saved, b)
	return "/uploads/" + originalName, len(b), nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

func newTestService() (*Service, *fakeUsers, *fakeDocs, *fakeFiles, *fakeQueue, uuid.UUID) {
	userID := uuid.New()
	users := &fakeUsers{known: map[uuid.UUID]bool{userID: true}}
	docs := &fakeDocs{byID: map[uuid.UUID]*entity.Document{}}
	files := &fakeFiles{}
	queue := &fakeQueue{}
	return NewService(users, docs, files, queue, nil), users, docs, files, queue, userID
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("status code = %v (err %v), want %v", status.Code(err), err, code)
	}
}

func TestUploadDocument(t *testing.T) {
	svc, _, docs, files, queue, userID := newTestService()

	doc, err := svc.UploadDocument(context.Background(), UploadRequest{
		UserID:      userID.String(),
		Name:        "Lab results",
		Filename:    "results.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4 fake"),
	})
	if err != nil {
		t.Fatalf("UploadDocument() error = %v", err)
	}
	if doc.FileKind != constants.FileKindPDF {
		t.Fatalf("file_kind = %s, want PDF", doc.FileKind)
	}
	if len(files.saved) != 1 || len(docs.created) != 1 {
		t.Fatalf("saved=%d created=%d, want 1 each", len(files.saved), len(docs.created))
	}
	if len(queue.jobs) != 1 || queue.jobs[0].Kind != async.JobOCR || queue.jobs[0].DocumentID != doc.ID {
		t.Fatalf("queued jobs = %+v, want one OCR job for %s", queue.jobs, doc.ID)
	}
}

func TestUploadDocumentDefaultsNameFromFilename(t *testing.T) {
	svc, _, docs, _, _, userID := newTestService()

	_, err := svc.UploadDocument(context.Background(), UploadRequest{
		UserID:      userID.String(),
		Filename:    "discharge-note.png",
		ContentType: "image/png",
		Content:     bytes.NewReader([]byte{1, 2, 3}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if docs.created[0].Name != "discharge-note" {
		t.Fatalf("name = %q, want filename stem", docs.created[0].Name)
	}
}

func TestUploadDocumentRejections(t *testing.T) {
	svc, _, _, files, queue, userID := newTestService()

	cases := []struct {
		name string
		req  UploadRequest
		code codes.Code
	}{
		{
			name: "malformed user id",
			req: UploadRequest{
				UserID: "not-a-uuid", Filename: "a.pdf",
				ContentType: "application/pdf", Content: strings.NewReader("x"),
			},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown user",
			req: UploadRequest{
				UserID: uuid.New().String(), Filename: "a.pdf",
				ContentType: "application/pdf", Content: strings.NewReader("x"),
			},
			code: codes.NotFound,
		},
		{
			name: "unsupported extension",
			req: UploadRequest{
				UserID: userID.String(), Filename: "a.tiff",
				ContentType: "image/tiff", Content: strings.NewReader("x"),
			},
			code: codes.InvalidArgument,
		},
		{
			name: "extension and content type disagree",
			req: UploadRequest{
				UserID: userID.String(), Filename: "a.png",
				ContentType: "application/pdf", Content: strings.NewReader("x"),
			},
			code: codes.InvalidArgument,
		},
		{
			name: "missing filename",
			req: UploadRequest{
				UserID: userID.String(),
				ContentType: "application/pdf", Content: strings.NewReader("x"),
			},
			code: codes.InvalidArgument,
		},
		{
			name: "oversized file",
			req: UploadRequest{
				UserID: userID.String(), Filename: "big.pdf",
				ContentType: "application/pdf",
				Content:     bytes.NewReader(make([]byte, constants.MaxUploadBytes+1)),
			},
			code: codes.InvalidArgument,
		},
		{
			name: "empty file",
			req: UploadRequest{
				UserID: userID.String(), Filename: "empty.pdf",
				ContentType: "application/pdf", Content: strings.NewReader(""),
			},
			code: codes.InvalidArgument,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadDocument(context.Background(), tc.req)
			wantCode(t, err, tc.code)
		})
	}
	if len(files.saved) != 0 {
		t.Fatalf("rejected uploads were stored: %d", len(files.saved))
	}
	if len(queue.jobs) != 0 {
		t.Fatalf("rejected uploads were queued: %d", len(queue.jobs))
	}
}

func TestUploadDocumentAtExactLimit(t *testing.T) {
	svc, _, _, _, _, userID := newTestService()

	_, err := svc.UploadDocument(context.Background(), UploadRequest{
		UserID:      userID.String(),
		Filename:    "limit.pdf",
		ContentType: "application/pdf",
		Content:     bytes.NewReader(make([]byte, constants.MaxUploadBytes)),
	})
	if err != nil {
		t.Fatalf("upload at exactly the limit rejected: %v", err)
	}
}

func TestRequestOCR(t *testing.T) {
	svc, _, docs, _, queue, _ := newTestService()
	doc := &entity.Document{ID: uuid.New(), OCRStatus: constants.StatusError}
	docs.byID[doc.ID] = doc

	if err := svc.RequestOCR(context.Background(), doc.ID.String()); err != nil {
		t.Fatalf("RequestOCR() error = %v", err)
	}
	if len(queue.jobs) != 1 || queue.jobs[0].Kind != async.JobOCR {
		t.Fatalf("queued jobs = %+v", queue.jobs)
	}
}

func TestRequestOCRWhileProcessing(t *testing.T) {
	svc, _, docs, _, queue, _ := newTestService()
	doc := &entity.Document{ID: uuid.New(), OCRStatus: constants.StatusProcessing}
	docs.byID[doc.ID] = doc

	err := svc.RequestOCR(context.Background(), doc.ID.String())
	wantCode(t, err, codes.Aborted)
	if len(queue.jobs) != 0 {
		t.Fatalf("job queued despite in-flight run")
	}
}

func TestRequestOCROnCompletedDocument(t *testing.T) {
	svc, _, docs, _, queue, _ := newTestService()
	text := "transcript"
	doc := &entity.Document{ID: uuid.New(), OCRStatus: constants.StatusCompleted, OCRText: &text}
	docs.byID[doc.ID] = doc

	err := svc.RequestOCR(context.Background(), doc.ID.String())
	wantCode(t, err, codes.Aborted)
	if msg := status.Convert(err).Message(); !strings.Contains(msg, "completed") {
		t.Fatalf("rejection message = %q, want it to name the completed state", msg)
	}
	if len(queue.jobs) != 0 {
		t.Fatalf("job queued for completed document")
	}
}

func TestRequestOCRUnknownDocument(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	wantCode(t, svc.RequestOCR(context.Background(), uuid.New().String()), codes.NotFound)
	wantCode(t, svc.RequestOCR(context.Background(), "nope"), codes.InvalidArgument)
}

func TestRequestSummary(t *testing.T) {
	svc, _, docs, _, queue, _ := newTestService()
	text := "transcript"
	doc := &entity.Document{
		ID:            uuid.New(),
		OCRStatus:     constants.StatusCompleted,
		OCRText:       &text,
		SummaryStatus: constants.StatusPending,
	}
	docs.byID[doc.ID] = doc

	if err := svc.RequestSummary(context.Background(), doc.ID.String()); err != nil {
		t.Fatalf("RequestSummary() error = %v", err)
	}
	if len(queue.jobs) != 1 || queue.jobs[0].Kind != async.JobSummary {
		t.Fatalf("queued jobs = %+v", queue.jobs)
	}
}

func TestRequestSummaryWithoutTranscript(t *testing.T) {
	svc, _, docs, _, queue, _ := newTestService()
	doc := &entity.Document{ID: uuid.New(), OCRStatus: constants.StatusProcessing}
	docs.byID[doc.ID] = doc

	err := svc.RequestSummary(context.Background(), doc.ID.String())
	wantCode(t, err, codes.FailedPrecondition)
	if len(queue.jobs) != 0 {
		t.Fatalf("job queued despite missing transcript")
	}
}
