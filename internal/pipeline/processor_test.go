package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
	"github.com/danielokoye/meddocs/internal/repository"
)

// fakeDocs is an in-memory DocumentRepository with the same guarded
// transition semantics as the real one.
type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs(docs ...*entity.Document) *fakeDocs {
	f := &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
	for _, d := range docs {
		f.docs[d.ID] = d
	}
	return f
}

func (f *fakeDocs) get(id uuid.UUID) (*entity.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return d, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return nil, err
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[doc.ID] = doc
	return doc, nil
}

func (f *fakeDocs) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocs) StartOCR(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	if !constants.Restartable(d.OCRStatus) {
		return repository.ErrAlreadyRunning
	}
	d.OCRStatus = constants.StatusProcessing
	d.OCRError = nil
	return nil
}

func (f *fakeDocs) FinishOCRSuccess(ctx context.Context, id uuid.UUID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	d.OCRStatus = constants.StatusCompleted
	d.OCRText = &text
	d.OCRError = nil
	return nil
}

func (f *fakeDocs) FinishOCRFailure(ctx context.Context, id uuid.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	d.OCRStatus = constants.StatusError
	d.OCRError = &message
	d.OCRText = nil
	return nil
}

func (f *fakeDocs) StartSummary(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	if d.OCRStatus != constants.StatusCompleted || d.OCRText == nil {
		return repository.ErrAlreadyRunning
	}
	if !constants.Restartable(d.SummaryStatus) {
		return repository.ErrAlreadyRunning
	}
	d.SummaryStatus = constants.StatusProcessing
	d.SummaryError = nil
	return nil
}

func (f *fakeDocs) FinishSummarySuccess(_ context.Context, id uuid.UUID, summary string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	d.SummaryStatus = constants.StatusCompleted
	d.Summary = &summary
	d.SummaryError = nil
	return nil
}

func (f *fakeDocs) FinishSummaryFailure(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.get(id)
	if err != nil {
		return err
	}
	d.SummaryStatus = constants.StatusError
	d.SummaryError = &message
	d.Summary = nil
	return nil
}

// fakeStore serves page-marker images for known paths.
type fakeStore struct {
	images map[string]image.Image
}

func (f *fakeStore) Exists(path string) bool {
	_, ok := f.images[path]
	return ok
}

func (f *fakeStore) ReadBytes(path string) ([]byte, error) {
	return nil, errors.New("not used")
}

func (f *fakeStore) ReadImage(path string) (image.Image, error) {
	img, ok := f.images[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return img, nil
}

func (f *fakeStore) Save(io.Reader, string) (string, int, error) {
	return "", 0, errors.New("not used")
}

// fakeEngine returns canned text per page marker and records call order.
type fakeEngine struct {
	texts    map[uint8]string
	errAt    uint8
	err      error
	calls    []uint8
	delay    time.Duration // when set, honors ctx cancellation while waiting
	panicMsg string        // when set, every call panics
}

func marker(img image.Image) uint8 {
	return img.(*image.Gray).GrayAt(0, 0).Y
}

func (f *fakeEngine) ExtractText(ctx context.Context, img image.Image) (string, error) {
	m := marker(img)
	f.calls = append(f.calls, m)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.err != nil && m == f.errAt {
		return "", f.err
	}
	return f.texts[m], nil
}

// fakeRaster returns preset page images.
type fakeRaster struct {
	pages []image.Image
	err   error
	calls int
}

func (f *fakeRaster) Rasterize(ctx context.Context, path string) ([]image.Image, error) {
	f.calls++
	return f.pages, f.err
}

func pageImage(n uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: n})
	return img
}

func newDoc(kind constants.FileKind, path string) *entity.Document {
	return &entity.Document{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Name:          "lab-results",
		FilePath:      path,
		FileKind:      kind,
		OCRStatus:     constants.StatusPending,
		SummaryStatus: constants.StatusPending,
	}
}

func TestRunOCRImageDocument(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "scan.png")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"scan.png": pageImage(1)}}
	engine := &fakeEngine{texts: map[uint8]string{1: "Diagnosis: flu"}}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	if err := p.RunOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("RunOCR() error = %v", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusCompleted {
		t.Fatalf("ocr_status = %s, want completed", got.OCRStatus)
	}
	if got.OCRText == nil || *got.OCRText != "Diagnosis: flu" {
		t.Fatalf("ocr_text = %v, want %q", got.OCRText, "Diagnosis: flu")
	}
	if got.OCRError != nil {
		t.Fatalf("ocr_error = %q, want nil", *got.OCRError)
	}
}

func TestRunOCRTwoPagePDFTranscript(t *testing.T) {
	doc := newDoc(constants.FileKindPDF, "record.pdf")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"record.pdf": nil}}
	engine := &fakeEngine{texts: map[uint8]string{1: "Diagnosis: flu", 2: "Medication: rest"}}
	raster := &fakeRaster{pages: []image.Image{pageImage(1), pageImage(2)}}
	p := NewProcessor(docs, store, engine, raster, nil)

	if err := p.RunOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("RunOCR() error = %v", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	want := "--- Page 1 ---\nDiagnosis: flu\n\n--- Page 2 ---\nMedication: rest\n"
	if got.OCRText == nil || *got.OCRText != want {
		t.Fatalf("transcript = %q, want %q", deref(got.OCRText), want)
	}
}

func TestRunOCRManyPagesInOrder(t *testing.T) {
	doc := newDoc(constants.FileKindPDF, "record.pdf")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"record.pdf": nil}}
	texts := make(map[uint8]string)
	var pages []image.Image
	for i := uint8(1); i <= 11; i++ {
		texts[i] = fmt.Sprintf("page body %d", i)
		pages = append(pages, pageImage(i))
	}
	engine := &fakeEngine{texts: texts}
	p := NewProcessor(docs, store, engine, &fakeRaster{pages: pages}, nil)

	if err := p.RunOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("RunOCR() error = %v", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	for i := 1; i <= 11; i++ {
		m := fmt.Sprintf("--- Page %d ---", i)
		if !strings.Contains(*got.OCRText, m) {
			t.Fatalf("transcript missing marker %q", m)
		}
	}
	// Markers must appear in increasing page order.
	last := -1
	for i := 1; i <= 11; i++ {
		idx := strings.Index(*got.OCRText, fmt.Sprintf("--- Page %d ---", i))
		if idx <= last {
			t.Fatalf("marker for page %d out of order", i)
		}
		last = idx
	}
	for i, m := range engine.calls {
		if int(m) != i+1 {
			t.Fatalf("engine call %d was page %d, want sequential order", i, m)
		}
	}
}

func TestRunOCRPageFailureAbortsDocument(t *testing.T) {
	doc := newDoc(constants.FileKindPDF, "record.pdf")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"record.pdf": nil}}
	engine := &fakeEngine{
		texts: map[uint8]string{1: "fine"},
		errAt: 2,
		err:   errors.New("ocr engine failure: blurred page"),
	}
	raster := &fakeRaster{pages: []image.Image{pageImage(1), pageImage(2), pageImage(3)}}
	p := NewProcessor(docs, store, engine, raster, nil)

	err := p.RunOCR(context.Background(), doc.ID)
	if err == nil {
		t.Fatal("RunOCR() expected error")
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusError {
		t.Fatalf("ocr_status = %s, want error", got.OCRStatus)
	}
	if got.OCRText != nil {
		t.Fatalf("partial transcript persisted: %q", *got.OCRText)
	}
	if got.OCRError == nil || !strings.Contains(*got.OCRError, "page 2") {
		t.Fatalf("ocr_error = %v, want page 2 attribution", got.OCRError)
	}
	if len(engine.calls) != 2 {
		t.Fatalf("engine calls = %d, want 2 (abort on failing page)", len(engine.calls))
	}
}

func TestRunOCRMissingSourceFile(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "gone.png")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{}}
	engine := &fakeEngine{texts: map[uint8]string{}}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	err := p.RunOCR(context.Background(), doc.ID)
	if !errors.Is(err, ErrSourceFileMissing) {
		t.Fatalf("RunOCR() error = %v, want ErrSourceFileMissing", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusError {
		t.Fatalf("ocr_status = %s, want error", got.OCRStatus)
	}
	if got.OCRError == nil {
		t.Fatal("ocr_error not set")
	}
	if len(engine.calls) != 0 {
		t.Fatalf("engine invoked %d times for missing file, want 0", len(engine.calls))
	}
}

func TestRunOCREmptyPDF(t *testing.T) {
	doc := newDoc(constants.FileKindPDF, "empty.pdf")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"empty.pdf": nil}}
	p := NewProcessor(docs, store, &fakeEngine{}, &fakeRaster{pages: nil}, nil)

	err := p.RunOCR(context.Background(), doc.ID)
	if !errors.Is(err, ErrNoTextExtracted) {
		t.Fatalf("RunOCR() error = %v, want ErrNoTextExtracted", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusError {
		t.Fatalf("ocr_status = %s, want error", got.OCRStatus)
	}
}

func TestRunOCRRerunFromErrorConverges(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "scan.png")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"scan.png": pageImage(1)}}
	engine := &fakeEngine{texts: map[uint8]string{1: "Medication: rest"}}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	if err := p.RunOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := docs.GetByID(context.Background(), doc.ID)

	// Force the document into Error with a stale message, then re-run.
	if err := docs.FinishOCRFailure(context.Background(), doc.ID, "previous failure"); err != nil {
		t.Fatal(err)
	}
	if err := p.RunOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("re-run: %v", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRError != nil {
		t.Fatalf("ocr_error = %q, want cleared", *got.OCRError)
	}
	if *got.OCRText != *first.OCRText {
		t.Fatalf("re-run transcript %q differs from first %q", *got.OCRText, *first.OCRText)
	}
}

func TestRunOCRRejectsConcurrentRun(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "scan.png")
	doc.OCRStatus = constants.StatusProcessing
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"scan.png": pageImage(1)}}
	engine := &fakeEngine{texts: map[uint8]string{1: "text"}}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	err := p.RunOCR(context.Background(), doc.ID)
	if !errors.Is(err, repository.ErrAlreadyRunning) {
		t.Fatalf("RunOCR() error = %v, want ErrAlreadyRunning", err)
	}
	if len(engine.calls) != 0 {
		t.Fatalf("engine invoked while document already processing")
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusProcessing {
		t.Fatalf("ocr_status = %s, want untouched processing", got.OCRStatus)
	}
}

func TestRunOCRPersistsFailureWhenJobContextExpires(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "scan.png")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"scan.png": pageImage(1)}}
	engine := &fakeEngine{texts: map[uint8]string{1: "too late"}, delay: time.Second}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := p.RunOCR(ctx, doc.ID); err == nil {
		t.Fatal("RunOCR() expected error")
	}

	// The outcome must be stored despite the dead job context; a row left
	// in processing would reject every future StartOCR.
	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusError {
		t.Fatalf("ocr_status = %s, want error after context expiry", got.OCRStatus)
	}
	if got.OCRError == nil {
		t.Fatal("ocr_error not persisted after context expiry")
	}
	if err := docs.StartOCR(context.Background(), doc.ID); err != nil {
		t.Fatalf("document cannot be re-run after expired job: %v", err)
	}
}

func TestRunOCRPanicIsCapturedAsFailure(t *testing.T) {
	doc := newDoc(constants.FileKindImage, "scan.png")
	docs := newFakeDocs(doc)
	store := &fakeStore{images: map[string]image.Image{"scan.png": pageImage(1)}}
	engine := &fakeEngine{panicMsg: "nil deref in backend"}
	p := NewProcessor(docs, store, engine, &fakeRaster{}, nil)

	err := p.RunOCR(context.Background(), doc.ID)
	if err == nil {
		t.Fatal("RunOCR() expected error from panicking engine")
	}
	if !strings.Contains(err.Error(), "panicked") {
		t.Fatalf("RunOCR() error = %v, want panic converted to error", err)
	}

	got, _ := docs.GetByID(context.Background(), doc.ID)
	if got.OCRStatus != constants.StatusError {
		t.Fatalf("ocr_status = %s, want error after panic", got.OCRStatus)
	}
	if got.OCRError == nil || !strings.Contains(*got.OCRError, "nil deref in backend") {
		t.Fatalf("ocr_error = %v, want panic message stored", got.OCRError)
	}
}

func TestRunOCRUnknownDocument(t *testing.T) {
	docs := newFakeDocs()
	p := NewProcessor(docs, &fakeStore{}, &fakeEngine{}, &fakeRaster{}, nil)

	err := p.RunOCR(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("RunOCR() error = %v, want ErrNotFound", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
