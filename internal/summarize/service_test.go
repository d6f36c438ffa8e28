package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/common"
	"github.com/danielokoye/meddocs/internal/entity"
	"github.com/danielokoye/meddocs/internal/repository"
)

type stubDocs struct {
	doc *entity.Document
}

func (s *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if s.doc == nil || s.doc.ID != id {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	cp := *s.doc
	return &cp, nil
}

func (s *stubDocs) Create(context.Context, *entity.Document) (*entity.Document, error) {
	return nil, errors.New("not used")
}

func (s *stubDocs) ListByUser(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return nil, errors.New("not used")
}

func (s *stubDocs) StartOCR(context.Context, uuid.UUID) error { return errors.New("not used") }
func (s *stubDocs) FinishOCRSuccess(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}
func (s *stubDocs) FinishOCRFailure(context.Context, uuid.UUID, string) error {
	return errors.New("not used")
}

func (s *stubDocs) StartSummary(_ context.Context, id uuid.UUID) error {
	if s.doc.OCRStatus != constants.StatusCompleted || s.doc.OCRText == nil {
		return repository.ErrAlreadyRunning
	}
	if !constants.Restartable(s.doc.SummaryStatus) {
		return repository.ErrAlreadyRunning
	}
	s.doc.SummaryStatus = constants.StatusProcessing
	s.doc.SummaryError = nil
	return nil
}

func (s *stubDocs) FinishSummarySuccess(ctx context.Context, _ uuid.UUID, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.doc.SummaryStatus = constants.StatusCompleted
	s.doc.Summary = &summary
	s.doc.SummaryError = nil
	return nil
}

func (s *stubDocs) FinishSummaryFailure(ctx context.Context, _ uuid.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.doc.SummaryStatus = constants.StatusError
	s.doc.SummaryError = &message
	s.doc.Summary = nil
	return nil
}

type stubCompleter struct {
	summary  string
	err      error
	calls    int
	delay    time.Duration // when set, honors ctx cancellation while waiting
	panicMsg string        // when set, every call panics
}

func (c *stubCompleter) Complete(ctx context.Context, transcript string) (string, error) {
	c.calls++
	if c.panicMsg != "" {
		panic(c.panicMsg)
	}
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.delay):
		}
	}
	if c.err != nil {
		return "", c.err
	}
	return c.summary, nil
}

func docWithTranscript() *entity.Document {
	text := "--- Page 1 ---\nDiagnosis: flu\n"
	return &entity.Document{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		OCRStatus:     constants.StatusCompleted,
		OCRText:       &text,
		SummaryStatus: constants.StatusPending,
	}
}

func TestSummarizeSuccess(t *testing.T) {
	doc := docWithTranscript()
	docs := &stubDocs{doc: doc}
	completer := &stubCompleter{summary: "Patient diagnosed with influenza."}
	svc := NewService(docs, completer, nil)

	if err := svc.Summarize(context.Background(), doc.ID); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if doc.SummaryStatus != constants.StatusCompleted {
		t.Fatalf("summary_status = %s, want completed", doc.SummaryStatus)
	}
	if doc.Summary == nil || *doc.Summary != "Patient diagnosed with influenza." {
		t.Fatalf("summary = %v", doc.Summary)
	}
}

func TestSummarizeWithoutTranscriptLeavesStateUntouched(t *testing.T) {
	doc := docWithTranscript()
	doc.OCRStatus = constants.StatusPending
	doc.OCRText = nil
	docs := &stubDocs{doc: doc}
	completer := &stubCompleter{summary: "ignored"}
	svc := NewService(docs, completer, nil)

	err := svc.Summarize(context.Background(), doc.ID)
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("Summarize() error = %v, want ErrNoTranscript", err)
	}
	if doc.SummaryStatus != constants.StatusPending {
		t.Fatalf("summary_status = %s, want untouched pending", doc.SummaryStatus)
	}
	if completer.calls != 0 {
		t.Fatalf("completer invoked %d times, want 0", completer.calls)
	}
}

func TestSummarizeBackendFailure(t *testing.T) {
	doc := docWithTranscript()
	docs := &stubDocs{doc: doc}
	completer := &stubCompleter{err: fmt.Errorf("%w: status 500", ErrBackend)}
	svc := NewService(docs, completer, nil)

	err := svc.Summarize(context.Background(), doc.ID)
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("Summarize() error = %v, want ErrBackend", err)
	}
	if doc.SummaryStatus != constants.StatusError {
		t.Fatalf("summary_status = %s, want error", doc.SummaryStatus)
	}
	if doc.SummaryError == nil || !strings.Contains(*doc.SummaryError, "status 500") {
		t.Fatalf("summary_error = %v", doc.SummaryError)
	}
}

func TestSummarizeEmptyCompletionIsFailure(t *testing.T) {
	doc := docWithTranscript()
	docs := &stubDocs{doc: doc}
	svc := NewService(docs, &stubCompleter{summary: "   "}, nil)

	err := svc.Summarize(context.Background(), doc.ID)
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("Summarize() error = %v, want ErrBackend", err)
	}
	if doc.SummaryStatus != constants.StatusError {
		t.Fatalf("summary_status = %s, want error", doc.SummaryStatus)
	}
}

func TestSummarizePersistsFailureWhenJobContextExpires(t *testing.T) {
	doc := docWithTranscript()
	docs := &stubDocs{doc: doc}
	completer := &stubCompleter{summary: "too late", delay: time.Second}
	svc := NewService(docs, completer, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := svc.Summarize(ctx, doc.ID); err == nil {
		t.Fatal("Summarize() expected error")
	}
	if doc.SummaryStatus != constants.StatusError {
		t.Fatalf("summary_status = %s, want error after context expiry", doc.SummaryStatus)
	}
	if doc.SummaryError == nil {
		t.Fatal("summary_error not persisted after context expiry")
	}
}

func TestSummarizePanicIsCapturedAsFailure(t *testing.T) {
	doc := docWithTranscript()
	docs := &stubDocs{doc: doc}
	svc := NewService(docs, &stubCompleter{panicMsg: "backend blew up"}, nil)

	err := svc.Summarize(context.Background(), doc.ID)
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("Summarize() error = %v, want ErrBackend from panic", err)
	}
	if doc.SummaryStatus != constants.StatusError {
		t.Fatalf("summary_status = %s, want error after panic", doc.SummaryStatus)
	}
	if doc.SummaryError == nil || !strings.Contains(*doc.SummaryError, "backend blew up") {
		t.Fatalf("summary_error = %v, want panic message stored", doc.SummaryError)
	}
}

func TestSummarizeWhileProcessingIsNoOp(t *testing.T) {
	doc := docWithTranscript()
	doc.SummaryStatus = constants.StatusProcessing
	docs := &stubDocs{doc: doc}
	completer := &stubCompleter{summary: "ignored"}
	svc := NewService(docs, completer, nil)

	err := svc.Summarize(context.Background(), doc.ID)
	if !errors.Is(err, repository.ErrAlreadyRunning) {
		t.Fatalf("Summarize() error = %v, want ErrAlreadyRunning", err)
	}
	if completer.calls != 0 {
		t.Fatalf("completer invoked while already processing")
	}
}

func TestSummarizeUnknownDocument(t *testing.T) {
	svc := NewService(&stubDocs{}, &stubCompleter{}, nil)
	err := svc.Summarize(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Summarize() error = %v, want ErrNotFound", err)
	}
}

func TestSummaryJSONSchema(t *testing.T) {
	schema := SummaryJSONSchema()

	if err := ValidateJSONAgainstSchema(schema, []byte(`{"summary":"Influenza, rest advised."}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	for name, payload := range map[string]string{
		"missing summary": `{}`,
		"empty summary":   `{"summary":""}`,
		"wrong type":      `{"summary":42}`,
		"extra field":     `{"summary":"ok","confidence":0.9}`,
	} {
		if err := ValidateJSONAgainstSchema(schema, []byte(payload)); err == nil {
			t.Errorf("%s: payload accepted, want validation error", name)
		}
	}
}
