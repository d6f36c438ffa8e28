package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobKind selects which stage a job drives.
type JobKind string

const (
	JobOCR     JobKind = "OCR"
	JobSummary JobKind = "SUMMARY"
)

// Job carries a document ID across the async boundary. Workers reload all
// document state through the repository; nothing else rides along.
type Job struct {
	DocumentID  uuid.UUID
	Kind        JobKind
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
