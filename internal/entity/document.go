package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/constants"
)

// Document represents a medical document for data transfer between layers.
// Status fields are mutated only by the processing pipeline and the
// summarization service, via the document repository.
type Document struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Name        string             `json:"name"`
	Category    string             `json:"category,omitempty"`
	Tags        string             `json:"tags,omitempty"`
	FilePath    string             `json:"file_path"`
	FileExt     string             `json:"file_ext"`
	ContentType string             `json:"content_type"`
	FileSize    int                `json:"file_size"`
	FileKind    constants.FileKind `json:"file_kind"`
	UploadedAt  time.Time          `json:"uploaded_at"`

	OCRStatus constants.ProcessingStatus `json:"ocr_status"`
	OCRText   *string                    `json:"ocr_text,omitempty"`
	OCRError  *string                    `json:"ocr_error,omitempty"`

	SummaryStatus constants.ProcessingStatus `json:"summary_status"`
	Summary       *string                    `json:"summary,omitempty"`
	SummaryError  *string                    `json:"summary_error,omitempty"`
}

// TranscriptLength returns the stored transcript length in bytes, or zero
// when OCR has not completed. Status polling reports this instead of the
// text itself to keep the payload small.
func (d *Document) TranscriptLength() int {
	if d.OCRText == nil {
		return 0
	}
	return len(*d.OCRText)
}
