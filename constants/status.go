package constants

// ProcessingStatus is the canonical per-stage status for a document.
// Both the OCR stage and the summary stage use the same set.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ProcessingStatus = "pending"    // created, no run started yet
	StatusProcessing ProcessingStatus = "processing" // run in flight
	StatusCompleted  ProcessingStatus = "completed"  // terminal success
	StatusError      ProcessingStatus = "error"      // terminal failure, re-runnable
)

// Statuses holds the allowed values for the status fields on Document.
var Statuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusError),
}

// Restartable reports whether a stage in status s may start a new run.
// A stage that is already processing must never be entered twice.
func Restartable(s ProcessingStatus) bool {
	return s == StatusPending || s == StatusError
}
