package constants

import "strings"

// FileKind classifies an uploaded document by how the pipeline processes it.
type FileKind string

const (
	FileKindImage FileKind = "IMAGE"
	FileKindPDF   FileKind = "PDF"
)

// FileKinds holds the allowed values for the file_kind field on Document.
var FileKinds = []string{string(FileKindImage), string(FileKindPDF)}

// MaxUploadBytes is enforced at ingestion, before any processing starts.
const MaxUploadBytes = 10 << 20 // 10 MiB

// AllowedUploads maps an allowed file extension to the content type that
// must accompany it. Both must match, or the upload is rejected.
var AllowedUploads = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"pdf":  "application/pdf",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MatchUpload validates an extension/content-type pair against the allowed
// set. Returns the file kind for the pair and whether it is acceptable.
func MatchUpload(ext, contentType string) (FileKind, bool) {
	want, ok := AllowedUploads[NormalizeExt(ext)]
	if !ok || !strings.EqualFold(strings.TrimSpace(contentType), want) {
		return "", false
	}
	return MapExtToKind(ext), true
}

// MapExtToKind maps a file extension to its processing kind.
// Returns "" for unsupported extensions.
func MapExtToKind(ext string) FileKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return FileKindPDF
	case "jpg", "jpeg", "png":
		return FileKindImage
	default:
		return ""
	}
}
