// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danielokoye/meddocs/db/ent/schema"
	"github.com/danielokoye/meddocs/gen/ent/document"
	"github.com/danielokoye/meddocs/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[2].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[5].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[6].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[7].Descriptor()
	// document.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	document.ContentTypeValidator = documentDescContentType.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[8].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescFileKind is the schema descriptor for file_kind field.
	documentDescFileKind := documentFields[9].Descriptor()
	// document.FileKindValidator is a validator for the "file_kind" field. It is called by the builders before save.
	document.FileKindValidator = func() func(string) error {
		validators := documentDescFileKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_kind string) error {
			for _, fn := range fns {
				if err := fn(file_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescOcrStatus is the schema descriptor for ocr_status field.
	documentDescOcrStatus := documentFields[11].Descriptor()
	// document.DefaultOcrStatus holds the default value on creation for the ocr_status field.
	document.DefaultOcrStatus = documentDescOcrStatus.Default.(string)
	// document.OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	document.OcrStatusValidator = documentDescOcrStatus.Validators[0].(func(string) error)
	// documentDescSummaryStatus is the schema descriptor for summary_status field.
	documentDescSummaryStatus := documentFields[14].Descriptor()
	// document.DefaultSummaryStatus holds the default value on creation for the summary_status field.
	document.DefaultSummaryStatus = documentDescSummaryStatus.Default.(string)
	// document.SummaryStatusValidator is a validator for the "summary_status" field. It is called by the builders before save.
	document.SummaryStatusValidator = documentDescSummaryStatus.Validators[0].(func(string) error)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
