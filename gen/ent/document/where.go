// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielokoye/meddocs/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// Tags applies equality check predicate on the "tags" field. It's identical to TagsEQ.
func Tags(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTags, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileKind applies equality check predicate on the "file_kind" field. It's identical to FileKindEQ.
func FileKind(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileKind, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// OcrStatus applies equality check predicate on the "ocr_status" field. It's identical to OcrStatusEQ.
func OcrStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrError applies equality check predicate on the "ocr_error" field. It's identical to OcrErrorEQ.
func OcrError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// SummaryStatus applies equality check predicate on the "summary_status" field. It's identical to SummaryStatusEQ.
func SummaryStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummaryStatus, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummary, v))
}

// SummaryError applies equality check predicate on the "summary_error" field. It's identical to SummaryErrorEQ.
func SummaryError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummaryError, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUserID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCategory, v))
}

// TagsEQ applies the EQ predicate on the "tags" field.
func TagsEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTags, v))
}

// TagsNEQ applies the NEQ predicate on the "tags" field.
func TagsNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTags, v))
}

// TagsIn applies the In predicate on the "tags" field.
func TagsIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTags, vs...))
}

// TagsNotIn applies the NotIn predicate on the "tags" field.
func TagsNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTags, vs...))
}

// TagsGT applies the GT predicate on the "tags" field.
func TagsGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTags, v))
}

// TagsGTE applies the GTE predicate on the "tags" field.
func TagsGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTags, v))
}

// TagsLT applies the LT predicate on the "tags" field.
func TagsLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTags, v))
}

// TagsLTE applies the LTE predicate on the "tags" field.
func TagsLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTags, v))
}

// TagsContains applies the Contains predicate on the "tags" field.
func TagsContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTags, v))
}

// TagsHasPrefix applies the HasPrefix predicate on the "tags" field.
func TagsHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTags, v))
}

// TagsHasSuffix applies the HasSuffix predicate on the "tags" field.
func TagsHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTags, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTags))
}

// TagsEqualFold applies the EqualFold predicate on the "tags" field.
func TagsEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTags, v))
}

// TagsContainsFold applies the ContainsFold predicate on the "tags" field.
func TagsContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTags, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilePath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// FileKindEQ applies the EQ predicate on the "file_kind" field.
func FileKindEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileKind, v))
}

// FileKindNEQ applies the NEQ predicate on the "file_kind" field.
func FileKindNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileKind, v))
}

// FileKindIn applies the In predicate on the "file_kind" field.
func FileKindIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileKind, vs...))
}

// FileKindNotIn applies the NotIn predicate on the "file_kind" field.
func FileKindNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileKind, vs...))
}

// FileKindGT applies the GT predicate on the "file_kind" field.
func FileKindGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileKind, v))
}

// FileKindGTE applies the GTE predicate on the "file_kind" field.
func FileKindGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileKind, v))
}

// FileKindLT applies the LT predicate on the "file_kind" field.
func FileKindLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileKind, v))
}

// FileKindLTE applies the LTE predicate on the "file_kind" field.
func FileKindLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileKind, v))
}

// FileKindContains applies the Contains predicate on the "file_kind" field.
func FileKindContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileKind, v))
}

// FileKindHasPrefix applies the HasPrefix predicate on the "file_kind" field.
func FileKindHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileKind, v))
}

// FileKindHasSuffix applies the HasSuffix predicate on the "file_kind" field.
func FileKindHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileKind, v))
}

// FileKindEqualFold applies the EqualFold predicate on the "file_kind" field.
func FileKindEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileKind, v))
}

// FileKindContainsFold applies the ContainsFold predicate on the "file_kind" field.
func FileKindContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileKind, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// OcrStatusEQ applies the EQ predicate on the "ocr_status" field.
func OcrStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrStatusNEQ applies the NEQ predicate on the "ocr_status" field.
func OcrStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrStatus, v))
}

// OcrStatusIn applies the In predicate on the "ocr_status" field.
func OcrStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrStatus, vs...))
}

// OcrStatusNotIn applies the NotIn predicate on the "ocr_status" field.
func OcrStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrStatus, vs...))
}

// OcrStatusGT applies the GT predicate on the "ocr_status" field.
func OcrStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrStatus, v))
}

// OcrStatusGTE applies the GTE predicate on the "ocr_status" field.
func OcrStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrStatus, v))
}

// OcrStatusLT applies the LT predicate on the "ocr_status" field.
func OcrStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrStatus, v))
}

// OcrStatusLTE applies the LTE predicate on the "ocr_status" field.
func OcrStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrStatus, v))
}

// OcrStatusContains applies the Contains predicate on the "ocr_status" field.
func OcrStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrStatus, v))
}

// OcrStatusHasPrefix applies the HasPrefix predicate on the "ocr_status" field.
func OcrStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrStatus, v))
}

// OcrStatusHasSuffix applies the HasSuffix predicate on the "ocr_status" field.
func OcrStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrStatus, v))
}

// OcrStatusEqualFold applies the EqualFold predicate on the "ocr_status" field.
func OcrStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrStatus, v))
}

// OcrStatusContainsFold applies the ContainsFold predicate on the "ocr_status" field.
func OcrStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrStatus, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrText, v))
}

// OcrErrorEQ applies the EQ predicate on the "ocr_error" field.
func OcrErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// OcrErrorNEQ applies the NEQ predicate on the "ocr_error" field.
func OcrErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrError, v))
}

// OcrErrorIn applies the In predicate on the "ocr_error" field.
func OcrErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrError, vs...))
}

// OcrErrorNotIn applies the NotIn predicate on the "ocr_error" field.
func OcrErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrError, vs...))
}

// OcrErrorGT applies the GT predicate on the "ocr_error" field.
func OcrErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrError, v))
}

// OcrErrorGTE applies the GTE predicate on the "ocr_error" field.
func OcrErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrError, v))
}

// OcrErrorLT applies the LT predicate on the "ocr_error" field.
func OcrErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrError, v))
}

// OcrErrorLTE applies the LTE predicate on the "ocr_error" field.
func OcrErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrError, v))
}

// OcrErrorContains applies the Contains predicate on the "ocr_error" field.
func OcrErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrError, v))
}

// OcrErrorHasPrefix applies the HasPrefix predicate on the "ocr_error" field.
func OcrErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrError, v))
}

// OcrErrorHasSuffix applies the HasSuffix predicate on the "ocr_error" field.
func OcrErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrError, v))
}

// OcrErrorIsNil applies the IsNil predicate on the "ocr_error" field.
func OcrErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrError))
}

// OcrErrorNotNil applies the NotNil predicate on the "ocr_error" field.
func OcrErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrError))
}

// OcrErrorEqualFold applies the EqualFold predicate on the "ocr_error" field.
func OcrErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrError, v))
}

// OcrErrorContainsFold applies the ContainsFold predicate on the "ocr_error" field.
func OcrErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrError, v))
}

// SummaryStatusEQ applies the EQ predicate on the "summary_status" field.
func SummaryStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummaryStatus, v))
}

// SummaryStatusNEQ applies the NEQ predicate on the "summary_status" field.
func SummaryStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSummaryStatus, v))
}

// SummaryStatusIn applies the In predicate on the "summary_status" field.
func SummaryStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSummaryStatus, vs...))
}

// SummaryStatusNotIn applies the NotIn predicate on the "summary_status" field.
func SummaryStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSummaryStatus, vs...))
}

// SummaryStatusGT applies the GT predicate on the "summary_status" field.
func SummaryStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSummaryStatus, v))
}

// SummaryStatusGTE applies the GTE predicate on the "summary_status" field.
func SummaryStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSummaryStatus, v))
}

// SummaryStatusLT applies the LT predicate on the "summary_status" field.
func SummaryStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSummaryStatus, v))
}

// SummaryStatusLTE applies the LTE predicate on the "summary_status" field.
func SummaryStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSummaryStatus, v))
}

// SummaryStatusContains applies the Contains predicate on the "summary_status" field.
func SummaryStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSummaryStatus, v))
}

// SummaryStatusHasPrefix applies the HasPrefix predicate on the "summary_status" field.
func SummaryStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSummaryStatus, v))
}

// SummaryStatusHasSuffix applies the HasSuffix predicate on the "summary_status" field.
func SummaryStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSummaryStatus, v))
}

// SummaryStatusEqualFold applies the EqualFold predicate on the "summary_status" field.
func SummaryStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSummaryStatus, v))
}

// SummaryStatusContainsFold applies the ContainsFold predicate on the "summary_status" field.
func SummaryStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSummaryStatus, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSummary, v))
}

// SummaryErrorEQ applies the EQ predicate on the "summary_error" field.
func SummaryErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummaryError, v))
}

// SummaryErrorNEQ applies the NEQ predicate on the "summary_error" field.
func SummaryErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSummaryError, v))
}

// SummaryErrorIn applies the In predicate on the "summary_error" field.
func SummaryErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSummaryError, vs...))
}

// SummaryErrorNotIn applies the NotIn predicate on the "summary_error" field.
func SummaryErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSummaryError, vs...))
}

// SummaryErrorGT applies the GT predicate on the "summary_error" field.
func SummaryErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSummaryError, v))
}

// SummaryErrorGTE applies the GTE predicate on the "summary_error" field.
func SummaryErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSummaryError, v))
}

// SummaryErrorLT applies the LT predicate on the "summary_error" field.
func SummaryErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSummaryError, v))
}

// SummaryErrorLTE applies the LTE predicate on the "summary_error" field.
func SummaryErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSummaryError, v))
}

// SummaryErrorContains applies the Contains predicate on the "summary_error" field.
func SummaryErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSummaryError, v))
}

// SummaryErrorHasPrefix applies the HasPrefix predicate on the "summary_error" field.
func SummaryErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSummaryError, v))
}

// SummaryErrorHasSuffix applies the HasSuffix predicate on the "summary_error" field.
func SummaryErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSummaryError, v))
}

// SummaryErrorIsNil applies the IsNil predicate on the "summary_error" field.
func SummaryErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSummaryError))
}

// SummaryErrorNotNil applies the NotNil predicate on the "summary_error" field.
func SummaryErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSummaryError))
}

// SummaryErrorEqualFold applies the EqualFold predicate on the "summary_error" field.
func SummaryErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSummaryError, v))
}

// SummaryErrorContainsFold applies the ContainsFold predicate on the "summary_error" field.
func SummaryErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSummaryError, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
