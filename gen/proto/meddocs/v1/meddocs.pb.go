// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: meddocs/v1/meddocs.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Tags          string                 `protobuf:"bytes,4,opt,name=tags,proto3" json:"tags,omitempty"`
	Filename      string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,6,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{0}
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UploadDocumentRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UploadDocumentRequest) GetTags() string {
	if x != nil {
		return x.Tags
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FileKind      string                 `protobuf:"bytes,2,opt,name=file_kind,json=fileKind,proto3" json:"file_kind,omitempty"`
	OcrStatus     string                 `protobuf:"bytes,3,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UploadDocumentResponse) GetFileKind() string {
	if x != nil {
		return x.FileKind
	}
	return ""
}

func (x *UploadDocumentResponse) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

func (x *UploadDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type GetProcessingStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingStatusRequest) Reset() {
	*x = GetProcessingStatusRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatusRequest) ProtoMessage() {}

func (x *GetProcessingStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatusRequest.ProtoReflect.Descriptor instead.
func (*GetProcessingStatusRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{2}
}

func (x *GetProcessingStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

// Status polling deliberately returns the transcript length instead of the
// transcript itself.
type GetProcessingStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OcrStatus     string                 `protobuf:"bytes,2,opt,name=ocr_status,json=ocrStatus,proto3" json:"ocr_status,omitempty"`
	OcrError      string                 `protobuf:"bytes,3,opt,name=ocr_error,json=ocrError,proto3" json:"ocr_error,omitempty"`
	TextLength    int64                  `protobuf:"varint,4,opt,name=text_length,json=textLength,proto3" json:"text_length,omitempty"`
	SummaryStatus string                 `protobuf:"bytes,5,opt,name=summary_status,json=summaryStatus,proto3" json:"summary_status,omitempty"`
	Summary       string                 `protobuf:"bytes,6,opt,name=summary,proto3" json:"summary,omitempty"`
	SummaryError  string                 `protobuf:"bytes,7,opt,name=summary_error,json=summaryError,proto3" json:"summary_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingStatusResponse) Reset() {
	*x = GetProcessingStatusResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatusResponse) ProtoMessage() {}

func (x *GetProcessingStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatusResponse.ProtoReflect.Descriptor instead.
func (*GetProcessingStatusResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{3}
}

func (x *GetProcessingStatusResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetProcessingStatusResponse) GetOcrStatus() string {
	if x != nil {
		return x.OcrStatus
	}
	return ""
}

func (x *GetProcessingStatusResponse) GetOcrError() string {
	if x != nil {
		return x.OcrError
	}
	return ""
}

func (x *GetProcessingStatusResponse) GetTextLength() int64 {
	if x != nil {
		return x.TextLength
	}
	return 0
}

func (x *GetProcessingStatusResponse) GetSummaryStatus() string {
	if x != nil {
		return x.SummaryStatus
	}
	return ""
}

func (x *GetProcessingStatusResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *GetProcessingStatusResponse) GetSummaryError() string {
	if x != nil {
		return x.SummaryError
	}
	return ""
}

type RunOCRRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunOCRRequest) Reset() {
	*x = RunOCRRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunOCRRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunOCRRequest) ProtoMessage() {}

func (x *RunOCRRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunOCRRequest.ProtoReflect.Descriptor instead.
func (*RunOCRRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{4}
}

func (x *RunOCRRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type RunOCRResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunOCRResponse) Reset() {
	*x = RunOCRResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunOCRResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunOCRResponse) ProtoMessage() {}

func (x *RunOCRResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunOCRResponse.ProtoReflect.Descriptor instead.
func (*RunOCRResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{5}
}

type SummarizeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeRequest) Reset() {
	*x = SummarizeRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeRequest) ProtoMessage() {}

func (x *SummarizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeRequest.ProtoReflect.Descriptor instead.
func (*SummarizeRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{6}
}

func (x *SummarizeRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type SummarizeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeResponse) Reset() {
	*x = SummarizeResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeResponse) ProtoMessage() {}

func (x *SummarizeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeResponse.ProtoReflect.Descriptor instead.
func (*SummarizeResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{7}
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{8}
}

func (x *CreateUserRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{9}
}

func (x *CreateUserResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateUserResponse) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *CreateUserResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserRequest) Reset() {
	*x = GetUserRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserRequest) ProtoMessage() {}

func (x *GetUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserRequest.ProtoReflect.Descriptor instead.
func (*GetUserRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{10}
}

func (x *GetUserRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

type GetUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserResponse) Reset() {
	*x = GetUserResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserResponse) ProtoMessage() {}

func (x *GetUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserResponse.ProtoReflect.Descriptor instead.
func (*GetUserResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{11}
}

func (x *GetUserResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetUserResponse) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *GetUserResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExportStatusReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStatusReportRequest) Reset() {
	*x = ExportStatusReportRequest{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStatusReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStatusReportRequest) ProtoMessage() {}

func (x *ExportStatusReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStatusReportRequest.ProtoReflect.Descriptor instead.
func (*ExportStatusReportRequest) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{12}
}

func (x *ExportStatusReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ExportStatusReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportStatusReportResponse) Reset() {
	*x = ExportStatusReportResponse{}
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportStatusReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportStatusReportResponse) ProtoMessage() {}

func (x *ExportStatusReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_meddocs_v1_meddocs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportStatusReportResponse.ProtoReflect.Descriptor instead.
func (*ExportStatusReportResponse) Descriptor() ([]byte, []int) {
	return file_meddocs_v1_meddocs_proto_rawDescGZIP(), []int{13}
}

func (x *ExportStatusReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_meddocs_v1_meddocs_proto protoreflect.FileDescriptor

const file_meddocs_v1_meddocs_proto_rawDesc = "" +
	"\n" +
	"\x18meddocs/v1/meddocs.proto\x12\n" +
	"meddocs.v1\"\xcd\x01\n" +
	"\x15UploadDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x12\n" +
	"\x04tags\x18\x04 \x01(\tR\x04tags\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x06 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\a \x01(\fR\acontent\"\x96\x01\n" +
	"\x16UploadDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tfile_kind\x18\x02 \x01(\tR\bfileKind\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x03 \x01(\tR\tocrStatus\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\"=\n" +
	"\x1aGetProcessingStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x81\x02\n" +
	"\x1bGetProcessingStatusResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"ocr_status\x18\x02 \x01(\tR\tocrStatus\x12\x1b\n" +
	"\tocr_error\x18\x03 \x01(\tR\bocrError\x12\x1f\n" +
	"\vtext_length\x18\x04 \x01(\x03R\n" +
	"textLength\x12%\n" +
	"\x0esummary_status\x18\x05 \x01(\tR\rsummaryStatus\x12\x18\n" +
	"\asummary\x18\x06 \x01(\tR\asummary\x12#\n" +
	"\rsummary_error\x18\a \x01(\tR\fsummaryError\"0\n" +
	"\rRunOCRRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x10\n" +
	"\x0eRunOCRResponse\"3\n" +
	"\x10SummarizeRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x13\n" +
	"\x11SummarizeResponse\"/\n" +
	"\x11CreateUserRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\"h\n" +
	"\x12CreateUserResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\",\n" +
	"\x0eGetUserRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\"e\n" +
	"\x0fGetUserResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\"4\n" +
	"\x19ExportStatusReportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"0\n" +
	"\x1aExportStatusReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xde\x02\n" +
	"\x10DocumentsService\x12W\n" +
	"\x0eUploadDocument\x12!.meddocs.v1.UploadDocumentRequest\x1a\".meddocs.v1.UploadDocumentResponse\x12f\n" +
	"\x13GetProcessingStatus\x12&.meddocs.v1.GetProcessingStatusRequest\x1a'.meddocs.v1.GetProcessingStatusResponse\x12?\n" +
	"\x06RunOCR\x12\x19.meddocs.v1.RunOCRRequest\x1a\x1a.meddocs.v1.RunOCRResponse\x12H\n" +
	"\tSummarize\x12\x1c.meddocs.v1.SummarizeRequest\x1a\x1d.meddocs.v1.SummarizeResponse2\x9f\x01\n" +
	"\fUsersService\x12K\n" +
	"\n" +
	"CreateUser\x12\x1d.meddocs.v1.CreateUserRequest\x1a\x1e.meddocs.v1.CreateUserResponse\x12B\n" +
	"\aGetUser\x12\x1a.meddocs.v1.GetUserRequest\x1a\x1b.meddocs.v1.GetUserResponse2t\n" +
	"\rExportService\x12c\n" +
	"\x12ExportStatusReport\x12%.meddocs.v1.ExportStatusReportRequest\x1a&.meddocs.v1.ExportStatusReportResponseB8Z6github.com/danielokoye/meddocs/gen/proto/meddocs/v1;v1b\x06proto3"

var (
	file_meddocs_v1_meddocs_proto_rawDescOnce sync.Once
	file_meddocs_v1_meddocs_proto_rawDescData []byte
)

func file_meddocs_v1_meddocs_proto_rawDescGZIP() []byte {
	file_meddocs_v1_meddocs_proto_rawDescOnce.Do(func() {
		file_meddocs_v1_meddocs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_meddocs_v1_meddocs_proto_rawDesc), len(file_meddocs_v1_meddocs_proto_rawDesc)))
	})
	return file_meddocs_v1_meddocs_proto_rawDescData
}

var file_meddocs_v1_meddocs_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_meddocs_v1_meddocs_proto_goTypes = []any{
	(*UploadDocumentRequest)(nil),       // 0: meddocs.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 1: meddocs.v1.UploadDocumentResponse
	(*GetProcessingStatusRequest)(nil),  // 2: meddocs.v1.GetProcessingStatusRequest
	(*GetProcessingStatusResponse)(nil), // 3: meddocs.v1.GetProcessingStatusResponse
	(*RunOCRRequest)(nil),               // 4: meddocs.v1.RunOCRRequest
	(*RunOCRResponse)(nil),              // 5: meddocs.v1.RunOCRResponse
	(*SummarizeRequest)(nil),            // 6: meddocs.v1.SummarizeRequest
	(*SummarizeResponse)(nil),           // 7: meddocs.v1.SummarizeResponse
	(*CreateUserRequest)(nil),           // 8: meddocs.v1.CreateUserRequest
	(*CreateUserResponse)(nil),          // 9: meddocs.v1.CreateUserResponse
	(*GetUserRequest)(nil),              // 10: meddocs.v1.GetUserRequest
	(*GetUserResponse)(nil),             // 11: meddocs.v1.GetUserResponse
	(*ExportStatusReportRequest)(nil),   // 12: meddocs.v1.ExportStatusReportRequest
	(*ExportStatusReportResponse)(nil),  // 13: meddocs.v1.ExportStatusReportResponse
}
var file_meddocs_v1_meddocs_proto_depIdxs = []int32{
	0,  // 0: meddocs.v1.DocumentsService.UploadDocument:input_type -> meddocs.v1.UploadDocumentRequest
	2,  // 1: meddocs.v1.DocumentsService.GetProcessingStatus:input_type -> meddocs.v1.GetProcessingStatusRequest
	4,  // 2: meddocs.v1.DocumentsService.RunOCR:input_type -> meddocs.v1.RunOCRRequest
	6,  // 3: meddocs.v1.DocumentsService.Summarize:input_type -> meddocs.v1.SummarizeRequest
	8,  // 4: meddocs.v1.UsersService.CreateUser:input_type -> meddocs.v1.CreateUserRequest
	10, // 5: meddocs.v1.UsersService.GetUser:input_type -> meddocs.v1.GetUserRequest
	12, // 6: meddocs.v1.ExportService.ExportStatusReport:input_type -> meddocs.v1.ExportStatusReportRequest
	1,  // 7: meddocs.v1.DocumentsService.UploadDocument:output_type -> meddocs.v1.UploadDocumentResponse
	3,  // 8: meddocs.v1.DocumentsService.GetProcessingStatus:output_type -> meddocs.v1.GetProcessingStatusResponse
	5,  // 9: meddocs.v1.DocumentsService.RunOCR:output_type -> meddocs.v1.RunOCRResponse
	7,  // 10: meddocs.v1.DocumentsService.Summarize:output_type -> meddocs.v1.SummarizeResponse
	9,  // 11: meddocs.v1.UsersService.CreateUser:output_type -> meddocs.v1.CreateUserResponse
	11, // 12: meddocs.v1.UsersService.GetUser:output_type -> meddocs.v1.GetUserResponse
	13, // 13: meddocs.v1.ExportService.ExportStatusReport:output_type -> meddocs.v1.ExportStatusReportResponse
	7,  // [7:14] is the sub-list for method output_type
	0,  // [0:7] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_meddocs_v1_meddocs_proto_init() }
func file_meddocs_v1_meddocs_proto_init() {
	if File_meddocs_v1_meddocs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_meddocs_v1_meddocs_proto_rawDesc), len(file_meddocs_v1_meddocs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_meddocs_v1_meddocs_proto_goTypes,
		DependencyIndexes: file_meddocs_v1_meddocs_proto_depIdxs,
		MessageInfos:      file_meddocs_v1_meddocs_proto_msgTypes,
	}.Build()
	File_meddocs_v1_meddocs_proto = out.File
	file_meddocs_v1_meddocs_proto_goTypes = nil
	file_meddocs_v1_meddocs_proto_depIdxs = nil
}
