// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cobertor/v1/cobertor.proto

package cobertorv1

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

type EmailMessage struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MessageId       string                 `protobuf:"bytes,2,opt,name=message_id,json=messageId,proto3" json:"message_id,omitempty"`
	ThreadId        *string                `protobuf:"bytes,3,opt,name=thread_id,json=threadId,proto3,oneof" json:"thread_id,omitempty"`
	SenderEmail     string                 `protobuf:"bytes,4,opt,name=sender_email,json=senderEmail,proto3" json:"sender_email,omitempty"`
	SenderName      *string                `protobuf:"bytes,5,opt,name=sender_name,json=senderName,proto3,oneof" json:"sender_name,omitempty"`
	Subject         string                 `protobuf:"bytes,6,opt,name=subject,proto3" json:"subject,omitempty"`
	ReceivedAt      string                 `protobuf:"bytes,7,opt,name=received_at,json=receivedAt,proto3" json:"received_at,omitempty"` // RFC 3339
	ProcessedAt     *string                `protobuf:"bytes,8,opt,name=processed_at,json=processedAt,proto3,oneof" json:"processed_at,omitempty"`
	HasAttachments  bool                   `protobuf:"varint,9,opt,name=has_attachments,json=hasAttachments,proto3" json:"has_attachments,omitempty"`
	AttachmentCount int32                  `protobuf:"varint,10,opt,name=attachment_count,json=attachmentCount,proto3" json:"attachment_count,omitempty"`
	Status          string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage    *string                `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3,oneof" json:"error_message,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *EmailMessage) Reset() {
	*x = EmailMessage{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmailMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmailMessage) ProtoMessage() {}

func (x *EmailMessage) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmailMessage.ProtoReflect.Descriptor instead.
func (*EmailMessage) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{0}
}

func (x *EmailMessage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EmailMessage) GetMessageId() string {
	if x != nil {
		return x.MessageId
	}
	return ""
}

func (x *EmailMessage) GetThreadId() string {
	if x != nil && x.ThreadId != nil {
		return *x.ThreadId
	}
	return ""
}

func (x *EmailMessage) GetSenderEmail() string {
	if x != nil {
		return x.SenderEmail
	}
	return ""
}

func (x *EmailMessage) GetSenderName() string {
	if x != nil && x.SenderName != nil {
		return *x.SenderName
	}
	return ""
}

func (x *EmailMessage) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *EmailMessage) GetReceivedAt() string {
	if x != nil {
		return x.ReceivedAt
	}
	return ""
}

func (x *EmailMessage) GetProcessedAt() string {
	if x != nil && x.ProcessedAt != nil {
		return *x.ProcessedAt
	}
	return ""
}

func (x *EmailMessage) GetHasAttachments() bool {
	if x != nil {
		return x.HasAttachments
	}
	return false
}

func (x *EmailMessage) GetAttachmentCount() int32 {
	if x != nil {
		return x.AttachmentCount
	}
	return 0
}

func (x *EmailMessage) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *EmailMessage) GetErrorMessage() string {
	if x != nil && x.ErrorMessage != nil {
		return *x.ErrorMessage
	}
	return ""
}

type Task struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmailId         string                 `protobuf:"bytes,2,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	CodigoCobertor  *string                `protobuf:"bytes,3,opt,name=codigo_cobertor,json=codigoCobertor,proto3,oneof" json:"codigo_cobertor,omitempty"`
	Cuartel         *string                `protobuf:"bytes,4,opt,name=cuartel,proto3,oneof" json:"cuartel,omitempty"`
	Hileras         *int32                 `protobuf:"varint,5,opt,name=hileras,proto3,oneof" json:"hileras,omitempty"`
	LargoMetros     *float64               `protobuf:"fixed64,6,opt,name=largo_metros,json=largoMetros,proto3,oneof" json:"largo_metros,omitempty"`
	Prioridad       string                 `protobuf:"bytes,7,opt,name=prioridad,proto3" json:"prioridad,omitempty"`
	Estado          string                 `protobuf:"bytes,8,opt,name=estado,proto3" json:"estado,omitempty"`
	Descripcion     *string                `protobuf:"bytes,9,opt,name=descripcion,proto3,oneof" json:"descripcion,omitempty"`
	Notas           *string                `protobuf:"bytes,10,opt,name=notas,proto3,oneof" json:"notas,omitempty"`
	Origen          string                 `protobuf:"bytes,11,opt,name=origen,proto3" json:"origen,omitempty"`
	Urgente         bool                   `protobuf:"varint,12,opt,name=urgente,proto3" json:"urgente,omitempty"`
	FechaSolicitud  string                 `protobuf:"bytes,13,opt,name=fecha_solicitud,json=fechaSolicitud,proto3" json:"fecha_solicitud,omitempty"`
	FechaCompletada *string                `protobuf:"bytes,14,opt,name=fecha_completada,json=fechaCompletada,proto3,oneof" json:"fecha_completada,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{1}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *Task) GetCodigoCobertor() string {
	if x != nil && x.CodigoCobertor != nil {
		return *x.CodigoCobertor
	}
	return ""
}

func (x *Task) GetCuartel() string {
	if x != nil && x.Cuartel != nil {
		return *x.Cuartel
	}
	return ""
}

func (x *Task) GetHileras() int32 {
	if x != nil && x.Hileras != nil {
		return *x.Hileras
	}
	return 0
}

func (x *Task) GetLargoMetros() float64 {
	if x != nil && x.LargoMetros != nil {
		return *x.LargoMetros
	}
	return 0
}

func (x *Task) GetPrioridad() string {
	if x != nil {
		return x.Prioridad
	}
	return ""
}

func (x *Task) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

func (x *Task) GetDescripcion() string {
	if x != nil && x.Descripcion != nil {
		return *x.Descripcion
	}
	return ""
}

func (x *Task) GetNotas() string {
	if x != nil && x.Notas != nil {
		return *x.Notas
	}
	return ""
}

func (x *Task) GetOrigen() string {
	if x != nil {
		return x.Origen
	}
	return ""
}

func (x *Task) GetUrgente() bool {
	if x != nil {
		return x.Urgente
	}
	return false
}

func (x *Task) GetFechaSolicitud() string {
	if x != nil {
		return x.FechaSolicitud
	}
	return ""
}

func (x *Task) GetFechaCompletada() string {
	if x != nil && x.FechaCompletada != nil {
		return *x.FechaCompletada
	}
	return ""
}

type Attachment struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EmailId        string                 `protobuf:"bytes,2,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	Filename       string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType       *string                `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3,oneof" json:"mime_type,omitempty"`
	SizeBytes      int32                  `protobuf:"varint,5,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Format         *string                `protobuf:"bytes,6,opt,name=format,proto3,oneof" json:"format,omitempty"`
	ExtractedCount int32                  `protobuf:"varint,7,opt,name=extracted_count,json=extractedCount,proto3" json:"extracted_count,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Attachment) Reset() {
	*x = Attachment{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Attachment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Attachment) ProtoMessage() {}

func (x *Attachment) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Attachment.ProtoReflect.Descriptor instead.
func (*Attachment) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{2}
}

func (x *Attachment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Attachment) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *Attachment) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Attachment) GetMimeType() string {
	if x != nil && x.MimeType != nil {
		return *x.MimeType
	}
	return ""
}

func (x *Attachment) GetSizeBytes() int32 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *Attachment) GetFormat() string {
	if x != nil && x.Format != nil {
		return *x.Format
	}
	return ""
}

func (x *Attachment) GetExtractedCount() int32 {
	if x != nil {
		return x.ExtractedCount
	}
	return 0
}

type Alert struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Tipo          string                 `protobuf:"bytes,2,opt,name=tipo,proto3" json:"tipo,omitempty"`
	Titulo        string                 `protobuf:"bytes,3,opt,name=titulo,proto3" json:"titulo,omitempty"`
	Descripcion   *string                `protobuf:"bytes,4,opt,name=descripcion,proto3,oneof" json:"descripcion,omitempty"`
	TaskId        *string                `protobuf:"bytes,5,opt,name=task_id,json=taskId,proto3,oneof" json:"task_id,omitempty"`
	EmailId       *string                `protobuf:"bytes,6,opt,name=email_id,json=emailId,proto3,oneof" json:"email_id,omitempty"`
	Severidad     string                 `protobuf:"bytes,7,opt,name=severidad,proto3" json:"severidad,omitempty"`
	Leida         bool                   `protobuf:"varint,8,opt,name=leida,proto3" json:"leida,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Alert) Reset() {
	*x = Alert{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Alert) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Alert) ProtoMessage() {}

func (x *Alert) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Alert.ProtoReflect.Descriptor instead.
func (*Alert) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{3}
}

func (x *Alert) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Alert) GetTipo() string {
	if x != nil {
		return x.Tipo
	}
	return ""
}

func (x *Alert) GetTitulo() string {
	if x != nil {
		return x.Titulo
	}
	return ""
}

func (x *Alert) GetDescripcion() string {
	if x != nil && x.Descripcion != nil {
		return *x.Descripcion
	}
	return ""
}

func (x *Alert) GetTaskId() string {
	if x != nil && x.TaskId != nil {
		return *x.TaskId
	}
	return ""
}

func (x *Alert) GetEmailId() string {
	if x != nil && x.EmailId != nil {
		return *x.EmailId
	}
	return ""
}

func (x *Alert) GetSeveridad() string {
	if x != nil {
		return x.Severidad
	}
	return ""
}

func (x *Alert) GetLeida() bool {
	if x != nil {
		return x.Leida
	}
	return false
}

func (x *Alert) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListEmailsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        *string                `protobuf:"bytes,1,opt,name=status,proto3,oneof" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmailsRequest) Reset() {
	*x = ListEmailsRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmailsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmailsRequest) ProtoMessage() {}

func (x *ListEmailsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmailsRequest.ProtoReflect.Descriptor instead.
func (*ListEmailsRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{4}
}

func (x *ListEmailsRequest) GetStatus() string {
	if x != nil && x.Status != nil {
		return *x.Status
	}
	return ""
}

func (x *ListEmailsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListEmailsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListEmailsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Emails        []*EmailMessage        `protobuf:"bytes,1,rep,name=emails,proto3" json:"emails,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmailsResponse) Reset() {
	*x = ListEmailsResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmailsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmailsResponse) ProtoMessage() {}

func (x *ListEmailsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmailsResponse.ProtoReflect.Descriptor instead.
func (*ListEmailsResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{5}
}

func (x *ListEmailsResponse) GetEmails() []*EmailMessage {
	if x != nil {
		return x.Emails
	}
	return nil
}

type GetEmailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmailRequest) Reset() {
	*x = GetEmailRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmailRequest) ProtoMessage() {}

func (x *GetEmailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmailRequest.ProtoReflect.Descriptor instead.
func (*GetEmailRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{6}
}

func (x *GetEmailRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetEmailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         *EmailMessage          `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Tasks         []*Task                `protobuf:"bytes,2,rep,name=tasks,proto3" json:"tasks,omitempty"`
	Attachments   []*Attachment          `protobuf:"bytes,3,rep,name=attachments,proto3" json:"attachments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmailResponse) Reset() {
	*x = GetEmailResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmailResponse) ProtoMessage() {}

func (x *GetEmailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmailResponse.ProtoReflect.Descriptor instead.
func (*GetEmailResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{7}
}

func (x *GetEmailResponse) GetEmail() *EmailMessage {
	if x != nil {
		return x.Email
	}
	return nil
}

func (x *GetEmailResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

func (x *GetEmailResponse) GetAttachments() []*Attachment {
	if x != nil {
		return x.Attachments
	}
	return nil
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Estado        *string                `protobuf:"bytes,1,opt,name=estado,proto3,oneof" json:"estado,omitempty"`
	Prioridad     *string                `protobuf:"bytes,2,opt,name=prioridad,proto3,oneof" json:"prioridad,omitempty"`
	Codigo        *string                `protobuf:"bytes,3,opt,name=codigo,proto3,oneof" json:"codigo,omitempty"`
	Urgente       *bool                  `protobuf:"varint,4,opt,name=urgente,proto3,oneof" json:"urgente,omitempty"`
	Limit         int32                  `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,6,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{8}
}

func (x *ListTasksRequest) GetEstado() string {
	if x != nil && x.Estado != nil {
		return *x.Estado
	}
	return ""
}

func (x *ListTasksRequest) GetPrioridad() string {
	if x != nil && x.Prioridad != nil {
		return *x.Prioridad
	}
	return ""
}

func (x *ListTasksRequest) GetCodigo() string {
	if x != nil && x.Codigo != nil {
		return *x.Codigo
	}
	return ""
}

func (x *ListTasksRequest) GetUrgente() bool {
	if x != nil && x.Urgente != nil {
		return *x.Urgente
	}
	return false
}

func (x *ListTasksRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListTasksRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tasks         []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{9}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

type SetTaskStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Estado        string                 `protobuf:"bytes,2,opt,name=estado,proto3" json:"estado,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTaskStateRequest) Reset() {
	*x = SetTaskStateRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskStateRequest) ProtoMessage() {}

func (x *SetTaskStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskStateRequest.ProtoReflect.Descriptor instead.
func (*SetTaskStateRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{10}
}

func (x *SetTaskStateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetTaskStateRequest) GetEstado() string {
	if x != nil {
		return x.Estado
	}
	return ""
}

type SetTaskStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetTaskStateResponse) Reset() {
	*x = SetTaskStateResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetTaskStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetTaskStateResponse) ProtoMessage() {}

func (x *SetTaskStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetTaskStateResponse.ProtoReflect.Descriptor instead.
func (*SetTaskStateResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{11}
}

func (x *SetTaskStateResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ListAlertsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnreadOnly    bool                   `protobuf:"varint,1,opt,name=unread_only,json=unreadOnly,proto3" json:"unread_only,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlertsRequest) Reset() {
	*x = ListAlertsRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlertsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlertsRequest) ProtoMessage() {}

func (x *ListAlertsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlertsRequest.ProtoReflect.Descriptor instead.
func (*ListAlertsRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{12}
}

func (x *ListAlertsRequest) GetUnreadOnly() bool {
	if x != nil {
		return x.UnreadOnly
	}
	return false
}

func (x *ListAlertsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListAlertsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListAlertsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alerts        []*Alert               `protobuf:"bytes,1,rep,name=alerts,proto3" json:"alerts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlertsResponse) Reset() {
	*x = ListAlertsResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlertsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlertsResponse) ProtoMessage() {}

func (x *ListAlertsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlertsResponse.ProtoReflect.Descriptor instead.
func (*ListAlertsResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{13}
}

func (x *ListAlertsResponse) GetAlerts() []*Alert {
	if x != nil {
		return x.Alerts
	}
	return nil
}

type MarkAlertReadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkAlertReadRequest) Reset() {
	*x = MarkAlertReadRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkAlertReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkAlertReadRequest) ProtoMessage() {}

func (x *MarkAlertReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkAlertReadRequest.ProtoReflect.Descriptor instead.
func (*MarkAlertReadRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{14}
}

func (x *MarkAlertReadRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type MarkAlertReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alert         *Alert                 `protobuf:"bytes,1,opt,name=alert,proto3" json:"alert,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkAlertReadResponse) Reset() {
	*x = MarkAlertReadResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkAlertReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkAlertReadResponse) ProtoMessage() {}

func (x *MarkAlertReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkAlertReadResponse.ProtoReflect.Descriptor instead.
func (*MarkAlertReadResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{15}
}

func (x *MarkAlertReadResponse) GetAlert() *Alert {
	if x != nil {
		return x.Alert
	}
	return nil
}

type GetStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsRequest) Reset() {
	*x = GetStatsRequest{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsRequest) ProtoMessage() {}

func (x *GetStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsRequest.ProtoReflect.Descriptor instead.
func (*GetStatsRequest) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{16}
}

type GetStatsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	EmailsByStatus map[string]int32       `protobuf:"bytes,1,rep,name=emails_by_status,json=emailsByStatus,proto3" json:"emails_by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	TasksByEstado  map[string]int32       `protobuf:"bytes,2,rep,name=tasks_by_estado,json=tasksByEstado,proto3" json:"tasks_by_estado,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	UrgentTasks    int32                  `protobuf:"varint,3,opt,name=urgent_tasks,json=urgentTasks,proto3" json:"urgent_tasks,omitempty"`
	UnreadAlerts   int32                  `protobuf:"varint,4,opt,name=unread_alerts,json=unreadAlerts,proto3" json:"unread_alerts,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetStatsResponse) Reset() {
	*x = GetStatsResponse{}
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsResponse) ProtoMessage() {}

func (x *GetStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cobertor_v1_cobertor_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsResponse.ProtoReflect.Descriptor instead.
func (*GetStatsResponse) Descriptor() ([]byte, []int) {
	return file_cobertor_v1_cobertor_proto_rawDescGZIP(), []int{17}
}

func (x *GetStatsResponse) GetEmailsByStatus() map[string]int32 {
	if x != nil {
		return x.EmailsByStatus
	}
	return nil
}

func (x *GetStatsResponse) GetTasksByEstado() map[string]int32 {
	if x != nil {
		return x.TasksByEstado
	}
	return nil
}

func (x *GetStatsResponse) GetUrgentTasks() int32 {
	if x != nil {
		return x.UrgentTasks
	}
	return 0
}

func (x *GetStatsResponse) GetUnreadAlerts() int32 {
	if x != nil {
		return x.UnreadAlerts
	}
	return 0
}

var File_cobertor_v1_cobertor_proto protoreflect.FileDescriptor

const file_cobertor_v1_cobertor_proto_rawDesc = "" +
	"\n" +
	"\x1acobertor/v1/cobertor.proto\x12\vcobertor.v1\"\xe2\x03\n" +
	"\fEmailMessage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"message_id\x18\x02 \x01(\tR\tmessageId\x12 \n" +
	"\tthread_id\x18\x03 \x01(\tH\x00R\bthreadId\x88\x01\x01\x12!\n" +
	"\fsender_email\x18\x04 \x01(\tR\vsenderEmail\x12$\n" +
	"\vsender_name\x18\x05 \x01(\tH\x01R\n" +
	"senderName\x88\x01\x01\x12\x18\n" +
	"\asubject\x18\x06 \x01(\tR\asubject\x12\x1f\n" +
	"\vreceived_at\x18\a \x01(\tR\n" +
	"receivedAt\x12&\n" +
	"\fprocessed_at\x18\b \x01(\tH\x02R\vprocessedAt\x88\x01\x01\x12'\n" +
	"\x0fhas_attachments\x18\t \x01(\bR\x0ehasAttachments\x12)\n" +
	"\x10attachment_count\x18\n" +
	" \x01(\x05R\x0fattachmentCount\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12(\n" +
	"\rerror_message\x18\f \x01(\tH\x03R\ferrorMessage\x88\x01\x01B\f\n" +
	"\n" +
	"_thread_idB\x0e\n" +
	"\f_sender_nameB\x0f\n" +
	"\r_processed_atB\x10\n" +
	"\x0e_error_message\"\xb4\x04\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bemail_id\x18\x02 \x01(\tR\aemailId\x12,\n" +
	"\x0fcodigo_cobertor\x18\x03 \x01(\tH\x00R\x0ecodigoCobertor\x88\x01\x01\x12\x1d\n" +
	"\acuartel\x18\x04 \x01(\tH\x01R\acuartel\x88\x01\x01\x12\x1d\n" +
	"\ahileras\x18\x05 \x01(\x05H\x02R\ahileras\x88\x01\x01\x12&\n" +
	"\flargo_metros\x18\x06 \x01(\x01H\x03R\vlargoMetros\x88\x01\x01\x12\x1c\n" +
	"\tprioridad\x18\a \x01(\tR\tprioridad\x12\x16\n" +
	"\x06estado\x18\b \x01(\tR\x06estado\x12%\n" +
	"\vdescripcion\x18\t \x01(\tH\x04R\vdescripcion\x88\x01\x01\x12\x19\n" +
	"\x05notas\x18\n" +
	" \x01(\tH\x05R\x05notas\x88\x01\x01\x12\x16\n" +
	"\x06origen\x18\v \x01(\tR\x06origen\x12\x18\n" +
	"\aurgente\x18\f \x01(\bR\aurgente\x12'\n" +
	"\x0ffecha_solicitud\x18\r \x01(\tR\x0efechaSolicitud\x12.\n" +
	"\x10fecha_completada\x18\x0e \x01(\tH\x06R\x0ffechaCompletada\x88\x01\x01B\x12\n" +
	"\x10_codigo_cobertorB\n" +
	"\n" +
	"\b_cuartelB\n" +
	"\n" +
	"\b_hilerasB\x0f\n" +
	"\r_largo_metrosB\x0e\n" +
	"\f_descripcionB\b\n" +
	"\x06_notasB\x13\n" +
	"\x11_fecha_completada\"\xf3\x01\n" +
	"\n" +
	"Attachment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bemail_id\x18\x02 \x01(\tR\aemailId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12 \n" +
	"\tmime_type\x18\x04 \x01(\tH\x00R\bmimeType\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x05 \x01(\x05R\tsizeBytes\x12\x1b\n" +
	"\x06format\x18\x06 \x01(\tH\x01R\x06format\x88\x01\x01\x12'\n" +
	"\x0fextracted_count\x18\a \x01(\x05R\x0eextractedCountB\f\n" +
	"\n" +
	"_mime_typeB\t\n" +
	"\a_format\"\xa4\x02\n" +
	"\x05Alert\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04tipo\x18\x02 \x01(\tR\x04tipo\x12\x16\n" +
	"\x06titulo\x18\x03 \x01(\tR\x06titulo\x12%\n" +
	"\vdescripcion\x18\x04 \x01(\tH\x00R\vdescripcion\x88\x01\x01\x12\x1c\n" +
	"\atask_id\x18\x05 \x01(\tH\x01R\x06taskId\x88\x01\x01\x12\x1e\n" +
	"\bemail_id\x18\x06 \x01(\tH\x02R\aemailId\x88\x01\x01\x12\x1c\n" +
	"\tseveridad\x18\a \x01(\tR\tseveridad\x12\x14\n" +
	"\x05leida\x18\b \x01(\bR\x05leida\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAtB\x0e\n" +
	"\f_descripcionB\n" +
	"\n" +
	"\b_task_idB\v\n" +
	"\t_email_id\"i\n" +
	"\x11ListEmailsRequest\x12\x1b\n" +
	"\x06status\x18\x01 \x01(\tH\x00R\x06status\x88\x01\x01\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offsetB\t\n" +
	"\a_status\"G\n" +
	"\x12ListEmailsResponse\x121\n" +
	"\x06emails\x18\x01 \x03(\v2\x19.cobertor.v1.EmailMessageR\x06emails\"!\n" +
	"\x0fGetEmailRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xa7\x01\n" +
	"\x10GetEmailResponse\x12/\n" +
	"\x05email\x18\x01 \x01(\v2\x19.cobertor.v1.EmailMessageR\x05email\x12'\n" +
	"\x05tasks\x18\x02 \x03(\v2\x11.cobertor.v1.TaskR\x05tasks\x129\n" +
	"\vattachments\x18\x03 \x03(\v2\x17.cobertor.v1.AttachmentR\vattachments\"\xec\x01\n" +
	"\x10ListTasksRequest\x12\x1b\n" +
	"\x06estado\x18\x01 \x01(\tH\x00R\x06estado\x88\x01\x01\x12!\n" +
	"\tprioridad\x18\x02 \x01(\tH\x01R\tprioridad\x88\x01\x01\x12\x1b\n" +
	"\x06codigo\x18\x03 \x01(\tH\x02R\x06codigo\x88\x01\x01\x12\x1d\n" +
	"\aurgente\x18\x04 \x01(\bH\x03R\aurgente\x88\x01\x01\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x06 \x01(\x05R\x06offsetB\t\n" +
	"\a_estadoB\f\n" +
	"\n" +
	"_prioridadB\t\n" +
	"\a_codigoB\n" +
	"\n" +
	"\b_urgente\"<\n" +
	"\x11ListTasksResponse\x12'\n" +
	"\x05tasks\x18\x01 \x03(\v2\x11.cobertor.v1.TaskR\x05tasks\"=\n" +
	"\x13SetTaskStateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06estado\x18\x02 \x01(\tR\x06estado\"=\n" +
	"\x14SetTaskStateResponse\x12%\n" +
	"\x04task\x18\x01 \x01(\v2\x11.cobertor.v1.TaskR\x04task\"b\n" +
	"\x11ListAlertsRequest\x12\x1f\n" +
	"\vunread_only\x18\x01 \x01(\bR\n" +
	"unreadOnly\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"@\n" +
	"\x12ListAlertsResponse\x12*\n" +
	"\x06alerts\x18\x01 \x03(\v2\x12.cobertor.v1.AlertR\x06alerts\"&\n" +
	"\x14MarkAlertReadRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"A\n" +
	"\x15MarkAlertReadResponse\x12(\n" +
	"\x05alert\x18\x01 \x01(\v2\x12.cobertor.v1.AlertR\x05alert\"\x11\n" +
	"\x0fGetStatsRequest\"\x96\x03\n" +
	"\x10GetStatsResponse\x12[\n" +
	"\x10emails_by_status\x18\x01 \x03(\v21.cobertor.v1.GetStatsResponse.EmailsByStatusEntryR\x0eemailsByStatus\x12X\n" +
	"\x0ftasks_by_estado\x18\x02 \x03(\v20.cobertor.v1.GetStatsResponse.TasksByEstadoEntryR\rtasksByEstado\x12!\n" +
	"\furgent_tasks\x18\x03 \x01(\x05R\vurgentTasks\x12#\n" +
	"\runread_alerts\x18\x04 \x01(\x05R\funreadAlerts\x1aA\n" +
	"\x13EmailsByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a@\n" +
	"\x12TasksByEstadoEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x012\xa7\x01\n" +
	"\rEmailsService\x12M\n" +
	"\n" +
	"ListEmails\x12\x1e.cobertor.v1.ListEmailsRequest\x1a\x1f.cobertor.v1.ListEmailsResponse\x12G\n" +
	"\bGetEmail\x12\x1c.cobertor.v1.GetEmailRequest\x1a\x1d.cobertor.v1.GetEmailResponse2\xaf\x01\n" +
	"\fTasksService\x12J\n" +
	"\tListTasks\x12\x1d.cobertor.v1.ListTasksRequest\x1a\x1e.cobertor.v1.ListTasksResponse\x12S\n" +
	"\fSetTaskState\x12 .cobertor.v1.SetTaskStateRequest\x1a!.cobertor.v1.SetTaskStateResponse2\xb6\x01\n" +
	"\rAlertsService\x12M\n" +
	"\n" +
	"ListAlerts\x12\x1e.cobertor.v1.ListAlertsRequest\x1a\x1f.cobertor.v1.ListAlertsResponse\x12V\n" +
	"\rMarkAlertRead\x12!.cobertor.v1.MarkAlertReadRequest\x1a\".cobertor.v1.MarkAlertReadResponse2W\n" +
	"\fStatsService\x12G\n" +
	"\bGetStats\x12\x1c.cobertor.v1.GetStatsRequest\x1a\x1d.cobertor.v1.GetStatsResponseBFZDgithub.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1;cobertorv1b\x06proto3"

var (
	file_cobertor_v1_cobertor_proto_rawDescOnce sync.Once
	file_cobertor_v1_cobertor_proto_rawDescData []byte
)

func file_cobertor_v1_cobertor_proto_rawDescGZIP() []byte {
	file_cobertor_v1_cobertor_proto_rawDescOnce.Do(func() {
		file_cobertor_v1_cobertor_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cobertor_v1_cobertor_proto_rawDesc), len(file_cobertor_v1_cobertor_proto_rawDesc)))
	})
	return file_cobertor_v1_cobertor_proto_rawDescData
}

var file_cobertor_v1_cobertor_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_cobertor_v1_cobertor_proto_goTypes = []any{
	(*EmailMessage)(nil),          // 0: cobertor.v1.EmailMessage
	(*Task)(nil),                  // 1: cobertor.v1.Task
	(*Attachment)(nil),            // 2: cobertor.v1.Attachment
	(*Alert)(nil),                 // 3: cobertor.v1.Alert
	(*ListEmailsRequest)(nil),     // 4: cobertor.v1.ListEmailsRequest
	(*ListEmailsResponse)(nil),    // 5: cobertor.v1.ListEmailsResponse
	(*GetEmailRequest)(nil),       // 6: cobertor.v1.GetEmailRequest
	(*GetEmailResponse)(nil),      // 7: cobertor.v1.GetEmailResponse
	(*ListTasksRequest)(nil),      // 8: cobertor.v1.ListTasksRequest
	(*ListTasksResponse)(nil),     // 9: cobertor.v1.ListTasksResponse
	(*SetTaskStateRequest)(nil),   // 10: cobertor.v1.SetTaskStateRequest
	(*SetTaskStateResponse)(nil),  // 11: cobertor.v1.SetTaskStateResponse
	(*ListAlertsRequest)(nil),     // 12: cobertor.v1.ListAlertsRequest
	(*ListAlertsResponse)(nil),    // 13: cobertor.v1.ListAlertsResponse
	(*MarkAlertReadRequest)(nil),  // 14: cobertor.v1.MarkAlertReadRequest
	(*MarkAlertReadResponse)(nil), // 15: cobertor.v1.MarkAlertReadResponse
	(*GetStatsRequest)(nil),       // 16: cobertor.v1.GetStatsRequest
	(*GetStatsResponse)(nil),      // 17: cobertor.v1.GetStatsResponse
	nil,                           // 18: cobertor.v1.GetStatsResponse.EmailsByStatusEntry
	nil,                           // 19: cobertor.v1.GetStatsResponse.TasksByEstadoEntry
}
var file_cobertor_v1_cobertor_proto_depIdxs = []int32{
	0,  // 0: cobertor.v1.ListEmailsResponse.emails:type_name -> cobertor.v1.EmailMessage
	0,  // 1: cobertor.v1.GetEmailResponse.email:type_name -> cobertor.v1.EmailMessage
	1,  // 2: cobertor.v1.GetEmailResponse.tasks:type_name -> cobertor.v1.Task
	2,  // 3: cobertor.v1.GetEmailResponse.attachments:type_name -> cobertor.v1.Attachment
	1,  // 4: cobertor.v1.ListTasksResponse.tasks:type_name -> cobertor.v1.Task
	1,  // 5: cobertor.v1.SetTaskStateResponse.task:type_name -> cobertor.v1.Task
	3,  // 6: cobertor.v1.ListAlertsResponse.alerts:type_name -> cobertor.v1.Alert
	3,  // 7: cobertor.v1.MarkAlertReadResponse.alert:type_name -> cobertor.v1.Alert
	18, // 8: cobertor.v1.GetStatsResponse.emails_by_status:type_name -> cobertor.v1.GetStatsResponse.EmailsByStatusEntry
	19, // 9: cobertor.v1.GetStatsResponse.tasks_by_estado:type_name -> cobertor.v1.GetStatsResponse.TasksByEstadoEntry
	4,  // 10: cobertor.v1.EmailsService.ListEmails:input_type -> cobertor.v1.ListEmailsRequest
	6,  // 11: cobertor.v1.EmailsService.GetEmail:input_type -> cobertor.v1.GetEmailRequest
	8,  // 12: cobertor.v1.TasksService.ListTasks:input_type -> cobertor.v1.ListTasksRequest
	10, // 13: cobertor.v1.TasksService.SetTaskState:input_type -> cobertor.v1.SetTaskStateRequest
	12, // 14: cobertor.v1.AlertsService.ListAlerts:input_type -> cobertor.v1.ListAlertsRequest
	14, // 15: cobertor.v1.AlertsService.MarkAlertRead:input_type -> cobertor.v1.MarkAlertReadRequest
	16, // 16: cobertor.v1.StatsService.GetStats:input_type -> cobertor.v1.GetStatsRequest
	5,  // 17: cobertor.v1.EmailsService.ListEmails:output_type -> cobertor.v1.ListEmailsResponse
	7,  // 18: cobertor.v1.EmailsService.GetEmail:output_type -> cobertor.v1.GetEmailResponse
	9,  // 19: cobertor.v1.TasksService.ListTasks:output_type -> cobertor.v1.ListTasksResponse
	11, // 20: cobertor.v1.TasksService.SetTaskState:output_type -> cobertor.v1.SetTaskStateResponse
	13, // 21: cobertor.v1.AlertsService.ListAlerts:output_type -> cobertor.v1.ListAlertsResponse
	15, // 22: cobertor.v1.AlertsService.MarkAlertRead:output_type -> cobertor.v1.MarkAlertReadResponse
	17, // 23: cobertor.v1.StatsService.GetStats:output_type -> cobertor.v1.GetStatsResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_cobertor_v1_cobertor_proto_init() }
func file_cobertor_v1_cobertor_proto_init() {
	if File_cobertor_v1_cobertor_proto != nil {
		return
	}
	file_cobertor_v1_cobertor_proto_msgTypes[0].OneofWrappers = []any{}
	file_cobertor_v1_cobertor_proto_msgTypes[1].OneofWrappers = []any{}
	file_cobertor_v1_cobertor_proto_msgTypes[2].OneofWrappers = []any{}
	file_cobertor_v1_cobertor_proto_msgTypes[3].OneofWrappers = []any{}
	file_cobertor_v1_cobertor_proto_msgTypes[4].OneofWrappers = []any{}
	file_cobertor_v1_cobertor_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cobertor_v1_cobertor_proto_rawDesc), len(file_cobertor_v1_cobertor_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_cobertor_v1_cobertor_proto_goTypes,
		DependencyIndexes: file_cobertor_v1_cobertor_proto_depIdxs,
		MessageInfos:      file_cobertor_v1_cobertor_proto_msgTypes,
	}.Build()
	File_cobertor_v1_cobertor_proto = out.File
	file_cobertor_v1_cobertor_proto_goTypes = nil
	file_cobertor_v1_cobertor_proto_depIdxs = nil
}
