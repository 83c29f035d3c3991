// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: expensehub/v1/export.proto

package expensehubv1

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

type ExportExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesRequest) Reset() {
	*x = ExportExpensesRequest{}
	mi := &file_expensehub_v1_export_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesRequest) ProtoMessage() {}

func (x *ExportExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_export_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesRequest.ProtoReflect.Descriptor instead.
func (*ExportExpensesRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_export_proto_rawDescGZIP(), []int{0}
}

type ExportExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportExpensesResponse) Reset() {
	*x = ExportExpensesResponse{}
	mi := &file_expensehub_v1_export_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportExpensesResponse) ProtoMessage() {}

func (x *ExportExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_export_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportExpensesResponse.ProtoReflect.Descriptor instead.
func (*ExportExpensesResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_export_proto_rawDescGZIP(), []int{1}
}

func (x *ExportExpensesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId     string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillRequest) Reset() {
	*x = ExportBillRequest{}
	mi := &file_expensehub_v1_export_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillRequest) ProtoMessage() {}

func (x *ExportBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_export_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillRequest.ProtoReflect.Descriptor instead.
func (*ExportBillRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_export_proto_rawDescGZIP(), []int{2}
}

func (x *ExportBillRequest) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

type ExportBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillResponse) Reset() {
	*x = ExportBillResponse{}
	mi := &file_expensehub_v1_export_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillResponse) ProtoMessage() {}

func (x *ExportBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_export_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillResponse.ProtoReflect.Descriptor instead.
func (*ExportBillResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_export_proto_rawDescGZIP(), []int{3}
}

func (x *ExportBillResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportBillResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_expensehub_v1_export_proto protoreflect.FileDescriptor

const file_expensehub_v1_export_proto_rawDesc = "" +
	"\n" +
	"\x1aexpensehub/v1/export.proto\x12\rexpensehub.v1\"\x17\n" +
	"\x15ExportExpensesRequest\",\n" +
	"\x16ExportExpensesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"2\n" +
	"\x11ExportBillRequest\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\"D\n" +
	"\x12ExportBillResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xc1\x01\n" +
	"\rExportService\x12]\n" +
	"\x0eExportExpenses\x12$.expensehub.v1.ExportExpensesRequest\x1a%.expensehub.v1.ExportExpensesResponse\x12Q\n" +
	"\n" +
	"ExportBill\x12 .expensehub.v1.ExportBillRequest\x1a!.expensehub.v1.ExportBillResponseBLZJgithub.com/expensehub/expense-tracker/gen/proto/expensehub/v1;expensehubv1b\x06proto3"

var (
	file_expensehub_v1_export_proto_rawDescOnce sync.Once
	file_expensehub_v1_export_proto_rawDescData []byte
)

func file_expensehub_v1_export_proto_rawDescGZIP() []byte {
	file_expensehub_v1_export_proto_rawDescOnce.Do(func() {
		file_expensehub_v1_export_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_expensehub_v1_export_proto_rawDesc), len(file_expensehub_v1_export_proto_rawDesc)))
	})
	return file_expensehub_v1_export_proto_rawDescData
}

var file_expensehub_v1_export_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_expensehub_v1_export_proto_goTypes = []any{
	(*ExportExpensesRequest)(nil),  // 0: expensehub.v1.ExportExpensesRequest
	(*ExportExpensesResponse)(nil), // 1: expensehub.v1.ExportExpensesResponse
	(*ExportBillRequest)(nil),      // 2: expensehub.v1.ExportBillRequest
	(*ExportBillResponse)(nil),     // 3: expensehub.v1.ExportBillResponse
}
var file_expensehub_v1_export_proto_depIdxs = []int32{
	0, // 0: expensehub.v1.ExportService.ExportExpenses:input_type -> expensehub.v1.ExportExpensesRequest
	2, // 1: expensehub.v1.ExportService.ExportBill:input_type -> expensehub.v1.ExportBillRequest
	1, // 2: expensehub.v1.ExportService.ExportExpenses:output_type -> expensehub.v1.ExportExpensesResponse
	3, // 3: expensehub.v1.ExportService.ExportBill:output_type -> expensehub.v1.ExportBillResponse
	2, // [2:4] is the sub-list for method output_type
	0, // [0:2] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_expensehub_v1_export_proto_init() }
func file_expensehub_v1_export_proto_init() {
	if File_expensehub_v1_export_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_expensehub_v1_export_proto_rawDesc), len(file_expensehub_v1_export_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_expensehub_v1_export_proto_goTypes,
		DependencyIndexes: file_expensehub_v1_export_proto_depIdxs,
		MessageInfos:      file_expensehub_v1_export_proto_msgTypes,
	}.Build()
	File_expensehub_v1_export_proto = out.File
	file_expensehub_v1_export_proto_goTypes = nil
	file_expensehub_v1_export_proto_depIdxs = nil
}
