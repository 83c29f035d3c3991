// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: expensehub/v1/expenses.proto

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

// One reimbursable item.
type Expense struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId             string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TxDate             string                 `protobuf:"bytes,3,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	Vendor             string                 `protobuf:"bytes,4,opt,name=vendor,proto3" json:"vendor,omitempty"`
	Amount             float64                `protobuf:"fixed64,5,opt,name=amount,proto3" json:"amount,omitempty"`
	CurrencyCode       string                 `protobuf:"bytes,6,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Category           string                 `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`
	Location           string                 `protobuf:"bytes,8,opt,name=location,proto3" json:"location,omitempty"`
	Details            string                 `protobuf:"bytes,9,opt,name=details,proto3" json:"details,omitempty"`
	ImagePath          string                 `protobuf:"bytes,10,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	Status             string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ConvertedAmount    *float64               `protobuf:"fixed64,12,opt,name=converted_amount,json=convertedAmount,proto3,oneof" json:"converted_amount,omitempty"`
	BaseCurrencyAtTime *string                `protobuf:"bytes,13,opt,name=base_currency_at_time,json=baseCurrencyAtTime,proto3,oneof" json:"base_currency_at_time,omitempty"`
	IsManual           bool                   `protobuf:"varint,14,opt,name=is_manual,json=isManual,proto3" json:"is_manual,omitempty"`
	Items              []*LineItem            `protobuf:"bytes,15,rep,name=items,proto3" json:"items,omitempty"`
	ManualMetadata     *ManualMetadata        `protobuf:"bytes,16,opt,name=manual_metadata,json=manualMetadata,proto3,oneof" json:"manual_metadata,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt          string                 `protobuf:"bytes,18,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Expense) Reset() {
	*x = Expense{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Expense) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Expense) ProtoMessage() {}

func (x *Expense) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Expense.ProtoReflect.Descriptor instead.
func (*Expense) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{0}
}

func (x *Expense) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Expense) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Expense) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Expense) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *Expense) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Expense) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Expense) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Expense) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Expense) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

func (x *Expense) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *Expense) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Expense) GetConvertedAmount() float64 {
	if x != nil && x.ConvertedAmount != nil {
		return *x.ConvertedAmount
	}
	return 0
}

func (x *Expense) GetBaseCurrencyAtTime() string {
	if x != nil && x.BaseCurrencyAtTime != nil {
		return *x.BaseCurrencyAtTime
	}
	return ""
}

func (x *Expense) GetIsManual() bool {
	if x != nil {
		return x.IsManual
	}
	return false
}

func (x *Expense) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Expense) GetManualMetadata() *ManualMetadata {
	if x != nil {
		return x.ManualMetadata
	}
	return nil
}

func (x *Expense) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Expense) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quantity      int32                  `protobuf:"varint,1,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{1}
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

type ManualMetadata struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Address          string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Phone            string                 `protobuf:"bytes,2,opt,name=phone,proto3" json:"phone,omitempty"`
	Website          string                 `protobuf:"bytes,3,opt,name=website,proto3" json:"website,omitempty"`
	BillNo           string                 `protobuf:"bytes,4,opt,name=bill_no,json=billNo,proto3" json:"bill_no,omitempty"`
	TableNo          string                 `protobuf:"bytes,5,opt,name=table_no,json=tableNo,proto3" json:"table_no,omitempty"`
	Steward          string                 `protobuf:"bytes,6,opt,name=steward,proto3" json:"steward,omitempty"`
	Cover            string                 `protobuf:"bytes,7,opt,name=cover,proto3" json:"cover,omitempty"`
	Session          string                 `protobuf:"bytes,8,opt,name=session,proto3" json:"session,omitempty"`
	Gstin            string                 `protobuf:"bytes,9,opt,name=gstin,proto3" json:"gstin,omitempty"`
	Cashier          string                 `protobuf:"bytes,10,opt,name=cashier,proto3" json:"cashier,omitempty"`
	BillTime         string                 `protobuf:"bytes,11,opt,name=bill_time,json=billTime,proto3" json:"bill_time,omitempty"`
	ServiceChargePct float64                `protobuf:"fixed64,12,opt,name=service_charge_pct,json=serviceChargePct,proto3" json:"service_charge_pct,omitempty"`
	CgstPct          float64                `protobuf:"fixed64,13,opt,name=cgst_pct,json=cgstPct,proto3" json:"cgst_pct,omitempty"`
	SgstPct          float64                `protobuf:"fixed64,14,opt,name=sgst_pct,json=sgstPct,proto3" json:"sgst_pct,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ManualMetadata) Reset() {
	*x = ManualMetadata{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ManualMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ManualMetadata) ProtoMessage() {}

func (x *ManualMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ManualMetadata.ProtoReflect.Descriptor instead.
func (*ManualMetadata) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{2}
}

func (x *ManualMetadata) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ManualMetadata) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ManualMetadata) GetWebsite() string {
	if x != nil {
		return x.Website
	}
	return ""
}

func (x *ManualMetadata) GetBillNo() string {
	if x != nil {
		return x.BillNo
	}
	return ""
}

func (x *ManualMetadata) GetTableNo() string {
	if x != nil {
		return x.TableNo
	}
	return ""
}

func (x *ManualMetadata) GetSteward() string {
	if x != nil {
		return x.Steward
	}
	return ""
}

func (x *ManualMetadata) GetCover() string {
	if x != nil {
		return x.Cover
	}
	return ""
}

func (x *ManualMetadata) GetSession() string {
	if x != nil {
		return x.Session
	}
	return ""
}

func (x *ManualMetadata) GetGstin() string {
	if x != nil {
		return x.Gstin
	}
	return ""
}

func (x *ManualMetadata) GetCashier() string {
	if x != nil {
		return x.Cashier
	}
	return ""
}

func (x *ManualMetadata) GetBillTime() string {
	if x != nil {
		return x.BillTime
	}
	return ""
}

func (x *ManualMetadata) GetServiceChargePct() float64 {
	if x != nil {
		return x.ServiceChargePct
	}
	return 0
}

func (x *ManualMetadata) GetCgstPct() float64 {
	if x != nil {
		return x.CgstPct
	}
	return 0
}

func (x *ManualMetadata) GetSgstPct() float64 {
	if x != nil {
		return x.SgstPct
	}
	return 0
}

type Upload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Image         []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Upload) Reset() {
	*x = Upload{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Upload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Upload) ProtoMessage() {}

func (x *Upload) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Upload.ProtoReflect.Descriptor instead.
func (*Upload) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{3}
}

func (x *Upload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Upload) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *Upload) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type ProcessUploadsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uploads       []*Upload              `protobuf:"bytes,1,rep,name=uploads,proto3" json:"uploads,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessUploadsRequest) Reset() {
	*x = ProcessUploadsRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessUploadsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessUploadsRequest) ProtoMessage() {}

func (x *ProcessUploadsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessUploadsRequest.ProtoReflect.Descriptor instead.
func (*ProcessUploadsRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessUploadsRequest) GetUploads() []*Upload {
	if x != nil {
		return x.Uploads
	}
	return nil
}

type ProcessUploadsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expenses      []*Expense             `protobuf:"bytes,1,rep,name=expenses,proto3" json:"expenses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessUploadsResponse) Reset() {
	*x = ProcessUploadsResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessUploadsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessUploadsResponse) ProtoMessage() {}

func (x *ProcessUploadsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessUploadsResponse.ProtoReflect.Descriptor instead.
func (*ProcessUploadsResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessUploadsResponse) GetExpenses() []*Expense {
	if x != nil {
		return x.Expenses
	}
	return nil
}

type CreateManualBillRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TxDate         string                 `protobuf:"bytes,1,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	Vendor         string                 `protobuf:"bytes,2,opt,name=vendor,proto3" json:"vendor,omitempty"`
	CurrencyCode   string                 `protobuf:"bytes,3,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Category       string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Location       string                 `protobuf:"bytes,5,opt,name=location,proto3" json:"location,omitempty"`
	Items          []*LineItem            `protobuf:"bytes,6,rep,name=items,proto3" json:"items,omitempty"`
	ManualMetadata *ManualMetadata        `protobuf:"bytes,7,opt,name=manual_metadata,json=manualMetadata,proto3,oneof" json:"manual_metadata,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateManualBillRequest) Reset() {
	*x = CreateManualBillRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualBillRequest) ProtoMessage() {}

func (x *CreateManualBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualBillRequest.ProtoReflect.Descriptor instead.
func (*CreateManualBillRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{6}
}

func (x *CreateManualBillRequest) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *CreateManualBillRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *CreateManualBillRequest) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *CreateManualBillRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateManualBillRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *CreateManualBillRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CreateManualBillRequest) GetManualMetadata() *ManualMetadata {
	if x != nil {
		return x.ManualMetadata
	}
	return nil
}

type CreateManualBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualBillResponse) Reset() {
	*x = CreateManualBillResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualBillResponse) ProtoMessage() {}

func (x *CreateManualBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualBillResponse.ProtoReflect.Descriptor instead.
func (*CreateManualBillResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{7}
}

func (x *CreateManualBillResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type UpdateManualBillRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId      string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	TxDate         string                 `protobuf:"bytes,2,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	Vendor         string                 `protobuf:"bytes,3,opt,name=vendor,proto3" json:"vendor,omitempty"`
	CurrencyCode   string                 `protobuf:"bytes,4,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Category       string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	Location       string                 `protobuf:"bytes,6,opt,name=location,proto3" json:"location,omitempty"`
	Items          []*LineItem            `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	ManualMetadata *ManualMetadata        `protobuf:"bytes,8,opt,name=manual_metadata,json=manualMetadata,proto3,oneof" json:"manual_metadata,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpdateManualBillRequest) Reset() {
	*x = UpdateManualBillRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateManualBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateManualBillRequest) ProtoMessage() {}

func (x *UpdateManualBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateManualBillRequest.ProtoReflect.Descriptor instead.
func (*UpdateManualBillRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateManualBillRequest) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

func (x *UpdateManualBillRequest) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *UpdateManualBillRequest) GetVendor() string {
	if x != nil {
		return x.Vendor
	}
	return ""
}

func (x *UpdateManualBillRequest) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *UpdateManualBillRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *UpdateManualBillRequest) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *UpdateManualBillRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *UpdateManualBillRequest) GetManualMetadata() *ManualMetadata {
	if x != nil {
		return x.ManualMetadata
	}
	return nil
}

type UpdateManualBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateManualBillResponse) Reset() {
	*x = UpdateManualBillResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateManualBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateManualBillResponse) ProtoMessage() {}

func (x *UpdateManualBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateManualBillResponse.ProtoReflect.Descriptor instead.
func (*UpdateManualBillResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateManualBillResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

// Partial patch: unset fields are left untouched.
type UpdateExpenseRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId       string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	TxDate          *string                `protobuf:"bytes,2,opt,name=tx_date,json=txDate,proto3,oneof" json:"tx_date,omitempty"`
	Vendor          *string                `protobuf:"bytes,3,opt,name=vendor,proto3,oneof" json:"vendor,omitempty"`
	Amount          *float64               `protobuf:"fixed64,4,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	CurrencyCode    *string                `protobuf:"bytes,5,opt,name=currency_code,json=currencyCode,proto3,oneof" json:"currency_code,omitempty"`
	Category        *string                `protobuf:"bytes,6,opt,name=category,proto3,oneof" json:"category,omitempty"`
	Location        *string                `protobuf:"bytes,7,opt,name=location,proto3,oneof" json:"location,omitempty"`
	Details         *string                `protobuf:"bytes,8,opt,name=details,proto3,oneof" json:"details,omitempty"`
	ConvertedAmount *float64               `protobuf:"fixed64,9,opt,name=converted_amount,json=convertedAmount,proto3,oneof" json:"converted_amount,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateExpenseRequest) Reset() {
	*x = UpdateExpenseRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateExpenseRequest) ProtoMessage() {}

func (x *UpdateExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateExpenseRequest.ProtoReflect.Descriptor instead.
func (*UpdateExpenseRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateExpenseRequest) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

func (x *UpdateExpenseRequest) GetTxDate() string {
	if x != nil && x.TxDate != nil {
		return *x.TxDate
	}
	return ""
}

func (x *UpdateExpenseRequest) GetVendor() string {
	if x != nil && x.Vendor != nil {
		return *x.Vendor
	}
	return ""
}

func (x *UpdateExpenseRequest) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *UpdateExpenseRequest) GetCurrencyCode() string {
	if x != nil && x.CurrencyCode != nil {
		return *x.CurrencyCode
	}
	return ""
}

func (x *UpdateExpenseRequest) GetCategory() string {
	if x != nil && x.Category != nil {
		return *x.Category
	}
	return ""
}

func (x *UpdateExpenseRequest) GetLocation() string {
	if x != nil && x.Location != nil {
		return *x.Location
	}
	return ""
}

func (x *UpdateExpenseRequest) GetDetails() string {
	if x != nil && x.Details != nil {
		return *x.Details
	}
	return ""
}

func (x *UpdateExpenseRequest) GetConvertedAmount() float64 {
	if x != nil && x.ConvertedAmount != nil {
		return *x.ConvertedAmount
	}
	return 0
}

type UpdateExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateExpenseResponse) Reset() {
	*x = UpdateExpenseResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateExpenseResponse) ProtoMessage() {}

func (x *UpdateExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateExpenseResponse.ProtoReflect.Descriptor instead.
func (*UpdateExpenseResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateExpenseResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type DeleteExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId     string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseRequest) Reset() {
	*x = DeleteExpenseRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseRequest) ProtoMessage() {}

func (x *DeleteExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseRequest.ProtoReflect.Descriptor instead.
func (*DeleteExpenseRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteExpenseRequest) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

type DeleteExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseResponse) Reset() {
	*x = DeleteExpenseResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseResponse) ProtoMessage() {}

func (x *DeleteExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseResponse.ProtoReflect.Descriptor instead.
func (*DeleteExpenseResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{13}
}

type ListExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesRequest) Reset() {
	*x = ListExpensesRequest{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesRequest) ProtoMessage() {}

func (x *ListExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesRequest.ProtoReflect.Descriptor instead.
func (*ListExpensesRequest) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{14}
}

type ListExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expenses      []*Expense             `protobuf:"bytes,1,rep,name=expenses,proto3" json:"expenses,omitempty"`
	TotalClaim    float64                `protobuf:"fixed64,2,opt,name=total_claim,json=totalClaim,proto3" json:"total_claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesResponse) Reset() {
	*x = ListExpensesResponse{}
	mi := &file_expensehub_v1_expenses_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesResponse) ProtoMessage() {}

func (x *ListExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_expensehub_v1_expenses_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesResponse.ProtoReflect.Descriptor instead.
func (*ListExpensesResponse) Descriptor() ([]byte, []int) {
	return file_expensehub_v1_expenses_proto_rawDescGZIP(), []int{15}
}

func (x *ListExpensesResponse) GetExpenses() []*Expense {
	if x != nil {
		return x.Expenses
	}
	return nil
}

func (x *ListExpensesResponse) GetTotalClaim() float64 {
	if x != nil {
		return x.TotalClaim
	}
	return 0
}

var File_expensehub_v1_expenses_proto protoreflect.FileDescriptor

const file_expensehub_v1_expenses_proto_rawDesc = "" +
	"\n" +
	"\x1cexpensehub/v1/expenses.proto\x12\rexpensehub.v1\"\xab\x05\n" +
	"\aExpense\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x17\n" +
	"\atx_date\x18\x03 \x01(\tR\x06txDate\x12\x16\n" +
	"\x06vendor\x18\x04 \x01(\tR\x06vendor\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x01R\x06amount\x12#\n" +
	"\rcurrency_code\x18\x06 \x01(\tR\fcurrencyCode\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\x12\x1a\n" +
	"\blocation\x18\b \x01(\tR\blocation\x12\x18\n" +
	"\adetails\x18\t \x01(\tR\adetails\x12\x1d\n" +
	"\n" +
	"image_path\x18\n" +
	" \x01(\tR\timagePath\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12.\n" +
	"\x10converted_amount\x18\f \x01(\x01H\x00R\x0fconvertedAmount\x88\x01\x01\x126\n" +
	"\x15base_currency_at_time\x18\r \x01(\tH\x01R\x12baseCurrencyAtTime\x88\x01\x01\x12\x1b\n" +
	"\tis_manual\x18\x0e \x01(\bR\bisManual\x12-\n" +
	"\x05items\x18\x0f \x03(\v2\x17.expensehub.v1.LineItemR\x05items\x12K\n" +
	"\x0fmanual_metadata\x18\x10 \x01(\v2\x1d.expensehub.v1.ManualMetadataH\x02R\x0emanualMetadata\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x12 \x01(\tR\tupdatedAtB\x13\n" +
	"\x11_converted_amountB\x18\n" +
	"\x16_base_currency_at_timeB\x12\n" +
	"\x10_manual_metadata\"Y\n" +
	"\bLineItem\x12\x1a\n" +
	"\bquantity\x18\x01 \x01(\x05R\bquantity\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\"\x89\x03\n" +
	"\x0eManualMetadata\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x14\n" +
	"\x05phone\x18\x02 \x01(\tR\x05phone\x12\x18\n" +
	"\awebsite\x18\x03 \x01(\tR\awebsite\x12\x17\n" +
	"\abill_no\x18\x04 \x01(\tR\x06billNo\x12\x19\n" +
	"\btable_no\x18\x05 \x01(\tR\atableNo\x12\x18\n" +
	"\asteward\x18\x06 \x01(\tR\asteward\x12\x14\n" +
	"\x05cover\x18\a \x01(\tR\x05cover\x12\x18\n" +
	"\asession\x18\b \x01(\tR\asession\x12\x14\n" +
	"\x05gstin\x18\t \x01(\tR\x05gstin\x12\x18\n" +
	"\acashier\x18\n" +
	" \x01(\tR\acashier\x12\x1b\n" +
	"\tbill_time\x18\v \x01(\tR\bbillTime\x12,\n" +
	"\x12service_charge_pct\x18\f \x01(\x01R\x10serviceChargePct\x12\x19\n" +
	"\bcgst_pct\x18\r \x01(\x01R\acgstPct\x12\x19\n" +
	"\bsgst_pct\x18\x0e \x01(\x01R\asgstPct\"W\n" +
	"\x06Upload\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\"H\n" +
	"\x15ProcessUploadsRequest\x12/\n" +
	"\auploads\x18\x01 \x03(\v2\x15.expensehub.v1.UploadR\auploads\"L\n" +
	"\x16ProcessUploadsResponse\x122\n" +
	"\bexpenses\x18\x01 \x03(\v2\x16.expensehub.v1.ExpenseR\bexpenses\"\xb7\x02\n" +
	"\x17CreateManualBillRequest\x12\x17\n" +
	"\atx_date\x18\x01 \x01(\tR\x06txDate\x12\x16\n" +
	"\x06vendor\x18\x02 \x01(\tR\x06vendor\x12#\n" +
	"\rcurrency_code\x18\x03 \x01(\tR\fcurrencyCode\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x1a\n" +
	"\blocation\x18\x05 \x01(\tR\blocation\x12-\n" +
	"\x05items\x18\x06 \x03(\v2\x17.expensehub.v1.LineItemR\x05items\x12K\n" +
	"\x0fmanual_metadata\x18\a \x01(\v2\x1d.expensehub.v1.ManualMetadataH\x00R\x0emanualMetadata\x88\x01\x01B\x12\n" +
	"\x10_manual_metadata\"L\n" +
	"\x18CreateManualBillResponse\x120\n" +
	"\aexpense\x18\x01 \x01(\v2\x16.expensehub.v1.ExpenseR\aexpense\"\xd6\x02\n" +
	"\x17UpdateManualBillRequest\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\x12\x17\n" +
	"\atx_date\x18\x02 \x01(\tR\x06txDate\x12\x16\n" +
	"\x06vendor\x18\x03 \x01(\tR\x06vendor\x12#\n" +
	"\rcurrency_code\x18\x04 \x01(\tR\fcurrencyCode\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1a\n" +
	"\blocation\x18\x06 \x01(\tR\blocation\x12-\n" +
	"\x05items\x18\a \x03(\v2\x17.expensehub.v1.LineItemR\x05items\x12K\n" +
	"\x0fmanual_metadata\x18\b \x01(\v2\x1d.expensehub.v1.ManualMetadataH\x00R\x0emanualMetadata\x88\x01\x01B\x12\n" +
	"\x10_manual_metadata\"L\n" +
	"\x18UpdateManualBillResponse\x120\n" +
	"\aexpense\x18\x01 \x01(\v2\x16.expensehub.v1.ExpenseR\aexpense\"\xb7\x03\n" +
	"\x14UpdateExpenseRequest\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\x12\x1c\n" +
	"\atx_date\x18\x02 \x01(\tH\x00R\x06txDate\x88\x01\x01\x12\x1b\n" +
	"\x06vendor\x18\x03 \x01(\tH\x01R\x06vendor\x88\x01\x01\x12\x1b\n" +
	"\x06amount\x18\x04 \x01(\x01H\x02R\x06amount\x88\x01\x01\x12(\n" +
	"\rcurrency_code\x18\x05 \x01(\tH\x03R\fcurrencyCode\x88\x01\x01\x12\x1f\n" +
	"\bcategory\x18\x06 \x01(\tH\x04R\bcategory\x88\x01\x01\x12\x1f\n" +
	"\blocation\x18\a \x01(\tH\x05R\blocation\x88\x01\x01\x12\x1d\n" +
	"\adetails\x18\b \x01(\tH\x06R\adetails\x88\x01\x01\x12.\n" +
	"\x10converted_amount\x18\t \x01(\x01H\aR\x0fconvertedAmount\x88\x01\x01B\n" +
	"\n" +
	"\b_tx_dateB\t\n" +
	"\a_vendorB\t\n" +
	"\a_amountB\x10\n" +
	"\x0e_currency_codeB\v\n" +
	"\t_categoryB\v\n" +
	"\t_locationB\n" +
	"\n" +
	"\b_detailsB\x13\n" +
	"\x11_converted_amount\"I\n" +
	"\x15UpdateExpenseResponse\x120\n" +
	"\aexpense\x18\x01 \x01(\v2\x16.expensehub.v1.ExpenseR\aexpense\"5\n" +
	"\x14DeleteExpenseRequest\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\"\x17\n" +
	"\x15DeleteExpenseResponse\"\x15\n" +
	"\x13ListExpensesRequest\"k\n" +
	"\x14ListExpensesResponse\x122\n" +
	"\bexpenses\x18\x01 \x03(\v2\x16.expensehub.v1.ExpenseR\bexpenses\x12\x1f\n" +
	"\vtotal_claim\x18\x02 \x01(\x01R\n" +
	"totalClaim2\xcb\x04\n" +
	"\x0fExpensesService\x12]\n" +
	"\x0eProcessUploads\x12$.expensehub.v1.ProcessUploadsRequest\x1a%.expensehub.v1.ProcessUploadsResponse\x12c\n" +
	"\x10CreateManualBill\x12&.expensehub.v1.CreateManualBillRequest\x1a'.expensehub.v1.CreateManualBillResponse\x12c\n" +
	"\x10UpdateManualBill\x12&.expensehub.v1.UpdateManualBillRequest\x1a'.expensehub.v1.UpdateManualBillResponse\x12Z\n" +
	"\rUpdateExpense\x12#.expensehub.v1.UpdateExpenseRequest\x1a$.expensehub.v1.UpdateExpenseResponse\x12Z\n" +
	"\rDeleteExpense\x12#.expensehub.v1.DeleteExpenseRequest\x1a$.expensehub.v1.DeleteExpenseResponse\x12W\n" +
	"\fListExpenses\x12\".expensehub.v1.ListExpensesRequest\x1a#.expensehub.v1.ListExpensesResponseBLZJgithub.com/expensehub/expense-tracker/gen/proto/expensehub/v1;expensehubv1b\x06proto3"

var (
	file_expensehub_v1_expenses_proto_rawDescOnce sync.Once
	file_expensehub_v1_expenses_proto_rawDescData []byte
)

func file_expensehub_v1_expenses_proto_rawDescGZIP() []byte {
	file_expensehub_v1_expenses_proto_rawDescOnce.Do(func() {
		file_expensehub_v1_expenses_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_expensehub_v1_expenses_proto_rawDesc), len(file_expensehub_v1_expenses_proto_rawDesc)))
	})
	return file_expensehub_v1_expenses_proto_rawDescData
}

var file_expensehub_v1_expenses_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_expensehub_v1_expenses_proto_goTypes = []any{
	(*Expense)(nil),                  // 0: expensehub.v1.Expense
	(*LineItem)(nil),                 // 1: expensehub.v1.LineItem
	(*ManualMetadata)(nil),           // 2: expensehub.v1.ManualMetadata
	(*Upload)(nil),                   // 3: expensehub.v1.Upload
	(*ProcessUploadsRequest)(nil),    // 4: expensehub.v1.ProcessUploadsRequest
	(*ProcessUploadsResponse)(nil),   // 5: expensehub.v1.ProcessUploadsResponse
	(*CreateManualBillRequest)(nil),  // 6: expensehub.v1.CreateManualBillRequest
	(*CreateManualBillResponse)(nil), // 7: expensehub.v1.CreateManualBillResponse
	(*UpdateManualBillRequest)(nil),  // 8: expensehub.v1.UpdateManualBillRequest
	(*UpdateManualBillResponse)(nil), // 9: expensehub.v1.UpdateManualBillResponse
	(*UpdateExpenseRequest)(nil),     // 10: expensehub.v1.UpdateExpenseRequest
	(*UpdateExpenseResponse)(nil),    // 11: expensehub.v1.UpdateExpenseResponse
	(*DeleteExpenseRequest)(nil),     // 12: expensehub.v1.DeleteExpenseRequest
	(*DeleteExpenseResponse)(nil),    // 13: expensehub.v1.DeleteExpenseResponse
	(*ListExpensesRequest)(nil),      // 14: expensehub.v1.ListExpensesRequest
	(*ListExpensesResponse)(nil),     // 15: expensehub.v1.ListExpensesResponse
}
var file_expensehub_v1_expenses_proto_depIdxs = []int32{
	1,  // 0: expensehub.v1.Expense.items:type_name -> expensehub.v1.LineItem
	2,  // 1: expensehub.v1.Expense.manual_metadata:type_name -> expensehub.v1.ManualMetadata
	3,  // 2: expensehub.v1.ProcessUploadsRequest.uploads:type_name -> expensehub.v1.Upload
	0,  // 3: expensehub.v1.ProcessUploadsResponse.expenses:type_name -> expensehub.v1.Expense
	1,  // 4: expensehub.v1.CreateManualBillRequest.items:type_name -> expensehub.v1.LineItem
	2,  // 5: expensehub.v1.CreateManualBillRequest.manual_metadata:type_name -> expensehub.v1.ManualMetadata
	0,  // 6: expensehub.v1.CreateManualBillResponse.expense:type_name -> expensehub.v1.Expense
	1,  // 7: expensehub.v1.UpdateManualBillRequest.items:type_name -> expensehub.v1.LineItem
	2,  // 8: expensehub.v1.UpdateManualBillRequest.manual_metadata:type_name -> expensehub.v1.ManualMetadata
	0,  // 9: expensehub.v1.UpdateManualBillResponse.expense:type_name -> expensehub.v1.Expense
	0,  // 10: expensehub.v1.UpdateExpenseResponse.expense:type_name -> expensehub.v1.Expense
	0,  // 11: expensehub.v1.ListExpensesResponse.expenses:type_name -> expensehub.v1.Expense
	4,  // 12: expensehub.v1.ExpensesService.ProcessUploads:input_type -> expensehub.v1.ProcessUploadsRequest
	6,  // 13: expensehub.v1.ExpensesService.CreateManualBill:input_type -> expensehub.v1.CreateManualBillRequest
	8,  // 14: expensehub.v1.ExpensesService.UpdateManualBill:input_type -> expensehub.v1.UpdateManualBillRequest
	10, // 15: expensehub.v1.ExpensesService.UpdateExpense:input_type -> expensehub.v1.UpdateExpenseRequest
	12, // 16: expensehub.v1.ExpensesService.DeleteExpense:input_type -> expensehub.v1.DeleteExpenseRequest
	14, // 17: expensehub.v1.ExpensesService.ListExpenses:input_type -> expensehub.v1.ListExpensesRequest
	5,  // 18: expensehub.v1.ExpensesService.ProcessUploads:output_type -> expensehub.v1.ProcessUploadsResponse
	7,  // 19: expensehub.v1.ExpensesService.CreateManualBill:output_type -> expensehub.v1.CreateManualBillResponse
	9,  // 20: expensehub.v1.ExpensesService.UpdateManualBill:output_type -> expensehub.v1.UpdateManualBillResponse
	11, // 21: expensehub.v1.ExpensesService.UpdateExpense:output_type -> expensehub.v1.UpdateExpenseResponse
	13, // 22: expensehub.v1.ExpensesService.DeleteExpense:output_type -> expensehub.v1.DeleteExpenseResponse
	15, // 23: expensehub.v1.ExpensesService.ListExpenses:output_type -> expensehub.v1.ListExpensesResponse
	18, // [18:24] is the sub-list for method output_type
	12, // [12:18] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_expensehub_v1_expenses_proto_init() }
func file_expensehub_v1_expenses_proto_init() {
	if File_expensehub_v1_expenses_proto != nil {
		return
	}
	file_expensehub_v1_expenses_proto_msgTypes[0].OneofWrappers = []any{}
	file_expensehub_v1_expenses_proto_msgTypes[6].OneofWrappers = []any{}
	file_expensehub_v1_expenses_proto_msgTypes[8].OneofWrappers = []any{}
	file_expensehub_v1_expenses_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_expensehub_v1_expenses_proto_rawDesc), len(file_expensehub_v1_expenses_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_expensehub_v1_expenses_proto_goTypes,
		DependencyIndexes: file_expensehub_v1_expenses_proto_depIdxs,
		MessageInfos:      file_expensehub_v1_expenses_proto_msgTypes,
	}.Build()
	File_expensehub_v1_expenses_proto = out.File
	file_expensehub_v1_expenses_proto_goTypes = nil
	file_expensehub_v1_expenses_proto_depIdxs = nil
}
