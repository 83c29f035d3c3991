// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: expensehub/v1/expenses.proto

package expensehubv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExpensesService_ProcessUploads_FullMethodName   = "/expensehub.v1.ExpensesService/ProcessUploads"
	ExpensesService_CreateManualBill_FullMethodName = "/expensehub.v1.ExpensesService/CreateManualBill"
	ExpensesService_UpdateManualBill_FullMethodName = "/expensehub.v1.ExpensesService/UpdateManualBill"
	ExpensesService_UpdateExpense_FullMethodName    = "/expensehub.v1.ExpensesService/UpdateExpense"
	ExpensesService_DeleteExpense_FullMethodName    = "/expensehub.v1.ExpensesService/DeleteExpense"
	ExpensesService_ListExpenses_FullMethodName     = "/expensehub.v1.ExpensesService/ListExpenses"
)

// ExpensesServiceClient is the client API for ExpensesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExpensesServiceClient interface {
	ProcessUploads(ctx context.Context, in *ProcessUploadsRequest, opts ...grpc.CallOption) (*ProcessUploadsResponse, error)
	CreateManualBill(ctx context.Context, in *CreateManualBillRequest, opts ...grpc.CallOption) (*CreateManualBillResponse, error)
	UpdateManualBill(ctx context.Context, in *UpdateManualBillRequest, opts ...grpc.CallOption) (*UpdateManualBillResponse, error)
	UpdateExpense(ctx context.Context, in *UpdateExpenseRequest, opts ...grpc.CallOption) (*UpdateExpenseResponse, error)
	DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error)
	ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
}

type expensesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExpensesServiceClient(cc grpc.ClientConnInterface) ExpensesServiceClient {
	return &expensesServiceClient{cc}
}

func (c *expensesServiceClient) ProcessUploads(ctx context.Context, in *ProcessUploadsRequest, opts ...grpc.CallOption) (*ProcessUploadsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessUploadsResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ProcessUploads_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) CreateManualBill(ctx context.Context, in *CreateManualBillRequest, opts ...grpc.CallOption) (*CreateManualBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateManualBillResponse)
	err := c.cc.Invoke(ctx, ExpensesService_CreateManualBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) UpdateManualBill(ctx context.Context, in *UpdateManualBillRequest, opts ...grpc.CallOption) (*UpdateManualBillResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateManualBillResponse)
	err := c.cc.Invoke(ctx, ExpensesService_UpdateManualBill_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) UpdateExpense(ctx context.Context, in *UpdateExpenseRequest, opts ...grpc.CallOption) (*UpdateExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_UpdateExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_DeleteExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExpensesResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ListExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesServiceServer is the server API for ExpensesService service.
// All implementations must embed UnimplementedExpensesServiceServer
// for forward compatibility.
type ExpensesServiceServer interface {
	ProcessUploads(context.Context, *ProcessUploadsRequest) (*ProcessUploadsResponse, error)
	CreateManualBill(context.Context, *CreateManualBillRequest) (*CreateManualBillResponse, error)
	UpdateManualBill(context.Context, *UpdateManualBillRequest) (*UpdateManualBillResponse, error)
	UpdateExpense(context.Context, *UpdateExpenseRequest) (*UpdateExpenseResponse, error)
	DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	mustEmbedUnimplementedExpensesServiceServer()
}

// UnimplementedExpensesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExpensesServiceServer struct{}

func (UnimplementedExpensesServiceServer) ProcessUploads(context.Context, *ProcessUploadsRequest) (*ProcessUploadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessUploads not implemented")
}
func (UnimplementedExpensesServiceServer) CreateManualBill(context.Context, *CreateManualBillRequest) (*CreateManualBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateManualBill not implemented")
}
func (UnimplementedExpensesServiceServer) UpdateManualBill(context.Context, *UpdateManualBillRequest) (*UpdateManualBillResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateManualBill not implemented")
}
func (UnimplementedExpensesServiceServer) UpdateExpense(context.Context, *UpdateExpenseRequest) (*UpdateExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateExpense not implemented")
}
func (UnimplementedExpensesServiceServer) DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteExpense not implemented")
}
func (UnimplementedExpensesServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExpenses not implemented")
}
func (UnimplementedExpensesServiceServer) mustEmbedUnimplementedExpensesServiceServer() {}
func (UnimplementedExpensesServiceServer) testEmbeddedByValue()                         {}

// UnsafeExpensesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExpensesServiceServer will
// result in compilation errors.
type UnsafeExpensesServiceServer interface {
	mustEmbedUnimplementedExpensesServiceServer()
}

func RegisterExpensesServiceServer(s grpc.ServiceRegistrar, srv ExpensesServiceServer) {
	// If the following call pancis, it indicates UnimplementedExpensesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExpensesService_ServiceDesc, srv)
}

func _ExpensesService_ProcessUploads_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessUploadsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ProcessUploads(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ProcessUploads_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ProcessUploads(ctx, req.(*ProcessUploadsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_CreateManualBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateManualBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).CreateManualBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_CreateManualBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).CreateManualBill(ctx, req.(*CreateManualBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_UpdateManualBill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateManualBillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).UpdateManualBill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_UpdateManualBill_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).UpdateManualBill(ctx, req.(*UpdateManualBillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_UpdateExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).UpdateExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_UpdateExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).UpdateExpense(ctx, req.(*UpdateExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_DeleteExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_DeleteExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, req.(*DeleteExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_ListExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ListExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, req.(*ListExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExpensesService_ServiceDesc is the grpc.ServiceDesc for ExpensesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExpensesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "expensehub.v1.ExpensesService",
	HandlerType: (*ExpensesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessUploads",
			Handler:    _ExpensesService_ProcessUploads_Handler,
		},
		{
			MethodName: "CreateManualBill",
			Handler:    _ExpensesService_CreateManualBill_Handler,
		},
		{
			MethodName: "UpdateManualBill",
			Handler:    _ExpensesService_UpdateManualBill_Handler,
		},
		{
			MethodName: "UpdateExpense",
			Handler:    _ExpensesService_UpdateExpense_Handler,
		},
		{
			MethodName: "DeleteExpense",
			Handler:    _ExpensesService_DeleteExpense_Handler,
		},
		{
			MethodName: "ListExpenses",
			Handler:    _ExpensesService_ListExpenses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expensehub/v1/expenses.proto",
}
