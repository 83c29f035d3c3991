// Package proto holds the service definitions. Run `go generate ./proto`
// to regenerate the stubs under gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative expensehub/v1/auth.proto expensehub/v1/expenses.proto expensehub/v1/export.proto
