package server

import (
	"context"
	"errors"
	"log/slog"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	auth   *auth.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, authSvc *auth.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, auth: authSvc, logger: logger}
}

func (s *ExportServer) ExportExpenses(ctx context.Context, _ *v1.ExportExpensesRequest) (*v1.ExportExpensesResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	xlsx, err := s.svc.ExportExpensesXLSX(ctx, user)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", user.ID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportExpensesResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportBill(ctx context.Context, req *v1.ExportBillRequest) (*v1.ExportBillResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	id, err := parseExpenseID(req.GetExpenseId())
	if err != nil {
		return nil, err
	}
	xlsx, filename, err := s.svc.ExportBillXLSX(ctx, user.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, common.NotFoundError("expense not found")
		case errors.Is(err, common.ErrInvalidInput):
			return nil, common.FailedPreconditionError("record is not a manual bill")
		}
		s.logger.Error("export.bill.failed", "user_id", user.ID, "expense_id", id, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportBillResponse{Xlsx: xlsx, Filename: filename}, nil
}
