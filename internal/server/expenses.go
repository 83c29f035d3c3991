package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/ledger"
)

type ExpensesServer struct {
	v1.UnimplementedExpensesServiceServer
	svc    *ledger.Service
	auth   *auth.Service
	logger *slog.Logger
}

func NewExpensesServer(svc *ledger.Service, authSvc *auth.Service, logger *slog.Logger) *ExpensesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpensesServer{svc: svc, auth: authSvc, logger: logger}
}

func (s *ExpensesServer) ProcessUploads(ctx context.Context, req *v1.ProcessUploadsRequest) (*v1.ProcessUploadsResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	if len(req.GetUploads()) == 0 {
		return nil, common.InvalidArgumentError("at least one upload is required")
	}

	uploads := make([]ledger.Upload, 0, len(req.GetUploads()))
	for _, u := range req.GetUploads() {
		ext := filepath.Ext(u.GetFilename())
		mime := u.GetMimeType()
		if mime == "" {
			mime = constants.MIMEForExt(ext)
		}
		if mime == "" {
			return nil, common.InvalidArgumentErrorf("unsupported file type: %s", u.GetFilename())
		}
		uploads = append(uploads, ledger.Upload{
			Filename: u.GetFilename(),
			Image:    u.GetImage(),
			MIMEType: mime,
		})
	}

	results, err := s.svc.ProcessUploads(ctx, user, uploads)
	if err != nil {
		s.logger.Error("expenses.process_uploads.failed", "user_id", user.ID, "error", err)
		return nil, common.InternalError("batch processing failed")
	}

	out := make([]*v1.Expense, 0, len(results))
	for _, rec := range results {
		if rec == nil {
			continue
		}
		out = append(out, toPBExpense(rec))
	}
	return &v1.ProcessUploadsResponse{Expenses: out}, nil
}

func (s *ExpensesServer) CreateManualBill(ctx context.Context, req *v1.CreateManualBillRequest) (*v1.CreateManualBillResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	draft, err := draftFromPB(req.GetTxDate(), req.GetVendor(), req.GetCurrencyCode(), req.GetCategory(), req.GetLocation(), req.GetItems(), req.GetManualMetadata())
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.CreateManual(ctx, user, draft)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, common.NotFoundError("expense not found")
	}
	return &v1.CreateManualBillResponse{Expense: toPBExpense(rec)}, nil
}

func (s *ExpensesServer) UpdateManualBill(ctx context.Context, req *v1.UpdateManualBillRequest) (*v1.UpdateManualBillResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	id, err := parseExpenseID(req.GetExpenseId())
	if err != nil {
		return nil, err
	}
	draft, err := draftFromPB(req.GetTxDate(), req.GetVendor(), req.GetCurrencyCode(), req.GetCategory(), req.GetLocation(), req.GetItems(), req.GetManualMetadata())
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.UpdateManual(ctx, user, id, draft)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("expense not found")
		}
		return nil, err
	}
	if rec == nil {
		return nil, common.NotFoundError("expense not found")
	}
	return &v1.UpdateManualBillResponse{Expense: toPBExpense(rec)}, nil
}

func (s *ExpensesServer) UpdateExpense(ctx context.Context, req *v1.UpdateExpenseRequest) (*v1.UpdateExpenseResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	id, err := parseExpenseID(req.GetExpenseId())
	if err != nil {
		return nil, err
	}

	patch := ledger.UpdatePatch{
		Vendor:          req.Vendor,
		Amount:          req.Amount,
		Location:        req.Location,
		Details:         req.Details,
		ConvertedAmount: req.ConvertedAmount,
	}
	if req.TxDate != nil {
		d, err := time.Parse(dateFormat, *req.TxDate)
		if err != nil {
			return nil, common.InvalidArgumentError("tx_date must be YYYY-MM-DD")
		}
		patch.TxDate = &d
	}
	if req.CurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CurrencyCode))
		patch.CurrencyCode = &code
	}
	if req.Category != nil {
		category, ok := constants.Canonicalize(*req.Category)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown category %q", *req.Category)
		}
		patch.Category = &category
	}

	rec, err := s.svc.Update(ctx, user, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, common.NotFoundError("expense not found")
		case errors.Is(err, common.ErrManualAmountEdit):
			return nil, common.FailedPreconditionError("manual bill amount is derived from items; edit the bill instead")
		case errors.Is(err, common.ErrConversion):
			return nil, common.FailedPreconditionError("currency conversion unavailable; update not applied")
		}
		return nil, err
	}
	if rec == nil {
		return nil, common.NotFoundError("expense not found")
	}
	return &v1.UpdateExpenseResponse{Expense: toPBExpense(rec)}, nil
}

func (s *ExpensesServer) DeleteExpense(ctx context.Context, req *v1.DeleteExpenseRequest) (*v1.DeleteExpenseResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	id, err := parseExpenseID(req.GetExpenseId())
	if err != nil {
		return nil, err
	}
	if err := s.svc.Delete(ctx, user, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("expense not found")
		}
		return nil, err
	}
	return &v1.DeleteExpenseResponse{}, nil
}

func (s *ExpensesServer) ListExpenses(ctx context.Context, _ *v1.ListExpensesRequest) (*v1.ListExpensesResponse, error) {
	user, err := userFromContext(ctx, s.auth)
	if err != nil {
		return nil, err
	}
	recs, err := s.svc.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*v1.Expense, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toPBExpense(rec))
	}
	return &v1.ListExpensesResponse{Expenses: out, TotalClaim: ledger.TotalClaim(recs)}, nil
}

func draftFromPB(txDate, vendor, currency, category, location string, items []*v1.LineItem, meta *v1.ManualMetadata) (ledger.ManualDraft, error) {
	date, err := time.Parse(dateFormat, txDate)
	if err != nil {
		return ledger.ManualDraft{}, common.InvalidArgumentError("tx_date must be YYYY-MM-DD")
	}
	v := common.NewValidator()
	v.Field("vendor", vendor, common.Required, common.MaxLength(200))
	v.Field("currency_code", strings.ToUpper(currency), common.Required, common.CurrencyCode)
	if err := common.ValidateAndReturnError(v); err != nil {
		return ledger.ManualDraft{}, err
	}
	if len(items) == 0 {
		return ledger.ManualDraft{}, common.InvalidArgumentError("at least one line item is required")
	}

	var cat constants.Category
	if category != "" {
		canonical, ok := constants.Canonicalize(category)
		if !ok {
			return ledger.ManualDraft{}, common.InvalidArgumentErrorf("unknown category %q", category)
		}
		cat = canonical
	}
	return ledger.ManualDraft{
		TxDate:       date,
		Vendor:       vendor,
		CurrencyCode: strings.ToUpper(currency),
		Category:     cat,
		Location:     location,
		Items:        fromPBItems(items),
		Metadata:     fromPBManualMetadata(meta),
	}, nil
}

func parseExpenseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("expense_id must be a UUID")
	}
	return id, nil
}
