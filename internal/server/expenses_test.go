package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/ledger"
	"github.com/expensehub/expense-tracker/internal/llm"
	"github.com/expensehub/expense-tracker/internal/localstore"
)

type stubExtractor struct{}

func (stubExtractor) ExtractExpense(context.Context, llm.ExtractRequest) (entity.ExtractionResult, []byte, error) {
	return entity.ExtractionResult{}, nil, errors.New("extractor not wired")
}

type stubConverter struct {
	fn func(amount float64, from, to string, asOf time.Time) (float64, error)
}

func (c *stubConverter) Convert(_ context.Context, amount float64, from, to string, asOf time.Time) (float64, error) {
	return c.fn(amount, from, to, asOf)
}

type testEnv struct {
	server *ExpensesServer
	store  *localstore.Store
	user   *entity.User
	ctx    context.Context
}

func newTestEnv(t *testing.T, conv *stubConverter) *testEnv {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "server.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	authSvc := auth.NewService(store.Users(), issuer, slog.Default())
	user, token, err := authSvc.Signup(context.Background(), "Asha", "asha@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	svc := ledger.NewService(store.Expenses(), stubExtractor{}, conv, slog.Default())
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))
	return &testEnv{
		server: NewExpensesServer(svc, authSvc, slog.Default()),
		store:  store,
		user:   user,
		ctx:    ctx,
	}
}

func manualBillRequest(currency string) *v1.CreateManualBillRequest {
	return &v1.CreateManualBillRequest{
		TxDate:       "2026-02-20",
		Vendor:       "The Royal Comfort - Indiranagar",
		CurrencyCode: currency,
		Items: []*v1.LineItem{
			{Quantity: 4, Name: "Roti", UnitPrice: 70},
		},
	}
}

func TestCreateManualBillDeletedDuringConversion(t *testing.T) {
	conv := &stubConverter{}
	env := newTestEnv(t, conv)
	// The bill vanishes while its conversion is in flight.
	conv.fn = func(amount float64, _, _ string, _ time.Time) (float64, error) {
		records, err := env.store.Expenses().LoadForUser(context.Background(), env.user.ID)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		for _, rec := range records {
			if err := env.store.Expenses().Delete(context.Background(), rec.ID); err != nil {
				t.Fatalf("delete: %v", err)
			}
		}
		return amount * 83, nil
	}

	resp, err := env.server.CreateManualBill(env.ctx, manualBillRequest("USD"))
	if err == nil {
		t.Fatal("expected an error for a bill deleted mid-conversion")
	}
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if resp != nil {
		t.Fatalf("expected nil response, got %+v", resp)
	}
}

func TestCreateManualBillRejectsUnknownCategory(t *testing.T) {
	conv := &stubConverter{fn: func(amount float64, _, _ string, _ time.Time) (float64, error) {
		return amount * 83, nil
	}}
	env := newTestEnv(t, conv)

	req := manualBillRequest("INR")
	req.Category = "petty cash"
	if _, err := env.server.CreateManualBill(env.ctx, req); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	records, err := env.store.Expenses().LoadForUser(context.Background(), env.user.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records stored, got %d", len(records))
	}
}

func TestUpdateExpenseCategoryCanonicalization(t *testing.T) {
	conv := &stubConverter{fn: func(amount float64, _, _ string, _ time.Time) (float64, error) {
		return amount * 83, nil
	}}
	env := newTestEnv(t, conv)

	created, err := env.server.CreateManualBill(env.ctx, manualBillRequest("INR"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.GetExpense().GetId()

	bad := "stationery"
	_, err = env.server.UpdateExpense(env.ctx, &v1.UpdateExpenseRequest{ExpenseId: id, Category: &bad})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for unknown category, got %v", err)
	}

	synonym := "lodging"
	resp, err := env.server.UpdateExpense(env.ctx, &v1.UpdateExpenseRequest{ExpenseId: id, Category: &synonym})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := resp.GetExpense().GetCategory(); got != "Hotel" {
		t.Fatalf("expected synonym to canonicalize to Hotel, got %q", got)
	}
}
