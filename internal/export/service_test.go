package export

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/localstore"
)

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "export.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestExportExpensesXLSX(t *testing.T) {
	store := openTestStore(t)
	repo := store.Expenses()
	svc := NewService(repo, slog.Default())
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "Asha", BaseCurrency: "INR"}
	conv1, conv2 := 3527.5, 920.0
	base := "INR"
	records := []*entity.Expense{
		{
			ID: uuid.New(), UserID: user.ID,
			TxDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Vendor: "Yellow Cab", Amount: 42.50, CurrencyCode: "USD",
			Category: constants.Transport, Location: "Austin", Details: "Airport ride",
			Status: constants.StatusCompleted, ConvertedAmount: &conv1, BaseCurrencyAtTime: &base,
		},
		{
			ID: uuid.New(), UserID: user.ID,
			TxDate: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
			Vendor: "The Royal Comfort - Indiranagar", Amount: 920, CurrencyCode: "INR",
			Category: constants.Meal, Location: "Bengaluru", Details: "2x Thali",
			Status: constants.StatusCompleted, ConvertedAmount: &conv2, BaseCurrencyAtTime: &base,
		},
	}
	for _, rec := range records {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	data, err := svc.ExportExpensesXLSX(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	rows := sheetCells(t, data)

	if len(rows) != 4 { // header + 2 records + total
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][7] != "Reimbursement (INR)" {
		t.Errorf("reimbursement header = %q", rows[0][7])
	}
	// Display order is date descending.
	if rows[1][2] != "Yellow Cab" || rows[2][2] != "The Royal Comfort - Indiranagar" {
		t.Errorf("rows out of order: %q then %q", rows[1][2], rows[2][2])
	}

	total := findRow(rows, "TOTAL CLAIM")
	if total == nil {
		t.Fatal("total claim row missing")
	}
	if got := total[len(total)-1]; got != "4447.5" {
		t.Errorf("total claim = %q, want 4447.5", got)
	}
}

func TestExportBillChecksOwnershipAndKind(t *testing.T) {
	store := openTestStore(t)
	repo := store.Expenses()
	svc := NewService(repo, slog.Default())
	ctx := context.Background()

	bill := manualBill()
	if err := repo.Insert(ctx, bill); err != nil {
		t.Fatal(err)
	}

	data, filename, err := svc.ExportBillXLSX(ctx, bill.UserID, bill.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || filename == "" {
		t.Error("empty export")
	}

	if _, _, err := svc.ExportBillXLSX(ctx, uuid.New(), bill.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("foreign user err = %v, want ErrNotFound", err)
	}

	scanned := manualBill()
	scanned.ID = uuid.New()
	scanned.IsManual = false
	scanned.Items = nil
	if err := repo.Insert(ctx, scanned); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.ExportBillXLSX(ctx, scanned.UserID, scanned.ID); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("non-manual err = %v, want ErrInvalidInput", err)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	in := "Café au lait — ₹240, with croissants and a pot of masala chai"
	out := truncate(in, 20)
	if !utf8.ValidString(out) {
		t.Fatalf("truncate produced invalid UTF-8: %q", out)
	}
	if got := len([]rune(out)); got != 20 {
		t.Fatalf("rune length = %d, want 20", got)
	}
	if !strings.HasSuffix(out, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", out)
	}
	if short := truncate("chai", 140); short != "chai" {
		t.Fatalf("short string altered: %q", short)
	}
}
