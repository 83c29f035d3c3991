package localstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testExpense(userID uuid.UUID, vendor string, day int, createdAt time.Time) *entity.Expense {
	amt := 42.50
	base := "INR"
	return &entity.Expense{
		ID:                 uuid.New(),
		UserID:             userID,
		TxDate:             time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		Vendor:             vendor,
		Amount:             amt,
		CurrencyCode:       "USD",
		Category:           constants.Meal,
		Location:           "Lisbon",
		Details:            "Dinner",
		Status:             constants.StatusCompleted,
		ConvertedAmount:    &amt,
		BaseCurrencyAtTime: &base,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
}

func TestReplaceForUserRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Expenses()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	now := time.Now().UTC()

	bobRecord := testExpense(bob, "Hilton - Rooftop Bar", 3, now)
	if err := repo.Insert(ctx, bobRecord); err != nil {
		t.Fatalf("insert: %v", err)
	}

	mine := []*entity.Expense{
		testExpense(alice, "Air India - Economy", 10, now),
		testExpense(alice, "Taj Palace - Restaurant", 5, now),
	}
	if err := repo.ReplaceForUser(ctx, alice, mine); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.LoadForUser(ctx, alice)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(mine) {
		t.Fatalf("got %d records, want %d", len(got), len(mine))
	}
	byID := map[uuid.UUID]*entity.Expense{}
	for _, rec := range got {
		byID[rec.ID] = rec
	}
	for _, want := range mine {
		rec, ok := byID[want.ID]
		if !ok {
			t.Fatalf("record %s missing after round trip", want.ID)
		}
		if rec.Vendor != want.Vendor || rec.Amount != want.Amount || *rec.ConvertedAmount != *want.ConvertedAmount {
			t.Fatalf("round trip mutated record: got %+v, want %+v", rec, want)
		}
	}

	// The other user's slice is untouched.
	theirs, err := repo.LoadForUser(ctx, bob)
	if err != nil {
		t.Fatalf("load other user: %v", err)
	}
	if len(theirs) != 1 || theirs[0].ID != bobRecord.ID {
		t.Fatalf("other user's records affected: %+v", theirs)
	}

	// Replace is a full replace, not a merge.
	if err := repo.ReplaceForUser(ctx, alice, mine[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = repo.LoadForUser(ctx, alice)
	if err != nil {
		t.Fatalf("load after shrink: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine[0].ID {
		t.Fatalf("shrinking replace left %+v", got)
	}
}

func TestLoadForUserOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Expenses()
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	older := testExpense(userID, "Older", 5, base)
	newest := testExpense(userID, "Newest", 20, base)
	// Same date as older, inserted later: must sort ahead of it.
	tied := testExpense(userID, "Tied", 5, base.Add(time.Hour))

	for _, rec := range []*entity.Expense{older, newest, tied} {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := repo.LoadForUser(ctx, userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"Newest", "Tied", "Older"}
	for i, vendor := range want {
		if got[i].Vendor != vendor {
			t.Fatalf("position %d = %s, want %s (order %v)", i, got[i].Vendor, vendor, vendors(got))
		}
	}
}

func TestGetUpdateDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Expenses()
	ctx := context.Background()

	rec := testExpense(uuid.New(), "Uber - Airport", 1, time.Now())
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rec.Details = "Airport transfer"
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Details != "Airport transfer" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if err := repo.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, rec.ID); err != common.ErrNotFound {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, rec.ID); err != common.ErrNotFound {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, rec); err != common.ErrNotFound {
		t.Fatalf("update after delete = %v, want ErrNotFound", err)
	}
}

func vendors(records []*entity.Expense) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Vendor
	}
	return out
}
