package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/llm"
)

// memRepo is an in-memory ExpenseRepository used to observe intermediate
// record states during a batch.
type memRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.Expense
	order   []uuid.UUID
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]*entity.Expense)}
}

func (r *memRepo) LoadForUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Expense
	for _, id := range r.order {
		rec := r.records[id]
		if rec != nil && rec.UserID == userID {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (r *memRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, records []*entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rec := range r.records {
		if rec.UserID == userID {
			delete(r.records, id)
		}
	}
	for _, rec := range records {
		r.records[rec.ID] = rec.Clone()
		r.order = append(r.order, rec.ID)
	}
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *memRepo) Insert(_ context.Context, rec *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = rec.Clone()
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *memRepo) Update(_ context.Context, rec *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; !ok {
		return common.ErrNotFound
	}
	r.records[rec.ID] = rec.Clone()
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeExtractor struct {
	calls int
	fn    func(call int, req llm.ExtractRequest) (entity.ExtractionResult, error)
}

func (f *fakeExtractor) ExtractExpense(_ context.Context, req llm.ExtractRequest) (entity.ExtractionResult, []byte, error) {
	f.calls++
	res, err := f.fn(f.calls, req)
	return res, nil, err
}

type convertCall struct {
	Amount float64
	From   string
	To     string
	AsOf   time.Time
}

type fakeConverter struct {
	calls []convertCall
	rate  float64
	err   error
}

func (f *fakeConverter) Convert(_ context.Context, amount float64, from, to string, asOf time.Time) (float64, error) {
	f.calls = append(f.calls, convertCall{Amount: amount, From: from, To: to, AsOf: asOf})
	if f.err != nil {
		return 0, f.err
	}
	return amount * f.rate, nil
}

func testUser() *entity.User {
	return &entity.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", BaseCurrency: "INR"}
}

func newTestService(repo *memRepo, ex *fakeExtractor, conv *fakeConverter) *Service {
	svc := NewService(repo, ex, conv, slog.Default())
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func extracted(vendor string, amount float64) entity.ExtractionResult {
	return entity.ExtractionResult{
		TxDate:       "2026-03-01",
		Vendor:       vendor,
		Amount:       amount,
		CurrencyCode: "USD",
		Category:     constants.Transport,
		Location:     "Austin",
		Details:      "Airport ride",
	}
}

func TestProcessUploadsBatchIsolation(t *testing.T) {
	repo := newMemRepo()
	ex := &fakeExtractor{fn: func(call int, _ llm.ExtractRequest) (entity.ExtractionResult, error) {
		if call == 2 {
			return entity.ExtractionResult{}, common.ErrExtraction
		}
		return extracted(fmt.Sprintf("Vendor %d", call), float64(call) * 10), nil
	}}
	conv := &fakeConverter{rate: 83}
	svc := newTestService(repo, ex, conv)
	user := testUser()

	uploads := []Upload{
		{Filename: "a.jpg", Image: []byte("a"), MIMEType: "image/jpeg"},
		{Filename: "b.jpg", Image: []byte("b"), MIMEType: "image/jpeg"},
		{Filename: "c.jpg", Image: []byte("c"), MIMEType: "image/jpeg"},
	}
	results, err := svc.ProcessUploads(context.Background(), user, uploads)
	if err != nil {
		t.Fatalf("ProcessUploads returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Status != constants.StatusCompleted || results[2].Status != constants.StatusCompleted {
		t.Errorf("flanking records not completed: %s / %s", results[0].Status, results[2].Status)
	}
	if results[0].Vendor != "Vendor 1" {
		t.Errorf("first record vendor = %q", results[0].Vendor)
	}

	failed := results[1]
	if failed.Status != constants.StatusError {
		t.Fatalf("middle record status = %s, want ERROR", failed.Status)
	}
	if failed.Vendor != failedVendor || failed.Details != failedDetails {
		t.Errorf("failed record text = %q / %q", failed.Vendor, failed.Details)
	}
	if failed.ImagePath != "b.jpg" {
		t.Errorf("failed record lost its image reference: %q", failed.ImagePath)
	}

	// All three rows persisted.
	stored, err := repo.LoadForUser(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 3 {
		t.Errorf("stored %d records, want 3", len(stored))
	}
}

func TestProcessUploadsConversionSnapshot(t *testing.T) {
	repo := newMemRepo()
	ex := &fakeExtractor{fn: func(int, llm.ExtractRequest) (entity.ExtractionResult, error) {
		return extracted("Yellow Cab", 42.50), nil
	}}
	conv := &fakeConverter{rate: 83}
	svc := newTestService(repo, ex, conv)
	user := testUser()

	results, err := svc.ProcessUploads(context.Background(), user, []Upload{{Filename: "r.png", MIMEType: "image/png"}})
	if err != nil {
		t.Fatal(err)
	}
	rec := results[0]

	if len(conv.calls) != 1 {
		t.Fatalf("converter called %d times, want 1", len(conv.calls))
	}
	call := conv.calls[0]
	if call.Amount != 42.50 || call.From != "USD" || call.To != "INR" {
		t.Errorf("conversion call = %+v", call)
	}
	if got := call.AsOf.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("conversion dated %s, want the receipt's transaction date", got)
	}
	if rec.ConvertedAmount == nil || *rec.ConvertedAmount != 42.50*83 {
		t.Errorf("converted amount = %v", rec.ConvertedAmount)
	}
	if rec.BaseCurrencyAtTime == nil || *rec.BaseCurrencyAtTime != "INR" {
		t.Errorf("base currency snapshot = %v", rec.BaseCurrencyAtTime)
	}
}

func TestProcessUploadsConversionFailureDegradesRecord(t *testing.T) {
	repo := newMemRepo()
	ex := &fakeExtractor{fn: func(int, llm.ExtractRequest) (entity.ExtractionResult, error) {
		return extracted("Yellow Cab", 42.50), nil
	}}
	conv := &fakeConverter{err: common.ErrConversion}
	svc := newTestService(repo, ex, conv)

	results, err := svc.ProcessUploads(context.Background(), testUser(), []Upload{{Filename: "r.png", MIMEType: "image/png"}})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Status != constants.StatusError {
		t.Errorf("status = %s, want ERROR", results[0].Status)
	}
}

func TestProcessUploadsDeletedMidExtraction(t *testing.T) {
	repo := newMemRepo()
	user := testUser()
	svc := (*Service)(nil)
	ex := &fakeExtractor{fn: func(_ int, _ llm.ExtractRequest) (entity.ExtractionResult, error) {
		// Simulate the user deleting the placeholder while extraction runs.
		ids := make([]uuid.UUID, 0, 1)
		repo.mu.Lock()
		for id := range repo.records {
			ids = append(ids, id)
		}
		repo.mu.Unlock()
		for _, id := range ids {
			if err := svc.Delete(context.Background(), user, id); err != nil {
				return entity.ExtractionResult{}, err
			}
		}
		return extracted("Yellow Cab", 42.50), nil
	}}
	conv := &fakeConverter{rate: 83}
	svc = newTestService(repo, ex, conv)

	results, err := svc.ProcessUploads(context.Background(), user, []Upload{{Filename: "r.png", MIMEType: "image/png"}})
	if err != nil {
		t.Fatalf("deletion mid-flight should not fail the batch: %v", err)
	}
	if results[0] != nil {
		t.Errorf("deleted record resurfaced: %+v", results[0])
	}
	stored, _ := repo.LoadForUser(context.Background(), user.ID)
	if len(stored) != 0 {
		t.Errorf("deleted record reappeared in store: %d records", len(stored))
	}
}

func manualDraft(currency string) ManualDraft {
	return ManualDraft{
		TxDate:       time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Vendor:       "The Royal Comfort - Indiranagar",
		CurrencyCode: currency,
		Location:     "Bengaluru",
		Items: []entity.LineItem{
			{Quantity: 4, Name: "Roti", UnitPrice: 70},
		},
		Metadata: &entity.ManualMetadata{
			ServiceChargePct: 5,
			CGSTPct:          2.5,
			SGSTPct:          2.5,
		},
	}
}

func TestCreateManualDerivesAmountAndDefaults(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{rate: 1}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	user := testUser()

	rec, err := svc.CreateManual(context.Background(), user, manualDraft("INR"))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Amount != 308 {
		t.Errorf("amount = %v, want 308 derived from items", rec.Amount)
	}
	if rec.Category != constants.Meal {
		t.Errorf("category = %s, want default Meal", rec.Category)
	}
	if rec.Details != "4x Roti" {
		t.Errorf("details = %q", rec.Details)
	}
	if !rec.IsManual {
		t.Error("record not flagged manual")
	}
	if rec.Status != constants.StatusCompleted {
		t.Errorf("same-currency bill status = %s, want COMPLETED", rec.Status)
	}
	if rec.ConvertedAmount == nil || *rec.ConvertedAmount != 308 {
		t.Errorf("same-currency converted amount = %v, want 308", rec.ConvertedAmount)
	}
	if len(conv.calls) != 0 {
		t.Errorf("converter called %d times for a same-currency bill", len(conv.calls))
	}
}

func TestCreateManualForeignCurrencyTwoPhase(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{rate: 83}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	user := testUser()

	rec, err := svc.CreateManual(context.Background(), user, manualDraft("USD"))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != constants.StatusCompleted {
		t.Errorf("status = %s, want COMPLETED after conversion", rec.Status)
	}
	if rec.ConvertedAmount == nil || *rec.ConvertedAmount != 308*83 {
		t.Errorf("converted amount = %v, want %v", rec.ConvertedAmount, 308*83.0)
	}
	if len(conv.calls) != 1 {
		t.Fatalf("converter called %d times, want 1", len(conv.calls))
	}
	if got := conv.calls[0].AsOf.Format("2006-01-02"); got != "2026-02-20" {
		t.Errorf("conversion dated %s, want the bill date", got)
	}
}

func TestCreateManualConversionFailureStaysPending(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{err: common.ErrConversion}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	user := testUser()

	rec, err := svc.CreateManual(context.Background(), user, manualDraft("USD"))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != constants.StatusPendingConversion {
		t.Errorf("status = %s, want PENDING_CONVERSION", rec.Status)
	}
	if rec.ConvertedAmount == nil || *rec.ConvertedAmount != 308 {
		t.Errorf("provisional converted amount = %v, want 308", rec.ConvertedAmount)
	}
}

func TestUpdateRejectsManualMoneyPatch(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{rate: 1}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	user := testUser()

	rec, err := svc.CreateManual(context.Background(), user, manualDraft("INR"))
	if err != nil {
		t.Fatal(err)
	}

	amt := 999.0
	if _, err := svc.Update(context.Background(), user, rec.ID, UpdatePatch{Amount: &amt}); !errors.Is(err, common.ErrManualAmountEdit) {
		t.Errorf("amount patch err = %v, want ErrManualAmountEdit", err)
	}
	cur := "USD"
	if _, err := svc.Update(context.Background(), user, rec.ID, UpdatePatch{CurrencyCode: &cur}); !errors.Is(err, common.ErrManualAmountEdit) {
		t.Errorf("currency patch err = %v, want ErrManualAmountEdit", err)
	}

	// Record untouched.
	stored, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Amount != 308 || stored.CurrencyCode != "INR" {
		t.Errorf("rejected patch leaked into store: %v %s", stored.Amount, stored.CurrencyCode)
	}

	// Non-money patches still apply to manual bills.
	loc := "Mumbai"
	updated, err := svc.Update(context.Background(), user, rec.ID, UpdatePatch{Location: &loc})
	if err != nil {
		t.Fatalf("non-money patch rejected: %v", err)
	}
	if updated.Location != "Mumbai" {
		t.Errorf("location = %q", updated.Location)
	}
}

func TestUpdateCurrencyChangeSingleConversion(t *testing.T) {
	repo := newMemRepo()
	ex := &fakeExtractor{fn: func(int, llm.ExtractRequest) (entity.ExtractionResult, error) {
		return extracted("Yellow Cab", 42.50), nil
	}}
	conv := &fakeConverter{rate: 83}
	svc := newTestService(repo, ex, conv)
	user := testUser()

	results, err := svc.ProcessUploads(context.Background(), user, []Upload{{Filename: "r.png", MIMEType: "image/png"}})
	if err != nil {
		t.Fatal(err)
	}
	rec := results[0]
	conv.calls = nil
	conv.rate = 90

	cur := "EUR"
	newAmount := 50.0
	updated, err := svc.Update(context.Background(), user, rec.ID, UpdatePatch{CurrencyCode: &cur, Amount: &newAmount})
	if err != nil {
		t.Fatal(err)
	}

	if len(conv.calls) != 1 {
		t.Fatalf("converter called %d times, want exactly 1", len(conv.calls))
	}
	call := conv.calls[0]
	// Conversion uses the record's pre-patch amount and transaction date.
	if call.Amount != 42.50 {
		t.Errorf("conversion used amount %v, want the original 42.50", call.Amount)
	}
	if call.From != "EUR" || call.To != "INR" {
		t.Errorf("conversion pair %s->%s", call.From, call.To)
	}
	if got := call.AsOf.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("conversion dated %s, want the record's transaction date", got)
	}
	if updated.ConvertedAmount == nil || *updated.ConvertedAmount != 42.50*90 {
		t.Errorf("converted amount = %v", updated.ConvertedAmount)
	}
	if updated.Amount != 50 || updated.CurrencyCode != "EUR" {
		t.Errorf("patch fields not applied: %v %s", updated.Amount, updated.CurrencyCode)
	}
}

func TestUpdateConversionFailureLeavesRecordIntact(t *testing.T) {
	repo := newMemRepo()
	ex := &fakeExtractor{fn: func(int, llm.ExtractRequest) (entity.ExtractionResult, error) {
		return extracted("Yellow Cab", 42.50), nil
	}}
	conv := &fakeConverter{rate: 83}
	svc := newTestService(repo, ex, conv)
	user := testUser()

	results, err := svc.ProcessUploads(context.Background(), user, []Upload{{Filename: "r.png", MIMEType: "image/png"}})
	if err != nil {
		t.Fatal(err)
	}
	rec := results[0]
	conv.err = common.ErrConversion

	cur := "EUR"
	if _, err := svc.Update(context.Background(), user, rec.ID, UpdatePatch{CurrencyCode: &cur}); err == nil {
		t.Fatal("expected conversion failure to surface")
	}

	stored, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.CurrencyCode != "USD" {
		t.Errorf("failed update mutated record: currency %s", stored.CurrencyCode)
	}
	if stored.ConvertedAmount == nil || *stored.ConvertedAmount != 42.50*83 {
		t.Errorf("prior conversion lost: %v", stored.ConvertedAmount)
	}
}

func TestUpdateManualRecomputesTotals(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{rate: 1}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	user := testUser()

	rec, err := svc.CreateManual(context.Background(), user, manualDraft("INR"))
	if err != nil {
		t.Fatal(err)
	}

	draft := manualDraft("INR")
	draft.Items = append(draft.Items, entity.LineItem{Quantity: 2, Name: "Dal Makhani", UnitPrice: 240})
	updated, err := svc.UpdateManual(context.Background(), user, rec.ID, draft)
	if err != nil {
		t.Fatal(err)
	}

	// 280 + 480 = 760; 5% + 2.5% + 2.5% component-rounded on-top = 836.
	if updated.Amount != 836 {
		t.Errorf("recomputed amount = %v, want 836", updated.Amount)
	}
	if updated.Details != "4x Roti, 2x Dal Makhani" {
		t.Errorf("details = %q", updated.Details)
	}
	if len(conv.calls) != 0 {
		t.Errorf("currency unchanged but converter called %d times", len(conv.calls))
	}
}

func TestMutationsRejectForeignRecords(t *testing.T) {
	repo := newMemRepo()
	conv := &fakeConverter{rate: 1}
	svc := newTestService(repo, &fakeExtractor{}, conv)
	owner := testUser()
	intruder := testUser()

	rec, err := svc.CreateManual(context.Background(), owner, manualDraft("INR"))
	if err != nil {
		t.Fatal(err)
	}

	loc := "Delhi"
	if _, err := svc.Update(context.Background(), intruder, rec.ID, UpdatePatch{Location: &loc}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("foreign update err = %v, want ErrNotFound", err)
	}
	if _, err := svc.UpdateManual(context.Background(), intruder, rec.ID, manualDraft("INR")); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("foreign manual update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), intruder, rec.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("foreign delete err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(context.Background(), rec.ID); err != nil {
		t.Errorf("record affected by foreign mutation: %v", err)
	}
}

func TestTotalClaimSkipsUnconverted(t *testing.T) {
	a, b := 100.0, 50.5
	records := []*entity.Expense{
		{ConvertedAmount: &a},
		{ConvertedAmount: nil},
		{ConvertedAmount: &b},
	}
	if got := TotalClaim(records); got != 150.5 {
		t.Errorf("TotalClaim = %v, want 150.5", got)
	}
}
