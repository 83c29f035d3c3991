// Package ledger owns the authoritative set of expense records for a user
// and the protocol for mutating it consistently with persistence and
// currency conversion.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/billing"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/currency"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/llm"
	"github.com/expensehub/expense-tracker/internal/repository"
)

// Placeholder field values shown while a record awaits extraction, and the
// generic failure text shown when it never arrives. Raw collaborator errors
// stay in logs.
const (
	placeholderVendor  = "Extracting..."
	placeholderDetails = "Processing image..."
	placeholderField   = "---"
	failedVendor       = "Extraction Failed"
	failedDetails      = "Check image quality"
)

// Upload is one receipt image queued for extraction.
type Upload struct {
	Filename string
	Image    []byte
	MIMEType string
}

// ManualDraft is the input of the manual-bill flow. The record's amount is
// always derived from Items by the bill calculator, never taken from the
// caller.
type ManualDraft struct {
	TxDate       time.Time
	Vendor       string
	CurrencyCode string
	Category     constants.Category
	Location     string
	Items        []entity.LineItem
	Metadata     *entity.ManualMetadata
}

// UpdatePatch is a partial field set for a non-manual record. Nil fields are
// left untouched.
type UpdatePatch struct {
	TxDate          *time.Time
	Vendor          *string
	Amount          *float64
	CurrencyCode    *string
	Category        *constants.Category
	Location        *string
	Details         *string
	ConvertedAmount *float64
}

// Service reconciles extraction and conversion results into the store.
type Service struct {
	expenses  repository.ExpenseRepository
	extractor llm.Extractor
	converter currency.Converter
	logger    *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(expenses repository.ExpenseRepository, extractor llm.Extractor, converter currency.Converter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		expenses:  expenses,
		extractor: extractor,
		converter: converter,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// ProcessUploads runs a batch of receipt images through extraction and
// conversion, strictly one at a time so that ledger order matches upload
// order and one failure never interrupts the rest of the batch. Each file
// gets a placeholder row before its extraction starts; the placeholder is
// reconciled in place to COMPLETED or ERROR. Returns the final state of the
// batch's records in upload order (nil entries mark records deleted while
// their extraction was in flight).
func (s *Service) ProcessUploads(ctx context.Context, user *entity.User, uploads []Upload) ([]*entity.Expense, error) {
	results := make([]*entity.Expense, len(uploads))
	for i, upload := range uploads {
		rec, err := s.processOne(ctx, user, upload)
		if err != nil {
			// Only persistence failures abort; extraction and conversion
			// failures were already absorbed into the record state.
			return results, err
		}
		results[i] = rec
	}
	return results, nil
}

func (s *Service) processOne(ctx context.Context, user *entity.User, upload Upload) (*entity.Expense, error) {
	now := s.now()
	placeholder := &entity.Expense{
		ID:           s.newID(),
		UserID:       user.ID,
		TxDate:       dateOnly(now),
		Vendor:       placeholderVendor,
		Amount:       0,
		CurrencyCode: placeholderField,
		Category:     constants.Other,
		Location:     placeholderField,
		Details:      placeholderDetails,
		ImagePath:    upload.Filename,
		Status:       constants.StatusProcessing,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.expenses.Insert(ctx, placeholder); err != nil {
		return nil, fmt.Errorf("insert placeholder: %w", err)
	}

	result, _, err := s.extractor.ExtractExpense(ctx, llm.ExtractRequest{
		Image:           upload.Image,
		MIMEType:        upload.MIMEType,
		DefaultCurrency: user.BaseCurrency,
	})
	if err != nil {
		s.logger.Warn("ledger.extract.failed", "expense_id", placeholder.ID, "file", upload.Filename, "error", err)
		return s.markFailed(ctx, placeholder.ID)
	}

	txDate, err := time.Parse("2006-01-02", result.TxDate)
	if err != nil {
		s.logger.Warn("ledger.extract.bad_date", "expense_id", placeholder.ID, "date", result.TxDate, "error", err)
		return s.markFailed(ctx, placeholder.ID)
	}

	converted, err := s.converter.Convert(ctx, result.Amount, result.CurrencyCode, user.BaseCurrency, txDate)
	if err != nil {
		s.logger.Warn("ledger.convert.failed", "expense_id", placeholder.ID, "error", err)
		return s.markFailed(ctx, placeholder.ID)
	}

	return s.reconcile(ctx, placeholder.ID, func(rec *entity.Expense) {
		rec.TxDate = txDate
		rec.Vendor = result.Vendor
		rec.Amount = result.Amount
		rec.CurrencyCode = result.CurrencyCode
		rec.Category = result.Category
		rec.Location = result.Location
		rec.Details = result.Details
		rec.Status = constants.StatusCompleted
		rec.ConvertedAmount = &converted
		base := user.BaseCurrency
		rec.BaseCurrencyAtTime = &base
	})
}

// markFailed degrades a record to ERROR with the generic failure text. The
// image reference is retained for operator inspection.
func (s *Service) markFailed(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return s.reconcile(ctx, id, func(rec *entity.Expense) {
		rec.Vendor = failedVendor
		rec.Details = failedDetails
		rec.Status = constants.StatusError
	})
}

// reconcile merges an async outcome back into a record by id. A record
// deleted while its work was in flight makes this a no-op, not an error.
func (s *Service) reconcile(ctx context.Context, id uuid.UUID, apply func(*entity.Expense)) (*entity.Expense, error) {
	rec, err := s.expenses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info("ledger.reconcile.record_gone", "expense_id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("load record for reconcile: %w", err)
	}

	apply(rec)
	rec.UpdatedAt = s.now()
	if err := s.expenses.Update(ctx, rec); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info("ledger.reconcile.record_gone", "expense_id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("persist reconciled record: %w", err)
	}
	return rec, nil
}

// CreateManual inserts a manually authored bill. The record lands
// immediately with a provisional 1:1 conversion; when its currency differs
// from the user's base, the corrected figure is committed in a second phase
// without blocking the insert's visibility. A failed conversion leaves the
// record PENDING_CONVERSION with the provisional figure.
func (s *Service) CreateManual(ctx context.Context, user *entity.User, draft ManualDraft) (*entity.Expense, error) {
	totals := billing.ComputeTotals(draft.Items, ratesFrom(draft.Metadata))

	now := s.now()
	category := draft.Category
	if category == "" {
		category = constants.Meal
	}
	provisional := totals.GrandTotal
	base := user.BaseCurrency

	rec := &entity.Expense{
		ID:                 s.newID(),
		UserID:             user.ID,
		TxDate:             draft.TxDate,
		Vendor:             draft.Vendor,
		Amount:             totals.GrandTotal,
		CurrencyCode:       draft.CurrencyCode,
		Category:           category,
		Location:           draft.Location,
		Details:            itemSummary(draft.Items),
		Status:             constants.StatusCompleted,
		ConvertedAmount:    &provisional,
		BaseCurrencyAtTime: &base,
		IsManual:           true,
		Items:              draft.Items,
		Metadata:           draft.Metadata,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	needsConversion := draft.CurrencyCode != user.BaseCurrency
	if needsConversion {
		rec.Status = constants.StatusPendingConversion
	}
	if err := s.expenses.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert manual bill: %w", err)
	}
	if !needsConversion {
		return rec, nil
	}

	converted, err := s.converter.Convert(ctx, rec.Amount, rec.CurrencyCode, user.BaseCurrency, rec.TxDate)
	if err != nil {
		s.logger.Warn("ledger.manual.conversion_failed", "expense_id", rec.ID, "error", err)
		return rec, nil
	}
	committed, err := s.reconcile(ctx, rec.ID, func(r *entity.Expense) {
		r.ConvertedAmount = &converted
		r.Status = constants.StatusCompleted
	})
	if err != nil {
		return nil, err
	}
	if committed == nil {
		// Deleted between the two phases; nothing to report.
		return nil, nil
	}
	return committed, nil
}

// UpdateManual is the manual-bill edit flow: totals are recomputed from the
// edited line items, and the conversion snapshot refreshes only when the
// bill's currency actually changed.
func (s *Service) UpdateManual(ctx context.Context, user *entity.User, id uuid.UUID, draft ManualDraft) (*entity.Expense, error) {
	existing, err := s.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != user.ID {
		return nil, common.ErrNotFound
	}
	if !existing.IsManual {
		return nil, common.NewAppError("LEDGER_ERROR", "record is not a manual bill", common.ErrInvalidInput)
	}

	totals := billing.ComputeTotals(draft.Items, ratesFrom(draft.Metadata))

	var converted *float64
	var baseAtTime *string
	if draft.CurrencyCode != existing.CurrencyCode {
		amount, err := s.converter.Convert(ctx, totals.GrandTotal, draft.CurrencyCode, user.BaseCurrency, draft.TxDate)
		if err != nil {
			s.logger.Warn("ledger.manual.conversion_failed", "expense_id", id, "error", err)
		} else {
			converted = &amount
			base := user.BaseCurrency
			baseAtTime = &base
		}
	}

	return s.reconcile(ctx, id, func(rec *entity.Expense) {
		rec.TxDate = draft.TxDate
		rec.Vendor = draft.Vendor
		rec.Amount = totals.GrandTotal
		rec.CurrencyCode = draft.CurrencyCode
		if draft.Category != "" {
			rec.Category = draft.Category
		}
		rec.Location = draft.Location
		rec.Details = itemSummary(draft.Items)
		rec.Items = draft.Items
		rec.Metadata = draft.Metadata
		if converted != nil {
			rec.ConvertedAmount = converted
			rec.BaseCurrencyAtTime = baseAtTime
		}
	})
}

// Update applies a partial field patch to a non-manual record. Manual bills
// reject money patches here; their amount is derived from line items and
// edited through UpdateManual. A currency change recomputes the conversion
// from the record's original amount and date with the new currency before
// the patch lands; anything else preserves the prior conversion unless the
// patch explicitly supplies one.
func (s *Service) Update(ctx context.Context, user *entity.User, id uuid.UUID, patch UpdatePatch) (*entity.Expense, error) {
	existing, err := s.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != user.ID {
		return nil, common.ErrNotFound
	}

	if existing.IsManual && (patch.Amount != nil || patch.CurrencyCode != nil) {
		return nil, common.ErrManualAmountEdit
	}

	var converted *float64
	var baseAtTime *string
	if patch.CurrencyCode != nil && *patch.CurrencyCode != existing.CurrencyCode {
		amount, err := s.converter.Convert(ctx, existing.Amount, *patch.CurrencyCode, user.BaseCurrency, existing.TxDate)
		if err != nil {
			return nil, err
		}
		converted = &amount
		base := user.BaseCurrency
		baseAtTime = &base
	}

	return s.reconcile(ctx, id, func(rec *entity.Expense) {
		if patch.TxDate != nil {
			rec.TxDate = *patch.TxDate
		}
		if patch.Vendor != nil {
			rec.Vendor = *patch.Vendor
		}
		if patch.Amount != nil {
			rec.Amount = *patch.Amount
		}
		if patch.CurrencyCode != nil {
			rec.CurrencyCode = *patch.CurrencyCode
		}
		if patch.Category != nil {
			rec.Category = *patch.Category
		}
		if patch.Location != nil {
			rec.Location = *patch.Location
		}
		if patch.Details != nil {
			rec.Details = *patch.Details
		}
		switch {
		case converted != nil:
			rec.ConvertedAmount = converted
			rec.BaseCurrencyAtTime = baseAtTime
		case patch.ConvertedAmount != nil:
			rec.ConvertedAmount = patch.ConvertedAmount
		}
	})
}

// Delete removes one of the user's records by id. No soft delete, no
// cascade.
func (s *Service) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	rec, err := s.expenses.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec.UserID != user.ID {
		return common.ErrNotFound
	}
	return s.expenses.Delete(ctx, id)
}

// ListForUser returns the user's records in display order.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return s.expenses.LoadForUser(ctx, userID)
}

// TotalClaim sums the converted amounts across a record set.
func TotalClaim(records []*entity.Expense) float64 {
	var sum float64
	for _, rec := range records {
		if rec.ConvertedAmount != nil {
			sum += *rec.ConvertedAmount
		}
	}
	return sum
}

func ratesFrom(meta *entity.ManualMetadata) billing.TaxRates {
	if meta == nil {
		return billing.TaxRates{}
	}
	return billing.TaxRates{
		ServiceChargePct: meta.ServiceChargePct,
		CGSTPct:          meta.CGSTPct,
		SGSTPct:          meta.SGSTPct,
	}
}

func itemSummary(items []entity.LineItem) string {
	if len(items) == 0 {
		return ""
	}
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
