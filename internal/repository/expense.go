package repository

import (
	"context"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/gen/ent"
	"github.com/expensehub/expense-tracker/gen/ent/expense"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

// ExpenseRepository is the persistence contract the reconciler depends on.
// The store is partitioned per user: LoadForUser and ReplaceForUser only ever
// touch the given user's slice of the collection.
type ExpenseRepository interface {
	// LoadForUser returns the user's records, date descending, creation
	// order breaking ties.
	LoadForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
	// ReplaceForUser makes records the user's complete persisted state
	// without reading or writing any other user's rows.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, records []*entity.Expense) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Insert(ctx context.Context, record *entity.Expense) error
	Update(ctx context.Context, record *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExpenseRepository(client *ent.Client, logger *slog.Logger) ExpenseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &expenseRepository{
		client: client,
		logger: logger,
	}
}

func (r *expenseRepository) LoadForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	rows, err := r.client.Expense.Query().
		Where(expense.UserID(userID)).
		Order(
			expense.ByTxDate(entsql.OrderDesc()),
			expense.ByCreatedAt(entsql.OrderDesc()),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load expenses", "user_id", userID, "error", err)
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	result := make([]*entity.Expense, len(rows))
	for i, row := range rows {
		result[i] = toExpense(row)
	}
	return result, nil
}

func (r *expenseRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, records []*entity.Expense) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}

	if _, err := tx.Expense.Delete().Where(expense.UserID(userID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to clear user slice", "user_id", userID, "error", err)
		return fmt.Errorf("clear user expenses: %w", err)
	}
	for _, rec := range records {
		if err := createBuilder(tx.Expense, rec).Exec(ctx); err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to write user slice", "user_id", userID, "expense_id", rec.ID, "error", err)
			return fmt.Errorf("insert expense %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

func (r *expenseRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	row, err := r.client.Expense.Query().Where(expense.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return toExpense(row), nil
}

func (r *expenseRepository) Insert(ctx context.Context, record *entity.Expense) error {
	if err := createBuilder(r.client.Expense, record).Exec(ctx); err != nil {
		r.logger.Error("failed to insert expense", "expense_id", record.ID, "error", err)
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) Update(ctx context.Context, record *entity.Expense) error {
	upd := r.client.Expense.UpdateOneID(record.ID).
		SetTxDate(record.TxDate).
		SetVendor(record.Vendor).
		SetAmount(record.Amount).
		SetCurrencyCode(record.CurrencyCode).
		SetCategory(string(record.Category)).
		SetLocation(record.Location).
		SetDetails(record.Details).
		SetImagePath(record.ImagePath).
		SetStatus(string(record.Status)).
		SetIsManual(record.IsManual)

	if record.ConvertedAmount != nil {
		upd = upd.SetConvertedAmount(*record.ConvertedAmount)
	} else {
		upd = upd.ClearConvertedAmount()
	}
	if record.BaseCurrencyAtTime != nil {
		upd = upd.SetBaseCurrencyAtTime(*record.BaseCurrencyAtTime)
	} else {
		upd = upd.ClearBaseCurrencyAtTime()
	}
	if record.Items != nil {
		upd = upd.SetItems(record.Items)
	} else {
		upd = upd.ClearItems()
	}
	if record.Metadata != nil {
		upd = upd.SetManualMetadata(record.Metadata)
	} else {
		upd = upd.ClearManualMetadata()
	}

	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to update expense", "expense_id", record.ID, "error", err)
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Expense.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete expense", "expense_id", id, "error", err)
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// createBuilder maps an entity onto an insert; shared between the client and
// tx paths.
func createBuilder(c *ent.ExpenseClient, rec *entity.Expense) *ent.ExpenseCreate {
	b := c.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetTxDate(rec.TxDate).
		SetVendor(rec.Vendor).
		SetAmount(rec.Amount).
		SetCurrencyCode(rec.CurrencyCode).
		SetCategory(string(rec.Category)).
		SetLocation(rec.Location).
		SetDetails(rec.Details).
		SetImagePath(rec.ImagePath).
		SetStatus(string(rec.Status)).
		SetIsManual(rec.IsManual).
		SetNillableConvertedAmount(rec.ConvertedAmount).
		SetNillableBaseCurrencyAtTime(rec.BaseCurrencyAtTime)

	if rec.Items != nil {
		b = b.SetItems(rec.Items)
	}
	if rec.Metadata != nil {
		b = b.SetManualMetadata(rec.Metadata)
	}
	if !rec.CreatedAt.IsZero() {
		b = b.SetCreatedAt(rec.CreatedAt)
	}
	if !rec.UpdatedAt.IsZero() {
		b = b.SetUpdatedAt(rec.UpdatedAt)
	}
	return b
}
