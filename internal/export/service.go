package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/ledger"
	"github.com/expensehub/expense-tracker/internal/repository"
)

// Service produces XLSX bytes for expense exports.
type Service struct {
	expenses repository.ExpenseRepository
	logger   *slog.Logger
}

func NewService(expenses repository.ExpenseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{expenses: expenses, logger: logger}
}

// ExportExpensesXLSX returns a claim-summary workbook for the user's full
// record set: one row per expense in display order, closed by a total
// reimbursement row in the user's base currency.
func (s *Service) ExportExpensesXLSX(ctx context.Context, user *entity.User) ([]byte, error) {
	start := time.Now()

	recs, err := s.expenses.LoadForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Category",
		"Vendor",
		"Location",
		"Details",
		"Original Amount",
		"Currency",
		fmt.Sprintf("Reimbursement (%s)", user.BaseCurrency),
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.TxDate.Format("2006-01-02"))
		write(2, string(r.Category))
		write(3, r.Vendor)
		write(4, r.Location)
		write(5, truncate(r.Details, 140))
		write(6, r.Amount)
		write(7, r.CurrencyCode)
		if r.ConvertedAmount != nil {
			write(8, *r.ConvertedAmount)
		} else {
			write(8, "")
		}

		row++
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, totalCell, "TOTAL CLAIM")
	sumCell, _ := excelize.CoordinatesToCellName(8, row)
	_ = f.SetCellValue(sheet, sumCell, ledger.TotalClaim(recs))

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 12) // category
	_ = f.SetColWidth(sheet, "C", "C", 28) // vendor
	_ = f.SetColWidth(sheet, "D", "D", 18) // location
	_ = f.SetColWidth(sheet, "E", "E", 48) // details
	_ = f.SetColWidth(sheet, "F", "H", 16) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", user.ID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportBillXLSX renders one manual bill by id, checking ownership.
func (s *Service) ExportBillXLSX(ctx context.Context, userID, expenseID uuid.UUID) ([]byte, string, error) {
	rec, err := s.expenses.Get(ctx, expenseID)
	if err != nil {
		return nil, "", err
	}
	if rec.UserID != userID {
		return nil, "", common.ErrNotFound
	}
	if !rec.IsManual {
		return nil, "", common.NewAppError("EXPORT_ERROR", "record is not a manual bill", common.ErrInvalidInput)
	}
	out, err := RenderBillXLSX(rec)
	if err != nil {
		return nil, "", err
	}
	return out, BillFilename(rec), nil
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
