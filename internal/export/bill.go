// Package export produces XLSX artifacts from reconciled expense records.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/expensehub/expense-tracker/internal/billing"
	"github.com/expensehub/expense-tracker/internal/entity"
)

const billSheet = "Bill"

// fallbackOutlet labels the outlet line when the vendor string carries no
// outlet segment.
const fallbackOutlet = "TAX INVOICE"

// SplitVendor treats a vendor string as "<business> - <outlet>" and splits
// on the first separator. A vendor with no separator yields an empty outlet.
func SplitVendor(vendor string) (business, outlet string) {
	parts := strings.SplitN(vendor, "-", 2)
	business = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		outlet = strings.TrimSpace(parts[1])
	}
	return business, outlet
}

// BillFilename derives a deterministic workbook filename from vendor and
// date, falling back to bill number plus a short record id when the vendor
// is empty.
func BillFilename(rec *entity.Expense) string {
	business, _ := SplitVendor(rec.Vendor)
	date := rec.TxDate.Format("2006-01-02")
	if business == "" {
		billNo := ""
		if rec.Metadata != nil {
			billNo = rec.Metadata.BillNo
		}
		if billNo == "" {
			billNo = "bill"
		}
		return fmt.Sprintf("ExpenseHub_%s_%s.xlsx", billNo, rec.ID.String()[:8])
	}
	return fmt.Sprintf("ExpenseHub_%s_%s.xlsx", strings.ReplaceAll(business, " ", ""), date)
}

// RenderBillXLSX renders a manual bill as a fixed-layout printable workbook:
// business/outlet header, address block, bill metadata, the itemized table,
// subtotal, one line per nonzero tax component, and a grand-total line
// tagged with the record's currency.
func RenderBillXLSX(rec *entity.Expense) ([]byte, error) {
	meta := rec.Metadata
	if meta == nil {
		meta = &entity.ManualMetadata{}
	}
	totals := billing.ComputeTotals(rec.Items, billing.TaxRates{
		ServiceChargePct: meta.ServiceChargePct,
		CGSTPct:          meta.CGSTPct,
		SGSTPct:          meta.SGSTPct,
	})

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", billSheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	row := 1
	center := func(v any, style int) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(4, row)
		_ = f.MergeCell(billSheet, cell, end)
		_ = f.SetCellValue(billSheet, cell, v)
		if style != 0 {
			_ = f.SetCellStyle(billSheet, cell, end, style)
		}
		row++
	}
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(billSheet, cell, v)
	}

	business, outlet := SplitVendor(rec.Vendor)
	if outlet == "" {
		outlet = fallbackOutlet
	}

	center(business, bold)
	center(meta.Address, 0)
	if meta.Phone != "" {
		center("Ph: "+meta.Phone, 0)
	}
	center(outlet, bold)

	write(1, "Bill No: "+meta.BillNo)
	write(3, "Date: "+rec.TxDate.Format("2006-01-02"))
	if meta.BillTime != "" {
		write(4, "Time: "+meta.BillTime)
	}
	row++
	if meta.TableNo != "" || meta.Steward != "" {
		write(1, "Table: "+meta.TableNo)
		write(3, "Steward: "+meta.Steward)
		row++
	}

	headerStart, _ := excelize.CoordinatesToCellName(1, row)
	headerEnd, _ := excelize.CoordinatesToCellName(4, row)
	write(1, "Qty")
	write(2, "Description")
	write(4, "Amount")
	_ = f.SetCellStyle(billSheet, headerStart, headerEnd, bold)
	row++

	for _, item := range rec.Items {
		write(1, item.Quantity)
		write(2, item.Name)
		write(4, float64(item.Quantity)*item.UnitPrice)
		row++
	}

	amountLine := func(label string, amount float64, style int) {
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(3, row)
		_ = f.MergeCell(billSheet, start, end)
		_ = f.SetCellValue(billSheet, start, label)
		write(4, amount)
		if style != 0 {
			lineEnd, _ := excelize.CoordinatesToCellName(4, row)
			_ = f.SetCellStyle(billSheet, start, lineEnd, style)
		}
		row++
	}

	amountLine("Subtotal", totals.Subtotal, 0)
	// Zero-rate components are omitted, not rendered as zero lines.
	if meta.ServiceChargePct > 0 {
		amountLine(fmt.Sprintf("Service Charge (%v%%)", meta.ServiceChargePct), totals.ServiceChargeAmt, 0)
	}
	if meta.CGSTPct > 0 {
		amountLine(fmt.Sprintf("CGST (%v%%)", meta.CGSTPct), totals.CGSTAmt, 0)
	}
	if meta.SGSTPct > 0 {
		amountLine(fmt.Sprintf("SGST (%v%%)", meta.SGSTPct), totals.SGSTAmt, 0)
	}
	amountLine(fmt.Sprintf("GRAND TOTAL (%s)", rec.CurrencyCode), totals.GrandTotal, bold)

	if meta.GSTIN != "" {
		row++
		center("GSTIN: "+meta.GSTIN, 0)
	}

	_ = f.SetColWidth(billSheet, "A", "A", 8)
	_ = f.SetColWidth(billSheet, "B", "C", 20)
	_ = f.SetColWidth(billSheet, "D", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
