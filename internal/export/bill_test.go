package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/entity"
)

func manualBill() *entity.Expense {
	return &entity.Expense{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		TxDate:       time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Vendor:       "The Royal Comfort - Indiranagar",
		Amount:       308,
		CurrencyCode: "INR",
		Category:     constants.Meal,
		Location:     "Bengaluru",
		IsManual:     true,
		Items: []entity.LineItem{
			{Quantity: 4, Name: "Roti", UnitPrice: 70},
		},
		Metadata: &entity.ManualMetadata{
			Address:          "100 Feet Road, Indiranagar",
			Phone:            "080-4112 0000",
			BillNo:           "RC-1042",
			GSTIN:            "29ABCDE1234F1Z5",
			ServiceChargePct: 5,
			CGSTPct:          2.5,
			SGSTPct:          2.5,
		},
	}
}

func sheetCells(t *testing.T, data []byte) [][]string {
	t.Helper()
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(wb.GetSheetName(wb.GetActiveSheetIndex()))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	return rows
}

func findRow(rows [][]string, label string) []string {
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, label) {
				return row
			}
		}
	}
	return nil
}

func TestRenderBillLayout(t *testing.T) {
	data, err := RenderBillXLSX(manualBill())
	if err != nil {
		t.Fatal(err)
	}
	rows := sheetCells(t, data)

	for _, want := range []string{
		"The Royal Comfort",
		"Indiranagar",
		"Ph: 080-4112 0000",
		"Bill No: RC-1042",
		"Roti",
		"Subtotal",
		"Service Charge (5%)",
		"CGST (2.5%)",
		"SGST (2.5%)",
		"GRAND TOTAL (INR)",
		"GSTIN: 29ABCDE1234F1Z5",
	} {
		if findRow(rows, want) == nil {
			t.Errorf("rendered bill missing %q", want)
		}
	}

	grand := findRow(rows, "GRAND TOTAL (INR)")
	if got := grand[len(grand)-1]; got != "308" {
		t.Errorf("grand total cell = %q, want 308", got)
	}
	sub := findRow(rows, "Subtotal")
	if got := sub[len(sub)-1]; got != "280" {
		t.Errorf("subtotal cell = %q, want 280", got)
	}
}

func TestRenderBillOmitsZeroRateLines(t *testing.T) {
	bill := manualBill()
	bill.Metadata.ServiceChargePct = 0
	bill.Metadata.SGSTPct = 0

	data, err := RenderBillXLSX(bill)
	if err != nil {
		t.Fatal(err)
	}
	rows := sheetCells(t, data)

	if findRow(rows, "Service Charge") != nil {
		t.Error("zero-rate service charge rendered")
	}
	if findRow(rows, "SGST") != nil {
		t.Error("zero-rate SGST rendered")
	}
	if findRow(rows, "CGST (2.5%)") == nil {
		t.Error("nonzero CGST line missing")
	}
}

func TestRenderBillOutletFallback(t *testing.T) {
	bill := manualBill()
	bill.Vendor = "Standalone Diner"

	data, err := RenderBillXLSX(bill)
	if err != nil {
		t.Fatal(err)
	}
	rows := sheetCells(t, data)

	if findRow(rows, "Standalone Diner") == nil {
		t.Error("business header missing")
	}
	if findRow(rows, "TAX INVOICE") == nil {
		t.Error("fallback outlet label missing")
	}
}

func TestSplitVendor(t *testing.T) {
	cases := []struct {
		vendor, business, outlet string
	}{
		{"The Royal Comfort - Indiranagar", "The Royal Comfort", "Indiranagar"},
		{"A - B - C", "A", "B - C"},
		{"Solo", "Solo", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		business, outlet := SplitVendor(tc.vendor)
		if business != tc.business || outlet != tc.outlet {
			t.Errorf("SplitVendor(%q) = %q / %q, want %q / %q", tc.vendor, business, outlet, tc.business, tc.outlet)
		}
	}
}

func TestBillFilename(t *testing.T) {
	bill := manualBill()
	if got := BillFilename(bill); got != "ExpenseHub_TheRoyalComfort_2026-02-20.xlsx" {
		t.Errorf("filename = %q", got)
	}

	bill.Vendor = ""
	got := BillFilename(bill)
	if !strings.HasPrefix(got, "ExpenseHub_RC-1042_") || !strings.HasSuffix(got, ".xlsx") {
		t.Errorf("fallback filename = %q", got)
	}
}
