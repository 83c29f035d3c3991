package billing

import (
	"testing"

	"github.com/expensehub/expense-tracker/internal/entity"
)

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name  string
		items []entity.LineItem
		rates TaxRates
		want  entity.Totals
	}{
		{
			name:  "restaurant bill",
			items: []entity.LineItem{{Quantity: 4, Name: "Roti", UnitPrice: 70}},
			rates: TaxRates{ServiceChargePct: 5, CGSTPct: 2.5, SGSTPct: 2.5},
			want: entity.Totals{
				Subtotal:         280,
				ServiceChargeAmt: 14,
				CGSTAmt:          7,
				SGSTAmt:          7,
				GrandTotal:       308,
			},
		},
		{
			name: "multiple items",
			items: []entity.LineItem{
				{Quantity: 1, Name: "Paneer Tawa Masala", UnitPrice: 380},
				{Quantity: 4, Name: "Butter Roti", UnitPrice: 70},
				{Quantity: 1, Name: "Mineral Water", UnitPrice: 100},
			},
			rates: TaxRates{ServiceChargePct: 5, CGSTPct: 2.5, SGSTPct: 2.5},
			want: entity.Totals{
				Subtotal:         760,
				ServiceChargeAmt: 38,
				CGSTAmt:          19,
				SGSTAmt:          19,
				GrandTotal:       836,
			},
		},
		{
			name:  "zero rates contribute nothing",
			items: []entity.LineItem{{Quantity: 2, Name: "Espresso", UnitPrice: 3.5}},
			rates: TaxRates{},
			want:  entity.Totals{Subtotal: 7, GrandTotal: 7},
		},
		{
			name:  "empty items",
			items: nil,
			rates: TaxRates{ServiceChargePct: 10, CGSTPct: 9, SGSTPct: 9},
			want:  entity.Totals{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.rates)
			if got != tc.want {
				t.Fatalf("ComputeTotals() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestComputeTotalsRoundsComponentsBeforeSumming(t *testing.T) {
	// 333.33 * 5% = 16.6665 rounds up to 16.67; 333.33 * 2.5% = 8.33325
	// rounds down to 8.33.
	got := ComputeTotals(
		[]entity.LineItem{{Quantity: 1, Name: "Thali", UnitPrice: 333.33}},
		TaxRates{ServiceChargePct: 5, CGSTPct: 2.5, SGSTPct: 2.5},
	)

	if got.ServiceChargeAmt != 16.67 {
		t.Fatalf("service charge = %v, want 16.67", got.ServiceChargeAmt)
	}
	if got.CGSTAmt != 8.33 || got.SGSTAmt != 8.33 {
		t.Fatalf("gst components = %v/%v, want 8.33/8.33", got.CGSTAmt, got.SGSTAmt)
	}
	want := got.Subtotal + got.ServiceChargeAmt + got.CGSTAmt + got.SGSTAmt
	if got.GrandTotal != want {
		t.Fatalf("grand total = %v, want sum of rounded components %v", got.GrandTotal, want)
	}
}

func TestComputeTotalsComponentsSumToGrandTotal(t *testing.T) {
	items := []entity.LineItem{
		{Quantity: 3, Name: "Dal Makhani", UnitPrice: 245.55},
		{Quantity: 2, Name: "Jeera Rice", UnitPrice: 180.25},
		{Quantity: 5, Name: "Lassi", UnitPrice: 99.99},
	}
	rateSets := []TaxRates{
		{ServiceChargePct: 5, CGSTPct: 2.5, SGSTPct: 2.5},
		{ServiceChargePct: 12.5, CGSTPct: 9, SGSTPct: 9},
		{ServiceChargePct: 0, CGSTPct: 2.5, SGSTPct: 0},
		{},
	}

	for _, rates := range rateSets {
		got := ComputeTotals(items, rates)
		sum := got.Subtotal + got.ServiceChargeAmt + got.CGSTAmt + got.SGSTAmt
		if got.GrandTotal != sum {
			t.Fatalf("rates %+v: grand total %v != component sum %v", rates, got.GrandTotal, sum)
		}
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []entity.LineItem{{Quantity: 4, Name: "Roti", UnitPrice: 70}}
	rates := TaxRates{ServiceChargePct: 5, CGSTPct: 2.5, SGSTPct: 2.5}

	first := ComputeTotals(items, rates)
	second := ComputeTotals(items, rates)
	if first != second {
		t.Fatalf("repeated calls differ: %+v vs %+v", first, second)
	}
}
