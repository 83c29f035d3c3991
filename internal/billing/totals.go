// Package billing computes manual-bill totals.
//
// Tax components are rounded half-up to 2 decimal places at the point of
// computation, and the grand total is the sum of the rounded components.
// Rendered tax lines therefore always sum exactly to the rendered total.
package billing

import (
	"math"

	"github.com/expensehub/expense-tracker/internal/entity"
)

// TaxRates are percentages applied to the subtotal.
type TaxRates struct {
	ServiceChargePct float64
	CGSTPct          float64
	SGSTPct          float64
}

// ComputeTotals derives bill totals from line items. Pure; an empty item
// list yields all-zero totals.
func ComputeTotals(items []entity.LineItem, rates TaxRates) entity.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	scAmt := round2(subtotal * rates.ServiceChargePct / 100)
	cgstAmt := round2(subtotal * rates.CGSTPct / 100)
	sgstAmt := round2(subtotal * rates.SGSTPct / 100)

	return entity.Totals{
		Subtotal:         subtotal,
		ServiceChargeAmt: scAmt,
		CGSTAmt:          cgstAmt,
		SGSTAmt:          sgstAmt,
		// Sum of the rounded components, not a separately rounded raw sum.
		GrandTotal: subtotal + scAmt + cgstAmt + sgstAmt,
	}
}

// round2 rounds half-up to 2 decimal places. Inputs are non-negative, so
// math.Round's half-away-from-zero matches half-up.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
