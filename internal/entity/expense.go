package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
)

// LineItem is one row of a manually authored bill.
type LineItem struct {
	Quantity  int     `json:"qty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
}

// ManualMetadata carries the receipt-header details of a manual bill.
type ManualMetadata struct {
	Address          string  `json:"address,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Website          string  `json:"website,omitempty"`
	BillNo           string  `json:"bill_no,omitempty"`
	TableNo          string  `json:"table_no,omitempty"`
	Steward          string  `json:"steward,omitempty"`
	Cover            string  `json:"cover,omitempty"`
	Session          string  `json:"session,omitempty"`
	GSTIN            string  `json:"gstin,omitempty"`
	Cashier          string  `json:"cashier,omitempty"`
	BillTime         string  `json:"bill_time,omitempty"`
	ServiceChargePct float64 `json:"service_charge_pct,omitempty"`
	CGSTPct          float64 `json:"cgst_pct,omitempty"`
	SGSTPct          float64 `json:"sgst_pct,omitempty"`
}

// Totals is the output of the bill calculator. Component amounts are rounded
// half-up to 2 decimal places at computation time, and GrandTotal is the sum
// of the rounded components.
type Totals struct {
	Subtotal         float64 `json:"subtotal"`
	ServiceChargeAmt float64 `json:"service_charge_amt"`
	CGSTAmt          float64 `json:"cgst_amt"`
	SGSTAmt          float64 `json:"sgst_amt"`
	GrandTotal       float64 `json:"grand_total"`
}

// Expense represents one reimbursable item for data transfer between layers.
type Expense struct {
	ID           uuid.UUID              `json:"id"`
	UserID       uuid.UUID              `json:"user_id"`
	TxDate       time.Time              `json:"tx_date"`
	Vendor       string                 `json:"vendor"`
	Amount       float64                `json:"amount"`
	CurrencyCode string                 `json:"currency_code"`
	Category     constants.Category     `json:"category"`
	Location     string                 `json:"location"`
	Details      string                 `json:"details"`
	ImagePath    string                 `json:"image_path,omitempty"`
	Status       constants.RecordStatus `json:"status"`

	// Conversion snapshot: taken when ConvertedAmount was computed, never
	// recomputed implicitly.
	ConvertedAmount    *float64 `json:"converted_amount,omitempty"`
	BaseCurrencyAtTime *string  `json:"base_currency_at_time,omitempty"`

	// Manual-bill extension. Amount of a manual record is always the
	// calculator's grand total while items exist.
	IsManual bool            `json:"is_manual,omitempty"`
	Items    []LineItem      `json:"items,omitempty"`
	Metadata *ManualMetadata `json:"manual_metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can patch without aliasing stored state.
func (e *Expense) Clone() *Expense {
	cp := *e
	if e.ConvertedAmount != nil {
		v := *e.ConvertedAmount
		cp.ConvertedAmount = &v
	}
	if e.BaseCurrencyAtTime != nil {
		v := *e.BaseCurrencyAtTime
		cp.BaseCurrencyAtTime = &v
	}
	if e.Items != nil {
		cp.Items = make([]LineItem, len(e.Items))
		copy(cp.Items, e.Items)
	}
	if e.Metadata != nil {
		m := *e.Metadata
		cp.Metadata = &m
	}
	return &cp
}
