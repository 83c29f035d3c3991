package llm

import (
	"context"

	"github.com/expensehub/expense-tracker/internal/entity"
)

// ExpenseFields is the normalized shape we want from the model.
type ExpenseFields struct {
	TxDate       string  `json:"date"`     // YYYY-MM-DD
	Vendor       string  `json:"vendor"`   // business/hotel/provider name
	Amount       float64 `json:"amount"`   // numeric total
	CurrencyCode string  `json:"currency"` // ISO 4217
	Category     string  `json:"category"` // Hotel, Transport, Meal or Other
	Location     string  `json:"location"` // city or specific location
	Details      string  `json:"details"`  // short summary of what was purchased
}

type ExtractRequest struct {
	Image    []byte
	MIMEType string

	// DefaultCurrency hints the model when the receipt shows no code.
	DefaultCurrency string
}

// Extractor is the interface the reconciler depends on. The raw JSON is
// returned alongside the parsed result for audit logging.
type Extractor interface {
	ExtractExpense(ctx context.Context, req ExtractRequest) (entity.ExtractionResult, []byte, error)
}
