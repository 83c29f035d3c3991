package entity

import "github.com/expensehub/expense-tracker/constants"

// ExtractionResult is the normalized output of the image extraction service.
type ExtractionResult struct {
	TxDate       string             `json:"date"` // YYYY-MM-DD
	Vendor       string             `json:"vendor"`
	Amount       float64            `json:"amount"`
	CurrencyCode string             `json:"currency"`
	Category     constants.Category `json:"category"`
	Location     string             `json:"location"`
	Details      string             `json:"details"`
}
