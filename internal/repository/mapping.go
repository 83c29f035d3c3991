package repository

import (
	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/gen/ent"
	"github.com/expensehub/expense-tracker/internal/entity"
)

func toExpense(row *ent.Expense) *entity.Expense {
	return &entity.Expense{
		ID:                 row.ID,
		UserID:             row.UserID,
		TxDate:             row.TxDate,
		Vendor:             row.Vendor,
		Amount:             row.Amount,
		CurrencyCode:       row.CurrencyCode,
		Category:           constants.Category(row.Category),
		Location:           row.Location,
		Details:            row.Details,
		ImagePath:          row.ImagePath,
		Status:             constants.RecordStatus(row.Status),
		ConvertedAmount:    row.ConvertedAmount,
		BaseCurrencyAtTime: row.BaseCurrencyAtTime,
		IsManual:           row.IsManual,
		Items:              row.Items,
		Metadata:           row.ManualMetadata,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func toUser(row *ent.User) *entity.User {
	return &entity.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		AvatarURL:    row.AvatarURL,
		BaseCurrency: row.BaseCurrency,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
