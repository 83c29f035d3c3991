// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/expensehub/expense-tracker/db/ent/schema"
	"github.com/expensehub/expense-tracker/gen/ent/expense"
	"github.com/expensehub/expense-tracker/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescVendor is the schema descriptor for vendor field.
	expenseDescVendor := expenseFields[3].Descriptor()
	// expense.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	expense.VendorValidator = expenseDescVendor.Validators[0].(func(string) error)
	// expenseDescAmount is the schema descriptor for amount field.
	expenseDescAmount := expenseFields[4].Descriptor()
	// expense.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	expense.AmountValidator = expenseDescAmount.Validators[0].(func(float64) error)
	// expenseDescCurrencyCode is the schema descriptor for currency_code field.
	expenseDescCurrencyCode := expenseFields[5].Descriptor()
	// expense.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	expense.CurrencyCodeValidator = func() func(string) error {
		validators := expenseDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// expenseDescCategory is the schema descriptor for category field.
	expenseDescCategory := expenseFields[6].Descriptor()
	// expense.DefaultCategory holds the default value on creation for the category field.
	expense.DefaultCategory = expenseDescCategory.Default.(string)
	// expenseDescStatus is the schema descriptor for status field.
	expenseDescStatus := expenseFields[10].Descriptor()
	// expense.DefaultStatus holds the default value on creation for the status field.
	expense.DefaultStatus = expenseDescStatus.Default.(string)
	// expenseDescBaseCurrencyAtTime is the schema descriptor for base_currency_at_time field.
	expenseDescBaseCurrencyAtTime := expenseFields[12].Descriptor()
	// expense.BaseCurrencyAtTimeValidator is a validator for the "base_currency_at_time" field. It is called by the builders before save.
	expense.BaseCurrencyAtTimeValidator = expenseDescBaseCurrencyAtTime.Validators[0].(func(string) error)
	// expenseDescIsManual is the schema descriptor for is_manual field.
	expenseDescIsManual := expenseFields[13].Descriptor()
	// expense.DefaultIsManual holds the default value on creation for the is_manual field.
	expense.DefaultIsManual = expenseDescIsManual.Default.(bool)
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseFields[16].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescUpdatedAt is the schema descriptor for updated_at field.
	expenseDescUpdatedAt := expenseFields[17].Descriptor()
	// expense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expense.DefaultUpdatedAt = expenseDescUpdatedAt.Default.(func() time.Time)
	// expense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expense.UpdateDefaultUpdatedAt = expenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescBaseCurrency is the schema descriptor for base_currency field.
	userDescBaseCurrency := userFields[5].Descriptor()
	// user.BaseCurrencyValidator is a validator for the "base_currency" field. It is called by the builders before save.
	user.BaseCurrencyValidator = func() func(string) error {
		validators := userDescBaseCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(base_currency string) error {
			for _, fn := range fns {
				if err := fn(base_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
