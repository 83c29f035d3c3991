// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/expensehub/expense-tracker/gen/ent/expense"
	"github.com/expensehub/expense-tracker/gen/ent/predicate"
	"github.com/expensehub/expense-tracker/gen/ent/user"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/google/uuid"
)

// ExpenseUpdate is the builder for updating Expense entities.
type ExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseMutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdate) Where(ps ...predicate.Expense) *ExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExpenseUpdate) SetUserID(v uuid.UUID) *ExpenseUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableUserID(v *uuid.UUID) *ExpenseUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdate) SetTxDate(v time.Time) *ExpenseUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableTxDate(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ExpenseUpdate) SetVendor(v string) *ExpenseUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableVendor(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdate) SetAmount(v float64) *ExpenseUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableAmount(v *float64) *ExpenseUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdate) AddAmount(v float64) *ExpenseUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseUpdate) SetCurrencyCode(v string) *ExpenseUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCurrencyCode(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdate) SetCategory(v string) *ExpenseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCategory(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ExpenseUpdate) SetLocation(v string) *ExpenseUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableLocation(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ExpenseUpdate) ClearLocation() *ExpenseUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ExpenseUpdate) SetDetails(v string) *ExpenseUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableDetails(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ExpenseUpdate) ClearDetails() *ExpenseUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *ExpenseUpdate) SetImagePath(v string) *ExpenseUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableImagePath(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *ExpenseUpdate) ClearImagePath() *ExpenseUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdate) SetStatus(v string) *ExpenseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableStatus(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvertedAmount sets the "converted_amount" field.
func (_u *ExpenseUpdate) SetConvertedAmount(v float64) *ExpenseUpdate {
	_u.mutation.ResetConvertedAmount()
	_u.mutation.SetConvertedAmount(v)
	return _u
}

// SetNillableConvertedAmount sets the "converted_amount" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableConvertedAmount(v *float64) *ExpenseUpdate {
	if v != nil {
		_u.SetConvertedAmount(*v)
	}
	return _u
}

// AddConvertedAmount adds value to the "converted_amount" field.
func (_u *ExpenseUpdate) AddConvertedAmount(v float64) *ExpenseUpdate {
	_u.mutation.AddConvertedAmount(v)
	return _u
}

// ClearConvertedAmount clears the value of the "converted_amount" field.
func (_u *ExpenseUpdate) ClearConvertedAmount() *ExpenseUpdate {
	_u.mutation.ClearConvertedAmount()
	return _u
}

// SetBaseCurrencyAtTime sets the "base_currency_at_time" field.
func (_u *ExpenseUpdate) SetBaseCurrencyAtTime(v string) *ExpenseUpdate {
	_u.mutation.SetBaseCurrencyAtTime(v)
	return _u
}

// SetNillableBaseCurrencyAtTime sets the "base_currency_at_time" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableBaseCurrencyAtTime(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetBaseCurrencyAtTime(*v)
	}
	return _u
}

// ClearBaseCurrencyAtTime clears the value of the "base_currency_at_time" field.
func (_u *ExpenseUpdate) ClearBaseCurrencyAtTime() *ExpenseUpdate {
	_u.mutation.ClearBaseCurrencyAtTime()
	return _u
}

// SetIsManual sets the "is_manual" field.
func (_u *ExpenseUpdate) SetIsManual(v bool) *ExpenseUpdate {
	_u.mutation.SetIsManual(v)
	return _u
}

// SetNillableIsManual sets the "is_manual" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableIsManual(v *bool) *ExpenseUpdate {
	if v != nil {
		_u.SetIsManual(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ExpenseUpdate) SetItems(v []entity.LineItem) *ExpenseUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ExpenseUpdate) AppendItems(v []entity.LineItem) *ExpenseUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ExpenseUpdate) ClearItems() *ExpenseUpdate {
	_u.mutation.ClearItems()
	return _u
}

// SetManualMetadata sets the "manual_metadata" field.
func (_u *ExpenseUpdate) SetManualMetadata(v *entity.ManualMetadata) *ExpenseUpdate {
	_u.mutation.SetManualMetadata(v)
	return _u
}

// ClearManualMetadata clears the value of the "manual_metadata" field.
func (_u *ExpenseUpdate) ClearManualMetadata() *ExpenseUpdate {
	_u.mutation.ClearManualMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseUpdate) SetCreatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCreatedAt(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdate) SetUpdatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExpenseUpdate) SetUser(v *User) *ExpenseUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdate) Mutation() *ExpenseMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExpenseUpdate) ClearUser() *ExpenseUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdate) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := expense.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Expense.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expense.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Expense.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseCurrencyAtTime(); ok {
		if err := expense.BaseCurrencyAtTimeValidator(v); err != nil {
			return &ValidationError{Name: "base_currency_at_time", err: fmt.Errorf(`ent: validator failed for field "Expense.base_currency_at_time": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Expense.user"`)
	}
	return nil
}

func (_u *ExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expense.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(expense.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(expense.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(expense.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(expense.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(expense.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConvertedAmount(); ok {
		_spec.SetField(expense.FieldConvertedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvertedAmount(); ok {
		_spec.AddField(expense.FieldConvertedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ConvertedAmountCleared() {
		_spec.ClearField(expense.FieldConvertedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaseCurrencyAtTime(); ok {
		_spec.SetField(expense.FieldBaseCurrencyAtTime, field.TypeString, value)
	}
	if _u.mutation.BaseCurrencyAtTimeCleared() {
		_spec.ClearField(expense.FieldBaseCurrencyAtTime, field.TypeString)
	}
	if value, ok := _u.mutation.IsManual(); ok {
		_spec.SetField(expense.FieldIsManual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(expense.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expense.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(expense.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.ManualMetadata(); ok {
		_spec.SetField(expense.FieldManualMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ManualMetadataCleared() {
		_spec.ClearField(expense.FieldManualMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.UserTable,
			Columns: []string{expense.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.UserTable,
			Columns: []string{expense.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseUpdateOne is the builder for updating a single Expense entity.
type ExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExpenseUpdateOne) SetUserID(v uuid.UUID) *ExpenseUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableUserID(v *uuid.UUID) *ExpenseUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdateOne) SetTxDate(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableTxDate(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *ExpenseUpdateOne) SetVendor(v string) *ExpenseUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableVendor(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExpenseUpdateOne) SetAmount(v float64) *ExpenseUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableAmount(v *float64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ExpenseUpdateOne) AddAmount(v float64) *ExpenseUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseUpdateOne) SetCurrencyCode(v string) *ExpenseUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCurrencyCode(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdateOne) SetCategory(v string) *ExpenseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCategory(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ExpenseUpdateOne) SetLocation(v string) *ExpenseUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableLocation(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ExpenseUpdateOne) ClearLocation() *ExpenseUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ExpenseUpdateOne) SetDetails(v string) *ExpenseUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableDetails(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ExpenseUpdateOne) ClearDetails() *ExpenseUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *ExpenseUpdateOne) SetImagePath(v string) *ExpenseUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableImagePath(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *ExpenseUpdateOne) ClearImagePath() *ExpenseUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExpenseUpdateOne) SetStatus(v string) *ExpenseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableStatus(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConvertedAmount sets the "converted_amount" field.
func (_u *ExpenseUpdateOne) SetConvertedAmount(v float64) *ExpenseUpdateOne {
	_u.mutation.ResetConvertedAmount()
	_u.mutation.SetConvertedAmount(v)
	return _u
}

// SetNillableConvertedAmount sets the "converted_amount" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableConvertedAmount(v *float64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetConvertedAmount(*v)
	}
	return _u
}

// AddConvertedAmount adds value to the "converted_amount" field.
func (_u *ExpenseUpdateOne) AddConvertedAmount(v float64) *ExpenseUpdateOne {
	_u.mutation.AddConvertedAmount(v)
	return _u
}

// ClearConvertedAmount clears the value of the "converted_amount" field.
func (_u *ExpenseUpdateOne) ClearConvertedAmount() *ExpenseUpdateOne {
	_u.mutation.ClearConvertedAmount()
	return _u
}

// SetBaseCurrencyAtTime sets the "base_currency_at_time" field.
func (_u *ExpenseUpdateOne) SetBaseCurrencyAtTime(v string) *ExpenseUpdateOne {
	_u.mutation.SetBaseCurrencyAtTime(v)
	return _u
}

// SetNillableBaseCurrencyAtTime sets the "base_currency_at_time" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableBaseCurrencyAtTime(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetBaseCurrencyAtTime(*v)
	}
	return _u
}

// ClearBaseCurrencyAtTime clears the value of the "base_currency_at_time" field.
func (_u *ExpenseUpdateOne) ClearBaseCurrencyAtTime() *ExpenseUpdateOne {
	_u.mutation.ClearBaseCurrencyAtTime()
	return _u
}

// SetIsManual sets the "is_manual" field.
func (_u *ExpenseUpdateOne) SetIsManual(v bool) *ExpenseUpdateOne {
	_u.mutation.SetIsManual(v)
	return _u
}

// SetNillableIsManual sets the "is_manual" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableIsManual(v *bool) *ExpenseUpdateOne {
	if v != nil {
		_u.SetIsManual(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ExpenseUpdateOne) SetItems(v []entity.LineItem) *ExpenseUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ExpenseUpdateOne) AppendItems(v []entity.LineItem) *ExpenseUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ExpenseUpdateOne) ClearItems() *ExpenseUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// SetManualMetadata sets the "manual_metadata" field.
func (_u *ExpenseUpdateOne) SetManualMetadata(v *entity.ManualMetadata) *ExpenseUpdateOne {
	_u.mutation.SetManualMetadata(v)
	return _u
}

// ClearManualMetadata clears the value of the "manual_metadata" field.
func (_u *ExpenseUpdateOne) ClearManualMetadata() *ExpenseUpdateOne {
	_u.mutation.ClearManualMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseUpdateOne) SetCreatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCreatedAt(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdateOne) SetUpdatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExpenseUpdateOne) SetUser(v *User) *ExpenseUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdateOne) Mutation() *ExpenseMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExpenseUpdateOne) ClearUser() *ExpenseUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdateOne) Where(ps ...predicate.Expense) *ExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseUpdateOne) Select(field string, fields ...string) *ExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Expense entity.
func (_u *ExpenseUpdateOne) Save(ctx context.Context) (*Expense, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdateOne) SaveX(ctx context.Context) *Expense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := expense.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Expense.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expense.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Expense.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseCurrencyAtTime(); ok {
		if err := expense.BaseCurrencyAtTimeValidator(v); err != nil {
			return &ValidationError{Name: "base_currency_at_time", err: fmt.Errorf(`ent: validator failed for field "Expense.base_currency_at_time": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Expense.user"`)
	}
	return nil
}

func (_u *ExpenseUpdateOne) sqlSave(ctx context.Context) (_node *Expense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Expense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expense.FieldID)
		for _, f := range fields {
			if !expense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expense.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(expense.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expense.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(expense.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(expense.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(expense.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(expense.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(expense.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConvertedAmount(); ok {
		_spec.SetField(expense.FieldConvertedAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConvertedAmount(); ok {
		_spec.AddField(expense.FieldConvertedAmount, field.TypeFloat64, value)
	}
	if _u.mutation.ConvertedAmountCleared() {
		_spec.ClearField(expense.FieldConvertedAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BaseCurrencyAtTime(); ok {
		_spec.SetField(expense.FieldBaseCurrencyAtTime, field.TypeString, value)
	}
	if _u.mutation.BaseCurrencyAtTimeCleared() {
		_spec.ClearField(expense.FieldBaseCurrencyAtTime, field.TypeString)
	}
	if value, ok := _u.mutation.IsManual(); ok {
		_spec.SetField(expense.FieldIsManual, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(expense.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expense.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(expense.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.ManualMetadata(); ok {
		_spec.SetField(expense.FieldManualMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ManualMetadataCleared() {
		_spec.ClearField(expense.FieldManualMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.UserTable,
			Columns: []string{expense.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.UserTable,
			Columns: []string{expense.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Expense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
