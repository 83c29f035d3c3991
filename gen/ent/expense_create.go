// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/expensehub/expense-tracker/gen/ent/expense"
	"github.com/expensehub/expense-tracker/gen/ent/user"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/google/uuid"
)

// ExpenseCreate is the builder for creating a Expense entity.
type ExpenseCreate struct {
	config
	mutation *ExpenseMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExpenseCreate) SetUserID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *ExpenseCreate) SetTxDate(v time.Time) *ExpenseCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *ExpenseCreate) SetVendor(v string) *ExpenseCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExpenseCreate) SetAmount(v float64) *ExpenseCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ExpenseCreate) SetCurrencyCode(v string) *ExpenseCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExpenseCreate) SetCategory(v string) *ExpenseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCategory(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ExpenseCreate) SetLocation(v string) *ExpenseCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableLocation(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ExpenseCreate) SetDetails(v string) *ExpenseCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableDetails(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *ExpenseCreate) SetImagePath(v string) *ExpenseCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableImagePath(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExpenseCreate) SetStatus(v string) *ExpenseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableStatus(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConvertedAmount sets the "converted_amount" field.
func (_c *ExpenseCreate) SetConvertedAmount(v float64) *ExpenseCreate {
	_c.mutation.SetConvertedAmount(v)
	return _c
}

// SetNillableConvertedAmount sets the "converted_amount" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableConvertedAmount(v *float64) *ExpenseCreate {
	if v != nil {
		_c.SetConvertedAmount(*v)
	}
	return _c
}

// SetBaseCurrencyAtTime sets the "base_currency_at_time" field.
func (_c *ExpenseCreate) SetBaseCurrencyAtTime(v string) *ExpenseCreate {
	_c.mutation.SetBaseCurrencyAtTime(v)
	return _c
}

// SetNillableBaseCurrencyAtTime sets the "base_currency_at_time" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableBaseCurrencyAtTime(v *string) *ExpenseCreate {
	if v != nil {
		_c.SetBaseCurrencyAtTime(*v)
	}
	return _c
}

// SetIsManual sets the "is_manual" field.
func (_c *ExpenseCreate) SetIsManual(v bool) *ExpenseCreate {
	_c.mutation.SetIsManual(v)
	return _c
}

// SetNillableIsManual sets the "is_manual" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableIsManual(v *bool) *ExpenseCreate {
	if v != nil {
		_c.SetIsManual(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *ExpenseCreate) SetItems(v []entity.LineItem) *ExpenseCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetManualMetadata sets the "manual_metadata" field.
func (_c *ExpenseCreate) SetManualMetadata(v *entity.ManualMetadata) *ExpenseCreate {
	_c.mutation.SetManualMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpenseCreate) SetCreatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableCreatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExpenseCreate) SetUpdatedAt(v time.Time) *ExpenseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExpenseCreate) SetNillableUpdatedAt(v *time.Time) *ExpenseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExpenseCreate) SetID(v uuid.UUID) *ExpenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ExpenseCreate) SetUser(v *User) *ExpenseCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ExpenseMutation object of the builder.
func (_c *ExpenseCreate) Mutation() *ExpenseMutation {
	return _c.mutation
}

// Save creates the Expense in the database.
func (_c *ExpenseCreate) Save(ctx context.Context) (*Expense, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpenseCreate) SaveX(ctx context.Context) *Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpenseCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := expense.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := expense.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsManual(); !ok {
		v := expense.DefaultIsManual
		_c.mutation.SetIsManual(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expense.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := expense.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpenseCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Expense.user_id"`)}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Expense.tx_date"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Expense.vendor"`)}
	}
	if v, ok := _c.mutation.Vendor(); ok {
		if err := expense.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Expense.vendor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Expense.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := expense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Expense.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Expense.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := expense.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Expense.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Expense.category"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Expense.status"`)}
	}
	if v, ok := _c.mutation.BaseCurrencyAtTime(); ok {
		if err := expense.BaseCurrencyAtTimeValidator(v); err != nil {
			return &ValidationError{Name: "base_currency_at_time", err: fmt.Errorf(`ent: validator failed for field "Expense.base_currency_at_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsManual(); !ok {
		return &ValidationError{Name: "is_manual", err: errors.New(`ent: missing required field "Expense.is_manual"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Expense.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Expense.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Expense.user"`)}
	}
	return nil
}

func (_c *ExpenseCreate) sqlSave(ctx context.Context) (*Expense, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExpenseCreate) createSpec() (*Expense, *sqlgraph.CreateSpec) {
	var (
		_node = &Expense{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expense.Table, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(expense.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(expense.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(expense.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(expense.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(expense.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(expense.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(expense.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConvertedAmount(); ok {
		_spec.SetField(expense.FieldConvertedAmount, field.TypeFloat64, value)
		_node.ConvertedAmount = &value
	}
	if value, ok := _c.mutation.BaseCurrencyAtTime(); ok {
		_spec.SetField(expense.FieldBaseCurrencyAtTime, field.TypeString, value)
		_node.BaseCurrencyAtTime = &value
	}
	if value, ok := _c.mutation.IsManual(); ok {
		_spec.SetField(expense.FieldIsManual, field.TypeBool, value)
		_node.IsManual = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(expense.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.ManualMetadata(); ok {
		_spec.SetField(expense.FieldManualMetadata, field.TypeJSON, value)
		_node.ManualMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExpenseCreateBulk is the builder for creating many Expense entities in bulk.
type ExpenseCreateBulk struct {
	config
	err      error
	builders []*ExpenseCreate
}

// Save creates the Expense entities in the database.
func (_c *ExpenseCreateBulk) Save(ctx context.Context) ([]*Expense, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Expense, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpenseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExpenseCreateBulk) SaveX(ctx context.Context) []*Expense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
