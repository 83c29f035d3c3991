// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
