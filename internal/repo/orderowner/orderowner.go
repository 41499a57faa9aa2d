// Code generated by ent, DO NOT EDIT.

package orderowner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the orderowner type in the database.
	Label = "order_owner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOwnershipID holds the string denoting the ownership_id field in the database.
	FieldOwnershipID = "ownership_id"
	// FieldEmployeeID holds the string denoting the employee_id field in the database.
	FieldEmployeeID = "employee_id"
	// FieldSharePercent holds the string denoting the share_percent field in the database.
	FieldSharePercent = "share_percent"
	// EdgeOwnership holds the string denoting the ownership edge name in mutations.
	EdgeOwnership = "ownership"
	// Table holds the table name of the orderowner in the database.
	Table = "order_owners"
	// OwnershipTable is the table that holds the ownership relation/edge.
	OwnershipTable = "order_owners"
	// OwnershipInverseTable is the table name for the OrderOwnership entity.
	// It exists in this package in order to avoid circular dependency with the "orderownership" package.
	OwnershipInverseTable = "order_ownerships"
	// OwnershipColumn is the table column denoting the ownership relation/edge.
	OwnershipColumn = "ownership_id"
)

// Columns holds all SQL columns for orderowner fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOwnershipID,
	FieldEmployeeID,
	FieldSharePercent,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OrderOwner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOwnershipID orders the results by the ownership_id field.
func ByOwnershipID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnershipID, opts...).ToFunc()
}

// ByEmployeeID orders the results by the employee_id field.
func ByEmployeeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeID, opts...).ToFunc()
}

// BySharePercent orders the results by the share_percent field.
func BySharePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharePercent, opts...).ToFunc()
}

// ByOwnershipField orders the results by ownership field.
func ByOwnershipField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnershipStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnershipStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnershipInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnershipTable, OwnershipColumn),
	)
}
