package storage

import "context"

// Order selects the row order of Table.Find
type Order string

const (
	// OrderNone keeps whatever order the store returns
	OrderNone Order = ""
	// OrderNewestFirst sorts by creation time, most recent first
	OrderNewestFirst Order = "created_at desc"
)

// Backend is the query client the Storage adapter drives. Rows passed in
// and out are model structs whose json tags equal their column names.
type Backend interface {
	Table(name string) Table
	// Transaction runs fn against a backend bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(Backend) error) error
}

// Table is one store collection. Every method returns ErrNoRows when the
// id matches nothing.
type Table interface {
	// Find loads every row into dest, a pointer to a slice of models
	Find(ctx context.Context, dest interface{}, order Order) error
	First(ctx context.Context, id string, dest interface{}) error
	// Insert stores row and fills in its store-assigned columns
	Insert(ctx context.Context, row interface{}) error
	// Update writes columns on the row with id and loads the result into dest
	Update(ctx context.Context, id string, columns map[string]interface{}, dest interface{}) error
	// Delete removes the row with id; model names the row type
	Delete(ctx context.Context, id string, model interface{}) error
}
