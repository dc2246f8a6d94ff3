package storage

import "errors"

// ErrNoRows is returned by a Backend when no row matches the id
var ErrNoRows = errors.New("no rows in result set")

// OpError reports a failed store operation. Its message is the store's
// message, unchanged; Op and Table are there for logs.
type OpError struct {
	Op    string
	Table string
	Err   error
}

func (e *OpError) Error() string {
	return e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op, table string, err error) error {
	return &OpError{Op: op, Table: table, Err: err}
}
