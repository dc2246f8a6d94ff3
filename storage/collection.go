package storage

import (
	"context"
	"errors"
)

// collection ties a table to the named mappers of one entity.
// R is the row model, T the API record, P the patch type.
type collection[R any, T any, P any] struct {
	table     string
	order     Order
	fromStore func(R) T
	toStore   func(T) R
	patch     func(P) map[string]interface{}
}

// admin returns the same entity bound to its admin_ table, newest first
func (c collection[R, T, P]) admin() collection[R, T, P] {
	c.table = "admin_" + c.table
	c.order = OrderNewestFirst
	return c
}

func (c collection[R, T, P]) list(ctx context.Context, b Backend) ([]T, error) {
	var rows []R
	if err := b.Table(c.table).Find(ctx, &rows, c.order); err != nil {
		return nil, opError("list", c.table, err)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, c.fromStore(row))
	}
	return out, nil
}

func (c collection[R, T, P]) get(ctx context.Context, b Backend, id string) (T, bool, error) {
	var zero T
	var row R
	if err := b.Table(c.table).First(ctx, id, &row); err != nil {
		if errors.Is(err, ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, opError("get", c.table, err)
	}
	return c.fromStore(row), true, nil
}

func (c collection[R, T, P]) create(ctx context.Context, b Backend, record T) (T, error) {
	var zero T
	row := c.toStore(record)
	if err := b.Table(c.table).Insert(ctx, &row); err != nil {
		return zero, opError("create", c.table, err)
	}
	return c.fromStore(row), nil
}

func (c collection[R, T, P]) update(ctx context.Context, b Backend, id string, patch P) (T, bool, error) {
	var zero T
	var row R
	if err := b.Table(c.table).Update(ctx, id, c.patch(patch), &row); err != nil {
		if errors.Is(err, ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, opError("update", c.table, err)
	}
	return c.fromStore(row), true, nil
}

func (c collection[R, T, P]) remove(ctx context.Context, b Backend, id string) (bool, error) {
	var model R
	if err := b.Table(c.table).Delete(ctx, id, &model); err != nil {
		if errors.Is(err, ErrNoRows) {
			return false, nil
		}
		return false, opError("delete", c.table, err)
	}
	return true, nil
}
