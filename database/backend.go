package database

import (
	"context"
	"errors"

	"travel-booking/storage"

	"gorm.io/gorm"
)

// Backend runs storage operations against PostgreSQL through gorm
type Backend struct {
	db *gorm.DB
}

func NewBackend(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Table(name string) storage.Table {
	return &table{db: b.db, name: name}
}

func (b *Backend) Transaction(ctx context.Context, fn func(storage.Backend) error) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Backend{db: tx})
	})
}

type table struct {
	db   *gorm.DB
	name string
}

func (t *table) query(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Table(t.name)
}

func (t *table) Find(ctx context.Context, dest interface{}, order storage.Order) error {
	q := t.query(ctx)
	if order != storage.OrderNone {
		q = q.Order(string(order))
	}
	return translateError(q.Find(dest).Error)
}

func (t *table) First(ctx context.Context, id string, dest interface{}) error {
	return translateError(t.query(ctx).Where("id = ?", id).Take(dest).Error)
}

func (t *table) Insert(ctx context.Context, row interface{}) error {
	return translateError(t.query(ctx).Create(row).Error)
}

func (t *table) Update(ctx context.Context, id string, columns map[string]interface{}, dest interface{}) error {
	if len(columns) > 0 {
		res := t.query(ctx).Where("id = ?", id).Updates(columns)
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return storage.ErrNoRows
		}
	}
	return t.First(ctx, id, dest)
}

func (t *table) Delete(ctx context.Context, id string, model interface{}) error {
	res := t.query(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNoRows
	}
	return nil
}

// translateError maps gorm's not-found error onto storage.ErrNoRows and
// passes everything else through untouched
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNoRows
	}
	return err
}
