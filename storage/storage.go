// Package storage is the single place the application reads and writes
// persistent data. Each entity gets list, get, create, update and delete
// methods. A missing row is reported through the boolean result, never as
// an error; any other store failure comes back as an *OpError.
package storage

import (
	"context"

	logModel "travel-booking/models/log"
	"travel-booking/types"
)

// Storage is stateless apart from the injected backend
type Storage struct {
	backend Backend
}

func New(backend Backend) *Storage {
	return &Storage{backend: backend}
}

// Transaction runs fn with a Storage whose calls all share one store
// transaction. Any error returned by fn rolls every write back.
func (s *Storage) Transaction(ctx context.Context, fn func(tx *Storage) error) error {
	return s.backend.Transaction(ctx, func(b Backend) error {
		return fn(&Storage{backend: b})
	})
}

// SaveRequestLog stores one API request log entry
func (s *Storage) SaveRequestLog(ctx context.Context, entry types.LogEntry) error {
	row := logModel.Log{
		Method:          entry.Method,
		URL:             entry.URL,
		ClientIP:        entry.ClientIP,
		RequestBody:     entry.RequestBody,
		RequestHeaders:  entry.RequestHeaders,
		ResponseBody:    entry.ResponseBody,
		ResponseHeaders: entry.ResponseHeaders,
		StatusCode:      entry.StatusCode,
		DurationMs:      entry.Duration.Milliseconds(),
	}
	row.CreatedAt = entry.CreatedAt

	table := row.TableName()
	if err := s.backend.Table(table).Insert(ctx, &row); err != nil {
		return opError("create", table, err)
	}
	return nil
}
