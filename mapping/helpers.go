package mapping

import (
	"time"

	"github.com/lib/pq"
)

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toArray(values []string) pq.StringArray {
	if values == nil {
		return nil
	}
	return append(pq.StringArray(nil), values...)
}

func fromArray(values pq.StringArray) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

// columns collects the store columns of a partial update
type columns map[string]interface{}

func (c columns) set(name string, v interface{}, present bool) {
	if present {
		c[name] = v
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
