package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var zeroTimeJSON = []byte(`"0001-01-01T00:00:00Z"`)

type memRow struct {
	seq  int64
	cols map[string]json.RawMessage
}

type memTable struct {
	rows map[string]*memRow
	ids  []string // insertion order
}

// MemoryBackend keeps every table in process memory. Rows are held as
// their JSON encoding, so any model whose json tags match its columns can
// be stored. Transactions are serialised and work on a copy; on commit only
// the rows the transaction touched are written back, so writes made outside
// it in the meantime survive.
type MemoryBackend struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	tables  map[string]*memTable
	seq     int64
	failure error

	// dirty records the rows written inside a transaction, by table
	dirty map[string]map[string]struct{}
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tables: map[string]*memTable{}}
}

// SetFailure makes every following call fail with err until it is
// called again with nil.
func (m *MemoryBackend) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = err
}

func (m *MemoryBackend) Table(name string) Table {
	return &memoryTable{backend: m, name: name}
}

func (m *MemoryBackend) Transaction(ctx context.Context, fn func(Backend) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := m.clone()
	if err := fn(tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.merge(tx)
	return nil
}

func (m *MemoryBackend) clone() *MemoryBackend {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &MemoryBackend{
		tables:  make(map[string]*memTable, len(m.tables)),
		seq:     m.seq,
		failure: m.failure,
		dirty:   map[string]map[string]struct{}{},
	}
	for name, t := range m.tables {
		ct := &memTable{rows: make(map[string]*memRow, len(t.rows)), ids: append([]string(nil), t.ids...)}
		for id, r := range t.rows {
			ct.rows[id] = &memRow{seq: r.seq, cols: copyCols(r.cols)}
		}
		c.tables[name] = ct
	}
	return c
}

// merge writes the rows touched by tx back into m. The caller holds m.mu.
func (m *MemoryBackend) merge(tx *MemoryBackend) {
	for name, touched := range tx.dirty {
		src := tx.tables[name]
		dst := m.table(name)

		// rows still present, in the order the transaction holds them
		for _, id := range src.ids {
			if _, ok := touched[id]; !ok {
				continue
			}
			cols := copyCols(src.rows[id].cols)
			if r, ok := dst.rows[id]; ok {
				r.cols = cols
			} else {
				m.seq++
				dst.rows[id] = &memRow{seq: m.seq, cols: cols}
				dst.ids = append(dst.ids, id)
			}
			m.touch(name, id)
		}
		for id := range touched {
			if _, ok := src.rows[id]; !ok {
				dst.remove(id)
				m.touch(name, id)
			}
		}
	}
}

// touch marks a row as written when m is a transaction
func (m *MemoryBackend) touch(table, id string) {
	if m.dirty == nil {
		return
	}
	if m.dirty[table] == nil {
		m.dirty[table] = map[string]struct{}{}
	}
	m.dirty[table][id] = struct{}{}
}

// table returns the named table, creating it. The caller holds m.mu.
func (m *MemoryBackend) table(name string) *memTable {
	t, ok := m.tables[name]
	if !ok {
		t = &memTable{rows: map[string]*memRow{}}
		m.tables[name] = t
	}
	return t
}

func (t *memTable) remove(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

// begin locks the backend and returns the named table
func (m *MemoryBackend) begin(ctx context.Context, name string) (*memTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	if m.failure != nil {
		err := m.failure
		m.mu.Unlock()
		return nil, err
	}
	return m.table(name), nil
}

type memoryTable struct {
	backend *MemoryBackend
	name    string
}

func (t *memoryTable) Find(ctx context.Context, dest interface{}, order Order) error {
	tbl, err := t.backend.begin(ctx, t.name)
	if err != nil {
		return err
	}
	defer t.backend.mu.Unlock()

	rows := make([]*memRow, 0, len(tbl.ids))
	for _, id := range tbl.ids {
		rows = append(rows, tbl.rows[id])
	}
	if order == OrderNewestFirst {
		sort.SliceStable(rows, func(i, j int) bool {
			ti, tj := createdAt(rows[i]), createdAt(rows[j])
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return rows[i].seq > rows[j].seq
		})
	}

	list := make([]map[string]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.cols)
	}
	return decode(list, dest)
}

func (t *memoryTable) First(ctx context.Context, id string, dest interface{}) error {
	tbl, err := t.backend.begin(ctx, t.name)
	if err != nil {
		return err
	}
	defer t.backend.mu.Unlock()

	r, ok := tbl.rows[id]
	if !ok {
		return ErrNoRows
	}
	return decode(r.cols, dest)
}

func (t *memoryTable) Insert(ctx context.Context, row interface{}) error {
	cols, err := encode(row)
	if err != nil {
		return err
	}

	tbl, err := t.backend.begin(ctx, t.name)
	if err != nil {
		return err
	}
	defer t.backend.mu.Unlock()

	id := ""
	if raw, ok := cols["id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	if id == "" {
		id = uuid.NewString()
		cols["id"], _ = json.Marshal(id)
	}
	if _, exists := tbl.rows[id]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint \"%s_pkey\"", t.name)
	}

	stamp, _ := json.Marshal(time.Now().UTC())
	if raw, ok := cols["created_at"]; ok && bytes.Equal(raw, zeroTimeJSON) {
		cols["created_at"] = stamp
	}
	if _, ok := cols["updated_at"]; ok {
		cols["updated_at"] = stamp
	}

	t.backend.seq++
	tbl.rows[id] = &memRow{seq: t.backend.seq, cols: cols}
	tbl.ids = append(tbl.ids, id)
	t.backend.touch(t.name, id)
	return decode(cols, row)
}

func (t *memoryTable) Update(ctx context.Context, id string, columns map[string]interface{}, dest interface{}) error {
	encoded := make(map[string]json.RawMessage, len(columns))
	for k, v := range columns {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		encoded[k] = raw
	}

	tbl, err := t.backend.begin(ctx, t.name)
	if err != nil {
		return err
	}
	defer t.backend.mu.Unlock()

	r, ok := tbl.rows[id]
	if !ok {
		return ErrNoRows
	}
	for k, raw := range encoded {
		if k == "id" {
			continue
		}
		r.cols[k] = raw
	}
	if _, ok := r.cols["updated_at"]; ok && len(encoded) > 0 {
		r.cols["updated_at"], _ = json.Marshal(time.Now().UTC())
	}
	t.backend.touch(t.name, id)
	return decode(r.cols, dest)
}

func (t *memoryTable) Delete(ctx context.Context, id string, model interface{}) error {
	tbl, err := t.backend.begin(ctx, t.name)
	if err != nil {
		return err
	}
	defer t.backend.mu.Unlock()

	if _, ok := tbl.rows[id]; !ok {
		return ErrNoRows
	}
	tbl.remove(id)
	t.backend.touch(t.name, id)
	return nil
}

func copyCols(cols map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(cols))
	for k, v := range cols {
		out[k] = v
	}
	return out
}

func createdAt(r *memRow) time.Time {
	var t time.Time
	if raw, ok := r.cols["created_at"]; ok {
		_ = json.Unmarshal(raw, &t)
	}
	return t
}

func encode(row interface{}) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var cols map[string]json.RawMessage
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, fmt.Errorf("row must encode to a JSON object: %w", err)
	}
	return cols, nil
}

func decode(src interface{}, dest interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
