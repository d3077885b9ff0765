// Package storetest provides an in-memory store.TxRunner whose answers are
// scripted per statement, for service and repo unit tests.
package storetest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"meanin/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Call is one recorded statement
type Call struct {
	SQL  string
	Args []any
}

// Handler answers a statement with result rows or an error.
// For Exec the number of rows is reported as RowsAffected.
type Handler func(sql string, args []any) ([][]any, error)

// DB routes statements to the first handler whose key is contained in the SQL.
// Unrouted reads return no rows; unrouted writes succeed.
type DB struct {
	mu     sync.Mutex
	routes []route
	calls  []Call
	// TxErr, when set, fails Tx before fn runs
	TxErr error
}

type route struct {
	key string
	h   Handler
}

// New returns an empty DB
func New() *DB { return &DB{} }

// On registers h for statements containing key
func (d *DB) On(key string, h Handler) *DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routes = append(d.routes, route{key: key, h: h})
	return d
}

// Returns answers statements containing key with rows
func (d *DB) Returns(key string, rows ...[]any) *DB {
	return d.On(key, func(string, []any) ([][]any, error) { return rows, nil })
}

// Fails answers statements containing key with err
func (d *DB) Fails(key string, err error) *DB {
	return d.On(key, func(string, []any) ([][]any, error) { return nil, err })
}

// Calls returns the statements seen so far
func (d *DB) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// Count reports how many statements contained key
func (d *DB) Count(key string) int {
	n := 0
	for _, c := range d.Calls() {
		if strings.Contains(c.SQL, key) {
			n++
		}
	}
	return n
}

func (d *DB) answer(sql string, args []any) ([][]any, error) {
	d.mu.Lock()
	d.calls = append(d.calls, Call{SQL: sql, Args: args})
	var h Handler
	for _, r := range d.routes {
		if strings.Contains(sql, r.key) {
			h = r.h
			break
		}
	}
	d.mu.Unlock()
	if h == nil {
		return nil, nil
	}
	return h(sql, args)
}

// Exec implements store.RowQuerier
func (d *DB) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	rows, err := d.answer(sql, args)
	if err != nil {
		return nil, err
	}
	return tag(len(rows)), nil
}

// Query implements store.RowQuerier
func (d *DB) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	rows, err := d.answer(sql, args)
	if err != nil {
		return nil, err
	}
	return &Rows{data: rows, i: -1}, nil
}

// QueryRow implements store.RowQuerier; no rows scans as pgx.ErrNoRows
func (d *DB) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	rows, err := d.answer(sql, args)
	if err != nil {
		return errRow{err}
	}
	if len(rows) == 0 {
		return errRow{pgx.ErrNoRows}
	}
	return valueRow(rows[0])
}

// Tx runs fn against the same DB
func (d *DB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	if d.TxErr != nil {
		return d.TxErr
	}
	return fn(d)
}

type tag int64

func (t tag) String() string      { return fmt.Sprintf("FAKE %d", int64(t)) }
func (t tag) RowsAffected() int64 { return int64(t) }

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }

type valueRow []any

func (v valueRow) Scan(dest ...any) error { return assign(v, dest) }

// Rows is a scripted result set
type Rows struct {
	data [][]any
	i    int
}

// Next advances the cursor
func (r *Rows) Next() bool { r.i++; return r.i < len(r.data) }

// Scan copies the current row into dest
func (r *Rows) Scan(dest ...any) error { return assign(r.data[r.i], dest) }

// Err is always nil
func (r *Rows) Err() error { return nil }

// Close is a no-op
func (r *Rows) Close() {}

// Columns is unknown for scripted rows
func (r *Rows) Columns() []string { return nil }

// assign sets each *T in dest from the matching value. nil zeroes the target;
// a T value fills a **T target.
func assign(vals []any, dest []any) error {
	if len(vals) < len(dest) {
		return fmt.Errorf("storetest: row has %d values, scan wants %d", len(vals), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("storetest: dest %d is not a pointer", i)
		}
		target := dv.Elem()
		if vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(vals[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case target.Kind() == reflect.Pointer && v.Type().AssignableTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v)
			target.Set(p)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		default:
			return fmt.Errorf("storetest: cannot scan %T into %s", vals[i], target.Type())
		}
	}
	return nil
}
