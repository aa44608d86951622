// Package mock provides in-memory stand-ins for the pool interfaces,
// for testing SQL-speaking code without a live database.
//
// Query methods dispatch to Impl funcs; tests script them by branching
// on the SQL text. Every call is recorded in Calls.
package mock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	kpool "github.com/torii-ml/torii/pkg/conn/db/postgres/pool"
)

// SQLCall records one query sent to a mocked Queryer.
type SQLCall struct {
	SQL  string
	Args []interface{}
}

type Pool struct {
	Impl struct {
		Begin   func(ctx context.Context) (kpool.Tx, error)
		BeginTx func(ctx context.Context, txOptions pgx.TxOptions) (kpool.Tx, error)
		Acquire func(ctx context.Context) (kpool.Conn, error)
		Config  func() *pgxpool.Config
		Ping    func(ctx context.Context) error
	}
}

func NewPool() *Pool {
	return &Pool{}
}

var _ kpool.Pool = &Pool{}

func (p *Pool) Begin(ctx context.Context) (kpool.Tx, error) {
	if p.Impl.Begin != nil {
		return p.Impl.Begin(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (p *Pool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (kpool.Tx, error) {
	if p.Impl.BeginTx != nil {
		return p.Impl.BeginTx(ctx, txOptions)
	}
	panic(errors.New("it should not be called"))
}

func (p *Pool) Acquire(ctx context.Context) (kpool.Conn, error) {
	if p.Impl.Acquire != nil {
		return p.Impl.Acquire(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (p *Pool) Config() *pgxpool.Config {
	if p.Impl.Config != nil {
		return p.Impl.Config()
	}
	panic(errors.New("it should not be called"))
}

func (p *Pool) Ping(ctx context.Context) error {
	if p.Impl.Ping != nil {
		return p.Impl.Ping(ctx)
	}
	panic(errors.New("it should not be called"))
}

type Tx struct {
	Impl struct {
		Begin    func(ctx context.Context) (kpool.Tx, error)
		Exec     func(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
		Query    func(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
		QueryRow func(ctx context.Context, sql string, args ...interface{}) pgx.Row

		// Commit and Rollback default to success: most tests only
		// care that they were (or were not) reached.
		Commit   func(ctx context.Context) error
		Rollback func(ctx context.Context) error
	}

	Calls struct {
		Exec     []SQLCall
		Query    []SQLCall
		QueryRow []SQLCall
		Commit   uint
		Rollback uint
	}
}

func NewTx() *Tx {
	return &Tx{}
}

var _ kpool.Tx = &Tx{}

func (tx *Tx) Begin(ctx context.Context) (kpool.Tx, error) {
	if tx.Impl.Begin != nil {
		return tx.Impl.Begin(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (tx *Tx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	tx.Calls.Exec = append(tx.Calls.Exec, SQLCall{SQL: sql, Args: args})
	if tx.Impl.Exec != nil {
		return tx.Impl.Exec(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (tx *Tx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	tx.Calls.Query = append(tx.Calls.Query, SQLCall{SQL: sql, Args: args})
	if tx.Impl.Query != nil {
		return tx.Impl.Query(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (tx *Tx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	tx.Calls.QueryRow = append(tx.Calls.QueryRow, SQLCall{SQL: sql, Args: args})
	if tx.Impl.QueryRow != nil {
		return tx.Impl.QueryRow(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (tx *Tx) Commit(ctx context.Context) error {
	tx.Calls.Commit += 1
	if tx.Impl.Commit != nil {
		return tx.Impl.Commit(ctx)
	}
	return nil
}

func (tx *Tx) Rollback(ctx context.Context) error {
	tx.Calls.Rollback += 1
	if tx.Impl.Rollback != nil {
		return tx.Impl.Rollback(ctx)
	}
	return nil
}

func (tx *Tx) Conn() *pgx.Conn {
	panic(errors.New("it should not be called"))
}

type Conn struct {
	Impl struct {
		Begin    func(ctx context.Context) (kpool.Tx, error)
		BeginTx  func(ctx context.Context, txOptions pgx.TxOptions) (kpool.Tx, error)
		Exec     func(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
		Query    func(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
		QueryRow func(ctx context.Context, sql string, args ...interface{}) pgx.Row
		Ping     func(ctx context.Context) error
	}

	Calls struct {
		Exec     []SQLCall
		Query    []SQLCall
		QueryRow []SQLCall
		Release  uint
	}
}

func NewConn() *Conn {
	return &Conn{}
}

var _ kpool.Conn = &Conn{}

func (c *Conn) Begin(ctx context.Context) (kpool.Tx, error) {
	if c.Impl.Begin != nil {
		return c.Impl.Begin(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (kpool.Tx, error) {
	if c.Impl.BeginTx != nil {
		return c.Impl.BeginTx(ctx, txOptions)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) Release() {
	c.Calls.Release += 1
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	c.Calls.Exec = append(c.Calls.Exec, SQLCall{SQL: sql, Args: args})
	if c.Impl.Exec != nil {
		return c.Impl.Exec(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	c.Calls.Query = append(c.Calls.Query, SQLCall{SQL: sql, Args: args})
	if c.Impl.Query != nil {
		return c.Impl.Query(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	c.Calls.QueryRow = append(c.Calls.QueryRow, SQLCall{SQL: sql, Args: args})
	if c.Impl.QueryRow != nil {
		return c.Impl.QueryRow(ctx, sql, args...)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) Ping(ctx context.Context) error {
	if c.Impl.Ping != nil {
		return c.Impl.Ping(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (c *Conn) Conn() *pgx.Conn {
	panic(errors.New("it should not be called"))
}

// Row is a canned pgx.Row. Scan copies Values into the destinations,
// going through sql.Scanner when the destination implements it.
type Row struct {
	Values []interface{}
	Err    error
}

var _ pgx.Row = Row{}

func (r Row) Scan(dest ...interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.Values))
	}
	for i, d := range dest {
		if err := assign(d, r.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// ErrNoRows is a Row scanning to pgx.ErrNoRows.
func ErrNoRows() Row {
	return Row{Err: pgx.ErrNoRows}
}

// Rows is a canned pgx.Rows over Records.
type Rows struct {
	Records [][]interface{}

	cursor int
	closed bool
}

var _ pgx.Rows = &Rows{}

func (r *Rows) Close() {
	r.closed = true
}

func (r *Rows) Err() error {
	return nil
}

func (r *Rows) CommandTag() pgconn.CommandTag {
	return nil
}

func (r *Rows) FieldDescriptions() []pgproto3.FieldDescription {
	return nil
}

func (r *Rows) Next() bool {
	if r.closed || r.cursor >= len(r.Records) {
		return false
	}
	r.cursor += 1
	return true
}

func (r *Rows) Scan(dest ...interface{}) error {
	if r.cursor == 0 || r.cursor > len(r.Records) {
		return errors.New("scan: no current record")
	}
	return Row{Values: r.Records[r.cursor-1]}.Scan(dest...)
}

func (r *Rows) Values() ([]interface{}, error) {
	if r.cursor == 0 || r.cursor > len(r.Records) {
		return nil, errors.New("no current record")
	}
	return r.Records[r.cursor-1], nil
}

func (r *Rows) RawValues() [][]byte {
	return nil
}

func assign(dest interface{}, value interface{}) error {
	if sc, ok := dest.(sql.Scanner); ok {
		return sc.Scan(value)
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return fmt.Errorf("scan: destination %T is not a pointer", dest)
	}
	ev := dv.Elem()
	if value == nil {
		ev.Set(reflect.Zero(ev.Type()))
		return nil
	}
	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(ev.Type()) {
		ev.Set(vv)
		return nil
	}
	if vv.Type().ConvertibleTo(ev.Type()) {
		ev.Set(vv.Convert(ev.Type()))
		return nil
	}
	return fmt.Errorf("scan: cannot assign %T to %T", value, dest)
}
