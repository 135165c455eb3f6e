// Package sqlstore contains database/sql implementations of repository interfaces.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Gateway implements secondary.QueryGateway over a database handle.
type Gateway struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewGateway creates a new query gateway.
func NewGateway(database *sql.DB, dialect db.Dialect) *Gateway {
	return &Gateway{db: database, dialect: dialect}
}

// ExecWrite runs a write statement and returns the affected row count.
func (g *Gateway) ExecWrite(ctx context.Context, stmt string, args ...any) (int64, error) {
	result, err := g.db.ExecContext(ctx, g.dialect.Rebind(stmt), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute statement: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// ExecRead runs a query and renders every value as text.
func (g *Gateway) ExecRead(ctx context.Context, stmt string, args ...any) (*secondary.ResultSet, error) {
	return readAll(ctx, g.db, g.dialect.Rebind(stmt), args...)
}

func readAll(ctx context.Context, q querier, query string, args ...any) (*secondary.ResultSet, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	set := &secondary.ResultSet{Columns: columns}
	values := make([]textValue, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = string(v)
		}
		set.Rows = append(set.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return set, nil
}

// textValue scans any column value into its text rendering.
type textValue string

// Scan implements sql.Scanner.
func (t *textValue) Scan(src any) error {
	*t = textValue(renderValue(src))
	return nil
}

func renderValue(src any) string {
	switch v := src.(type) {
	case nil:
		return "null"
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprint(src)
}

// insertReturningID runs an INSERT and returns the store-assigned key.
func insertReturningID(ctx context.Context, q querier, dialect db.Dialect, stmt, idColumn string, args ...any) (int, error) {
	if dialect.SupportsReturning() {
		var id int
		err := q.QueryRowContext(ctx, dialect.Rebind(stmt+" RETURNING "+idColumn), args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := q.ExecContext(ctx, dialect.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// Ensure Gateway implements the interface.
var _ secondary.QueryGateway = (*Gateway)(nil)
