package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Driver names the relational store behind the console.
type Driver string

const (
	Postgres Driver = "postgres"
	MySQL    Driver = "mysql"
	SQLite   Driver = "sqlite"
)

// ParseDriver maps a configured driver name onto a Driver.
func ParseDriver(name string) (Driver, error) {
	switch d := Driver(strings.ToLower(name)); d {
	case Postgres, MySQL, SQLite:
		return d, nil
	case "pgx", "postgresql":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported driver %q (want postgres, mysql or sqlite)", name)
}

// Dialect captures the SQL differences between the supported stores.
// Statements in this module are written with '?' placeholders and rebound here.
type Dialect struct {
	Driver Driver
}

// Rebind rewrites '?' placeholders into the driver's native form.
// Placeholders inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d.Driver != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// LockClause returns the row-locking suffix for a SELECT whose driving
// table is aliased as alias. SQLite has none; its writers are serialised by
// the immediate transaction lock instead.
func (d Dialect) LockClause(alias string) string {
	switch d.Driver {
	case Postgres:
		return " FOR UPDATE OF " + alias
	case MySQL:
		return " FOR UPDATE"
	}
	return ""
}

// SupportsReturning reports whether INSERT ... RETURNING is available.
func (d Dialect) SupportsReturning() bool {
	return d.Driver == Postgres || d.Driver == SQLite
}

// YearOf returns an expression extracting the calendar year of col.
func (d Dialect) YearOf(col string) string {
	switch d.Driver {
	case MySQL:
		return "YEAR(" + col + ")"
	case SQLite:
		return "CAST(strftime('%Y', " + col + ") AS INTEGER)"
	}
	return "extract(year from " + col + ")"
}
