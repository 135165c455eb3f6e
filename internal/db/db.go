// Package db opens the relational store and owns the dialect differences
// between PostgreSQL, MySQL and the embedded SQLite mode.
package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net"
	"net/url"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Options describes how to reach the store.
type Options struct {
	Driver   Driver
	Host     string
	Port     string
	DBName   string
	User     string
	Password string
}

// PostgresDSN builds the connection URL for PostgreSQL.
func PostgresDSN(opts Options) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(opts.Host, opts.Port),
		Path:   "/" + opts.DBName,
	}
	if opts.Password != "" {
		u.User = url.UserPassword(opts.User, opts.Password)
	} else {
		u.User = url.User(opts.User)
	}
	return u.String()
}

// MySQLConfig builds the driver configuration for MySQL.
func MySQLConfig(opts Options) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = opts.User
	cfg.Passwd = opts.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(opts.Host, opts.Port)
	cfg.DBName = opts.DBName
	cfg.ParseTime = true
	return cfg
}

// SQLiteDSN builds the DSN for a database file. Transactions take the write
// lock at BEGIN so concurrent processes queue instead of deadlocking.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000"
}

// Open connects to the store described by opts and verifies the connection.
// The returned handle is limited to one connection: a console session runs
// one logical operation at a time.
func Open(ctx context.Context, opts Options) (*sql.DB, Dialect, error) {
	dialect := Dialect{Driver: opts.Driver}

	var (
		database *sql.DB
		err      error
	)
	switch opts.Driver {
	case Postgres:
		var cfg *pgx.ConnConfig
		cfg, err = pgx.ParseConfig(PostgresDSN(opts))
		if err != nil {
			return nil, dialect, fmt.Errorf("failed to parse postgres config: %w", err)
		}
		database = stdlib.OpenDB(*cfg)
	case MySQL:
		var connector driver.Connector
		connector, err = mysql.NewConnector(MySQLConfig(opts))
		if err != nil {
			return nil, dialect, fmt.Errorf("failed to configure mysql: %w", err)
		}
		database = sql.OpenDB(connector)
	case SQLite:
		database, err = sql.Open("sqlite3", SQLiteDSN(opts.DBName+".db"))
		if err != nil {
			return nil, dialect, fmt.Errorf("failed to open database: %w", err)
		}
	default:
		return nil, dialect, fmt.Errorf("unsupported driver %q", opts.Driver)
	}

	database.SetMaxOpenConns(1)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, dialect, fmt.Errorf("failed to connect to %s database %s: %w", opts.Driver, opts.DBName, err)
	}

	return database, dialect, nil
}
