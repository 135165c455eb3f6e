package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaSQL is the reference airline-operations schema for the embedded
// SQLite mode. PostgreSQL and MySQL deployments own their schema; the
// console treats it as a fixed contract and never migrates it.
//
// This is the single source of the schema for tests. Repository tests load it
// via GetSchemaSQL() so a column referenced by a query but missing here fails
// immediately with "no such column".
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS Plane (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	age INTEGER NOT NULL CHECK(age >= 0),
	seats INTEGER NOT NULL CHECK(seats >= 0 AND seats <= 500)
);

CREATE TABLE IF NOT EXISTS Pilot (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fullname TEXT NOT NULL,
	nationality TEXT
);

CREATE TABLE IF NOT EXISTS Technician (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Flight (
	fnum INTEGER PRIMARY KEY AUTOINCREMENT,
	cost INTEGER NOT NULL CHECK(cost > 0),
	num_sold INTEGER NOT NULL CHECK(num_sold >= 0),
	num_stops INTEGER NOT NULL CHECK(num_stops >= 0),
	actual_departure_date DATE NOT NULL,
	actual_arrival_date DATE NOT NULL,
	arrival_airport TEXT NOT NULL,
	departure_airport TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Customer (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fname TEXT NOT NULL,
	lname TEXT NOT NULL,
	gtype TEXT,
	dob DATE,
	address TEXT,
	phone TEXT,
	zipcode TEXT
);

CREATE TABLE IF NOT EXISTS Reservation (
	rnum INTEGER PRIMARY KEY AUTOINCREMENT,
	cid INTEGER NOT NULL,
	fid INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('W', 'C', 'R')),
	FOREIGN KEY (cid) REFERENCES Customer(id),
	FOREIGN KEY (fid) REFERENCES Flight(fnum)
);

CREATE TABLE IF NOT EXISTS FlightInfo (
	fiid INTEGER PRIMARY KEY AUTOINCREMENT,
	flight_id INTEGER NOT NULL,
	pilot_id INTEGER,
	plane_id INTEGER NOT NULL,
	FOREIGN KEY (flight_id) REFERENCES Flight(fnum),
	FOREIGN KEY (pilot_id) REFERENCES Pilot(id),
	FOREIGN KEY (plane_id) REFERENCES Plane(id)
);

CREATE TABLE IF NOT EXISTS Repairs (
	rid INTEGER PRIMARY KEY AUTOINCREMENT,
	repair_date DATE NOT NULL,
	repair_code TEXT,
	pilot_id INTEGER,
	plane_id INTEGER NOT NULL,
	FOREIGN KEY (pilot_id) REFERENCES Pilot(id),
	FOREIGN KEY (plane_id) REFERENCES Plane(id)
);

CREATE INDEX IF NOT EXISTS idx_flightinfo_flight ON FlightInfo(flight_id);
CREATE INDEX IF NOT EXISTS idx_reservation_fid ON Reservation(fid);
CREATE INDEX IF NOT EXISTS idx_customer_name ON Customer(fname, lname);
`

// InitSchema creates the reference schema when the store is SQLite.
// Other drivers are rejected: their schema is managed outside the console.
func InitSchema(ctx context.Context, database *sql.DB, dialect Dialect) error {
	if dialect.Driver != SQLite {
		return fmt.Errorf("schema initialisation is only supported for sqlite, not %s", dialect.Driver)
	}

	if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
