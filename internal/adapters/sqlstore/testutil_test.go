// Package sqlstore_test contains integration tests for the database/sql repositories.
//
// Every test database is built from db.GetSchemaSQL() so queries are checked
// against the same reference schema the embedded mode creates.
package sqlstore_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/airops/internal/db"
)

var sqliteDialect = db.Dialect{Driver: db.SQLite}

// setupTestDB creates an in-memory database with the reference schema.
// The pool is pinned to one connection: each new connection to ":memory:"
// would otherwise see its own empty database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPlane inserts a plane and returns its ID.
func seedPlane(t *testing.T, database *sql.DB, seats int) int {
	t.Helper()
	res, err := database.Exec("INSERT INTO Plane (make, model, age, seats) VALUES ('Boeing', '737', 5, ?)", seats)
	if err != nil {
		t.Fatalf("failed to seed plane: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

// seedFlight inserts a flight bound to planeID (0 for none) and returns its number.
func seedFlight(t *testing.T, database *sql.DB, planeID, numSold int, departure string) int {
	t.Helper()
	if departure == "" {
		departure = "2024-06-01 08:30:00"
	}
	res, err := database.Exec(`INSERT INTO Flight (cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport)
		VALUES (100, ?, 0, ?, ?, 'KJFKX', 'KLAXX')`, numSold, departure, departure)
	if err != nil {
		t.Fatalf("failed to seed flight: %v", err)
	}
	fnum, _ := res.LastInsertId()

	if planeID > 0 {
		if _, err := database.Exec("INSERT INTO FlightInfo (flight_id, plane_id) VALUES (?, ?)", fnum, planeID); err != nil {
			t.Fatalf("failed to seed flight info: %v", err)
		}
	}
	return int(fnum)
}

// seedCustomer inserts a customer and returns its ID.
func seedCustomer(t *testing.T, database *sql.DB, first, last string) int {
	t.Helper()
	res, err := database.Exec("INSERT INTO Customer (fname, lname) VALUES (?, ?)", first, last)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

// seedReservations inserts n reservations of status for a flight.
func seedReservations(t *testing.T, database *sql.DB, customerID, fnum, n int, status string) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := database.Exec("INSERT INTO Reservation (cid, fid, status) VALUES (?, ?, ?)", customerID, fnum, status); err != nil {
			t.Fatalf("failed to seed reservation: %v", err)
		}
	}
}

func countStatus(t *testing.T, database *sql.DB, fnum int, status string) int {
	t.Helper()
	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM Reservation WHERE fid = ? AND status = ?", fnum, status).Scan(&n); err != nil {
		t.Fatalf("failed to count reservations: %v", err)
	}
	return n
}
