package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

const dayLayout = "2006-01-02"

// FlightRepository implements secondary.FlightRepository.
type FlightRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewFlightRepository creates a new flight repository.
func NewFlightRepository(database *sql.DB, dialect db.Dialect) *FlightRepository {
	return &FlightRepository{db: database, dialect: dialect}
}

// Create persists a flight and, when given, its FlightInfo association.
func (r *FlightRepository) Create(ctx context.Context, flight *secondary.FlightRecord, assignment *secondary.FlightAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	fnum, err := insertReturningID(ctx, tx, r.dialect,
		`INSERT INTO Flight (cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`, "fnum",
		flight.Cost, flight.NumSold, flight.NumStops,
		flight.DepartureDate, flight.ArrivalDate,
		flight.ArrivalAirport, flight.DepartureAirport,
	)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}

	if assignment != nil {
		var pilot sql.NullInt64
		if assignment.PilotID > 0 {
			pilot = sql.NullInt64{Int64: int64(assignment.PilotID), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			r.dialect.Rebind("INSERT INTO FlightInfo (flight_id, pilot_id, plane_id) VALUES (?, ?, ?)"),
			fnum, pilot, assignment.PlaneID,
		)
		if err != nil {
			return fmt.Errorf("failed to assign plane %d to flight: %w", assignment.PlaneID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit flight: %w", err)
	}

	flight.Number = fnum
	return nil
}

// GetByNumber retrieves a flight by its flight number.
func (r *FlightRepository) GetByNumber(ctx context.Context, fnum int) (*secondary.FlightRecord, error) {
	var depart, arrive textValue

	record := &secondary.FlightRecord{}
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`SELECT fnum, cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport
		 FROM Flight WHERE fnum = ?`),
		fnum,
	).Scan(&record.Number, &record.Cost, &record.NumSold, &record.NumStops,
		&depart, &arrive, &record.ArrivalAirport, &record.DepartureAirport)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("flight %d: %w", fnum, secondary.ErrFlightNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	record.DepartureDate = string(depart)
	record.ArrivalDate = string(arrive)
	return record, nil
}

// ListDepartingOn lists flights departing on day, matching the date
// component only. The day must be a real calendar date.
func (r *FlightRepository) ListDepartingOn(ctx context.Context, day string) (*secondary.ResultSet, error) {
	start, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil, fmt.Errorf("departure date %q is not a calendar date: %w", day, err)
	}
	next := start.AddDate(0, 0, 1).Format(dayLayout)

	set, err := readAll(ctx, r.db,
		r.dialect.Rebind(`SELECT * FROM Flight
		 WHERE actual_departure_date >= ? AND actual_departure_date < ?
		 ORDER BY actual_departure_date, fnum`),
		start.Format(dayLayout), next,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights on %s: %w", day, err)
	}
	return set, nil
}

// AvailableSeats returns seats minus num_sold for the flight's plane.
// A flight with no plane association yields no rows.
func (r *FlightRepository) AvailableSeats(ctx context.Context, fnum int) (*secondary.ResultSet, error) {
	set, err := readAll(ctx, r.db,
		r.dialect.Rebind(`SELECT (P.seats - F.num_sold) AS "Available Seats"
		 FROM Plane P, Flight F, FlightInfo I
		 WHERE P.id = I.plane_id AND F.fnum = I.flight_id AND F.fnum = ?`),
		fnum,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count available seats: %w", err)
	}
	return set, nil
}

// Ensure FlightRepository implements the interface.
var _ secondary.FlightRepository = (*FlightRepository)(nil)
