package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/airops/internal/core/reservation"
	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

// ReservationRepository implements secondary.ReservationRepository.
type ReservationRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(database *sql.DB, dialect db.Dialect) *ReservationRepository {
	return &ReservationRepository{db: database, dialect: dialect}
}

// Admit books a customer onto a flight inside one transaction:
// resolve the customer, lock the flight row, decide from seats and
// num_sold, take the seat when confirmed, insert the reservation.
// Concurrent admissions serialise on the flight row lock, so two callers
// can never both observe the last seat.
func (r *ReservationRepository) Admit(ctx context.Context, req secondary.AdmissionRequest) (*secondary.AdmissionRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	customerID, err := r.resolveCustomer(ctx, tx, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	state := reservation.Next(reservation.StateStart, reservation.Event{Resolved: true})

	seats, numSold, err := r.lockCapacity(ctx, tx, req.FlightNumber)
	if err != nil {
		return nil, err
	}

	state = reservation.Next(state, reservation.Event{Seats: seats, NumSold: numSold})
	status, ok := reservation.StatusFor(state)
	if !ok {
		return nil, fmt.Errorf("admission ended in state %s", state)
	}

	if status == reservation.StatusConfirmed {
		_, err = tx.ExecContext(ctx,
			r.dialect.Rebind("UPDATE Flight SET num_sold = num_sold + 1 WHERE fnum = ?"),
			req.FlightNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to take seat: %w", err)
		}
	}

	rnum, err := insertReturningID(ctx, tx, r.dialect,
		"INSERT INTO Reservation (cid, fid, status) VALUES (?, ?, ?)", "rnum",
		customerID, req.FlightNumber, string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return &secondary.AdmissionRecord{
		ReservationID: rnum,
		CustomerID:    customerID,
		FlightNumber:  req.FlightNumber,
		Status:        status,
	}, nil
}

// resolveCustomer finds the single customer with the given name.
func (r *ReservationRepository) resolveCustomer(ctx context.Context, tx *sql.Tx, first, last string) (int, error) {
	rows, err := tx.QueryContext(ctx,
		r.dialect.Rebind("SELECT id FROM Customer WHERE fname = ? AND lname = ? LIMIT 2"),
		first, last,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to look up customer: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to look up customer: %w", err)
	}

	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("no customer named %s %s: %w", first, last, secondary.ErrCustomerNotResolved)
	case 1:
		return ids[0], nil
	}
	return 0, fmt.Errorf("several customers named %s %s: %w", first, last, secondary.ErrCustomerNotResolved)
}

// lockCapacity locks the flight row and reads the capacity inputs.
// A flight without a plane association has no known capacity and reads as
// zero seats.
func (r *ReservationRepository) lockCapacity(ctx context.Context, tx *sql.Tx, fnum int) (seats, numSold int, err error) {
	var planeSeats sql.NullInt64

	query := `SELECT F.num_sold, P.seats
		FROM Flight F
		LEFT JOIN FlightInfo I ON I.flight_id = F.fnum
		LEFT JOIN Plane P ON P.id = I.plane_id
		WHERE F.fnum = ?
		ORDER BY I.fiid
		LIMIT 1` + r.dialect.LockClause("F")

	err = tx.QueryRowContext(ctx, r.dialect.Rebind(query), fnum).Scan(&numSold, &planeSeats)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("flight %d: %w", fnum, secondary.ErrFlightNotFound)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read flight capacity: %w", err)
	}

	return int(planeSeats.Int64), numSold, nil
}

// CountByStatus counts a flight's reservations holding status.
func (r *ReservationRepository) CountByStatus(ctx context.Context, fnum int, status reservation.Status) (*secondary.ResultSet, error) {
	set, err := readAll(ctx, r.db,
		r.dialect.Rebind(`SELECT COUNT(*) AS passengers
		 FROM Flight F, Reservation R
		 WHERE F.fnum = ? AND R.status = ? AND F.fnum = R.fid`),
		fnum, string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count passengers: %w", err)
	}
	return set, nil
}

// Ensure ReservationRepository implements the interface.
var _ secondary.ReservationRepository = (*ReservationRepository)(nil)
