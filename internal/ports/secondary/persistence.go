// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives the relational store.
package secondary

import (
	"context"
	"errors"

	"github.com/example/airops/internal/core/reservation"
)

// Sentinel conditions reported by repositories.
var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrPlaneNotFound       = errors.New("plane not found")
	ErrCustomerNotResolved = errors.New("customer not resolved")
)

// QueryGateway is the raw statement capability of the store.
// Statements use '?' placeholders regardless of driver.
type QueryGateway interface {
	// ExecWrite runs an INSERT/UPDATE/DELETE and returns the affected row count.
	ExecWrite(ctx context.Context, stmt string, args ...any) (int64, error)

	// ExecRead runs a query and returns every row rendered as text.
	ExecRead(ctx context.Context, stmt string, args ...any) (*ResultSet, error)
}

// ResultSet is an ordered sequence of rows, each an ordered sequence of
// column values rendered as text. NULL renders as "null".
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// PlaneRepository defines the secondary port for plane persistence.
type PlaneRepository interface {
	// Create persists a new plane and sets its store-assigned ID.
	Create(ctx context.Context, plane *PlaneRecord) error

	// GetByID retrieves a plane by its ID.
	GetByID(ctx context.Context, id int) (*PlaneRecord, error)
}

// PlaneRecord represents a plane as stored in persistence.
type PlaneRecord struct {
	ID    int
	Make  string
	Model string
	Age   int
	Seats int
}

// PilotRepository defines the secondary port for pilot persistence.
type PilotRepository interface {
	Create(ctx context.Context, pilot *PilotRecord) error
}

// PilotRecord represents a pilot as stored in persistence.
type PilotRecord struct {
	ID          int
	FullName    string
	Nationality string
}

// TechnicianRepository defines the secondary port for technician persistence.
type TechnicianRepository interface {
	Create(ctx context.Context, tech *TechnicianRecord) error
}

// TechnicianRecord represents a technician as stored in persistence.
type TechnicianRecord struct {
	ID       int
	FullName string
}

// FlightRepository defines the secondary port for flight persistence.
type FlightRepository interface {
	// Create persists a flight, and its plane/pilot association when one is
	// given, in a single transaction.
	Create(ctx context.Context, flight *FlightRecord, assignment *FlightAssignment) error

	// GetByNumber retrieves a flight by its flight number.
	GetByNumber(ctx context.Context, fnum int) (*FlightRecord, error)

	// ListDepartingOn lists flights whose departure falls on the given
	// calendar day (YYYY-MM-DD), ignoring time of day.
	ListDepartingOn(ctx context.Context, day string) (*ResultSet, error)

	// AvailableSeats returns the plane capacity minus seats sold.
	AvailableSeats(ctx context.Context, fnum int) (*ResultSet, error)
}

// FlightRecord represents a flight as stored in persistence.
type FlightRecord struct {
	Number           int
	Cost             int
	NumSold          int
	NumStops         int
	DepartureDate    string
	ArrivalDate      string
	ArrivalAirport   string
	DepartureAirport string
}

// FlightAssignment binds a flight to the plane and pilot flying it.
type FlightAssignment struct {
	PlaneID int
	PilotID int
}

// ReservationRepository defines the secondary port for reservations.
type ReservationRepository interface {
	// Admit decides Confirmed vs Waitlisted and writes the reservation as
	// one atomic unit. Nothing is written on error.
	Admit(ctx context.Context, req AdmissionRequest) (*AdmissionRecord, error)

	// CountByStatus counts reservations of a flight holding status.
	CountByStatus(ctx context.Context, fnum int, status reservation.Status) (*ResultSet, error)
}

// AdmissionRequest identifies the flight and the customer booking it.
type AdmissionRequest struct {
	FlightNumber int
	FirstName    string
	LastName     string
}

// AdmissionRecord is the reservation written by an admission.
type AdmissionRecord struct {
	ReservationID int
	CustomerID    int
	FlightNumber  int
	Status        reservation.Status
}

// ReportRepository defines the secondary port for read-only reports.
type ReportRepository interface {
	RepairsPerPlane(ctx context.Context) (*ResultSet, error)
	RepairsPerYear(ctx context.Context) (*ResultSet, error)

	// Browse returns every row of one of the browsable tables.
	Browse(ctx context.Context, table string) (*ResultSet, error)
}
