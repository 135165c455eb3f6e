package primary

import "context"

// BookingService defines the primary port for reservations and seat queries.
type BookingService interface {
	// BookFlight admits a customer onto a flight and reports the resolved status.
	BookFlight(ctx context.Context, req BookFlightRequest) (*Booking, error)

	// FlightsOnDate lists flights departing on a YYYY-MM-DD day.
	FlightsOnDate(ctx context.Context, day string) (*Table, error)

	// AvailableSeats reports plane capacity minus seats sold for a flight.
	AvailableSeats(ctx context.Context, flightNumber int) (*Table, error)

	// PassengerCount counts a flight's reservations holding status (W, C, R).
	PassengerCount(ctx context.Context, flightNumber int, status string) (*Table, error)
}

// BookFlightRequest contains parameters for booking a flight.
type BookFlightRequest struct {
	FlightNumber int
	FirstName    string
	LastName     string
}

// Booking is the outcome of an admission.
type Booking struct {
	ReservationID int
	FlightNumber  int
	CustomerID    int
	// Status is the single-letter code (C or W).
	Status string
	// StatusName is the readable form (Confirmed, Waitlisted).
	StatusName string
}

// Table is a tabular read result rendered as text.
type Table struct {
	Columns []string
	Rows    [][]string
}
