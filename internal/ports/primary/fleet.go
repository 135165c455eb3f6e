package primary

import "context"

// FleetService defines the primary port for append-only fleet records.
type FleetService interface {
	// AddPlane validates and inserts a plane.
	AddPlane(ctx context.Context, req AddPlaneRequest) (*Plane, error)

	// GetPlane retrieves a plane by ID.
	GetPlane(ctx context.Context, id int) (*Plane, error)

	// AddPilot validates and inserts a pilot.
	AddPilot(ctx context.Context, req AddPilotRequest) (*Pilot, error)

	// AddFlight validates and inserts a flight with an optional assignment.
	AddFlight(ctx context.Context, req AddFlightRequest) (*Flight, error)

	// AddTechnician validates and inserts a technician.
	AddTechnician(ctx context.Context, req AddTechnicianRequest) (*Technician, error)
}

// AddPlaneRequest contains parameters for adding a plane.
type AddPlaneRequest struct {
	Make  string
	Model string
	Age   int
	Seats int
}

// Plane represents a plane at the port boundary.
type Plane struct {
	ID    int
	Make  string
	Model string
	Age   int
	Seats int
}

// AddPilotRequest contains parameters for adding a pilot.
type AddPilotRequest struct {
	FullName    string
	Nationality string
}

// Pilot represents a pilot at the port boundary.
type Pilot struct {
	ID          int
	FullName    string
	Nationality string
}

// AddTechnicianRequest contains parameters for adding a technician.
type AddTechnicianRequest struct {
	FullName string
}

// Technician represents a technician at the port boundary.
type Technician struct {
	ID       int
	FullName string
}

// AddFlightRequest contains parameters for adding a flight.
// Airport codes may be in any case; they are stored upper-cased.
type AddFlightRequest struct {
	Cost             int
	NumSold          int
	NumStops         int
	DepartureDate    string
	ArrivalDate      string
	ArrivalAirport   string
	DepartureAirport string

	// PlaneID and PilotID are optional; zero means unassigned.
	PlaneID int
	PilotID int
}

// Flight represents a flight at the port boundary.
type Flight struct {
	Number           int
	Cost             int
	NumSold          int
	NumStops         int
	DepartureDate    string
	ArrivalDate      string
	ArrivalAirport   string
	DepartureAirport string
}
