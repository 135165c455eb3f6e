package app

import (
	"context"
	"errors"

	"github.com/example/airops/internal/core/reservation"
	"github.com/example/airops/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockPlaneRepository implements secondary.PlaneRepository for testing.
type mockPlaneRepository struct {
	planes    map[int]*secondary.PlaneRecord
	nextID    int
	createErr error
}

func newMockPlaneRepository() *mockPlaneRepository {
	return &mockPlaneRepository{planes: make(map[int]*secondary.PlaneRecord), nextID: 1}
}

func (m *mockPlaneRepository) Create(ctx context.Context, plane *secondary.PlaneRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	plane.ID = m.nextID
	m.nextID++
	stored := *plane
	m.planes[plane.ID] = &stored
	return nil
}

func (m *mockPlaneRepository) GetByID(ctx context.Context, id int) (*secondary.PlaneRecord, error) {
	if plane, ok := m.planes[id]; ok {
		return plane, nil
	}
	return nil, secondary.ErrPlaneNotFound
}

// mockPilotRepository implements secondary.PilotRepository for testing.
type mockPilotRepository struct {
	created   []*secondary.PilotRecord
	createErr error
}

func (m *mockPilotRepository) Create(ctx context.Context, pilot *secondary.PilotRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	pilot.ID = len(m.created) + 1
	m.created = append(m.created, pilot)
	return nil
}

// mockTechnicianRepository implements secondary.TechnicianRepository for testing.
type mockTechnicianRepository struct {
	created []*secondary.TechnicianRecord
}

func (m *mockTechnicianRepository) Create(ctx context.Context, tech *secondary.TechnicianRecord) error {
	tech.ID = len(m.created) + 1
	m.created = append(m.created, tech)
	return nil
}

// mockFlightRepository implements secondary.FlightRepository for testing.
type mockFlightRepository struct {
	created     []*secondary.FlightRecord
	assignments []*secondary.FlightAssignment
	createErr   error
	listed      string
	result      *secondary.ResultSet
	readErr     error
}

func (m *mockFlightRepository) Create(ctx context.Context, flight *secondary.FlightRecord, assignment *secondary.FlightAssignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	flight.Number = len(m.created) + 1
	m.created = append(m.created, flight)
	m.assignments = append(m.assignments, assignment)
	return nil
}

func (m *mockFlightRepository) GetByNumber(ctx context.Context, fnum int) (*secondary.FlightRecord, error) {
	for _, f := range m.created {
		if f.Number == fnum {
			return f, nil
		}
	}
	return nil, secondary.ErrFlightNotFound
}

func (m *mockFlightRepository) ListDepartingOn(ctx context.Context, day string) (*secondary.ResultSet, error) {
	m.listed = day
	return m.result, m.readErr
}

func (m *mockFlightRepository) AvailableSeats(ctx context.Context, fnum int) (*secondary.ResultSet, error) {
	return m.result, m.readErr
}

// mockReservationRepository implements secondary.ReservationRepository for testing.
type mockReservationRepository struct {
	admitted    []secondary.AdmissionRequest
	status      reservation.Status
	admitErr    error
	countStatus reservation.Status
	result      *secondary.ResultSet
}

func (m *mockReservationRepository) Admit(ctx context.Context, req secondary.AdmissionRequest) (*secondary.AdmissionRecord, error) {
	if m.admitErr != nil {
		return nil, m.admitErr
	}
	m.admitted = append(m.admitted, req)
	return &secondary.AdmissionRecord{
		ReservationID: len(m.admitted),
		CustomerID:    9,
		FlightNumber:  req.FlightNumber,
		Status:        m.status,
	}, nil
}

func (m *mockReservationRepository) CountByStatus(ctx context.Context, fnum int, status reservation.Status) (*secondary.ResultSet, error) {
	m.countStatus = status
	return m.result, nil
}

// mockReportRepository implements secondary.ReportRepository for testing.
type mockReportRepository struct {
	browsed string
	result  *secondary.ResultSet
	err     error
}

func (m *mockReportRepository) RepairsPerPlane(ctx context.Context) (*secondary.ResultSet, error) {
	return m.result, m.err
}

func (m *mockReportRepository) RepairsPerYear(ctx context.Context) (*secondary.ResultSet, error) {
	return m.result, m.err
}

func (m *mockReportRepository) Browse(ctx context.Context, table string) (*secondary.ResultSet, error) {
	m.browsed = table
	return m.result, m.err
}

var errStore = errors.New("connection reset")
