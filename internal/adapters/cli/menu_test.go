package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/airops/internal/ports/primary"
)

// mockFleetService implements primary.FleetService for testing
type mockFleetService struct {
	addPlaneFn  func(ctx context.Context, req primary.AddPlaneRequest) (*primary.Plane, error)
	addFlightFn func(ctx context.Context, req primary.AddFlightRequest) (*primary.Flight, error)

	// Track calls for verification
	lastPlaneReq  primary.AddPlaneRequest
	lastPilotReq  primary.AddPilotRequest
	lastFlightReq primary.AddFlightRequest
	lastTechReq   primary.AddTechnicianRequest
}

func (m *mockFleetService) AddPlane(ctx context.Context, req primary.AddPlaneRequest) (*primary.Plane, error) {
	m.lastPlaneReq = req
	if m.addPlaneFn != nil {
		return m.addPlaneFn(ctx, req)
	}
	return &primary.Plane{ID: 1, Make: req.Make, Model: req.Model, Age: req.Age, Seats: req.Seats}, nil
}

func (m *mockFleetService) GetPlane(ctx context.Context, id int) (*primary.Plane, error) {
	return nil, errors.New("not implemented in adapter")
}

func (m *mockFleetService) AddPilot(ctx context.Context, req primary.AddPilotRequest) (*primary.Pilot, error) {
	m.lastPilotReq = req
	return &primary.Pilot{ID: 1, FullName: req.FullName, Nationality: req.Nationality}, nil
}

func (m *mockFleetService) AddFlight(ctx context.Context, req primary.AddFlightRequest) (*primary.Flight, error) {
	m.lastFlightReq = req
	if m.addFlightFn != nil {
		return m.addFlightFn(ctx, req)
	}
	return &primary.Flight{Number: 5, ArrivalAirport: strings.ToUpper(req.ArrivalAirport), DepartureAirport: strings.ToUpper(req.DepartureAirport)}, nil
}

func (m *mockFleetService) AddTechnician(ctx context.Context, req primary.AddTechnicianRequest) (*primary.Technician, error) {
	m.lastTechReq = req
	return &primary.Technician{ID: 1, FullName: req.FullName}, nil
}

// mockBookingService implements primary.BookingService for testing
type mockBookingService struct {
	bookFlightFn    func(ctx context.Context, req primary.BookFlightRequest) (*primary.Booking, error)
	flightsOnDateFn func(ctx context.Context, day string) (*primary.Table, error)
	seatsTable      *primary.Table

	lastBookReq   primary.BookFlightRequest
	lastSeatsFnum int
	lastStatus    string
}

func (m *mockBookingService) BookFlight(ctx context.Context, req primary.BookFlightRequest) (*primary.Booking, error) {
	m.lastBookReq = req
	if m.bookFlightFn != nil {
		return m.bookFlightFn(ctx, req)
	}
	return &primary.Booking{ReservationID: 11, FlightNumber: req.FlightNumber, Status: "C", StatusName: "Confirmed"}, nil
}

func (m *mockBookingService) FlightsOnDate(ctx context.Context, day string) (*primary.Table, error) {
	if m.flightsOnDateFn != nil {
		return m.flightsOnDateFn(ctx, day)
	}
	return &primary.Table{Columns: []string{"fnum"}}, nil
}

func (m *mockBookingService) AvailableSeats(ctx context.Context, flightNumber int) (*primary.Table, error) {
	m.lastSeatsFnum = flightNumber
	if m.seatsTable != nil {
		return m.seatsTable, nil
	}
	return &primary.Table{Columns: []string{"Available Seats"}, Rows: [][]string{{"42"}}}, nil
}

func (m *mockBookingService) PassengerCount(ctx context.Context, flightNumber int, status string) (*primary.Table, error) {
	m.lastStatus = status
	return &primary.Table{Columns: []string{"passengers"}, Rows: [][]string{{"3"}}}, nil
}

// mockReportService implements primary.ReportService for testing
type mockReportService struct {
	browseErr   error
	lastBrowsed string
}

func (m *mockReportService) RepairsPerPlane(ctx context.Context) (*primary.Table, error) {
	return &primary.Table{Columns: []string{"plane_id", "n"}, Rows: [][]string{{"2", "3"}}}, nil
}

func (m *mockReportService) RepairsPerYear(ctx context.Context) (*primary.Table, error) {
	return &primary.Table{Columns: []string{"year", "total"}, Rows: [][]string{{"2023", "1"}}}, nil
}

func (m *mockReportService) BrowseTable(ctx context.Context, table string) (*primary.Table, error) {
	m.lastBrowsed = table
	if m.browseErr != nil {
		return nil, m.browseErr
	}
	return &primary.Table{Columns: []string{"id"}, Rows: [][]string{{"1"}, {"2"}}}, nil
}

type menuFixture struct {
	menu    *Menu
	out     *bytes.Buffer
	fleet   *mockFleetService
	booking *mockBookingService
	reports *mockReportService
}

func newTestMenu(lines ...string) menuFixture {
	f := menuFixture{
		out:     &bytes.Buffer{},
		fleet:   &mockFleetService{},
		booking: &mockBookingService{},
		reports: &mockReportService{},
	}
	input := strings.Join(lines, "\n") + "\n"
	f.menu = NewMenu(strings.NewReader(input), f.out, f.fleet, f.booking, f.reports)
	return f
}

func TestMenu_QuitEndsSession(t *testing.T) {
	f := newTestMenu("10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected clean quit, got %v", err)
	}
	if !strings.Contains(f.out.String(), "MAIN MENU") {
		t.Error("expected menu to be printed")
	}
}

func TestMenu_EndOfInputEndsSession(t *testing.T) {
	f := newTestMenu("11", "abc")

	err := f.menu.Run(context.Background())
	if !errors.Is(err, primary.ErrInputExhausted) {
		t.Fatalf("expected ErrInputExhausted, got %v", err)
	}
	if got := strings.Count(f.out.String(), "Try again"); got != 2 {
		t.Errorf("expected 2 re-prompts, got %d", got)
	}
}

func TestMenu_AddPlane(t *testing.T) {
	f := newTestMenu("1", "Boeing", "737", "-1", "5", "600", "180", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := primary.AddPlaneRequest{Make: "Boeing", Model: "737", Age: 5, Seats: 180}
	if f.fleet.lastPlaneReq != want {
		t.Errorf("expected %+v, got %+v", want, f.fleet.lastPlaneReq)
	}
	if !strings.Contains(f.out.String(), "Added plane 1: Boeing 737") {
		t.Errorf("expected confirmation, got:\n%s", f.out.String())
	}
}

func TestMenu_OperationErrorDoesNotEndSession(t *testing.T) {
	f := newTestMenu("1", "Boeing", "737", "5", "180", "4", "Grace Hopper", "10")
	f.fleet.addPlaneFn = func(ctx context.Context, req primary.AddPlaneRequest) (*primary.Plane, error) {
		return nil, fmt.Errorf("%w: constraint violated", primary.ErrWriteFailed)
	}

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected session to continue, got %v", err)
	}
	if !strings.Contains(f.out.String(), "write failed: constraint violated") {
		t.Errorf("expected error report, got:\n%s", f.out.String())
	}
	if f.fleet.lastTechReq.FullName != "Grace Hopper" {
		t.Error("expected the next operation to run after the failure")
	}
}

func TestMenu_AddFlightWithAssignment(t *testing.T) {
	f := newTestMenu("3", "0", "250", "10", "1", "2024-06-01", "2024-06-02", "kjfkx", "KLAXX", "y", "4", "2", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req := f.fleet.lastFlightReq
	if req.Cost != 250 || req.NumSold != 10 || req.NumStops != 1 {
		t.Errorf("unexpected numbers: %+v", req)
	}
	if req.PlaneID != 4 || req.PilotID != 2 {
		t.Errorf("expected plane 4 pilot 2, got %+v", req)
	}
	if !strings.Contains(f.out.String(), "Added flight 5: KLAXX → KJFKX") {
		t.Errorf("expected confirmation, got:\n%s", f.out.String())
	}
}

func TestMenu_AddFlightWithoutAssignment(t *testing.T) {
	f := newTestMenu("3", "250", "0", "0", "2024-06-01", "2024-06-02", "KJFKX", "KLAXX", "n", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.fleet.lastFlightReq.PlaneID != 0 {
		t.Errorf("expected no plane, got %d", f.fleet.lastFlightReq.PlaneID)
	}
}

func TestMenu_BookFlightKnownNumber(t *testing.T) {
	f := newTestMenu("5", "Ada", "Lovelace", "Y", "7", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := primary.BookFlightRequest{FlightNumber: 7, FirstName: "Ada", LastName: "Lovelace"}
	if f.booking.lastBookReq != want {
		t.Errorf("expected %+v, got %+v", want, f.booking.lastBookReq)
	}
	if !strings.Contains(f.out.String(), "Reservation 11 on flight 7: Confirmed") {
		t.Errorf("expected resolved status, got:\n%s", f.out.String())
	}
}

func TestMenu_BookFlightByDate(t *testing.T) {
	f := newTestMenu("5", "Ada", "Lovelace", "n", "2024-06-01", "3", "10")
	f.booking.flightsOnDateFn = func(ctx context.Context, day string) (*primary.Table, error) {
		return &primary.Table{Columns: []string{"fnum", "cost"}, Rows: [][]string{{"3", "100"}}}, nil
	}
	f.booking.bookFlightFn = func(ctx context.Context, req primary.BookFlightRequest) (*primary.Booking, error) {
		return &primary.Booking{ReservationID: 12, FlightNumber: req.FlightNumber, Status: "W", StatusName: "Waitlisted"}, nil
	}

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.booking.lastBookReq.FlightNumber != 3 {
		t.Errorf("expected flight 3, got %d", f.booking.lastBookReq.FlightNumber)
	}
	out := f.out.String()
	if !strings.Contains(out, "fnum\tcost\n3\t100\n") {
		t.Errorf("expected flight listing, got:\n%s", out)
	}
	if !strings.Contains(out, "Reservation 12 on flight 3: Waitlisted") {
		t.Errorf("expected waitlisted status, got:\n%s", out)
	}
}

func TestMenu_BookFlightNoFlightsOnDate(t *testing.T) {
	f := newTestMenu("5", "Ada", "Lovelace", "n", "2024-06-01", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(f.out.String(), "no flights depart on 2024-06-01") {
		t.Errorf("expected not-found report, got:\n%s", f.out.String())
	}
	if f.booking.lastBookReq.FlightNumber != 0 {
		t.Error("expected no booking attempt")
	}
}

func TestMenu_AvailableSeats(t *testing.T) {
	f := newTestMenu("6", "y", "2", "6", "y", "3", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(f.out.String(), "Available Seats\n42\n") {
		t.Errorf("expected seat count, got:\n%s", f.out.String())
	}
	if f.booking.lastSeatsFnum != 3 {
		t.Errorf("expected last flight 3, got %d", f.booking.lastSeatsFnum)
	}
}

func TestMenu_AvailableSeatsNoPlane(t *testing.T) {
	f := newTestMenu("6", "y", "2", "10")
	f.booking.seatsTable = &primary.Table{Columns: []string{"Available Seats"}}

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(f.out.String(), "Flight 2 has no plane assigned") {
		t.Errorf("expected no-plane notice, got:\n%s", f.out.String())
	}
}

func TestMenu_PassengerCount(t *testing.T) {
	f := newTestMenu("9", "Y", "2", "Q", "w", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.booking.lastStatus != "w" {
		t.Errorf("expected status 'w', got %q", f.booking.lastStatus)
	}
	if !strings.Contains(f.out.String(), "passengers\n3\n") {
		t.Errorf("expected count, got:\n%s", f.out.String())
	}
}

func TestMenu_Browse(t *testing.T) {
	f := newTestMenu("0", "6", "5", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.reports.lastBrowsed != "Reservation" {
		t.Errorf("expected Reservation, got %q", f.reports.lastBrowsed)
	}
	if !strings.Contains(f.out.String(), "2 row(s)") {
		t.Errorf("expected row count, got:\n%s", f.out.String())
	}
}

func TestMenu_Reports(t *testing.T) {
	f := newTestMenu("7", "8", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "plane_id\tn\n2\t3\n") || !strings.Contains(out, "year\ttotal\n2023\t1\n") {
		t.Errorf("expected both reports, got:\n%s", out)
	}
}

func TestMenu_AddPilotAndTechnician(t *testing.T) {
	f := newTestMenu("2", "Amelia Earhart", "", "4", "", "Grace Hopper", "10")

	if err := f.menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.fleet.lastPilotReq.FullName != "Amelia Earhart" || f.fleet.lastPilotReq.Nationality != "" {
		t.Errorf("unexpected pilot request %+v", f.fleet.lastPilotReq)
	}
	if f.fleet.lastTechReq.FullName != "Grace Hopper" {
		t.Errorf("unexpected technician request %+v", f.fleet.lastTechReq)
	}
}
