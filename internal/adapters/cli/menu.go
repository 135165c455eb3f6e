package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/ports/primary"
)

// Menu choices. The numbers are part of the operator contract.
const (
	ChoiceBrowse = iota
	ChoiceAddPlane
	ChoiceAddPilot
	ChoiceAddFlight
	ChoiceAddTechnician
	ChoiceBookFlight
	ChoiceAvailableSeats
	ChoiceRepairsPerPlane
	ChoiceRepairsPerYear
	ChoicePassengerCount
	ChoiceQuit
)

const menuText = `
MAIN MENU
---------
0. Browse tables
1. Add Plane
2. Add Pilot
3. Add Flight
4. Add Technician
5. Book Flight
6. List number of available seats for a given flight
7. List total number of repairs per plane in descending order
8. List total number of repairs per year in ascending order
9. Find total number of passengers with a given status
10. < EXIT
`

// Menu drives the operator session over the application services.
type Menu struct {
	console *Console
	out     io.Writer
	fleet   primary.FleetService
	booking primary.BookingService
	reports primary.ReportService
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(
	in io.Reader,
	out io.Writer,
	fleet primary.FleetService,
	booking primary.BookingService,
	reports primary.ReportService,
) *Menu {
	return &Menu{
		console: NewConsole(in, out),
		out:     out,
		fleet:   fleet,
		booking: booking,
		reports: reports,
	}
}

// Run loops over menu choices until the operator quits or input ends.
// Per-operation failures are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.console.ReadInt("Please make your choice:", validate.Between(ChoiceBrowse, ChoiceQuit))
		if err != nil {
			return err
		}
		if choice == ChoiceQuit {
			return nil
		}

		if err := m.Dispatch(ctx, choice); err != nil {
			if errors.Is(err, primary.ErrInputExhausted) {
				return err
			}
			m.console.Error(err)
		}
	}
}

// Dispatch runs a single menu operation.
func (m *Menu) Dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ChoiceBrowse:
		return m.browse(ctx)
	case ChoiceAddPlane:
		return m.addPlane(ctx)
	case ChoiceAddPilot:
		return m.addPilot(ctx)
	case ChoiceAddFlight:
		return m.addFlight(ctx)
	case ChoiceAddTechnician:
		return m.addTechnician(ctx)
	case ChoiceBookFlight:
		return m.bookFlight(ctx)
	case ChoiceAvailableSeats:
		return m.availableSeats(ctx)
	case ChoiceRepairsPerPlane:
		return m.printTable(m.reports.RepairsPerPlane(ctx))
	case ChoiceRepairsPerYear:
		return m.printTable(m.reports.RepairsPerYear(ctx))
	case ChoicePassengerCount:
		return m.passengerCount(ctx)
	}
	return fmt.Errorf("%w: unknown menu choice %d", primary.ErrValidation, choice)
}

func (m *Menu) browse(ctx context.Context) error {
	fmt.Fprintln(m.out)
	for i, name := range primary.BrowsableTables {
		fmt.Fprintf(m.out, "%d: %s table\n", i+1, name)
	}

	n, err := m.console.ReadInt("\nEnter which table to look at:", validate.Between(1, len(primary.BrowsableTables)))
	if err != nil {
		return err
	}

	table, err := m.reports.BrowseTable(ctx, primary.BrowsableTables[n-1])
	if err != nil {
		return err
	}
	rows := WriteTable(m.out, table)
	fmt.Fprintf(m.out, "%d row(s)\n", rows)
	return nil
}

func (m *Menu) addPlane(ctx context.Context) error {
	var req primary.AddPlaneRequest
	var err error

	if req.Make, err = m.console.ReadNonEmpty("\tEnter make of the plane:"); err != nil {
		return err
	}
	if req.Model, err = m.console.ReadNonEmpty("\tEnter model of the plane:"); err != nil {
		return err
	}
	if req.Age, err = m.console.ReadInt("\tEnter the age of the plane:", validate.PlaneAge); err != nil {
		return err
	}
	if req.Seats, err = m.console.ReadInt("\tEnter the number of passenger seats the plane can hold (between 0 and 500):", validate.PlaneSeats); err != nil {
		return err
	}

	plane, err := m.fleet.AddPlane(ctx, req)
	if err != nil {
		return err
	}
	okColor.Fprintf(m.out, "✓ Added plane %d: %s %s\n", plane.ID, plane.Make, plane.Model)
	return nil
}

func (m *Menu) addPilot(ctx context.Context) error {
	var req primary.AddPilotRequest
	var err error

	if req.FullName, err = m.console.ReadNonEmpty("\tEnter pilot's full name:"); err != nil {
		return err
	}
	if req.Nationality, err = m.console.ReadLine("\tEnter pilot's nationality:"); err != nil {
		return err
	}

	pilot, err := m.fleet.AddPilot(ctx, req)
	if err != nil {
		return err
	}
	okColor.Fprintf(m.out, "✓ Added pilot %d: %s\n", pilot.ID, pilot.FullName)
	return nil
}

func (m *Menu) addFlight(ctx context.Context) error {
	var req primary.AddFlightRequest
	var err error

	if req.Cost, err = m.console.ReadInt("\tEnter flight cost (a number greater than 0):", validate.FlightCost); err != nil {
		return err
	}
	if req.NumSold, err = m.console.ReadInt("\tEnter the number of seats sold:", validate.NumSold); err != nil {
		return err
	}
	if req.NumStops, err = m.console.ReadInt("\tEnter the number of stops the flight has:", validate.NumStops); err != nil {
		return err
	}
	if req.DepartureDate, err = m.console.ReadDate("\tEnter the departure date (YYYY-MM-DD):"); err != nil {
		return err
	}
	if req.ArrivalDate, err = m.console.ReadDate("\tEnter the arrival date (YYYY-MM-DD):"); err != nil {
		return err
	}
	if req.ArrivalAirport, err = m.console.ReadAirportCode("\tEnter the code for the arrival airport (5 letters):"); err != nil {
		return err
	}
	if req.DepartureAirport, err = m.console.ReadAirportCode("\tEnter the code for the departure airport (5 letters):"); err != nil {
		return err
	}

	assign, err := m.console.ReadYesNo("\tAssign a plane to this flight? (Y/N)")
	if err != nil {
		return err
	}
	if assign {
		if req.PlaneID, err = m.console.ReadInt("\tEnter plane id:", validate.RecordID); err != nil {
			return err
		}
		if req.PilotID, err = m.console.ReadInt("\tEnter pilot id (0 for none):", validate.AtLeast(0)); err != nil {
			return err
		}
	}

	flight, err := m.fleet.AddFlight(ctx, req)
	if err != nil {
		return err
	}
	okColor.Fprintf(m.out, "✓ Added flight %d: %s → %s\n", flight.Number, flight.DepartureAirport, flight.ArrivalAirport)
	return nil
}

func (m *Menu) addTechnician(ctx context.Context) error {
	name, err := m.console.ReadNonEmpty("\tEnter full name of technician:")
	if err != nil {
		return err
	}

	tech, err := m.fleet.AddTechnician(ctx, primary.AddTechnicianRequest{FullName: name})
	if err != nil {
		return err
	}
	okColor.Fprintf(m.out, "✓ Added technician %d: %s\n", tech.ID, tech.FullName)
	return nil
}

func (m *Menu) bookFlight(ctx context.Context) error {
	var req primary.BookFlightRequest
	var err error

	if req.FirstName, err = m.console.ReadNonEmpty("\tEnter first name:"); err != nil {
		return err
	}
	if req.LastName, err = m.console.ReadNonEmpty("\tEnter last name:"); err != nil {
		return err
	}
	if req.FlightNumber, err = m.resolveFlight(ctx); err != nil {
		return err
	}

	booking, err := m.booking.BookFlight(ctx, req)
	if err != nil {
		return err
	}

	banner := okColor
	if booking.Status != "C" {
		banner = warnColor
	}
	banner.Fprintf(m.out, "Reservation %d on flight %d: %s\n", booking.ReservationID, booking.FlightNumber, booking.StatusName)
	return nil
}

func (m *Menu) availableSeats(ctx context.Context) error {
	fnum, err := m.resolveFlight(ctx)
	if err != nil {
		return err
	}

	table, err := m.booking.AvailableSeats(ctx, fnum)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		warnColor.Fprintf(m.out, "Flight %d has no plane assigned\n", fnum)
		return nil
	}
	WriteTable(m.out, table)
	return nil
}

func (m *Menu) passengerCount(ctx context.Context) error {
	fnum, err := m.resolveFlight(ctx)
	if err != nil {
		return err
	}

	status, err := m.console.ReadStatus("\tEnter the passenger status (W, R, C):")
	if err != nil {
		return err
	}

	return m.printTable(m.booking.PassengerCount(ctx, fnum, status))
}

// resolveFlight asks for a flight number directly, or lists the flights
// departing on a date and lets the operator pick one.
func (m *Menu) resolveFlight(ctx context.Context) (int, error) {
	known, err := m.console.ReadYesNo("\tDo you know the flight number? (Y/N)")
	if err != nil {
		return 0, err
	}
	if known {
		return m.console.ReadInt("\tEnter flight number:", validate.RecordID)
	}

	day, err := m.console.ReadDate("\tEnter flight departure date (YYYY-MM-DD):")
	if err != nil {
		return 0, err
	}

	table, err := m.booking.FlightsOnDate(ctx, day)
	if err != nil {
		return 0, err
	}
	if WriteRows(m.out, table) == 0 {
		return 0, fmt.Errorf("%w: no flights depart on %s", primary.ErrNotFound, day)
	}

	return m.console.ReadInt("\nEnter the flight number of the desired flight:", validate.RecordID)
}

func (m *Menu) printTable(table *primary.Table, err error) error {
	if err != nil {
		return err
	}
	WriteTable(m.out, table)
	return nil
}
