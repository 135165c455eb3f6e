// Package wire provides dependency injection for the airops console.
// It builds the services over one store handle.
package wire

import (
	"database/sql"
	"io"
	"log/slog"

	cliadapter "github.com/example/airops/internal/adapters/cli"
	"github.com/example/airops/internal/adapters/sqlstore"
	"github.com/example/airops/internal/app"
	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/primary"
)

// App holds the services of one console session.
type App struct {
	Fleet   primary.FleetService
	Booking primary.BookingService
	Reports primary.ReportService
}

// New creates the repository adapters and services over database.
func New(database *sql.DB, dialect db.Dialect, logger *slog.Logger) *App {
	// Create repository adapters (secondary ports) with injected DB
	planeRepo := sqlstore.NewPlaneRepository(database, dialect)
	pilotRepo := sqlstore.NewPilotRepository(database, dialect)
	technicianRepo := sqlstore.NewTechnicianRepository(database, dialect)
	flightRepo := sqlstore.NewFlightRepository(database, dialect)
	reservationRepo := sqlstore.NewReservationRepository(database, dialect)
	reportRepo := sqlstore.NewReportRepository(database, dialect)

	// Create services (primary ports implementation)
	return &App{
		Fleet:   app.NewFleetService(planeRepo, pilotRepo, flightRepo, technicianRepo, logger),
		Booking: app.NewBookingService(reservationRepo, flightRepo, logger),
		Reports: app.NewReportService(reportRepo, logger),
	}
}

// Menu returns a console menu over the app's services.
func (a *App) Menu(in io.Reader, out io.Writer) *cliadapter.Menu {
	return cliadapter.NewMenu(in, out, a.Fleet, a.Booking, a.Reports)
}
