package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

// browsable maps the browse menu's table names onto their queries.
var browsable = map[string]string{
	"Plane":       "SELECT * FROM Plane ORDER BY id",
	"Pilot":       "SELECT * FROM Pilot ORDER BY id",
	"Flight":      "SELECT * FROM Flight ORDER BY fnum",
	"Technician":  "SELECT * FROM Technician ORDER BY id",
	"Reservation": "SELECT * FROM Reservation ORDER BY rnum",
}

// ReportRepository implements secondary.ReportRepository over the query gateway.
type ReportRepository struct {
	gateway secondary.QueryGateway
	dialect db.Dialect
}

// NewReportRepository creates a new report repository.
func NewReportRepository(database *sql.DB, dialect db.Dialect) *ReportRepository {
	return &ReportRepository{gateway: NewGateway(database, dialect), dialect: dialect}
}

// RepairsPerPlane counts repairs grouped by plane, most first.
func (r *ReportRepository) RepairsPerPlane(ctx context.Context) (*secondary.ResultSet, error) {
	set, err := r.gateway.ExecRead(ctx,
		"SELECT R.plane_id AS plane_id, COUNT(*) AS n FROM Repairs R GROUP BY R.plane_id ORDER BY n DESC, R.plane_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count repairs per plane: %w", err)
	}
	return set, nil
}

// RepairsPerYear counts repairs grouped by year, fewest first.
func (r *ReportRepository) RepairsPerYear(ctx context.Context) (*secondary.ResultSet, error) {
	year := r.dialect.YearOf("repair_date")
	set, err := r.gateway.ExecRead(ctx,
		"SELECT "+year+" AS year, COUNT(*) AS total FROM Repairs GROUP BY "+year+" ORDER BY total, year",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count repairs per year: %w", err)
	}
	return set, nil
}

// Browse returns every row of a browsable table.
func (r *ReportRepository) Browse(ctx context.Context, table string) (*secondary.ResultSet, error) {
	query, ok := browsable[table]
	if !ok {
		return nil, fmt.Errorf("table %q is not browsable", table)
	}

	set, err := r.gateway.ExecRead(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return set, nil
}

// Ensure ReportRepository implements the interface.
var _ secondary.ReportRepository = (*ReportRepository)(nil)
