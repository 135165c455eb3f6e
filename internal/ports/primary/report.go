package primary

import "context"

// ReportService defines the primary port for read-only reports.
type ReportService interface {
	// RepairsPerPlane counts repairs per plane, most repaired first.
	RepairsPerPlane(ctx context.Context) (*Table, error)

	// RepairsPerYear counts repairs per calendar year, fewest first.
	RepairsPerYear(ctx context.Context) (*Table, error)

	// BrowseTable returns every row of one of the BrowsableTables.
	BrowseTable(ctx context.Context, table string) (*Table, error)
}

// BrowsableTables lists the tables offered by the browse operation, in menu order.
var BrowsableTables = []string{"Plane", "Pilot", "Flight", "Technician", "Reservation"}
