package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedFixtures populates an empty embedded database with a small fleet,
// schedule and customer list so every menu operation has data to show.
func SeedFixtures(ctx context.Context, database *sql.DB) error {
	var planeCount int
	if err := database.QueryRowContext(ctx, "SELECT COUNT(*) FROM Plane").Scan(&planeCount); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if planeCount > 0 {
		return nil
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer tx.Rollback()

	planes := []struct {
		id          int
		make, model string
		age, seats  int
	}{
		{1, "Boeing", "737", 5, 180},
		{2, "Airbus", "A320", 9, 150},
		{3, "Embraer", "E175", 2, 2},
	}
	for _, p := range planes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO Plane (id, make, model, age, seats) VALUES (?, ?, ?, ?, ?)",
			p.id, p.make, p.model, p.age, p.seats,
		); err != nil {
			return fmt.Errorf("seed planes: %w", err)
		}
	}

	pilots := []struct {
		id           int
		name, nation string
	}{
		{1, "Amelia Earhart", "American"},
		{2, "Jean Batten", "New Zealander"},
	}
	for _, p := range pilots {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO Pilot (id, fullname, nationality) VALUES (?, ?, ?)",
			p.id, p.name, p.nation,
		); err != nil {
			return fmt.Errorf("seed pilots: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO Technician (id, full_name) VALUES (1, 'Grace Hopper'), (2, 'Alan Turing')",
	); err != nil {
		return fmt.Errorf("seed technicians: %w", err)
	}

	flights := []struct {
		fnum, cost, sold, stops  int
		depart, arrive, to, from string
		planeID, pilotID         int
	}{
		{1, 320, 12, 0, "2024-06-01 08:30:00", "2024-06-01 11:45:00", "KJFKX", "KLAXX", 1, 1},
		{2, 210, 150, 1, "2024-06-01 14:00:00", "2024-06-01 18:10:00", "KORDX", "KSEAX", 2, 2},
		{3, 95, 1, 0, "2024-06-02 07:15:00", "2024-06-02 08:05:00", "KBOSX", "KJFKX", 3, 1},
	}
	for _, f := range flights {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Flight (fnum, cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.fnum, f.cost, f.sold, f.stops, f.depart, f.arrive, f.to, f.from,
		); err != nil {
			return fmt.Errorf("seed flights: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO FlightInfo (flight_id, pilot_id, plane_id) VALUES (?, ?, ?)",
			f.fnum, f.pilotID, f.planeID,
		); err != nil {
			return fmt.Errorf("seed flight info: %w", err)
		}
	}

	customers := []struct{ fname, lname string }{
		{"Ada", "Lovelace"},
		{"Charles", "Babbage"},
		{"Katherine", "Johnson"},
	}
	for _, c := range customers {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO Customer (fname, lname) VALUES (?, ?)",
			c.fname, c.lname,
		); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	repairs := []struct {
		date, code       string
		pilotID, planeID int
	}{
		{"2022-03-14", "ENG-01", 1, 1},
		{"2023-07-02", "HYD-07", 2, 1},
		{"2023-11-20", "AVN-03", 1, 2},
	}
	for _, r := range repairs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO Repairs (repair_date, repair_code, pilot_id, plane_id) VALUES (?, ?, ?, ?)",
			r.date, r.code, r.pilotID, r.planeID,
		); err != nil {
			return fmt.Errorf("seed repairs: %w", err)
		}
	}

	return tx.Commit()
}
