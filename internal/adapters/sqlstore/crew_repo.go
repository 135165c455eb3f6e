package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

// PilotRepository implements secondary.PilotRepository.
type PilotRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewPilotRepository creates a new pilot repository.
func NewPilotRepository(database *sql.DB, dialect db.Dialect) *PilotRepository {
	return &PilotRepository{db: database, dialect: dialect}
}

// Create persists a new pilot.
func (r *PilotRepository) Create(ctx context.Context, pilot *secondary.PilotRecord) error {
	var nation sql.NullString
	if pilot.Nationality != "" {
		nation = sql.NullString{String: pilot.Nationality, Valid: true}
	}

	id, err := insertReturningID(ctx, r.db, r.dialect,
		"INSERT INTO Pilot (fullname, nationality) VALUES (?, ?)", "id",
		pilot.FullName, nation,
	)
	if err != nil {
		return fmt.Errorf("failed to create pilot: %w", err)
	}

	pilot.ID = id
	return nil
}

// TechnicianRepository implements secondary.TechnicianRepository.
type TechnicianRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewTechnicianRepository creates a new technician repository.
func NewTechnicianRepository(database *sql.DB, dialect db.Dialect) *TechnicianRepository {
	return &TechnicianRepository{db: database, dialect: dialect}
}

// Create persists a new technician.
func (r *TechnicianRepository) Create(ctx context.Context, tech *secondary.TechnicianRecord) error {
	id, err := insertReturningID(ctx, r.db, r.dialect,
		"INSERT INTO Technician (full_name) VALUES (?)", "id",
		tech.FullName,
	)
	if err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}

	tech.ID = id
	return nil
}

var (
	_ secondary.PilotRepository      = (*PilotRepository)(nil)
	_ secondary.TechnicianRepository = (*TechnicianRepository)(nil)
)
