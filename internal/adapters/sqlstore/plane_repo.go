package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/airops/internal/db"
	"github.com/example/airops/internal/ports/secondary"
)

// PlaneRepository implements secondary.PlaneRepository.
type PlaneRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

// NewPlaneRepository creates a new plane repository.
func NewPlaneRepository(database *sql.DB, dialect db.Dialect) *PlaneRepository {
	return &PlaneRepository{db: database, dialect: dialect}
}

// Create persists a new plane.
func (r *PlaneRepository) Create(ctx context.Context, plane *secondary.PlaneRecord) error {
	id, err := insertReturningID(ctx, r.db, r.dialect,
		"INSERT INTO Plane (make, model, age, seats) VALUES (?, ?, ?, ?)", "id",
		plane.Make, plane.Model, plane.Age, plane.Seats,
	)
	if err != nil {
		return fmt.Errorf("failed to create plane: %w", err)
	}

	plane.ID = id
	return nil
}

// GetByID retrieves a plane by its ID.
func (r *PlaneRepository) GetByID(ctx context.Context, id int) (*secondary.PlaneRecord, error) {
	record := &secondary.PlaneRecord{}
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind("SELECT id, make, model, age, seats FROM Plane WHERE id = ?"),
		id,
	).Scan(&record.ID, &record.Make, &record.Model, &record.Age, &record.Seats)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plane %d: %w", id, secondary.ErrPlaneNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plane: %w", err)
	}

	return record, nil
}

// Ensure PlaneRepository implements the interface.
var _ secondary.PlaneRepository = (*PlaneRepository)(nil)
