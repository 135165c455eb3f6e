package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/logging"
	"github.com/example/airops/internal/ports/primary"
	"github.com/example/airops/internal/ports/secondary"
)

// FleetServiceImpl implements the FleetService interface.
type FleetServiceImpl struct {
	planeRepo      secondary.PlaneRepository
	pilotRepo      secondary.PilotRepository
	flightRepo     secondary.FlightRepository
	technicianRepo secondary.TechnicianRepository
	logger         *slog.Logger
}

// NewFleetService creates a new FleetService with injected dependencies.
func NewFleetService(
	planeRepo secondary.PlaneRepository,
	pilotRepo secondary.PilotRepository,
	flightRepo secondary.FlightRepository,
	technicianRepo secondary.TechnicianRepository,
	logger *slog.Logger,
) *FleetServiceImpl {
	return &FleetServiceImpl{
		planeRepo:      planeRepo,
		pilotRepo:      pilotRepo,
		flightRepo:     flightRepo,
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

// AddPlane validates and inserts a plane.
func (s *FleetServiceImpl) AddPlane(ctx context.Context, req primary.AddPlaneRequest) (*primary.Plane, error) {
	if !validate.NonEmpty(req.Make) {
		return nil, invalid("make", validate.GuardResult{Reason: "is required"})
	}
	if !validate.NonEmpty(req.Model) {
		return nil, invalid("model", validate.GuardResult{Reason: "is required"})
	}
	if r := validate.CheckInt(req.Age, validate.PlaneAge); !r.Allowed {
		return nil, invalid("age", r)
	}
	if r := validate.CheckInt(req.Seats, validate.PlaneSeats); !r.Allowed {
		return nil, invalid("seats", r)
	}

	record := &secondary.PlaneRecord{
		Make:  req.Make,
		Model: req.Model,
		Age:   req.Age,
		Seats: req.Seats,
	}
	if err := s.planeRepo.Create(ctx, record); err != nil {
		logging.FromContext(ctx, s.logger).Error("plane insert failed", "error", err)
		return nil, storeError(err, primary.ErrWriteFailed)
	}

	// Fetch created plane
	created, err := s.planeRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, storeError(err, primary.ErrReadFailed)
	}

	logging.FromContext(ctx, s.logger).Info("plane added", "plane_id", created.ID)
	return recordToPlane(created), nil
}

// GetPlane retrieves a plane by ID.
func (s *FleetServiceImpl) GetPlane(ctx context.Context, id int) (*primary.Plane, error) {
	if r := validate.CheckInt(id, validate.RecordID); !r.Allowed {
		return nil, invalid("plane id", r)
	}

	record, err := s.planeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, primary.ErrReadFailed)
	}
	return recordToPlane(record), nil
}

// AddPilot validates and inserts a pilot.
func (s *FleetServiceImpl) AddPilot(ctx context.Context, req primary.AddPilotRequest) (*primary.Pilot, error) {
	if !validate.NonEmpty(req.FullName) {
		return nil, invalid("full name", validate.GuardResult{Reason: "is required"})
	}

	record := &secondary.PilotRecord{
		FullName:    req.FullName,
		Nationality: strings.TrimSpace(req.Nationality),
	}
	if err := s.pilotRepo.Create(ctx, record); err != nil {
		logging.FromContext(ctx, s.logger).Error("pilot insert failed", "error", err)
		return nil, storeError(err, primary.ErrWriteFailed)
	}

	logging.FromContext(ctx, s.logger).Info("pilot added", "pilot_id", record.ID)
	return &primary.Pilot{
		ID:          record.ID,
		FullName:    record.FullName,
		Nationality: record.Nationality,
	}, nil
}

// AddFlight validates and inserts a flight. Airport codes are upper-cased
// before the write. A plane assignment is written in the same transaction.
func (s *FleetServiceImpl) AddFlight(ctx context.Context, req primary.AddFlightRequest) (*primary.Flight, error) {
	if r := validate.CheckInt(req.Cost, validate.FlightCost); !r.Allowed {
		return nil, invalid("cost", r)
	}
	if r := validate.CheckInt(req.NumSold, validate.NumSold); !r.Allowed {
		return nil, invalid("seats sold", r)
	}
	if r := validate.CheckInt(req.NumStops, validate.NumStops); !r.Allowed {
		return nil, invalid("stops", r)
	}
	if r := validate.CheckDate(req.DepartureDate); !r.Allowed {
		return nil, invalid("departure date", r)
	}
	if r := validate.CheckDate(req.ArrivalDate); !r.Allowed {
		return nil, invalid("arrival date", r)
	}
	if r := validate.CheckAirportCode(req.ArrivalAirport); !r.Allowed {
		return nil, invalid("arrival airport", r)
	}
	if r := validate.CheckAirportCode(req.DepartureAirport); !r.Allowed {
		return nil, invalid("departure airport", r)
	}

	assignment, err := flightAssignment(req)
	if err != nil {
		return nil, err
	}

	record := &secondary.FlightRecord{
		Cost:             req.Cost,
		NumSold:          req.NumSold,
		NumStops:         req.NumStops,
		DepartureDate:    req.DepartureDate,
		ArrivalDate:      req.ArrivalDate,
		ArrivalAirport:   strings.ToUpper(req.ArrivalAirport),
		DepartureAirport: strings.ToUpper(req.DepartureAirport),
	}
	if err := s.flightRepo.Create(ctx, record, assignment); err != nil {
		logging.FromContext(ctx, s.logger).Error("flight insert failed", "error", err)
		return nil, storeError(err, primary.ErrWriteFailed)
	}

	logging.FromContext(ctx, s.logger).Info("flight added", "fnum", record.Number, "assigned", assignment != nil)
	return &primary.Flight{
		Number:           record.Number,
		Cost:             record.Cost,
		NumSold:          record.NumSold,
		NumStops:         record.NumStops,
		DepartureDate:    record.DepartureDate,
		ArrivalDate:      record.ArrivalDate,
		ArrivalAirport:   record.ArrivalAirport,
		DepartureAirport: record.DepartureAirport,
	}, nil
}

func flightAssignment(req primary.AddFlightRequest) (*secondary.FlightAssignment, error) {
	if req.PlaneID == 0 {
		if req.PilotID != 0 {
			return nil, invalid("pilot id", validate.GuardResult{Reason: "requires a plane assignment"})
		}
		return nil, nil
	}
	if r := validate.CheckInt(req.PlaneID, validate.RecordID); !r.Allowed {
		return nil, invalid("plane id", r)
	}
	if req.PilotID != 0 {
		if r := validate.CheckInt(req.PilotID, validate.RecordID); !r.Allowed {
			return nil, invalid("pilot id", r)
		}
	}
	return &secondary.FlightAssignment{PlaneID: req.PlaneID, PilotID: req.PilotID}, nil
}

// AddTechnician validates and inserts a technician.
func (s *FleetServiceImpl) AddTechnician(ctx context.Context, req primary.AddTechnicianRequest) (*primary.Technician, error) {
	if !validate.NonEmpty(req.FullName) {
		return nil, invalid("full name", validate.GuardResult{Reason: "is required"})
	}

	record := &secondary.TechnicianRecord{FullName: req.FullName}
	if err := s.technicianRepo.Create(ctx, record); err != nil {
		logging.FromContext(ctx, s.logger).Error("technician insert failed", "error", err)
		return nil, storeError(err, primary.ErrWriteFailed)
	}

	logging.FromContext(ctx, s.logger).Info("technician added", "technician_id", record.ID)
	return &primary.Technician{ID: record.ID, FullName: record.FullName}, nil
}

func recordToPlane(r *secondary.PlaneRecord) *primary.Plane {
	return &primary.Plane{
		ID:    r.ID,
		Make:  r.Make,
		Model: r.Model,
		Age:   r.Age,
		Seats: r.Seats,
	}
}

// Ensure FleetServiceImpl implements the interface.
var _ primary.FleetService = (*FleetServiceImpl)(nil)
