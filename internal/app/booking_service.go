package app

import (
	"context"
	"log/slog"

	"github.com/example/airops/internal/core/reservation"
	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/logging"
	"github.com/example/airops/internal/ports/primary"
	"github.com/example/airops/internal/ports/secondary"
)

// BookingServiceImpl implements the BookingService interface.
type BookingServiceImpl struct {
	reservationRepo secondary.ReservationRepository
	flightRepo      secondary.FlightRepository
	logger          *slog.Logger
}

// NewBookingService creates a new BookingService with injected dependencies.
func NewBookingService(
	reservationRepo secondary.ReservationRepository,
	flightRepo secondary.FlightRepository,
	logger *slog.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		logger:          logger,
	}
}

// BookFlight admits a customer onto a flight. The capacity check and the
// reservation write happen in one store transaction.
func (s *BookingServiceImpl) BookFlight(ctx context.Context, req primary.BookFlightRequest) (*primary.Booking, error) {
	if r := validate.CheckInt(req.FlightNumber, validate.RecordID); !r.Allowed {
		return nil, invalid("flight number", r)
	}
	if !validate.NonEmpty(req.FirstName) {
		return nil, invalid("first name", validate.GuardResult{Reason: "is required"})
	}
	if !validate.NonEmpty(req.LastName) {
		return nil, invalid("last name", validate.GuardResult{Reason: "is required"})
	}

	log := logging.FromContext(ctx, s.logger).With("fnum", req.FlightNumber)

	record, err := s.reservationRepo.Admit(ctx, secondary.AdmissionRequest{
		FlightNumber: req.FlightNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		log.Error("admission failed", "error", err)
		return nil, storeError(err, primary.ErrWriteFailed)
	}

	log.Info("admission resolved", "rnum", record.ReservationID, "status", string(record.Status))
	return &primary.Booking{
		ReservationID: record.ReservationID,
		FlightNumber:  record.FlightNumber,
		CustomerID:    record.CustomerID,
		Status:        string(record.Status),
		StatusName:    record.Status.String(),
	}, nil
}

// FlightsOnDate lists flights departing on day.
func (s *BookingServiceImpl) FlightsOnDate(ctx context.Context, day string) (*primary.Table, error) {
	if r := validate.CheckDate(day); !r.Allowed {
		return nil, invalid("departure date", r)
	}

	set, err := s.flightRepo.ListDepartingOn(ctx, day)
	if err != nil {
		return nil, storeError(err, primary.ErrReadFailed)
	}
	return toTable(set), nil
}

// AvailableSeats reports plane capacity minus seats sold.
func (s *BookingServiceImpl) AvailableSeats(ctx context.Context, flightNumber int) (*primary.Table, error) {
	if r := validate.CheckInt(flightNumber, validate.RecordID); !r.Allowed {
		return nil, invalid("flight number", r)
	}

	set, err := s.flightRepo.AvailableSeats(ctx, flightNumber)
	if err != nil {
		return nil, storeError(err, primary.ErrReadFailed)
	}
	return toTable(set), nil
}

// PassengerCount counts a flight's reservations holding status.
// The status letter may be given in either case.
func (s *BookingServiceImpl) PassengerCount(ctx context.Context, flightNumber int, status string) (*primary.Table, error) {
	if r := validate.CheckInt(flightNumber, validate.RecordID); !r.Allowed {
		return nil, invalid("flight number", r)
	}
	if r := validate.CheckStatus(status); !r.Allowed {
		return nil, invalid("status", r)
	}

	parsed, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, invalid("status", validate.GuardResult{Reason: err.Error()})
	}

	set, err := s.reservationRepo.CountByStatus(ctx, flightNumber, parsed)
	if err != nil {
		return nil, storeError(err, primary.ErrReadFailed)
	}
	return toTable(set), nil
}

// Ensure BookingServiceImpl implements the interface.
var _ primary.BookingService = (*BookingServiceImpl)(nil)
