// Package reservation contains the pure business logic for seat admission.
// This is part of the Functional Core - no I/O, only pure functions.
package reservation

import (
	"fmt"
	"strings"
)

// Status is the single-letter reservation status code.
type Status string

const (
	StatusConfirmed  Status = "C"
	StatusWaitlisted Status = "W"
	StatusReserved   Status = "R"
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "Confirmed"
	case StatusWaitlisted:
		return "Waitlisted"
	case StatusReserved:
		return "Reserved"
	}
	return string(s)
}

// ParseStatus maps a status letter in either case onto its Status.
func ParseStatus(text string) (Status, error) {
	switch s := Status(strings.ToUpper(text)); s {
	case StatusConfirmed, StatusWaitlisted, StatusReserved:
		return s, nil
	}
	return "", fmt.Errorf("unknown reservation status %q", text)
}

// Available returns the remaining capacity of a flight.
func Available(seats, numSold int) int {
	return seats - numSold
}

// Decide assigns the status for a new booking.
// A seat is granted only while available is strictly positive.
func Decide(seats, numSold int) Status {
	if Available(seats, numSold) > 0 {
		return StatusConfirmed
	}
	return StatusWaitlisted
}

// State is a step of a single admission attempt.
type State string

const (
	StateStart            State = "start"
	StateEvaluateCapacity State = "evaluate_capacity"
	StateConfirmed        State = "confirmed"
	StateWaitlisted       State = "waitlisted"
	StateFailed           State = "failed"
)

// Terminal reports whether no further transition leaves s.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateWaitlisted || s == StateFailed
}

// Event drives the admission state machine.
type Event struct {
	// Resolved is set once the flight id and customer are both known.
	Resolved bool
	// Seats and NumSold are the capacity inputs read under the row lock.
	Seats   int
	NumSold int
	// Err is any store failure observed at this step.
	Err error
}

// Next returns the state reached from s on ev.
func Next(s State, ev Event) State {
	if ev.Err != nil && !s.Terminal() {
		return StateFailed
	}
	switch s {
	case StateStart:
		if ev.Resolved {
			return StateEvaluateCapacity
		}
		return StateFailed
	case StateEvaluateCapacity:
		if Decide(ev.Seats, ev.NumSold) == StatusConfirmed {
			return StateConfirmed
		}
		return StateWaitlisted
	}
	return s
}

// StatusFor maps a terminal success state onto the stored status.
func StatusFor(s State) (Status, bool) {
	switch s {
	case StateConfirmed:
		return StatusConfirmed, true
	case StateWaitlisted:
		return StatusWaitlisted, true
	}
	return "", false
}
