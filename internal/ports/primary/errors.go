// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the console drives the application.
package primary

import "errors"

// Error taxonomy surfaced to the console. Test with errors.Is.
var (
	// ErrValidation marks malformed input; the console re-prompts.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks a flight, plane or customer that does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrCustomerNotResolved marks a customer name with zero or several matches.
	ErrCustomerNotResolved = errors.New("customer not resolved")

	// ErrWriteFailed marks a store failure while writing; nothing was applied.
	ErrWriteFailed = errors.New("write failed")

	// ErrReadFailed marks a store failure while reading.
	ErrReadFailed = errors.New("read failed")

	// ErrConnectionFailed marks failure to reach the store at startup.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInputExhausted marks end of console input.
	ErrInputExhausted = errors.New("input exhausted")
)
