// Package validate contains the pure field grammars applied to console input.
// Guards are pure functions that classify raw text without side effects.
package validate

import (
	"fmt"
	"unicode"
)

// GuardResult represents the outcome of a field check.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// Date reports whether text has the shape YYYY-MM-DD.
// Calendar validity is not checked: "2023-02-30" and "2023-13-01" pass.
func Date(text string) bool {
	return CheckDate(text).Allowed
}

// CheckDate evaluates the date grammar.
// Rules:
// - Exactly 10 bytes
// - '-' at offsets 4 and 7
// - Decimal digits everywhere else
func CheckDate(text string) GuardResult {
	const reason = "date must have the form YYYY-MM-DD"

	if len(text) != 10 {
		return deny(reason)
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return deny(reason)
			}
			continue
		}
		if c < '0' || c > '9' {
			return deny(reason)
		}
	}
	return allow()
}

// AirportCode reports whether text is exactly five letters.
// Case is not normalized here; callers upper-case before writing.
func AirportCode(text string) bool {
	return CheckAirportCode(text).Allowed
}

// CheckAirportCode evaluates the airport code grammar.
func CheckAirportCode(text string) GuardResult {
	const reason = "airport code must be exactly 5 letters"

	runes := []rune(text)
	if len(runes) != 5 {
		return deny(reason)
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return deny(reason)
		}
	}
	return allow()
}

// Status reports whether text is a single W, C or R in either case.
func Status(text string) bool {
	return CheckStatus(text).Allowed
}

// CheckStatus evaluates the reservation status grammar.
func CheckStatus(text string) GuardResult {
	if len(text) != 1 {
		return deny("status must be one of W, C, R")
	}
	switch text[0] {
	case 'W', 'w', 'C', 'c', 'R', 'r':
		return allow()
	}
	return deny("%q is not a status (W, C, R)", text)
}

// YesNo reports whether text is a single y or n in either case.
func YesNo(text string) bool {
	return CheckYesNo(text).Allowed
}

// CheckYesNo evaluates the Y/N answer grammar.
func CheckYesNo(text string) GuardResult {
	if len(text) == 1 {
		switch text[0] {
		case 'Y', 'y', 'N', 'n':
			return allow()
		}
	}
	return deny("answer must be Y or N")
}

// IsYes reports whether an already validated Y/N answer is affirmative.
func IsYes(text string) bool {
	return text == "y" || text == "Y"
}

// NonEmpty reports whether text has at least one non-space character.
func NonEmpty(text string) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// Range is an inclusive integer interval. A nil bound is open.
type Range struct {
	Min *int
	Max *int
}

// AtLeast returns a range bounded below by min.
func AtLeast(min int) Range { return Range{Min: &min} }

// Between returns the closed range [min, max].
func Between(min, max int) Range { return Range{Min: &min, Max: &max} }

// Bounds used by the console operations.
var (
	PlaneAge   = AtLeast(0)
	PlaneSeats = Between(0, 500)
	FlightCost = AtLeast(1)
	NumSold    = AtLeast(0)
	NumStops   = AtLeast(0)
	RecordID   = AtLeast(1)
)

// BoundedInt reports whether min <= value <= max.
func BoundedInt(value, min, max int) bool {
	return min <= value && value <= max
}

// CheckInt evaluates value against the range.
func CheckInt(value int, r Range) GuardResult {
	if r.Min != nil && value < *r.Min {
		if *r.Min == 0 {
			return deny("cannot be negative")
		}
		return deny("must be at least %d", *r.Min)
	}
	if r.Max != nil && value > *r.Max {
		return deny("cannot exceed %d", *r.Max)
	}
	return allow()
}
