// Package cli provides the interactive console adapter. It reads operator
// input line by line, re-prompts on invalid input and renders results, but
// delegates business logic to services.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/ports/primary"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
)

// Console reads one line at a time from the operator.
// Re-prompt loops end only when input is exhausted.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console over in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Printf writes formatted text to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine prompts and returns the next line with surrounding space trimmed.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		promptColor.Fprintln(c.out, prompt)
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", primary.ErrInputExhausted, err)
		}
		return "", primary.ErrInputExhausted
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ReadValid prompts until check allows the line.
func (c *Console) ReadValid(prompt string, check func(string) validate.GuardResult) (string, error) {
	line, err := c.ReadLine(prompt)
	for err == nil {
		result := check(line)
		if result.Allowed {
			return line, nil
		}
		line, err = c.ReadLine(fmt.Sprintf("\tInput is invalid: %s. Try again:", result.Reason))
	}
	return "", err
}

// ReadNonEmpty prompts until the line has content.
func (c *Console) ReadNonEmpty(prompt string) (string, error) {
	return c.ReadValid(prompt, func(s string) validate.GuardResult {
		if validate.NonEmpty(s) {
			return validate.GuardResult{Allowed: true}
		}
		return validate.GuardResult{Reason: "a value is required"}
	})
}

// ReadInt prompts until the line is an integer inside r.
func (c *Console) ReadInt(prompt string, r validate.Range) (int, error) {
	line, err := c.ReadValid(prompt, func(s string) validate.GuardResult {
		n, err := strconv.Atoi(s)
		if err != nil {
			return validate.GuardResult{Reason: "not a whole number"}
		}
		return validate.CheckInt(n, r)
	})
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(line)
	return n, nil
}

// ReadDate prompts until the line has the YYYY-MM-DD shape.
func (c *Console) ReadDate(prompt string) (string, error) {
	return c.ReadValid(prompt, validate.CheckDate)
}

// ReadAirportCode prompts until the line is five letters.
func (c *Console) ReadAirportCode(prompt string) (string, error) {
	return c.ReadValid(prompt, validate.CheckAirportCode)
}

// ReadStatus prompts until the line is a reservation status letter.
func (c *Console) ReadStatus(prompt string) (string, error) {
	return c.ReadValid(prompt, validate.CheckStatus)
}

// ReadYesNo prompts until the line is Y or N and reports whether it was Y.
func (c *Console) ReadYesNo(prompt string) (bool, error) {
	line, err := c.ReadValid(prompt, validate.CheckYesNo)
	if err != nil {
		return false, err
	}
	return validate.IsYes(line), nil
}

// Error reports an operation failure in red.
func (c *Console) Error(err error) {
	errorColor.Fprintf(c.out, "✗ %v\n", err)
}
