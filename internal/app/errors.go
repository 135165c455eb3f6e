package app

import (
	"errors"
	"fmt"

	"github.com/example/airops/internal/core/validate"
	"github.com/example/airops/internal/ports/primary"
	"github.com/example/airops/internal/ports/secondary"
)

// invalid wraps a failed guard as a validation error for field.
func invalid(field string, result validate.GuardResult) error {
	return fmt.Errorf("%w: %s %s", primary.ErrValidation, field, result.Reason)
}

// storeError classifies a repository error into the primary taxonomy.
// fallback is ErrWriteFailed or ErrReadFailed depending on the operation.
func storeError(err, fallback error) error {
	switch {
	case errors.Is(err, secondary.ErrCustomerNotResolved):
		return fmt.Errorf("%w: %w", primary.ErrCustomerNotResolved, err)
	case errors.Is(err, secondary.ErrFlightNotFound), errors.Is(err, secondary.ErrPlaneNotFound):
		return fmt.Errorf("%w: %w", primary.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

func toTable(set *secondary.ResultSet) *primary.Table {
	return &primary.Table{Columns: set.Columns, Rows: set.Rows}
}
