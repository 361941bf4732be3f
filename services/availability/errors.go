// File: services/availability/errors.go
package availability

import (
	"errors"
	"fmt"
)

// ErrInvalidDate indicates a malformed week-anchor date; it is rejected
// before any grid generation happens.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// UnknownAvailabilityError indicates the working-hours fetch itself failed.
// This is distinct from a professional who never configured hours: the
// caller must not present "currently unknown" as "no availability".
type UnknownAvailabilityError struct {
	ProfessionalID string
	Err            error
}

func (e *UnknownAvailabilityError) Error() string {
	return fmt.Sprintf("availability unknown for professional %s: %v", e.ProfessionalID, e.Err)
}

func (e *UnknownAvailabilityError) Unwrap() error {
	return e.Err
}
