package sync

import (
	"errors"
	"fmt"
)

// ErrUnknownSurface reports an operation against an id that was never
// initialized or has been cleared. Callers treat it as informational;
// mutating operations already no-op in this case.
var ErrUnknownSurface = errors.New("unknown surface id")

// ErrStaleStatus reports a surface stuck in the error state. Only an
// explicit Recover call clears it.
var ErrStaleStatus = errors.New("surface status is error, recovery required")

// DriftError reports that a bound root's geometry has drifted from the
// last synced shape geometry beyond tolerance. It is raised only by
// Validate and never auto-corrected.
type DriftError struct {
	ID        string
	Field     string
	Expected  float64
	Actual    float64
	Tolerance float64
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("surface %s: %s drifted from %g to %g (tolerance %g)",
		e.ID, e.Field, e.Expected, e.Actual, e.Tolerance)
}
