package diagram

import (
	"errors"
	"fmt"
)

// Domain errors for diagram construction and lookup.
var (
	// ErrInvalidDiagram indicates structurally bad diagram data.
	ErrInvalidDiagram = errors.New("diagram: invalid diagram data")

	// ErrUnknownScenario indicates a scenario name with no registered builder.
	ErrUnknownScenario = errors.New("diagram: unknown scenario")

	// ErrDuplicateForce indicates two forces sharing a name in one diagram.
	ErrDuplicateForce = errors.New("diagram: duplicate force name")

	// ErrNegativeMagnitude indicates a force with magnitude below zero.
	ErrNegativeMagnitude = errors.New("diagram: negative force magnitude")
)

// DiagramError tags an error with the scenario it came from, so a page
// showing several diagrams can fail one of them and keep the rest.
type DiagramError struct {
	Scenario string
	Wrapped  error
}

func (e *DiagramError) Error() string {
	return fmt.Sprintf("%s: %v", e.Scenario, e.Wrapped)
}

func (e *DiagramError) Unwrap() error {
	return e.Wrapped
}
