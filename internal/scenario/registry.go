// Package scenario builds the fixed catalogue of textbook diagrams the
// tutor can produce. A builder derives the force set from the scenario
// scalars, validates structure, and fixes the reveal sequence; after
// that the diagram is immutable. Changing a parameter means building a
// new diagram from scratch.
package scenario

import (
	"fmt"
	"sort"

	"github.com/kmall/stepdiag/internal/diagram"
	"github.com/kmall/stepdiag/internal/steps"
)

type Kind string

const (
	KindFreeBody   Kind = "free_body"
	KindIncline    Kind = "incline"
	KindProjectile Kind = "projectile"
	KindAtwood     Kind = "atwood"
	KindCircular   Kind = "circular"
	KindCollision  Kind = "collision"
)

// Diagram is one configured diagram instance: the object, its forces,
// and the derived reveal sequence.
type Diagram struct {
	Kind         Kind
	Title        string
	Object       diagram.PhysicsObject
	Forces       []diagram.Force
	Steps        []diagram.StepDefinition
	SurfaceAngle float64
	Params       Params
}

// Force looks a force up by name. A missing name is not an error; the
// caller treats it as not visible.
func (d *Diagram) Force(name string) (diagram.Force, bool) {
	for _, f := range d.Forces {
		if f.Name == name {
			return f, true
		}
	}
	return diagram.Force{}, false
}

type BuildFunc func(cfg *Config) (*Diagram, error)

type Registry struct {
	builders map[string]BuildFunc
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]BuildFunc)}
	r.builders[string(KindFreeBody)] = buildFreeBody
	r.builders[string(KindIncline)] = buildIncline
	r.builders[string(KindProjectile)] = buildProjectile
	r.builders[string(KindAtwood)] = buildAtwood
	r.builders[string(KindCircular)] = buildCircular
	r.builders[string(KindCollision)] = buildCollision
	return r
}

// Build constructs the named scenario. Structural problems come back
// wrapped in a DiagramError so one bad diagram fails alone.
func (r *Registry) Build(name string, cfg *Config) (*Diagram, error) {
	fn, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", diagram.ErrUnknownScenario, name)
	}
	return fn(cfg)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func invalidf(kind Kind, format string, args ...any) error {
	return &diagram.DiagramError{
		Scenario: string(kind),
		Wrapped:  fmt.Errorf("%w: %s", diagram.ErrInvalidDiagram, fmt.Sprintf(format, args...)),
	}
}

// finish validates the force set and derives the step sequence.
func finish(d *Diagram, flags StepFlags) (*Diagram, error) {
	seen := make(map[string]bool, len(d.Forces))
	for _, f := range d.Forces {
		if seen[f.Name] {
			return nil, &diagram.DiagramError{
				Scenario: string(d.Kind),
				Wrapped:  fmt.Errorf("%w: %q", diagram.ErrDuplicateForce, f.Name),
			}
		}
		seen[f.Name] = true
		if f.Magnitude < 0 {
			return nil, &diagram.DiagramError{
				Scenario: string(d.Kind),
				Wrapped:  fmt.Errorf("%w: %q", diagram.ErrNegativeMagnitude, f.Name),
			}
		}
	}
	d.Steps = steps.SequenceForces(d.Forces, steps.Options{
		NetForce: flags.NetForce,
		Momentum: flags.Momentum,
		Energy:   flags.Energy,
	})
	return d, nil
}
