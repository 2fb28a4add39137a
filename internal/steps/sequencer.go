// Package steps builds the canonical reveal sequence for a diagram and
// tracks a clamped step cursor over it. Step 0 is always the setup step:
// the object is visible, all forces hidden.
package steps

import "github.com/kmall/stepdiag/internal/diagram"

// SetupStepID is the leading step every sequence starts with.
const SetupStepID = "setup"

// Synthetic trailing step ids.
const (
	NetForceStepID = "net_force"
	MomentumStepID = "momentum"
	EnergyStepID   = "energy"
)

// Options selects the synthetic trailing steps.
type Options struct {
	NetForce bool
	Momentum bool
	Energy   bool
}

// Sequence builds the step list for a set of present force types. The
// result is a pure function of the type set and options: duplicates
// collapse, and any permutation of the input yields the same sequence.
// Types missing from the canonical table keep their first-seen order
// after it.
func Sequence(types []diagram.ForceType, opts Options) []diagram.StepDefinition {
	present := make(map[diagram.ForceType]bool, len(types))
	var extras []diagram.ForceType
	known := make(map[diagram.ForceType]bool, len(canonical.Forces))
	for _, ft := range canonical.Forces {
		known[ft] = true
	}
	for _, ft := range types {
		if present[ft] {
			continue
		}
		present[ft] = true
		if !known[ft] {
			extras = append(extras, ft)
		}
	}

	defs := []diagram.StepDefinition{{ID: SetupStepID, Ordinal: 0}}
	add := func(id string) {
		defs = append(defs, diagram.StepDefinition{ID: id, Ordinal: len(defs)})
	}

	for _, ft := range canonical.Forces {
		if present[ft] {
			add(string(ft))
		}
	}
	for _, ft := range extras {
		add(string(ft))
	}

	if opts.NetForce {
		add(NetForceStepID)
	}
	if opts.Momentum {
		add(MomentumStepID)
	}
	if opts.Energy {
		add(EnergyStepID)
	}
	return defs
}

// SequenceForces is Sequence over concrete forces: each force step
// carries the names of the forces it reveals. Component forces are
// annotations of their parent and never get a step of their own.
func SequenceForces(forces []diagram.Force, opts Options) []diagram.StepDefinition {
	types := make([]diagram.ForceType, 0, len(forces))
	names := make(map[diagram.ForceType][]string)
	for _, f := range forces {
		if f.Type == diagram.ForceComponent {
			continue
		}
		types = append(types, f.Type)
		names[f.Type] = append(names[f.Type], f.Name)
	}

	defs := Sequence(types, opts)
	for i := range defs {
		defs[i].ForceNames = names[diagram.ForceType(defs[i].ID)]
	}
	return defs
}
