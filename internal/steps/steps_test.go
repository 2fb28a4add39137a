package steps

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/kmall/stepdiag/internal/diagram"
)

func ids(defs []diagram.StepDefinition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

func TestSequenceSetupFirst(t *testing.T) {
	defs := Sequence([]diagram.ForceType{diagram.ForceWeight}, Options{})
	if len(defs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(defs))
	}
	if defs[0].ID != SetupStepID || defs[0].Ordinal != 0 {
		t.Errorf("first step must be setup at ordinal 0, got %+v", defs[0])
	}
}

func TestSequenceCanonicalOrder(t *testing.T) {
	// Supplied out of order; must come out in pedagogy order.
	types := []diagram.ForceType{
		diagram.ForceFriction,
		diagram.ForceWeight,
		diagram.ForceApplied,
		diagram.ForceNormal,
	}
	got := ids(Sequence(types, Options{}))
	want := []string{"setup", "weight", "normal", "friction", "applied"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSequenceDeterministicUnderPermutation(t *testing.T) {
	types := []diagram.ForceType{
		diagram.ForceWeight,
		diagram.ForceNormal,
		diagram.ForceFriction,
		diagram.ForceTension,
		diagram.ForceDrag,
		diagram.ForceBuoyancy,
	}
	want := ids(Sequence(types, Options{NetForce: true}))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		shuffled := make([]diagram.ForceType, len(types))
		copy(shuffled, types)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := ids(Sequence(shuffled, Options{NetForce: true}))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("permutation changed sequence: %v vs %v", got, want)
		}
	}
}

func TestSequenceUnknownTypesAppendFirstSeen(t *testing.T) {
	types := []diagram.ForceType{
		"magnus",
		diagram.ForceWeight,
		"coriolis",
		"magnus",
	}
	got := ids(Sequence(types, Options{}))
	want := []string{"setup", "weight", "magnus", "coriolis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSequenceSyntheticTrailing(t *testing.T) {
	got := ids(Sequence([]diagram.ForceType{diagram.ForceWeight}, Options{
		NetForce: true, Momentum: true, Energy: true,
	}))
	want := []string{"setup", "weight", "net_force", "momentum", "energy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSequenceForcesGroupsNames(t *testing.T) {
	forces := []diagram.Force{
		{Name: "T1", Type: diagram.ForceTension},
		{Name: "W", Type: diagram.ForceWeight},
		{Name: "T2", Type: diagram.ForceTension},
		{Name: "W_parallel", Type: diagram.ForceComponent},
	}
	defs := SequenceForces(forces, Options{})
	got := ids(defs)
	want := []string{"setup", "weight", "tension"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !reflect.DeepEqual(defs[2].ForceNames, []string{"T1", "T2"}) {
		t.Errorf("tension step should carry both tensions, got %v", defs[2].ForceNames)
	}
	if len(defs[0].ForceNames) != 0 {
		t.Errorf("setup step carries no forces, got %v", defs[0].ForceNames)
	}
}

func TestCursorBoundaries(t *testing.T) {
	defs := Sequence([]diagram.ForceType{diagram.ForceWeight, diagram.ForceNormal}, Options{})
	c := NewCursor(defs, 0)

	c.Prev()
	if c.Current() != 0 {
		t.Errorf("prev at 0 must stay at 0, got %d", c.Current())
	}

	c.Set(c.Total() - 1)
	c.Next()
	if c.Current() != c.Total()-1 {
		t.Errorf("next at end must stay at end, got %d", c.Current())
	}
}

func TestCursorClampsInitial(t *testing.T) {
	defs := Sequence([]diagram.ForceType{diagram.ForceWeight}, Options{})
	if c := NewCursor(defs, 99); c.Current() != c.Total()-1 {
		t.Errorf("initial over range should clamp to end, got %d", c.Current())
	}
	if c := NewCursor(defs, -5); c.Current() != 0 {
		t.Errorf("initial under range should clamp to 0, got %d", c.Current())
	}
}

func TestCursorMonotonicVisibility(t *testing.T) {
	defs := Sequence([]diagram.ForceType{
		diagram.ForceWeight, diagram.ForceNormal, diagram.ForceFriction,
	}, Options{})
	c := NewCursor(defs, 0)

	for step := 0; step < c.Total(); step++ {
		c.Set(step)
		for i, d := range defs {
			want := i <= step
			if got := c.IsVisible(d.ID); got != want {
				t.Errorf("step %d: IsVisible(%s) = %v, expected %v", step, d.ID, got, want)
			}
		}
	}
}

func TestCursorUnknownIDNotVisible(t *testing.T) {
	defs := Sequence([]diagram.ForceType{diagram.ForceWeight}, Options{})
	c := NewCursor(defs, 1)

	if c.IsVisible("spring") {
		t.Error("unknown step id must read as not visible")
	}
	if c.IsCurrent("spring") {
		t.Error("unknown step id must not be current")
	}
}

func TestCursorIsCurrent(t *testing.T) {
	defs := Sequence([]diagram.ForceType{diagram.ForceWeight, diagram.ForceNormal}, Options{})
	c := NewCursor(defs, 0)
	c.Next()

	if !c.IsCurrent("weight") {
		t.Error("weight should be spotlighted at step 1")
	}
	if c.IsCurrent(SetupStepID) {
		t.Error("setup is visible but no longer current")
	}
}

func TestCursorRevealed(t *testing.T) {
	defs := Sequence([]diagram.ForceType{
		diagram.ForceWeight, diagram.ForceNormal, diagram.ForceFriction,
	}, Options{})
	c := NewCursor(defs, 3)

	got := c.Revealed(0)
	want := []string{"weight", "normal", "friction"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if r := c.Revealed(3); r != nil {
		t.Errorf("no movement reveals nothing, got %v", r)
	}
	c.Set(1)
	if r := c.Revealed(2); r != nil {
		t.Errorf("moving backward reveals nothing, got %v", r)
	}
}

func TestCanonicalOrderIsACopy(t *testing.T) {
	order := CanonicalOrder()
	if len(order) == 0 {
		t.Fatal("expected non-empty canonical order")
	}
	order[0] = "tampered"
	if CanonicalOrder()[0] == "tampered" {
		t.Error("CanonicalOrder must return a copy")
	}
}
