package steps

import "github.com/kmall/stepdiag/internal/diagram"

// Cursor tracks the current position in a step sequence. Navigation is
// clamped: Next at the last step and Prev at the first are no-ops.
// Lookup of an unknown step id reads as "not visible", never an error.
type Cursor struct {
	defs    []diagram.StepDefinition
	index   map[string]int
	current int
}

// NewCursor starts at initial, clamped into range. The sequence must be
// non-empty; every diagram has at least its setup step.
func NewCursor(defs []diagram.StepDefinition, initial int) *Cursor {
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		index[d.ID] = i
	}
	return &Cursor{
		defs:    defs,
		index:   index,
		current: diagram.ClampStep(initial, len(defs)),
	}
}

func (c *Cursor) Current() int { return c.current }
func (c *Cursor) Total() int   { return len(c.defs) }

// State returns the cursor as a step state pair.
func (c *Cursor) State() diagram.StepState {
	return diagram.StepState{Current: c.current, Total: len(c.defs)}
}

// Set jumps to step, clamped into range.
func (c *Cursor) Set(step int) {
	c.current = diagram.ClampStep(step, len(c.defs))
}

// Next advances one step, stopping at the end.
func (c *Cursor) Next() {
	c.Set(c.current + 1)
}

// Prev backs up one step, stopping at the start.
func (c *Cursor) Prev() {
	c.Set(c.current - 1)
}

// IsVisible reports whether the step has been revealed. Visibility is
// monotonic: once a step's index is at or below the cursor it stays
// visible as the cursor advances.
func (c *Cursor) IsVisible(stepID string) bool {
	i, ok := c.index[stepID]
	return ok && i <= c.current
}

// IsCurrent reports whether the step is the spotlighted one.
func (c *Cursor) IsCurrent(stepID string) bool {
	i, ok := c.index[stepID]
	return ok && i == c.current
}

// Revealed returns the ids whose step just became visible when the
// cursor moved from prev to the current position, in sequence order.
// Moving backward reveals nothing.
func (c *Cursor) Revealed(prev int) []string {
	prev = diagram.ClampStep(prev, len(c.defs))
	if c.current <= prev {
		return nil
	}
	ids := make([]string, 0, c.current-prev)
	for i := prev + 1; i <= c.current; i++ {
		ids = append(ids, c.defs[i].ID)
	}
	return ids
}
