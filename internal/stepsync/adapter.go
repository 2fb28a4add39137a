// Package stepsync reconciles two owners of a diagram's current step:
// the tutoring conversation pushing a visible-step value, and the
// user's manual next/prev navigation. Whichever side is active supplies
// the authoritative value; the other never corrupts it.
package stepsync

import (
	"sync"

	"github.com/kmall/stepdiag/internal/diagram"
)

// Mode reports which side currently owns the step value.
type Mode int

const (
	// ModeInternal: the adapter owns the step and next/prev mutate it.
	ModeInternal Mode = iota
	// ModeOverride: an external driver supplies the step; next/prev are
	// forwarded as requests and do not change the displayed value.
	ModeOverride
)

// RequestFunc receives the step a local navigation call asked for while
// an override is active.
type RequestFunc func(step int)

// Adapter exposes a single current-step value regardless of who drives
// it. Every mutation is one clamp-and-set under the lock, so concurrent
// calls from UI handlers cannot observe intermediate state.
type Adapter struct {
	mu          sync.Mutex
	total       int
	local       int
	override    int
	hasOverride bool
	onRequest   RequestFunc
}

// New creates an adapter for a sequence of total steps, starting the
// internal cursor at initial (clamped). onRequest may be nil.
func New(total, initial int, onRequest RequestFunc) *Adapter {
	if total < 1 {
		total = 1
	}
	return &Adapter{
		total:     total,
		local:     diagram.ClampStep(initial, total),
		onRequest: onRequest,
	}
}

// SetOverride switches to override mode with the externally supplied
// value. The internal cursor is left as-is: modes are not reconciled,
// and clearing the override resumes where local navigation stopped.
func (a *Adapter) SetOverride(step int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.override = diagram.ClampStep(step, a.total)
	a.hasOverride = true
}

// ClearOverride returns ownership to the internal cursor.
func (a *Adapter) ClearOverride() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hasOverride = false
}

// Apply takes the override input as it arrives from upstream: non-nil
// enters (or refreshes) override mode, nil leaves it.
func (a *Adapter) Apply(override *int) {
	if override == nil {
		a.ClearOverride()
		return
	}
	a.SetOverride(*override)
}

// Current is the authoritative displayed step.
func (a *Adapter) Current() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hasOverride {
		return a.override
	}
	return a.local
}

// Total is the step count the adapter clamps against.
func (a *Adapter) Total() int {
	return a.total
}

// State returns the displayed step as a state pair.
func (a *Adapter) State() diagram.StepState {
	return diagram.StepState{Current: a.Current(), Total: a.total}
}

// Mode reports the active ownership mode.
func (a *Adapter) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hasOverride {
		return ModeOverride
	}
	return ModeInternal
}

// Next advances one step. In override mode the displayed value is
// untouched and the request goes to the external driver instead.
func (a *Adapter) Next() int { return a.navigate(1) }

// Prev backs up one step, with the same override semantics as Next.
func (a *Adapter) Prev() int { return a.navigate(-1) }

func (a *Adapter) navigate(delta int) int {
	a.mu.Lock()
	if a.hasOverride {
		requested := diagram.ClampStep(a.override+delta, a.total)
		current := a.override
		req := a.onRequest
		a.mu.Unlock()
		if req != nil {
			req(requested)
		}
		return current
	}
	a.local = diagram.ClampStep(a.local+delta, a.total)
	current := a.local
	a.mu.Unlock()
	return current
}
