// Package choreo assigns relative timing to the elements of a reveal
// batch. It produces metadata only: nothing here sleeps or schedules a
// timer; the rendering layer honors the returned delays and must be
// prepared to abandon a transition if the step changes mid-flight.
package choreo

import "time"

// Timing is the schedule for one revealed element.
type Timing struct {
	ID       string
	Delay    time.Duration
	Duration time.Duration
}

// Options configures a reveal schedule. ReducedMotion is an
// unconditional override: every delay and duration collapses to
// exactly zero, not a scaled-down schedule.
type Options struct {
	BaseDuration  time.Duration
	Stagger       time.Duration
	ReducedMotion bool
}

// DefaultOptions matches the tutor UI's reveal pacing.
func DefaultOptions() Options {
	return Options{
		BaseDuration: 400 * time.Millisecond,
		Stagger:      120 * time.Millisecond,
	}
}

// Schedule assigns strictly increasing delays in input order, so a
// batch revealed at once still appears in the intended sequence.
func Schedule(ids []string, opts Options) []Timing {
	timings := make([]Timing, len(ids))
	for i, id := range ids {
		timings[i] = Timing{ID: id}
		if opts.ReducedMotion {
			continue
		}
		timings[i].Delay = time.Duration(i) * opts.Stagger
		timings[i].Duration = opts.BaseDuration
	}
	return timings
}

// ObjectTiming is the schedule for the object itself, which is never
// part of a force batch and always appears with zero delay.
func ObjectTiming(id string, opts Options) Timing {
	t := Timing{ID: id}
	if !opts.ReducedMotion {
		t.Duration = opts.BaseDuration
	}
	return t
}
