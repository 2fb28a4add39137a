// Package whatif produces the calculation panels behind the tutor's
// parameter-exploration sliders. Every call recomputes the panel from
// scratch; there is no incremental state to invalidate.
package whatif

import (
	"fmt"

	"github.com/kmall/stepdiag/internal/diagram"
	"github.com/kmall/stepdiag/internal/kernel"
	"github.com/kmall/stepdiag/internal/scenario"
)

type panelFunc func(p scenario.Params) []diagram.CalculationResult

var panels = map[scenario.Kind]panelFunc{
	scenario.KindFreeBody:   freeBodyPanel,
	scenario.KindIncline:    inclinePanel,
	scenario.KindProjectile: projectilePanel,
	scenario.KindAtwood:     atwoodPanel,
	scenario.KindCircular:   circularPanel,
	scenario.KindCollision:  collisionPanel,
}

// Panel computes the what-if results for a diagram's current parameters.
func Panel(d *scenario.Diagram) ([]diagram.CalculationResult, error) {
	fn, ok := panels[d.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", diagram.ErrUnknownScenario, d.Kind)
	}
	return fn(d.Params), nil
}

func result(label string, value float64, unit string, primary bool) diagram.CalculationResult {
	return diagram.CalculationResult{
		Value:     value,
		Unit:      unit,
		Label:     label,
		Formatted: fmt.Sprintf("%.2f %s", value, unit),
		Primary:   primary,
	}
}

func gravity(p scenario.Params) float64 {
	if p.Gravity > 0 {
		return p.Gravity
	}
	return kernel.DefaultGravity
}

func freeBodyPanel(p scenario.Params) []diagram.CalculationResult {
	w := p.Mass * gravity(p)
	friction := 0.0
	if p.Applied > 0 && p.Mu > 0 {
		friction = min(p.Mu*w, p.Applied)
	}
	net := p.Applied - friction
	out := []diagram.CalculationResult{
		result("Weight", w, "N", false),
		result("Normal force", w, "N", false),
		result("Applied force", p.Applied, "N", false),
		result("Friction", friction, "N", false),
		result("Net force", net, "N", true),
	}
	if p.Mass > 0 {
		out = append(out, result("Acceleration", net/p.Mass, "m/s²", true))
	}
	return out
}

func inclinePanel(p scenario.Params) []diagram.CalculationResult {
	in := kernel.Incline{Mass: p.Mass, AngleDeg: p.Angle, Mu: p.Mu, Gravity: gravity(p)}
	f := in.Resolve()
	return []diagram.CalculationResult{
		result("Weight", f.Weight, "N", false),
		result("Normal force", f.Normal, "N", false),
		result("Parallel component", f.Parallel, "N", false),
		result("Perpendicular component", f.Perpendicular, "N", false),
		result("Max static friction", f.MaxFriction, "N", false),
		result("Friction", f.Friction, "N", false),
		result("Net force", f.NetForce(), "N", true),
		result("Acceleration", in.Acceleration(), "m/s²", true),
	}
}

func projectilePanel(p scenario.Params) []diagram.CalculationResult {
	pr := kernel.Projectile{Speed: p.Speed, AngleDeg: p.Angle, Gravity: gravity(p)}
	return []diagram.CalculationResult{
		result("Time of flight", pr.TimeOfFlight(), "s", true),
		result("Max height", pr.MaxHeight(), "m", true),
		result("Range", pr.Range(), "m", false),
		result("Time at apex", pr.TimeAtApex(), "s", false),
	}
}

func atwoodPanel(p scenario.Params) []diagram.CalculationResult {
	at := kernel.Atwood{M1: p.Mass, M2: p.Mass2, Gravity: gravity(p)}
	return []diagram.CalculationResult{
		result("Acceleration", at.Acceleration(), "m/s²", true),
		result("Tension", at.Tension(), "N", true),
		result("Weight 1", p.Mass*gravity(p), "N", false),
		result("Weight 2", p.Mass2*gravity(p), "N", false),
	}
}

func circularPanel(p scenario.Params) []diagram.CalculationResult {
	c := kernel.Circular{Mass: p.Mass, Speed: p.Speed, Radius: p.Radius}
	return []diagram.CalculationResult{
		result("Centripetal force", c.CentripetalForce(), "N", true),
		result("Centripetal acceleration", c.CentripetalAcceleration(), "m/s²", false),
		result("Angular velocity", c.AngularVelocity(), "rad/s", false),
		result("Period", c.Period(), "s", false),
	}
}

func collisionPanel(p scenario.Params) []diagram.CalculationResult {
	c := kernel.Collision{
		M1: p.Mass, M2: p.Mass2,
		V1: p.Velocity1, V2: p.Velocity2,
		Restitution: p.Restitution,
	}
	r := c.Resolve()
	return []diagram.CalculationResult{
		result("Final velocity 1", r.V1, "m/s", true),
		result("Final velocity 2", r.V2, "m/s", true),
		result("Momentum before", r.MomentumBefore, "kg·m/s", false),
		result("Momentum after", r.MomentumAfter, "kg·m/s", false),
		result("Kinetic energy before", r.KineticBefore, "J", false),
		result("Kinetic energy after", r.KineticAfter, "J", false),
	}
}
