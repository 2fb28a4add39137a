package scenario

import (
	"math"

	"github.com/kmall/stepdiag/internal/diagram"
	"github.com/kmall/stepdiag/internal/kernel"
)

// Force colors shared across diagram types.
const (
	colorWeight   = "#e05555"
	colorNormal   = "#55aa55"
	colorFriction = "#d4a017"
	colorTension  = "#5588dd"
	colorApplied  = "#9955cc"
	colorCentrip  = "#dd7733"
)

func gravity(p Params) float64 {
	if p.Gravity > 0 {
		return p.Gravity
	}
	return kernel.DefaultGravity
}

func buildFreeBody(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 {
		return nil, invalidf(KindFreeBody, "mass must be positive, got %g", p.Mass)
	}
	w := p.Mass * gravity(p)

	forces := []diagram.Force{
		{Name: "weight", Type: diagram.ForceWeight, Magnitude: w, Angle: 270, Symbol: "W", Color: colorWeight},
		{Name: "normal", Type: diagram.ForceNormal, Magnitude: w, Angle: 90, Symbol: "N", Color: colorNormal},
	}
	if p.Applied > 0 {
		forces = append(forces, diagram.Force{
			Name: "applied", Type: diagram.ForceApplied, Magnitude: p.Applied,
			Angle: 0, Symbol: "F", Subscript: "app", Color: colorApplied,
		})
		if p.Mu > 0 {
			// Static friction opposes the push and never exceeds it.
			forces = append(forces, diagram.Force{
				Name: "friction", Type: diagram.ForceFriction,
				Magnitude: math.Min(p.Mu*w, p.Applied),
				Angle:     180, Symbol: "f", Color: colorFriction,
			})
		}
	}

	return finish(&Diagram{
		Kind:   KindFreeBody,
		Title:  title(cfg, "Free-body diagram"),
		Object: diagram.PhysicsObject{Type: diagram.ObjectBlock, Width: 60, Height: 60, Mass: p.Mass, Label: "m"},
		Forces: forces,
		Params: p,
	}, cfg.Steps)
}

func buildIncline(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 {
		return nil, invalidf(KindIncline, "mass must be positive, got %g", p.Mass)
	}
	if p.Angle <= 0 || p.Angle >= 90 {
		return nil, invalidf(KindIncline, "incline angle must be in (0, 90), got %g", p.Angle)
	}

	in := kernel.Incline{Mass: p.Mass, AngleDeg: p.Angle, Mu: p.Mu, Gravity: gravity(p)}
	f := in.Resolve()

	forces := []diagram.Force{
		{Name: "weight", Type: diagram.ForceWeight, Magnitude: f.Weight, Angle: 270, Symbol: "W", Color: colorWeight},
		{Name: "normal", Type: diagram.ForceNormal, Magnitude: f.Normal, Angle: 90 + p.Angle, Symbol: "N", Color: colorNormal},
	}
	if p.Mu > 0 {
		forces = append(forces, diagram.Force{
			Name: "friction", Type: diagram.ForceFriction, Magnitude: f.Friction,
			Angle: p.Angle, Symbol: "f", Color: colorFriction,
		})
	}

	return finish(&Diagram{
		Kind:         KindIncline,
		Title:        title(cfg, "Block on an inclined plane"),
		Object:       diagram.PhysicsObject{Type: diagram.ObjectBlock, Width: 50, Height: 50, Mass: p.Mass, Label: "m"},
		Forces:       forces,
		SurfaceAngle: p.Angle,
		Params:       p,
	}, cfg.Steps)
}

func buildProjectile(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 {
		return nil, invalidf(KindProjectile, "mass must be positive, got %g", p.Mass)
	}
	if p.Speed <= 0 {
		return nil, invalidf(KindProjectile, "launch speed must be positive, got %g", p.Speed)
	}
	if p.Angle <= 0 || p.Angle > 90 {
		return nil, invalidf(KindProjectile, "launch angle must be in (0, 90], got %g", p.Angle)
	}

	forces := []diagram.Force{
		{Name: "weight", Type: diagram.ForceWeight, Magnitude: p.Mass * gravity(p), Angle: 270, Symbol: "W", Color: colorWeight},
	}

	return finish(&Diagram{
		Kind:   KindProjectile,
		Title:  title(cfg, "Projectile motion"),
		Object: diagram.PhysicsObject{Type: diagram.ObjectSphere, Radius: 12, Mass: p.Mass, Label: "m"},
		Forces: forces,
		Params: p,
	}, cfg.Steps)
}

func buildAtwood(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 || p.Mass2 <= 0 {
		return nil, invalidf(KindAtwood, "both masses must be positive, got %g and %g", p.Mass, p.Mass2)
	}

	at := kernel.Atwood{M1: p.Mass, M2: p.Mass2, Gravity: gravity(p)}
	t := at.Tension()

	forces := []diagram.Force{
		{Name: "weight_1", Type: diagram.ForceWeight, Magnitude: p.Mass * gravity(p), Angle: 270, Symbol: "W", Subscript: "1", Color: colorWeight},
		{Name: "weight_2", Type: diagram.ForceWeight, Magnitude: p.Mass2 * gravity(p), Angle: 270, Symbol: "W", Subscript: "2", Color: colorWeight},
		{Name: "tension_1", Type: diagram.ForceTension, Magnitude: t, Angle: 90, Symbol: "T", Subscript: "1", Color: colorTension},
		{Name: "tension_2", Type: diagram.ForceTension, Magnitude: t, Angle: 90, Symbol: "T", Subscript: "2", Color: colorTension},
	}

	return finish(&Diagram{
		Kind:   KindAtwood,
		Title:  title(cfg, "Atwood machine"),
		Object: diagram.PhysicsObject{Type: diagram.ObjectBlock, Width: 40, Height: 40, Mass: p.Mass, Label: "m1"},
		Forces: forces,
		Params: p,
	}, cfg.Steps)
}

func buildCircular(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 {
		return nil, invalidf(KindCircular, "mass must be positive, got %g", p.Mass)
	}
	if p.Radius <= 0 {
		return nil, invalidf(KindCircular, "radius must be positive, got %g", p.Radius)
	}
	if p.Speed <= 0 {
		return nil, invalidf(KindCircular, "speed must be positive, got %g", p.Speed)
	}

	c := kernel.Circular{Mass: p.Mass, Speed: p.Speed, Radius: p.Radius}

	forces := []diagram.Force{
		{Name: "weight", Type: diagram.ForceWeight, Magnitude: p.Mass * gravity(p), Angle: 270, Symbol: "W", Color: colorWeight},
		{Name: "centripetal", Type: diagram.ForceCentripetal, Magnitude: c.CentripetalForce(), Angle: 180, Symbol: "F", Subscript: "c", Color: colorCentrip},
	}

	return finish(&Diagram{
		Kind:   KindCircular,
		Title:  title(cfg, "Uniform circular motion"),
		Object: diagram.PhysicsObject{Type: diagram.ObjectSphere, Radius: 10, Mass: p.Mass, Label: "m"},
		Forces: forces,
		Params: p,
	}, cfg.Steps)
}

func buildCollision(cfg *Config) (*Diagram, error) {
	p := cfg.Params
	if p.Mass <= 0 || p.Mass2 <= 0 {
		return nil, invalidf(KindCollision, "both masses must be positive, got %g and %g", p.Mass, p.Mass2)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return nil, invalidf(KindCollision, "restitution must be in [0, 1], got %g", p.Restitution)
	}

	// A collision diagram reveals no force arrows; its story is told by
	// the synthetic momentum and energy comparison steps.
	flags := cfg.Steps
	flags.Momentum = true
	flags.Energy = true

	return finish(&Diagram{
		Kind:   KindCollision,
		Title:  title(cfg, "1-D collision"),
		Object: diagram.PhysicsObject{Type: diagram.ObjectCar, Width: 70, Height: 30, Mass: p.Mass, Label: "m1"},
		Params: p,
	}, flags)
}

func title(cfg *Config, fallback string) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return fallback
}
