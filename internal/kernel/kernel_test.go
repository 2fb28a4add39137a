package kernel

import (
	"math"
	"testing"
)

func TestAtwood(t *testing.T) {
	a := Atwood{M1: 5, M2: 3, Gravity: 9.8}

	if got := a.Acceleration(); math.Abs(got-2.45) > 1e-6 {
		t.Errorf("expected acceleration 2.45, got %f", got)
	}
	if got := a.Tension(); math.Abs(got-36.75) > 1e-6 {
		t.Errorf("expected tension 36.75, got %f", got)
	}
	if a.Heavier() != 1 {
		t.Errorf("expected mass 1 to descend")
	}
}

func TestAtwoodBalanced(t *testing.T) {
	a := NewAtwood(4, 4)
	if a.Acceleration() != 0 {
		t.Errorf("balanced machine should not accelerate, got %f", a.Acceleration())
	}
	if a.Heavier() != 0 {
		t.Errorf("expected no descending side")
	}
}

func TestInclineResolve(t *testing.T) {
	in := Incline{Mass: 2, AngleDeg: 30, Mu: 0.2, Gravity: 9.8}
	f := in.Resolve()

	w := 2 * 9.8
	if math.Abs(f.Weight-w) > 1e-9 {
		t.Errorf("expected weight %f, got %f", w, f.Weight)
	}
	if math.Abs(f.Normal-w*math.Cos(math.Pi/6)) > 1e-9 {
		t.Errorf("unexpected normal %f", f.Normal)
	}
	if math.Abs(f.Parallel-w*math.Sin(math.Pi/6)) > 1e-9 {
		t.Errorf("unexpected parallel %f", f.Parallel)
	}
	if f.Perpendicular != f.Normal {
		t.Errorf("perpendicular component should equal normal")
	}
}

func TestInclineFrictionCap(t *testing.T) {
	// Nearly flat slope with high mu: friction must not exceed the
	// driving component, so the block stays put.
	in := Incline{Mass: 5, AngleDeg: 5, Mu: 0.8, Gravity: 9.8}
	f := in.Resolve()

	if f.Friction > f.Parallel+1e-12 {
		t.Errorf("friction %f exceeds driving component %f", f.Friction, f.Parallel)
	}
	if math.Abs(f.NetForce()) > 1e-9 {
		t.Errorf("expected static equilibrium, net %f", f.NetForce())
	}
	if in.Acceleration() != 0 {
		t.Errorf("expected zero acceleration, got %f", in.Acceleration())
	}
}

func TestInclineSliding(t *testing.T) {
	in := Incline{Mass: 5, AngleDeg: 45, Mu: 0.1, Gravity: 9.8}
	f := in.Resolve()

	if f.Friction != f.MaxFriction {
		t.Errorf("steep slope should saturate friction at mu*N")
	}
	if f.NetForce() <= 0 {
		t.Errorf("expected down-slope net force, got %f", f.NetForce())
	}
}

func TestCircular(t *testing.T) {
	c := NewCircular(2, 4, 0.5)

	if got := c.CentripetalAcceleration(); math.Abs(got-32) > 1e-9 {
		t.Errorf("expected a_c 32, got %f", got)
	}
	if got := c.CentripetalForce(); math.Abs(got-64) > 1e-9 {
		t.Errorf("expected F_c 64, got %f", got)
	}
	if got := c.AngularVelocity(); math.Abs(got-8) > 1e-9 {
		t.Errorf("expected omega 8, got %f", got)
	}
	if got := c.Period(); math.Abs(got-2*math.Pi*0.5/4) > 1e-9 {
		t.Errorf("unexpected period %f", got)
	}
}

func TestProjectileRoundTrip(t *testing.T) {
	p := NewProjectile(20, 40)

	end := p.PositionAt(p.TimeOfFlight())
	if math.Abs(end.Y-p.Y0) > 1e-9 {
		t.Errorf("expected return to launch height, got y=%f", end.Y)
	}

	apex := p.PositionAt(p.TimeAtApex())
	rise := p.Y0 - apex.Y
	if math.Abs(rise-p.MaxHeight()) > 1e-9 {
		t.Errorf("apex rise %f does not match MaxHeight %f", rise, p.MaxHeight())
	}
}

func TestProjectileTrajectory(t *testing.T) {
	p := NewProjectile(15, 60)
	points := p.Trajectory(100, p.Y0)

	if len(points) < 2 {
		t.Fatalf("expected sampled trajectory, got %d points", len(points))
	}

	// Sampled peak should match the closed form within sampling resolution.
	peak := 0.0
	for _, pt := range points {
		if rise := p.Y0 - pt.Y; rise > peak {
			peak = rise
		}
	}
	if math.Abs(peak-p.MaxHeight()) > p.MaxHeight()*0.01 {
		t.Errorf("sampled peak %f vs closed form %f", peak, p.MaxHeight())
	}

	// No point below ground.
	for _, pt := range points {
		if pt.Y > p.Y0+1e-9 {
			t.Errorf("point below ground: %+v", pt)
		}
	}
}

func TestProjectileNoNaN(t *testing.T) {
	p := NewProjectile(10, 0)
	for _, tt := range []float64{0, 0.5, 1} {
		pt := p.PositionAt(tt)
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			t.Errorf("NaN position at t=%f", tt)
		}
	}
}
