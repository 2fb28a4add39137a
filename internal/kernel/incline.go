package kernel

import "math"

// Incline is a block of mass Mass on a plane tilted AngleDeg above
// horizontal, with friction coefficient Mu.
type Incline struct {
	Mass     float64
	AngleDeg float64
	Mu       float64
	Gravity  float64
}

func NewIncline(mass, angleDeg, mu float64) Incline {
	return Incline{
		Mass:     mass,
		AngleDeg: angleDeg,
		Mu:       mu,
		Gravity:  DefaultGravity,
	}
}

// InclineForces holds the resolved magnitudes, all in newtons.
type InclineForces struct {
	Weight        float64
	Normal        float64
	Friction      float64 // applied friction, capped at the driving component
	MaxFriction   float64 // mu * N
	Parallel      float64 // weight component down the slope
	Perpendicular float64 // weight component into the slope
}

// Resolve computes the force balance. Friction is min(mu*N, W*sin)
// so static friction never exceeds the component it opposes.
func (in Incline) Resolve() InclineForces {
	rad := in.AngleDeg * math.Pi / 180
	w := in.Mass * in.Gravity
	n := w * math.Cos(rad)
	par := w * math.Sin(rad)
	fmax := in.Mu * n
	return InclineForces{
		Weight:        w,
		Normal:        n,
		Friction:      math.Min(fmax, par),
		MaxFriction:   fmax,
		Parallel:      par,
		Perpendicular: n,
	}
}

// NetForce is the unbalanced force along the slope, down-slope positive.
func (f InclineForces) NetForce() float64 {
	return f.Parallel - f.Friction
}

// Acceleration is the block's acceleration along the slope.
func (in Incline) Acceleration() float64 {
	if in.Mass == 0 {
		return 0
	}
	return in.Resolve().NetForce() / in.Mass
}
