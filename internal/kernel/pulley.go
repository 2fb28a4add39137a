package kernel

import "math"

// Atwood is two masses hanging from an ideal massless pulley.
// Precondition: M1 + M2 > 0.
type Atwood struct {
	M1      float64
	M2      float64
	Gravity float64
}

func NewAtwood(m1, m2 float64) Atwood {
	return Atwood{M1: m1, M2: m2, Gravity: DefaultGravity}
}

// Acceleration is the shared magnitude of both masses' acceleration,
// the heavier side moving down.
func (a Atwood) Acceleration() float64 {
	return math.Abs(a.M1-a.M2) * a.Gravity / (a.M1 + a.M2)
}

// Tension is the rope tension, equal on both sides of an ideal pulley.
func (a Atwood) Tension() float64 {
	return 2 * a.M1 * a.M2 * a.Gravity / (a.M1 + a.M2)
}

// Heavier reports which mass index (1 or 2) descends, 0 on balance.
func (a Atwood) Heavier() int {
	switch {
	case a.M1 > a.M2:
		return 1
	case a.M2 > a.M1:
		return 2
	default:
		return 0
	}
}
