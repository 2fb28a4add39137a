package kernel

import "math"

// Circular is uniform circular motion at speed Speed on radius Radius.
// Precondition: Radius > 0.
type Circular struct {
	Mass   float64
	Speed  float64
	Radius float64
}

func NewCircular(mass, speed, radius float64) Circular {
	return Circular{Mass: mass, Speed: speed, Radius: radius}
}

// CentripetalAcceleration is v^2 / r, directed at the center.
func (c Circular) CentripetalAcceleration() float64 {
	return c.Speed * c.Speed / c.Radius
}

// CentripetalForce is m * v^2 / r.
func (c Circular) CentripetalForce() float64 {
	return c.Mass * c.CentripetalAcceleration()
}

// AngularVelocity is v / r, rad/s.
func (c Circular) AngularVelocity() float64 {
	return c.Speed / c.Radius
}

// Period is the time for one full revolution.
func (c Circular) Period() float64 {
	return 2 * math.Pi * c.Radius / c.Speed
}
