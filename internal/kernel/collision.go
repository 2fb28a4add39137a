package kernel

// Collision is a 1-D two-body collision. Restitution interpolates
// between perfectly inelastic (0) and perfectly elastic (1).
// Precondition: M1, M2 > 0, Restitution in [0, 1].
type Collision struct {
	M1, M2      float64
	V1, V2      float64
	Restitution float64
}

func NewCollision(m1, v1, m2, v2, e float64) Collision {
	return Collision{M1: m1, M2: m2, V1: v1, V2: v2, Restitution: e}
}

// CollisionResult holds post-collision velocities alongside the
// conserved quantities before and after, for comparison panels.
type CollisionResult struct {
	V1, V2         float64
	MomentumBefore float64
	MomentumAfter  float64
	KineticBefore  float64
	KineticAfter   float64
}

// Resolve computes the outcome. Momentum is conserved for every
// restitution; kinetic energy only at e = 1.
func (c Collision) Resolve() CollisionResult {
	e := c.Restitution
	total := c.M1 + c.M2
	v1 := ((c.M1-e*c.M2)*c.V1 + (1+e)*c.M2*c.V2) / total
	v2 := ((c.M2-e*c.M1)*c.V2 + (1+e)*c.M1*c.V1) / total
	return CollisionResult{
		V1:             v1,
		V2:             v2,
		MomentumBefore: c.M1*c.V1 + c.M2*c.V2,
		MomentumAfter:  c.M1*v1 + c.M2*v2,
		KineticBefore:  0.5*c.M1*c.V1*c.V1 + 0.5*c.M2*c.V2*c.V2,
		KineticAfter:   0.5*c.M1*v1*v1 + 0.5*c.M2*v2*v2,
	}
}
