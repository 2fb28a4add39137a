package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kmall/stepdiag/internal/diagram"
)

// DefaultGravity is the textbook value used across scenarios, m/s^2.
const DefaultGravity = 9.8

// Projectile describes a launch in diagram space: y grows downward, so
// the trajectory dips to smaller y while rising and returns to Y0 at
// time of flight.
type Projectile struct {
	Speed    float64 // launch speed, m/s
	AngleDeg float64 // launch angle above horizontal, degrees
	Gravity  float64
	X0       float64
	Y0       float64
}

func NewProjectile(speed, angleDeg float64) Projectile {
	return Projectile{
		Speed:    speed,
		AngleDeg: angleDeg,
		Gravity:  DefaultGravity,
	}
}

func (p Projectile) angleRad() float64 {
	return p.AngleDeg * math.Pi / 180
}

// TimeOfFlight is the time to return to launch height.
func (p Projectile) TimeOfFlight() float64 {
	return 2 * p.Speed * math.Sin(p.angleRad()) / p.Gravity
}

// TimeAtApex is when vertical velocity crosses zero.
func (p Projectile) TimeAtApex() float64 {
	return p.Speed * math.Sin(p.angleRad()) / p.Gravity
}

// MaxHeight is the rise above launch height at the apex.
func (p Projectile) MaxHeight() float64 {
	vy := p.Speed * math.Sin(p.angleRad())
	return vy * vy / (2 * p.Gravity)
}

// Range is the horizontal distance covered over the full flight.
func (p Projectile) Range() float64 {
	return p.Speed * math.Cos(p.angleRad()) * p.TimeOfFlight()
}

// PositionAt evaluates the trajectory at time t in diagram coordinates.
func (p Projectile) PositionAt(t float64) diagram.Vec2 {
	vx := p.Speed * math.Cos(p.angleRad())
	vy := p.Speed * math.Sin(p.angleRad())
	return diagram.Vec2{
		X: p.X0 + vx*t,
		Y: p.Y0 - (vy*t - 0.5*p.Gravity*t*t),
	}
}

// Trajectory samples the flight path at n evenly spaced times from
// launch to time of flight. Points below groundY (larger y in diagram
// space) are excluded.
func (p Projectile) Trajectory(n int, groundY float64) []diagram.Vec2 {
	if n < 2 {
		n = 2
	}
	times := floats.Span(make([]float64, n), 0, p.TimeOfFlight())
	points := make([]diagram.Vec2, 0, n)
	for _, t := range times {
		pt := p.PositionAt(t)
		if pt.Y > groundY {
			continue
		}
		points = append(points, pt)
	}
	return points
}
