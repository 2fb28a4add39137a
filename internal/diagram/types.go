package diagram

import "math"

// Vec2 is a point or offset in diagram space. The y axis grows downward,
// matching screen coordinates; angles are still counterclockwise positive
// in the usual math convention, so a force at 90 degrees points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// UnitFromAngle returns the unit vector for an angle in degrees
// (0 = +x, counterclockwise positive) in downward-y diagram space.
func UnitFromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Cos(rad), -math.Sin(rad)}
}

type ForceType string

const (
	ForceWeight      ForceType = "weight"
	ForceNormal      ForceType = "normal"
	ForceFriction    ForceType = "friction"
	ForceTension     ForceType = "tension"
	ForceApplied     ForceType = "applied"
	ForceDrive       ForceType = "drive"
	ForceResistance  ForceType = "resistance"
	ForceThrust      ForceType = "thrust"
	ForceLift        ForceType = "lift"
	ForceDrag        ForceType = "drag"
	ForceSpring      ForceType = "spring"
	ForceBuoyancy    ForceType = "buoyancy"
	ForceCentripetal ForceType = "centripetal"
	ForceNet         ForceType = "net"
	ForceComponent   ForceType = "component"
)

// Force is one arrow on a free-body diagram. Name is unique within a
// diagram; Magnitude is in newtons and never negative (builders clamp or
// reject). Angle is in degrees, 0 = +x, counterclockwise positive.
// Origin, when set, is an explicit anchor offset from the object center
// that bypasses the layout engine entirely.
type Force struct {
	Name      string
	Type      ForceType
	Magnitude float64
	Angle     float64
	Symbol    string
	Subscript string
	Color     string
	Origin    *Vec2
}

type ObjectType string

const (
	ObjectBlock    ObjectType = "block"
	ObjectSphere   ObjectType = "sphere"
	ObjectParticle ObjectType = "particle"
	ObjectBoat     ObjectType = "boat"
	ObjectCar      ObjectType = "car"
	ObjectTruck    ObjectType = "truck"
	ObjectAirplane ObjectType = "airplane"
	ObjectPerson   ObjectType = "person"
	ObjectRocket   ObjectType = "rocket"
	ObjectPendulum ObjectType = "pendulum"
)

// PhysicsObject describes the body the forces act on. The engine only
// reads it for shape classification; it never mutates one.
type PhysicsObject struct {
	Type   ObjectType
	Width  float64
	Height float64
	Radius float64
	Mass   float64
	Label  string
	Color  string
}

// StepDefinition is one entry in a diagram's reveal sequence. Built once
// when the diagram is configured and immutable afterward; if the force
// set changes the whole sequence is rebuilt from scratch.
type StepDefinition struct {
	ID         string
	Ordinal    int
	ForceNames []string
}

// StepState is the current position in a reveal sequence.
// Invariant: 0 <= Current <= Total-1, Total >= 1.
type StepState struct {
	Current int
	Total   int
}

// ClampStep forces step into [0, total-1]. A non-positive total clamps
// to 0, so the invariant Total >= 1 is preserved at the boundary.
func ClampStep(step, total int) int {
	if total < 1 {
		return 0
	}
	if step < 0 {
		return 0
	}
	if step > total-1 {
		return total - 1
	}
	return step
}

// CalculationResult is one row of a what-if exploration panel. Results
// are recomputed from scratch on every parameter change.
type CalculationResult struct {
	Value     float64
	Unit      string
	Label     string
	Formatted string
	Primary   bool
}
