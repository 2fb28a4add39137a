package layout

import (
	"math"

	"github.com/kmall/stepdiag/internal/diagram"
)

// ShapeClass is the small closed set of layouts an object can take.
type ShapeClass string

const (
	ShapeBall  ShapeClass = "ball"
	ShapePoint ShapeClass = "point"
	ShapeBlock ShapeClass = "block"
)

var shapeClasses = map[diagram.ObjectType]ShapeClass{
	diagram.ObjectSphere:   ShapeBall,
	diagram.ObjectPendulum: ShapeBall,
	diagram.ObjectParticle: ShapePoint,
}

// ClassOf maps an object type to its layout class. Unrecognized types
// fall back to block rather than failing.
func ClassOf(t diagram.ObjectType) ShapeClass {
	if c, ok := shapeClasses[t]; ok {
		return c
	}
	return ShapeBlock
}

// anchorFunc returns the offset from object center to the boundary
// point nearest the direction the force points. New shape classes are
// added by extending the table, not by growing a conditional.
type anchorFunc func(obj diagram.PhysicsObject, dir diagram.Vec2) diagram.Vec2

var anchorFuncs = map[ShapeClass]anchorFunc{
	ShapeBall:  ballAnchor,
	ShapePoint: pointAnchor,
	ShapeBlock: blockAnchor,
}

func ballAnchor(obj diagram.PhysicsObject, dir diagram.Vec2) diagram.Vec2 {
	r := obj.Radius
	if r == 0 {
		r = obj.Width / 2
	}
	return dir.Scale(r)
}

func pointAnchor(diagram.PhysicsObject, diagram.Vec2) diagram.Vec2 {
	return diagram.Vec2{}
}

func blockAnchor(obj diagram.PhysicsObject, dir diagram.Vec2) diagram.Vec2 {
	hw := obj.Width / 2
	hh := obj.Height / 2
	if hw == 0 {
		hw = hh
	}
	if hh == 0 {
		hh = hw
	}
	if hw == 0 && hh == 0 {
		return diagram.Vec2{}
	}

	// Scale the unit direction until it hits the rectangle boundary.
	t := math.Inf(1)
	if dir.X != 0 {
		t = hw / math.Abs(dir.X)
	}
	if dir.Y != 0 {
		t = math.Min(t, hh/math.Abs(dir.Y))
	}
	if math.IsInf(t, 1) {
		return diagram.Vec2{}
	}
	return dir.Scale(t)
}
