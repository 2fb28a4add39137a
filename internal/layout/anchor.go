// Package layout decides where a force arrow starts on an object and
// how a decomposable force splits into surface components. Every
// function here is pure: identical inputs give an identical anchor,
// independent of render order or the current step.
package layout

import "github.com/kmall/stepdiag/internal/diagram"

// Anchor returns the absolute point where the force's arrow begins.
//
// An explicit Origin on the force wins: the result is center plus the
// override verbatim, with no validation or clamping — correctness of an
// override is the caller's responsibility.
//
// Otherwise the object's shape class picks a surface-anchoring rule,
// and surfaceAngleDeg rotates the force direction for inclined
// coordinate systems (e.g. a normal force on a slope).
func Anchor(f diagram.Force, obj diagram.PhysicsObject, center diagram.Vec2, surfaceAngleDeg float64) diagram.Vec2 {
	if f.Origin != nil {
		return center.Add(*f.Origin)
	}
	dir := diagram.UnitFromAngle(f.Angle + surfaceAngleDeg)
	return center.Add(anchorFuncs[ClassOf(obj.Type)](obj, dir))
}
