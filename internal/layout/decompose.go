package layout

import (
	"math"

	"github.com/kmall/stepdiag/internal/diagram"
)

// Decompose splits a force into its components relative to a surface
// tilted surfaceAngleDeg above horizontal: parallel points down-slope,
// perpendicular points into the surface. Used for weight on an incline.
// The synthetic forces carry the parent's symbol and color and are
// typed as components so the sequencer treats them as annotations, not
// reveal steps of their own.
func Decompose(f diagram.Force, surfaceAngleDeg float64) (parallel, perpendicular diagram.Force) {
	rad := surfaceAngleDeg * math.Pi / 180

	parallel = diagram.Force{
		Name:      f.Name + "_parallel",
		Type:      diagram.ForceComponent,
		Magnitude: f.Magnitude * math.Sin(rad),
		Angle:     surfaceAngleDeg + 180,
		Symbol:    f.Symbol,
		Subscript: "∥",
		Color:     f.Color,
	}
	perpendicular = diagram.Force{
		Name:      f.Name + "_perpendicular",
		Type:      diagram.ForceComponent,
		Magnitude: f.Magnitude * math.Cos(rad),
		Angle:     surfaceAngleDeg - 90,
		Symbol:    f.Symbol,
		Subscript: "⊥",
		Color:     f.Color,
	}
	return parallel, perpendicular
}
