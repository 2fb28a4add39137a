// Package render draws a diagram's current reveal state for the
// terminal: a braille canvas of the object and its visible force
// arrows, and a lipgloss-styled step legend. It is a reference
// consumer of the engine, not part of it.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmall/stepdiag/internal/diagram"
	"github.com/kmall/stepdiag/internal/layout"
	"github.com/kmall/stepdiag/internal/scenario"
	"github.com/kmall/stepdiag/internal/steps"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	visibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// View renders the diagram at the cursor's step. Only forces whose
// step is visible are drawn; the current step's forces are listed with
// the spotlight marker.
func View(d *scenario.Diagram, cursor *steps.Cursor, width, height int) string {
	canvas := NewCanvas(width, height)
	cx := width      // sub-pixel center x (width*2 / 2)
	cy := height * 2 // sub-pixel center y (height*4 / 2)
	center := diagram.Vec2{X: float64(cx), Y: float64(cy)}

	drawObject(canvas, d.Object, cx, cy)
	if d.SurfaceAngle > 0 {
		drawSlope(canvas, d.SurfaceAngle, cx, cy, width)
	}

	scale := arrowScale(d, width, height)
	for _, f := range d.Forces {
		if !cursor.IsVisible(string(f.Type)) {
			continue
		}
		drawForce(canvas, f, d.Object, center, scale)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.Title))
	sb.WriteByte('\n')
	sb.WriteString(canvas.String())
	sb.WriteString(legend(d, cursor))
	return sb.String()
}

func drawObject(c *Canvas, obj diagram.PhysicsObject, cx, cy int) {
	switch layout.ClassOf(obj.Type) {
	case layout.ShapeBall:
		r := int(obj.Radius)
		if r < 2 {
			r = 6
		}
		c.Circle(cx, cy, r)
	case layout.ShapePoint:
		c.Set(cx, cy)
	default:
		hw := int(obj.Width / 2)
		hh := int(obj.Height / 2)
		if hw < 2 {
			hw = 8
		}
		if hh < 2 {
			hh = 8
		}
		c.Rect(cx-hw, cy-hh, cx+hw, cy+hh)
	}
}

func drawSlope(c *Canvas, angleDeg float64, cx, cy, width int) {
	rad := angleDeg * math.Pi / 180
	run := float64(width)
	rise := run * math.Tan(rad)
	c.Line(cx-int(run), cy+int(rise), cx+int(run), cy-int(rise))
}

func drawForce(c *Canvas, f diagram.Force, obj diagram.PhysicsObject, center diagram.Vec2, scale float64) {
	if f.Magnitude <= 0 {
		return
	}
	start := layout.Anchor(f, obj, center, 0)
	dir := diagram.UnitFromAngle(f.Angle)
	end := start.Add(dir.Scale(math.Max(f.Magnitude*scale, 8)))
	c.Arrow(int(start.X), int(start.Y), int(end.X), int(end.Y))
}

func arrowScale(d *scenario.Diagram, width, height int) float64 {
	maxMag := 0.0
	for _, f := range d.Forces {
		maxMag = math.Max(maxMag, f.Magnitude)
	}
	if maxMag == 0 {
		return 1
	}
	longest := 0.4 * math.Min(float64(width*2), float64(height*4))
	return longest / maxMag
}

func legend(d *scenario.Diagram, cursor *steps.Cursor) string {
	var sb strings.Builder
	state := cursor.State()
	sb.WriteString(dimStyle.Render(fmt.Sprintf("step %d/%d", state.Current+1, state.Total)))
	sb.WriteByte('\n')

	for _, s := range d.Steps {
		label := stepLabel(d, s)
		switch {
		case cursor.IsCurrent(s.ID):
			sb.WriteString(currentStyle.Render("▸ " + label))
		case cursor.IsVisible(s.ID):
			sb.WriteString(visibleStyle.Render("  " + label))
		default:
			sb.WriteString(hiddenStyle.Render("  " + label))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func stepLabel(d *scenario.Diagram, s diagram.StepDefinition) string {
	if s.ID == steps.SetupStepID {
		label := d.Object.Label
		if label == "" {
			label = string(d.Object.Type)
		}
		return "object " + label
	}
	if len(s.ForceNames) > 0 {
		parts := make([]string, 0, len(s.ForceNames))
		for _, name := range s.ForceNames {
			if f, ok := d.Force(name); ok && f.Symbol != "" {
				sym := f.Symbol
				if f.Subscript != "" {
					sym += "_" + f.Subscript
				}
				parts = append(parts, sym)
				continue
			}
			parts = append(parts, name)
		}
		return s.ID + " (" + strings.Join(parts, ", ") + ")"
	}
	return strings.ReplaceAll(s.ID, "_", " ")
}
