// Package export writes diagrams and trajectories as SVG for embedding
// in worksheets and tutor transcripts.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/kmall/stepdiag/internal/diagram"
	"github.com/kmall/stepdiag/internal/layout"
	"github.com/kmall/stepdiag/internal/scenario"
)

const defaultStroke = "#222222"

// DiagramSVG draws the full free-body diagram: the object, every force
// arrow from its layout anchor, and (on an incline) the dashed weight
// components.
func DiagramSVG(d *scenario.Diagram, width, height int) string {
	w := float64(width)
	h := float64(height)
	center := diagram.Vec2{X: w / 2, Y: h / 2}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	if d.SurfaceAngle > 0 {
		writeSlope(&sb, d.SurfaceAngle, center, w)
	}
	writeObject(&sb, d.Object, center)

	scale := arrowScale(d.Forces, math.Min(w, h))
	for _, f := range d.Forces {
		writeForce(&sb, f, d, center, scale, false)
	}
	if d.Kind == scenario.KindIncline {
		if weight, ok := d.Force("weight"); ok {
			par, perp := layout.Decompose(weight, d.SurfaceAngle)
			writeForce(&sb, par, d, center, scale, true)
			writeForce(&sb, perp, d, center, scale, true)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeObject(sb *strings.Builder, obj diagram.PhysicsObject, center diagram.Vec2) {
	switch layout.ClassOf(obj.Type) {
	case layout.ShapeBall:
		r := obj.Radius
		if r == 0 {
			r = 12
		}
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="2"/>
`, center.X, center.Y, r, defaultStroke)
	case layout.ShapePoint:
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="2" fill="%s"/>
`, center.X, center.Y, defaultStroke)
	default:
		hw := obj.Width / 2
		hh := obj.Height / 2
		if hw == 0 {
			hw = 25
		}
		if hh == 0 {
			hh = 25
		}
		fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>
`, center.X-hw, center.Y-hh, hw*2, hh*2, defaultStroke)
	}
	if obj.Label != "" {
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="14">%s</text>
`, center.X, center.Y+5, obj.Label)
	}
}

func writeSlope(sb *strings.Builder, angleDeg float64, center diagram.Vec2, width float64) {
	rad := angleDeg * math.Pi / 180
	run := width / 2
	rise := run * math.Tan(rad)
	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="1.5"/>
`, center.X-run, center.Y+rise, center.X+run, center.Y-rise)
}

func writeForce(sb *strings.Builder, f diagram.Force, d *scenario.Diagram, center diagram.Vec2, scale float64, dashed bool) {
	if f.Magnitude <= 0 {
		return
	}
	start := layout.Anchor(f, d.Object, center, 0)
	dir := diagram.UnitFromAngle(f.Angle)
	end := start.Add(dir.Scale(math.Max(f.Magnitude*scale, 15)))

	color := f.Color
	if color == "" {
		color = defaultStroke
	}
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="5,4"`
	}

	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"%s/>
`, start.X, start.Y, end.X, end.Y, color, dash)
	writeArrowhead(sb, start, end, color)

	label := f.Symbol
	if label == "" {
		label = f.Name
	}
	if f.Subscript != "" {
		label += f.Subscript
	}
	tip := end.Add(dir.Scale(14))
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="13" fill="%s">%s</text>
`, tip.X, tip.Y, color, label)
}

func writeArrowhead(sb *strings.Builder, start, end diagram.Vec2, color string) {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	const size = 8.0
	left := diagram.Vec2{
		X: end.X - size*math.Cos(angle-math.Pi/6),
		Y: end.Y - size*math.Sin(angle-math.Pi/6),
	}
	right := diagram.Vec2{
		X: end.X - size*math.Cos(angle+math.Pi/6),
		Y: end.Y - size*math.Sin(angle+math.Pi/6),
	}
	fmt.Fprintf(sb, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, end.X, end.Y, left.X, left.Y, right.X, right.Y, color)
}

func arrowScale(forces []diagram.Force, span float64) float64 {
	maxMag := 0.0
	for _, f := range forces {
		maxMag = math.Max(maxMag, f.Magnitude)
	}
	if maxMag == 0 {
		return 1
	}
	return 0.35 * span / maxMag
}

// TrajectorySVG plots a sampled flight path as a polyline, fitted to
// the viewport with 10% padding.
func TrajectorySVG(points []diagram.Vec2, width, height int, stroke string) string {
	if len(points) < 2 {
		return ""
	}
	if stroke == "" {
		stroke = defaultStroke
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<polyline fill="none" stroke="%s" stroke-width="2" points="`, width, height, width, height, stroke)

	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		px := (p.X - minX) / rangeX * float64(width)
		py := (p.Y - minY) / rangeY * float64(height)
		fmt.Fprintf(&sb, "%.1f,%.1f", px, py)
	}
	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
