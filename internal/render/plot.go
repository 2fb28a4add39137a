package render

import (
	"github.com/guptarohit/asciigraph"

	"github.com/kmall/stepdiag/internal/kernel"
)

// TrajectoryPlot graphs a projectile's height over its flight.
func TrajectoryPlot(p kernel.Projectile, width, height int) string {
	points := p.Trajectory(width, p.Y0)
	heights := make([]float64, len(points))
	for i, pt := range points {
		heights[i] = p.Y0 - pt.Y
	}
	return asciigraph.Plot(heights,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("height (m) over flight"),
	)
}
