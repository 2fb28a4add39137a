// Package diagram provides the core value types shared by the diagram
// step engine:
//
//   - [Force]: one arrow on a free-body diagram
//   - [PhysicsObject]: the body the forces act on
//   - [StepDefinition]: one entry in a reveal sequence
//   - [StepState]: clamped cursor position within a sequence
//   - [CalculationResult]: one row of a what-if panel
//
// Coordinates follow diagram space: y grows downward, angles are degrees
// counterclockwise from +x. [UnitFromAngle] handles the flip.
//
// All types here are plain values; nothing in this package allocates
// hidden state or mutates its inputs.
package diagram
