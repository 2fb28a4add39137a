package layout

import (
	"math"
	"testing"

	"github.com/kmall/stepdiag/internal/diagram"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		objType  diagram.ObjectType
		expected ShapeClass
	}{
		{diagram.ObjectSphere, ShapeBall},
		{diagram.ObjectPendulum, ShapeBall},
		{diagram.ObjectParticle, ShapePoint},
		{diagram.ObjectBlock, ShapeBlock},
		{diagram.ObjectCar, ShapeBlock},
		{"submarine", ShapeBlock},
	}

	for _, tt := range tests {
		if got := ClassOf(tt.objType); got != tt.expected {
			t.Errorf("ClassOf(%s) = %s, expected %s", tt.objType, got, tt.expected)
		}
	}
}

func TestAnchorOverride(t *testing.T) {
	origin := diagram.Vec2{X: 7, Y: -3}
	f := diagram.Force{Name: "applied", Type: diagram.ForceApplied, Angle: 0, Origin: &origin}
	obj := diagram.PhysicsObject{Type: diagram.ObjectSphere, Radius: 10}

	got := Anchor(f, obj, diagram.Vec2{X: 100, Y: 50}, 0)
	if got.X != 107 || got.Y != 47 {
		t.Errorf("override must pass through verbatim, got %+v", got)
	}
}

func TestAnchorBall(t *testing.T) {
	obj := diagram.PhysicsObject{Type: diagram.ObjectSphere, Radius: 10}
	center := diagram.Vec2{X: 50, Y: 50}

	// Force pointing up (90 deg) anchors at the top of the ball.
	f := diagram.Force{Name: "normal", Type: diagram.ForceNormal, Angle: 90}
	got := Anchor(f, obj, center, 0)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-40) > 1e-9 {
		t.Errorf("expected (50, 40), got %+v", got)
	}
}

func TestAnchorPoint(t *testing.T) {
	obj := diagram.PhysicsObject{Type: diagram.ObjectParticle}
	center := diagram.Vec2{X: 5, Y: 5}

	f := diagram.Force{Name: "weight", Type: diagram.ForceWeight, Angle: 270}
	if got := Anchor(f, obj, center, 0); got != center {
		t.Errorf("point objects anchor at center, got %+v", got)
	}
}

func TestAnchorBlock(t *testing.T) {
	obj := diagram.PhysicsObject{Type: diagram.ObjectBlock, Width: 20, Height: 10}
	center := diagram.Vec2{}

	tests := []struct {
		angle float64
		x, y  float64
	}{
		{0, 10, 0},    // right face
		{90, 0, -5},   // top face
		{180, -10, 0}, // left face
		{270, 0, 5},   // bottom face
	}

	for _, tt := range tests {
		f := diagram.Force{Name: "f", Type: diagram.ForceApplied, Angle: tt.angle}
		got := Anchor(f, obj, center, 0)
		if math.Abs(got.X-tt.x) > 1e-9 || math.Abs(got.Y-tt.y) > 1e-9 {
			t.Errorf("angle %v: expected (%v, %v), got %+v", tt.angle, tt.x, tt.y, got)
		}
	}
}

func TestAnchorSurfaceRotation(t *testing.T) {
	obj := diagram.PhysicsObject{Type: diagram.ObjectSphere, Radius: 1}
	center := diagram.Vec2{}

	// A normal force at 90 deg on a 30 deg slope anchors as if at 120 deg.
	f := diagram.Force{Name: "normal", Type: diagram.ForceNormal, Angle: 90}
	got := Anchor(f, obj, center, 30)
	want := diagram.UnitFromAngle(120)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestAnchorDeterminism(t *testing.T) {
	obj := diagram.PhysicsObject{Type: diagram.ObjectTruck, Width: 40, Height: 16}
	f := diagram.Force{Name: "drive", Type: diagram.ForceDrive, Angle: 37}
	center := diagram.Vec2{X: 3, Y: 9}

	first := Anchor(f, obj, center, 15)
	for i := 0; i < 10; i++ {
		if got := Anchor(f, obj, center, 15); got != first {
			t.Fatalf("anchor not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestDecompose(t *testing.T) {
	w := diagram.Force{Name: "weight", Type: diagram.ForceWeight, Magnitude: 98, Angle: 270, Symbol: "W"}
	par, perp := Decompose(w, 30)

	rad := 30 * math.Pi / 180
	if math.Abs(par.Magnitude-98*math.Sin(rad)) > 1e-9 {
		t.Errorf("unexpected parallel magnitude %f", par.Magnitude)
	}
	if math.Abs(perp.Magnitude-98*math.Cos(rad)) > 1e-9 {
		t.Errorf("unexpected perpendicular magnitude %f", perp.Magnitude)
	}
	if par.Angle != 210 {
		t.Errorf("parallel should point down-slope at 210, got %f", par.Angle)
	}
	if perp.Angle != -60 {
		t.Errorf("perpendicular should point into the slope at -60, got %f", perp.Angle)
	}
	if par.Type != diagram.ForceComponent || perp.Type != diagram.ForceComponent {
		t.Error("components must be typed as components")
	}
	if par.Name == perp.Name {
		t.Error("component names must differ")
	}
}
