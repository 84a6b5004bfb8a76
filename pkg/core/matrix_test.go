package core

import (
	"testing"
)

func vecApproxEqual(a, b Vector3) bool {
	return Absf(a.X-b.X) < 1e-5 && Absf(a.Y-b.Y) < 1e-5 && Absf(a.Z-b.Z) < 1e-5
}

func TestTranslationAppliesToPointsOnly(t *testing.T) {
	m := CreateTranslation(NewVector3(1, 2, 3))
	v := NewVector3(1, 0, 0)

	if got := m.TransformVector(v); got != v {
		t.Errorf("TransformVector moved by translation: %v", got)
	}
	if got := m.TransformPoint(v); got != NewVector3(2, 2, 3) {
		t.Errorf("TransformPoint = %v, want {2, 2, 3}", got)
	}
}

func TestRotationY(t *testing.T) {
	m := CreateRotationY(Pi / 2)

	if got := m.TransformVector(UnitZ); !vecApproxEqual(got, UnitX) {
		t.Errorf("RotY(90°)·Z = %v, want X", got)
	}
	if got := m.TransformVector(UnitX); !vecApproxEqual(got, UnitZ.Negate()) {
		t.Errorf("RotY(90°)·X = %v, want -Z", got)
	}
}

func TestRotationX(t *testing.T) {
	m := CreateRotationX(Pi / 2)

	if got := m.TransformVector(UnitY); !vecApproxEqual(got, UnitZ) {
		t.Errorf("RotX(90°)·Y = %v, want Z", got)
	}
}

func TestScale(t *testing.T) {
	m := CreateScale(NewVector3(2, 3, 4))
	if got := m.TransformPoint(NewVector3(1, 1, 1)); got != NewVector3(2, 3, 4) {
		t.Errorf("Scale = %v", got)
	}
}

// The mesh transform composes rotation·translation·scale so that a
// translated mesh orbits the origin when rotated.
func TestCompositionIsOrbital(t *testing.T) {
	rts := CreateRotationY(Pi / 2).
		Multiply(CreateTranslation(NewVector3(1, 0, 0))).
		Multiply(CreateScale(NewVector3(1, 1, 1)))

	got := rts.TransformPoint(Vector3{})
	want := NewVector3(0, 0, -1) // translated to (1,0,0), then yawed 90°
	if !vecApproxEqual(got, want) {
		t.Errorf("rts·origin = %v, want %v", got, want)
	}
}

func TestCameraToWorldBasisRows(t *testing.T) {
	right := NewVector3(1, 0, 0)
	up := NewVector3(0, 1, 0)
	forward := NewVector3(0, 0, 1)
	origin := NewVector3(5, 6, 7)

	m := NewMatrix4(right, up, forward, origin)

	if got := m.TransformVector(NewVector3(0, 0, 1)); !vecApproxEqual(got, forward) {
		t.Errorf("camera z maps to %v, want forward", got)
	}
	if got := m.TransformPoint(Vector3{}); !vecApproxEqual(got, origin) {
		t.Errorf("camera origin maps to %v, want %v", got, origin)
	}
}
