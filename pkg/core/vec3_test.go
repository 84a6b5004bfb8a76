package core

import (
	"testing"
)

func TestNormalizeReturnsPriorLength(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Normalize()

	if !AreEqual(length, 5) {
		t.Errorf("Expected prior length 5, got %v", length)
	}
	if !AreEqual(v.Length(), 1) {
		t.Errorf("Expected unit length after Normalize, got %v", v.Length())
	}
}

func TestNormalizedLengthLaw(t *testing.T) {
	vectors := []Vector3{
		{1, 0, 0},
		{1, 2, 3},
		{-5, 0.5, 2},
		{0.001, 0.002, -0.003},
		{100, -200, 300},
	}

	for _, v := range vectors {
		n := v.Normalized()
		if Absf(n.Length()-1) > 1e-6 {
			t.Errorf("Normalized(%v).Length() = %v, want 1", v, n.Length())
		}
	}
}

func TestReflect(t *testing.T) {
	l := NewVector3(1, -1, 0)
	n := NewVector3(0, 1, 0)

	r := Reflect(l, n)
	want := NewVector3(1, 1, 0)
	if !AreEqual(r.X, want.X) || !AreEqual(r.Y, want.Y) || !AreEqual(r.Z, want.Z) {
		t.Errorf("Reflect(%v, %v) = %v, want %v", l, n, r, want)
	}
}

func TestReflectInvolution(t *testing.T) {
	vectors := []Vector3{
		{1, -1, 0},
		{0.3, 0.4, -0.5},
		{-2, 5, 1},
	}
	n := NewVector3(0, 1, 0)

	for _, v := range vectors {
		rr := Reflect(Reflect(v, n), n)
		if Absf(rr.X-v.X) > 1e-6 || Absf(rr.Y-v.Y) > 1e-6 || Absf(rr.Z-v.Z) > 1e-6 {
			t.Errorf("Reflect(Reflect(%v)) = %v, want the original", v, rr)
		}
	}
}

func TestDotAndCross(t *testing.T) {
	if got := UnitX.Dot(UnitY); got != 0 {
		t.Errorf("UnitX·UnitY = %v, want 0", got)
	}
	if got := UnitX.Cross(UnitY); got != UnitZ {
		t.Errorf("UnitX×UnitY = %v, want UnitZ", got)
	}
	if got := UnitY.Cross(UnitX); got != UnitZ.Negate() {
		t.Errorf("UnitY×UnitX = %v, want -UnitZ", got)
	}
}

func TestSqrMagnitude(t *testing.T) {
	v := NewVector3(1, 2, 2)
	if got := v.SqrMagnitude(); got != 9 {
		t.Errorf("SqrMagnitude = %v, want 9", got)
	}
}

func TestComponentAccess(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for axis, want := range []float32{1, 2, 3} {
		if got := v.At(axis); got != want {
			t.Errorf("At(%d) = %v, want %v", axis, got, want)
		}
	}
}

func TestMinMaxVec(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(3, 2, -4)

	if got := MinVec(a, b); got != NewVector3(1, 2, -4) {
		t.Errorf("MinVec = %v", got)
	}
	if got := MaxVec(a, b); got != NewVector3(3, 5, -2) {
		t.Errorf("MaxVec = %v", got)
	}
}

func TestNormalizeZeroVectorIsNaN(t *testing.T) {
	v := Vector3{}
	v.Normalize()
	if !v.IsNaN() {
		t.Errorf("Expected NaN components after normalizing zero vector, got %v", v)
	}
}
