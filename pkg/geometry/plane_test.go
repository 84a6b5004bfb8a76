package geometry

import (
	"testing"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

func TestPlaneHit(t *testing.T) {
	plane := NewPlane(core.Vector3{}, core.NewVector3(0, 1, 0), 1)
	ray := core.NewRay(core.NewVector3(0, 1, 0), core.NewVector3(0, -1, 0))

	hit := core.NewHitRecord()
	if !plane.Hit(ray, &hit) {
		t.Fatal("Expected hit")
	}
	if !core.AreEqual(hit.T, 1) {
		t.Errorf("T = %v, want 1", hit.T)
	}
	if hit.Normal != core.NewVector3(0, 1, 0) {
		t.Errorf("Normal = %v, want plane normal", hit.Normal)
	}
}

func TestPlaneParallelRayMisses(t *testing.T) {
	plane := NewPlane(core.Vector3{}, core.NewVector3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVector3(0, 1, 0), core.NewVector3(0, 0, 1))

	hit := core.NewHitRecord()
	if plane.Hit(ray, &hit) {
		t.Error("Ray parallel to the plane reported a hit")
	}
}

func TestPlaneNormalNotFlipped(t *testing.T) {
	// Hitting the back side still reports the stored normal
	plane := NewPlane(core.Vector3{}, core.NewVector3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVector3(0, -1, 0), core.NewVector3(0, 1, 0))

	hit := core.NewHitRecord()
	if !plane.Hit(ray, &hit) {
		t.Fatal("Expected hit from below")
	}
	if hit.Normal != core.NewVector3(0, 1, 0) {
		t.Errorf("Normal = %v, want unflipped plane normal", hit.Normal)
	}
}

func TestPlaneNormalizesOnConstruction(t *testing.T) {
	plane := NewPlane(core.Vector3{}, core.NewVector3(0, 5, 0), 0)
	if !core.AreEqual(plane.Normal.Length(), 1) {
		t.Errorf("Normal length = %v, want 1", plane.Normal.Length())
	}
}

func TestPlaneRespectsRayInterval(t *testing.T) {
	plane := NewPlane(core.NewVector3(0, 0, 10), core.NewVector3(0, 0, -1), 0)
	ray := core.NewRayInterval(core.Vector3{}, core.NewVector3(0, 0, 1), core.RayTMin, 5)

	hit := core.NewHitRecord()
	if plane.Hit(ray, &hit) {
		t.Error("Hit reported beyond TMax")
	}
}
