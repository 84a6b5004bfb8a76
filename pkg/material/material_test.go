package material

import (
	"testing"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

func TestSolidColorIgnoresLighting(t *testing.T) {
	m := NewSolidColor(core.Blue)
	var info ShadeInfo
	hit := core.NewHitRecord()

	got := m.Shade(&info, &hit, core.UnitY, core.UnitZ)
	if got != core.Blue {
		t.Errorf("Shade = %v, want the solid color", got)
	}
	if info.NeedsBounce {
		t.Error("Solid color requested a bounce")
	}
}

func TestLambertianShade(t *testing.T) {
	m := NewLambertian(core.Red, 1)
	var info ShadeInfo
	hit := core.NewHitRecord()

	got := m.Shade(&info, &hit, core.UnitY, core.UnitZ)
	if !colorApproxEqual(got, core.ColorRGB{R: 1 / core.Pi}) {
		t.Errorf("Shade = %v, want red/pi", got)
	}
}

func TestLambertianPhongAddsLobes(t *testing.T) {
	hit := core.NewHitRecord()
	hit.Normal = core.NewVector3(0, 1, 0)

	l := core.NewVector3(0, -1, 0)
	v := core.NewVector3(0, 1, 0)

	m := NewLambertianPhong(core.Blue, 0.2, 0.8, 60)
	var info ShadeInfo
	got := m.Shade(&info, &hit, l, v)

	diffuseOnly := Lambert(0.2, core.Blue)
	if got.R <= diffuseOnly.R+1e-6 {
		t.Errorf("Specular lobe missing: %v vs diffuse %v", got, diffuseOnly)
	}
}

func TestCookTorranceMetalRequestsBounce(t *testing.T) {
	m := NewCookTorrance(core.White, 1, 0)

	hit := core.NewHitRecord()
	hit.Origin = core.NewVector3(0, 0, 4)
	hit.Normal = core.NewVector3(0, 0, -1)

	l := core.NewVector3(0, 0, -1)
	v := core.NewVector3(0, 0, -1)

	var info ShadeInfo
	m.Shade(&info, &hit, l, v)

	if !info.NeedsBounce {
		t.Fatal("Metal did not request a reflection bounce")
	}
	if !core.AreEqual(info.Reflectance, 1) {
		t.Errorf("Reflectance = %v, want (1-0)^2 = 1", info.Reflectance)
	}

	wantOrigin := hit.Origin.Add(hit.Normal.Multiply(core.ReflectionOffset))
	if info.ReflectionRay.Origin != wantOrigin {
		t.Errorf("Reflection origin = %v, want offset along normal %v", info.ReflectionRay.Origin, wantOrigin)
	}

	wantDir := core.Reflect(v.Negate(), hit.Normal)
	if info.ReflectionRay.Direction != wantDir {
		t.Errorf("Reflection direction = %v, want %v", info.ReflectionRay.Direction, wantDir)
	}
}

func TestCookTorranceRoughMetalReflectance(t *testing.T) {
	m := NewCookTorrance(core.White, 1, 0.4)

	hit := core.NewHitRecord()
	hit.Normal = core.NewVector3(0, 0, -1)

	var info ShadeInfo
	m.Shade(&info, &hit, core.NewVector3(0, 0, -1), core.NewVector3(0, 0, -1))

	want := core.Powf(1-0.4, 2)
	if !core.AreEqual(info.Reflectance, want) {
		t.Errorf("Reflectance = %v, want (1-roughness)^2 = %v", info.Reflectance, want)
	}
}

func TestCookTorranceDielectricNoBounce(t *testing.T) {
	m := NewCookTorrance(core.NewColorRGB(0.75, 0.75, 0.75), 0, 0.5)

	hit := core.NewHitRecord()
	hit.Normal = core.NewVector3(0, 1, 0)

	l := core.NewVector3(0.3, 1, 0).Normalized()
	v := core.NewVector3(-0.3, 1, 0).Normalized()

	var info ShadeInfo
	got := m.Shade(&info, &hit, l, v)

	if info.NeedsBounce {
		t.Error("Dielectric requested a bounce")
	}
	// dielectrics keep a diffuse term on top of the specular lobe, so the
	// result is positive
	if got.R <= 0 {
		t.Errorf("Dielectric shade = %v, want positive diffuse+specular", got)
	}
}
