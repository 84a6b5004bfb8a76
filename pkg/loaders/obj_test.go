package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOBJ(t *testing.T) {
	path := writeOBJ(t, `# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
usemtl ignored
f 1 2 3
`)

	positions, normals, indices, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if len(positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(positions))
	}
	if positions[1] != core.NewVector3(1, 0, 0) {
		t.Errorf("positions[1] = %v", positions[1])
	}
	if len(indices) != 3 || indices[0] != 0 || indices[2] != 2 {
		t.Errorf("indices = %v, want 0-based [0 1 2]", indices)
	}
	if len(normals) != 1 {
		t.Fatalf("normals = %d, want one per triangle", len(normals))
	}
	if normals[0] != core.NewVector3(0, 0, 1) {
		t.Errorf("normal = %v, want {0, 0, 1}", normals[0])
	}
}

func TestParseOBJIgnoresUnknownLines(t *testing.T) {
	path := writeOBJ(t, `mtllib scene.mtl
o cube
v 0 0 0
v 1 0 0
v 0 1 0
s off
f 1 2 3
# trailing comment
`)

	positions, _, indices, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(positions) != 3 || len(indices) != 3 {
		t.Errorf("parsed %d positions, %d indices", len(positions), len(indices))
	}
}

func TestParseOBJSlashReferences(t *testing.T) {
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/2/2 3/3/3
`)

	_, _, indices, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(indices) != 3 || indices[1] != 1 {
		t.Errorf("indices = %v", indices)
	}
}

func TestParseOBJDegenerateTriangleNaNNormal(t *testing.T) {
	// all three vertices collinear: the cross product is zero and the
	// normal comes out NaN, which the consumer tolerates as misses
	path := writeOBJ(t, `v 0 0 0
v 1 0 0
v 2 0 0
f 1 2 3
`)

	_, normals, _, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(normals) != 1 || !normals[0].IsNaN() {
		t.Errorf("degenerate normal = %v, want NaN components", normals[0])
	}
}

func TestParseOBJErrors(t *testing.T) {
	if _, _, _, err := ParseOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for a missing file")
	}

	badIndex := writeOBJ(t, "v 0 0 0\nf 1 2 3\n")
	if _, _, _, err := ParseOBJ(badIndex); err == nil {
		t.Error("Expected error for out-of-range face index")
	}

	shortVertex := writeOBJ(t, "v 1 2\n")
	if _, _, _, err := ParseOBJ(shortVertex); err == nil {
		t.Error("Expected error for short vertex line")
	}
}
