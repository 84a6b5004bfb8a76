// Package loaders reads external mesh assets into raytracer geometry.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arendv/go-interactive-raytracer/pkg/core"
)

// ParseOBJ reads the minimal Wavefront subset the tracer needs: "v x y z"
// vertex lines and "f i0 i1 i2" triangle lines with 1-based indices.
// Every other line is ignored. Per-triangle normals are precomputed from the
// winding order; a degenerate triangle yields a NaN normal, which the
// intersection code treats as a miss.
func ParseOBJ(filename string) (positions []core.Vector3, normals []core.Vector3, indices []uint32, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open obj %q: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, nil, fmt.Errorf("obj %q line %d: short vertex", filename, lineNo)
			}
			var v [3]float64
			for i := 0; i < 3; i++ {
				if v[i], err = strconv.ParseFloat(fields[i+1], 32); err != nil {
					return nil, nil, nil, fmt.Errorf("obj %q line %d: %w", filename, lineNo, err)
				}
			}
			positions = append(positions, core.NewVector3(float32(v[0]), float32(v[1]), float32(v[2])))
		case "f":
			if len(fields) < 4 {
				return nil, nil, nil, fmt.Errorf("obj %q line %d: short face", filename, lineNo)
			}
			for i := 0; i < 3; i++ {
				// tolerate "i/uv/n" references by taking the first part
				ref, _, _ := strings.Cut(fields[i+1], "/")
				idx, err := strconv.ParseUint(ref, 10, 32)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("obj %q line %d: %w", filename, lineNo, err)
				}
				if idx == 0 || int(idx) > len(positions) {
					return nil, nil, nil, fmt.Errorf("obj %q line %d: face index %d out of range", filename, lineNo, idx)
				}
				indices = append(indices, uint32(idx-1))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("read obj %q: %w", filename, err)
	}

	for i := 0; i < len(indices); i += 3 {
		v0 := positions[indices[i]]
		v1 := positions[indices[i+1]]
		v2 := positions[indices[i+2]]
		normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalized()
		normals = append(normals, normal)
	}

	return positions, normals, indices, nil
}
