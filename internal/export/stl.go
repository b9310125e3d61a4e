// Package export writes generated meshes to interchange formats.
package export

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// ErrNoFacets is returned when every triangle of a mesh is degenerate.
var ErrNoFacets = errors.New("export: mesh has no triangles with a defined normal")

// Triangles converts mesh into sdfx triangles. Triangles without a facet
// normal (zero area or non-finite corners) are dropped and counted. The
// default walk emits such slivers where a quad straddles a ring boundary.
func Triangles(mesh *revolve.Mesh) (tris []*sdf.Triangle3, dropped int) {
	tris = make([]*sdf.Triangle3, 0, mesh.TriangleCount())
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		t := &sdf.Triangle3{
			toVec(tri[0].Position),
			toVec(tri[1].Position),
			toVec(tri[2].Position),
		}
		if !hasFacetNormal(t) {
			dropped++
			continue
		}
		tris = append(tris, t)
	}
	return tris, dropped
}

// hasFacetNormal reports whether the cross product of the triangle's edges
// has a finite, non-zero length.
func hasFacetNormal(t *sdf.Triangle3) bool {
	l := t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Length()
	return l > 0 && !gomath.IsInf(l, 0) && !gomath.IsNaN(l)
}

// SaveSTL writes mesh as a binary STL file. It returns the number of
// triangles written and the number of degenerate ones left out.
func SaveSTL(path string, mesh *revolve.Mesh) (written, dropped int, err error) {
	if mesh.IsEmpty() {
		return 0, 0, fmt.Errorf("export %s: mesh is empty", path)
	}
	tris, dropped := Triangles(mesh)
	if len(tris) == 0 {
		return 0, dropped, fmt.Errorf("export %s: %w", path, ErrNoFacets)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return 0, dropped, fmt.Errorf("export %s: %w", path, err)
	}
	return len(tris), dropped, nil
}

func toVec(p math.Vec3) v3.Vec {
	return v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
