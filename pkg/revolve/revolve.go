// Package revolve turns a sketched 2D profile into a triangulated surface of
// revolution around the vertical axis.
//
// Generation runs in four stages: the profile is mapped into model space,
// every mapped point is swept into a ring of rotated copies, adjacent rings
// are stitched into quads, and each quad gets one averaged normal. The
// result is a flat, non-indexed vertex list where every three consecutive
// vertices form a triangle.
package revolve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lathe/pkg/math"
)

var (
	// ErrEmptyProfile is returned when a profile has fewer than two points.
	ErrEmptyProfile = errors.New("revolve: profile needs at least 2 points")

	// ErrInvalidStepCount is returned when the step count does not divide 360.
	ErrInvalidStepCount = errors.New("revolve: step count must be a positive divisor of 360")
)

// Profile is an ordered polyline in capture-region coordinates.
type Profile []math.Vec2

// Vertex is a mesh vertex. The layout is six contiguous float32 values so a
// []Vertex can be handed to the GPU as-is.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh is the generated triangle soup.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds
	Edges    int
	Quads    int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) [3]Vertex {
	return [3]Vertex{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
}

// Options controls mesh generation.
type Options struct {
	// Region is the capture region the profile was sketched in.
	Region Region
	// Edges is the number of angular steps. It must divide 360.
	Edges int
	// CloseSeam stitches every band as a closed strip with explicit
	// wrap-around instead of replaying the flat-index walk.
	CloseSeam bool
	// Degenerate selects what a zero-area face contributes to a quad normal.
	Degenerate DegeneratePolicy
}

// DefaultOptions returns the options used by the sketching UI.
func DefaultOptions() Options {
	return Options{
		Region:     DefaultRegion,
		Edges:      10,
		CloseSeam:  false,
		Degenerate: DegenerateSkip,
	}
}

// Generate builds the surface of revolution for profile.
func Generate(profile Profile, opts Options) (*Mesh, error) {
	if err := ValidateEdges(opts.Edges); err != nil {
		return nil, err
	}
	if len(profile) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyProfile, len(profile))
	}

	rings := BuildRings(profile, opts.Region, opts.Edges)
	quads := Triangulate(rings, opts.CloseSeam)
	normals := QuadNormals(rings, quads, opts.Degenerate)

	return assemble(rings, quads, normals, opts.Edges), nil
}

// assemble flattens quads into triangle-ordered vertices.
func assemble(rings Rings, quads Topology, normals []math.Vec3, edges int) *Mesh {
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, len(quads)*6),
		Edges:    edges,
		Quads:    len(quads),
	}

	for i, q := range quads {
		for _, tri := range q.Triangles() {
			for _, idx := range tri {
				pos := rings.At(idx)
				if len(mesh.Vertices) == 0 {
					mesh.Bounds = Bounds{Min: pos, Max: pos}
				} else {
					mesh.Bounds.Min = mesh.Bounds.Min.Min(pos)
					mesh.Bounds.Max = mesh.Bounds.Max.Max(pos)
				}
				mesh.Vertices = append(mesh.Vertices, Vertex{Position: pos, Normal: normals[i]})
			}
		}
	}

	return mesh
}
