package revolve

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/lathe/pkg/math"
)

// taper is a five-point profile narrowing toward the top.
var taper = Profile{
	{X: 270, Y: 50},
	{X: 240, Y: 150},
	{X: 210, Y: 250},
	{X: 180, Y: 350},
	{X: 150, Y: 450},
}

func optsWith(edges int, closeSeam bool) Options {
	opts := DefaultOptions()
	opts.Edges = edges
	opts.CloseSeam = closeSeam
	return opts
}

func TestGenerateVerticalLineIsEmpty(t *testing.T) {
	profile := Profile{{X: 150, Y: 0}, {X: 150, Y: 550}}

	mesh, err := Generate(profile, optsWith(4, false))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !mesh.IsEmpty() {
		t.Errorf("expected empty mesh, got %d vertices", mesh.VertexCount())
	}
}

func TestGenerateSinglePoint(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{"nil", nil},
		{"empty", Profile{}},
		{"single point", Profile{{X: 0, Y: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := Generate(tt.profile, DefaultOptions())
			if !errors.Is(err, ErrEmptyProfile) {
				t.Errorf("expected ErrEmptyProfile, got %v", err)
			}
			if mesh != nil {
				t.Errorf("expected nil mesh, got %d vertices", mesh.VertexCount())
			}
		})
	}
}

func TestGenerateTaperVertexCount(t *testing.T) {
	mesh, err := Generate(taper, optsWith(10, false))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// lineWidth = 11, size = 55, interior steps = [12, 44) = 32
	if mesh.Quads != 32 {
		t.Errorf("expected 32 quads, got %d", mesh.Quads)
	}
	if got, want := mesh.VertexCount(), 2*3*32; got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	if mesh.Edges != 10 {
		t.Errorf("expected edges 10, got %d", mesh.Edges)
	}
}

func TestGenerateWholeTriangles(t *testing.T) {
	for _, closeSeam := range []bool{false, true} {
		for n := 2; n <= 7; n++ {
			profile := make(Profile, n)
			for i := range profile {
				profile[i] = math.Vec2{X: 100 + float32(i)*10, Y: float32(i) * 60}
			}
			for _, edges := range StepCounts {
				mesh, err := Generate(profile, optsWith(edges, closeSeam))
				if err != nil {
					t.Fatalf("Generate(n=%d, edges=%d): %v", n, edges, err)
				}
				if mesh.VertexCount()%3 != 0 {
					t.Errorf("n=%d edges=%d closeSeam=%v: %d vertices is not whole triangles",
						n, edges, closeSeam, mesh.VertexCount())
				}

				want := 0
				switch {
				case n < 3:
				case closeSeam:
					want = (n - 2) * edges
				default:
					want = (n-2)*(edges+1) - 1
				}
				if mesh.Quads != want {
					t.Errorf("n=%d edges=%d closeSeam=%v: got %d quads, want %d",
						n, edges, closeSeam, mesh.Quads, want)
				}
				if mesh.VertexCount() != 6*mesh.Quads {
					t.Errorf("n=%d edges=%d: %d vertices for %d quads", n, edges, mesh.VertexCount(), mesh.Quads)
				}
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, closeSeam := range []bool{false, true} {
		first, err := Generate(taper, optsWith(12, closeSeam))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		second, err := Generate(taper, optsWith(12, closeSeam))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		if len(first.Vertices) != len(second.Vertices) {
			t.Fatalf("vertex count differs: %d vs %d", len(first.Vertices), len(second.Vertices))
		}
		for i := range first.Vertices {
			if !bitEqual(first.Vertices[i], second.Vertices[i]) {
				t.Fatalf("vertex %d differs: %v vs %v", i, first.Vertices[i], second.Vertices[i])
			}
		}
	}
}

func TestGenerateInvalidEdges(t *testing.T) {
	for _, edges := range []int{0, -4, 7, 11, 361, 720} {
		_, err := Generate(taper, optsWith(edges, false))
		if !errors.Is(err, ErrInvalidStepCount) {
			t.Errorf("edges=%d: expected ErrInvalidStepCount, got %v", edges, err)
		}
	}
}

func TestGenerateTriangleOrder(t *testing.T) {
	opts := optsWith(4, false)
	mesh, err := Generate(taper[:3], opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	rings := BuildRings(taper[:3], opts.Region, opts.Edges)
	quads := Triangulate(rings, false)

	for qi, q := range quads {
		want := [6]math.Vec3{
			rings.At(q.A), rings.At(q.B), rings.At(q.C),
			rings.At(q.A), rings.At(q.D), rings.At(q.B),
		}
		for k := 0; k < 6; k++ {
			got := mesh.Vertices[qi*6+k]
			if got.Position != want[k] {
				t.Errorf("quad %d vertex %d: got %v, want %v", qi, k, got.Position, want[k])
			}
			if got.Normal != mesh.Vertices[qi*6].Normal {
				t.Errorf("quad %d vertex %d: normal differs within quad", qi, k)
			}
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	// x = 225 maps to a radius of 0.5
	profile := Profile{{X: 225, Y: 0}, {X: 225, Y: 275}, {X: 225, Y: 550}}

	mesh, err := Generate(profile, optsWith(36, true))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	const eps = 1e-4
	if gomath.Abs(float64(mesh.Bounds.Max.X-0.5)) > eps || gomath.Abs(float64(mesh.Bounds.Min.X+0.5)) > eps {
		t.Errorf("unexpected X bounds: %v", mesh.Bounds)
	}
	// Only the band between the first two rings is emitted
	if mesh.Bounds.Max.Y != 1 || mesh.Bounds.Min.Y != 0 {
		t.Errorf("unexpected Y bounds: %v", mesh.Bounds)
	}
}

func bitEqual(a, b Vertex) bool {
	fa := [6]float32{a.Position.X, a.Position.Y, a.Position.Z, a.Normal.X, a.Normal.Y, a.Normal.Z}
	fb := [6]float32{b.Position.X, b.Position.Y, b.Position.Z, b.Normal.X, b.Normal.Y, b.Normal.Z}
	for i := range fa {
		if gomath.Float32bits(fa[i]) != gomath.Float32bits(fb[i]) {
			return false
		}
	}
	return true
}
