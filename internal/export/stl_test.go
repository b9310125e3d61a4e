package export

import (
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

var taper = revolve.Profile{
	{X: 270, Y: 50},
	{X: 240, Y: 150},
	{X: 210, Y: 250},
	{X: 180, Y: 350},
	{X: 150, Y: 450},
}

func TestTriangles(t *testing.T) {
	mesh, err := revolve.Generate(taper, revolve.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tris, dropped := Triangles(mesh)
	if len(tris)+dropped != mesh.TriangleCount() {
		t.Fatalf("kept %d + dropped %d, want %d", len(tris), dropped, mesh.TriangleCount())
	}

	first := mesh.Triangle(0)
	for j := 0; j < 3; j++ {
		got := tris[0][j]
		want := first[j].Position
		if float32(got.X) != want.X || float32(got.Y) != want.Y || float32(got.Z) != want.Z {
			t.Errorf("vertex %d = %v, want %v", j, got, want)
		}
	}
}

func TestTrianglesDropsRingBoundarySlivers(t *testing.T) {
	// The default walk emits zero-area triangles where a quad crosses from
	// one ring to the next.
	mesh, err := revolve.Generate(taper, revolve.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Three slivers where C wraps to the next ring, two where D wraps back.
	tris, dropped := Triangles(mesh)
	if dropped != 5 {
		t.Errorf("dropped = %d, want 5", dropped)
	}
	for i, tri := range tris {
		n := tri.Normal()
		if gomath.IsNaN(n.X) || gomath.IsNaN(n.Y) || gomath.IsNaN(n.Z) {
			t.Errorf("triangle %d has NaN normal: %v", i, tri)
		}
	}
}

func TestTrianglesClosedSeamKeepsAll(t *testing.T) {
	opts := revolve.DefaultOptions()
	opts.CloseSeam = true
	mesh, err := revolve.Generate(taper, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tris, dropped := Triangles(mesh)
	if dropped != 0 || len(tris) != mesh.TriangleCount() {
		t.Errorf("kept %d, dropped %d; want all %d kept", len(tris), dropped, mesh.TriangleCount())
	}
}

func TestTrianglesSynthetic(t *testing.T) {
	mesh := &revolve.Mesh{Vertices: []revolve.Vertex{
		// valid
		{Position: math.Vec3{X: 0}}, {Position: math.Vec3{X: 1}}, {Position: math.Vec3{Y: 1}},
		// two identical corners
		{Position: math.Vec3{X: 1}}, {Position: math.Vec3{X: 1}}, {Position: math.Vec3{Y: 1}},
		// collinear
		{Position: math.Vec3{X: 0}}, {Position: math.Vec3{X: 1}}, {Position: math.Vec3{X: 2}},
	}}

	tris, dropped := Triangles(mesh)
	if len(tris) != 1 || dropped != 2 {
		t.Errorf("got %d triangles, %d dropped; want 1 and 2", len(tris), dropped)
	}
}

func TestSaveSTL(t *testing.T) {
	mesh, err := revolve.Generate(taper, revolve.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	path := filepath.Join(t.TempDir(), "taper.stl")
	n, dropped, err := SaveSTL(path, mesh)
	if err != nil {
		t.Fatalf("SaveSTL: %v", err)
	}
	if n+dropped != mesh.TriangleCount() || dropped == 0 {
		t.Errorf("wrote %d, dropped %d of %d", n, dropped, mesh.TriangleCount())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() <= 84 {
		t.Errorf("file size = %d, expected header plus triangles", info.Size())
	}
}

func TestSaveSTLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	if _, _, err := SaveSTL(path, &revolve.Mesh{}); err == nil {
		t.Error("expected error for empty mesh")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty export should not create a file")
	}
}

func TestSaveSTLAllDegenerate(t *testing.T) {
	mesh := &revolve.Mesh{Vertices: []revolve.Vertex{
		{Position: math.Vec3{X: 1}}, {Position: math.Vec3{X: 1}}, {Position: math.Vec3{X: 1}},
	}}
	path := filepath.Join(t.TempDir(), "flat.stl")
	_, dropped, err := SaveSTL(path, mesh)
	if !errors.Is(err, ErrNoFacets) {
		t.Errorf("expected ErrNoFacets, got %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
}
