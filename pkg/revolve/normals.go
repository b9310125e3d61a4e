package revolve

import (
	"fmt"
	"strings"

	"github.com/Faultbox/lathe/pkg/math"
)

// DegeneratePolicy decides what a zero-area face contributes to the
// averaged quad normal.
type DegeneratePolicy int

const (
	// DegenerateSkip drops the degenerate face and uses the other face
	// normal alone. A quad with two degenerate faces gets a zero normal.
	DegenerateSkip DegeneratePolicy = iota
	// DegenerateZero averages the degenerate face in as a zero vector.
	DegenerateZero
	// DegenerateNaN normalizes the zero cross product anyway, so the
	// affected vertices carry NaN components.
	DegenerateNaN
)

var degeneratePolicyNames = [...]string{"skip", "zero", "nan"}

// String returns the config name of the policy.
func (p DegeneratePolicy) String() string {
	if p < 0 || int(p) >= len(degeneratePolicyNames) {
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
	return degeneratePolicyNames[p]
}

// ParseDegeneratePolicy parses "skip", "zero" or "nan".
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range degeneratePolicyNames {
		if n == name {
			return DegeneratePolicy(i), nil
		}
	}
	return DegenerateSkip, fmt.Errorf("unknown degenerate normal policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p DegeneratePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DegeneratePolicy) UnmarshalText(text []byte) error {
	v, err := ParseDegeneratePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// FaceNormal returns the unit normal of the triangle (apex, b, c), computed
// as cross(b-apex, c-apex). ok is false when the edges are collinear; the
// returned vector is then the zero vector.
func FaceNormal(apex, b, c math.Vec3) (n math.Vec3, ok bool) {
	n, l := rawFaceNormal(apex, b, c)
	if l == 0 {
		return math.Vec3{}, false
	}
	return n, true
}

// rawFaceNormal divides the cross product by its length unconditionally and
// also returns that length.
func rawFaceNormal(apex, b, c math.Vec3) (math.Vec3, float32) {
	cross := b.Sub(apex).Cross(c.Sub(apex))
	l := cross.Length()
	return math.Vec3{X: cross.X / l, Y: cross.Y / l, Z: cross.Z / l}, l
}

// QuadNormals returns one averaged normal per quad. The first face normal
// comes from the triangle (C, A, B) and the second from (D, B, A), matching
// the winding of the two emitted triangles. The average is not
// re-normalized.
func QuadNormals(rings Rings, quads Topology, policy DegeneratePolicy) []math.Vec3 {
	normals := make([]math.Vec3, len(quads))
	for i, q := range quads {
		a, b, c, d := rings.At(q.A), rings.At(q.B), rings.At(q.C), rings.At(q.D)
		normals[i] = averageNormal(a, b, c, d, policy)
	}
	return normals
}

func averageNormal(a, b, c, d math.Vec3, policy DegeneratePolicy) math.Vec3 {
	if policy == DegenerateNaN {
		n1, _ := rawFaceNormal(c, a, b)
		n2, _ := rawFaceNormal(d, b, a)
		return n1.Add(n2).Scale(0.5)
	}

	n1, ok1 := FaceNormal(c, a, b)
	n2, ok2 := FaceNormal(d, b, a)

	if policy == DegenerateSkip {
		switch {
		case ok1 && !ok2:
			return n1
		case ok2 && !ok1:
			return n2
		case !ok1 && !ok2:
			return math.Vec3{}
		}
	}

	return n1.Add(n2).Scale(0.5)
}
