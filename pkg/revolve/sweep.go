package revolve

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lathe/pkg/math"
)

// AngleStep returns the sweep increment in whole degrees. edges must be
// positive.
func AngleStep(edges int) int {
	return 360 / edges
}

// RotateY rotates p around the Y axis by the given angle in degrees.
func RotateY(p math.Vec3, degrees float32) math.Vec3 {
	theta := math.Radians(degrees)
	c, s := math32.Cos(theta), math32.Sin(theta)

	return math.Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: p.Z*c - p.X*s,
	}
}

// Sweep returns the ring for p: one copy per angular step starting at 0°,
// followed by p itself. For a step count that divides 360 the ring has
// edges+1 slots and the last slot coincides with the first.
func Sweep(p math.Vec3, edges int) []math.Vec3 {
	step := AngleStep(edges)
	ring := make([]math.Vec3, 0, edges+1)
	for i := 0; i < 360; i += step {
		ring = append(ring, RotateY(p, float32(i)))
	}
	return append(ring, p)
}

// RingIndex addresses one slot of one ring.
type RingIndex struct {
	Profile int
	Slot    int
}

// Rings holds the swept vertices, indexed as rings[profileIndex][slot].
type Rings [][]math.Vec3

// BuildRings maps every profile point into model space and sweeps it.
func BuildRings(profile Profile, region Region, edges int) Rings {
	rings := make(Rings, len(profile))
	for i, p := range profile {
		rings[i] = Sweep(region.Map(p), edges)
	}
	return rings
}

// At returns the vertex at idx.
func (r Rings) At(idx RingIndex) math.Vec3 {
	return r[idx.Profile][idx.Slot]
}

// Width returns the number of slots per ring.
func (r Rings) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Len returns the total number of swept vertices.
func (r Rings) Len() int {
	return len(r) * r.Width()
}

// flatIndex converts a position in the concatenated ring sequence into a
// ring address.
func (r Rings) flatIndex(k int) RingIndex {
	w := r.Width()
	return RingIndex{Profile: k / w, Slot: k % w}
}
