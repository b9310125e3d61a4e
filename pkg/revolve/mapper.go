package revolve

import "github.com/Faultbox/lathe/pkg/math"

// Region is the capture area a profile is sketched in, with the origin at
// the top-left corner and Y growing downward.
type Region struct {
	Width  float32
	Height float32
}

// DefaultRegion matches the sketching canvas.
var DefaultRegion = Region{Width: 300, Height: 550}

// MapRange linearly maps value from [inMin, inMax] to [outMin, outMax].
// inMin must differ from inMax.
func MapRange(value, inMin, inMax, outMin, outMax float32) float32 {
	return (value-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// Map converts a capture-region point into model space: X spans [-1, 1],
// Y spans [1, -1] so that up on screen is up in the model, and Z is 0.
func (r Region) Map(p math.Vec2) math.Vec3 {
	return math.Vec3{
		X: MapRange(p.X, 0, r.Width, -1, 1),
		Y: MapRange(p.Y, 0, r.Height, 1, -1),
		Z: 0,
	}
}

// Contains reports whether p lies inside the region. The far edges are
// excluded.
func (r Region) Contains(p math.Vec2) bool {
	return p.Within(r.Width, r.Height)
}
