// Package sketch captures the profile polyline drawn on the canvas and
// reads and writes profile files.
package sketch

import (
	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Canvas accumulates one stroke. It is driven by mouse events and holds no
// rendering state.
type Canvas struct {
	region  revolve.Region
	points  []math.Vec2
	drawing bool
}

// NewCanvas creates an empty canvas covering region.
func NewCanvas(region revolve.Region) *Canvas {
	return &Canvas{region: region}
}

// Region returns the capture region.
func (c *Canvas) Region() revolve.Region {
	return c.region
}

// Begin discards the current stroke and starts a new one at p. The press
// point is kept even if it lies on the far edge of the region.
func (c *Canvas) Begin(p math.Vec2) {
	c.points = append(c.points[:0], p)
	c.drawing = true
}

// Extend appends p to the stroke while drawing. Points outside the region
// are dropped. It reports whether p was kept.
func (c *Canvas) Extend(p math.Vec2) bool {
	if !c.drawing || !c.region.Contains(p) {
		return false
	}
	if n := len(c.points); n > 0 && c.points[n-1] == p {
		return false
	}
	c.points = append(c.points, p)
	return true
}

// End finishes the stroke. Later Extend calls are ignored until the next
// Begin.
func (c *Canvas) End() {
	c.drawing = false
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	return c.drawing
}

// Clear removes every point.
func (c *Canvas) Clear() {
	c.points = c.points[:0]
	c.drawing = false
}

// Len returns the number of captured points.
func (c *Canvas) Len() int {
	return len(c.points)
}

// Points returns the captured points without copying. The slice is only
// valid until the next mutation.
func (c *Canvas) Points() []math.Vec2 {
	return c.points
}

// Profile returns a copy of the captured stroke.
func (c *Canvas) Profile() revolve.Profile {
	out := make(revolve.Profile, len(c.points))
	copy(out, c.points)
	return out
}

// Load replaces the stroke with profile.
func (c *Canvas) Load(profile revolve.Profile) {
	c.points = append(c.points[:0], profile...)
	c.drawing = false
}
