// Package math provides the small float32 vector and matrix types used by
// the mesher and the renderer.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Within reports whether v lies in the half-open box [0, width) x [0, height).
func (v Vec2) Within(width, height float32) bool {
	return v.X >= 0 && v.X < width && v.Y >= 0 && v.Y < height
}
