// Package view holds the model transform applied to the generated mesh.
package view

import (
	"github.com/Faultbox/lathe/pkg/math"
)

// Camera placement and projection used by the preview.
const (
	ModelDistance = 6
	FieldOfView   = 20 // degrees
	Near          = 0.2
	Far           = 20
)

// Scale limits offered by the UI.
const (
	MinScale = 0.1
	MaxScale = 3
)

// ModelTransform is the user-controlled rotation and scale. It is a value
// type; the With* methods return modified copies.
type ModelTransform struct {
	RotateX int // degrees
	RotateY int
	RotateZ int
	Scale   float32
}

// Identity is the transform the reset controls return to.
var Identity = ModelTransform{Scale: 1}

// WithRotation returns t with the rotation replaced. Angles are wrapped
// into [-180, 180].
func (t ModelTransform) WithRotation(x, y, z int) ModelTransform {
	t.RotateX, t.RotateY, t.RotateZ = wrapDegrees(x), wrapDegrees(y), wrapDegrees(z)
	return t
}

// WithScale returns t with the scale clamped to [MinScale, MaxScale].
func (t ModelTransform) WithScale(s float32) ModelTransform {
	switch {
	case s < MinScale:
		s = MinScale
	case s > MaxScale:
		s = MaxScale
	}
	t.Scale = s
	return t
}

// ResetRotation returns t with all angles set to zero.
func (t ModelTransform) ResetRotation() ModelTransform {
	t.RotateX, t.RotateY, t.RotateZ = 0, 0, 0
	return t
}

// ResetScale returns t with unit scale.
func (t ModelTransform) ResetScale() ModelTransform {
	t.Scale = 1
	return t
}

// Matrix returns Translate(0, 0, -ModelDistance) * Scale * Rx * Ry * Rz.
func (t ModelTransform) Matrix() math.Mat4 {
	return math.Translate(0, 0, -ModelDistance).
		Mul(math.Scale(t.Scale, t.Scale, t.Scale)).
		Mul(math.RotateX(math.Radians(float32(t.RotateX)))).
		Mul(math.RotateY(math.Radians(float32(t.RotateY)))).
		Mul(math.RotateZ(math.Radians(float32(t.RotateZ))))
}

// Projection returns the perspective projection for a viewport of the
// given size. A zero height is treated as square.
func Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(FieldOfView), aspect, Near, Far)
}

func wrapDegrees(d int) int {
	d %= 360
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return d
}
