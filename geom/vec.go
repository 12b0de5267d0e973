// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "math"

// A Vec2 is a two dimensional float64 vector. Where noted, it is
// treated as the complex number X + Yi, which lets a single value
// encode a combined scale and rotation.
type Vec2 struct {
	X, Y float64
}

// Add returns the vector v+v2.
func (v Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{X: v.X + v2.X, Y: v.Y + v2.Y}
}

// Sub returns the vector v-v2.
func (v Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Abs returns the Euclidean length of v.
func (v Vec2) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// CMul returns the complex product v*v2.
func (v Vec2) CMul(v2 Vec2) Vec2 {
	return Vec2{
		X: v.X*v2.X - v.Y*v2.Y,
		Y: v.X*v2.Y + v.Y*v2.X,
	}
}

// CDiv returns the complex quotient v/v2. The result is undefined when
// v2 is the zero vector.
func (v Vec2) CDiv(v2 Vec2) Vec2 {
	d := v2.X*v2.X + v2.Y*v2.Y
	return Vec2{
		X: (v.X*v2.X + v.Y*v2.Y) / d,
		Y: (v.Y*v2.X - v.X*v2.Y) / d,
	}
}
