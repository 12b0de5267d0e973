// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom provides integer coordinate and rectangle types used for
widget placement and hit testing, plus a float64 two-vector with
complex-number semantics used by the pan-transform solver.

The coordinate space has the origin in the top left corner with the
axes extending right and down.
*/
package geom

// A Coord is a two dimensional integer position.
type Coord struct {
	X, Y int
}

// Add returns the coordinate c+c2.
func (c Coord) Add(c2 Coord) Coord {
	return Coord{X: c.X + c2.X, Y: c.Y + c2.Y}
}

// Sub returns the vector c-c2.
func (c Coord) Sub(c2 Coord) Coord {
	return Coord{X: c.X - c2.X, Y: c.Y - c2.Y}
}

// Vec2 converts to a float64 vector.
func (c Coord) Vec2() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// A Size is a two dimensional extent. Both components are non-negative.
type Size struct {
	W, H int
}

// A Rect is an axis-aligned rectangle with position Pos and extent Size.
type Rect struct {
	Pos  Coord
	Size Size
}

// Contains reports whether c lies within r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(c Coord) bool {
	return r.Pos.X <= c.X && c.X < r.Pos.X+r.Size.W &&
		r.Pos.Y <= c.Y && c.Y < r.Pos.Y+r.Size.H
}

// BottomRight returns the exclusive lower-right corner.
func (r Rect) BottomRight() Coord {
	return Coord{X: r.Pos.X + r.Size.W, Y: r.Pos.Y + r.Size.H}
}
