// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{Pos: Coord{X: 2, Y: 3}, Size: Size{W: 4, H: 2}}
	for c, want := range map[Coord]bool{
		{X: 2, Y: 3}: true,
		{X: 5, Y: 4}: true,
		{X: 6, Y: 3}: false, // right edge exclusive
		{X: 2, Y: 5}: false, // bottom edge exclusive
		{X: 1, Y: 3}: false,
	} {
		if got := r.Contains(c); got != want {
			t.Errorf("Contains(%v) = %v, want %v", c, got, want)
		}
	}
	if br := r.BottomRight(); br != (Coord{X: 6, Y: 5}) {
		t.Errorf("BottomRight() = %v", br)
	}
}

func TestVec2Complex(t *testing.T) {
	// i * i = -1.
	i := Vec2{Y: 1}
	if got := i.CMul(i); got != (Vec2{X: -1}) {
		t.Errorf("i*i = %v", got)
	}
	// Division inverts multiplication.
	a := Vec2{X: 3, Y: -2}
	b := Vec2{X: 0.5, Y: 1.5}
	got := a.CMul(b).CDiv(b)
	if math.Abs(got.X-a.X) > 1e-12 || math.Abs(got.Y-a.Y) > 1e-12 {
		t.Errorf("(a*b)/b = %v, want %v", got, a)
	}
	if got := (Vec2{X: 3, Y: 4}).Abs(); got != 5 {
		t.Errorf("Abs = %v, want 5", got)
	}
}
