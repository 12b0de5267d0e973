// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"github.com/dhardy/kas/geom"
)

// transform solves for the affine transform mapping the gesture's start
// coordinates onto its current coordinates: p' = Alpha*p + Delta, with
// Alpha applied as a complex factor (scale and rotation). ok is false
// when the points have not moved.
func (g *panGrab) transform() (alpha, delta geom.Vec2, ok bool) {
	n := g.n
	if n > maxPanPoints {
		n = maxPanPoints
	}
	if n == 0 {
		return
	}

	s1 := g.coords[0][0].Vec2()
	c1 := g.coords[0][1].Vec2()
	alpha = geom.Vec2{X: 1}

	if n > 1 && g.mode != PanOnly {
		s2 := g.coords[1][0].Vec2()
		c2 := g.coords[1][1].Vec2()
		ds := s2.Sub(s1)
		dc := c2.Sub(c1)
		switch g.mode {
		case PanFull:
			if ds != (geom.Vec2{}) {
				alpha = dc.CDiv(ds)
			}
		case PanScale:
			if d := ds.Abs(); d != 0 {
				alpha = geom.Vec2{X: dc.Abs() / d}
			}
		case PanRotate:
			if ds != (geom.Vec2{}) {
				a := dc.CDiv(ds)
				if d := a.Abs(); d != 0 {
					alpha = a.Mul(1 / d)
				}
			}
		}
		delta = c1.Sub(alpha.CMul(s1))
	} else {
		// Single point or PanOnly: mean translation.
		var sum geom.Vec2
		for i := 0; i < n; i++ {
			sum = sum.Add(g.coords[i][1].Vec2().Sub(g.coords[i][0].Vec2()))
		}
		delta = sum.Mul(1 / float64(n))
	}

	if alpha == (geom.Vec2{X: 1}) && delta == (geom.Vec2{}) {
		return alpha, delta, false
	}
	return alpha, delta, true
}

// rebase makes the current coordinates the new start coordinates, so
// the next resolved transform is relative to the last delivery.
func (g *panGrab) rebase() {
	n := g.n
	if n > maxPanPoints {
		n = maxPanPoints
	}
	for i := 0; i < n; i++ {
		g.coords[i][0] = g.coords[i][1]
	}
}

// flushPans resolves accumulated motion on each pan gesture into a Pan
// event, then rebases the gesture. Handlers may mutate the gesture list
// mid-flush (a grab request with a mismatched source kind removes a
// gesture), so the length is re-checked every iteration.
func (mgr *Manager) flushPans(w Widget) {
	s := mgr.state
	for gi := 0; gi < len(s.panGrab); gi++ {
		alpha, delta, ok := s.panGrab[gi].transform()
		if !ok {
			continue
		}
		s.panGrab[gi].rebase()
		id := s.panGrab[gi].id
		mgr.sendEvent(w, id, Pan{Alpha: alpha, Delta: delta})
	}
}
