// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"testing"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

type received struct {
	id    kas.WidgetID
	event Event
}

// testShell records the calls the manager makes on its window.
type testShell struct {
	nextWindow kas.WindowID
	added      []kas.Popup
	closed     []kas.WindowID
	icon       CursorIcon
	iconSets   int
	triggered  []UpdateHandle
	clip       string
}

func (s *testShell) AddPopup(popup kas.Popup) kas.WindowID {
	s.nextWindow++
	s.added = append(s.added, popup)
	return s.nextWindow
}

func (s *testShell) CloseWindow(wid kas.WindowID) {
	s.closed = append(s.closed, wid)
}

func (s *testShell) SetCursorIcon(icon CursorIcon) {
	s.icon = icon
	s.iconSets++
}

func (s *testShell) TriggerUpdate(handle UpdateHandle, _ uint64) {
	s.triggered = append(s.triggered, handle)
}

func (s *testShell) GetClipboard() string        { return s.clip }
func (s *testShell) SetClipboard(content string) { s.clip = content }

// testWidget is a minimal tree node. Events reaching it are appended to
// the shared log; onEvent, when set, supplies the response.
type testWidget struct {
	core      kas.CoreData
	children  []Widget
	icon      CursorIcon
	focusable bool
	accel     []Key
	log       *[]received
	onEvent   func(mgr *Manager, e Event) Response
}

func (w *testWidget) Core() *kas.CoreData    { return &w.core }
func (w *testWidget) NumChildren() int       { return len(w.children) }
func (w *testWidget) Child(i int) Widget     { return w.children[i] }
func (w *testWidget) CursorIcon() CursorIcon { return w.icon }
func (w *testWidget) HoverHighlight() bool   { return true }
func (w *testWidget) AllowFocus() bool       { return w.focusable }

func (w *testWidget) FindID(coord geom.Coord) kas.WidgetID {
	if !w.core.Rect.Contains(coord) {
		return 0
	}
	for _, c := range w.children {
		if id := c.FindID(coord); id != 0 {
			return id
		}
	}
	return w.core.ID
}

func (w *testWidget) Configured(mgr *Manager) {
	if len(w.accel) > 0 {
		mgr.AddAccelKeys(w.core.ID, w.accel...)
	}
}

func (w *testWidget) Send(mgr *Manager, id kas.WidgetID, e Event) Response {
	if id != w.core.ID {
		for _, c := range w.children {
			if c.Core().Contains(id) {
				return c.Send(mgr, id, e)
			}
		}
		return Unhandled()
	}
	if w.log != nil {
		*w.log = append(*w.log, received{id, e})
	}
	if w.onEvent != nil {
		return w.onEvent(mgr, e)
	}
	return Used()
}

// accelWidget additionally owns an accelerator layer.
type accelWidget struct {
	testWidget
	bypass bool
}

func (w *accelWidget) AccelBypass() bool { return w.bypass }

// row builds a root widget spanning a horizontal strip, with each child
// given a unit-height cell of width 10 starting at x = 10*i.
func row(log *[]received, children ...*testWidget) *testWidget {
	w := &testWidget{log: log}
	w.core.SetRect(geom.Rect{Size: geom.Size{W: 10 * (len(children) + 1), H: 10}})
	for i, c := range children {
		c.log = log
		c.core.SetRect(geom.Rect{
			Pos:  geom.Coord{X: 10 * i, Y: 0},
			Size: geom.Size{W: 10, H: 1},
		})
		w.children = append(w.children, c)
	}
	return w
}

func cellCoord(i int) geom.Coord {
	return geom.Coord{X: 10*i + 5, Y: 0}
}

func lastEvent(t *testing.T, log []received) received {
	t.Helper()
	if len(log) == 0 {
		t.Fatalf("no events received")
	}
	return log[len(log)-1]
}
