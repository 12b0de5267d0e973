// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

// Shell-facing entry points. The window shell translates each platform
// event into exactly one call on a fresh [Manager], then calls
// [Manager.Finish].

// HandleModifiers records the keyboard modifier state.
func (mgr *Manager) HandleModifiers(mods Modifiers) {
	mgr.state.modifiers = mods
}

// HandleMousePress handles a mouse button press at the last reported
// cursor position.
func (mgr *Manager) HandleMousePress(w Widget, button MouseButton) {
	s := mgr.state
	coord := s.lastMouseCoord
	if g := s.mouseGrab; g != nil {
		// A second button pressed during a grab routes to the grab
		// owner; it does not start a new interaction.
		source := PressSource{Source: Mouse, Button: button, Repetitions: g.repetitions}
		mgr.sendEvent(w, g.startID, PressStart{Source: source, StartID: g.startID, Coord: coord})
		return
	}

	now := time.Now()
	if button == s.lastClickButton && now.Before(s.lastClickTimeout) {
		s.lastClickRepetitions++
	} else {
		s.lastClickButton = button
		s.lastClickRepetitions = 1
	}
	s.lastClickTimeout = now.Add(doubleClickWindow)

	id := w.FindID(coord)
	source := PressSource{Source: Mouse, Button: button, Repetitions: s.lastClickRepetitions}
	mgr.sendEvent(w, id, PressStart{Source: source, StartID: id, Coord: coord})
}

// HandleMouseMove handles cursor motion to coord.
func (mgr *Manager) HandleMouseMove(w Widget, coord geom.Coord) {
	s := mgr.state
	delta := coord.Sub(s.lastMouseCoord)
	s.lastMouseCoord = coord

	g := s.mouseGrab
	if g == nil {
		mgr.setHover(w, w.FindID(coord))
		return
	}
	switch {
	case g.mode == Grab:
		cur := w.FindID(coord)
		g.depress = 0
		if cur == g.startID {
			g.depress = g.startID
		}
		source := PressSource{Source: Mouse, Button: g.button, Repetitions: g.repetitions}
		mgr.sendEvent(w, g.startID, PressMove{Source: source, CurID: cur, Coord: coord, Delta: delta})
	case g.pan.g >= 0 && g.pan.g < len(s.panGrab) && g.pan.p < maxPanPoints:
		s.panGrab[g.pan.g].coords[g.pan.p][1] = coord
	}
}

// HandleMouseRelease handles a mouse button release.
func (mgr *Manager) HandleMouseRelease(w Widget, button MouseButton) {
	s := mgr.state
	g := s.mouseGrab
	if g == nil || g.button != button {
		return
	}
	s.mouseGrab = nil
	mgr.shell.SetCursorIcon(s.hoverIcon)
	mgr.Redraw()
	if g.mode == Grab {
		coord := s.lastMouseCoord
		source := PressSource{Source: Mouse, Button: button, Repetitions: g.repetitions}
		mgr.sendEvent(w, g.startID, PressEnd{Source: source, EndID: w.FindID(coord), Coord: coord})
	} else {
		s.removePanGrab(g.pan)
	}
}

// HandleTouchStart handles a new touch point.
func (mgr *Manager) HandleTouchStart(w Widget, touchID uint64, coord geom.Coord) {
	id := w.FindID(coord)
	source := PressSource{Source: Touch, TouchID: touchID, Repetitions: 1}
	mgr.sendEvent(w, id, PressStart{Source: source, StartID: id, Coord: coord})
}

// HandleTouchMove handles motion of a touch point.
func (mgr *Manager) HandleTouchMove(w Widget, touchID uint64, coord geom.Coord) {
	s := mgr.state
	g := s.touchGrab[touchID]
	if g == nil {
		return
	}
	delta := coord.Sub(g.coord)
	g.coord = coord
	switch {
	case g.mode == Grab:
		cur := w.FindID(coord)
		g.curID = cur
		g.depress = 0
		if cur == g.startID {
			g.depress = g.startID
		}
		source := PressSource{Source: Touch, TouchID: touchID, Repetitions: 1}
		mgr.sendEvent(w, g.startID, PressMove{Source: source, CurID: cur, Coord: coord, Delta: delta})
	case g.pan.g >= 0 && g.pan.g < len(s.panGrab) && g.pan.p < maxPanPoints:
		s.panGrab[g.pan.g].coords[g.pan.p][1] = coord
	}
}

// HandleTouchEnd handles removal of a touch point.
func (mgr *Manager) HandleTouchEnd(w Widget, touchID uint64, coord geom.Coord) {
	s := mgr.state
	g := s.touchGrab[touchID]
	if g == nil {
		return
	}
	delete(s.touchGrab, touchID)
	mgr.Redraw()
	if g.mode == Grab {
		source := PressSource{Source: Touch, TouchID: touchID, Repetitions: 1}
		mgr.sendEvent(w, g.startID, PressEnd{Source: source, EndID: w.FindID(coord), Coord: coord})
	} else {
		s.removePanGrab(g.pan)
	}
}

// HandleKeyDown handles a key press. scancode identifies the physical
// key for matching against the corresponding release.
func (mgr *Manager) HandleKeyDown(w Widget, key Key, scancode uint32) {
	s := mgr.state
	cmd, hasCmd := s.shortcuts.Get(s.modifiers, key)
	shift := s.modifiers.Contain(ModShift)

	if s.charFocus && s.selFocus != 0 {
		// Character focus captures the keyboard: commands go to the
		// focus, text arrives via HandleChar, and an unhandled Escape
		// releases the focus.
		if hasCmd {
			r := mgr.send(w, s.selFocus, Command{Code: cmd, Shift: shift})
			if !r.IsUnhandled() {
				return
			}
		}
		if key == KeyEscape {
			mgr.ClearCharFocus()
		}
		return
	}

	if key == KeyTab {
		mgr.NextNavFocus(w, shift)
		return
	}

	// Resolve a single (widget, event) pair; delivery happens once,
	// below. An unhandled delivery triggers only the Escape fallback,
	// never a further candidate.
	var target kas.WidgetID
	var ev Event
	if !s.modifiers.Contain(ModAlt) && s.navFocus != 0 {
		if key == KeySpace || key == KeyReturn || key == KeyEnter {
			target, ev = s.navFocus, Activate{}
		} else if hasCmd {
			target, ev = s.navFocus, Command{Code: cmd, Shift: shift}
		}
	}
	if target == 0 && hasCmd {
		t := s.navFallback
		if n := len(s.popups); n > 0 {
			t = s.popups[n-1].popup.Parent
		}
		if t != 0 {
			target, ev = t, Command{Code: cmd, Shift: shift}
		}
	}
	if target == 0 {
		// Accelerator layers: search from the top popup's parent down
		// to the root, stopping at the first layer which holds the key
		// and accepts the modifier state. Popups above the matched
		// layer are closed before delivery.
		if id, above, ok := mgr.findAccel(key); ok {
			for _, wid := range above {
				mgr.CloseWindow(w, wid)
			}
			target, ev = id, Activate{}
		}
	}

	if target != 0 {
		if _, isActivate := ev.(Activate); isActivate {
			mgr.activate(w, target, scancode)
			return
		}
		if r := mgr.send(w, target, ev); r.IsUnhandled() {
			mgr.escapeFallback(w, key)
		}
		return
	}
	mgr.escapeFallback(w, key)
}

// findAccel searches accelerator layers for key, starting from the top
// popup's parent and descending to the root. It returns the bound
// widget and the windows of popups stacked above the matching layer.
func (mgr *Manager) findAccel(key Key) (id kas.WidgetID, above []kas.WindowID, ok bool) {
	s := mgr.state
	alt := s.modifiers.Contain(ModAlt)
	for i := len(s.popups) - 1; i >= 0; i-- {
		layer, found := s.accelLayers[s.popups[i].popup.Parent]
		if !found {
			continue
		}
		if !alt && !layer.bypass {
			continue
		}
		if wid, bound := layer.keys[key]; bound {
			for _, e := range s.popups[i+1:] {
				above = append(above, e.window)
			}
			return wid, above, true
		}
	}
	if layer, found := s.accelLayers[s.accelRoot]; found && (alt || layer.bypass) {
		if wid, bound := layer.keys[key]; bound {
			for _, e := range s.popups {
				above = append(above, e.window)
			}
			return wid, above, true
		}
	}
	return 0, nil, false
}

// activate sends Activate to id and records the depressed key so the
// widget is drawn depressed until release. A widget already depressed
// by another scancode is not recorded twice.
func (mgr *Manager) activate(w Widget, id kas.WidgetID, scancode uint32) {
	mgr.send(w, id, Activate{})
	for _, did := range mgr.state.keyDepress {
		if did == id {
			return
		}
	}
	mgr.state.keyDepress[scancode] = id
	mgr.Redraw()
}

// escapeFallback implements unhandled-Escape behavior: close the top
// popup, else clear navigation focus. Reports whether it acted.
func (mgr *Manager) escapeFallback(w Widget, key Key) bool {
	if key != KeyEscape {
		return false
	}
	s := mgr.state
	if n := len(s.popups); n > 0 {
		mgr.CloseWindow(w, s.popups[n-1].window)
		return true
	}
	if s.navFocus != 0 {
		s.navFocus = 0
		mgr.Redraw()
		return true
	}
	return false
}

// HandleKeyUp handles a key release by scancode.
func (mgr *Manager) HandleKeyUp(scancode uint32) {
	if _, found := mgr.state.keyDepress[scancode]; found {
		delete(mgr.state.keyDepress, scancode)
		mgr.Redraw()
	}
}

// HandleChar handles received character input, routed to the character
// focus.
func (mgr *Manager) HandleChar(w Widget, char rune) {
	s := mgr.state
	if s.charFocus && s.selFocus != 0 {
		mgr.sendEvent(w, s.selFocus, ReceivedCharacter{Char: char})
	}
}

// HandleResume fires timer entries due at or before now. Periodic
// entries are advanced past now before delivery so a late resume fires
// once.
func (mgr *Manager) HandleResume(w Widget, now time.Time) {
	s := mgr.state
	var due []kas.WidgetID
	for i := 0; i < len(s.timeUpdates); {
		e := &s.timeUpdates[i]
		if e.fire.After(now) {
			i++
			continue
		}
		due = append(due, e.id)
		if e.repeat > 0 {
			for !e.fire.After(now) {
				e.fire = e.fire.Add(e.repeat)
			}
			i++
		} else {
			s.timeUpdates = slices.Delete(s.timeUpdates, i, i+1)
		}
	}
	for _, id := range due {
		mgr.sendEvent(w, id, TimerUpdate{})
	}
}

// HandleUpdate delivers a handle trigger to all registered widgets.
// Registrations are consumed; handlers re-register to observe further
// triggers.
func (mgr *Manager) HandleUpdate(w Widget, handle UpdateHandle, payload uint64) {
	s := mgr.state
	set := s.handleUpdates[handle]
	if len(set) == 0 {
		return
	}
	delete(s.handleUpdates, handle)
	ids := maps.Keys(set)
	slices.Sort(ids)
	for _, id := range ids {
		mgr.sendEvent(w, id, HandleUpdate{Handle: handle, Payload: payload})
	}
}

// setHover updates the hover target and the cursor icon. The icon comes
// from the deepest hovered widget with a non-default icon; it is not
// applied while a mouse grab holds the cursor.
func (mgr *Manager) setHover(w Widget, id kas.WidgetID) {
	s := mgr.state
	if s.hover == id {
		return
	}
	if h := s.hover; h != 0 {
		if hw := Find(w, h); hw != nil && hw.HoverHighlight() {
			mgr.Redraw()
		}
	}
	s.hover = id
	icon := CursorDefault
	if id != 0 {
		icon = hoverIcon(w, id)
		if hw := Find(w, id); hw != nil && hw.HoverHighlight() {
			mgr.Redraw()
		}
	}
	if icon != s.hoverIcon {
		s.hoverIcon = icon
		if s.mouseGrab == nil {
			mgr.shell.SetCursorIcon(icon)
		}
	}
}

// hoverIcon walks the ancestor chain of id, returning the deepest
// non-default cursor icon on the path.
func hoverIcon(w Widget, id kas.WidgetID) CursorIcon {
	icon := CursorDefault
	for w != nil && w.Core().Contains(id) {
		if ic := w.CursorIcon(); ic != CursorDefault {
			icon = ic
		}
		var next Widget
		for i := 0; i < w.NumChildren(); i++ {
			c := w.Child(i)
			if c != nil && c.Core().Contains(id) {
				next = c
				break
			}
		}
		w = next
	}
	return icon
}

// send routes e to id, returning the widget's response.
func (mgr *Manager) send(w Widget, id kas.WidgetID, e Event) Response {
	if id == 0 || !w.Core().Contains(id) {
		return Unhandled()
	}
	return w.Send(mgr, id, e)
}
