// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

// Manager is the dispatch handle passed to widgets during event
// handling. It pairs the window's [ManagerState] with its shell and
// accumulates requested actions; retrieve them with [Manager.Finish].
type Manager struct {
	state  *ManagerState
	shell  ShellWindow
	action kas.Action
}

// SendAction requests window-level actions such as a redraw.
func (mgr *Manager) SendAction(action kas.Action) {
	mgr.action |= action
}

// Redraw requests a window redraw.
func (mgr *Manager) Redraw() {
	mgr.action |= kas.Redraw
}

// Modifiers returns the current keyboard modifier state.
func (mgr *Manager) Modifiers() Modifiers {
	return mgr.state.modifiers
}

// RequestGrab requests a grab on the given press source by id, reporting
// success. A request fails while a grab for the same press source is
// active: the single mouse pointer for mouse presses, the same touch
// point for touch presses.
//
// With mode Grab the widget receives PressMove and PressEnd events for
// this press. Pan modes instead feed the press into a pan gesture on id;
// motion arrives as Pan events. The cursor shows icon for the duration
// of a mouse grab.
func (mgr *Manager) RequestGrab(id kas.WidgetID, source PressSource, coord geom.Coord, mode GrabMode, icon CursorIcon) bool {
	s := mgr.state
	if source.IsTouch() {
		if _, held := s.touchGrab[source.TouchID]; held {
			return false
		}
	} else if s.mouseGrab != nil {
		return false
	}
	pan := noPan
	if mode.isPan() {
		pan = s.setPanOn(id, mode, source.IsTouch(), coord)
	}
	if source.IsTouch() {
		s.touchGrab[source.TouchID] = &touchGrab{
			startID: id,
			depress: id,
			curID:   id,
			coord:   coord,
			mode:    mode,
			pan:     pan,
		}
	} else {
		s.mouseGrab = &mouseGrab{
			button:      source.Button,
			repetitions: source.Repetitions,
			startID:     id,
			depress:     id,
			mode:        mode,
			pan:         pan,
		}
		if icon != CursorDefault {
			mgr.shell.SetCursorIcon(icon)
		}
	}
	mgr.Redraw()
	return true
}

// RequestCharFocus requests character focus (and selection focus) for id.
func (mgr *Manager) RequestCharFocus(id kas.WidgetID) {
	mgr.state.setCharFocus(id, true)
	mgr.Redraw()
}

// RequestSelFocus requests selection focus for id without character
// focus. An existing character focus on another widget is notified of
// the loss.
func (mgr *Manager) RequestSelFocus(id kas.WidgetID) {
	mgr.state.setCharFocus(id, false)
	mgr.Redraw()
}

// ClearCharFocus drops character focus, if any. Selection focus is
// retained; only a new focus target displaces it.
func (mgr *Manager) ClearCharFocus() {
	mgr.state.setCharFocus(0, false)
	mgr.Redraw()
}

// setCharFocus updates selection and character focus, queuing loss
// notifications for delivery after the current dispatch completes.
func (s *ManagerState) setCharFocus(wid kas.WidgetID, char bool) {
	if wid == 0 {
		if s.charFocus && s.selFocus != 0 {
			s.pending = append(s.pending, pendingNotice{pendingLostCharFocus, s.selFocus})
		}
		s.charFocus = false
		return
	}
	s.SetNavFocus(wid)
	if s.selFocus == wid {
		s.charFocus = char
		return
	}
	if s.selFocus != 0 {
		if s.charFocus {
			s.pending = append(s.pending, pendingNotice{pendingLostCharFocus, s.selFocus})
		}
		s.pending = append(s.pending, pendingNotice{pendingLostSelFocus, s.selFocus})
	}
	s.selFocus = wid
	s.charFocus = char
}

// SetNavFocus sets navigation focus to id.
func (mgr *Manager) SetNavFocus(id kas.WidgetID) {
	mgr.state.SetNavFocus(id)
	mgr.Redraw()
}

// SetNavFocus sets navigation focus to id without queuing a redraw.
func (s *ManagerState) SetNavFocus(id kas.WidgetID) {
	s.navFocus = id
}

// ClearNavFocus clears navigation focus.
func (mgr *Manager) ClearNavFocus() {
	mgr.state.navFocus = 0
	mgr.Redraw()
}

// SetNavFallback nominates id to receive command events when no
// navigation focus is set. Only the first nomination per configuration
// takes effect.
func (mgr *Manager) SetNavFallback(id kas.WidgetID) {
	if mgr.state.navFallback == 0 {
		mgr.state.navFallback = id
	}
}

// NextNavFocus advances navigation focus to the next focusable widget
// in tree order, or the previous when reverse is set. The cycle wraps:
// every focusable widget is visited before any repeats. The newly
// focused widget receives a NavFocus event.
func (mgr *Manager) NextNavFocus(w Widget, reverse bool) {
	var order []kas.WidgetID
	Walk(w, func(c Widget) {
		if c.AllowFocus() {
			order = append(order, c.Core().ID)
		}
	})
	if len(order) == 0 {
		mgr.state.navFocus = 0
		return
	}
	slices.Sort(order)
	if reverse {
		slices.Reverse(order)
	}
	next := order[0]
	if cur := mgr.state.navFocus; cur != 0 {
		if i, ok := slices.BinarySearchFunc(order, cur, func(a, b kas.WidgetID) int {
			switch {
			case a == b:
				return 0
			case (a < b) != reverse:
				return -1
			default:
				return 1
			}
		}); ok && i+1 < len(order) {
			next = order[i+1]
		}
	}
	mgr.state.navFocus = next
	mgr.Redraw()
	mgr.sendEvent(w, next, NavFocus{})
}

// AddAccelKeys binds keys to the current configuration layer's owner.
// It may only be called from a widget's Configured hook.
func (mgr *Manager) AddAccelKeys(id kas.WidgetID, keys ...Key) {
	s := mgr.state
	if len(s.accelStack) == 0 {
		return
	}
	layer := s.accelStack[len(s.accelStack)-1]
	for _, k := range keys {
		if _, dup := layer.keys[k]; !dup {
			layer.keys[k] = id
		}
	}
}

// AddPopup opens a popup over the window, returning the identifier of
// the new window.
func (mgr *Manager) AddPopup(popup kas.Popup) kas.WindowID {
	wid := mgr.shell.AddPopup(popup)
	mgr.state.popups = append(mgr.state.popups, popupEntry{window: wid, popup: popup})
	mgr.state.SetNavFocus(popup.ID)
	mgr.Redraw()
	return wid
}

// CloseWindow closes the given window. For a popup of this window, the
// popup is removed from the open stack and its parent is sent
// PopupRemoved.
func (mgr *Manager) CloseWindow(w Widget, wid kas.WindowID) {
	s := mgr.state
	if i := slices.IndexFunc(s.popups, func(e popupEntry) bool { return e.window == wid }); i >= 0 {
		parent := s.popups[i].popup.Parent
		s.popups = slices.Delete(s.popups, i, i+1)
		mgr.shell.CloseWindow(wid)
		mgr.Redraw()
		mgr.sendEvent(w, parent, PopupRemoved{Window: wid})
		return
	}
	mgr.shell.CloseWindow(wid)
}

// ScheduleTimer schedules a TimerUpdate for id after delay. A non-zero
// repeat reschedules the timer each time it fires. A second schedule
// for the same widget replaces the first.
func (mgr *Manager) ScheduleTimer(id kas.WidgetID, delay, repeat time.Duration) {
	s := mgr.state
	fire := time.Now().Add(delay)
	for i := range s.timeUpdates {
		if s.timeUpdates[i].id == id {
			s.timeUpdates[i].fire = fire
			s.timeUpdates[i].repeat = repeat
			return
		}
	}
	s.timeUpdates = append(s.timeUpdates, timerEntry{fire: fire, id: id, repeat: repeat})
}

// UpdateOnHandle registers id to receive a HandleUpdate event next time
// handle is triggered. Registrations are cleared on delivery and must
// be renewed from the event handler to observe further triggers.
func (mgr *Manager) UpdateOnHandle(handle UpdateHandle, id kas.WidgetID) {
	set := mgr.state.handleUpdates[handle]
	if set == nil {
		set = make(map[kas.WidgetID]struct{})
		mgr.state.handleUpdates[handle] = set
	}
	set[id] = struct{}{}
}

// TriggerUpdate asks the shell to trigger handle on all windows.
func (mgr *Manager) TriggerUpdate(handle UpdateHandle, payload uint64) {
	mgr.shell.TriggerUpdate(handle, payload)
}

// GetClipboard reads the system clipboard.
func (mgr *Manager) GetClipboard() string {
	return mgr.shell.GetClipboard()
}

// SetClipboard writes the system clipboard.
func (mgr *Manager) SetClipboard(content string) {
	mgr.shell.SetClipboard(content)
}

// Finish completes a dispatch: active pan gestures are resolved into
// Pan events, queued focus-loss notifications are delivered in order,
// and the accumulated action is returned.
func (mgr *Manager) Finish(w Widget) kas.Action {
	mgr.flushPans(w)
	s := mgr.state
	for len(s.pending) > 0 {
		n := s.pending[0]
		s.pending = s.pending[1:]
		switch n.kind {
		case pendingLostCharFocus:
			mgr.sendEvent(w, n.id, LostCharFocus{})
		case pendingLostSelFocus:
			mgr.sendEvent(w, n.id, LostSelFocus{})
		}
	}
	action := mgr.action
	mgr.action = 0
	return action
}

// sendEvent routes e to id through the widget tree. Unhandled responses
// and stale identifiers are dropped at this boundary.
func (mgr *Manager) sendEvent(w Widget, id kas.WidgetID, e Event) {
	if id == 0 || !w.Core().Contains(id) {
		return
	}
	w.Send(mgr, id, e)
}
