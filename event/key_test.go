// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"testing"

	"github.com/dhardy/kas"
)

func TestTabTraversalCycles(t *testing.T) {
	a := &testWidget{focusable: true}
	b := &testWidget{}
	c := &testWidget{focusable: true}
	d := &testWidget{focusable: true}
	root := row(nil, a, b, c, d)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	tab := func(reverse bool) kas.WidgetID {
		mgr := state.Manage(shell)
		if reverse {
			mgr.HandleModifiers(ModShift)
		} else {
			mgr.HandleModifiers(0)
		}
		mgr.HandleKeyDown(root, KeyTab, 1)
		mgr.Finish(root)
		return state.NavFocus()
	}

	// Every focusable widget is visited once before the cycle repeats;
	// b is skipped.
	want := []kas.WidgetID{a.core.ID, c.core.ID, d.core.ID, a.core.ID}
	for i, id := range want {
		if got := tab(false); got != id {
			t.Fatalf("tab %d: focus = %v, want %v", i, got, id)
		}
	}
	if got := tab(true); got != d.core.ID {
		t.Errorf("shift-tab: focus = %v, want %v", got, d.core.ID)
	}
}

func TestActivateAndKeyDepress(t *testing.T) {
	var log []received
	a := &testWidget{focusable: true}
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	mgr.HandleKeyDown(root, KeySpace, 57)
	mgr.Finish(root)

	if _, ok := lastEvent(t, log).event.(Activate); !ok {
		t.Fatalf("got %T, want Activate", lastEvent(t, log).event)
	}
	if !state.IsDepressed(a.core.ID) {
		t.Errorf("not depressed while key held")
	}

	mgr = state.Manage(shell)
	mgr.HandleKeyUp(57)
	mgr.Finish(root)
	if state.IsDepressed(a.core.ID) {
		t.Errorf("still depressed after release")
	}
}

func TestCommandToNavFocus(t *testing.T) {
	var log []received
	a := &testWidget{focusable: true}
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	mgr.HandleModifiers(ModCtrl)
	mgr.HandleKeyDown(root, "C", 46)
	mgr.Finish(root)

	cmd, ok := lastEvent(t, log).event.(Command)
	if !ok {
		t.Fatalf("got %T, want Command", lastEvent(t, log).event)
	}
	if cmd.Code != CmdCopy {
		t.Errorf("Code = %v, want Copy", cmd.Code)
	}
}

func TestCommandFallsBackToNavFallback(t *testing.T) {
	var log []received
	a := &testWidget{}
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFallback(a.core.ID)
	mgr.HandleKeyDown(root, KeyPageDown, 81)
	mgr.Finish(root)

	cmd, ok := lastEvent(t, log).event.(Command)
	if !ok || cmd.Code != CmdPageDown {
		t.Errorf("fallback got %v %T", lastEvent(t, log).event, lastEvent(t, log).event)
	}
}

func TestCharFocusRouting(t *testing.T) {
	var log []received
	a := &testWidget{focusable: true}
	a.onEvent = func(_ *Manager, e Event) Response {
		if _, ok := e.(Command); ok {
			return Unhandled()
		}
		return Used()
	}
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.RequestCharFocus(a.core.ID)
	mgr.Finish(root)

	mgr = state.Manage(shell)
	mgr.HandleChar(root, 'x')
	mgr.Finish(root)
	rc, ok := lastEvent(t, log).event.(ReceivedCharacter)
	if !ok || rc.Char != 'x' {
		t.Fatalf("got %v, want ReceivedCharacter{x}", lastEvent(t, log).event)
	}

	// Escape releases character focus only: selection focus stays and
	// the loss notification arrives after the dispatch.
	mgr = state.Manage(shell)
	mgr.HandleKeyDown(root, KeyEscape, 1)
	n := len(log)
	mgr.Finish(root)

	if state.HasCharFocus(a.core.ID) {
		t.Errorf("char focus survived escape")
	}
	if !state.HasSelFocus(a.core.ID) {
		t.Errorf("sel focus lost on char-focus clear")
	}
	tail := log[n:]
	if len(tail) != 1 {
		t.Fatalf("got %d focus-loss events, want 1", len(tail))
	}
	if _, ok := tail[0].event.(LostCharFocus); !ok {
		t.Errorf("loss event is %T, want LostCharFocus", tail[0].event)
	}
}

func TestCharFocusTransferDeferred(t *testing.T) {
	var log []received
	var during int
	b := &testWidget{focusable: true}
	a := &testWidget{focusable: true}
	// a transfers focus to b when activated.
	a.onEvent = func(mgr *Manager, e Event) Response {
		if _, ok := e.(Activate); ok {
			mgr.RequestCharFocus(b.core.ID)
			during = len(log)
		}
		return Used()
	}
	root := row(&log, a, b)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.RequestCharFocus(a.core.ID)
	mgr.Finish(root)

	mgr = state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	state.charFocus = false // keep key routing on nav focus for the test
	mgr.HandleKeyDown(root, KeySpace, 57)
	notYet := len(log)
	mgr.Finish(root)

	// The loss notification to a must not be delivered inside a's own
	// Activate handling, only from Finish.
	if during != notYet {
		t.Fatalf("focus loss delivered during dispatch")
	}
	tail := log[notYet:]
	if len(tail) != 1 {
		t.Fatalf("got %d focus-loss events, want 1", len(tail))
	}
	if tail[0].id != a.core.ID {
		t.Errorf("loss sent to %v, want %v", tail[0].id, a.core.ID)
	}
	if _, ok := tail[0].event.(LostSelFocus); !ok {
		t.Errorf("loss event is %T, want LostSelFocus", tail[0].event)
	}
	if !state.HasCharFocus(b.core.ID) {
		t.Errorf("char focus not transferred to b")
	}
}

func TestAccelKeyActivation(t *testing.T) {
	var log []received
	a := &testWidget{accel: []Key{"S"}}
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	// Without Alt the root layer does not match.
	mgr := state.Manage(shell)
	mgr.HandleKeyDown(root, "S", 31)
	mgr.Finish(root)
	if len(log) != 0 {
		t.Fatalf("accel fired without Alt")
	}

	mgr = state.Manage(shell)
	mgr.HandleModifiers(ModAlt)
	mgr.HandleKeyDown(root, "S", 31)
	mgr.Finish(root)
	got := lastEvent(t, log)
	if _, ok := got.event.(Activate); !ok || got.id != a.core.ID {
		t.Errorf("got %T to %v, want Activate to %v", got.event, got.id, a.core.ID)
	}
	if !state.IsDepressed(a.core.ID) {
		t.Errorf("accel target not depressed")
	}
}

func TestAccelSearchClosesPopupsAbove(t *testing.T) {
	// Two menu widgets each own a popup layer over their subtree; the
	// layer is found via the open popup's parent.
	var log []received
	t1 := &testWidget{accel: []Key{"S"}, log: &log}
	m1 := &accelWidget{bypass: true}
	m1.children = []Widget{t1}
	t2 := &testWidget{accel: []Key{"T"}, log: &log}
	m2 := &accelWidget{bypass: true}
	m2.children = []Widget{t2}
	m2.log = &log
	root := &testWidget{children: []Widget{m1, m2}, log: &log}
	state := NewManagerState()
	shell := &testShell{}
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	w1 := mgr.AddPopup(kas.Popup{ID: t1.core.ID, Parent: m1.core.ID, Direction: kas.Down})
	w2 := mgr.AddPopup(kas.Popup{ID: t2.core.ID, Parent: m2.core.ID, Direction: kas.Down})
	mgr.Finish(root)

	// "S" is bound in m1's layer: m2's popup, stacked above, closes
	// before delivery and m2 learns of the removal.
	mgr = state.Manage(shell)
	mgr.HandleKeyDown(root, "S", 31)
	mgr.Finish(root)

	if len(shell.closed) != 1 || shell.closed[0] != w2 {
		t.Fatalf("closed %v, want [%v]", shell.closed, w2)
	}
	if len(state.popups) != 1 || state.popups[0].window != w1 {
		t.Errorf("popup stack = %+v", state.popups)
	}
	var activated, removed bool
	for _, r := range log {
		switch e := r.event.(type) {
		case Activate:
			activated = r.id == t1.core.ID
		case PopupRemoved:
			removed = r.id == m2.core.ID && e.Window == w2
		}
	}
	if !activated {
		t.Errorf("accel target not activated")
	}
	if !removed {
		t.Errorf("popup parent did not receive PopupRemoved")
	}
}

func TestEscapeClosesTopPopupThenClearsNavFocus(t *testing.T) {
	var log []received
	unhandled := func(*Manager, Event) Response { return Unhandled() }
	a := &testWidget{focusable: true, onEvent: unhandled, log: &log}
	popup := &accelWidget{}
	popup.onEvent = unhandled
	popup.children = []Widget{&testWidget{}}
	root := &testWidget{children: []Widget{a, popup}, log: &log}
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	wid := mgr.AddPopup(kas.Popup{ID: popup.core.ID, Parent: a.core.ID, Direction: kas.Down})
	mgr.Finish(root)

	mgr = state.Manage(shell)
	mgr.HandleKeyDown(root, KeyEscape, 1)
	mgr.Finish(root)
	if len(shell.closed) != 1 || shell.closed[0] != wid {
		t.Fatalf("escape did not close popup: %v", shell.closed)
	}
	got := lastEvent(t, log)
	pr, ok := got.event.(PopupRemoved)
	if !ok || got.id != a.core.ID || pr.Window != wid {
		t.Errorf("got %T to %v, want PopupRemoved{%v} to %v", got.event, got.id, wid, a.core.ID)
	}

	mgr = state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	mgr.HandleKeyDown(root, KeyEscape, 1)
	mgr.Finish(root)
	if state.NavFocus() != 0 {
		t.Errorf("escape did not clear nav focus")
	}
}

func TestKeyDownDeliversSingleEvent(t *testing.T) {
	// Navigation focus resolves the key; the delivery going unhandled
	// must not re-resolve against the fallback or accelerator layers.
	var log []received
	nav := &testWidget{focusable: true, log: &log}
	nav.onEvent = func(*Manager, Event) Response { return Unhandled() }
	acc := &testWidget{accel: []Key{KeyPageDown}, log: &log}
	root := &accelWidget{bypass: true}
	root.children = []Widget{nav, acc}
	root.log = &log
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFocus(nav.core.ID)
	mgr.SetNavFallback(acc.core.ID)
	mgr.HandleKeyDown(root, KeyPageDown, 81)
	mgr.Finish(root)

	if len(log) != 1 {
		t.Fatalf("one key-down produced %d deliveries, want 1: %+v", len(log), log)
	}
	cmd, ok := log[0].event.(Command)
	if !ok || log[0].id != nav.core.ID || cmd.Code != CmdPageDown {
		t.Errorf("got %T to %v, want Command{PageDown} to %v", log[0].event, log[0].id, nav.core.ID)
	}
}

func TestKeyDepressRecordedWhenUnhandled(t *testing.T) {
	var log []received
	a := &testWidget{focusable: true, log: &log}
	a.onEvent = func(*Manager, Event) Response { return Unhandled() }
	root := row(&log, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	mgr := state.Manage(shell)
	mgr.SetNavFocus(a.core.ID)
	mgr.HandleKeyDown(root, KeySpace, 57)
	mgr.Finish(root)

	if !state.IsDepressed(a.core.ID) {
		t.Errorf("activation target not depressed")
	}
}

func TestKeyDepressNotDuplicated(t *testing.T) {
	a := &testWidget{focusable: true}
	root := row(nil, a)
	shell := &testShell{}
	state := NewManagerState()
	state.Configure(shell, root)

	press := func(scancode uint32) {
		mgr := state.Manage(shell)
		mgr.SetNavFocus(a.core.ID)
		mgr.HandleKeyDown(root, KeySpace, scancode)
		mgr.Finish(root)
	}
	press(57)
	press(58)
	if len(state.keyDepress) != 1 {
		t.Fatalf("depress entries = %d, want 1", len(state.keyDepress))
	}

	mgr := state.Manage(shell)
	mgr.HandleKeyUp(57)
	mgr.Finish(root)
	if state.IsDepressed(a.core.ID) {
		t.Errorf("still depressed after releasing the recorded scancode")
	}
}
