// SPDX-License-Identifier: Unlicense OR MIT

// Command hello demonstrates driving a widget tree from a terminal
// shell. Click the buttons, or use Tab and Space, or press Alt+Q.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/clipboard"
	"github.com/dhardy/kas/event"
	"github.com/dhardy/kas/geom"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hello:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "hello:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	shell := &shell{screen: screen}
	root := newRoot()
	state := event.NewManagerState()
	state.Configure(shell, root)
	root.layout(screen.Size())

	for !shell.quit {
		root.draw(screen, state)
		screen.Show()

		mgr := state.Manage(shell)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			root.layout(ev.Size())
		case *tcell.EventKey:
			mgr.HandleModifiers(translateMods(ev.Modifiers()))
			key, scancode := translateKey(ev)
			if key != "" {
				mgr.HandleKeyDown(root, key, scancode)
				// Terminals do not report key releases.
				mgr.HandleKeyUp(scancode)
			}
		case *tcell.EventMouse:
			shell.handleMouse(mgr, root, ev)
		}
		if action := mgr.Finish(root); action&(kas.Close|kas.CloseAll) != 0 {
			shell.quit = true
		}
	}
}

// shell adapts a tcell screen to the windowing interface the event
// manager drives.
type shell struct {
	screen  tcell.Screen
	buttons tcell.ButtonMask
	quit    bool
}

func (s *shell) AddPopup(kas.Popup) kas.WindowID          { return 0 }
func (s *shell) CloseWindow(kas.WindowID)                 {}
func (s *shell) SetCursorIcon(event.CursorIcon)           {}
func (s *shell) TriggerUpdate(event.UpdateHandle, uint64) {}
func (s *shell) GetClipboard() string                     { return clipboard.Get() }
func (s *shell) SetClipboard(content string)              { clipboard.Set(content) }

func (s *shell) handleMouse(mgr *event.Manager, root *rootWidget, ev *tcell.EventMouse) {
	x, y := ev.Position()
	mgr.HandleMouseMove(root, geom.Coord{X: x, Y: y})
	buttons := ev.Buttons() & tcell.ButtonMask(0xff)
	if pressed := buttons &^ s.buttons; pressed&tcell.Button1 != 0 {
		mgr.HandleMousePress(root, event.ButtonPrimary)
	}
	if released := s.buttons &^ buttons; released&tcell.Button1 != 0 {
		mgr.HandleMouseRelease(root, event.ButtonPrimary)
	}
	s.buttons = buttons
}

func translateMods(m tcell.ModMask) event.Modifiers {
	var mods event.Modifiers
	if m&tcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if m&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	return mods
}

func translateKey(ev *tcell.EventKey) (event.Key, uint32) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return event.KeySpace, uint32(r)
		}
		// Keys use the upper case form of letters.
		return event.Key(strings.ToUpper(string(r))), uint32(r)
	case tcell.KeyEnter:
		return event.KeyReturn, uint32(tcell.KeyEnter)
	case tcell.KeyTab:
		return event.KeyTab, uint32(tcell.KeyTab)
	case tcell.KeyEscape:
		return event.KeyEscape, uint32(tcell.KeyEscape)
	case tcell.KeyLeft:
		return event.KeyLeftArrow, uint32(tcell.KeyLeft)
	case tcell.KeyRight:
		return event.KeyRightArrow, uint32(tcell.KeyRight)
	case tcell.KeyUp:
		return event.KeyUpArrow, uint32(tcell.KeyUp)
	case tcell.KeyDown:
		return event.KeyDownArrow, uint32(tcell.KeyDown)
	}
	return "", 0
}

// rootWidget is a column of a message label and two buttons.
type rootWidget struct {
	core    kas.CoreData
	message string
	buttons [2]*button
}

func newRoot() *rootWidget {
	w := &rootWidget{message: "Hello! Try the buttons."}
	w.buttons[0] = &button{label: "Greet", accel: "G", onActivate: func(mgr *event.Manager) {
		w.message = "Hello, world!"
		mgr.Redraw()
	}}
	w.buttons[1] = &button{label: "Quit", accel: "Q", onActivate: func(mgr *event.Manager) {
		mgr.SendAction(kas.Close)
	}}
	return w
}

func (w *rootWidget) Core() *kas.CoreData          { return &w.core }
func (w *rootWidget) NumChildren() int             { return len(w.buttons) }
func (w *rootWidget) Child(i int) event.Widget     { return w.buttons[i] }
func (w *rootWidget) CursorIcon() event.CursorIcon { return event.CursorDefault }
func (w *rootWidget) HoverHighlight() bool         { return false }
func (w *rootWidget) AllowFocus() bool             { return false }

func (w *rootWidget) FindID(coord geom.Coord) kas.WidgetID {
	for _, b := range w.buttons {
		if b.core.Rect.Contains(coord) {
			return b.core.ID
		}
	}
	if w.core.Rect.Contains(coord) {
		return w.core.ID
	}
	return 0
}

func (w *rootWidget) Send(mgr *event.Manager, id kas.WidgetID, e event.Event) event.Response {
	for _, b := range w.buttons {
		if b.core.Contains(id) {
			return b.Send(mgr, id, e)
		}
	}
	return event.Unhandled()
}

func (w *rootWidget) layout(width, height int) {
	w.core.SetRect(geom.Rect{Size: geom.Size{W: width, H: height}})
	for i, b := range w.buttons {
		b.core.SetRect(geom.Rect{
			Pos:  geom.Coord{X: 2, Y: 3 + 2*i},
			Size: geom.Size{W: len(b.label) + 4, H: 1},
		})
	}
}

func (w *rootWidget) draw(screen tcell.Screen, state *event.ManagerState) {
	screen.Clear()
	drawText(screen, 2, 1, tcell.StyleDefault, w.message)
	for _, b := range w.buttons {
		b.draw(screen, state)
	}
}

type button struct {
	core       kas.CoreData
	label      string
	accel      event.Key
	onActivate func(mgr *event.Manager)
}

func (b *button) Core() *kas.CoreData          { return &b.core }
func (b *button) NumChildren() int             { return 0 }
func (b *button) Child(int) event.Widget       { return nil }
func (b *button) CursorIcon() event.CursorIcon { return event.CursorPointer }
func (b *button) HoverHighlight() bool         { return true }
func (b *button) AllowFocus() bool             { return true }

func (b *button) FindID(coord geom.Coord) kas.WidgetID {
	if b.core.Rect.Contains(coord) {
		return b.core.ID
	}
	return 0
}

func (b *button) Configured(mgr *event.Manager) {
	mgr.AddAccelKeys(b.core.ID, b.accel)
}

func (b *button) Send(mgr *event.Manager, _ kas.WidgetID, e event.Event) event.Response {
	switch e := e.(type) {
	case event.PressStart:
		mgr.RequestGrab(b.core.ID, e.Source, e.Coord, event.Grab, event.CursorPointer)
		return event.Used()
	case event.PressEnd:
		if e.EndID == b.core.ID {
			b.onActivate(mgr)
		}
		return event.Used()
	case event.Activate:
		b.onActivate(mgr)
		return event.Used()
	default:
		return event.Unhandled()
	}
}

func (b *button) draw(screen tcell.Screen, state *event.ManagerState) {
	style := tcell.StyleDefault
	if state.IsHovered(b.core.ID) || state.HasNavFocus(b.core.ID) {
		style = style.Bold(true)
	}
	if state.IsDepressed(b.core.ID) {
		style = style.Reverse(true)
	}
	drawText(screen, b.core.Rect.Pos.X, b.core.Rect.Pos.Y, style, "[ "+b.label+" ]")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
