// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"fmt"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

// Event is a semantic event delivered to a widget.
type Event interface {
	ImplementsEvent()
}

// Source distinguishes the device class a press originates from.
type Source uint8

const (
	// Mouse generated press.
	Mouse Source = iota
	// Touch generated press.
	Touch
)

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("invalid Source")
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	// ButtonPrimary is the primary button, usually the left button for
	// a right-handed user.
	ButtonPrimary MouseButton = iota
	// ButtonSecondary is the secondary button, usually the right one.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle one.
	ButtonTertiary
)

// PressSource identifies the origin of a press: a mouse button with a
// click-repetition count, or a touch point.
type PressSource struct {
	Source Source
	// Button is set for mouse presses.
	Button MouseButton
	// Repetitions counts successive clicks of the same button within
	// the repeat timeout: 1 for a single click, 2 for a double click.
	// Mouse presses only.
	Repetitions uint32
	// TouchID is the platform touch identifier. Touch presses only.
	TouchID uint64
}

// IsTouch reports whether the press originates from a touch point.
func (s PressSource) IsTouch() bool {
	return s.Source == Touch
}

func (s PressSource) String() string {
	if s.Source == Touch {
		return fmt.Sprintf("Touch(%d)", s.TouchID)
	}
	return fmt.Sprintf("Mouse(%v, %d)", s.Button, s.Repetitions)
}

// PressStart is delivered to the widget under a new press. The widget
// may respond by requesting a grab for the press via
// [Manager.RequestGrab].
type PressStart struct {
	Source PressSource
	// StartID is the hit-test target of the press.
	StartID kas.WidgetID
	Coord   geom.Coord
}

// PressMove is delivered to the grab holder when a grabbed press moves
// (grab mode Grab only).
type PressMove struct {
	Source PressSource
	// CurID is the hit-test target under the current coordinate, which
	// need not be the grab holder. Zero when outside the window.
	CurID kas.WidgetID
	Coord geom.Coord
	Delta geom.Coord
}

// PressEnd is delivered to the grab holder when a grabbed press is
// released (grab mode Grab only). The grab is cleared after delivery.
type PressEnd struct {
	Source PressSource
	// EndID is the hit-test target under the release coordinate. Zero
	// when outside the window.
	EndID kas.WidgetID
	Coord geom.Coord
}

// Pan reports accumulated movement of a pan gesture since the last Pan
// event. The new view transform is obtained from the old one by
// complex-multiplying positions by Alpha and then translating by Delta:
//
//	p' = Alpha*p + Delta
//
// Alpha is restricted according to the gesture's GrabMode: it is the
// unit vector (1, 0) for PanOnly, a real scale for PanScale and a pure
// rotation for PanRotate.
type Pan struct {
	Alpha geom.Vec2
	Delta geom.Vec2
}

// Activate requests the widget's default action: a button fires, a
// checkbox toggles.
type Activate struct{}

// Command is a keyboard command resolved through the shortcut table.
type Command struct {
	Code CommandCode
	// Shift reports whether the shift modifier was held, for commands
	// extending a selection.
	Shift bool
}

// NavFocus notifies a widget that it gained navigation focus.
type NavFocus struct{}

// ReceivedCharacter delivers raw character input to the widget holding
// character focus.
type ReceivedCharacter struct {
	Char rune
}

// LostCharFocus notifies a widget that it no longer has character
// focus. Delivery is deferred until the triggering dispatch completes.
type LostCharFocus struct{}

// LostSelFocus notifies a widget that it no longer has selection focus.
// Delivery is deferred until the triggering dispatch completes.
type LostSelFocus struct{}

// TimerUpdate is delivered when a timer scheduled via
// [Manager.ScheduleTimer] fires.
type TimerUpdate struct{}

// HandleUpdate is delivered to every widget registered for an update
// handle when the handle fires. Registrations are cleared on delivery;
// a widget wanting continuous notification re-registers on receipt.
type HandleUpdate struct {
	Handle  UpdateHandle
	Payload uint64
}

// PopupRemoved notifies a popup's parent that the popup was closed.
type PopupRemoved struct {
	Window kas.WindowID
}

func (PressStart) ImplementsEvent()        {}
func (PressMove) ImplementsEvent()         {}
func (PressEnd) ImplementsEvent()          {}
func (Pan) ImplementsEvent()               {}
func (Activate) ImplementsEvent()          {}
func (Command) ImplementsEvent()           {}
func (NavFocus) ImplementsEvent()          {}
func (ReceivedCharacter) ImplementsEvent() {}
func (LostCharFocus) ImplementsEvent()     {}
func (LostSelFocus) ImplementsEvent()      {}
func (TimerUpdate) ImplementsEvent()       {}
func (HandleUpdate) ImplementsEvent()      {}
func (PopupRemoved) ImplementsEvent()      {}
