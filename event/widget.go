// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

// Widget is the capability set the event manager requires from every
// element of the tree. Concrete widgets embed [kas.CoreData] and route
// all behavioural variation through this interface; the manager never
// branches on concrete types.
type Widget interface {
	// Core returns the widget's property storage.
	Core() *kas.CoreData

	// NumChildren returns the number of direct children.
	NumChildren() int
	// Child returns the direct child at the given index, or nil if the
	// index is out of bounds.
	Child(index int) Widget

	// FindID hit-tests coord, returning the identifier of the
	// leaf-most widget occupying it. A widget may return its own
	// identifier over a child's to steal events. Zero when coord is
	// outside the widget.
	FindID(coord geom.Coord) kas.WidgetID

	// CursorIcon is the preferred cursor icon on hover.
	CursorIcon() CursorIcon
	// HoverHighlight reports whether the widget is redrawn when the
	// hover state changes.
	HoverHighlight() bool
	// AllowFocus reports whether the widget is navigable via Tab.
	AllowFocus() bool

	// Send delivers an event to the widget identified by id within
	// this subtree, returning the handler's response. Send on a root
	// both dispatches to the addressed widget and lets ancestors
	// interpret message responses. An unknown id yields Unhandled.
	Send(mgr *Manager, id kas.WidgetID, e Event) Response
}

// Configurer is implemented by widgets requiring a configuration hook.
// Configured runs after the widget's subtree has been assigned
// identifiers; it is where accelerator keys, the navigation fallback
// and initial timers are registered.
type Configurer interface {
	Configured(mgr *Manager)
}

// AccelOwner is implemented by widgets owning an accelerator layer
// spanning their subtree: the window root's layer is implicit, popup
// parents declare their own. Keys registered while the subtree is being
// configured land in the innermost open layer.
type AccelOwner interface {
	// AccelBypass reports whether the layer's keys match without the
	// Alt modifier held.
	AccelBypass() bool
}

// Find returns the widget with the given identifier, or nil. It
// descends using the contiguous identifier-range invariant, so lookup
// cost is proportional to tree depth.
func Find(w Widget, id kas.WidgetID) Widget {
	if w == nil || !w.Core().Contains(id) {
		return nil
	}
outer:
	for w.Core().ID != id {
		for i := 0; i < w.NumChildren(); i++ {
			if c := w.Child(i); c != nil && c.Core().Contains(id) {
				w = c
				continue outer
			}
		}
		// Inconsistent tree; treat as absent.
		return nil
	}
	return w
}

// Walk visits every widget in the subtree, depth-first, calling f on
// each widget after its children.
func Walk(w Widget, f func(Widget)) {
	if w == nil {
		return
	}
	for i := 0; i < w.NumChildren(); i++ {
		Walk(w.Child(i), f)
	}
	f(w)
}

// ShellWindow is the capability surface the event manager requires from
// the windowing collaborator. Clipboard access is best-effort: failures
// are silent and GetClipboard returns the empty string.
type ShellWindow interface {
	// AddPopup opens a popup window for the described subtree and
	// returns its window identifier.
	AddPopup(popup kas.Popup) kas.WindowID
	// CloseWindow closes a window previously opened via AddPopup.
	CloseWindow(id kas.WindowID)
	// SetCursorIcon sets the window's effective cursor icon.
	SetCursorIcon(icon CursorIcon)
	// TriggerUpdate fires an update handle on all windows.
	TriggerUpdate(handle UpdateHandle, payload uint64)

	GetClipboard() string
	SetClipboard(content string)
}
