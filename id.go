// SPDX-License-Identifier: Unlicense OR MIT

package kas

import "strconv"

// WidgetID identifies a widget within a window.
//
// Identifiers are assigned by a pre-order walk over the widget tree, so
// for any parent P and descendant D, P's identifier is less than D's,
// and the identifiers of a subtree form a contiguous range. The zero
// value identifies no widget.
//
// Identifiers are stable only until the next reconfiguration; stored
// identifiers must be repaired with the remap produced by that pass.
type WidgetID uint32

// NoID is the zero WidgetID, identifying no widget.
const NoID WidgetID = 0

// IsValid reports whether id identifies a widget.
func (id WidgetID) IsValid() bool {
	return id != 0
}

func (id WidgetID) String() string {
	if id == 0 {
		return "#none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// WindowID identifies a window managed by the shell. The zero value
// identifies no window.
type WindowID uint32

func (id WindowID) String() string {
	if id == 0 {
		return "w#none"
	}
	return "w#" + strconv.FormatUint(uint64(id), 10)
}
