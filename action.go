// SPDX-License-Identifier: Unlicense OR MIT

package kas

import "strings"

// Action is a bit-set of window-level actions accumulated during event
// handling and drained by the shell after each dispatch.
type Action uint8

const (
	// Redraw requires the window to be redrawn.
	Redraw Action = 1 << iota
	// RegionMoved indicates that widgets have moved and cached
	// positional state (hover, hit tests) must be refreshed.
	RegionMoved
	// Reconfigure requires a full reconfiguration of the widget tree,
	// reassigning identifiers.
	Reconfigure
	// Close requests closing of the window.
	Close
	// CloseAll requests closing of all windows, terminating the UI.
	CloseAll
)

func (a Action) String() string {
	if a == 0 {
		return "None"
	}
	var b strings.Builder
	add := func(bit Action, name string) {
		if a&bit == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	add(Redraw, "Redraw")
	add(RegionMoved, "RegionMoved")
	add(Reconfigure, "Reconfigure")
	add(Close, "Close")
	add(CloseAll, "CloseAll")
	return b.String()
}
