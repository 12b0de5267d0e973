// SPDX-License-Identifier: Unlicense OR MIT

package kas

// Direction is the placement direction of a popup relative to its
// parent widget.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		panic("invalid Direction")
	}
}

// Popup describes a popup to be opened by the shell: a subtree rooted at
// ID, placed in the given direction relative to the widget Parent.
type Popup struct {
	ID        WidgetID
	Parent    WidgetID
	Direction Direction
}
