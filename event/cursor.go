// SPDX-License-Identifier: Unlicense OR MIT

package event

// CursorIcon denotes a pre-defined cursor shape. A widget reports its
// preferred icon via [Widget.CursorIcon]; the effective icon under the
// pointer is the deepest non-default icon along the addressed chain.
type CursorIcon byte

const (
	// CursorDefault is the default cursor.
	CursorDefault CursorIcon = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link or button.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorAllScroll is for indicating scrolling in all directions.
	CursorAllScroll
	// CursorGrab is for content that can be grabbed.
	CursorGrab
	// CursorGrabbing is for content that is being grabbed.
	CursorGrabbing
	// CursorNotAllowed is shown when the requested action cannot be
	// carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy.
	CursorWait
	// CursorColResize is for vertical resize.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	CursorRowResize
)

func (c CursorIcon) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorAllScroll:
		return "AllScroll"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	default:
		panic("invalid CursorIcon")
	}
}
