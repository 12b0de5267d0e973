// SPDX-License-Identifier: Unlicense OR MIT

package kas

import "github.com/dhardy/kas/geom"

// CoreData is the common property storage embedded by every widget.
//
// ID and Span are written by the configuration pass; Rect is written by
// the layout collaborator via SetRect.
type CoreData struct {
	// ID is the widget's identifier, zero before configuration.
	ID WidgetID
	// Span is the number of identifiers covered by the widget's
	// subtree, including the widget itself.
	Span uint32
	// Rect is the widget's assigned screen rectangle.
	Rect geom.Rect
}

// Contains reports whether id identifies this widget or one of its
// descendants. It relies on the contiguous pre-order range invariant
// maintained by the configuration pass.
func (c *CoreData) Contains(id WidgetID) bool {
	return c.ID != 0 && id >= c.ID && id < c.ID+WidgetID(c.Span)
}

// SetRect assigns the widget's screen rectangle.
func (c *CoreData) SetRect(rect geom.Rect) {
	c.Rect = rect
}
