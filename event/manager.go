// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dhardy/kas"
	"github.com/dhardy/kas/geom"
)

// GrabMode controls the events delivered for a grabbed press.
type GrabMode uint8

const (
	// Grab delivers PressMove and PressEnd for the press.
	Grab GrabMode = iota
	// PanFull delivers Pan events with scaling and rotation.
	PanFull
	// PanScale delivers Pan events with scaling.
	PanScale
	// PanRotate delivers Pan events with rotation.
	PanRotate
	// PanOnly delivers Pan events without scaling or rotation.
	PanOnly
)

func (m GrabMode) isPan() bool {
	return m != Grab
}

func (m GrabMode) String() string {
	switch m {
	case Grab:
		return "Grab"
	case PanFull:
		return "PanFull"
	case PanScale:
		return "PanScale"
	case PanRotate:
		return "PanRotate"
	case PanOnly:
		return "PanOnly"
	default:
		panic("invalid GrabMode")
	}
}

// maxPanPoints is the number of contact points contributing to a pan
// gesture; two suffice to solve for translation, scale and rotation.
const maxPanPoints = 2

// panRef locates a grab's contribution within the pan-gesture list:
// gesture index g, point index p. The list is dense, so removals shift
// indices; see removePan and removePanGrab.
type panRef struct {
	g, p int
}

var noPan = panRef{g: -1, p: -1}

type mouseGrab struct {
	button      MouseButton
	repetitions uint32
	startID     kas.WidgetID
	depress     kas.WidgetID
	mode        GrabMode
	pan         panRef
}

type touchGrab struct {
	startID kas.WidgetID
	depress kas.WidgetID
	curID   kas.WidgetID
	coord   geom.Coord
	mode    GrabMode
	pan     panRef
}

type panGrab struct {
	id            kas.WidgetID
	mode          GrabMode
	sourceIsTouch bool
	n             int
	// coords holds (start, current) pairs for each contributing point.
	coords [maxPanPoints][2]geom.Coord
}

type pendingKind uint8

const (
	pendingLostCharFocus pendingKind = iota
	pendingLostSelFocus
)

type pendingNotice struct {
	kind pendingKind
	id   kas.WidgetID
}

type timerEntry struct {
	fire time.Time
	id   kas.WidgetID
	// repeat is the rescheduling interval; zero for one-shot entries.
	repeat time.Duration
}

type accelLayer struct {
	bypass bool
	keys   map[Key]kas.WidgetID
}

type popupEntry struct {
	window kas.WindowID
	popup  kas.Popup
}

// doubleClickWindow is the timeout within which a further press of the
// same button counts as a repetition.
const doubleClickWindow = 500 * time.Millisecond

// ManagerState is the persistent per-window interaction state. It is
// created at window construction, configured via [ManagerState.Configure]
// and thereafter mutated only through [Manager] handles.
//
// The read-only query methods are intended for the draw collaborator,
// which needs highlight state for each widget.
type ManagerState struct {
	shortcuts Shortcuts

	modifiers Modifiers
	// charFocus is only meaningful while selFocus is set: character
	// events route to the selection-focus widget.
	charFocus   bool
	selFocus    kas.WidgetID
	navFocus    kas.WidgetID
	navFallback kas.WidgetID

	hover     kas.WidgetID
	hoverIcon CursorIcon

	keyDepress           map[uint32]kas.WidgetID
	lastMouseCoord       geom.Coord
	lastClickButton      MouseButton
	lastClickRepetitions uint32
	lastClickTimeout     time.Time

	mouseGrab *mouseGrab
	touchGrab map[uint64]*touchGrab
	panGrab   []panGrab

	accelStack  []accelLayer
	accelLayers map[kas.WidgetID]accelLayer
	accelRoot   kas.WidgetID
	popups      []popupEntry

	timeUpdates   []timerEntry
	handleUpdates map[UpdateHandle]map[kas.WidgetID]struct{}

	pending []pendingNotice
}

// NewManagerState returns interaction state using the standard shortcut
// table. The state is inert until [ManagerState.Configure] has assigned
// widget identifiers.
func NewManagerState() *ManagerState {
	return NewManagerStateWith(DefaultShortcuts())
}

// NewManagerStateWith is like NewManagerState with an explicit shortcut
// table.
func NewManagerStateWith(shortcuts Shortcuts) *ManagerState {
	return &ManagerState{
		shortcuts:     shortcuts,
		keyDepress:    make(map[uint32]kas.WidgetID),
		touchGrab:     make(map[uint64]*touchGrab),
		accelLayers:   make(map[kas.WidgetID]accelLayer),
		handleUpdates: make(map[UpdateHandle]map[kas.WidgetID]struct{}),
	}
}

// Manage returns a dispatch handle over the state. The handle is valid
// for a single platform-event translation: call exactly one entry
// point, then drain with [Manager.Finish].
func (s *ManagerState) Manage(shell ShellWindow) *Manager {
	return &Manager{state: s, shell: shell}
}

// IsHovered reports whether id is the current hover target.
func (s *ManagerState) IsHovered(id kas.WidgetID) bool {
	return id != 0 && s.hover == id
}

// IsDepressed reports whether id should be drawn in a depressed state:
// it is the visual target of an active mouse or touch grab or of a held
// activation key.
func (s *ManagerState) IsDepressed(id kas.WidgetID) bool {
	if id == 0 {
		return false
	}
	if g := s.mouseGrab; g != nil && g.depress == id {
		return true
	}
	for _, g := range s.touchGrab {
		if g.depress == id {
			return true
		}
	}
	for _, did := range s.keyDepress {
		if did == id {
			return true
		}
	}
	return false
}

// HasNavFocus reports whether id holds navigation focus.
func (s *ManagerState) HasNavFocus(id kas.WidgetID) bool {
	return id != 0 && s.navFocus == id
}

// HasSelFocus reports whether id holds selection focus.
func (s *ManagerState) HasSelFocus(id kas.WidgetID) bool {
	return id != 0 && s.selFocus == id
}

// HasCharFocus reports whether id holds character focus.
func (s *ManagerState) HasCharFocus(id kas.WidgetID) bool {
	return id != 0 && s.charFocus && s.selFocus == id
}

// NavFocus returns the navigation-focus target, if any.
func (s *ManagerState) NavFocus() kas.WidgetID {
	return s.navFocus
}

// NextResume returns the instant of the earliest pending timer entry.
func (s *ManagerState) NextResume() (time.Time, bool) {
	if len(s.timeUpdates) == 0 {
		return time.Time{}, false
	}
	next := s.timeUpdates[0].fire
	for _, e := range s.timeUpdates[1:] {
		if e.fire.Before(next) {
			next = e.fire
		}
	}
	return next, true
}

// setPanOn adds a contributing point for a press on id, creating a new
// gesture or extending an existing one. A source-kind mismatch forces
// removal of the old gesture first.
func (s *ManagerState) setPanOn(id kas.WidgetID, mode GrabMode, sourceIsTouch bool, coord geom.Coord) panRef {
	for gi := range s.panGrab {
		g := &s.panGrab[gi]
		if g.id != id {
			continue
		}
		if g.sourceIsTouch != sourceIsTouch {
			s.removePan(gi)
			break
		}
		p := g.n
		if p < maxPanPoints {
			g.coords[p] = [2]geom.Coord{coord, coord}
		}
		g.n = p + 1
		return panRef{g: gi, p: p}
	}

	gi := len(s.panGrab)
	var g panGrab
	g.id = id
	g.mode = mode
	g.sourceIsTouch = sourceIsTouch
	g.n = 1
	g.coords[0] = [2]geom.Coord{coord, coord}
	s.panGrab = append(s.panGrab, g)
	return panRef{g: gi, p: 0}
}

// removePan removes the gesture at index from the dense list. Stored
/// references in press grabs are repaired: indices above the slot shift
// down by one, and grabs referencing the removed slot are dropped.
func (s *ManagerState) removePan(index int) {
	s.panGrab = slices.Delete(s.panGrab, index, index+1)
	if g := s.mouseGrab; g != nil {
		switch {
		case g.pan.g == index:
			s.mouseGrab = nil
		case g.pan.g > index:
			g.pan.g--
		}
	}
	maps.DeleteFunc(s.touchGrab, func(_ uint64, g *touchGrab) bool {
		if g.pan.g == index {
			return true
		}
		if g.pan.g > index {
			g.pan.g--
		}
		return false
	})
}

// removePanGrab releases one contributing point when its press grab
// ends, removing the gesture when the last point is gone.
func (s *ManagerState) removePanGrab(ref panRef) {
	if ref.g < 0 || ref.g >= len(s.panGrab) {
		return
	}
	g := &s.panGrab[ref.g]
	g.n--
	if g.n <= 0 {
		s.removePan(ref.g)
		return
	}
	for i := ref.p; i < g.n && i+1 < maxPanPoints; i++ {
		g.coords[i] = g.coords[i+1]
	}
	// Only touch gestures can hold more than one point.
	for _, tg := range s.touchGrab {
		if tg.pan.g == ref.g && tg.pan.p > ref.p {
			tg.pan.p--
			if tg.pan.p == maxPanPoints-1 {
				c := tg.coord
				s.panGrab[ref.g].coords[tg.pan.p] = [2]geom.Coord{c, c}
			}
		}
	}
}
