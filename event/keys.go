// SPDX-License-Identifier: Unlicense OR MIT

package event

import "strings"

// Key is the identifier for a keyboard key.
//
// For letters, the upper case form is used. The shift modifier is
// taken into account, all other modifiers are ignored: "shift-1" and
// "ctrl-shift-1" both give the Key "!" with the US keyboard layout.
type Key string

const (
	// Names for special keys.
	KeyLeftArrow      Key = "←"
	KeyRightArrow     Key = "→"
	KeyUpArrow        Key = "↑"
	KeyDownArrow      Key = "↓"
	KeyReturn         Key = "⏎"
	KeyEnter          Key = "⌤"
	KeyEscape         Key = "⎋"
	KeyHome           Key = "⇱"
	KeyEnd            Key = "⇲"
	KeyDeleteBackward Key = "⌫"
	KeyDeleteForward  Key = "⌦"
	KeyPageUp         Key = "⇞"
	KeyPageDown       Key = "⇟"
	KeyTab            Key = "Tab"
	KeySpace          Key = "Space"
)

// Modifiers is a set of active modifier keys.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option key on Apple
	// keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key.
	ModSuper
)

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}

// CommandCode enumerates the keyboard commands resolvable through a
// shortcut table.
type CommandCode uint8

const (
	CmdEscape CommandCode = iota
	CmdReturn
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdHome
	CmdEnd
	CmdPageUp
	CmdPageDown
	CmdDelete
	CmdDelBack
	CmdSelectAll
	CmdCopy
	CmdCut
	CmdPaste
	CmdUndo
	CmdRedo
)

func (c CommandCode) String() string {
	switch c {
	case CmdEscape:
		return "Escape"
	case CmdReturn:
		return "Return"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdHome:
		return "Home"
	case CmdEnd:
		return "End"
	case CmdPageUp:
		return "PageUp"
	case CmdPageDown:
		return "PageDown"
	case CmdDelete:
		return "Delete"
	case CmdDelBack:
		return "DelBack"
	case CmdSelectAll:
		return "SelectAll"
	case CmdCopy:
		return "Copy"
	case CmdCut:
		return "Cut"
	case CmdPaste:
		return "Paste"
	case CmdUndo:
		return "Undo"
	case CmdRedo:
		return "Redo"
	default:
		panic("invalid CommandCode")
	}
}

type shortcut struct {
	mods Modifiers
	key  Key
}

// Shortcuts maps modifier+key combinations to commands.
type Shortcuts struct {
	m map[shortcut]CommandCode
}

// NewShortcuts returns an empty shortcut table.
func NewShortcuts() Shortcuts {
	return Shortcuts{m: make(map[shortcut]CommandCode)}
}

// DefaultShortcuts returns the standard shortcut table: unmodified
// navigation and editing keys plus the common Ctrl editing commands.
func DefaultShortcuts() Shortcuts {
	s := NewShortcuts()
	plain := map[Key]CommandCode{
		KeyEscape:         CmdEscape,
		KeyReturn:         CmdReturn,
		KeyEnter:          CmdReturn,
		KeyLeftArrow:      CmdLeft,
		KeyRightArrow:     CmdRight,
		KeyUpArrow:        CmdUp,
		KeyDownArrow:      CmdDown,
		KeyHome:           CmdHome,
		KeyEnd:            CmdEnd,
		KeyPageUp:         CmdPageUp,
		KeyPageDown:       CmdPageDown,
		KeyDeleteForward:  CmdDelete,
		KeyDeleteBackward: CmdDelBack,
	}
	for k, c := range plain {
		s.Add(0, k, c)
	}
	s.Add(ModCtrl, "A", CmdSelectAll)
	s.Add(ModCtrl, "C", CmdCopy)
	s.Add(ModCtrl, "X", CmdCut)
	s.Add(ModCtrl, "V", CmdPaste)
	s.Add(ModCtrl, "Z", CmdUndo)
	s.Add(ModCtrl, "Y", CmdRedo)
	s.Add(ModCtrl|ModShift, "Z", CmdRedo)
	return s
}

// Add binds a modifier+key combination to a command.
func (s Shortcuts) Add(mods Modifiers, key Key, cmd CommandCode) {
	s.m[shortcut{mods: mods, key: key}] = cmd
}

// Get resolves a key press against the table. An exact modifier match
// is preferred; failing that, the lookup is repeated with the shift
// modifier masked out, since commands carry the shift state separately.
func (s Shortcuts) Get(mods Modifiers, key Key) (CommandCode, bool) {
	if c, ok := s.m[shortcut{mods: mods, key: key}]; ok {
		return c, true
	}
	if mods.Contain(ModShift) {
		if c, ok := s.m[shortcut{mods: mods &^ ModShift, key: key}]; ok {
			return c, true
		}
	}
	return 0, false
}
