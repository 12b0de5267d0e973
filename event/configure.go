// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"golang.org/x/exp/slices"

	"github.com/dhardy/kas"
)

// ConfigureManager assigns widget identifiers during a configuration
// pass. Identifiers are assigned in pre-order: a parent's identifier
// precedes those of its descendants, and each subtree occupies the
// contiguous range [id, id+span).
type ConfigureManager struct {
	next  kas.WidgetID
	remap map[kas.WidgetID]kas.WidgetID
	mgr   *Manager
}

// Manager returns the dispatch handle for use from Configured hooks.
func (cm *ConfigureManager) Manager() *Manager {
	return cm.mgr
}

// ConfigureTree assigns identifiers throughout w's subtree and runs
// Configured hooks bottom-up.
func (cm *ConfigureManager) ConfigureTree(w Widget) {
	cm.configure(w, false)
}

func (cm *ConfigureManager) configure(w Widget, isRoot bool) {
	core := w.Core()
	old := core.ID
	id := cm.next
	cm.next++
	core.ID = id
	if old != 0 {
		cm.remap[old] = id
	}

	s := cm.mgr.state
	owner, isOwner := w.(AccelOwner)
	pushed := isRoot || isOwner
	if pushed {
		layer := accelLayer{keys: make(map[Key]kas.WidgetID)}
		if isOwner {
			layer.bypass = owner.AccelBypass()
		}
		s.accelStack = append(s.accelStack, layer)
	}

	for i := 0; i < w.NumChildren(); i++ {
		if c := w.Child(i); c != nil {
			cm.configure(c, false)
		}
	}
	core.Span = uint32(cm.next - id)

	if c, ok := w.(Configurer); ok {
		c.Configured(cm.mgr)
	}

	if pushed {
		n := len(s.accelStack)
		s.accelLayers[id] = s.accelStack[n-1]
		s.accelStack = s.accelStack[:n-1]
	}
}

// Configure runs a full configuration pass over the widget tree:
// identifiers are reassigned in pre-order, accelerator layers are
// rebuilt, and all stored identifiers are remapped to their new values.
// State referring to widgets which no longer exist is dropped.
func (s *ManagerState) Configure(shell ShellWindow, w Widget) kas.Action {
	mgr := s.Manage(shell)
	s.accelStack = s.accelStack[:0]
	s.accelLayers = make(map[kas.WidgetID]accelLayer)
	s.navFallback = 0

	cm := ConfigureManager{
		next:  1,
		remap: make(map[kas.WidgetID]kas.WidgetID),
		mgr:   mgr,
	}
	cm.configure(w, true)
	s.accelRoot = w.Core().ID
	s.applyRemap(cm.remap, shell)

	return mgr.Finish(w) | kas.Redraw
}

// applyRemap rewrites every stored identifier via remap, discarding
// state whose subject was removed from the tree.
func (s *ManagerState) applyRemap(remap map[kas.WidgetID]kas.WidgetID, shell ShellWindow) {
	lookup := func(id kas.WidgetID) kas.WidgetID {
		return remap[id]
	}

	if s.selFocus != 0 {
		if nid := lookup(s.selFocus); nid != 0 {
			s.selFocus = nid
		} else {
			s.selFocus = 0
			s.charFocus = false
		}
	}
	s.navFocus = lookup(s.navFocus)
	s.hover = lookup(s.hover)

	for sc, id := range s.keyDepress {
		if nid := lookup(id); nid != 0 {
			s.keyDepress[sc] = nid
		} else {
			delete(s.keyDepress, sc)
		}
	}

	if g := s.mouseGrab; g != nil {
		if nid := lookup(g.startID); nid != 0 {
			g.startID = nid
			g.depress = lookup(g.depress)
		} else {
			pan := g.pan
			s.mouseGrab = nil
			s.removePanGrab(pan)
		}
	}
	for tid, g := range s.touchGrab {
		if nid := lookup(g.startID); nid != 0 {
			g.startID = nid
			g.depress = lookup(g.depress)
			g.curID = lookup(g.curID)
		} else {
			pan := g.pan
			delete(s.touchGrab, tid)
			s.removePanGrab(pan)
		}
	}
	for i := len(s.panGrab) - 1; i >= 0; i-- {
		if nid := lookup(s.panGrab[i].id); nid != 0 {
			s.panGrab[i].id = nid
		} else {
			s.removePan(i)
		}
	}

	for i := len(s.popups) - 1; i >= 0; i-- {
		e := &s.popups[i]
		id := lookup(e.popup.ID)
		parent := lookup(e.popup.Parent)
		if id == 0 || parent == 0 {
			shell.CloseWindow(e.window)
			s.popups = slices.Delete(s.popups, i, i+1)
			continue
		}
		e.popup.ID = id
		e.popup.Parent = parent
	}

	s.timeUpdates = slices.DeleteFunc(s.timeUpdates, func(e timerEntry) bool {
		return lookup(e.id) == 0
	})
	for i := range s.timeUpdates {
		s.timeUpdates[i].id = lookup(s.timeUpdates[i].id)
	}

	for h, set := range s.handleUpdates {
		next := make(map[kas.WidgetID]struct{}, len(set))
		for id := range set {
			if nid := lookup(id); nid != 0 {
				next[nid] = struct{}{}
			}
		}
		if len(next) == 0 {
			delete(s.handleUpdates, h)
		} else {
			s.handleUpdates[h] = next
		}
	}

	for i := len(s.pending) - 1; i >= 0; i-- {
		if nid := lookup(s.pending[i].id); nid != 0 {
			s.pending[i].id = nid
		} else {
			s.pending = slices.Delete(s.pending, i, i+1)
		}
	}
}
