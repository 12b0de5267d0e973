// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event implements per-window event management: routing of
semantic input events to widgets and ownership of all transient
interaction state.

The ManagerState type is the persistent per-window record: keyboard
focus (selection, navigation and character focus), mouse and touch
grabs, pan gestures, the popup stack, accelerator-key layers, timer and
update-handle registries and the deferred-notification queue. It is
created once per window and mutated only through a Manager.

A Manager is a short-lived dispatch handle wrapping a ManagerState and
the window's ShellWindow collaborator. The shell constructs one per
translated platform event, calls exactly one of the Handle entry
points, and drains it with Finish, which flushes pending pan gestures,
delivers deferred focus-loss notifications, and returns the accumulated
window Action.

Widgets never mutate ManagerState directly; during event handling they
use the Manager's request methods (grabs, focus, popups, timers,
clipboard). Lookups against stale identifiers are silent no-ops: this
boundary propagates no errors.
*/
package event
