// SPDX-License-Identifier: Unlicense OR MIT

package event

import "sync/atomic"

// UpdateHandle is a named notification channel. Widgets register
// interest via [Manager.UpdateOnHandle]; firing the handle delivers one
// [HandleUpdate] event to each registered widget and clears the
// registrations.
//
// Handles are allocated process-wide so shared data objects can notify
// views in every window.
type UpdateHandle uint64

var updateHandleCounter atomic.Uint64

// NewUpdateHandle allocates a fresh update handle.
func NewUpdateHandle() UpdateHandle {
	return UpdateHandle(updateHandleCounter.Add(1))
}
