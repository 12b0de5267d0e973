// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard wraps system clipboard access for window shells.
//
// Failures are silent: a read on an unsupported platform returns the
// empty string and a write is a no-op.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Get reads the system clipboard contents.
func Get() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return s
}

// Set writes content to the system clipboard.
func Set(content string) {
	_ = clipboard.WriteAll(content)
}
