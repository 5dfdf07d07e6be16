//go:build !windows

package main

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// AttachParentConsole reports whether stderr is already a terminal; on these
// platforms a process inherits its parent's terminal directly.
func (h *nativeHost) AttachParentConsole() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func (h *nativeHost) IsDebuggerPresent() bool { return false }

func (h *nativeHost) CreateConsole() error {
	return errors.New("console allocation is not supported on this platform")
}
