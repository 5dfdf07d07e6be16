package main

import (
	"fmt"

	"github.com/gofrs/flock"
)

// ShowWindow commands
const (
	swHide       = 0
	swShowNormal = 1
	swShow       = 5
	swRestore    = 9
)

// instanceHost is the slice of the OS the single-instance guard needs.
type instanceHost interface {
	// CreateInstanceMutex creates or opens the named mutex. existed is true
	// when another process already created it.
	CreateInstanceMutex(name string) (lock *instanceLock, existed bool, err error)
	FindTopLevelWindow(className string) (hwnd uintptr, ok bool)
	IsWindowVisible(hwnd uintptr) bool
	IsIconic(hwnd uintptr) bool
	ShowWindow(hwnd uintptr, cmd int32)
	SetForegroundWindow(hwnd uintptr) bool
}

// instanceLock is the named mutex held by the first instance. It is never
// released: the OS drops it when the process exits.
type instanceLock struct {
	name   string
	handle uintptr      // Windows mutex
	file   *flock.Flock // lock file elsewhere
}

// guardResult says how the launch should proceed after the guard check.
type guardResult struct {
	Duplicate bool
	Lock      *instanceLock // set for the first instance only
	Activated uintptr       // existing window brought to front, 0 if none was found
}

// ensureSingleInstance acquires the instance mutex. When another instance
// already owns it, the existing main window is shown, restored and focused,
// and the result is marked Duplicate.
func ensureSingleInstance(h instanceHost, mutexName, className string) (guardResult, error) {
	lock, existed, err := h.CreateInstanceMutex(mutexName)
	if err != nil {
		return guardResult{}, fmt.Errorf("create instance mutex %q: %w", mutexName, err)
	}
	if !existed {
		return guardResult{Lock: lock}, nil
	}

	res := guardResult{Duplicate: true}
	hwnd, ok := h.FindTopLevelWindow(className)
	if !ok {
		// No window to hand focus to; the duplicate still exits.
		Log.Info("another instance holds the mutex but no window was found", "class", className)
		return res, nil
	}

	// Hidden to tray: show first.
	if !h.IsWindowVisible(hwnd) {
		h.ShowWindow(hwnd, swShow)
	}
	if h.IsIconic(hwnd) {
		h.ShowWindow(hwnd, swRestore)
	}
	h.SetForegroundWindow(hwnd)
	res.Activated = hwnd
	return res, nil
}
