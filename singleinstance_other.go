//go:build !windows

package main

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// CreateInstanceMutex emulates the named mutex with an exclusive flock on a
// file in the data directory. The kernel drops the lock when the holder
// exits, so a crashed instance never blocks the next launch.
func (h *nativeHost) CreateInstanceMutex(name string) (*instanceLock, bool, error) {
	file := flock.New(h.lockPath())
	locked, err := file.TryLock()
	if err != nil {
		return nil, false, err
	}
	if !locked {
		return nil, true, nil
	}

	// The pid is informational; the lock is what counts.
	if err := os.WriteFile(file.Path(), []byte(fmt.Sprintf("%d", os.Getpid())), 0600); err != nil {
		Log.Debug("write pid to lock file failed", "path", file.Path(), "error", err)
	}
	return &instanceLock{name: name, file: file}, false, nil
}

func (h *nativeHost) lockPath() string {
	if h.lockFile != "" {
		return h.lockFile
	}
	return DataPath("runner.lock")
}

// No native window to locate on this platform.
func (h *nativeHost) FindTopLevelWindow(className string) (uintptr, bool) { return 0, false }
func (h *nativeHost) IsWindowVisible(hwnd uintptr) bool                 { return false }
func (h *nativeHost) IsIconic(hwnd uintptr) bool                        { return false }
func (h *nativeHost) ShowWindow(hwnd uintptr, cmd int32)                {}
func (h *nativeHost) SetForegroundWindow(hwnd uintptr) bool             { return false }
