//go:build windows

package main

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	winmmdll         = windows.NewLazySystemDLL("winmm.dll")
	pTimeBeginPeriod = winmmdll.NewProc("timeBeginPeriod")
	pTimeEndPeriod   = winmmdll.NewProc("timeEndPeriod")
)

const timerrNoError = 0

// BeginTimerPeriod raises the system timer resolution so frame pacing at high
// refresh rates stays on vsync.
func (h *nativeHost) BeginTimerPeriod(ms uint32) error {
	ret, _, _ := pTimeBeginPeriod.Call(uintptr(ms))
	if ret != timerrNoError {
		return fmt.Errorf("timeBeginPeriod(%d) returned %d", ms, ret)
	}
	return nil
}

func (h *nativeHost) EndTimerPeriod(ms uint32) {
	pTimeEndPeriod.Call(uintptr(ms))
}

// RaisePriority moves the process to HIGH_PRIORITY_CLASS so the render thread
// is scheduled steadily.
func (h *nativeHost) RaisePriority() error {
	proc, err := windows.GetCurrentProcess()
	if err != nil {
		return err
	}
	return windows.SetPriorityClass(proc, windows.HIGH_PRIORITY_CLASS)
}
