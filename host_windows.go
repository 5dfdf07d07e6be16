//go:build windows

package main

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32dll = windows.NewLazySystemDLL("kernel32.dll")
	user32dll   = windows.NewLazySystemDLL("user32.dll")

	pFindWindowW         = user32dll.NewProc("FindWindowW")
	pIsIconic            = user32dll.NewProc("IsIconic")
	pShowWindow          = user32dll.NewProc("ShowWindow")
	pSetForegroundWindow = user32dll.NewProc("SetForegroundWindow")
)

// nativeHost talks to Win32. Its methods live next to the component that
// uses them (singleinstance_windows.go, console_windows.go, ...).
type nativeHost struct {
	classRegistered bool
	instance        uintptr
}

func newNativeHost() *nativeHost {
	return &nativeHost{}
}
