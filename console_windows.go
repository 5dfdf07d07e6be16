//go:build windows

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

const attachParentProcess = ^uint32(0) // (DWORD)-1

var (
	pAttachConsole     = kernel32dll.NewProc("AttachConsole")
	pAllocConsole      = kernel32dll.NewProc("AllocConsole")
	pIsDebuggerPresent = kernel32dll.NewProc("IsDebuggerPresent")
)

func (h *nativeHost) AttachParentConsole() bool {
	ret, _, _ := pAttachConsole.Call(uintptr(attachParentProcess))
	if ret == 0 {
		return false
	}
	return rebindStdio() == nil
}

func (h *nativeHost) IsDebuggerPresent() bool {
	ret, _, _ := pIsDebuggerPresent.Call()
	return ret != 0
}

func (h *nativeHost) CreateConsole() error {
	if ret, _, err := pAllocConsole.Call(); ret == 0 {
		return fmt.Errorf("AllocConsole: %w", err)
	}
	return rebindStdio()
}

// rebindStdio points os.Stdout and os.Stderr at the newly attached console.
// A GUI-subsystem binary starts with no standard handles, so the ones Go
// captured at startup are dead.
func rebindStdio() error {
	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return err
	}
	handle, err := windows.CreateFile(name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return fmt.Errorf("open CONOUT$: %w", err)
	}
	windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, handle)
	windows.SetStdHandle(windows.STD_ERROR_HANDLE, handle)

	conout := os.NewFile(uintptr(handle), "CONOUT$")
	os.Stdout = conout
	os.Stderr = conout
	return nil
}
