//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var shell32dll = windows.NewLazySystemDLL("shell32.dll")

var pSetCurrentProcessExplicitAppUserModelID = shell32dll.NewProc("SetCurrentProcessExplicitAppUserModelID")

// SetAppUserModelID gives the process a stable shell identity so taskbar
// grouping and the system media transport controls recognise the player.
func (h *nativeHost) SetAppUserModelID(id string) error {
	idPtr, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return err
	}
	hr, _, _ := pSetCurrentProcessExplicitAppUserModelID.Call(uintptr(unsafe.Pointer(idPtr)))
	if int32(hr) < 0 {
		return fmt.Errorf("SetCurrentProcessExplicitAppUserModelID: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
