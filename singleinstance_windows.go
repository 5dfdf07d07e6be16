//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// CreateInstanceMutex creates the named mutex with initial ownership.
func (h *nativeHost) CreateInstanceMutex(name string) (*instanceLock, bool, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, false, err
	}

	handle, err := windows.CreateMutex(nil, true, namePtr)
	if err == windows.ERROR_ALREADY_EXISTS {
		// The duplicate exits right away; its handle goes with the process.
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &instanceLock{name: name, handle: uintptr(handle)}, false, nil
}

func (h *nativeHost) FindTopLevelWindow(className string) (uintptr, bool) {
	class, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, false
	}
	hwnd, _, _ := pFindWindowW.Call(uintptr(unsafe.Pointer(class)), 0)
	return hwnd, hwnd != 0
}

func (h *nativeHost) IsWindowVisible(hwnd uintptr) bool {
	return windows.IsWindowVisible(windows.HWND(hwnd))
}

func (h *nativeHost) IsIconic(hwnd uintptr) bool {
	ret, _, _ := pIsIconic.Call(hwnd)
	return ret != 0
}

func (h *nativeHost) ShowWindow(hwnd uintptr, cmd int32) {
	pShowWindow.Call(hwnd, uintptr(cmd))
}

func (h *nativeHost) SetForegroundWindow(hwnd uintptr) bool {
	ret, _, _ := pSetForegroundWindow.Call(hwnd)
	return ret != 0
}
