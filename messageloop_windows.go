//go:build windows

package main

import (
	"unsafe"
)

var (
	pGetMessageW      = user32dll.NewProc("GetMessageW")
	pTranslateMessage = user32dll.NewProc("TranslateMessage")
	pDispatchMessageW = user32dll.NewProc("DispatchMessageW")
	pPostQuitMessage  = user32dll.NewProc("PostQuitMessage")
)

func (h *nativeHost) GetMessage(m *message) (bool, error) {
	return getMessage(m, 0)
}

// getMessage wraps GetMessageW, whose BOOL result is -1 on failure (for
// example an invalid hwnd filter), 0 on WM_QUIT and nonzero otherwise.
func getMessage(m *message, hwnd uintptr) (bool, error) {
	ret, _, err := pGetMessageW.Call(uintptr(unsafe.Pointer(m)), hwnd, 0, 0)
	switch int32(ret) {
	case -1:
		return false, err
	case 0:
		return false, nil
	}
	return true, nil
}

func (h *nativeHost) TranslateMessage(m *message) {
	pTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
}

func (h *nativeHost) DispatchMessage(m *message) {
	pDispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
}

func (h *nativeHost) PostQuitMessage(code int32) {
	pPostQuitMessage.Call(uintptr(code))
}
