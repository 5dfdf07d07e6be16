//go:build !windows

package main

import "errors"

var errNoNativeWindow = errors.New("native windows are only available on Windows")

func (h *nativeHost) CreateAppWindow(className, title string, origin Point, size Size, proc windowProc) (uintptr, error) {
	return 0, errNoNativeWindow
}

func (h *nativeHost) DestroyWindow(hwnd uintptr)                        {}
func (h *nativeHost) ClientSize(hwnd uintptr) Size                      { return Size{} }
func (h *nativeHost) ApplySuggestedBounds(hwnd uintptr, lParam uintptr) {}
func (h *nativeHost) RefreshTheme(hwnd uintptr)                         {}
