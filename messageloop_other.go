//go:build !windows

package main

// Without a native window there is nothing to pump; the first call reports
// WM_QUIT.
func (h *nativeHost) GetMessage(m *message) (bool, error) {
	*m = message{Message: wmQuit}
	return false, nil
}

func (h *nativeHost) TranslateMessage(m *message) {}
func (h *nativeHost) DispatchMessage(m *message)  {}
func (h *nativeHost) PostQuitMessage(code int32)  {}
