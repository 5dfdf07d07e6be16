package main

import "fmt"

const (
	exitSuccess = 0
	exitFailure = 1
)

type point struct {
	X, Y int32
}

// message mirrors the Win32 MSG layout.
type message struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

// messagePump retrieves and dispatches messages for the calling thread.
type messagePump interface {
	// GetMessage blocks for the next message. ok is false once WM_QUIT is
	// retrieved.
	GetMessage(m *message) (ok bool, err error)
	TranslateMessage(m *message)
	DispatchMessage(m *message)
}

// runMessageLoop pumps messages until WM_QUIT. Window procedures run
// synchronously inside DispatchMessage on this thread.
func runMessageLoop(p messagePump) int {
	var m message
	for {
		ok, err := p.GetMessage(&m)
		if err != nil {
			Log.Error("message loop aborted", "error", fmt.Errorf("GetMessage: %w", err))
			return exitFailure
		}
		if !ok {
			Log.Debug("WM_QUIT received", "code", int32(m.WParam))
			return exitSuccess
		}
		p.TranslateMessage(&m)
		p.DispatchMessage(&m)
	}
}
