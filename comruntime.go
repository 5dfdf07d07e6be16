package main

import (
	"errors"

	"github.com/go-ole/go-ole"
)

// sFalse is returned when the thread already belongs to an STA. It still
// needs a matching CoUninitialize.
const sFalse = 0x1

// runtimeHost is the slice of the OS the platform runtime initializer needs.
type runtimeHost interface {
	InitCOM() error
	UninitCOM()
	BeginTimerPeriod(ms uint32) error
	EndTimerPeriod(ms uint32)
	RaisePriority() error
	SetAppUserModelID(id string) error
}

// InitCOM joins a single-threaded apartment on the calling thread, which
// plugins and the WebView2 surface require.
func (h *nativeHost) InitCOM() error {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
		return nil
	}
	return err
}

func (h *nativeHost) UninitCOM() {
	ole.CoUninitialize()
}
