package main

import (
	"errors"
	"fmt"
)

var errNoWebView2 = errors.New("WebView2 runtime not available")

// viewController is the part of an embedded browser view the surface drives
// once it is attached. Failures are returned, never fatal.
type viewController interface {
	PutBounds(size Size) error
	MoveFocus() error
	NotifyParentWindowPositionChanged() error
	Hide() error
	Close() error
}

// runtimeVersionFunc reports the browser runtime version for browserPath, ""
// when no runtime is installed there.
type runtimeVersionFunc func(browserPath string) (string, error)

// requireRuntime returns the runtime version, or errNoWebView2 when the view
// has nothing to run on.
func requireRuntime(lookup runtimeVersionFunc, browserPath string) (string, error) {
	version, err := lookup(browserPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errNoWebView2, err)
	}
	if version == "" {
		return "", errNoWebView2
	}
	return version, nil
}

// controllerSurface forwards window lifecycle to a view controller. Errors
// are logged and the window keeps running; only WM_QUIT ends the loop.
type controllerSurface struct {
	ctrl   viewController
	closed bool
}

func newControllerSurface(ctrl viewController) *controllerSurface {
	return &controllerSurface{ctrl: ctrl}
}

func (s *controllerSurface) HandleMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	if msg == wmMove && !s.closed {
		if err := s.ctrl.NotifyParentWindowPositionChanged(); err != nil {
			Log.Debug("notify position changed failed", "error", err)
		}
	}
	return 0, false
}

func (s *controllerSurface) Resize(size Size) {
	if s.closed {
		return
	}
	if err := s.ctrl.PutBounds(size); err != nil {
		Log.Error("resize surface failed", "w", size.Width, "h", size.Height, "error", err)
	}
}

func (s *controllerSurface) Focus() {
	if s.closed {
		return
	}
	if err := s.ctrl.MoveFocus(); err != nil {
		Log.Error("focus surface failed", "error", err)
	}
}

// Close hides the view and closes its controller so no browser COM objects
// outlive the apartment. Safe to call twice.
func (s *controllerSurface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.ctrl.Hide(); err != nil {
		Log.Debug("hide surface failed", "error", err)
	}
	if err := s.ctrl.Close(); err != nil {
		Log.Error("close surface controller failed", "error", err)
	}
}
