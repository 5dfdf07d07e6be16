package main

import (
	"errors"
	"fmt"
)

// Window messages the app window reacts to.
const (
	wmDestroy                     = 0x0002
	wmMove                        = 0x0003
	wmSize                        = 0x0005
	wmActivate                    = 0x0006
	wmClose                       = 0x0010
	wmQuit                        = 0x0012
	wmNCDestroy                   = 0x0082
	wmDpiChanged                  = 0x02E0
	wmDwmColorizationColorChanged = 0x0320
)

const defaultDPI = 96

var errWindowCreate = errors.New("create native window")

// Point is a window origin in logical units.
type Point struct {
	X, Y int
}

// Size is a window extent in logical units.
type Size struct {
	Width, Height int
}

// scaleToDPI converts logical geometry to physical pixels for a monitor.
func scaleToDPI(origin Point, size Size, dpi uint32) (Point, Size) {
	if dpi == 0 {
		dpi = defaultDPI
	}
	scale := func(v int) int {
		return int(float64(v) * float64(dpi) / defaultDPI)
	}
	return Point{X: scale(origin.X), Y: scale(origin.Y)},
		Size{Width: scale(size.Width), Height: scale(size.Height)}
}

// windowProc handles a message for one window. handled=false falls through
// to the default window procedure.
type windowProc func(hwnd uintptr, msg uint32, wParam, lParam uintptr) (result uintptr, handled bool)

// windowHost is the slice of the OS the application window needs.
type windowHost interface {
	// CreateAppWindow registers className on first use and creates a hidden
	// top-level window. Geometry is logical and gets scaled for the target
	// monitor.
	CreateAppWindow(className, title string, origin Point, size Size, proc windowProc) (uintptr, error)
	DestroyWindow(hwnd uintptr)
	ClientSize(hwnd uintptr) Size
	ShowWindow(hwnd uintptr, cmd int32)
	PostQuitMessage(code int32)
	// ApplySuggestedBounds moves the window to the rectangle WM_DPICHANGED
	// passes in lParam.
	ApplySuggestedBounds(hwnd uintptr, lParam uintptr)
	// RefreshTheme matches the title bar to the system light/dark setting.
	RefreshTheme(hwnd uintptr)
}

// AppWindow owns the top-level window and the engine surface inside it.
type AppWindow struct {
	host        windowHost
	engine      Engine
	project     Project
	hwnd        uintptr
	surface     Surface
	quitOnClose bool
}

// NewAppWindow prepares a window for project. Nothing is created until Create.
func NewAppWindow(host windowHost, engine Engine, project Project) *AppWindow {
	return &AppWindow{host: host, engine: engine, project: project}
}

// Create hands the project to the engine, creates the native window and
// attaches the engine surface to it. On error nothing is left behind.
func (w *AppWindow) Create(title string, origin Point, size Size) error {
	if err := w.engine.LoadAssetBundle(w.project.AssetsPath); err != nil {
		return fmt.Errorf("load asset bundle: %w", err)
	}
	w.engine.SetEntrypointArguments(w.project.EntrypointArgs)

	hwnd, err := w.host.CreateAppWindow(windowClassName, title, origin, size, w.handleMessage)
	if err != nil {
		return fmt.Errorf("%w: %v", errWindowCreate, err)
	}
	w.hwnd = hwnd
	w.host.RefreshTheme(hwnd)

	surface, err := w.engine.AttachSurface(hwnd, w.host.ClientSize(hwnd))
	if err != nil {
		w.Destroy()
		return fmt.Errorf("attach engine surface: %w", err)
	}
	w.surface = surface

	w.host.ShowWindow(hwnd, swShowNormal)
	return nil
}

// SetQuitOnClose makes destroying the window end the message loop.
func (w *AppWindow) SetQuitOnClose(quit bool) {
	w.quitOnClose = quit
}

// Handle returns the native window handle, 0 once destroyed.
func (w *AppWindow) Handle() uintptr {
	return w.hwnd
}

// Destroy tears the window down if it is still alive. Safe to call twice.
func (w *AppWindow) Destroy() {
	if w.hwnd != 0 {
		// WM_DESTROY arrives synchronously and releases the surface.
		w.host.DestroyWindow(w.hwnd)
	}
	w.releaseSurface()
	w.hwnd = 0
}

func (w *AppWindow) releaseSurface() {
	if w.surface != nil {
		w.surface.Close()
		w.surface = nil
	}
}

func (w *AppWindow) handleMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	// The engine gets first refusal.
	if w.surface != nil {
		if ret, handled := w.surface.HandleMessage(hwnd, msg, wParam, lParam); handled {
			return ret, true
		}
	}

	switch msg {
	case wmDestroy:
		w.hwnd = 0
		w.releaseSurface()
		if w.quitOnClose {
			w.host.PostQuitMessage(0)
		}
		return 0, true

	case wmSize:
		if w.surface != nil {
			w.surface.Resize(Size{Width: int(loWord(lParam)), Height: int(hiWord(lParam))})
		}
		return 0, true

	case wmActivate:
		if w.surface != nil {
			w.surface.Focus()
		}
		return 0, true

	case wmDpiChanged:
		w.host.ApplySuggestedBounds(hwnd, lParam)
		return 0, true

	case wmDwmColorizationColorChanged:
		w.host.RefreshTheme(hwnd)
		return 0, true
	}
	return 0, false
}

func loWord(v uintptr) uint16 { return uint16(v & 0xffff) }
func hiWord(v uintptr) uint16 { return uint16((v >> 16) & 0xffff) }
