package main

import (
	"errors"
	"fmt"
)

var errWouldBlock = errors.New("message queue empty without WM_QUIT")

type createCall struct {
	className string
	title     string
	origin    Point
	size      Size
}

// fakeHost records every OS call the runner makes.
type fakeHost struct {
	calls []string

	// guard
	mutexExisted   bool
	mutexErr       error
	existingWindow uintptr
	windowVisible  bool
	windowIconic   bool
	shown          []int32

	// console
	parentConsole bool
	debugger      bool
	consoleErr    error

	// runtime
	comErr     error
	timerErr   error
	comInits   int
	comUninits int
	timerBegin int
	timerEnd   int

	// window
	createErr    error
	clientSize   Size
	created      []createCall
	procs        map[uintptr]windowProc
	nextHwnd     uintptr
	aliveWindows int
	themed       int

	// pump
	queue      []message
	getErr     error
	quitPosted bool
	getCalls   int
	translated int
	dispatched int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		procs:      map[uintptr]windowProc{},
		nextHwnd:   0x100,
		clientSize: Size{Width: 1264, Height: 681},
	}
}

func (h *fakeHost) record(format string, args ...any) {
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

func (h *fakeHost) CreateInstanceMutex(name string) (*instanceLock, bool, error) {
	h.record("CreateInstanceMutex(%s)", name)
	if h.mutexErr != nil {
		return nil, false, h.mutexErr
	}
	if h.mutexExisted {
		return nil, true, nil
	}
	return &instanceLock{name: name, handle: 0x42}, false, nil
}

func (h *fakeHost) FindTopLevelWindow(className string) (uintptr, bool) {
	h.record("FindTopLevelWindow(%s)", className)
	return h.existingWindow, h.existingWindow != 0
}

func (h *fakeHost) IsWindowVisible(hwnd uintptr) bool { return h.windowVisible }
func (h *fakeHost) IsIconic(hwnd uintptr) bool        { return h.windowIconic }

func (h *fakeHost) ShowWindow(hwnd uintptr, cmd int32) {
	h.record("ShowWindow(%#x,%d)", hwnd, cmd)
	h.shown = append(h.shown, cmd)
	switch cmd {
	case swShow, swShowNormal:
		h.windowVisible = true
	case swRestore:
		h.windowVisible = true
		h.windowIconic = false
	}
}

func (h *fakeHost) SetForegroundWindow(hwnd uintptr) bool {
	h.record("SetForegroundWindow(%#x)", hwnd)
	return true
}

func (h *fakeHost) AttachParentConsole() bool {
	h.record("AttachParentConsole")
	return h.parentConsole
}

func (h *fakeHost) IsDebuggerPresent() bool { return h.debugger }

func (h *fakeHost) CreateConsole() error {
	h.record("CreateConsole")
	return h.consoleErr
}

func (h *fakeHost) InitCOM() error {
	h.record("InitCOM")
	if h.comErr != nil {
		return h.comErr
	}
	h.comInits++
	return nil
}

func (h *fakeHost) UninitCOM() {
	h.record("UninitCOM")
	h.comUninits++
}

func (h *fakeHost) BeginTimerPeriod(ms uint32) error {
	h.record("BeginTimerPeriod(%d)", ms)
	if h.timerErr != nil {
		return h.timerErr
	}
	h.timerBegin++
	return nil
}

func (h *fakeHost) EndTimerPeriod(ms uint32) {
	h.record("EndTimerPeriod(%d)", ms)
	h.timerEnd++
}

func (h *fakeHost) RaisePriority() error {
	h.record("RaisePriority")
	return nil
}

func (h *fakeHost) SetAppUserModelID(id string) error {
	h.record("SetAppUserModelID(%s)", id)
	return nil
}

func (h *fakeHost) CreateAppWindow(className, title string, origin Point, size Size, proc windowProc) (uintptr, error) {
	h.record("CreateAppWindow")
	h.created = append(h.created, createCall{className: className, title: title, origin: origin, size: size})
	if h.createErr != nil {
		return 0, h.createErr
	}
	hwnd := h.nextHwnd
	h.nextHwnd++
	h.procs[hwnd] = proc
	h.aliveWindows++
	return hwnd, nil
}

func (h *fakeHost) DestroyWindow(hwnd uintptr) {
	h.record("DestroyWindow(%#x)", hwnd)
	proc, ok := h.procs[hwnd]
	if !ok {
		return
	}
	proc(hwnd, wmDestroy, 0, 0)
	delete(h.procs, hwnd)
	h.aliveWindows--
}

func (h *fakeHost) ClientSize(hwnd uintptr) Size { return h.clientSize }

func (h *fakeHost) PostQuitMessage(code int32) {
	h.record("PostQuitMessage(%d)", code)
	h.quitPosted = true
}

func (h *fakeHost) ApplySuggestedBounds(hwnd uintptr, lParam uintptr) {
	h.record("ApplySuggestedBounds(%#x)", hwnd)
}

func (h *fakeHost) RefreshTheme(hwnd uintptr) { h.themed++ }

func (h *fakeHost) GetMessage(m *message) (bool, error) {
	h.getCalls++
	if h.getErr != nil {
		return false, h.getErr
	}
	if h.quitPosted {
		*m = message{Message: wmQuit}
		return false, nil
	}
	if len(h.queue) == 0 {
		return false, errWouldBlock
	}
	*m = h.queue[0]
	h.queue = h.queue[1:]
	return true, nil
}

func (h *fakeHost) TranslateMessage(m *message) { h.translated++ }

// DispatchMessage routes to the window procedure, with WM_CLOSE falling back
// to destroying the window the way DefWindowProc does.
func (h *fakeHost) DispatchMessage(m *message) {
	h.dispatched++
	proc, ok := h.procs[m.HWnd]
	if !ok {
		return
	}
	if _, handled := proc(m.HWnd, m.Message, m.WParam, m.LParam); handled {
		return
	}
	if m.Message == wmClose {
		h.DestroyWindow(m.HWnd)
	}
}

// userClosesWindow queues the message a click on the close box produces.
func (h *fakeHost) userClosesWindow(hwnd uintptr) {
	h.queue = append(h.queue, message{HWnd: hwnd, Message: wmClose})
}

type fakeEngine struct {
	loadErr   error
	attachErr error

	loadedPath string
	args       []string
	argsSet    bool
	parent     uintptr
	size       Size
	surface    *fakeSurface
}

func (e *fakeEngine) LoadAssetBundle(path string) error {
	e.loadedPath = path
	return e.loadErr
}

func (e *fakeEngine) SetEntrypointArguments(args []string) {
	e.args = args
	e.argsSet = true
}

func (e *fakeEngine) AttachSurface(parent uintptr, size Size) (Surface, error) {
	if e.attachErr != nil {
		return nil, e.attachErr
	}
	e.parent = parent
	e.size = size
	e.surface = &fakeSurface{}
	return e.surface, nil
}

type fakeSurface struct {
	claim   map[uint32]bool
	seen    []uint32
	resized []Size
	focused int
	closed  int
}

func (s *fakeSurface) HandleMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	s.seen = append(s.seen, msg)
	if s.claim[msg] {
		return 7, true
	}
	return 0, false
}

func (s *fakeSurface) Resize(size Size) { s.resized = append(s.resized, size) }
func (s *fakeSurface) Focus()           { s.focused++ }
func (s *fakeSurface) Close()           { s.closed++ }
