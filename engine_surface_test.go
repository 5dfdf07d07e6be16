package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	err    error
	calls  []string
	bounds []Size
}

func (c *fakeController) PutBounds(size Size) error {
	c.calls = append(c.calls, "PutBounds")
	c.bounds = append(c.bounds, size)
	return c.err
}

func (c *fakeController) MoveFocus() error {
	c.calls = append(c.calls, "MoveFocus")
	return c.err
}

func (c *fakeController) NotifyParentWindowPositionChanged() error {
	c.calls = append(c.calls, "NotifyParentWindowPositionChanged")
	return c.err
}

func (c *fakeController) Hide() error {
	c.calls = append(c.calls, "Hide")
	return c.err
}

func (c *fakeController) Close() error {
	c.calls = append(c.calls, "Close")
	return c.err
}

func TestControllerSurface_ForwardsWindowLifecycle(t *testing.T) {
	ctrl := &fakeController{}
	s := newControllerSurface(ctrl)

	_, handled := s.HandleMessage(0x100, wmMove, 0, 0)
	s.Resize(Size{Width: 800, Height: 600})
	s.Focus()

	assert.False(t, handled, "WM_MOVE still reaches the window")
	assert.Equal(t, []string{"NotifyParentWindowPositionChanged", "PutBounds", "MoveFocus"}, ctrl.calls)
	assert.Equal(t, []Size{{Width: 800, Height: 600}}, ctrl.bounds)
}

func TestControllerSurface_ErrorsDoNotEndTheRun(t *testing.T) {
	ctrl := &fakeController{err: errors.New("0x8007139F")}
	s := newControllerSurface(ctrl)

	assert.NotPanics(t, func() {
		s.HandleMessage(0x100, wmMove, 0, 0)
		s.Resize(Size{Width: 1, Height: 1})
		s.Focus()
		s.Focus()
	})
	assert.Len(t, ctrl.calls, 4)
	assert.False(t, s.closed)
}

func TestControllerSurface_CloseReleasesControllerOnce(t *testing.T) {
	ctrl := &fakeController{err: errors.New("already closed")}
	s := newControllerSurface(ctrl)

	s.Close()
	s.Close()
	s.Resize(Size{Width: 1, Height: 1})
	s.Focus()
	s.HandleMessage(0x100, wmMove, 0, 0)

	assert.Equal(t, []string{"Hide", "Close"}, ctrl.calls)
}

func TestControllerSurface_FocusFailureKeepsRunnerAlive(t *testing.T) {
	h := newFakeHost()
	ctrl := &fakeController{err: errors.New("MoveFocus failed")}
	e := &controllerEngine{ctrl: ctrl}
	h.queue = []message{{HWnd: 0x100, Message: wmActivate}}
	h.userClosesWindow(0x100)
	r := NewRunner(h, e, DefaultConfig())

	code := r.Run(nil)

	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, StateTerminated, r.State())
	assert.Contains(t, ctrl.calls, "MoveFocus")
	assert.Equal(t, "Close", ctrl.calls[len(ctrl.calls)-1])
	assert.Equal(t, h.comInits, h.comUninits)
	assert.Equal(t, h.timerBegin, h.timerEnd)
}

func TestRequireRuntime(t *testing.T) {
	version, err := requireRuntime(func(string) (string, error) { return "131.0.2903.70", nil }, "")
	require.NoError(t, err)
	assert.Equal(t, "131.0.2903.70", version)

	_, err = requireRuntime(func(string) (string, error) { return "", nil }, "")
	assert.ErrorIs(t, err, errNoWebView2)

	var gotPath string
	_, err = requireRuntime(func(p string) (string, error) {
		gotPath = p
		return "", errors.New("corrupt client dll")
	}, `C:\app\WebView2Runtime`)
	assert.ErrorIs(t, err, errNoWebView2)
	assert.Contains(t, err.Error(), "corrupt client dll")
	assert.Equal(t, `C:\app\WebView2Runtime`, gotPath)
}

// controllerEngine attaches a controllerSurface over a fake controller.
type controllerEngine struct {
	assetBundle
	ctrl *fakeController
}

func (e *controllerEngine) LoadAssetBundle(path string) error { return nil }

func (e *controllerEngine) AttachSurface(parent uintptr, size Size) (Surface, error) {
	s := newControllerSurface(e.ctrl)
	s.Resize(size)
	return s, nil
}
