//go:build windows

package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/wailsapp/go-webview2/pkg/edge"
	"github.com/wailsapp/go-webview2/webviewloader"
)

// assetHost is the virtual origin the bundle is served from.
const assetHost = "app.cyrene-music.local"

// controllerVtblClose is the slot of ICoreWebView2Controller::Close: three
// IUnknown entries, then Close after NotifyParentWindowPositionChanged.
const controllerVtblClose = 24

// webviewEngine renders the bundle in a WebView2 view hosted in the runner's
// window.
type webviewEngine struct {
	assetBundle
}

func newEngine() Engine {
	return &webviewEngine{}
}

func (e *webviewEngine) AttachSurface(parent uintptr, size Size) (Surface, error) {
	chromium := edge.NewChromium()
	chromium.DataPath = DataPath("webview")
	chromium.BrowserPath = localWebView2Runtime()
	// The library exits the process after calling this. Only Embed can still
	// reach it; everything afterwards talks to the controller directly.
	chromium.SetErrorCallback(func(err error) {
		Log.Error("WebView2 fatal error", "error", err)
	})

	version, err := requireRuntime(webviewloader.GetAvailableCoreWebView2BrowserVersionString, chromium.BrowserPath)
	if err != nil {
		return nil, err
	}

	// Embed pumps messages until the controller is ready.
	chromium.Embed(parent)
	ctrl := chromium.GetController()
	surface := newControllerSurface(&edgeController{chromium: chromium, ctrl: ctrl})
	surface.Resize(size)

	if err := e.loadEntrypoint(chromium, ctrl); err != nil {
		surface.Close()
		return nil, err
	}
	Log.Info("engine surface attached", "runtime", version, "assets", e.dir, "w", size.Width, "h", size.Height)
	return surface, nil
}

// loadEntrypoint installs the arguments script and navigates to the bundle.
func (e *webviewEngine) loadEntrypoint(chromium *edge.Chromium, ctrl *edge.ICoreWebView2Controller) error {
	view, err := ctrl.GetCoreWebView2()
	if err != nil {
		return fmt.Errorf("get WebView2 view: %w", err)
	}
	defer view.Release()

	script, err := entrypointScript(e.args)
	if err != nil {
		return fmt.Errorf("encode entrypoint arguments: %w", err)
	}
	if err := view.AddScriptToExecuteOnDocumentCreated(script, nil); err != nil {
		return fmt.Errorf("install entrypoint script: %w", err)
	}
	if err := view.Navigate(e.entryURL(chromium)); err != nil {
		return fmt.Errorf("navigate to bundle: %w", err)
	}
	return nil
}

// entryURL serves the bundle from a virtual https origin when the runtime
// supports it, and from a file URL otherwise.
func (e *webviewEngine) entryURL(chromium *edge.Chromium) string {
	if wv3 := chromium.GetICoreWebView2_3(); wv3 != nil {
		err := wv3.SetVirtualHostNameToFolderMapping(assetHost, e.dir, edge.COREWEBVIEW2_HOST_RESOURCE_ACCESS_KIND_ALLOW)
		if err == nil {
			return "https://" + assetHost + "/index.html"
		}
		Log.Info("virtual host mapping unavailable, using file URL", "error", err)
	}
	return fileURL(filepath.Join(e.dir, "index.html"))
}

func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: "/" + filepath.ToSlash(path)}
	return u.String()
}

// edgeController adapts the WebView2 controller to viewController using the
// calls that return errors instead of the Chromium wrappers that exit.
type edgeController struct {
	chromium *edge.Chromium
	ctrl     *edge.ICoreWebView2Controller
}

func (c *edgeController) PutBounds(size Size) error {
	return c.ctrl.PutBounds(edge.Rect{Right: int32(size.Width), Bottom: int32(size.Height)})
}

func (c *edgeController) MoveFocus() error {
	return c.ctrl.MoveFocus(edge.COREWEBVIEW2_MOVE_FOCUS_REASON_PROGRAMMATIC)
}

func (c *edgeController) NotifyParentWindowPositionChanged() error {
	return c.ctrl.NotifyParentWindowPositionChanged()
}

func (c *edgeController) Hide() error {
	return c.ctrl.PutIsVisible(false)
}

// Close releases the browser process side of the view. edge does not export
// Close, so it is called through the COM vtable.
func (c *edgeController) Close() error {
	c.chromium.ShuttingDown()
	vtbl := *(**[controllerVtblClose + 1]uintptr)(unsafe.Pointer(c.ctrl))
	hr, _, _ := edge.ComProc(vtbl[controllerVtblClose]).Call(uintptr(unsafe.Pointer(c.ctrl)))
	if int32(hr) < 0 {
		return fmt.Errorf("ICoreWebView2Controller.Close: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}

// localWebView2Runtime returns a fixed-version runtime shipped next to the
// exe, if any.
func localWebView2Runtime() string {
	exePath, err := os.Executable()
	if err != nil {
		return ""
	}
	localDir := filepath.Join(filepath.Dir(exePath), "WebView2Runtime")
	if info, err := os.Stat(filepath.Join(localDir, "msedgewebview2.exe")); err == nil && !info.IsDir() {
		return localDir
	}
	return ""
}
