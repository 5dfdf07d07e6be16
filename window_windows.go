//go:build windows

package main

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	shcoredll = windows.NewLazySystemDLL("shcore.dll")
	dwmapidll = windows.NewLazySystemDLL("dwmapi.dll")

	pRegisterClassExW              = user32dll.NewProc("RegisterClassExW")
	pCreateWindowExW               = user32dll.NewProc("CreateWindowExW")
	pDestroyWindow                 = user32dll.NewProc("DestroyWindow")
	pDefWindowProcW                = user32dll.NewProc("DefWindowProcW")
	pGetClientRect                 = user32dll.NewProc("GetClientRect")
	pSetWindowPos                  = user32dll.NewProc("SetWindowPos")
	pLoadCursorW                   = user32dll.NewProc("LoadCursorW")
	pLoadIconW                     = user32dll.NewProc("LoadIconW")
	pMonitorFromRect               = user32dll.NewProc("MonitorFromRect")
	pSetProcessDpiAwarenessContext = user32dll.NewProc("SetProcessDpiAwarenessContext")
	pGetModuleHandleW              = kernel32dll.NewProc("GetModuleHandleW")
	pGetDpiForMonitor              = shcoredll.NewProc("GetDpiForMonitor")
	pDwmSetWindowAttribute         = dwmapidll.NewProc("DwmSetWindowAttribute")
)

// Win32 constants
const (
	wsOverlappedWindow      = 0x00CF0000
	idcArrow                = 32512
	idiAppIcon              = 101 // resource id used by the installer build
	monitorDefaultToNearest = 0x2
	mdtEffectiveDPI         = 0
	swpNoZOrder             = 0x0004
	swpNoActivate           = 0x0010
	dwmwaUseImmersiveDark   = 20

	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2
	dpiAwarenessPerMonitorV2 = ^uintptr(3) // (HANDLE)-4
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

// Handlers keyed by hwnd. pendingProc catches the messages a window receives
// before CreateWindowExW returns its handle.
var (
	windowProcsMu sync.Mutex
	windowProcs   = map[uintptr]windowProc{}
	pendingProc   windowProc
)

var wndProcCallback = windows.NewCallback(appWndProc)

var dpiAwareOnce sync.Once

func lookupWindowProc(hwnd uintptr) windowProc {
	windowProcsMu.Lock()
	defer windowProcsMu.Unlock()
	if proc, ok := windowProcs[hwnd]; ok {
		return proc
	}
	if pendingProc != nil {
		windowProcs[hwnd] = pendingProc
		proc := pendingProc
		pendingProc = nil
		return proc
	}
	return nil
}

func appWndProc(hwnd, umsg, wParam, lParam uintptr) uintptr {
	if proc := lookupWindowProc(hwnd); proc != nil {
		if ret, handled := proc(hwnd, uint32(umsg), wParam, lParam); handled {
			return ret
		}
	}
	if uint32(umsg) == wmNCDestroy {
		windowProcsMu.Lock()
		delete(windowProcs, hwnd)
		windowProcsMu.Unlock()
	}
	ret, _, _ := pDefWindowProcW.Call(hwnd, umsg, wParam, lParam)
	return ret
}

func (h *nativeHost) registerClass(className *uint16) error {
	if h.classRegistered {
		return nil
	}
	hInst, _, _ := pGetModuleHandleW.Call(0)
	cursor, _, _ := pLoadCursorW.Call(0, idcArrow)
	icon, _, _ := pLoadIconW.Call(hInst, idiAppIcon)

	wc := wndClassEx{
		lpfnWndProc:   wndProcCallback,
		hInstance:     hInst,
		hIcon:         icon,
		hCursor:       cursor,
		lpszClassName: className,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	if atom, _, err := pRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return fmt.Errorf("RegisterClassExW: %w", err)
	}
	h.instance = hInst
	h.classRegistered = true
	return nil
}

func enableDPIAwareness() {
	dpiAwareOnce.Do(func() {
		// Missing before Windows 10 1703; the manifest covers older systems.
		if pSetProcessDpiAwarenessContext.Find() == nil {
			pSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2)
		}
	})
}

// monitorDPI returns the effective DPI of the monitor nearest to origin.
func monitorDPI(origin Point) uint32 {
	if pGetDpiForMonitor.Find() != nil {
		return defaultDPI
	}
	rect := windows.Rect{
		Left: int32(origin.X), Top: int32(origin.Y),
		Right: int32(origin.X) + 1, Bottom: int32(origin.Y) + 1,
	}
	monitor, _, _ := pMonitorFromRect.Call(uintptr(unsafe.Pointer(&rect)), monitorDefaultToNearest)
	if monitor == 0 {
		return defaultDPI
	}
	var dpiX, dpiY uint32
	hr, _, _ := pGetDpiForMonitor.Call(monitor, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
	if int32(hr) < 0 || dpiX == 0 {
		return defaultDPI
	}
	return dpiX
}

func (h *nativeHost) CreateAppWindow(className, title string, origin Point, size Size, proc windowProc) (uintptr, error) {
	enableDPIAwareness()

	classPtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, err
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	if err := h.registerClass(classPtr); err != nil {
		return 0, err
	}

	dpi := monitorDPI(origin)
	pos, ext := scaleToDPI(origin, size, dpi)

	windowProcsMu.Lock()
	pendingProc = proc
	windowProcsMu.Unlock()

	hwnd, _, callErr := pCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsOverlappedWindow,
		uintptr(pos.X), uintptr(pos.Y), uintptr(ext.Width), uintptr(ext.Height),
		0, 0, h.instance, 0,
	)

	windowProcsMu.Lock()
	pendingProc = nil
	windowProcsMu.Unlock()

	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW: %w", callErr)
	}
	Log.Debug("window created", "hwnd", hwnd, "dpi", dpi, "x", pos.X, "y", pos.Y, "w", ext.Width, "h", ext.Height)
	return hwnd, nil
}

func (h *nativeHost) DestroyWindow(hwnd uintptr) {
	pDestroyWindow.Call(hwnd)
}

func (h *nativeHost) ClientSize(hwnd uintptr) Size {
	var rect windows.Rect
	if ret, _, _ := pGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rect))); ret == 0 {
		return Size{}
	}
	return Size{Width: int(rect.Right - rect.Left), Height: int(rect.Bottom - rect.Top)}
}

func (h *nativeHost) ApplySuggestedBounds(hwnd uintptr, lParam uintptr) {
	if lParam == 0 {
		return
	}
	rect := (*windows.Rect)(unsafe.Pointer(lParam))
	pSetWindowPos.Call(hwnd, 0,
		uintptr(rect.Left), uintptr(rect.Top),
		uintptr(rect.Right-rect.Left), uintptr(rect.Bottom-rect.Top),
		swpNoZOrder|swpNoActivate)
}

// RefreshTheme turns on the dark title bar when apps use the dark theme.
func (h *nativeHost) RefreshTheme(hwnd uintptr) {
	dark := uint32(0)
	if k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE); err == nil {
		if light, _, err := k.GetIntegerValue("AppsUseLightTheme"); err == nil && light == 0 {
			dark = 1
		}
		k.Close()
	}
	pDwmSetWindowAttribute.Call(hwnd, dwmwaUseImmersiveDark,
		uintptr(unsafe.Pointer(&dark)), unsafe.Sizeof(dark))
}
