//go:build windows

package gui

import (
	"image"
	"log"
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/lxn/win"

	"screen-mirror/hitregion"
)

// Hit-test state. Everything here is touched only on the UI thread: the
// window procedure, WM_SIZE handling and the resize hook all run on the
// thread that owns the message pump, so no lock is needed (and taking the
// capture lock here is forbidden anyway).
var (
	hitSet      hitregion.RegionSet
	hitValid    bool
	hitMargin   int
	prevWndProc uintptr
)

var (
	moduser32          = syscall.NewLazyDLL("user32.dll")
	procScreenToClient = moduser32.NewProc("ScreenToClient")
)

// installHitTest strips the native title bar from the viewer's Win32 window,
// pins it topmost, and subclasses its window procedure so WM_NCHITTEST is
// answered from the resize-region geometry.
func installHitTest(w fyne.Window, margin int) {
	hitMargin = margin
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		log.Printf("Window driver exposes no native handle, hit-testing disabled")
		return
	}
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			return
		}
		hwnd := win.HWND(wc.HWND)

		style := win.GetWindowLong(hwnd, win.GWL_STYLE)
		win.SetWindowLong(hwnd, win.GWL_STYLE, style&^win.WS_CAPTION)
		win.SetWindowPos(hwnd, win.HWND_TOPMOST, 0, 0, 0, 0,
			win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_FRAMECHANGED)

		prevWndProc = win.SetWindowLongPtr(hwnd, win.GWLP_WNDPROC,
			syscall.NewCallback(hitTestWndProc))
		log.Printf("Borderless hit-testing installed on hwnd=%v", hwnd)
	})
}

// resizeHitRegions invalidates the cached geometry; the next WM_NCHITTEST
// recomputes from the real pixel client rect.
func resizeHitRegions(w, h, margin int) {
	hitMargin = margin
	hitValid = false
}

func hitTestWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_SIZE:
		// Recompute before any further hit-test query is served.
		w := int(win.LOWORD(uint32(lParam)))
		h := int(win.HIWORD(uint32(lParam)))
		hitSet = hitregion.Compute(w, h, hitMargin)
		hitValid = true

	case win.WM_NCHITTEST:
		pt := win.POINT{
			X: int32(int16(win.LOWORD(uint32(lParam)))),
			Y: int32(int16(win.HIWORD(uint32(lParam)))),
		}
		screenToClient(hwnd, &pt)
		if !hitValid {
			var rc win.RECT
			win.GetClientRect(hwnd, &rc)
			hitSet = hitregion.Compute(int(rc.Right-rc.Left), int(rc.Bottom-rc.Top), hitMargin)
			hitValid = true
		}
		dir := hitregion.TestHitPoint(image.Pt(int(pt.X), int(pt.Y)), hitSet)
		if code, ok := htCode(dir); ok {
			return code
		}
		// No handle matched: the whole client area drags the window.
		return win.HTCAPTION
	}
	return win.CallWindowProc(prevWndProc, hwnd, msg, wParam, lParam)
}

func htCode(d hitregion.Direction) (uintptr, bool) {
	switch d {
	case hitregion.DirTopLeft:
		return win.HTTOPLEFT, true
	case hitregion.DirTopRight:
		return win.HTTOPRIGHT, true
	case hitregion.DirBottomLeft:
		return win.HTBOTTOMLEFT, true
	case hitregion.DirBottomRight:
		return win.HTBOTTOMRIGHT, true
	case hitregion.DirTop:
		return win.HTTOP, true
	case hitregion.DirLeft:
		return win.HTLEFT, true
	case hitregion.DirRight:
		return win.HTRIGHT, true
	case hitregion.DirBottom:
		return win.HTBOTTOM, true
	}
	return 0, false
}

func screenToClient(hwnd win.HWND, pt *win.POINT) {
	procScreenToClient.Call(uintptr(hwnd), uintptr(unsafe.Pointer(pt)))
}
