//go:build windows && (amd64 || 386)

package win32

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/mj1618/magnify-cli/internal/model"
	"github.com/mj1618/magnify-cli/internal/platform"
	"golang.org/x/sys/windows"
)

// WindowLister implements platform.WindowLister with user32.
type WindowLister struct{}

func NewWindowLister() *WindowLister {
	return &WindowLister{}
}

// ListWindows enumerates visible, titled top-level windows. The console
// hosting this process is always left out.
func (l *WindowLister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	exclude := make(map[uintptr]bool, len(opts.Exclude)+1)
	if console, _, _ := procGetConsoleWindow.Call(); console != 0 {
		exclude[console] = true
	}
	for _, id := range opts.Exclude {
		exclude[uintptr(id)] = true
	}
	needle := strings.ToLower(opts.Title)

	windowsList := []model.Window{}
	cb := windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if exclude[hwnd] || !isWindowVisible(hwnd) {
			return 1
		}
		title := windowText(hwnd)
		if title == "" {
			return 1
		}
		if needle != "" && !strings.Contains(strings.ToLower(title), needle) {
			return 1
		}

		w := model.Window{ID: int(hwnd), PID: windowPID(hwnd), Title: title}
		if r, err := clientRect(hwnd); err == nil {
			w.Bounds = r.Bounds()
		}
		windowsList = append(windowsList, w)
		return 1 // continue enumeration
	})

	if r, _, err := procEnumWindows.Call(cb, 0); r == 0 {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	return windowsList, nil
}

func (l *WindowLister) IsWindow(id int) bool {
	r, _, _ := procIsWindow.Call(uintptr(id))
	return r != 0
}

func (l *WindowLister) ClientRect(id int) (platform.Rect, error) {
	if !l.IsWindow(id) {
		return platform.Rect{}, platform.ErrWindowGone
	}
	return clientRect(uintptr(id))
}

// clientRect maps the client area's corners into screen coordinates.
func clientRect(hwnd uintptr) (platform.Rect, error) {
	var r rect
	if ret, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
		return platform.Rect{}, fmt.Errorf("GetClientRect: %w", err)
	}

	tl := point{X: r.Left, Y: r.Top}
	br := point{X: r.Right, Y: r.Bottom}
	if ret, _, err := procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&tl))); ret == 0 {
		return platform.Rect{}, fmt.Errorf("ClientToScreen: %w", err)
	}
	if ret, _, err := procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&br))); ret == 0 {
		return platform.Rect{}, fmt.Errorf("ClientToScreen: %w", err)
	}

	return platform.Rect{
		Left:   int(tl.X),
		Top:    int(tl.Y),
		Right:  int(br.X),
		Bottom: int(br.Y),
	}, nil
}

func isWindowVisible(hwnd uintptr) bool {
	r, _, _ := procIsWindowVisible.Call(hwnd)
	return r != 0
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

func windowPID(hwnd uintptr) int {
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return int(pid)
}
