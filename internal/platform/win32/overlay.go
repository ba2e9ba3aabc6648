//go:build windows && (amd64 || 386)

package win32

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/mj1618/magnify-cli/internal/platform"
	"golang.org/x/sys/windows"
)

const (
	overlayClassName = "MagnifyOverlay"
	overlayTitle     = "Magnifier"
	tickTimerID      = 1
)

// Only one overlay exists per process; the window procedure routes
// messages to it.
var (
	current         *Overlay
	wndProcCallback = windows.NewCallback(wndProc)
)

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	if o := current; o != nil && o.hwnd == hwnd {
		if handled := o.handle(uint32(message), wParam); handled {
			return 0
		}
	}
	r, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
	return r
}

// Overlay implements platform.Overlay as a topmost, layered, click-through
// popup over the primary screen.
type Overlay struct {
	hwnd     uintptr
	instance uintptr
	class    *uint16
	hotkeys  map[int]platform.EventKind
	timerOn  bool
	handler  platform.EventHandler
}

func NewOverlay() *Overlay {
	return &Overlay{hotkeys: make(map[int]platform.EventKind)}
}

func (o *Overlay) ID() int { return int(o.hwnd) }

// Create registers the window class and shows a click-through topmost
// window over bounds. An opaque overlay gets full layered alpha; otherwise
// the layered window is left without attributes and stays invisible.
func (o *Overlay) Create(bounds platform.Rect, opaque bool) error {
	if o.hwnd != 0 {
		return errors.New("overlay already created")
	}

	instance, _, _ := procGetModuleHandleW.Call(0)
	class, err := windows.UTF16PtrFromString(overlayClassName)
	if err != nil {
		return err
	}
	title, err := windows.UTF16PtrFromString(overlayTitle)
	if err != nil {
		return err
	}

	wc := wndClassEx{
		WndProc:   wndProcCallback,
		Instance:  instance,
		ClassName: class,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if r, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return fmt.Errorf("window class registration failed: RegisterClassExW: %w", err)
	}

	hwnd, _, err := procCreateWindowExW.Call(
		wsExTopmost|wsExLayered|wsExTransparent,
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(title)),
		wsPopup,
		uintptr(int32(bounds.Left)),
		uintptr(int32(bounds.Top)),
		uintptr(int32(bounds.Width())),
		uintptr(int32(bounds.Height())),
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		procUnregisterClassW.Call(uintptr(unsafe.Pointer(class)), instance)
		return fmt.Errorf("window creation failed: CreateWindowExW: %w", err)
	}

	o.hwnd = hwnd
	o.instance = instance
	o.class = class
	current = o

	if opaque {
		procSetLayeredWindowAttributes.Call(hwnd, 0, 255, lwaAlpha)
	}
	procShowWindow.Call(hwnd, swShow)
	return nil
}

func (o *Overlay) RegisterHotkey(hk platform.Hotkey) error {
	if o.hwnd == 0 {
		return errors.New("overlay not created")
	}
	r, _, err := procRegisterHotKey.Call(o.hwnd, uintptr(hk.ID), uintptr(hk.Modifiers), uintptr(hk.Key))
	if r == 0 {
		return fmt.Errorf("register hotkey %s: %w", hk, err)
	}
	o.hotkeys[hk.ID] = hk.Action
	return nil
}

func (o *Overlay) SetTimer(interval time.Duration) error {
	if o.hwnd == 0 {
		return errors.New("overlay not created")
	}
	r, _, err := procSetTimer.Call(o.hwnd, tickTimerID, uintptr(interval.Milliseconds()), 0)
	if r == 0 {
		return fmt.Errorf("SetTimer(%s): %w", interval, err)
	}
	o.timerOn = true
	return nil
}

func (o *Overlay) Redraw() {
	if o.hwnd == 0 {
		return
	}
	procInvalidateRect.Call(o.hwnd, 0, 1)
	procUpdateWindow.Call(o.hwnd)
}

// Run must be called on the thread that called Create.
func (o *Overlay) Run(ctx context.Context, h platform.EventHandler) error {
	if o.hwnd == 0 {
		return errors.New("overlay not created")
	}
	o.handler = h
	defer func() { o.handler = nil }()

	stop := make(chan struct{})
	defer close(stop)
	go func(hwnd uintptr) {
		select {
		case <-ctx.Done():
			procPostMessageW.Call(hwnd, wmClose, 0, 0)
		case <-stop:
		}
	}(o.hwnd)

	var m msg
	for {
		r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return fmt.Errorf("GetMessageW: %w", err)
		case 0:
			return nil // WM_QUIT
		}

		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (o *Overlay) handle(message uint32, wParam uintptr) bool {
	switch message {
	case wmHotkey:
		if action, ok := o.hotkeys[int(wParam)]; ok && o.handler != nil {
			o.handler.HandleEvent(platform.Event{Kind: action})
		}
		return true
	case wmTimer:
		if wParam == tickTimerID && o.handler != nil {
			o.handler.HandleEvent(platform.Event{Kind: platform.EventTick})
		}
		return true
	case wmClose:
		o.Close()
		return true
	case wmDestroy:
		procPostQuitMessage.Call(0)
		return true
	}
	return false
}

// Close kills the timer, unregisters hotkeys, then destroys the window and
// its class. The window must be destroyed on the thread that created it.
func (o *Overlay) Close() error {
	if o.hwnd == 0 {
		return nil
	}
	hwnd := o.hwnd

	if o.timerOn {
		procKillTimer.Call(hwnd, tickTimerID)
		o.timerOn = false
	}
	for id := range o.hotkeys {
		procUnregisterHotKey.Call(hwnd, uintptr(id))
		delete(o.hotkeys, id)
	}

	// WM_DESTROY is sent synchronously and still needs routing here.
	r, _, err := procDestroyWindow.Call(hwnd)
	o.hwnd = 0
	current = nil
	procUnregisterClassW.Call(uintptr(unsafe.Pointer(o.class)), o.instance)

	if r == 0 {
		return fmt.Errorf("DestroyWindow: %w", err)
	}
	return nil
}
