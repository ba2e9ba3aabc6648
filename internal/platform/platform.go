package platform

import (
	"context"
	"time"

	"github.com/mj1618/magnify-cli/internal/model"
)

// Magnifier drives the OS fullscreen magnification service.
type Magnifier interface {
	// Initialize must succeed before any other call.
	Initialize() error

	// SetTransform magnifies by zoom with (x, y) as the top-left of the
	// source region in screen coordinates.
	SetTransform(zoom float64, x, y int) error

	// SetSmoothing toggles bitmap smoothing where the OS supports it.
	SetSmoothing(enabled bool) error

	Uninitialize() error
}

// WindowLister enumerates and measures top-level windows.
type WindowLister interface {
	// ListWindows returns visible, titled top-level windows.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// ClientRect returns the window's client area in screen coordinates.
	// Returns ErrWindowGone when the handle no longer names a window.
	ClientRect(id int) (Rect, error)

	IsWindow(id int) bool
}

// Display reports primary screen metrics.
type Display interface {
	ScreenSize() Size
}

// EventHandler receives hotkey and timer events from the message loop.
// Calls are serialized on the loop's thread.
type EventHandler interface {
	HandleEvent(ev Event)
}

// Overlay owns the hidden topmost window that anchors hotkeys, the tick
// timer and the message loop. All methods must be called from the thread
// that called Create.
type Overlay interface {
	// Create shows the overlay over bounds. Only the tracking magnifier
	// asks for an opaque layer.
	Create(bounds Rect, opaque bool) error

	// ID returns the overlay's window handle, 0 before Create.
	ID() int

	RegisterHotkey(hk Hotkey) error
	SetTimer(interval time.Duration) error

	// Redraw invalidates and repaints the overlay.
	Redraw()

	// Run pumps messages until the window is destroyed or ctx is
	// cancelled. The overlay never takes focus, so keyboard input other
	// than registered hotkeys does not reach it.
	Run(ctx context.Context, h EventHandler) error

	// Close releases the timer, hotkeys and window. Safe to call twice.
	Close() error
}
