//go:build windows && (amd64 || 386)

package win32

import "github.com/mj1618/magnify-cli/internal/platform"

// Display implements platform.Display for the primary monitor.
type Display struct{}

func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) ScreenSize() platform.Size {
	w, _, _ := procGetSystemMetrics.Call(smCXScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYScreen)
	return platform.Size{Width: int(int32(w)), Height: int(int32(h))}
}
