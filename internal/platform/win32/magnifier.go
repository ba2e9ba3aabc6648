//go:build windows && (amd64 || 386)

package win32

import (
	"fmt"
	"math"

	"github.com/mj1618/magnify-cli/internal/platform"
	"golang.org/x/sys/windows"
)

// Magnifier implements platform.Magnifier on Magnification.dll.
type Magnifier struct {
	initialized bool
}

func NewMagnifier() *Magnifier {
	return &Magnifier{}
}

func (m *Magnifier) Initialize() error {
	if err := procMagInitialize.Find(); err != nil {
		return fmt.Errorf("%w: %v", platform.ErrMagnifierInit, err)
	}
	r, _, err := procMagInitialize.Call()
	if r == 0 {
		return fmt.Errorf("%w: %v", platform.ErrMagnifierInit, err)
	}
	m.initialized = true
	return nil
}

// SetTransform calls MagSetFullscreenTransform(float, int, int). The zoom
// is passed as float32 bits; on amd64 the runtime mirrors the first four
// arguments into XMM0-3, which is where the callee reads a float, and on
// 386 the bits land in the float's stdcall stack slot. Syscalls on
// windows/arm64 never load S0-S7, which is why this package only builds
// for amd64 and 386.
func (m *Magnifier) SetTransform(zoom float64, x, y int) error {
	if !m.initialized {
		return fmt.Errorf("magnifier not initialized")
	}
	r, _, err := procMagSetFullscreenTransform.Call(
		uintptr(math.Float32bits(float32(zoom))),
		uintptr(int32(x)),
		uintptr(int32(y)),
	)
	if r == 0 {
		return fmt.Errorf("MagSetFullscreenTransform(%.2f, %d, %d): %v", zoom, x, y, err)
	}
	return nil
}

// SetSmoothing uses undocumented exports; missing ones are ignored.
func (m *Magnifier) SetSmoothing(enabled bool) error {
	var arg uintptr
	if enabled {
		arg = 1
	}
	for _, proc := range []*windows.LazyProc{procMagSetFullscreenUseBitmapSmoothing, procMagSetLensUseBitmapSmoothing} {
		if proc.Find() != nil {
			continue
		}
		proc.Call(arg)
	}
	return nil
}

func (m *Magnifier) Uninitialize() error {
	if !m.initialized {
		return nil
	}
	m.initialized = false
	if r, _, err := procMagUninitialize.Call(); r == 0 {
		return fmt.Errorf("MagUninitialize: %v", err)
	}
	return nil
}
