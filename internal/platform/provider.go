package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Magnifier Magnifier
	Windows   WindowLister
	Display   Display
	Overlay   Overlay
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("magnify is not supported on %s/%s; supported: windows/amd64, windows/386", runtime.GOOS, runtime.GOARCH)

var (
	// ErrWindowGone means a window handle no longer names a live window.
	ErrWindowGone = errors.New("window is gone or invalid")

	// ErrMagnifierInit means the magnification service could not start.
	ErrMagnifierInit = errors.New("magnification API initialization failed")
)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/windows/init.go for the Win32 registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
