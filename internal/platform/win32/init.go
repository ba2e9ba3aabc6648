//go:build windows && (amd64 || 386)

package win32

import "github.com/mj1618/magnify-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		// Best effort: older systems magnify fine without it.
		enableDPIAwareness()

		return &platform.Provider{
			Magnifier: NewMagnifier(),
			Windows:   NewWindowLister(),
			Display:   NewDisplay(),
			Overlay:   NewOverlay(),
		}, nil
	}
}
