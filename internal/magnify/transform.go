// Package magnify computes magnification transforms and drives a
// platform.Magnifier from hotkey and timer events.
package magnify

import (
	"errors"
	"math"

	"github.com/mj1618/magnify-cli/internal/platform"
)

// MinZoom is the lowest zoom the OS magnifier accepts.
const MinZoom = 1.0

var (
	// ErrEmptyClient is returned for a window with no client area,
	// typically one that is minimized.
	ErrEmptyClient = errors.New("window has an empty client area")

	// ErrZoomBelowOne is returned when asked to magnify by less than 1x.
	ErrZoomBelowOne = errors.New("zoom factor must be at least 1.0")
)

// Transform is what gets handed to platform.Magnifier.SetTransform.
type Transform struct {
	Zoom float64
	X, Y int

	// Size of the screen region that ends up magnified. Informational.
	SourceWidth, SourceHeight float64
}

// MaxZoom is the largest zoom at which client still fits on screen.
func MaxZoom(client platform.Rect, screen platform.Size) float64 {
	maxX := float64(screen.Width) / float64(client.Width())
	maxY := float64(screen.Height) / float64(client.Height())
	return math.Min(maxX, maxY)
}

// TrackTransform magnifies the client rectangle of a tracked window.
// The requested zoom is clamped so the client area still fits the screen,
// and the source origin stays at the client's top-left corner.
func TrackTransform(client platform.Rect, screen platform.Size, zoom float64) (Transform, error) {
	if client.Empty() {
		return Transform{}, ErrEmptyClient
	}

	effective := math.Min(zoom, MaxZoom(client, screen))
	// A window larger than the screen would ask for < 1x.
	effective = math.Max(effective, MinZoom)

	return Transform{
		Zoom:         effective,
		X:            client.Left,
		Y:            client.Top,
		SourceWidth:  float64(client.Width()) / effective,
		SourceHeight: float64(client.Height()) / effective,
	}, nil
}

// FullscreenTransform magnifies the whole primary screen, offset so the
// zoomed image stays centered.
func FullscreenTransform(screen platform.Size, zoom float64) (Transform, error) {
	if zoom < MinZoom {
		return Transform{}, ErrZoomBelowOne
	}

	keep := 1 - 1/zoom
	return Transform{
		Zoom:         zoom,
		X:            int(float64(screen.Width) * keep / 2),
		Y:            int(float64(screen.Height) * keep / 2),
		SourceWidth:  float64(screen.Width) / zoom,
		SourceHeight: float64(screen.Height) / zoom,
	}, nil
}
