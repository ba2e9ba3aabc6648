package magnify

import (
	"errors"
	"fmt"
	"math"

	"github.com/mj1618/magnify-cli/internal/model"
	"github.com/mj1618/magnify-cli/internal/platform"
	"go.uber.org/zap"
)

// DefaultStep is how much one hotkey press changes the zoom factor.
const DefaultStep = 0.1

// Options configures a Session.
type Options struct {
	Magnifier platform.Magnifier
	Display   platform.Display
	Windows   platform.WindowLister // Required when Target is set
	Overlay   platform.Overlay      // Redrawn after tracking updates; may be nil
	Target    *model.Window         // nil magnifies the full screen
	Step      float64
	Logger    *zap.Logger
}

// Session owns the zoom factor for one run of the magnifier and applies it
// whenever a hotkey or tick arrives. It is driven from a single thread.
type Session struct {
	mag     platform.Magnifier
	display platform.Display
	windows platform.WindowLister
	overlay platform.Overlay
	target  *model.Window
	step    float64
	log     *zap.Logger

	zoom float64
}

// NewSession returns a session starting at 1x.
func NewSession(opts Options) *Session {
	step := opts.Step
	if step <= 0 {
		step = DefaultStep
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Target != nil {
		log = log.With(zap.Int("window_id", opts.Target.ID), zap.String("window", opts.Target.Title))
	}
	return &Session{
		mag:     opts.Magnifier,
		display: opts.Display,
		windows: opts.Windows,
		overlay: opts.Overlay,
		target:  opts.Target,
		step:    step,
		log:     log,
		zoom:    MinZoom,
	}
}

// Zoom returns the requested zoom factor. The applied zoom may be lower
// when tracking a window.
func (s *Session) Zoom() float64 { return s.zoom }

// Tracking reports whether the session follows a window.
func (s *Session) Tracking() bool { return s.target != nil }

// ZoomIn raises the zoom factor by one step and applies it.
func (s *Session) ZoomIn() (Transform, error) {
	s.zoom += s.step
	return s.Apply()
}

// ZoomOut lowers the zoom factor by one step, never below 1x, and applies it.
func (s *Session) ZoomOut() (Transform, error) {
	s.zoom = math.Max(MinZoom, s.zoom-s.step)
	return s.Apply()
}

// Apply recomputes the transform from the current zoom and pushes it to
// the magnifier.
func (s *Session) Apply() (Transform, error) {
	if s.target == nil {
		return s.applyFullscreen()
	}
	return s.applyTracked()
}

func (s *Session) applyFullscreen() (Transform, error) {
	tr, err := FullscreenTransform(s.display.ScreenSize(), s.zoom)
	if err != nil {
		return Transform{}, err
	}
	if err := s.mag.SetTransform(tr.Zoom, tr.X, tr.Y); err != nil {
		return Transform{}, fmt.Errorf("set fullscreen transform: %w", err)
	}
	return tr, nil
}

func (s *Session) applyTracked() (Transform, error) {
	id := s.target.ID
	if !s.windows.IsWindow(id) {
		return Transform{}, fmt.Errorf("window %d: %w", id, platform.ErrWindowGone)
	}

	client, err := s.windows.ClientRect(id)
	if err != nil {
		return Transform{}, fmt.Errorf("window %d client rect: %w", id, err)
	}

	tr, err := TrackTransform(client, s.display.ScreenSize(), s.zoom)
	if err != nil {
		return Transform{}, err
	}
	if err := s.mag.SetTransform(tr.Zoom, tr.X, tr.Y); err != nil {
		return Transform{}, fmt.Errorf("set tracking transform: %w", err)
	}

	if s.overlay != nil {
		s.overlay.Redraw()
	}
	return tr, nil
}

// Reset returns the screen to 1x.
func (s *Session) Reset() error {
	s.zoom = MinZoom
	if err := s.mag.SetTransform(MinZoom, 0, 0); err != nil {
		return fmt.Errorf("reset transform: %w", err)
	}
	return nil
}

// HandleEvent implements platform.EventHandler. Failures are logged and the
// loop keeps running.
func (s *Session) HandleEvent(ev platform.Event) {
	var (
		tr  Transform
		err error
	)
	switch ev.Kind {
	case platform.EventZoomIn:
		tr, err = s.ZoomIn()
	case platform.EventZoomOut:
		tr, err = s.ZoomOut()
	case platform.EventTick:
		tr, err = s.Apply()
	default:
		s.log.Debug("ignoring event", zap.Stringer("event", ev.Kind))
		return
	}

	if err != nil {
		if Skippable(err) {
			s.log.Debug("skipping update", zap.Stringer("event", ev.Kind), zap.Error(err))
		} else {
			s.log.Warn("update failed", zap.Stringer("event", ev.Kind), zap.Error(err))
		}
		return
	}

	fields := []zap.Field{
		zap.Stringer("event", ev.Kind),
		zap.Float64("zoom", s.zoom),
		zap.Float64("effective_zoom", tr.Zoom),
		zap.Int("x", tr.X),
		zap.Int("y", tr.Y),
	}
	if ev.Kind == platform.EventTick {
		s.log.Debug("transform applied", fields...)
		return
	}
	s.log.Info("zoom changed", fields...)
}

// Skippable reports whether err only means this update should be dropped,
// such as a closed or minimized target window.
func Skippable(err error) bool {
	return errors.Is(err, platform.ErrWindowGone) || errors.Is(err, ErrEmptyClient)
}
