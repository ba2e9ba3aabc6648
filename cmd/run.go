package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/mj1618/magnify-cli/internal/config"
	"github.com/mj1618/magnify-cli/internal/logger"
	"github.com/mj1618/magnify-cli/internal/magnify"
	"github.com/mj1618/magnify-cli/internal/model"
	"github.com/mj1618/magnify-cli/internal/platform"
	"go.uber.org/zap"
)

// runOptions describes one magnifier run, fullscreen or tracking.
type runOptions struct {
	Track    bool
	WindowID int    // Skip the prompt and track this window
	Title    string // Skip the prompt and track the first title match
	In       io.Reader
	Out      io.Writer
	Config   *config.Config
}

// runMagnifier acquires the magnifier, overlay and hotkeys, then pumps
// messages until ctx is cancelled or the overlay closes. Everything
// acquired is released on every return path, last-acquired first, and the
// screen is put back to 1x before the magnifier shuts down.
func runMagnifier(ctx context.Context, opts runOptions) error {
	// Win32 windows and their message queue belong to one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logger.L(ctx)
	cfg := opts.Config

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	mag := provider.Magnifier
	if err := mag.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := mag.Uninitialize(); err != nil {
			log.Warn("uninitialize magnifier", zap.Error(err))
		}
	}()
	if cfg.Smoothing {
		if err := mag.SetSmoothing(true); err != nil {
			log.Debug("bitmap smoothing unavailable", zap.Error(err))
		}
	}

	screen := provider.Display.ScreenSize()
	overlay := provider.Overlay
	if err := overlay.Create(platform.Rect{Right: screen.Width, Bottom: screen.Height}, opts.Track); err != nil {
		return err
	}
	defer func() {
		if err := overlay.Close(); err != nil {
			log.Warn("close overlay", zap.Error(err))
		}
	}()

	var target *model.Window
	if opts.Track {
		w, err := selectTarget(provider.Windows, overlay.ID(), opts)
		if err != nil {
			return err
		}
		target = &w
	}

	for _, hk := range platform.DefaultHotkeys() {
		if err := overlay.RegisterHotkey(hk); err != nil {
			return err
		}
	}

	session := magnify.NewSession(magnify.Options{
		Magnifier: mag,
		Display:   provider.Display,
		Windows:   provider.Windows,
		Overlay:   overlay,
		Target:    target,
		Step:      cfg.Zoom.Step,
		Logger:    log,
	})
	defer func() {
		if err := session.Reset(); err != nil {
			log.Warn("reset zoom", zap.Error(err))
		}
	}()

	if _, err := session.Apply(); err != nil {
		log.Warn("initial transform failed", zap.Error(err))
	}
	if opts.Track {
		if err := overlay.SetTimer(cfg.Track.Interval); err != nil {
			return err
		}
	}

	fmt.Fprintln(opts.Out, "Magnifier running. Use Ctrl + / Ctrl - to zoom. Press Ctrl+C to exit.")
	log.Info("magnifier running",
		zap.Bool("tracking", session.Tracking()),
		zap.Int("screen_width", screen.Width),
		zap.Int("screen_height", screen.Height),
		zap.Float64("step", cfg.Zoom.Step),
	)
	return overlay.Run(ctx, session)
}

// selectTarget resolves the tracked window from flags or, failing that,
// the interactive prompt. The overlay never appears as a choice.
func selectTarget(lister platform.WindowLister, overlayID int, opts runOptions) (model.Window, error) {
	windows, err := lister.ListWindows(platform.ListOptions{Exclude: []int{overlayID}})
	if err != nil {
		return model.Window{}, fmt.Errorf("list windows: %w", err)
	}
	if opts.WindowID != 0 || opts.Title != "" {
		return magnify.FindWindow(windows, opts.WindowID, opts.Title)
	}
	return magnify.PromptWindow(opts.In, opts.Out, windows)
}
