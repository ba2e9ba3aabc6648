package cmd

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mj1618/magnify-cli/internal/model"
	"github.com/mj1618/magnify-cli/internal/platform"
)

// recorder collects backend calls in order so tests can check what was
// acquired and released.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

type fakeMagnifier struct {
	rec     *recorder
	initErr error
}

func (m *fakeMagnifier) Initialize() error {
	m.rec.add("mag.init")
	return m.initErr
}

func (m *fakeMagnifier) SetTransform(zoom float64, x, y int) error {
	m.rec.add("mag.set %.2f %d %d", zoom, x, y)
	return nil
}

func (m *fakeMagnifier) SetSmoothing(enabled bool) error {
	m.rec.add("mag.smoothing %v", enabled)
	return nil
}

func (m *fakeMagnifier) Uninitialize() error {
	m.rec.add("mag.uninit")
	return nil
}

type fakeWindows struct {
	rec     *recorder
	windows []model.Window
	rects   map[int]platform.Rect
}

func (w *fakeWindows) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	w.rec.add("windows.list exclude=%v", opts.Exclude)
	return w.windows, nil
}

func (w *fakeWindows) IsWindow(id int) bool {
	_, ok := w.rects[id]
	return ok
}

func (w *fakeWindows) ClientRect(id int) (platform.Rect, error) {
	r, ok := w.rects[id]
	if !ok {
		return platform.Rect{}, platform.ErrWindowGone
	}
	return r, nil
}

type fakeDisplay struct{}

func (fakeDisplay) ScreenSize() platform.Size { return platform.Size{Width: 1920, Height: 1080} }

// fakeOverlay replays events when Run is called. With waitCancel set, Run
// blocks until ctx is done, like the real loop waiting for WM_CLOSE.
type fakeOverlay struct {
	rec        *recorder
	events     []platform.EventKind
	waitCancel bool
	running    chan struct{}

	createErr error
	hotkeyErr error
	timerErr  error
}

func (o *fakeOverlay) Create(b platform.Rect, opaque bool) error {
	if o.createErr != nil {
		o.rec.add("overlay.create.fail")
		return o.createErr
	}
	o.rec.add("overlay.create %dx%d", b.Width(), b.Height())
	if opaque {
		o.rec.add("overlay.opaque")
	}
	return nil
}

func (o *fakeOverlay) ID() int { return 7 }

func (o *fakeOverlay) RegisterHotkey(hk platform.Hotkey) error {
	if o.hotkeyErr != nil {
		o.rec.add("overlay.hotkey.fail %s", hk)
		return o.hotkeyErr
	}
	o.rec.add("overlay.hotkey %s", hk)
	return nil
}

func (o *fakeOverlay) SetTimer(d time.Duration) error {
	if o.timerErr != nil {
		o.rec.add("overlay.timer.fail")
		return o.timerErr
	}
	o.rec.add("overlay.timer %s", d)
	return nil
}

func (o *fakeOverlay) Redraw() {}

func (o *fakeOverlay) Run(ctx context.Context, h platform.EventHandler) error {
	o.rec.add("overlay.run")
	for _, kind := range o.events {
		h.HandleEvent(platform.Event{Kind: kind})
	}
	if o.waitCancel {
		if o.running != nil {
			close(o.running)
		}
		<-ctx.Done()
		o.rec.add("overlay.cancelled")
	}
	return nil
}

func (o *fakeOverlay) Close() error {
	o.rec.add("overlay.close")
	return nil
}

type fakeBackend struct {
	rec     *recorder
	mag     *fakeMagnifier
	windows *fakeWindows
	overlay *fakeOverlay
}

// installFakeProvider swaps the platform hook for fakes until the test ends.
func installFakeProvider(t *testing.T) *fakeBackend {
	t.Helper()
	rec := &recorder{}
	b := &fakeBackend{
		rec: rec,
		mag: &fakeMagnifier{rec: rec},
		windows: &fakeWindows{
			rec: rec,
			windows: []model.Window{
				{ID: 101, Title: "Untitled - Notepad"},
				{ID: 202, Title: "Calculator"},
			},
			rects: map[int]platform.Rect{
				101: {Left: 100, Top: 100, Right: 700, Bottom: 550},
				202: {Left: 0, Top: 0, Right: 320, Bottom: 480},
			},
		},
		overlay: &fakeOverlay{rec: rec},
	}

	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Magnifier: b.mag,
			Windows:   b.windows,
			Display:   fakeDisplay{},
			Overlay:   b.overlay,
		}, nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = orig })
	return b
}
