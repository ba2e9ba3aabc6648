package platform

import "fmt"

// Rect is a screen rectangle with exclusive right/bottom edges.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r has no drawable area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Bounds returns r as [x, y, width, height], the form used in list output.
func (r Rect) Bounds() [4]int {
	return [4]int{r.Left, r.Top, r.Width(), r.Height()}
}

// Size is a pixel width and height.
type Size struct {
	Width, Height int
}

// Modifier is a hotkey modifier mask (MOD_* values).
type Modifier uint32

const (
	ModAlt     Modifier = 0x0001
	ModControl Modifier = 0x0002
	ModShift   Modifier = 0x0004
	ModWin     Modifier = 0x0008
)

// Key is a virtual-key code.
type Key uint32

const (
	KeySubtract Key = 0x6D
	KeyOEMPlus  Key = 0xBB
	KeyOEMMinus Key = 0xBD
)

var keyNames = map[Key]string{
	KeySubtract: "NumPad-",
	KeyOEMPlus:  "=",
	KeyOEMMinus: "-",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("VK(0x%02X)", uint32(k))
}

// EventKind identifies what woke the message loop.
type EventKind int

const (
	EventZoomIn EventKind = iota + 1
	EventZoomOut
	EventTick
)

func (k EventKind) String() string {
	switch k {
	case EventZoomIn:
		return "zoom-in"
	case EventZoomOut:
		return "zoom-out"
	case EventTick:
		return "tick"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is delivered by an Overlay to its EventHandler.
type Event struct {
	Kind EventKind
}

// Hotkey binds a global key combination to an event.
type Hotkey struct {
	ID        int
	Modifiers Modifier
	Key       Key
	Action    EventKind
}

func (h Hotkey) String() string {
	prefix := ""
	if h.Modifiers&ModControl != 0 {
		prefix += "Ctrl+"
	}
	if h.Modifiers&ModAlt != 0 {
		prefix += "Alt+"
	}
	if h.Modifiers&ModShift != 0 {
		prefix += "Shift+"
	}
	if h.Modifiers&ModWin != 0 {
		prefix += "Win+"
	}
	return prefix + h.Key.String()
}

// DefaultHotkeys returns the fixed zoom bindings. The numpad minus gets its
// own id because RegisterHotKey rejects a second registration of an id.
func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{ID: 1, Modifiers: ModControl, Key: KeyOEMPlus, Action: EventZoomIn},
		{ID: 2, Modifiers: ModControl, Key: KeyOEMMinus, Action: EventZoomOut},
		{ID: 3, Modifiers: ModControl, Key: KeySubtract, Action: EventZoomOut},
	}
}

// ListOptions controls window listing.
type ListOptions struct {
	Title   string // Case-insensitive title substring (empty = all)
	Exclude []int  // Window IDs to leave out, e.g. our own overlay
}
