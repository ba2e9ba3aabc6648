package magnify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mj1618/magnify-cli/internal/model"
)

// ErrInvalidSelection means the user did not pick one of the listed windows.
var ErrInvalidSelection = errors.New("invalid selection")

// PromptWindow prints an indexed window list to out and reads one index
// from in.
func PromptWindow(in io.Reader, out io.Writer, windows []model.Window) (model.Window, error) {
	if len(windows) == 0 {
		return model.Window{}, fmt.Errorf("%w: no windows to select", ErrInvalidSelection)
	}

	fmt.Fprintln(out, "Select a window to magnify:")
	for i, w := range windows {
		fmt.Fprintf(out, "%d: %s\n", i, w.Title)
	}
	fmt.Fprint(out, "\nEnter window number: ")

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return model.Window{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		return model.Window{}, fmt.Errorf("%w: no input", ErrInvalidSelection)
	}

	text := strings.TrimSpace(sc.Text())
	choice, err := strconv.Atoi(text)
	if err != nil {
		return model.Window{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, text)
	}
	if choice < 0 || choice >= len(windows) {
		return model.Window{}, fmt.Errorf("%w: %d is out of range 0-%d", ErrInvalidSelection, choice, len(windows)-1)
	}
	return windows[choice], nil
}

// FindWindow picks a window by id, or else by case-insensitive title
// substring. The first match wins.
func FindWindow(windows []model.Window, id int, title string) (model.Window, error) {
	if id != 0 {
		for _, w := range windows {
			if w.ID == id {
				return w, nil
			}
		}
		return model.Window{}, fmt.Errorf("%w: no visible window with id %d", ErrInvalidSelection, id)
	}

	needle := strings.ToLower(title)
	for _, w := range windows {
		if strings.Contains(strings.ToLower(w.Title), needle) {
			return w, nil
		}
	}
	return model.Window{}, fmt.Errorf("%w: no visible window matching %q", ErrInvalidSelection, title)
}
