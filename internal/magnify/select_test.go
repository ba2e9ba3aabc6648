package magnify

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/magnify-cli/internal/model"
)

func sampleWindows() []model.Window {
	return []model.Window{
		{ID: 101, PID: 1, Title: "Untitled - Notepad"},
		{ID: 202, PID: 2, Title: "Visual Studio Code"},
		{ID: 303, PID: 3, Title: "Calculator"},
	}
}

func TestPromptWindow_Valid(t *testing.T) {
	var out bytes.Buffer
	w, err := PromptWindow(strings.NewReader("2\n"), &out, sampleWindows())
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 303 {
		t.Errorf("got window %d, want 303", w.ID)
	}

	text := out.String()
	for _, want := range []string{"Select a window to magnify:", "0: Untitled - Notepad", "2: Calculator", "Enter window number: "} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q:\n%s", want, text)
		}
	}
}

func TestPromptWindow_TrimsWhitespace(t *testing.T) {
	w, err := PromptWindow(strings.NewReader("  1  \r\n"), &bytes.Buffer{}, sampleWindows())
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 202 {
		t.Errorf("got window %d, want 202", w.ID)
	}
}

func TestPromptWindow_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"negative", "-1\n"},
		{"too large", "3\n"},
		{"not a number", "abc\n"},
		{"trailing junk", "1abc\n"},
		{"empty line", "\n"},
		{"eof", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PromptWindow(strings.NewReader(tt.input), &bytes.Buffer{}, sampleWindows())
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("expected ErrInvalidSelection, got %v", err)
			}
		})
	}
}

func TestPromptWindow_NoWindows(t *testing.T) {
	_, err := PromptWindow(strings.NewReader("0\n"), &bytes.Buffer{}, nil)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestFindWindow_ByID(t *testing.T) {
	w, err := FindWindow(sampleWindows(), 202, "")
	if err != nil {
		t.Fatal(err)
	}
	if w.Title != "Visual Studio Code" {
		t.Errorf("got %q", w.Title)
	}

	if _, err := FindWindow(sampleWindows(), 999, ""); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestFindWindow_ByTitle(t *testing.T) {
	w, err := FindWindow(sampleWindows(), 0, "notepad")
	if err != nil {
		t.Fatal(err)
	}
	if w.ID != 101 {
		t.Errorf("got %d, want 101", w.ID)
	}

	if _, err := FindWindow(sampleWindows(), 0, "paint"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}
