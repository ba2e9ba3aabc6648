package cmd

import (
	"testing"
)

func TestTrackCommand_Flags(t *testing.T) {
	flags := trackCmd.Flags()

	tests := []struct {
		name     string
		flagType string
		def      string
	}{
		{"step", "float64", "0.1"},
		{"interval", "duration", "100ms"},
		{"smoothing", "bool", "true"},
		{"window-id", "int", "0"},
		{"title", "string", ""},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
		if f.DefValue != tt.def {
			t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.def, f.DefValue)
		}
	}
}

func TestFullscreenCommand_Flags(t *testing.T) {
	flags := fullscreenCmd.Flags()
	for _, name := range []string{"step", "smoothing"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected flag %q not found", name)
		}
	}
	// Fullscreen has no target to pick or re-read.
	for _, name := range []string{"interval", "window-id", "title"} {
		if flags.Lookup(name) != nil {
			t.Errorf("unexpected flag %q on fullscreen", name)
		}
	}
}

func TestFlagKeys_BoundFlagsExist(t *testing.T) {
	for name := range flagKeys {
		found := rootCmd.PersistentFlags().Lookup(name) != nil
		if trackCmd.Flags().Lookup(name) != nil || fullscreenCmd.Flags().Lookup(name) != nil {
			found = true
		}
		if !found {
			t.Errorf("flagKeys names %q but no command defines it", name)
		}
	}
}

func TestTrackCommand_WindowIDAndTitleExclusive(t *testing.T) {
	flags := trackCmd.Flags()
	reset := func() {
		for _, name := range []string{"window-id", "title"} {
			f := flags.Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	t.Cleanup(reset)

	tests := []struct {
		name    string
		set     map[string]string
		wantErr bool
	}{
		{"window-id only", map[string]string{"window-id": "101"}, false},
		{"title only", map[string]string{"title": "notepad"}, false},
		{"both", map[string]string{"window-id": "101", "title": "notepad"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			for name, value := range tt.set {
				if err := flags.Set(name, value); err != nil {
					t.Fatal(err)
				}
			}
			err := trackCmd.ValidateFlagGroups()
			if tt.wantErr && err == nil {
				t.Fatal("expected --window-id and --title to be rejected together")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
