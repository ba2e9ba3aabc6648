package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Keep one window magnified as it moves and resizes",
	Long: `Pick a window and magnify its client area. The window's position is
re-read on every tick, and the zoom is capped so the window still fits
on screen.

Without --window-id or --title, an indexed list of windows is printed and
the choice is read from stdin.`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().Float64("step", 0.1, "Zoom change per hotkey press")
	trackCmd.Flags().Duration("interval", 100*time.Millisecond, "How often to re-read the window position")
	trackCmd.Flags().Bool("smoothing", true, "Enable bitmap smoothing when available")
	trackCmd.Flags().Int("window-id", 0, "Track the window with this ID (see 'magnify list')")
	trackCmd.Flags().String("title", "", "Track the first window whose title contains this text")
	trackCmd.MarkFlagsMutuallyExclusive("window-id", "title")
}

func runTrack(cmd *cobra.Command, args []string) error {
	windowID, _ := cmd.Flags().GetInt("window-id")
	title, _ := cmd.Flags().GetString("title")

	return runMagnifier(cmd.Context(), runOptions{
		Track:    true,
		WindowID: windowID,
		Title:    title,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Config:   currentConfig(),
	})
}
