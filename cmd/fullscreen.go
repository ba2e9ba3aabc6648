package cmd

import (
	"github.com/spf13/cobra"
)

var fullscreenCmd = &cobra.Command{
	Use:   "fullscreen",
	Short: "Zoom the whole screen",
	Long:  "Magnify the primary screen, keeping the zoomed view centered. Ctrl+= and Ctrl+- change the zoom.",
	Args:  cobra.NoArgs,
	RunE:  runFullscreen,
}

func init() {
	rootCmd.AddCommand(fullscreenCmd)
	fullscreenCmd.Flags().Float64("step", 0.1, "Zoom change per hotkey press")
	fullscreenCmd.Flags().Bool("smoothing", true, "Enable bitmap smoothing when available")
}

func runFullscreen(cmd *cobra.Command, args []string) error {
	return runMagnifier(cmd.Context(), runOptions{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Config: currentConfig(),
	})
}
