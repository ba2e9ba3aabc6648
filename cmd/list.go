package cmd

import (
	"fmt"

	"github.com/mj1618/magnify-cli/internal/output"
	"github.com/mj1618/magnify-cli/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows that can be tracked",
	Long:  "List visible, titled top-level windows with their ID, PID, title and client bounds (x, y, width, height).",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("title", "", "Only list windows whose title contains this text")
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Windows == nil || provider.Display == nil {
		return fmt.Errorf("window listing not available on this platform")
	}

	title, _ := cmd.Flags().GetString("title")
	windows, err := provider.Windows.ListWindows(platform.ListOptions{Title: title})
	if err != nil {
		return err
	}

	screen := provider.Display.ScreenSize()
	return output.Print(output.ListResult{
		Screen:  [2]int{screen.Width, screen.Height},
		Windows: windows,
	})
}
