package cmd

import (
	"github.com/mj1618/magnify-cli/internal/output"
	"github.com/spf13/cobra"
)

// ConfigResult is the output of `config`.
type ConfigResult struct {
	Step      float64 `yaml:"zoom_step"      json:"zoom_step"`
	Interval  string  `yaml:"track_interval" json:"track_interval"`
	Smoothing bool    `yaml:"smoothing"      json:"smoothing"`
	LogLevel  string  `yaml:"log_level"      json:"log_level"`
	LogFormat string  `yaml:"log_format"     json:"log_format"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print settings after merging defaults, the config file, MAGNIFY_* environment variables and flags.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	return output.Print(configResult())
}

func configResult() ConfigResult {
	cfg := currentConfig()
	return ConfigResult{
		Step:      cfg.Zoom.Step,
		Interval:  cfg.Track.Interval.String(),
		Smoothing: cfg.Smoothing,
		LogLevel:  cfg.Log.Level,
		LogFormat: cfg.Log.Format,
	}
}
