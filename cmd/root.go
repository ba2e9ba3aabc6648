package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/magnify-cli/internal/config"
	"github.com/mj1618/magnify-cli/internal/logger"
	"github.com/mj1618/magnify-cli/internal/magnify"
	"github.com/mj1618/magnify-cli/internal/output"
	"github.com/mj1618/magnify-cli/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "magnify",
	Short: "Magnify the screen or a single window",
	Long: `A screen magnifier built on the Windows Magnification API.

Zoom the whole screen with 'magnify fullscreen', or keep one window
magnified as it moves and resizes with 'magnify track'.
Ctrl+= zooms in, Ctrl+- (or Ctrl+NumPad-) zooms out, Ctrl+C exits.`,
	SilenceUsage: true,
}

// appConfig is loaded once per invocation by the root pre-run hook.
var appConfig *config.Config

// flagKeys maps command flags onto config keys; flags only take effect
// when set explicitly.
var flagKeys = map[string]string{
	"step":       "zoom.step",
	"interval":   "track.interval",
	"smoothing":  "smoothing",
	"log-format": "log.format",
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Close()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode keeps a bad window selection distinguishable from OS failures.
func exitCode(err error) int {
	if errors.Is(err, magnify.ErrInvalidSelection) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default is <user config dir>/magnify/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console, json")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default: yaml on a terminal, json when piped)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		cmd.SetContext(logger.ContextWithLogger(cmd.Context(), l))

		// Use the root persistent flag directly so subcommands can't shadow it.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		v.Set("log.level", "debug")
	}

	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		// No resolvable config dir just means no config file.
		path, _ = config.DefaultConfigPath()
	}
	return config.Load(v, path)
}

// currentConfig returns the loaded config, or defaults when no pre-run
// hook has run (e.g. in tests).
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.DefaultConfig()
}
