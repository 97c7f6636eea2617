package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "logogen",
	Short: "Edit and render the three-strip gradient logo",
	Long: `logogen builds a 512x512 SVG logo from three diagonal strips, each
painted with a linear gradient through its color stops.

Edit the stops from the command line, in a terminal editor, or in a local
web editor with live preview.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return errors.New(errors.ErrConfig,
				"--verbose and --quiet cannot be used together",
				"Pick one.")
		}
		logger.SetVerbose(verbose)
		logger.SetQuiet(quiet)
		if noColor {
			ui.DisableColors()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .logogen.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders structured errors as-is and gives plain errors (flag
// and argument errors from cobra) the same leading symbol.
func formatError(err error) string {
	if errors.CodeOf(err) != "" {
		return err.Error()
	}
	msg := fmt.Sprintf("%s %s\n", ui.SymbolFail, err.Error())
	if isUnknownCommandError(err) {
		msg += "\n  Run 'logogen --help' to see the available commands.\n"
	}
	return lipgloss.NewStyle().Foreground(ui.ColorError).Render(strings.TrimRight(msg, "\n")) + "\n"
}

// isUnknownCommandError checks if the error is cobra's unknown command or flag error.
func isUnknownCommandError(err error) bool {
	errStr := err.Error()
	return strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag")
}

// loadConfig finds, loads and validates the config, then applies its output
// settings. With no config file the defaults are used.
func loadConfig(path string) (*config.Config, error) {
	cfg, found, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if found != "" {
		logger.Default().Debug("using config %s", found)
	} else {
		logger.Default().Debug("no config file found, using defaults")
	}

	if !noColor {
		ui.SetColorMode(cfg.Output.Color)
	}
	return cfg, nil
}
