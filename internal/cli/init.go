package cli

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/ui"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write into; "" means the current directory
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .logogen.yaml configuration file.
func Init(opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	// Prompts need a terminal
	if !opts.NonInteractive && !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.NonInteractive = true
	}

	proceed, err := checkExistingConfig(configPath, opts)
	if err != nil || !proceed {
		return err
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(configPath, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check you can write to this directory.")
	}

	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  logogen strips    # see the palette")
	fmt.Println("  logogen edit      # edit it in the terminal")
	fmt.Println("  logogen serve     # or in the browser")
	return nil
}

// checkExistingConfig decides whether init may write configPath. It reports
// false with no error when the user declines to overwrite.
func checkExistingConfig(configPath string, opts InitOptions) (bool, error) {
	if _, err := os.Stat(configPath); err != nil || opts.Overwrite {
		return true, nil
	}

	if opts.NonInteractive {
		return false, errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", configPath),
			"Use --force to overwrite")
	}

	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
				Value(&overwrite),
		),
	)

	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}

	if !overwrite {
		fmt.Println("Cancelled.")
		return false, nil
	}
	return true, nil
}

// promptConfig asks for each setting, starting from the values in cfg.
func promptConfig(cfg *config.Config) error {
	addr := cfg.Serve.Addr

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Only accept hex colors?").
				Description("Rejects anything but #RGB and #RRGGBB when a stop color is set").
				Value(&cfg.Colors.Strict),
			huh.NewConfirm().
				Title("Minify rendered SVG?").
				Value(&cfg.Render.Minify),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Web editor address").
				Description("host:port for 'logogen serve'").
				Placeholder(config.DefaultServeAddr).
				Value(&addr).
				Validate(validateAddr),
			huh.NewSelect[string]().
				Title("Colored output").
				Options(
					huh.NewOption("Auto (when writing to a terminal)", ui.ColorModeAuto),
					huh.NewOption("Always", ui.ColorModeAlways),
					huh.NewOption("Never", ui.ColorModeNever),
				).
				Value(&cfg.Output.Color),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	cfg.Serve.Addr = strings.TrimSpace(addr)
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = config.DefaultServeAddr
	}
	return nil
}

// validateAddr accepts an empty value (use the default) or host:port.
func validateAddr(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(s); err != nil {
		return fmt.Errorf("use host:port, like %s", config.DefaultServeAddr)
	}
	return nil
}
