package cli

import (
	"os"

	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	renderOpFlags   OpFlags
	renderMinify    bool
	renderStrict    bool
	stripsOpFlags   OpFlags
	editOutFlag     string
	serveAddrFlag   string
	initForce       bool
	initNonInteract bool
)

// renderCmd writes the logo as SVG
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the logo as SVG to stdout",
	Long: `Render the logo as a 512x512 SVG document.

Starts from the configured palette (or the built-in one) and applies each
--op in order before rendering.

Examples:
  logogen render > logo.svg
  logogen render --op add:0 --op set:0:1:#00FF00
  logogen render --minify --op remove:1:1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCommand(cmd.OutOrStdout(), cfgFile, RenderOptions{
			Ops:    renderOpFlags.Ops,
			Minify: renderMinify,
			Strict: renderStrict,
		})
	},
}

// stripsCmd prints the strips and their stops
var stripsCmd = &cobra.Command{
	Use:   "strips",
	Short: "Show each strip's stops, offsets and gradient",
	Long: `Print every strip with a terminal gradient preview and a table of its
stops and their offsets.

Examples:
  logogen strips
  logogen strips --op add:2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stripsCommand(cmd.OutOrStdout(), cfgFile, stripsOpFlags.Ops)
	},
}

// editCmd opens the terminal editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the strips in a full-screen terminal editor",
	Long: `Open the terminal editor. Arrow keys move between strips and stops,
+ adds a stop, x removes one, enter edits a color, ? shows all keys.

Examples:
  logogen edit
  logogen edit --out logo.svg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editCommand(cfgFile, editOutFlag)
	},
}

// serveCmd runs the web editor
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web editor with live preview",
	Long: `Serve a local web page for editing the strips. Every open page gets the
re-rendered logo over a WebSocket after each edit.

Examples:
  logogen serve
  logogen serve --addr 0.0.0.0:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand(cmd.Context(), cfgFile, serveAddrFlag)
	},
}

// initCmd creates a new .logogen.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .logogen.yaml configuration",
	Long: `Create a .logogen.yaml file in the current directory.

Prompts for the render and editor settings, or writes the defaults with
--non-interactive.

Examples:
  logogen init
  logogen init --non-interactive
  logogen init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteract,
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for logogen.

Examples:
  # Bash
  logogen completion bash > /etc/bash_completion.d/logogen

  # Zsh
  logogen completion zsh > "${fpath[1]}/_logogen"

  # Fish
  logogen completion fish > ~/.config/fish/completions/logogen.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// render command flags
	AddOpFlags(renderCmd, &renderOpFlags)
	renderCmd.Flags().BoolVar(&renderMinify, "minify", false, "minify the SVG output")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "reject colors that aren't #RGB or #RRGGBB")

	// strips command flags
	AddOpFlags(stripsCmd, &stripsOpFlags)

	// edit command flags
	editCmd.Flags().StringVarP(&editOutFlag, "out", "o", "", "write the final logo to this SVG file on exit")

	// serve command flags
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (default: serve.addr from config, else 127.0.0.1:8080)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteract, "non-interactive", false, "write defaults without prompting")

	// Register all commands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(stripsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
