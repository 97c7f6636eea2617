package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd groups config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the logogen config",
}

// configShowCmd prints the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout(), cfgFile)
	},
}

// configSetCmd changes one value in the config file
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the config file, keeping its comments",
	Long: `Set a dotted key in the config file. The file is left untouched if the
result doesn't validate.

Examples:
  logogen config set render.minify true
  logogen config set serve.addr 0.0.0.0:9000
  logogen config set colors.strict true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), cfgFile, args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configShowCommand writes the loaded config, defaults filled in, to out.
func configShowCommand(out io.Writer, configPath string) error {
	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if found == "" {
		fmt.Fprintln(out, "# no config file found; showing defaults")
	} else {
		fmt.Fprintf(out, "# %s\n", found)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	_, err = out.Write(data)
	return err
}

// configSetCommand sets key to value in the config file. If the edited file
// fails to load or validate the original contents are restored.
func configSetCommand(out io.Writer, configPath, key, value string) error {
	path, err := config.Find(configPath)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file to change",
			"Run 'logogen init' to create one first.")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path, "Check file permissions.")
	}

	if err := config.SetScalar(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't set %s", key),
			"Keys are dotted paths like render.minify or serve.addr.")
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0644); restoreErr != nil {
			return errors.WrapWithCode(restoreErr, errors.ErrConfig,
				"Failed to restore "+path+" after an invalid change", "")
		}
		return err
	}

	fmt.Fprintf(out, "%s Set %s = %s in %s\n", ui.SymbolSuccess, key, value, path)
	return nil
}
