package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/logogen/internal/editor"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/render"
	"github.com/rileyhilliard/logogen/internal/strip"
	"github.com/rileyhilliard/logogen/internal/ui"
	"golang.org/x/term"
)

// editCommand starts the terminal editor.
func editCommand(configPath, outPath string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrConfig,
			"The editor needs an interactive terminal",
			"Use 'logogen render --op ...' for scripted edits, or 'logogen serve' for the web editor.")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	store, err := newStore(cfg, false)
	if err != nil {
		return err
	}

	model := editor.NewModel(store, logger.Default())
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if outPath == "" {
		return nil
	}
	return writeLogo(outPath, store.Snapshot(), render.Options{Minify: cfg.Render.Minify})
}

// writeLogo renders st to an SVG file at path.
func writeLogo(path string, st strip.State, opts render.Options) error {
	svg, err := render.SVG(st, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, svg, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to write "+path,
			"Check the directory exists and is writable.")
	}
	logger.Default().Info("%s Wrote %s", ui.SymbolSuccess, path)
	return nil
}
