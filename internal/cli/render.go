package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/render"
	"github.com/rileyhilliard/logogen/internal/ui"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Ops    []string // Textual edits applied in order
	Minify bool     // Minify output (also enabled by render.minify)
	Strict bool     // Force the StrictHex color policy
}

// renderCommand applies the ops and writes the SVG to out.
func renderCommand(out io.Writer, configPath string, opts RenderOptions) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := newStore(cfg, opts.Strict)
	if err != nil {
		return err
	}
	if err := applyOps(store, opts.Ops); err != nil {
		return err
	}

	svg, err := render.SVG(store.Snapshot(), render.Options{
		Minify: opts.Minify || cfg.Render.Minify,
	})
	if err != nil {
		return err
	}

	if _, err := out.Write(svg); err != nil {
		return errors.Wrap(err, "Failed to write SVG")
	}
	return nil
}

// stripsCommand prints a gradient preview per strip and a table of stops.
func stripsCommand(out io.Writer, configPath string, ops []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := newStore(cfg, false)
	if err != nil {
		return err
	}
	if err := applyOps(store, ops); err != nil {
		return err
	}

	st := store.Snapshot()
	var rows []ui.StopRow
	for k, s := range st.Strips() {
		fmt.Fprintf(out, "%s strip %d  %s\n", ui.SymbolCursor, k, ui.GradientBar(s, stripsBarWidth))
		for i, color := range s {
			rows = append(rows, ui.StopRow{
				Strip:     k,
				Stop:      i,
				Offset:    s.Offset(i),
				Color:     color,
				Removable: s.Interior(i),
			})
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderStopTable(rows))
	return nil
}

const stripsBarWidth = 32
