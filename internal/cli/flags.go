package cli

import (
	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/strip"
	"github.com/spf13/cobra"
)

// OpFlags holds the repeatable --op flag shared by render and strips.
type OpFlags struct {
	Ops []string
}

// AddOpFlags registers --op on a command.
func AddOpFlags(cmd *cobra.Command, flags *OpFlags) {
	cmd.Flags().StringArrayVar(&flags.Ops, "op", nil,
		"edit to apply before output, in order (add:S, remove:S:I, set:S:I:COLOR)")
}

// newStore builds a store from the config's starting palette and color policy.
// strict forces the StrictHex policy regardless of config.
func newStore(cfg *config.Config, strict bool) (*strip.Store, error) {
	st, err := cfg.InitialState()
	if err != nil {
		return nil, err
	}
	policy := cfg.ColorPolicy()
	if strict {
		policy = strip.StrictHex
		if err := config.CheckInitial(cfg, policy); err != nil {
			return nil, err
		}
	}
	return strip.NewStore(
		strip.WithState(st),
		strip.WithPolicy(policy),
		strip.WithLogger(logger.Default()),
	), nil
}

// applyOps parses and applies textual ops to the store, stopping at the
// first failure. Edits before the failure stay applied.
func applyOps(store *strip.Store, specs []string) error {
	ops, err := strip.ParseOps(specs)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if _, err := store.Apply(op); err != nil {
			return err
		}
	}
	return nil
}
