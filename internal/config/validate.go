package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/strip"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but logogen only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade logogen or lower the version in .logogen.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .logogen.yaml.")
	}

	if err := validateServe(cfg.Serve); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'serve' section in your .logogen.yaml.")
	}

	if err := validateInitial(cfg.Initial, cfg.ColorPolicy()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'initial' section in your .logogen.yaml.")
	}

	return nil
}

// CheckInitial validates the starting palette under policy, which may be
// stricter than the one the config selects (render --strict).
func CheckInitial(cfg *Config, policy strip.ColorPolicy) error {
	if err := validateInitial(cfg.Initial, policy); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Fix the 'initial' section in your .logogen.yaml, or drop --strict.")
	}
	return nil
}

// validateOutput checks output configuration values.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// validateServe checks the listen address. An empty address falls back to the default.
func validateServe(s ServeConfig) error {
	if s.Addr == "" {
		return nil
	}
	_, port, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return fmt.Errorf("serve.addr '%s' isn't a host:port address", s.Addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("serve.addr '%s' has an invalid port", s.Addr)
	}
	return nil
}

// validateInitial checks a configured starting palette has the right shape
// and, under a strict policy, only well-formed colors.
func validateInitial(initial [][]string, policy strip.ColorPolicy) error {
	if len(initial) == 0 {
		return nil
	}
	if _, err := strip.New(initial); err != nil {
		return fmt.Errorf("initial palette is invalid: %s", errors.MessageOf(err))
	}
	for k, colors := range initial {
		for i, c := range colors {
			if err := policy.Check(c); err != nil {
				return fmt.Errorf("initial[%d][%d] color '%s' isn't a #RGB or #RRGGBB hex color", k, i, c)
			}
		}
	}
	return nil
}
