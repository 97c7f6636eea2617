package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/logogen/internal/config"
	"github.com/rileyhilliard/logogen/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractiveCreatesDefaults(t *testing.T) {
	dir := t.TempDir()

	err := Init(InitOptions{Dir: dir, NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_ExistingConfigWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nrender:\n  minify: true\n"), 0644))

	err := Init(InitOptions{Dir: dir, NonInteractive: true})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "minify: true", "existing file untouched")
}

func TestInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nrender:\n  minify: true\n"), 0644))

	err := Init(InitOptions{Dir: dir, Overwrite: true, NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Render.Minify)
}

func TestCheckExistingConfig_NoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	ok, err := checkExistingConfig(path, InitOptions{NonInteractive: true})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"   ", false},
		{"127.0.0.1:8080", false},
		{":9000", false},
		{"[::1]:8080", false},
		{"localhost", true},
		{"a:b:c", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateAddr(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
