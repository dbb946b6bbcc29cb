package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/resolvctl/internal/config"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultConfig(), cfg)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--output", "json", "--concurrency", "9"}))

	cfg, err := config.Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 9, cfg.Concurrency)
	// untouched settings keep their defaults
	assert.Equal(t, config.DefaultProbeDomain, cfg.ProbeDomain)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "resolvctl")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("output: plain\nprobe-domain: probe.example\n"), 0o600))

	cfg, err := config.Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, "probe.example", cfg.ProbeDomain)
}

func TestLoad_FlagBeatsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "resolvctl")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: plain\n"), 0o600))

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--output", "json"}))

	cfg, err := config.Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "resolvctl")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\tnot yaml"), 0o600))

	_, err := config.Load(newFlags(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
