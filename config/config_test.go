package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/config"
)

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maxcut.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", flagSet(t))
	require.NoError(t, err)
	require.Equal(t, config.Default(), *c)

	c, err = config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), *c)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeYAML(t, "workers: 3\nseed: 99\noutput: yaml\nlog-level: debug\n")
	t.Setenv("MAXCUT_WORKERS", "5")
	t.Setenv("MAXCUT_MAX_ROUNDS", "12")

	c, err := config.Load(path, flagSet(t, "--seed", "7"))
	require.NoError(t, err)
	require.Equal(t, 5, c.Workers, "env beats file")
	require.Equal(t, uint64(7), c.Seed, "flag beats file")
	require.Equal(t, 12, c.MaxRounds)
	require.Equal(t, config.OutputYAML, c.Output)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, -1, c.ILPTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		args  []string
		field string
	}{
		{"negative workers", []string{"--workers", "-2"}, "Workers"},
		{"bad output", []string{"--output", "json"}, "Output"},
		{"bad level", []string{"--log-level", "loud"}, "LogLevel"},
		{"ilp below -1", []string{"--ilp", "-5"}, "ILPTimeout"},
		{"too many vertices", []string{"--max-vertices", "100"}, "MaxVertices"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load("", flagSet(t, tc.args...))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoad_BadFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeYAML(t, "workers: [1, 2\n"), nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeYAML(t, "workers: many\n"), nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
