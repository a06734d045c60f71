package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/framectx/internal/app"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "framectx.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParse(t *testing.T) {
	configFile := writeConfig(t, "scenario: from-file.hcl\nlog_level: debug\nlog_format: json\n")

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"run.hcl"},
			want: &app.Config{ScenarioPath: "run.hcl", LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "shorthand flag wins over positional",
			args: []string{"-s", "flag.hcl", "positional.hcl"},
			want: &app.Config{ScenarioPath: "flag.hcl", LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "config file",
			args: []string{"--config", configFile},
			want: &app.Config{ScenarioPath: "from-file.hcl", LogLevel: "debug", LogFormat: "json"},
		},
		{
			name: "flags override config file",
			args: []string{"--config", configFile, "--log-level", "WARN", "--scenario", "flag.hcl"},
			want: &app.Config{ScenarioPath: "flag.hcl", LogLevel: "warn", LogFormat: "json"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_ShouldExit(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope"}, "unknown flag: --nope"},
		{"bad level", []string{"-s", "a.hcl", "--log-level", "loud"}, "invalid log level"},
		{"bad format", []string{"-s", "a.hcl", "--log-format", "xml"}, "invalid log format"},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, "failed to read config file"},
		{"empty config file", []string{"--config", writeConfig(t, "")}, "is empty"},
		{"too many args", []string{"a.hcl", "b.hcl"}, "accepts at most 1 arg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
