package vsr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultSecondsWidth, cfg.SecondsWidth)
	assert.Equal(t, DefaultInterval, cfg.Interval)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vsr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "seconds_width: 6\ninterval_seconds: 2.5\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.SecondsWidth)
	assert.Equal(t, 2.5, cfg.Interval)
}

// Fields absent from the file keep their defaults.
func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "seconds_width: 6\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.SecondsWidth)
	assert.Equal(t, DefaultInterval, cfg.Interval)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"narrow_seconds_field", "seconds_width: 3\n"},
		{"zero_interval", "interval_seconds: 0\n"},
		{"negative_interval", "interval_seconds: -1\n"},
		{"not_yaml", "seconds_width: [unclosed\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
