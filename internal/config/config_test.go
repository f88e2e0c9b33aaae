package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Display: DisplayConfig{Decimals: 4, Color: true, Percent: true},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidate_DecimalsOutOfRange(t *testing.T) {
	for _, d := range []int{0, -1, 13} {
		cfg := validConfig()
		cfg.Display.Decimals = d
		err := cfg.Validate()
		require.Error(t, err, "decimals=%d must be rejected", d)
		assert.Contains(t, err.Error(), "display.decimals")
	}
}

// Validate reports every violation, not just the first.
func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := Config{
		Logging: LoggingConfig{Level: "bad", Format: "bad"},
		Display: DisplayConfig{Decimals: 99},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "display.decimals")
}

// A missing config file is not an error: defaults apply.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Display.Decimals)
	assert.True(t, cfg.Display.Color)
	assert.True(t, cfg.Display.Percent)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("logging:\n  level: debug\n  format: json\ndisplay:\n  decimals: 6\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 6, cfg.Display.Decimals)
}

func TestLoad_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: shout\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

// Decimals inside 1..12 validate; anything outside is rejected.
func TestValidate_DecimalsBounds_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := rapid.IntRange(-20, 30).Draw(rt, "decimals")
		cfg := validConfig()
		cfg.Display.Decimals = d
		err := cfg.Validate()
		if d >= 1 && d <= 12 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
