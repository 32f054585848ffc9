package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"ALMANAC_INPUT",
	"ALMANAC_LOG_LEVEL",
	"ALMANAC_LOG_FORMAT",
	"ALMANAC_OUTPUT",
	"ALMANAC_WORKERS",
}

// clearEnvVars unsets every ALMANAC_* variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, string(DefaultLogFormat), cfg.LogFormat)
	assert.Equal(t, string(DefaultOutput), cfg.Output)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ALMANAC_INPUT", "day5.txt")
	t.Setenv("ALMANAC_LOG_FORMAT", "JSON")
	t.Setenv("ALMANAC_OUTPUT", "yaml")
	t.Setenv("ALMANAC_WORKERS", "8")

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg, err := env.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, "day5.txt", cfg.Input)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoadFromEnv_BadWorkers(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ALMANAC_WORKERS", "many")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{Input: "x", LogLevel: "INFO", LogFormat: LogFormatPretty, Output: OutputText, Workers: 1}
	require.NoError(t, good.Validate())

	bad := good
	bad.LogFormat = "xml"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownLogFormat)

	bad = good
	bad.Output = "csv"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownOutput)

	bad = good
	bad.Workers = 0
	assert.ErrorIs(t, bad.Validate(), ErrBadWorkers)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ALMANAC_INPUT=from-dotenv.txt\nALMANAC_WORKERS=3\n"), 0o600))
	// godotenv.Load sets real process variables; remove them afterwards.
	t.Cleanup(func() {
		_ = os.Unsetenv("ALMANAC_INPUT")
		_ = os.Unsetenv("ALMANAC_WORKERS")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.txt", cfg.Input)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
