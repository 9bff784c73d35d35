package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITCORE_LOG_LEVEL":          "",
		"FITCORE_METRICS_TIMEZONE":   "",
		"FITCORE_METRICS_FIXED_DATE": "",
		"FITCORE_CONFIG_FILE":        "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.Log.Level, "Default log level should be 'info'")
	assert.Equal(t, "UTC", cfg.Metrics.Timezone, "Default timezone should be UTC")
	assert.Empty(t, cfg.Metrics.FixedDate, "No date should be pinned by default")
	assert.Zero(t, cfg.Metrics.OneRepMaxRepLimit)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITCORE_LOG_LEVEL":                     "debug",
		"FITCORE_METRICS_TIMEZONE":              "Asia/Tokyo",
		"FITCORE_METRICS_FIXED_DATE":            "2024-06-14",
		"FITCORE_METRICS_ONE_REP_MAX_REP_LIMIT": "15",
		"FITCORE_CONFIG_FILE":                   "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "debug", cfg.Log.Level, "Log level should be loaded from environment variables")
	assert.Equal(t, "Asia/Tokyo", cfg.Metrics.Timezone, "Timezone should be loaded from environment variables")
	assert.Equal(t, "2024-06-14", cfg.Metrics.FixedDate, "Fixed date should be loaded from environment variables")
	assert.Equal(t, 15, cfg.Metrics.OneRepMaxRepLimit)
}

// TestLoadFromFile verifies that a config file is read and that the
// environment still takes precedence over it.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitcore.yaml")
	content := "log:\n  level: warn\nmetrics:\n  timezone: Europe/Paris\n  water_ml_per_kg: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cleanup := setupEnv(t, map[string]string{
		"FITCORE_CONFIG_FILE":        path,
		"FITCORE_LOG_LEVEL":          "error",
		"FITCORE_METRICS_TIMEZONE":   "",
		"FITCORE_METRICS_FIXED_DATE": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "Environment should override the file")
	assert.Equal(t, "Europe/Paris", cfg.Metrics.Timezone)
	assert.Equal(t, 40.0, cfg.Metrics.WaterMLPerKg)
}

// TestLoadMissingExplicitFile verifies that an explicitly named config file must exist.
func TestLoadMissingExplicitFile(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITCORE_CONFIG_FILE": filepath.Join(t.TempDir(), "missing.yaml"),
	})
	defer cleanup()

	cfg, err := Load()

	assert.ErrorContains(t, err, "reading config file")
	assert.Nil(t, cfg)
}

// TestLoadWithFlags verifies that explicitly set flags override the environment.
func TestLoadWithFlags(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"FITCORE_LOG_LEVEL":          "warn",
		"FITCORE_METRICS_FIXED_DATE": "2024-01-01",
		"FITCORE_METRICS_TIMEZONE":   "",
		"FITCORE_CONFIG_FILE":        "",
	})
	defer cleanup()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("today", "", "")
	flags.String("kind", "", "")
	require.NoError(t, BindFlag(flags, "log-level", "log.level"))
	require.NoError(t, BindFlag(flags, "today", "metrics.fixed_date"))
	require.NoError(t, flags.Parse([]string{"--today", "2024-06-15", "--kind", "set"}))

	cfg, err := LoadWithFlags(flags)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "An unset flag must not override the environment")
	assert.Equal(t, "2024-06-15", cfg.Metrics.FixedDate, "A set flag overrides the environment")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"FITCORE_LOG_LEVEL": "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Unknown timezone",
			envVars: map[string]string{
				"FITCORE_METRICS_TIMEZONE": "Mars/Olympus_Mons",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Malformed fixed date",
			envVars: map[string]string{
				"FITCORE_METRICS_FIXED_DATE": "14/06/2024",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative rep limit",
			envVars: map[string]string{
				"FITCORE_METRICS_ONE_REP_MAX_REP_LIMIT": "-1",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.envVars["FITCORE_CONFIG_FILE"] = ""
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestMetricsConfigClock(t *testing.T) {
	tokyo, err := MetricsConfig{Timezone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)

	clock, err := MetricsConfig{Timezone: "Asia/Tokyo", FixedDate: "2024-06-14"}.Clock(tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 14, 12, 0, 0, 0, tokyo), clock())

	clock, err = MetricsConfig{Timezone: "UTC"}.Clock(time.UTC)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), clock(), time.Minute)

	_, err = MetricsConfig{Timezone: "Nowhere/Special"}.Location()
	assert.Error(t, err)
}
