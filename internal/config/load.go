package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. FITCORE_LOG_LEVEL.
const EnvPrefix = "FITCORE"

// FlagKeyAnnotation is the pflag annotation holding the config key a flag
// overrides.
const FlagKeyAnnotation = "viper-key"

// configFileEnv names an explicit config file, bypassing the search paths.
const configFileEnv = EnvPrefix + "_CONFIG_FILE"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags behaves like Load, but flags bound with BindFlag and set
// explicitly on the command line take precedence over every other source.
func LoadWithFlags(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.timezone", "UTC")
	v.SetDefault("metrics.fixed_date", "")
	v.SetDefault("metrics.water_ml_per_kg", 0)
	v.SetDefault("metrics.one_rep_max_rep_limit", 0)

	// 2. Optional config file
	if file := os.Getenv(configFileEnv); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fitcore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fitcore"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 3. Environment variables with FITCORE_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Command-line flags
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			keys := f.Annotations[FlagKeyAnnotation]
			if len(keys) == 0 {
				return
			}
			if err := v.BindPFlag(keys[0], f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	// 5. Unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// 6. Validate
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// BindFlag marks the flag name in flags as an override for the config key.
func BindFlag(flags *pflag.FlagSet, name, key string) error {
	return flags.SetAnnotation(name, FlagKeyAnnotation, []string{key})
}
