package config

import (
	"fmt"
	"time"

	// Zone names resolve on hosts without a system tz database
	_ "time/tzdata"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// LogConfig contains the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// MetricsConfig controls how the calculators resolve "today" and which
// default parameters they override.
type MetricsConfig struct {
	// IANA zone whose calendar defines today for ages and streaks
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`

	// Pins today to a fixed YYYY-MM-DD date for reproducible output
	FixedDate string `mapstructure:"fixed_date" validate:"omitempty,datetime=2006-01-02"`

	// Zero keeps the built-in default
	WaterMLPerKg      float64 `mapstructure:"water_ml_per_kg" validate:"gte=0"`
	OneRepMaxRepLimit int     `mapstructure:"one_rep_max_rep_limit" validate:"gte=0"`
}

// Location loads the configured time zone.
func (m MetricsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", m.Timezone, err)
	}
	return loc, nil
}

// Clock returns the function the calculators use as "now". With FixedDate set
// it always returns noon of that date in loc, otherwise the wall clock.
func (m MetricsConfig) Clock(loc *time.Location) (func() time.Time, error) {
	if m.FixedDate == "" {
		return time.Now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", m.FixedDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parsing fixed date %q: %w", m.FixedDate, err)
	}
	fixed := day.Add(12 * time.Hour)
	return func() time.Time { return fixed }, nil
}
