// Package metrics derives physiological and nutritional metrics from user
// measurements and activity logs: energy expenditure, body composition, macro
// targets, training load, hydration, progress and streaks.
//
// Every function is a pure, deterministic transform. Inputs are assumed to
// have passed validation already; degenerate arithmetic (for example a zero
// calorie denominator) yields NaN or Inf instead of an error. Errors are only
// returned for enum values outside their closed set and unparseable dates.
//
// Time-dependent operations take "now" explicitly. The Calculator service
// supplies it from an injectable clock.
package metrics
