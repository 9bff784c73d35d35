// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, FITCORE_ environment
// variables and command-line flags). It provides type-safe access to the
// settings of the host program while keeping configuration details out of
// the metric and validation packages.
package config
