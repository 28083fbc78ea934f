// Package cli implements the talib-go command: version, functions and
// compute, configured through cobra flags, a viper-managed YAML file and
// TALIB_* environment variables.
package cli
