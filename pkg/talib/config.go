package talib

import "github.com/hsiuhsiu/talib-go/pkg/talib/logging"

// Config holds the process-wide TA-Lib settings applied by Open.
type Config struct {
	// Compatibility selects Default or Metastock seeding. Metastock needs the
	// native library.
	Compatibility Compatibility

	// UnstablePeriods maps an unstable function name (see UnstableFunctions)
	// to its unstable period. "ALL" is applied first.
	UnstablePeriods map[string]int

	// Logger receives lifecycle events at debug level. Nil discards them.
	Logger logging.Logger
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
