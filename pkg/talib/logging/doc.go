// Package logging provides a minimal logging facade for the talib wrapper.
//
// Library lifecycle events (initialise, configure, shut down, catalogue
// walks) are written at debug level through the Logger interface, which New
// adapts onto a *slog.Logger.
//
// # Default Implementation
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	lib, err := talib.Open(talib.Config{Logger: logging.New(slog.New(handler))})
//
// Passing nil to New binds to slog.Default(). Discard returns a Logger that
// drops every record, which is what talib uses when Config.Logger is nil.
package logging
