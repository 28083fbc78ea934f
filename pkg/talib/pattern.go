package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// Candlestick recognition needs the native library. Without -tags talib these
// return an error wrapping ErrNotSupported.

// Doji reports 100 where the body is small relative to the range.
func Doji(open, high, low, close []float64) (IntSeries, error) {
	return pattern("Doji", open, high, low, close, bindings.CDLDOJI)
}

// Hammer reports 100 for a small body with a long lower shadow after a decline.
func Hammer(open, high, low, close []float64) (IntSeries, error) {
	return pattern("Hammer", open, high, low, close, bindings.CDLHAMMER)
}

// Engulfing reports bullish (100) and bearish (-100) engulfing patterns.
func Engulfing(open, high, low, close []float64) (IntSeries, error) {
	return pattern("Engulfing", open, high, low, close, bindings.CDLENGULFING)
}
