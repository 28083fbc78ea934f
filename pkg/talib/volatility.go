package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// AverageTrueRange computes ATR over period (default 14).
func AverageTrueRange(high, low, close []float64, period int) (Series, error) {
	return hlc1("AverageTrueRange", high, low, close, period, bindings.ATR)
}

// NormalizedAverageTrueRange computes ATR as a percentage of close.
func NormalizedAverageTrueRange(high, low, close []float64, period int) (Series, error) {
	return hlc1("NormalizedAverageTrueRange", high, low, close, period, bindings.NATR)
}

// TrueRange computes TRANGE. The first value belongs to input index 1.
func TrueRange(high, low, close []float64) (Series, error) {
	const op = "TrueRange"
	n, err := length(op, close, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.TRANGE(0, end, high, low, close, beg, nb, outs[0])
	})
}

// StandardDeviation computes STDDEV over period (default 5) scaled by
// deviations (default 1).
func StandardDeviation(in []float64, period int, deviations *float64) (Series, error) {
	const op = "StandardDeviation"
	n, err := length(op, in)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.STDDEV(0, end, in, optInt(period), optReal(deviations), beg, nb, outs[0])
	})
}
