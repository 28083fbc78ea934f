package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// OnBalanceVolume computes OBV. volume must be at least as long as close.
func OnBalanceVolume(close, volume []float64) (Series, error) {
	const op = "OnBalanceVolume"
	n, err := length(op, close, volume)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.OBV(0, end, close, volume, beg, nb, outs[0])
	})
}

// AccumulationDistribution computes the Chaikin A/D line.
func AccumulationDistribution(high, low, close, volume []float64) (Series, error) {
	const op = "AccumulationDistribution"
	n, err := length(op, close, high, low, volume)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.AD(0, end, high, low, close, volume, beg, nb, outs[0])
	})
}
