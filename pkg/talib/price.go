package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// TypicalPrice computes (high + low + close) / 3.
func TypicalPrice(high, low, close []float64) (Series, error) {
	const op = "TypicalPrice"
	n, err := length(op, close, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.TYPPRICE(0, end, high, low, close, beg, nb, outs[0])
	})
}

// MedianPrice computes (high + low) / 2.
func MedianPrice(high, low []float64) (Series, error) {
	const op = "MedianPrice"
	n, err := length(op, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.MEDPRICE(0, end, high, low, beg, nb, outs[0])
	})
}

// AveragePrice computes (open + high + low + close) / 4.
func AveragePrice(open, high, low, close []float64) (Series, error) {
	return ohlc1("AveragePrice", open, high, low, close, bindings.AVGPRICE)
}
