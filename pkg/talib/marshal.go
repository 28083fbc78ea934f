package talib

import (
	"math"

	"github.com/hsiuhsiu/talib-go/internal/bindings"
)

// Every wrapper follows the same steps: validate the inputs, size the output
// buffers to the input, call TA-Lib over [0, len-1] and keep the first
// outNBElement values.

// rawCall invokes one TA function over [0, endIdx] writing into outs.
type rawCall func(endIdx int32, outBegIdx, outNBElement *int32, outs [][]float64) bindings.RetCode

// Float returns a pointer to v for the optional real parameters.
func Float(v float64) *float64 { return &v }

// optInt maps the zero value to TA_INTEGER_DEFAULT. Negative values are
// forwarded unchanged so TA-Lib rejects them.
func optInt(v int) int32 {
	if v == 0 {
		return bindings.IntegerDefault
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32+1 {
		return math.MinInt32 + 1
	}
	return int32(v)
}

func optReal(v *float64) float64 {
	if v == nil {
		return bindings.RealDefault
	}
	return *v
}

// length checks primary and every secondary input and returns the number of
// elements to process.
func length(op string, primary []float64, others ...[]float64) (int, error) {
	n := len(primary)
	if n == 0 {
		return 0, inputError(op, ErrEmptyInput)
	}
	if n > math.MaxInt32 {
		return 0, inputError(op, ErrInputLength)
	}
	for _, o := range others {
		if len(o) < n {
			return 0, inputError(op, ErrInputLength)
		}
	}
	return n, nil
}

func compute(op string, n, nOut int, call rawCall) ([]Series, error) {
	outs := make([][]float64, nOut)
	for i := range outs {
		outs[i] = make([]float64, n)
	}
	var beg, nb int32
	if err := codeError(op, call(int32(n-1), &beg, &nb, outs)); err != nil {
		return nil, err
	}
	res := make([]Series, nOut)
	for i, out := range outs {
		res[i] = Series{Begin: int(beg), Values: out[:nb:nb]}
	}
	return res, nil
}

func single(op string, n int, call rawCall) (Series, error) {
	res, err := compute(op, n, 1, call)
	if err != nil {
		return Series{}, err
	}
	return res[0], nil
}

// real1 covers the one input, one period, one output shape.
func real1(op string, in []float64, period int,
	fn func(startIdx, endIdx int32, in []float64, period int32, outBegIdx, outNBElement *int32, out []float64) bindings.RetCode) (Series, error) {
	n, err := length(op, in)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return fn(0, end, in, optInt(period), beg, nb, outs[0])
	})
}

// hlc1 covers the high, low, close plus period shape.
func hlc1(op string, high, low, close []float64, period int,
	fn func(startIdx, endIdx int32, high, low, close []float64, period int32, outBegIdx, outNBElement *int32, out []float64) bindings.RetCode) (Series, error) {
	n, err := length(op, close, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return fn(0, end, high, low, close, optInt(period), beg, nb, outs[0])
	})
}

// hl1 covers the high, low plus period shape.
func hl1(op string, high, low []float64, period int,
	fn func(startIdx, endIdx int32, high, low []float64, period int32, outBegIdx, outNBElement *int32, out []float64) bindings.RetCode) (Series, error) {
	n, err := length(op, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return fn(0, end, high, low, optInt(period), beg, nb, outs[0])
	})
}

// ohlc1 covers the parameterless open, high, low, close shape.
func ohlc1(op string, open, high, low, close []float64,
	fn func(startIdx, endIdx int32, open, high, low, close []float64, outBegIdx, outNBElement *int32, out []float64) bindings.RetCode) (Series, error) {
	n, err := length(op, close, open, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return fn(0, end, open, high, low, close, beg, nb, outs[0])
	})
}

// pattern covers candlestick recognition, which writes integers.
func pattern(op string, open, high, low, close []float64,
	fn func(startIdx, endIdx int32, open, high, low, close []float64, outBegIdx, outNBElement *int32, out []int32) bindings.RetCode) (IntSeries, error) {
	n, err := length(op, close, open, high, low)
	if err != nil {
		return IntSeries{}, err
	}
	out := make([]int32, n)
	var beg, nb int32
	if err := codeError(op, fn(0, int32(n-1), open, high, low, close, &beg, &nb, out)); err != nil {
		return IntSeries{}, err
	}
	values := make([]int, nb)
	for i := range values {
		values[i] = int(out[i])
	}
	return IntSeries{Begin: int(beg), Values: values}, nil
}
