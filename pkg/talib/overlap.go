package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// SimpleMovingAverage computes SMA over period (default 30).
//
// The first value belongs to input index period-1, which is reported as
// Series.Begin.
func SimpleMovingAverage(in []float64, period int) (Series, error) {
	return real1("SimpleMovingAverage", in, period, bindings.SMA)
}

// ExponentialMovingAverage computes EMA over period (default 30).
func ExponentialMovingAverage(in []float64, period int) (Series, error) {
	return real1("ExponentialMovingAverage", in, period, bindings.EMA)
}

// WeightedMovingAverage computes WMA over period (default 30).
func WeightedMovingAverage(in []float64, period int) (Series, error) {
	return real1("WeightedMovingAverage", in, period, bindings.WMA)
}

// DoubleExponentialMovingAverage computes DEMA over period (default 30).
func DoubleExponentialMovingAverage(in []float64, period int) (Series, error) {
	return real1("DoubleExponentialMovingAverage", in, period, bindings.DEMA)
}

// TripleExponentialMovingAverage computes TEMA over period (default 30).
func TripleExponentialMovingAverage(in []float64, period int) (Series, error) {
	return real1("TripleExponentialMovingAverage", in, period, bindings.TEMA)
}

// TriangularMovingAverage computes TRIMA over period (default 30).
func TriangularMovingAverage(in []float64, period int) (Series, error) {
	return real1("TriangularMovingAverage", in, period, bindings.TRIMA)
}

// KaufmanAdaptiveMovingAverage computes KAMA over period (default 30).
func KaufmanAdaptiveMovingAverage(in []float64, period int) (Series, error) {
	return real1("KaufmanAdaptiveMovingAverage", in, period, bindings.KAMA)
}

// MidPoint computes (highest + lowest) / 2 of in over period (default 14).
func MidPoint(in []float64, period int) (Series, error) {
	return real1("MidPoint", in, period, bindings.MIDPOINT)
}

// MovingAverage computes the moving average selected by maType (default SMA)
// over period (default 30). A period of 1 returns the input unchanged.
func MovingAverage(in []float64, period int, maType MovingAverageType) (Series, error) {
	const op = "MovingAverage"
	n, err := length(op, in)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.MA(0, end, in, optInt(period), maType.raw(), beg, nb, outs[0])
	})
}

// BollingerBands computes BBANDS. period defaults to 5, the deviation
// multipliers to 2 and maType to ExponentialMovingAverageType.
func BollingerBands(in []float64, period int, devUp, devDown *float64, maType MovingAverageType) (Bands, error) {
	const op = "BollingerBands"
	n, err := length(op, in)
	if err != nil {
		return Bands{}, err
	}
	ma := maType.or(ExponentialMovingAverageType).raw()
	res, err := compute(op, n, 3, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.BBANDS(0, end, in, optInt(period), optReal(devUp), optReal(devDown), ma, beg, nb, outs[0], outs[1], outs[2])
	})
	if err != nil {
		return Bands{}, err
	}
	return Bands{Upper: res[0], Middle: res[1], Lower: res[2]}, nil
}

// MidPrice computes (highest high + lowest low) / 2 over period (default 14).
func MidPrice(high, low []float64, period int) (Series, error) {
	return hl1("MidPrice", high, low, period, bindings.MIDPRICE)
}

// ParabolicSAR computes SAR. acceleration defaults to 0.02 and maximum to 0.2.
func ParabolicSAR(high, low []float64, acceleration, maximum *float64) (Series, error) {
	const op = "ParabolicSAR"
	n, err := length(op, high, low)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.SAR(0, end, high, low, optReal(acceleration), optReal(maximum), beg, nb, outs[0])
	})
}
