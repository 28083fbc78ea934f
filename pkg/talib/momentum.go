package talib

import "github.com/hsiuhsiu/talib-go/internal/bindings"

// RelativeStrengthIndex computes RSI over period (default 14), ranging from 0 to 100.
func RelativeStrengthIndex(in []float64, period int) (Series, error) {
	return real1("RelativeStrengthIndex", in, period, bindings.RSI)
}

// Momentum computes price - price[period ago] (default period 10).
func Momentum(in []float64, period int) (Series, error) {
	return real1("Momentum", in, period, bindings.MOM)
}

// RateOfChange computes ((price / prevPrice) - 1) * 100.
func RateOfChange(in []float64, period int) (Series, error) {
	return real1("RateOfChange", in, period, bindings.ROC)
}

// ChandeMomentumOscillator computes CMO over period (default 14).
func ChandeMomentumOscillator(in []float64, period int) (Series, error) {
	return real1("ChandeMomentumOscillator", in, period, bindings.CMO)
}

// Trix computes the 1-day rate of change of a triple smooth EMA.
func Trix(in []float64, period int) (Series, error) {
	return real1("Trix", in, period, bindings.TRIX)
}

// MovingAverageConvergenceDivergence computes MACD. The periods default to
// 12, 26 and 9. TA-Lib swaps fast and slow when slow is the shorter one.
func MovingAverageConvergenceDivergence(in []float64, fast, slow, signal int) (MACD, error) {
	const op = "MovingAverageConvergenceDivergence"
	n, err := length(op, in)
	if err != nil {
		return MACD{}, err
	}
	res, err := compute(op, n, 3, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.MACD(0, end, in, optInt(fast), optInt(slow), optInt(signal), beg, nb, outs[0], outs[1], outs[2])
	})
	if err != nil {
		return MACD{}, err
	}
	return MACD{MACD: res[0], Signal: res[1], Hist: res[2]}, nil
}

// AverageDirectionalMovementIndex computes ADX over period (default 14).
func AverageDirectionalMovementIndex(high, low, close []float64, period int) (Series, error) {
	return hlc1("AverageDirectionalMovementIndex", high, low, close, period, bindings.ADX)
}

// AverageDirectionalMovementIndexRating computes ADXR over period (default 14).
func AverageDirectionalMovementIndexRating(high, low, close []float64, period int) (Series, error) {
	return hlc1("AverageDirectionalMovementIndexRating", high, low, close, period, bindings.ADXR)
}

// PositiveDirectionalIndicator computes +DI.
func PositiveDirectionalIndicator(high, low, close []float64, period int) (Series, error) {
	return hlc1("PositiveDirectionalIndicator", high, low, close, period, bindings.PLUS_DI)
}

// NegativeDirectionalIndicator computes -DI.
func NegativeDirectionalIndicator(high, low, close []float64, period int) (Series, error) {
	return hlc1("NegativeDirectionalIndicator", high, low, close, period, bindings.MINUS_DI)
}

// PositiveDirectionalMovement computes +DM.
func PositiveDirectionalMovement(high, low []float64, period int) (Series, error) {
	return hl1("PositiveDirectionalMovement", high, low, period, bindings.PLUS_DM)
}

// NegativeDirectionalMovement computes -DM.
func NegativeDirectionalMovement(high, low []float64, period int) (Series, error) {
	return hl1("NegativeDirectionalMovement", high, low, period, bindings.MINUS_DM)
}

// CommodityChannelIndex computes CCI over period (default 14).
func CommodityChannelIndex(high, low, close []float64, period int) (Series, error) {
	return hlc1("CommodityChannelIndex", high, low, close, period, bindings.CCI)
}

// WilliamsR computes Williams' %R, ranging from -100 to 0.
func WilliamsR(high, low, close []float64, period int) (Series, error) {
	return hlc1("WilliamsR", high, low, close, period, bindings.WILLR)
}

// AroonIndicator computes Aroon down and up over period (default 14).
func AroonIndicator(high, low []float64, period int) (Aroon, error) {
	const op = "AroonIndicator"
	n, err := length(op, high, low)
	if err != nil {
		return Aroon{}, err
	}
	res, err := compute(op, n, 2, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.AROON(0, end, high, low, optInt(period), beg, nb, outs[0], outs[1])
	})
	if err != nil {
		return Aroon{}, err
	}
	return Aroon{Down: res[0], Up: res[1]}, nil
}

// AroonOscillator computes Aroon up minus Aroon down over period (default 14).
func AroonOscillator(high, low []float64, period int) (Series, error) {
	return hl1("AroonOscillator", high, low, period, bindings.AROONOSC)
}

// BalanceOfPower computes (close - open) / (high - low) for every bar.
func BalanceOfPower(open, high, low, close []float64) (Series, error) {
	return ohlc1("BalanceOfPower", open, high, low, close, bindings.BOP)
}

// StochasticSettings holds the optional inputs of StochasticOscillator. The
// zero value uses TA-Lib's defaults (5, 3 SMA, 3 SMA).
type StochasticSettings struct {
	FastK   int
	SlowK   int
	SlowKMA MovingAverageType
	SlowD   int
	SlowDMA MovingAverageType
}

// StochasticOscillator computes the slow stochastic.
func StochasticOscillator(high, low, close []float64, s StochasticSettings) (Stochastic, error) {
	const op = "StochasticOscillator"
	n, err := length(op, close, high, low)
	if err != nil {
		return Stochastic{}, err
	}
	res, err := compute(op, n, 2, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.STOCH(0, end, high, low, close,
			optInt(s.FastK), optInt(s.SlowK), s.SlowKMA.raw(), optInt(s.SlowD), s.SlowDMA.raw(),
			beg, nb, outs[0], outs[1])
	})
	if err != nil {
		return Stochastic{}, err
	}
	return Stochastic{SlowK: res[0], SlowD: res[1]}, nil
}

// MoneyFlowIndex computes MFI over period (default 14).
func MoneyFlowIndex(high, low, close, volume []float64, period int) (Series, error) {
	const op = "MoneyFlowIndex"
	n, err := length(op, close, high, low, volume)
	if err != nil {
		return Series{}, err
	}
	return single(op, n, func(end int32, beg, nb *int32, outs [][]float64) bindings.RetCode {
		return bindings.MFI(0, end, high, low, close, volume, optInt(period), beg, nb, outs[0])
	})
}
