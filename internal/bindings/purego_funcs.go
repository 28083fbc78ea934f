//go:build !cgo || !talib

package bindings

import (
	talib "github.com/markcheno/go-talib"
)

func lookbackOf(p intParam, v int32, f func(int32) int32) int32 {
	period, ok := p.resolve(v)
	if !ok {
		return -1
	}
	return f(period)
}

func minusOne(p int32) int32 { return p - 1 }
func same(p int32) int32     { return p }
func twice(p int32) int32    { return 2 * (p - 1) }
func thrice(p int32) int32   { return 3 * (p - 1) }
func trix(p int32) int32     { return 3*(p-1) + 1 }
func adx(p int32) int32      { return 2*p - 1 }
func adxr(p int32) int32     { return p + adx(p) - 1 }

func atr(p int32) int32 {
	if p <= 1 {
		return 1
	}
	return p
}

func dm(p int32) int32 {
	if p <= 1 {
		return 1
	}
	return p - 1
}

// Overlap studies.

func SMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, minusOne, talib.Sma, outBegIdx, outNBElement, outReal)
}

func SMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, minusOne)
}

func EMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, minusOne, talib.Ema, outBegIdx, outNBElement, outReal)
}

func EMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, minusOne)
}

func WMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, minusOne, talib.Wma, outBegIdx, outNBElement, outReal)
}

func WMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, minusOne)
}

func DEMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, twice, talib.Dema, outBegIdx, outNBElement, outReal)
}

func DEMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, twice)
}

func TEMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, thrice, talib.Tema, outBegIdx, outNBElement, outReal)
}

func TEMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, thrice)
}

func TRIMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, minusOne, talib.Trima, outBegIdx, outNBElement, outReal)
}

func TRIMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, minusOne)
}

func KAMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From2, same, talib.Kama, outBegIdx, outNBElement, outReal)
}

func KAMALookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From2, optInTimePeriod, same)
}

func MIDPOINT(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period14From2, minusOne, talib.MidPoint, outBegIdx, outNBElement, outReal)
}

func MIDPOINTLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, minusOne)
}

func MA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInMAType MAType, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inReal); rc != Success {
		return rc
	}
	period, ok := period30From1.resolve(optInTimePeriod)
	if !ok {
		return BadParam
	}
	maType, ok := resolveMAType(optInMAType)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outReal); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, maLookback(period, maType), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		in := inReal[lo:hi]
		if period == 1 {
			return [][]float64{append([]float64(nil), in...)}
		}
		return [][]float64{talib.Ma(in, int(period), goMA(maType))}
	}, outReal)
}

func MALookback(optInTimePeriod int32, optInMAType MAType) int32 {
	period, ok := period30From1.resolve(optInTimePeriod)
	if !ok {
		return -1
	}
	maType, ok := resolveMAType(optInMAType)
	if !ok {
		return -1
	}
	return maLookback(period, maType)
}

func BBANDS(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInNbDevUp, optInNbDevDn float64, optInMAType MAType,
	outBegIdx, outNBElement *int32, outRealUpperBand, outRealMiddleBand, outRealLowerBand []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inReal); rc != Success {
		return rc
	}
	period, ok := period5From2.resolve(optInTimePeriod)
	if !ok {
		return BadParam
	}
	up, ok := devParam.resolve(optInNbDevUp)
	if !ok {
		return BadParam
	}
	dn, ok := devParam.resolve(optInNbDevDn)
	if !ok {
		return BadParam
	}
	maType, ok := resolveMAType(optInMAType)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outRealUpperBand, outRealMiddleBand, outRealLowerBand); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, maLookback(period, maType), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		upper, middle, lower := talib.BBands(inReal[lo:hi], int(period), up, dn, goMA(maType))
		return [][]float64{upper, middle, lower}
	}, outRealUpperBand, outRealMiddleBand, outRealLowerBand)
}

func BBANDSLookback(optInTimePeriod int32, optInNbDevUp, optInNbDevDn float64, optInMAType MAType) int32 {
	period, ok := period5From2.resolve(optInTimePeriod)
	if !ok {
		return -1
	}
	if _, ok := devParam.resolve(optInNbDevUp); !ok {
		return -1
	}
	if _, ok := devParam.resolve(optInNbDevDn); !ok {
		return -1
	}
	maType, ok := resolveMAType(optInMAType)
	if !ok {
		return -1
	}
	return maLookback(period, maType)
}

var (
	sarAccel   = realParam{def: 0.02, min: 0, max: realLimit}
	sarMaximum = realParam{def: 0.2, min: 0, max: realLimit}
)

func SAR(startIdx, endIdx int32, inHigh, inLow []float64, optInAcceleration, optInMaximum float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inHigh, inLow); rc != Success {
		return rc
	}
	accel, ok := sarAccel.resolve(optInAcceleration)
	if !ok {
		return BadParam
	}
	maximum, ok := sarMaximum.resolve(optInMaximum)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outReal); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, 1, outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{talib.Sar(inHigh[lo:hi], inLow[lo:hi], accel, maximum)}
	}, outReal)
}

func SARLookback(optInAcceleration, optInMaximum float64) int32 {
	if _, ok := sarAccel.resolve(optInAcceleration); !ok {
		return -1
	}
	if _, ok := sarMaximum.resolve(optInMaximum); !ok {
		return -1
	}
	return 1
}

// Momentum indicators.

func RSI(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period14From2, same, talib.Rsi, outBegIdx, outNBElement, outReal)
}

func RSILookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, same)
}

func MOM(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period10From1, same, talib.Mom, outBegIdx, outNBElement, outReal)
}

func MOMLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period10From1, optInTimePeriod, same)
}

func ROC(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period10From1, same, talib.Roc, outBegIdx, outNBElement, outReal)
}

func ROCLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period10From1, optInTimePeriod, same)
}

func CMO(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period14From2, same, talib.Cmo, outBegIdx, outNBElement, outReal)
}

func CMOLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, same)
}

func TRIX(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return realPeriod(startIdx, endIdx, inReal, optInTimePeriod, period30From1, trix, talib.Trix, outBegIdx, outNBElement, outReal)
}

func TRIXLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period30From1, optInTimePeriod, trix)
}

var (
	macdFast   = intParam{def: 12, min: 2, max: 100000}
	macdSlow   = intParam{def: 26, min: 2, max: 100000}
	macdSignal = intParam{def: 9, min: 1, max: 100000}
)

func macdPeriods(fastV, slowV, signalV int32) (fast, slow, signal int32, ok bool) {
	if fast, ok = macdFast.resolve(fastV); !ok {
		return
	}
	if slow, ok = macdSlow.resolve(slowV); !ok {
		return
	}
	if signal, ok = macdSignal.resolve(signalV); !ok {
		return
	}
	if slow < fast {
		fast, slow = slow, fast
	}
	return fast, slow, signal, true
}

func MACD(startIdx, endIdx int32, inReal []float64, optInFastPeriod, optInSlowPeriod, optInSignalPeriod int32,
	outBegIdx, outNBElement *int32, outMACD, outMACDSignal, outMACDHist []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inReal); rc != Success {
		return rc
	}
	fast, slow, signal, ok := macdPeriods(optInFastPeriod, optInSlowPeriod, optInSignalPeriod)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outMACD, outMACDSignal, outMACDHist); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, (slow-1)+(signal-1), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		m, s, h := talib.Macd(inReal[lo:hi], int(fast), int(slow), int(signal))
		return [][]float64{m, s, h}
	}, outMACD, outMACDSignal, outMACDHist)
}

func MACDLookback(optInFastPeriod, optInSlowPeriod, optInSignalPeriod int32) int32 {
	_, slow, signal, ok := macdPeriods(optInFastPeriod, optInSlowPeriod, optInSignalPeriod)
	if !ok {
		return -1
	}
	return (slow - 1) + (signal - 1)
}

func ADX(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From2, adx, talib.Adx, outBegIdx, outNBElement, outReal)
}

func ADXLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, adx)
}

func ADXR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From2, adxr, talib.AdxR, outBegIdx, outNBElement, outReal)
}

func ADXRLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, adxr)
}

func PLUS_DI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From1, atr, talib.PlusDI, outBegIdx, outNBElement, outReal)
}

func PLUS_DILookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, atr)
}

func MINUS_DI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From1, atr, talib.MinusDI, outBegIdx, outNBElement, outReal)
}

func MINUS_DILookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, atr)
}

func PLUS_DM(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlPeriod(startIdx, endIdx, inHigh, inLow, optInTimePeriod, period14From1, dm, talib.PlusDM, outBegIdx, outNBElement, outReal)
}

func PLUS_DMLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, dm)
}

func MINUS_DM(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlPeriod(startIdx, endIdx, inHigh, inLow, optInTimePeriod, period14From1, dm, talib.MinusDM, outBegIdx, outNBElement, outReal)
}

func MINUS_DMLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, dm)
}

func CCI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From2, minusOne, talib.Cci, outBegIdx, outNBElement, outReal)
}

func CCILookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, minusOne)
}

func WILLR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From2, minusOne, talib.WillR, outBegIdx, outNBElement, outReal)
}

func WILLRLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, minusOne)
}

func AROON(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outAroonDown, outAroonUp []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inHigh, inLow); rc != Success {
		return rc
	}
	period, ok := period14From2.resolve(optInTimePeriod)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outAroonDown, outAroonUp); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, period, outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		down, up := talib.Aroon(inHigh[lo:hi], inLow[lo:hi], int(period))
		return [][]float64{down, up}
	}, outAroonDown, outAroonUp)
}

func AROONLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, same)
}

func AROONOSC(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlPeriod(startIdx, endIdx, inHigh, inLow, optInTimePeriod, period14From2, same, talib.AroonOsc, outBegIdx, outNBElement, outReal)
}

func AROONOSCLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, same)
}

func BOP(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inOpen, inHigh, inLow, inClose}, func(in [][]float64) []float64 {
		return talib.Bop(in[0], in[1], in[2], in[3])
	}, outBegIdx, outNBElement, outReal)
}

func BOPLookback() int32 { return 0 }

var (
	stochFastK = intParam{def: 5, min: 1, max: 100000}
	stochSlow  = intParam{def: 3, min: 1, max: 100000}
)

type stochParams struct {
	fastK, slowK, slowD int32
	slowKMA, slowDMA    MAType
}

func resolveStoch(fastK, slowK int32, slowKMA MAType, slowD int32, slowDMA MAType) (p stochParams, ok bool) {
	if p.fastK, ok = stochFastK.resolve(fastK); !ok {
		return
	}
	if p.slowK, ok = stochSlow.resolve(slowK); !ok {
		return
	}
	if p.slowKMA, ok = resolveMAType(slowKMA); !ok {
		return
	}
	if p.slowD, ok = stochSlow.resolve(slowD); !ok {
		return
	}
	if p.slowDMA, ok = resolveMAType(slowDMA); !ok {
		return
	}
	return p, true
}

func (p stochParams) lookback() int32 {
	return (p.fastK - 1) + maLookback(p.slowK, p.slowKMA) + maLookback(p.slowD, p.slowDMA)
}

func STOCH(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInFastKPeriod, optInSlowKPeriod int32, optInSlowKMAType MAType,
	optInSlowDPeriod int32, optInSlowDMAType MAType, outBegIdx, outNBElement *int32, outSlowK, outSlowD []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inHigh, inLow, inClose); rc != Success {
		return rc
	}
	p, ok := resolveStoch(optInFastKPeriod, optInSlowKPeriod, optInSlowKMAType, optInSlowDPeriod, optInSlowDMAType)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outSlowK, outSlowD); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, p.lookback(), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		k, d := talib.Stoch(inHigh[lo:hi], inLow[lo:hi], inClose[lo:hi],
			int(p.fastK), int(p.slowK), goMA(p.slowKMA), int(p.slowD), goMA(p.slowDMA))
		return [][]float64{k, d}
	}, outSlowK, outSlowD)
}

func STOCHLookback(optInFastKPeriod, optInSlowKPeriod int32, optInSlowKMAType MAType, optInSlowDPeriod int32, optInSlowDMAType MAType) int32 {
	p, ok := resolveStoch(optInFastKPeriod, optInSlowKPeriod, optInSlowKMAType, optInSlowDPeriod, optInSlowDMAType)
	if !ok {
		return -1
	}
	return p.lookback()
}

// Volatility indicators.

func ATR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From1, atr, talib.Atr, outBegIdx, outNBElement, outReal)
}

func ATRLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, atr)
}

func NATR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlcPeriod(startIdx, endIdx, inHigh, inLow, inClose, optInTimePeriod, period14From1, atr, talib.Natr, outBegIdx, outNBElement, outReal)
}

func NATRLookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From1, optInTimePeriod, atr)
}

func TRANGE(startIdx, endIdx int32, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 1, [][]float64{inHigh, inLow, inClose}, func(in [][]float64) []float64 {
		return talib.TRange(in[0], in[1], in[2])
	}, outBegIdx, outNBElement, outReal)
}

func TRANGELookback() int32 { return 1 }

var stdDevParam = realParam{def: 1, min: -realLimit, max: realLimit}

func STDDEV(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInNbDev float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inReal); rc != Success {
		return rc
	}
	period, ok := period5From2.resolve(optInTimePeriod)
	if !ok {
		return BadParam
	}
	nbDev, ok := stdDevParam.resolve(optInNbDev)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outReal); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, period-1, outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{talib.StdDev(inReal[lo:hi], int(period), nbDev)}
	}, outReal)
}

func STDDEVLookback(optInTimePeriod int32, optInNbDev float64) int32 {
	if _, ok := stdDevParam.resolve(optInNbDev); !ok {
		return -1
	}
	return lookbackOf(period5From2, optInTimePeriod, minusOne)
}

// Price transforms.

func TYPPRICE(startIdx, endIdx int32, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inHigh, inLow, inClose}, func(in [][]float64) []float64 {
		return talib.TypPrice(in[0], in[1], in[2])
	}, outBegIdx, outNBElement, outReal)
}

func TYPPRICELookback() int32 { return 0 }

func MEDPRICE(startIdx, endIdx int32, inHigh, inLow []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inHigh, inLow}, func(in [][]float64) []float64 {
		return talib.MedPrice(in[0], in[1])
	}, outBegIdx, outNBElement, outReal)
}

func MEDPRICELookback() int32 { return 0 }

func AVGPRICE(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inOpen, inHigh, inLow, inClose}, func(in [][]float64) []float64 {
		return talib.AvgPrice(in[0], in[1], in[2], in[3])
	}, outBegIdx, outNBElement, outReal)
}

func AVGPRICELookback() int32 { return 0 }

func MIDPRICE(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return hlPeriod(startIdx, endIdx, inHigh, inLow, optInTimePeriod, period14From2, minusOne, talib.MidPrice, outBegIdx, outNBElement, outReal)
}

func MIDPRICELookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, minusOne)
}

// Volume indicators.

func OBV(startIdx, endIdx int32, inReal, inVolume []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inReal, inVolume}, func(in [][]float64) []float64 {
		return talib.Obv(in[0], in[1])
	}, outBegIdx, outNBElement, outReal)
}

func OBVLookback() int32 { return 0 }

func AD(startIdx, endIdx int32, inHigh, inLow, inClose, inVolume []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	return prices(startIdx, endIdx, 0, [][]float64{inHigh, inLow, inClose, inVolume}, func(in [][]float64) []float64 {
		return talib.Ad(in[0], in[1], in[2], in[3])
	}, outBegIdx, outNBElement, outReal)
}

func ADLookback() int32 { return 0 }

func MFI(startIdx, endIdx int32, inHigh, inLow, inClose, inVolume []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, inHigh, inLow, inClose, inVolume); rc != Success {
		return rc
	}
	period, ok := period14From2.resolve(optInTimePeriod)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, outReal); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, period, outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{talib.Mfi(inHigh[lo:hi], inLow[lo:hi], inClose[lo:hi], inVolume[lo:hi], int(period))}
	}, outReal)
}

func MFILookback(optInTimePeriod int32) int32 {
	return lookbackOf(period14From2, optInTimePeriod, same)
}

// Pattern recognition. go-talib ships no candlestick code, so these only
// validate their arguments.

func candle(startIdx, endIdx int32, ins [][]float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, ins...); rc != Success {
		return rc
	}
	if rc := checkIntOutputs(startIdx, endIdx, outInteger); rc != Success {
		return rc
	}
	return notSupported(outBegIdx, outNBElement)
}

func CDLDOJI(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	return candle(startIdx, endIdx, [][]float64{inOpen, inHigh, inLow, inClose}, outBegIdx, outNBElement, outInteger)
}

// CDLDOJILookback uses the default candle settings (BodyDoji averaged over 10).
func CDLDOJILookback() int32 { return 10 }

func CDLHAMMER(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	return candle(startIdx, endIdx, [][]float64{inOpen, inHigh, inLow, inClose}, outBegIdx, outNBElement, outInteger)
}

func CDLHAMMERLookback() int32 { return 11 }

func CDLENGULFING(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	return candle(startIdx, endIdx, [][]float64{inOpen, inHigh, inLow, inClose}, outBegIdx, outNBElement, outInteger)
}

func CDLENGULFINGLookback() int32 { return 2 }
