//go:build cgo && talib

package bindings

/*
#cgo LDFLAGS: -lta_lib -lm
#include <ta-lib/ta_libc.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

var (
	mu          sync.Mutex
	initialized bool
)

// Initialize calls TA_Initialize once per process lifetime until Shutdown.
func Initialize() RetCode {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return Success
	}
	rc := RetCode(C.TA_Initialize())
	if rc == Success {
		initialized = true
	}
	return rc
}

func Shutdown() RetCode {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		return LibNotInitialize
	}
	rc := RetCode(C.TA_Shutdown())
	if rc == Success {
		initialized = false
	}
	return rc
}

// Version returns TA_GetVersionString.
func Version() string { return C.GoString(C.TA_GetVersionString()) }

func Backend() string { return BackendNative }

func SetUnstablePeriod(id FuncUnstID, period int32) RetCode {
	return RetCode(C.TA_SetUnstablePeriod(C.TA_FuncUnstId(id), C.uint(period)))
}

func GetUnstablePeriod(id FuncUnstID) int32 {
	return int32(C.TA_GetUnstablePeriod(C.TA_FuncUnstId(id)))
}

func SetCompatibility(c Compatibility) RetCode {
	return RetCode(C.TA_SetCompatibility(C.TA_Compatibility(c)))
}

func GetCompatibility() Compatibility {
	return Compatibility(C.TA_GetCompatibility())
}

// guard does in Go what C cannot: make sure every slice covers the indexes
// TA-Lib will touch before its address crosses the boundary.
func guard(startIdx, endIdx int32, outBegIdx, outNBElement *int32, ins [][]float64, outs ...[]float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, ins...); rc != Success {
		return rc
	}
	return checkOutputs(startIdx, endIdx, outs...)
}

func in(s ...[]float64) [][]float64 { return s }

func dp(s []float64) *C.double { return (*C.double)(unsafe.Pointer(&s[0])) }

func ip(p *int32) *C.int { return (*C.int)(unsafe.Pointer(p)) }

func ci(v int32) C.int { return C.int(v) }

func cma(t MAType) C.TA_MAType { return C.TA_MAType(t) }

// Overlap studies.

func SMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_SMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func SMALookback(optInTimePeriod int32) int32 { return int32(C.TA_SMA_Lookback(ci(optInTimePeriod))) }

func EMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_EMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func EMALookback(optInTimePeriod int32) int32 { return int32(C.TA_EMA_Lookback(ci(optInTimePeriod))) }

func WMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_WMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func WMALookback(optInTimePeriod int32) int32 { return int32(C.TA_WMA_Lookback(ci(optInTimePeriod))) }

func DEMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_DEMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func DEMALookback(optInTimePeriod int32) int32 { return int32(C.TA_DEMA_Lookback(ci(optInTimePeriod))) }

func TEMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_TEMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func TEMALookback(optInTimePeriod int32) int32 { return int32(C.TA_TEMA_Lookback(ci(optInTimePeriod))) }

func TRIMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_TRIMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func TRIMALookback(optInTimePeriod int32) int32 { return int32(C.TA_TRIMA_Lookback(ci(optInTimePeriod))) }

func KAMA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_KAMA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func KAMALookback(optInTimePeriod int32) int32 { return int32(C.TA_KAMA_Lookback(ci(optInTimePeriod))) }

func MIDPOINT(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MIDPOINT(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MIDPOINTLookback(optInTimePeriod int32) int32 {
	return int32(C.TA_MIDPOINT_Lookback(ci(optInTimePeriod)))
}

func MA(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInMAType MAType, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MA(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), cma(optInMAType), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MALookback(optInTimePeriod int32, optInMAType MAType) int32 {
	return int32(C.TA_MA_Lookback(ci(optInTimePeriod), cma(optInMAType)))
}

func BBANDS(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInNbDevUp, optInNbDevDn float64, optInMAType MAType,
	outBegIdx, outNBElement *int32, outRealUpperBand, outRealMiddleBand, outRealLowerBand []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outRealUpperBand, outRealMiddleBand, outRealLowerBand); rc != Success {
		return rc
	}
	return RetCode(C.TA_BBANDS(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), C.double(optInNbDevUp), C.double(optInNbDevDn), cma(optInMAType),
		ip(outBegIdx), ip(outNBElement), dp(outRealUpperBand), dp(outRealMiddleBand), dp(outRealLowerBand)))
}

func BBANDSLookback(optInTimePeriod int32, optInNbDevUp, optInNbDevDn float64, optInMAType MAType) int32 {
	return int32(C.TA_BBANDS_Lookback(ci(optInTimePeriod), C.double(optInNbDevUp), C.double(optInNbDevDn), cma(optInMAType)))
}

func SAR(startIdx, endIdx int32, inHigh, inLow []float64, optInAcceleration, optInMaximum float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_SAR(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), C.double(optInAcceleration), C.double(optInMaximum),
		ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func SARLookback(optInAcceleration, optInMaximum float64) int32 {
	return int32(C.TA_SAR_Lookback(C.double(optInAcceleration), C.double(optInMaximum)))
}

// Momentum indicators.

func RSI(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_RSI(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func RSILookback(optInTimePeriod int32) int32 { return int32(C.TA_RSI_Lookback(ci(optInTimePeriod))) }

func MOM(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MOM(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MOMLookback(optInTimePeriod int32) int32 { return int32(C.TA_MOM_Lookback(ci(optInTimePeriod))) }

func ROC(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_ROC(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func ROCLookback(optInTimePeriod int32) int32 { return int32(C.TA_ROC_Lookback(ci(optInTimePeriod))) }

func CMO(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_CMO(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func CMOLookback(optInTimePeriod int32) int32 { return int32(C.TA_CMO_Lookback(ci(optInTimePeriod))) }

func TRIX(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_TRIX(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func TRIXLookback(optInTimePeriod int32) int32 { return int32(C.TA_TRIX_Lookback(ci(optInTimePeriod))) }

func MACD(startIdx, endIdx int32, inReal []float64, optInFastPeriod, optInSlowPeriod, optInSignalPeriod int32,
	outBegIdx, outNBElement *int32, outMACD, outMACDSignal, outMACDHist []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outMACD, outMACDSignal, outMACDHist); rc != Success {
		return rc
	}
	return RetCode(C.TA_MACD(ci(startIdx), ci(endIdx), dp(inReal), ci(optInFastPeriod), ci(optInSlowPeriod), ci(optInSignalPeriod),
		ip(outBegIdx), ip(outNBElement), dp(outMACD), dp(outMACDSignal), dp(outMACDHist)))
}

func MACDLookback(optInFastPeriod, optInSlowPeriod, optInSignalPeriod int32) int32 {
	return int32(C.TA_MACD_Lookback(ci(optInFastPeriod), ci(optInSlowPeriod), ci(optInSignalPeriod)))
}

func ADX(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_ADX(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func ADXLookback(optInTimePeriod int32) int32 { return int32(C.TA_ADX_Lookback(ci(optInTimePeriod))) }

func ADXR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_ADXR(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func ADXRLookback(optInTimePeriod int32) int32 { return int32(C.TA_ADXR_Lookback(ci(optInTimePeriod))) }

func PLUS_DI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_PLUS_DI(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func PLUS_DILookback(optInTimePeriod int32) int32 {
	return int32(C.TA_PLUS_DI_Lookback(ci(optInTimePeriod)))
}

func MINUS_DI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MINUS_DI(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MINUS_DILookback(optInTimePeriod int32) int32 {
	return int32(C.TA_MINUS_DI_Lookback(ci(optInTimePeriod)))
}

func PLUS_DM(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_PLUS_DM(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func PLUS_DMLookback(optInTimePeriod int32) int32 {
	return int32(C.TA_PLUS_DM_Lookback(ci(optInTimePeriod)))
}

func MINUS_DM(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MINUS_DM(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MINUS_DMLookback(optInTimePeriod int32) int32 {
	return int32(C.TA_MINUS_DM_Lookback(ci(optInTimePeriod)))
}

func CCI(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_CCI(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func CCILookback(optInTimePeriod int32) int32 { return int32(C.TA_CCI_Lookback(ci(optInTimePeriod))) }

func WILLR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_WILLR(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func WILLRLookback(optInTimePeriod int32) int32 { return int32(C.TA_WILLR_Lookback(ci(optInTimePeriod))) }

func AROON(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outAroonDown, outAroonUp []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outAroonDown, outAroonUp); rc != Success {
		return rc
	}
	return RetCode(C.TA_AROON(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outAroonDown), dp(outAroonUp)))
}

func AROONLookback(optInTimePeriod int32) int32 { return int32(C.TA_AROON_Lookback(ci(optInTimePeriod))) }

func AROONOSC(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_AROONOSC(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func AROONOSCLookback(optInTimePeriod int32) int32 {
	return int32(C.TA_AROONOSC_Lookback(ci(optInTimePeriod)))
}

func BOP(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inOpen, inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_BOP(ci(startIdx), ci(endIdx), dp(inOpen), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func BOPLookback() int32 { return int32(C.TA_BOP_Lookback()) }

func STOCH(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInFastKPeriod, optInSlowKPeriod int32, optInSlowKMAType MAType,
	optInSlowDPeriod int32, optInSlowDMAType MAType, outBegIdx, outNBElement *int32, outSlowK, outSlowD []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outSlowK, outSlowD); rc != Success {
		return rc
	}
	return RetCode(C.TA_STOCH(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose),
		ci(optInFastKPeriod), ci(optInSlowKPeriod), cma(optInSlowKMAType), ci(optInSlowDPeriod), cma(optInSlowDMAType),
		ip(outBegIdx), ip(outNBElement), dp(outSlowK), dp(outSlowD)))
}

func STOCHLookback(optInFastKPeriod, optInSlowKPeriod int32, optInSlowKMAType MAType, optInSlowDPeriod int32, optInSlowDMAType MAType) int32 {
	return int32(C.TA_STOCH_Lookback(ci(optInFastKPeriod), ci(optInSlowKPeriod), cma(optInSlowKMAType), ci(optInSlowDPeriod), cma(optInSlowDMAType)))
}

// Volatility indicators.

func ATR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_ATR(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func ATRLookback(optInTimePeriod int32) int32 { return int32(C.TA_ATR_Lookback(ci(optInTimePeriod))) }

func NATR(startIdx, endIdx int32, inHigh, inLow, inClose []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_NATR(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func NATRLookback(optInTimePeriod int32) int32 { return int32(C.TA_NATR_Lookback(ci(optInTimePeriod))) }

func TRANGE(startIdx, endIdx int32, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_TRANGE(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func TRANGELookback() int32 { return int32(C.TA_TRANGE_Lookback()) }

func STDDEV(startIdx, endIdx int32, inReal []float64, optInTimePeriod int32, optInNbDev float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_STDDEV(ci(startIdx), ci(endIdx), dp(inReal), ci(optInTimePeriod), C.double(optInNbDev), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func STDDEVLookback(optInTimePeriod int32, optInNbDev float64) int32 {
	return int32(C.TA_STDDEV_Lookback(ci(optInTimePeriod), C.double(optInNbDev)))
}

// Price transforms.

func TYPPRICE(startIdx, endIdx int32, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_TYPPRICE(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func TYPPRICELookback() int32 { return int32(C.TA_TYPPRICE_Lookback()) }

func MEDPRICE(startIdx, endIdx int32, inHigh, inLow []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MEDPRICE(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MEDPRICELookback() int32 { return int32(C.TA_MEDPRICE_Lookback()) }

func AVGPRICE(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inOpen, inHigh, inLow, inClose), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_AVGPRICE(ci(startIdx), ci(endIdx), dp(inOpen), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func AVGPRICELookback() int32 { return int32(C.TA_AVGPRICE_Lookback()) }

func MIDPRICE(startIdx, endIdx int32, inHigh, inLow []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MIDPRICE(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), ci(optInTimePeriod), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MIDPRICELookback(optInTimePeriod int32) int32 {
	return int32(C.TA_MIDPRICE_Lookback(ci(optInTimePeriod)))
}

// Volume indicators.

func OBV(startIdx, endIdx int32, inReal, inVolume []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inReal, inVolume), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_OBV(ci(startIdx), ci(endIdx), dp(inReal), dp(inVolume), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func OBVLookback() int32 { return int32(C.TA_OBV_Lookback()) }

func AD(startIdx, endIdx int32, inHigh, inLow, inClose, inVolume []float64, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose, inVolume), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_AD(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), dp(inVolume), ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func ADLookback() int32 { return int32(C.TA_AD_Lookback()) }

func MFI(startIdx, endIdx int32, inHigh, inLow, inClose, inVolume []float64, optInTimePeriod int32, outBegIdx, outNBElement *int32, outReal []float64) RetCode {
	if rc := guard(startIdx, endIdx, outBegIdx, outNBElement, in(inHigh, inLow, inClose, inVolume), outReal); rc != Success {
		return rc
	}
	return RetCode(C.TA_MFI(ci(startIdx), ci(endIdx), dp(inHigh), dp(inLow), dp(inClose), dp(inVolume), ci(optInTimePeriod),
		ip(outBegIdx), ip(outNBElement), dp(outReal)))
}

func MFILookback(optInTimePeriod int32) int32 { return int32(C.TA_MFI_Lookback(ci(optInTimePeriod))) }

// Pattern recognition.

func candleGuard(startIdx, endIdx int32, outBegIdx, outNBElement *int32, ins [][]float64, out []int32) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, ins...); rc != Success {
		return rc
	}
	return checkIntOutputs(startIdx, endIdx, out)
}

func intp(s []int32) *C.int { return (*C.int)(unsafe.Pointer(&s[0])) }

func CDLDOJI(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	if rc := candleGuard(startIdx, endIdx, outBegIdx, outNBElement, in(inOpen, inHigh, inLow, inClose), outInteger); rc != Success {
		return rc
	}
	return RetCode(C.TA_CDLDOJI(ci(startIdx), ci(endIdx), dp(inOpen), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), intp(outInteger)))
}

func CDLDOJILookback() int32 { return int32(C.TA_CDLDOJI_Lookback()) }

func CDLHAMMER(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	if rc := candleGuard(startIdx, endIdx, outBegIdx, outNBElement, in(inOpen, inHigh, inLow, inClose), outInteger); rc != Success {
		return rc
	}
	return RetCode(C.TA_CDLHAMMER(ci(startIdx), ci(endIdx), dp(inOpen), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), intp(outInteger)))
}

func CDLHAMMERLookback() int32 { return int32(C.TA_CDLHAMMER_Lookback()) }

func CDLENGULFING(startIdx, endIdx int32, inOpen, inHigh, inLow, inClose []float64, outBegIdx, outNBElement *int32, outInteger []int32) RetCode {
	if rc := candleGuard(startIdx, endIdx, outBegIdx, outNBElement, in(inOpen, inHigh, inLow, inClose), outInteger); rc != Success {
		return rc
	}
	return RetCode(C.TA_CDLENGULFING(ci(startIdx), ci(endIdx), dp(inOpen), dp(inHigh), dp(inLow), dp(inClose), ip(outBegIdx), ip(outNBElement), intp(outInteger)))
}

func CDLENGULFINGLookback() int32 { return int32(C.TA_CDLENGULFING_Lookback()) }
