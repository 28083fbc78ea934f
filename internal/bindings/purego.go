//go:build !cgo || !talib

package bindings

import (
	"sync"

	talib "github.com/markcheno/go-talib"
)

// The pure-Go backend reproduces the C calling conventions on top of
// github.com/markcheno/go-talib. Index validation, default resolution,
// lookback and the (outBegIdx, outNBElement) pair follow ta_func.h so that
// callers cannot tell which backend produced a result.

var (
	mu          sync.Mutex
	initialized bool
	unstable    [UnstAll]int32
	compat      = CompatibilityDefault
)

// Initialize mirrors TA_Initialize. It can be called more than once.
func Initialize() RetCode {
	mu.Lock()
	initialized = true
	mu.Unlock()
	return Success
}

// Shutdown mirrors TA_Shutdown.
func Shutdown() RetCode {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		return LibNotInitialize
	}
	initialized = false
	return Success
}

// Version identifies the computation engine.
func Version() string { return "go-talib" }

// Backend reports which implementation is linked.
func Backend() string { return BackendPureGo }

// SetUnstablePeriod mirrors TA_SetUnstablePeriod. go-talib has no unstable
// period support, so only zero is accepted.
func SetUnstablePeriod(id FuncUnstID, period int32) RetCode {
	if id < 0 || id > UnstAll {
		return BadParam
	}
	if period != 0 {
		return NotSupported
	}
	mu.Lock()
	defer mu.Unlock()
	if id == UnstAll {
		unstable = [UnstAll]int32{}
		return Success
	}
	unstable[id] = period
	return Success
}

// GetUnstablePeriod mirrors TA_GetUnstablePeriod.
func GetUnstablePeriod(id FuncUnstID) int32 {
	if id < 0 || id >= UnstAll {
		return 0
	}
	mu.Lock()
	defer mu.Unlock()
	return unstable[id]
}

// SetCompatibility mirrors TA_SetCompatibility. Only the default mode is
// available without the native library.
func SetCompatibility(c Compatibility) RetCode {
	switch c {
	case CompatibilityDefault:
		mu.Lock()
		compat = c
		mu.Unlock()
		return Success
	case CompatibilityMetastock:
		return NotSupported
	default:
		return BadParam
	}
}

// GetCompatibility mirrors TA_GetCompatibility.
func GetCompatibility() Compatibility {
	mu.Lock()
	defer mu.Unlock()
	return compat
}

// Groups, Functions and FuncInfo need ta_abstract.h.
func Groups() ([]string, error) { return nil, ErrNotBuilt }

func Functions(string) ([]string, error) { return nil, ErrNotBuilt }

func GetFuncInfo(string) (FuncInfo, error) { return FuncInfo{}, ErrNotBuilt }

// run evaluates compute over the window TA-Lib reads for [startIdx, endIdx]
// and copies the valid part of each result into outs. compute receives the
// half-open input window [lo, hi); its results are indexed from lo.
func run(startIdx, endIdx, lookback int32, outBegIdx, outNBElement *int32, compute func(lo, hi int) [][]float64, outs ...[]float64) (rc RetCode) {
	*outBegIdx, *outNBElement = 0, 0
	if lookback < 0 {
		return BadParam
	}
	first := max(startIdx, lookback)
	if first > endIdx {
		return Success
	}

	defer func() {
		if r := recover(); r != nil {
			*outBegIdx, *outNBElement = 0, 0
			rc = InternalError
		}
	}()

	res := compute(int(first-lookback), int(endIdx)+1)
	n := int(endIdx-first) + 1
	for i, out := range outs {
		copy(out[:n], res[i][lookback:int(lookback)+n])
	}
	*outBegIdx, *outNBElement = first, int32(n)
	return Success
}

func notSupported(outBegIdx, outNBElement *int32) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	return NotSupported
}

func goMA(t MAType) talib.MaType { return talib.MaType(t) }

func maLookback(period int32, t MAType) int32 {
	if period <= 1 {
		return 0
	}
	switch t {
	case MATypeDEMA:
		return 2 * (period - 1)
	case MATypeTEMA:
		return 3 * (period - 1)
	case MATypeKAMA:
		return period
	case MATypeMAMA:
		return 32
	case MATypeT3:
		return 6 * (period - 1)
	default:
		return period - 1
	}
}

// realPeriod covers the TA_<NAME>(inReal, optInTimePeriod) -> outReal shape.
func realPeriod(startIdx, endIdx int32, in []float64, v int32, p intParam, lookback func(int32) int32,
	fn func([]float64, int) []float64, outBegIdx, outNBElement *int32, out []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, in); rc != Success {
		return rc
	}
	period, ok := p.resolve(v)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, out); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, lookback(period), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{fn(in[lo:hi], int(period))}
	}, out)
}

// hlcPeriod covers TA_<NAME>(inHigh, inLow, inClose, optInTimePeriod) -> outReal.
func hlcPeriod(startIdx, endIdx int32, high, low, close []float64, v int32, p intParam, lookback func(int32) int32,
	fn func(h, l, c []float64, period int) []float64, outBegIdx, outNBElement *int32, out []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, high, low, close); rc != Success {
		return rc
	}
	period, ok := p.resolve(v)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, out); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, lookback(period), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{fn(high[lo:hi], low[lo:hi], close[lo:hi], int(period))}
	}, out)
}

// hlPeriod covers TA_<NAME>(inHigh, inLow, optInTimePeriod) -> outReal.
func hlPeriod(startIdx, endIdx int32, high, low []float64, v int32, p intParam, lookback func(int32) int32,
	fn func(h, l []float64, period int) []float64, outBegIdx, outNBElement *int32, out []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, high, low); rc != Success {
		return rc
	}
	period, ok := p.resolve(v)
	if !ok {
		return BadParam
	}
	if rc := checkOutputs(startIdx, endIdx, out); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, lookback(period), outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		return [][]float64{fn(high[lo:hi], low[lo:hi], int(period))}
	}, out)
}

// prices covers the parameterless shapes: any number of inputs, one output.
func prices(startIdx, endIdx, lookback int32, ins [][]float64, fn func(ins [][]float64) []float64,
	outBegIdx, outNBElement *int32, out []float64) RetCode {
	*outBegIdx, *outNBElement = 0, 0
	if rc := checkRange(startIdx, endIdx); rc != Success {
		return rc
	}
	if rc := checkInputs(endIdx, ins...); rc != Success {
		return rc
	}
	if rc := checkOutputs(startIdx, endIdx, out); rc != Success {
		return rc
	}
	return run(startIdx, endIdx, lookback, outBegIdx, outNBElement, func(lo, hi int) [][]float64 {
		window := make([][]float64, len(ins))
		for i, in := range ins {
			window[i] = in[lo:hi]
		}
		return [][]float64{fn(window)}
	}, out)
}
