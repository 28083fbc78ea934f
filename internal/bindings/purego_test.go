//go:build !cgo || !talib

package bindings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func TestSMAFullRange(t *testing.T) {
	in := ramp(10)
	out := make([]float64, len(in))
	var beg, nb int32

	rc := SMA(0, int32(len(in)-1), in, 3, &beg, &nb, out)
	require.Equal(t, Success, rc)
	assert.Equal(t, int32(2), beg)
	require.Equal(t, int32(8), nb)
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, out[:nb], 1e-9)
}

func TestSMAPartialRange(t *testing.T) {
	in := ramp(10)
	out := make([]float64, 5)
	var beg, nb int32

	rc := SMA(5, 9, in, 3, &beg, &nb, out)
	require.Equal(t, Success, rc)
	assert.Equal(t, int32(5), beg)
	require.Equal(t, int32(5), nb)
	assert.InDeltaSlice(t, []float64{5, 6, 7, 8, 9}, out, 1e-9)
}

func TestSMADefaultPeriod(t *testing.T) {
	in := ramp(40)
	out := make([]float64, len(in))
	var beg, nb int32

	rc := SMA(0, 39, in, IntegerDefault, &beg, &nb, out)
	require.Equal(t, Success, rc)
	assert.Equal(t, int32(29), beg)
	assert.Equal(t, int32(11), nb)
	assert.InDelta(t, 15.5, out[0], 1e-9)
}

func TestNotEnoughData(t *testing.T) {
	in := ramp(3)
	out := make([]float64, len(in))
	beg, nb := int32(7), int32(7)

	rc := SMA(0, 2, in, 5, &beg, &nb, out)
	require.Equal(t, Success, rc)
	assert.Zero(t, beg)
	assert.Zero(t, nb)
}

func TestValidation(t *testing.T) {
	in := ramp(10)
	out := make([]float64, len(in))
	var beg, nb int32

	tests := []struct {
		name string
		call func() RetCode
		want RetCode
	}{
		{"negative start", func() RetCode { return SMA(-1, 9, in, 3, &beg, &nb, out) }, OutOfRangeStartIndex},
		{"end before start", func() RetCode { return SMA(5, 4, in, 3, &beg, &nb, out) }, OutOfRangeEndIndex},
		{"period below minimum", func() RetCode { return SMA(0, 9, in, 1, &beg, &nb, out) }, BadParam},
		{"period above maximum", func() RetCode { return RSI(0, 9, in, 100001, &beg, &nb, out) }, BadParam},
		{"input too short", func() RetCode { return SMA(0, 10, in, 3, &beg, &nb, make([]float64, 11)) }, BadParam},
		{"output too short", func() RetCode { return SMA(0, 9, in, 3, &beg, &nb, out[:4]) }, BadParam},
		{"bad ma type", func() RetCode { return MA(0, 9, in, 3, MAType(9), &beg, &nb, out) }, BadParam},
		{"negative sar acceleration", func() RetCode { return SAR(0, 9, in, in, -1, RealDefault, &beg, &nb, out) }, BadParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.call())
			assert.Zero(t, nb)
		})
	}
}

func TestLookbacks(t *testing.T) {
	def := IntegerDefault
	defMA := MAType(IntegerDefault)

	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"SMA default", SMALookback(def), 29},
		{"SMA invalid", SMALookback(1), -1},
		{"EMA", EMALookback(10), 9},
		{"DEMA", DEMALookback(10), 18},
		{"TEMA", TEMALookback(10), 27},
		{"KAMA", KAMALookback(10), 10},
		{"TRIX", TRIXLookback(5), 13},
		{"RSI default", RSILookback(def), 14},
		{"MOM default", MOMLookback(def), 10},
		{"MA period one", MALookback(1, MATypeEMA), 0},
		{"MA T3", MALookback(5, MATypeT3), 24},
		{"BBANDS default", BBANDSLookback(def, RealDefault, RealDefault, defMA), 4},
		{"MACD default", MACDLookback(def, def, def), 33},
		{"MACD swapped", MACDLookback(26, 12, 9), 33},
		{"ATR", ATRLookback(14), 14},
		{"ATR period one", ATRLookback(1), 1},
		{"ADX", ADXLookback(14), 27},
		{"ADXR", ADXRLookback(14), 40},
		{"PLUS_DM", PLUS_DMLookback(14), 13},
		{"STOCH default", STOCHLookback(def, def, defMA, def, defMA), 8},
		{"STDDEV", STDDEVLookback(def, RealDefault), 4},
		{"SAR", SARLookback(RealDefault, RealDefault), 1},
		{"TRANGE", TRANGELookback(), 1},
		{"OBV", OBVLookback(), 0},
		{"CDLENGULFING", CDLENGULFINGLookback(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPriceTransforms(t *testing.T) {
	high := []float64{10, 12, 11}
	low := []float64{8, 9, 7}
	closes := []float64{9, 11, 10}
	out := make([]float64, 3)
	var beg, nb int32

	require.Equal(t, Success, MEDPRICE(0, 2, high, low, &beg, &nb, out))
	assert.Equal(t, int32(0), beg)
	assert.InDeltaSlice(t, []float64{9, 10.5, 9}, out[:nb], 1e-9)

	require.Equal(t, Success, TYPPRICE(0, 2, high, low, closes, &beg, &nb, out))
	assert.InDeltaSlice(t, []float64{9, 32.0 / 3, 28.0 / 3}, out[:nb], 1e-9)

	require.Equal(t, Success, TRANGE(0, 2, high, low, closes, &beg, &nb, out))
	assert.Equal(t, int32(1), beg)
	assert.InDeltaSlice(t, []float64{3, 4}, out[:nb], 1e-9)
}

func TestOBV(t *testing.T) {
	closes := []float64{1, 2, 3, 2}
	volume := []float64{10, 20, 30, 40}
	out := make([]float64, 4)
	var beg, nb int32

	require.Equal(t, Success, OBV(0, 3, closes, volume, &beg, &nb, out))
	assert.Equal(t, int32(0), beg)
	assert.InDeltaSlice(t, []float64{10, 30, 60, 20}, out[:nb], 1e-9)
}

func TestMultiOutputShapes(t *testing.T) {
	in := ramp(60)
	n := int32(len(in))
	a, b, c := make([]float64, n), make([]float64, n), make([]float64, n)
	var beg, nb int32

	require.Equal(t, Success, MACD(0, n-1, in, IntegerDefault, IntegerDefault, IntegerDefault, &beg, &nb, a, b, c))
	assert.Equal(t, int32(33), beg)
	assert.Equal(t, n-33, nb)
	for i := int32(0); i < nb; i++ {
		assert.InDelta(t, a[i]-b[i], c[i], 1e-9)
	}

	require.Equal(t, Success, BBANDS(0, n-1, in, 5, RealDefault, RealDefault, MATypeSMA, &beg, &nb, a, b, c))
	assert.Equal(t, int32(4), beg)
	for i := int32(0); i < nb; i++ {
		assert.GreaterOrEqual(t, a[i], b[i])
		assert.LessOrEqual(t, c[i], b[i])
	}
}

func TestCandlesNotSupported(t *testing.T) {
	in := ramp(20)
	out := make([]int32, len(in))
	var beg, nb int32

	assert.Equal(t, NotSupported, CDLDOJI(0, 19, in, in, in, in, &beg, &nb, out))
	assert.Equal(t, BadParam, CDLHAMMER(0, 19, in, in, in, in, &beg, &nb, out[:3]))
}

func TestGlobals(t *testing.T) {
	require.Equal(t, Success, Initialize())
	require.Equal(t, Success, Shutdown())
	assert.Equal(t, LibNotInitialize, Shutdown())

	assert.Equal(t, Success, SetUnstablePeriod(UnstEMA, 0))
	assert.Equal(t, NotSupported, SetUnstablePeriod(UnstEMA, 5))
	assert.Equal(t, BadParam, SetUnstablePeriod(FuncUnstID(99), 0))
	assert.Equal(t, Success, SetUnstablePeriod(UnstAll, 0))
	assert.Zero(t, GetUnstablePeriod(UnstRSI))

	assert.Equal(t, NotSupported, SetCompatibility(CompatibilityMetastock))
	assert.Equal(t, CompatibilityDefault, GetCompatibility())

	_, err := Groups()
	assert.True(t, errors.Is(err, ErrNotBuilt))
	assert.Equal(t, BackendPureGo, Backend())
}

func TestRunRecoversFromPanic(t *testing.T) {
	in := ramp(10)
	out := make([]float64, len(in))
	beg, nb := int32(7), int32(7)

	rc := run(0, 9, 2, &beg, &nb, func(lo, hi int) [][]float64 {
		_ = in[lo:hi]
		panic("index out of range")
	}, out)

	assert.Equal(t, InternalError, rc)
	assert.Zero(t, beg)
	assert.Zero(t, nb)
}

func TestRunShortResultIsInternalError(t *testing.T) {
	out := make([]float64, 10)
	var beg, nb int32

	rc := run(0, 9, 2, &beg, &nb, func(lo, hi int) [][]float64 {
		return [][]float64{make([]float64, 3)}
	}, out)

	assert.Equal(t, InternalError, rc)
	assert.Zero(t, beg)
	assert.Zero(t, nb)
}
