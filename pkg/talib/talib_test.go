package talib

import (
	"errors"
	"math"
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

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// candles returns a deterministic OHLCV series with high >= open, close >= low.
func candles(n int) (open, high, low, close, volume []float64) {
	open, high, low, close, volume = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		mid := 100 + 10*math.Sin(float64(i)/5) + float64(i)/10
		open[i] = mid - 0.5
		close[i] = mid + 0.5*math.Cos(float64(i))
		high[i] = mid + 2
		low[i] = mid - 2
		volume[i] = 1000 + float64(i%7)*100
	}
	return
}

func TestSimpleMovingAverage(t *testing.T) {
	s, err := SimpleMovingAverage(ramp(10), 3)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Begin)
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, 10, s.End())
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, s.Values, 1e-9)

	v, ok := s.At(2)
	require.True(t, ok)
	assert.InDelta(t, 2.0, v, 1e-9)
	_, ok = s.At(1)
	assert.False(t, ok)
	_, ok = s.At(10)
	assert.False(t, ok)

	last, ok := s.Last()
	require.True(t, ok)
	assert.InDelta(t, 9.0, last, 1e-9)
}

func TestDefaultPeriod(t *testing.T) {
	s, err := SimpleMovingAverage(ramp(40), 0)
	require.NoError(t, err)
	assert.Equal(t, 29, s.Begin)
	assert.Equal(t, 11, s.Len())
}

func TestNotEnoughData(t *testing.T) {
	s, err := SimpleMovingAverage(ramp(4), 10)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	_, ok := s.Last()
	assert.False(t, ok)
}

func TestInputErrors(t *testing.T) {
	_, err := SimpleMovingAverage(nil, 3)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	h, l, c := ramp(10), ramp(10), ramp(10)
	_, err = AverageTrueRange(h[:5], l, c, 3)
	assert.True(t, errors.Is(err, ErrInputLength))

	_, err = OnBalanceVolume(c, c[:9])
	assert.True(t, errors.Is(err, ErrInputLength))

	_, err = TypicalPrice(h, l, nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestBadParam(t *testing.T) {
	_, err := SimpleMovingAverage(ramp(10), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadParam))

	var taErr *Error
	require.True(t, errors.As(err, &taErr))
	assert.Equal(t, "SimpleMovingAverage", taErr.Op)
	assert.Equal(t, "TA_BAD_PARAM", taErr.Code.String())
	assert.Equal(t, "talib.SimpleMovingAverage: TA_BAD_PARAM", err.Error())

	_, err = RelativeStrengthIndex(ramp(10), -3)
	assert.True(t, errors.Is(err, ErrBadParam))

	_, err = MovingAverage(ramp(10), 3, MovingAverageType(42))
	assert.True(t, errors.Is(err, ErrBadParam))

	_, err = BollingerBands(ramp(10), 3, Float(-4e38), nil, DefaultMovingAverage)
	assert.True(t, errors.Is(err, ErrBadParam))
}

func TestOnBalanceVolume(t *testing.T) {
	s, err := OnBalanceVolume([]float64{1, 2, 3, 2}, []float64{10, 20, 30, 40})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Begin)
	assert.InDeltaSlice(t, []float64{10, 30, 60, 20}, s.Values, 1e-9)
}

func TestPriceTransforms(t *testing.T) {
	open := []float64{9, 10, 12}
	high := []float64{10, 12, 13}
	low := []float64{8, 9, 10}
	closes := []float64{9, 11, 11}

	med, err := MedianPrice(high, low)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 10.5, 11.5}, med.Values, 1e-9)

	typ, err := TypicalPrice(high, low, closes)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 32.0 / 3, 34.0 / 3}, typ.Values, 1e-9)

	avg, err := AveragePrice(open, high, low, closes)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9, 10.5, 11.5}, avg.Values, 1e-9)

	tr, err := TrueRange(high, low, closes)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Begin)
	assert.InDeltaSlice(t, []float64{3, 3}, tr.Values, 1e-9)
}

func TestMomentumAndRateOfChange(t *testing.T) {
	in := []float64{10, 11, 12, 15, 12}

	mom, err := Momentum(in, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, mom.Begin)
	assert.InDeltaSlice(t, []float64{2, 4, 0}, mom.Values, 1e-9)

	roc, err := RateOfChange(in, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, roc.Begin)
	assert.InDeltaSlice(t, []float64{10, 100.0 / 11, 25, -20}, roc.Values, 1e-9)
}

func TestConstantSeries(t *testing.T) {
	in := constant(30, 5)

	ema, err := ExponentialMovingAverage(in, 10)
	require.NoError(t, err)
	assert.Equal(t, 9, ema.Begin)
	for _, v := range ema.Values {
		assert.InDelta(t, 5.0, v, 1e-9)
	}

	bands, err := BollingerBands(in, 5, nil, nil, DefaultMovingAverage)
	require.NoError(t, err)
	assert.Equal(t, bands.Upper.Begin, bands.Lower.Begin)
	require.Equal(t, bands.Upper.Len(), bands.Middle.Len())
	for i := range bands.Middle.Values {
		assert.InDelta(t, 5.0, bands.Upper.Values[i], 1e-9)
		assert.InDelta(t, 5.0, bands.Middle.Values[i], 1e-9)
		assert.InDelta(t, 5.0, bands.Lower.Values[i], 1e-9)
	}

	sd, err := StandardDeviation(in, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, sd.Begin)
	for _, v := range sd.Values {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestMACDShape(t *testing.T) {
	in := ramp(60)
	m, err := MovingAverageConvergenceDivergence(in, 0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 33, m.MACD.Begin)
	assert.Equal(t, 27, m.MACD.Len())
	require.Equal(t, m.MACD.Len(), m.Signal.Len())
	require.Equal(t, m.MACD.Len(), m.Hist.Len())
	for i := range m.Hist.Values {
		assert.InDelta(t, m.MACD.Values[i]-m.Signal.Values[i], m.Hist.Values[i], 1e-9)
	}
}

func TestBollingerBandsDefaultsToEMA(t *testing.T) {
	in := []float64{1, 2, 3, 10, 2, 8, 4, 7, 1, 9}

	bands, err := BollingerBands(in, 5, nil, nil, DefaultMovingAverage)
	require.NoError(t, err)
	ema, err := ExponentialMovingAverage(in, 5)
	require.NoError(t, err)
	sma, err := SimpleMovingAverage(in, 5)
	require.NoError(t, err)

	assert.Equal(t, ema.Begin, bands.Middle.Begin)
	assert.InDeltaSlice(t, ema.Values, bands.Middle.Values, 1e-9)
	assert.InDelta(t, 3.6, bands.Middle.Values[0], 1e-9)
	assert.InDelta(t, 5.0+1.0/15, bands.Middle.Values[1], 1e-9)
	assert.NotEqual(t, sma.Values[1], bands.Middle.Values[1])

	explicit, err := BollingerBands(in, 5, nil, nil, SimpleMovingAverageType)
	require.NoError(t, err)
	assert.InDeltaSlice(t, sma.Values, explicit.Middle.Values, 1e-9)
}

func TestBandsOrdering(t *testing.T) {
	_, _, _, closes, _ := candles(80)
	b, err := BollingerBands(closes, 20, Float(2), Float(2), SimpleMovingAverageType)
	require.NoError(t, err)
	assert.Equal(t, 19, b.Middle.Begin)
	for i := range b.Middle.Values {
		assert.GreaterOrEqual(t, b.Upper.Values[i], b.Middle.Values[i])
		assert.LessOrEqual(t, b.Lower.Values[i], b.Middle.Values[i])
	}
}

func TestOscillatorRanges(t *testing.T) {
	_, high, low, closes, volume := candles(120)

	rsi, err := RelativeStrengthIndex(closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, rsi.Begin)
	for _, v := range rsi.Values {
		assert.True(t, v >= 0 && v <= 100, "rsi %v out of range", v)
	}

	willr, err := WilliamsR(high, low, closes, 14)
	require.NoError(t, err)
	assert.Equal(t, 13, willr.Begin)
	for _, v := range willr.Values {
		assert.True(t, v >= -100 && v <= 0, "willr %v out of range", v)
	}

	aroon, err := AroonIndicator(high, low, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, aroon.Up.Begin)
	for i := range aroon.Up.Values {
		assert.True(t, aroon.Up.Values[i] >= 0 && aroon.Up.Values[i] <= 100)
		assert.True(t, aroon.Down.Values[i] >= 0 && aroon.Down.Values[i] <= 100)
	}

	mfi, err := MoneyFlowIndex(high, low, closes, volume, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, mfi.Begin)

	stoch, err := StochasticOscillator(high, low, closes, StochasticSettings{})
	require.NoError(t, err)
	assert.Equal(t, 8, stoch.SlowK.Begin)
	assert.Equal(t, stoch.SlowK.Len(), stoch.SlowD.Len())
}

func TestSeriesEndAlignsWithInput(t *testing.T) {
	open, high, low, closes, volume := candles(120)
	in := Inputs{Open: open, High: high, Low: low, Close: closes, Volume: volume}

	for _, ind := range Indicators() {
		if ind.Group == groupPattern {
			continue
		}
		t.Run(ind.Name, func(t *testing.T) {
			out, err := ind.Compute(in, nil)
			require.NoError(t, err)
			require.Len(t, out, len(ind.Outputs))
			for _, s := range out {
				assert.Positive(t, s.Len())
				assert.Equal(t, len(closes), s.End())
			}
		})
	}
}

func TestMovingAverageType(t *testing.T) {
	for _, name := range []string{"sma", "EMA", "wma", "dema", "tema", "trima", "kama", "mama", "t3"} {
		mt, err := ParseMovingAverageType(name)
		require.NoError(t, err)
		assert.NotEqual(t, DefaultMovingAverage, mt)
	}

	mt, err := ParseMovingAverageType("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMovingAverage, mt)
	assert.Equal(t, "T3", TripleGeneralizedDoubleExponentialMovingAverageType.String())

	_, err = ParseMovingAverageType("hull")
	assert.True(t, errors.Is(err, ErrBadParam))

	s, err := MovingAverage(ramp(10), 1, ExponentialMovingAverageType)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Begin)
	assert.InDeltaSlice(t, ramp(10), s.Values, 1e-9)
}

func TestVersions(t *testing.T) {
	assert.NotEmpty(t, WrapperVersion())
	assert.NotEmpty(t, UpstreamVersion())
	assert.Contains(t, []string{BackendNative, BackendPureGo}, Backend())
}

func TestErrorUnwrap(t *testing.T) {
	tests := []struct {
		code int32
		want error
	}{
		{2, ErrBadParam},
		{12, ErrOutOfRange},
		{13, ErrOutOfRange},
		{16, ErrNotSupported},
		{1, ErrNotInitialized},
		{5, ErrUnknownIndicator},
		{5000, ErrInternal},
	}
	for _, tt := range tests {
		err := &Error{Op: "op", Code: RetCode(tt.code)}
		assert.True(t, errors.Is(err, tt.want), "code %d", tt.code)
	}
}
