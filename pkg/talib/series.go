package talib

// Series is the valid part of an indicator's output. Values[0] belongs to
// input index Begin; everything before Begin lies inside the indicator's
// lookback window and has no value.
type Series struct {
	Begin  int
	Values []float64
}

// Len returns the number of computed values.
func (s Series) Len() int { return len(s.Values) }

// End returns the input index one past the last computed value.
func (s Series) End() int { return s.Begin + len(s.Values) }

// At returns the value aligned with input index i.
func (s Series) At(i int) (float64, bool) {
	if i < s.Begin || i >= s.End() {
		return 0, false
	}
	return s.Values[i-s.Begin], true
}

// Last returns the most recent value.
func (s Series) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// IntSeries is the integer counterpart of Series used by pattern recognition.
// Values are 100 (bullish), -100 (bearish) or 0.
type IntSeries struct {
	Begin  int
	Values []int
}

// Len returns the number of computed values.
func (s IntSeries) Len() int { return len(s.Values) }

// End returns the input index one past the last computed value.
func (s IntSeries) End() int { return s.Begin + len(s.Values) }

// At returns the value aligned with input index i.
func (s IntSeries) At(i int) (int, bool) {
	if i < s.Begin || i >= s.End() {
		return 0, false
	}
	return s.Values[i-s.Begin], true
}

// Float converts the series so it can share code paths with Series.
func (s IntSeries) Float() Series {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = float64(v)
	}
	return Series{Begin: s.Begin, Values: out}
}

// Bands is the result of BollingerBands.
type Bands struct {
	Upper, Middle, Lower Series
}

// MACD is the result of MovingAverageConvergenceDivergence.
type MACD struct {
	MACD, Signal, Hist Series
}

// Stochastic is the result of StochasticOscillator.
type Stochastic struct {
	SlowK, SlowD Series
}

// Aroon is the result of AroonIndicator.
type Aroon struct {
	Down, Up Series
}
