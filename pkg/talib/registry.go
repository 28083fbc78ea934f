package talib

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// InputKind names one of the price series an indicator reads.
type InputKind string

const (
	InputReal   InputKind = "real"
	InputOpen   InputKind = "open"
	InputHigh   InputKind = "high"
	InputLow    InputKind = "low"
	InputClose  InputKind = "close"
	InputVolume InputKind = "volume"
)

// ParamKind is the type of an optional input.
type ParamKind int

const (
	ParamInt ParamKind = iota
	ParamReal
	ParamMAType
)

// String returns integer, real or ma_type.
func (k ParamKind) String() string {
	switch k {
	case ParamInt:
		return "integer"
	case ParamReal:
		return "real"
	case ParamMAType:
		return "ma_type"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Param describes an optional input of a registered indicator.
type Param struct {
	Name    string
	Kind    ParamKind
	Default string
}

// Inputs carries the price data handed to Indicator.Compute. Real falls back
// to Close when empty.
type Inputs struct {
	Real   []float64
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

func (in Inputs) get(k InputKind) []float64 {
	switch k {
	case InputReal:
		if len(in.Real) > 0 {
			return in.Real
		}
		return in.Close
	case InputOpen:
		return in.Open
	case InputHigh:
		return in.High
	case InputLow:
		return in.Low
	case InputClose:
		return in.Close
	case InputVolume:
		return in.Volume
	default:
		return nil
	}
}

// Params holds optional inputs by name in textual form, as they arrive from
// flags or configuration files. Missing entries use the TA-Lib default.
type Params map[string]string

// NamedSeries is one output of Indicator.Compute.
type NamedSeries struct {
	Name string
	Series
}

// Indicator describes a wrapped TA function and computes it from Inputs.
type Indicator struct {
	Name    string // TA-Lib name, e.g. BBANDS
	Func    string // Go function name, e.g. BollingerBands
	Group   string
	Hint    string
	Inputs  []InputKind
	Params  []Param
	Outputs []string

	run func(in Inputs, a args) ([]Series, error)
}

// Compute parses p, checks that every input the indicator reads is present
// and returns the outputs in the order of ind.Outputs.
func (ind *Indicator) Compute(in Inputs, p Params) ([]NamedSeries, error) {
	a, err := ind.parse(p)
	if err != nil {
		return nil, err
	}
	for _, k := range ind.Inputs {
		if len(in.get(k)) == 0 {
			return nil, fmt.Errorf("talib.%s: %w: missing %s", ind.Func, ErrEmptyInput, k)
		}
	}
	res, err := ind.run(in, a)
	if err != nil {
		return nil, err
	}
	out := make([]NamedSeries, len(res))
	for i, s := range res {
		out[i] = NamedSeries{Name: ind.Outputs[i], Series: s}
	}
	return out, nil
}

type args struct {
	ints  map[string]int
	reals map[string]*float64
	mas   map[string]MovingAverageType
}

func (a args) i(name string) int { return a.ints[name] }

func (a args) f(name string) *float64 { return a.reals[name] }

func (a args) ma(name string) MovingAverageType { return a.mas[name] }

func (ind *Indicator) parse(p Params) (args, error) {
	a := args{ints: map[string]int{}, reals: map[string]*float64{}, mas: map[string]MovingAverageType{}}
	given := map[string]string{}
	for name, raw := range p {
		param, ok := ind.param(name)
		if !ok {
			return a, fmt.Errorf("talib.%s: %w: unknown parameter %q", ind.Func, ErrBadParam, name)
		}
		if prev, dup := given[param.Name]; dup {
			return a, fmt.Errorf("talib.%s: %w: parameter %s given twice (%q and %q)", ind.Func, ErrBadParam, param.Name, prev, name)
		}
		given[param.Name] = name
		raw = strings.TrimSpace(raw)
		switch param.Kind {
		case ParamInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return a, fmt.Errorf("talib.%s: %w: %s=%q is not an integer", ind.Func, ErrBadParam, name, raw)
			}
			a.ints[param.Name] = v
		case ParamReal:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return a, fmt.Errorf("talib.%s: %w: %s=%q is not a number", ind.Func, ErrBadParam, name, raw)
			}
			a.reals[param.Name] = Float(v)
		case ParamMAType:
			v, err := ParseMovingAverageType(raw)
			if err != nil {
				return a, fmt.Errorf("talib.%s: %w", ind.Func, err)
			}
			a.mas[param.Name] = v
		}
	}
	return a, nil
}

func (ind *Indicator) param(name string) (Param, bool) {
	for _, p := range ind.Params {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// Lookup returns the indicator registered under the TA-Lib name (any case).
func Lookup(name string) (*Indicator, error) {
	ind, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	return ind, nil
}

// Indicators returns every registered indicator sorted by name.
func Indicators() []*Indicator {
	out := make([]*Indicator, len(indicators))
	copy(out, indicators)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Groups returns the distinct indicator groups, sorted.
func Groups() []string {
	seen := map[string]bool{}
	var out []string
	for _, ind := range indicators {
		if !seen[ind.Group] {
			seen[ind.Group] = true
			out = append(out, ind.Group)
		}
	}
	sort.Strings(out)
	return out
}

const (
	groupOverlap    = "Overlap Studies"
	groupMomentum   = "Momentum Indicators"
	groupVolatility = "Volatility Indicators"
	groupPrice      = "Price Transform"
	groupVolume     = "Volume Indicators"
	groupPattern    = "Pattern Recognition"
)

var (
	realIn = []InputKind{InputReal}
	hl     = []InputKind{InputHigh, InputLow}
	hlc    = []InputKind{InputHigh, InputLow, InputClose}
	ohlc   = []InputKind{InputOpen, InputHigh, InputLow, InputClose}
	hlcv   = []InputKind{InputHigh, InputLow, InputClose, InputVolume}
)

func period(def int) []Param {
	return []Param{{Name: "period", Kind: ParamInt, Default: strconv.Itoa(def)}}
}

func one(s Series, err error) ([]Series, error) {
	if err != nil {
		return nil, err
	}
	return []Series{s}, nil
}

func ints(s IntSeries, err error) ([]Series, error) {
	if err != nil {
		return nil, err
	}
	return []Series{s.Float()}, nil
}

// realPeriod registers the common single input, single period indicators.
func realPeriod(name, fn, group, hint string, def int, f func([]float64, int) (Series, error)) *Indicator {
	return &Indicator{
		Name: name, Func: fn, Group: group, Hint: hint,
		Inputs: realIn, Params: period(def), Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(f(in.get(InputReal), a.i("period"))) },
	}
}

func hlcPeriod(name, fn, group, hint string, def int, f func(h, l, c []float64, p int) (Series, error)) *Indicator {
	return &Indicator{
		Name: name, Func: fn, Group: group, Hint: hint,
		Inputs: hlc, Params: period(def), Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(f(in.High, in.Low, in.Close, a.i("period"))) },
	}
}

func hlPeriod(name, fn, group, hint string, def int, f func(h, l []float64, p int) (Series, error)) *Indicator {
	return &Indicator{
		Name: name, Func: fn, Group: group, Hint: hint,
		Inputs: hl, Params: period(def), Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(f(in.High, in.Low, a.i("period"))) },
	}
}

func candle(name, fn, hint string, f func(o, h, l, c []float64) (IntSeries, error)) *Indicator {
	return &Indicator{
		Name: name, Func: fn, Group: groupPattern, Hint: hint,
		Inputs: ohlc, Outputs: []string{"integer"},
		run: func(in Inputs, a args) ([]Series, error) { return ints(f(in.Open, in.High, in.Low, in.Close)) },
	}
}

var indicators = []*Indicator{
	realPeriod("SMA", "SimpleMovingAverage", groupOverlap, "Simple Moving Average", 30, SimpleMovingAverage),
	realPeriod("EMA", "ExponentialMovingAverage", groupOverlap, "Exponential Moving Average", 30, ExponentialMovingAverage),
	realPeriod("WMA", "WeightedMovingAverage", groupOverlap, "Weighted Moving Average", 30, WeightedMovingAverage),
	realPeriod("DEMA", "DoubleExponentialMovingAverage", groupOverlap, "Double Exponential Moving Average", 30, DoubleExponentialMovingAverage),
	realPeriod("TEMA", "TripleExponentialMovingAverage", groupOverlap, "Triple Exponential Moving Average", 30, TripleExponentialMovingAverage),
	realPeriod("TRIMA", "TriangularMovingAverage", groupOverlap, "Triangular Moving Average", 30, TriangularMovingAverage),
	realPeriod("KAMA", "KaufmanAdaptiveMovingAverage", groupOverlap, "Kaufman Adaptive Moving Average", 30, KaufmanAdaptiveMovingAverage),
	realPeriod("MIDPOINT", "MidPoint", groupOverlap, "MidPoint over period", 14, MidPoint),
	{
		Name: "MA", Func: "MovingAverage", Group: groupOverlap, Hint: "Moving average",
		Inputs: realIn,
		Params: []Param{
			{Name: "period", Kind: ParamInt, Default: "30"},
			{Name: "ma_type", Kind: ParamMAType, Default: "sma"},
		},
		Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(MovingAverage(in.get(InputReal), a.i("period"), a.ma("ma_type")))
		},
	},
	{
		Name: "BBANDS", Func: "BollingerBands", Group: groupOverlap, Hint: "Bollinger Bands",
		Inputs: realIn,
		Params: []Param{
			{Name: "period", Kind: ParamInt, Default: "5"},
			{Name: "nbdev_up", Kind: ParamReal, Default: "2"},
			{Name: "nbdev_dn", Kind: ParamReal, Default: "2"},
			{Name: "ma_type", Kind: ParamMAType, Default: "ema"},
		},
		Outputs: []string{"upper", "middle", "lower"},
		run: func(in Inputs, a args) ([]Series, error) {
			b, err := BollingerBands(in.get(InputReal), a.i("period"), a.f("nbdev_up"), a.f("nbdev_dn"), a.ma("ma_type"))
			if err != nil {
				return nil, err
			}
			return []Series{b.Upper, b.Middle, b.Lower}, nil
		},
	},
	hlPeriod("MIDPRICE", "MidPrice", groupOverlap, "Midpoint Price over period", 14, MidPrice),
	{
		Name: "SAR", Func: "ParabolicSAR", Group: groupOverlap, Hint: "Parabolic SAR",
		Inputs: hl,
		Params: []Param{
			{Name: "acceleration", Kind: ParamReal, Default: "0.02"},
			{Name: "maximum", Kind: ParamReal, Default: "0.2"},
		},
		Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(ParabolicSAR(in.High, in.Low, a.f("acceleration"), a.f("maximum")))
		},
	},

	realPeriod("RSI", "RelativeStrengthIndex", groupMomentum, "Relative Strength Index", 14, RelativeStrengthIndex),
	realPeriod("MOM", "Momentum", groupMomentum, "Momentum", 10, Momentum),
	realPeriod("ROC", "RateOfChange", groupMomentum, "Rate of change : ((price/prevPrice)-1)*100", 10, RateOfChange),
	realPeriod("CMO", "ChandeMomentumOscillator", groupMomentum, "Chande Momentum Oscillator", 14, ChandeMomentumOscillator),
	realPeriod("TRIX", "Trix", groupMomentum, "1-day Rate-Of-Change (ROC) of a Triple Smooth EMA", 30, Trix),
	{
		Name: "MACD", Func: "MovingAverageConvergenceDivergence", Group: groupMomentum, Hint: "Moving Average Convergence/Divergence",
		Inputs: realIn,
		Params: []Param{
			{Name: "fast_period", Kind: ParamInt, Default: "12"},
			{Name: "slow_period", Kind: ParamInt, Default: "26"},
			{Name: "signal_period", Kind: ParamInt, Default: "9"},
		},
		Outputs: []string{"macd", "signal", "hist"},
		run: func(in Inputs, a args) ([]Series, error) {
			m, err := MovingAverageConvergenceDivergence(in.get(InputReal), a.i("fast_period"), a.i("slow_period"), a.i("signal_period"))
			if err != nil {
				return nil, err
			}
			return []Series{m.MACD, m.Signal, m.Hist}, nil
		},
	},
	hlcPeriod("ADX", "AverageDirectionalMovementIndex", groupMomentum, "Average Directional Movement Index", 14, AverageDirectionalMovementIndex),
	hlcPeriod("ADXR", "AverageDirectionalMovementIndexRating", groupMomentum, "Average Directional Movement Index Rating", 14, AverageDirectionalMovementIndexRating),
	hlcPeriod("PLUS_DI", "PositiveDirectionalIndicator", groupMomentum, "Plus Directional Indicator", 14, PositiveDirectionalIndicator),
	hlcPeriod("MINUS_DI", "NegativeDirectionalIndicator", groupMomentum, "Minus Directional Indicator", 14, NegativeDirectionalIndicator),
	hlPeriod("PLUS_DM", "PositiveDirectionalMovement", groupMomentum, "Plus Directional Movement", 14, PositiveDirectionalMovement),
	hlPeriod("MINUS_DM", "NegativeDirectionalMovement", groupMomentum, "Minus Directional Movement", 14, NegativeDirectionalMovement),
	hlcPeriod("CCI", "CommodityChannelIndex", groupMomentum, "Commodity Channel Index", 14, CommodityChannelIndex),
	hlcPeriod("WILLR", "WilliamsR", groupMomentum, "Williams' %R", 14, WilliamsR),
	{
		Name: "AROON", Func: "AroonIndicator", Group: groupMomentum, Hint: "Aroon",
		Inputs: hl, Params: period(14), Outputs: []string{"down", "up"},
		run: func(in Inputs, a args) ([]Series, error) {
			r, err := AroonIndicator(in.High, in.Low, a.i("period"))
			if err != nil {
				return nil, err
			}
			return []Series{r.Down, r.Up}, nil
		},
	},
	hlPeriod("AROONOSC", "AroonOscillator", groupMomentum, "Aroon Oscillator", 14, AroonOscillator),
	{
		Name: "BOP", Func: "BalanceOfPower", Group: groupMomentum, Hint: "Balance Of Power",
		Inputs: ohlc, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(BalanceOfPower(in.Open, in.High, in.Low, in.Close))
		},
	},
	{
		Name: "STOCH", Func: "StochasticOscillator", Group: groupMomentum, Hint: "Stochastic",
		Inputs: hlc,
		Params: []Param{
			{Name: "fastk_period", Kind: ParamInt, Default: "5"},
			{Name: "slowk_period", Kind: ParamInt, Default: "3"},
			{Name: "slowk_ma", Kind: ParamMAType, Default: "sma"},
			{Name: "slowd_period", Kind: ParamInt, Default: "3"},
			{Name: "slowd_ma", Kind: ParamMAType, Default: "sma"},
		},
		Outputs: []string{"slowk", "slowd"},
		run: func(in Inputs, a args) ([]Series, error) {
			s, err := StochasticOscillator(in.High, in.Low, in.Close, StochasticSettings{
				FastK:   a.i("fastk_period"),
				SlowK:   a.i("slowk_period"),
				SlowKMA: a.ma("slowk_ma"),
				SlowD:   a.i("slowd_period"),
				SlowDMA: a.ma("slowd_ma"),
			})
			if err != nil {
				return nil, err
			}
			return []Series{s.SlowK, s.SlowD}, nil
		},
	},
	{
		Name: "MFI", Func: "MoneyFlowIndex", Group: groupMomentum, Hint: "Money Flow Index",
		Inputs: hlcv, Params: period(14), Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(MoneyFlowIndex(in.High, in.Low, in.Close, in.Volume, a.i("period")))
		},
	},

	hlcPeriod("ATR", "AverageTrueRange", groupVolatility, "Average True Range", 14, AverageTrueRange),
	hlcPeriod("NATR", "NormalizedAverageTrueRange", groupVolatility, "Normalized Average True Range", 14, NormalizedAverageTrueRange),
	{
		Name: "TRANGE", Func: "TrueRange", Group: groupVolatility, Hint: "True Range",
		Inputs: hlc, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(TrueRange(in.High, in.Low, in.Close)) },
	},
	{
		Name: "STDDEV", Func: "StandardDeviation", Group: groupVolatility, Hint: "Standard Deviation",
		Inputs: realIn,
		Params: []Param{
			{Name: "period", Kind: ParamInt, Default: "5"},
			{Name: "nbdev", Kind: ParamReal, Default: "1"},
		},
		Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(StandardDeviation(in.get(InputReal), a.i("period"), a.f("nbdev")))
		},
	},

	{
		Name: "TYPPRICE", Func: "TypicalPrice", Group: groupPrice, Hint: "Typical Price",
		Inputs: hlc, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(TypicalPrice(in.High, in.Low, in.Close)) },
	},
	{
		Name: "MEDPRICE", Func: "MedianPrice", Group: groupPrice, Hint: "Median Price",
		Inputs: hl, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(MedianPrice(in.High, in.Low)) },
	},
	{
		Name: "AVGPRICE", Func: "AveragePrice", Group: groupPrice, Hint: "Average Price",
		Inputs: ohlc, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(AveragePrice(in.Open, in.High, in.Low, in.Close))
		},
	},

	{
		Name: "OBV", Func: "OnBalanceVolume", Group: groupVolume, Hint: "On Balance Volume",
		Inputs: []InputKind{InputClose, InputVolume}, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) { return one(OnBalanceVolume(in.Close, in.Volume)) },
	},
	{
		Name: "AD", Func: "AccumulationDistribution", Group: groupVolume, Hint: "Chaikin A/D Line",
		Inputs: hlcv, Outputs: []string{"real"},
		run: func(in Inputs, a args) ([]Series, error) {
			return one(AccumulationDistribution(in.High, in.Low, in.Close, in.Volume))
		},
	},

	candle("CDLDOJI", "Doji", "Doji", Doji),
	candle("CDLHAMMER", "Hammer", "Hammer", Hammer),
	candle("CDLENGULFING", "Engulfing", "Engulfing Pattern", Engulfing),
}

var byName = func() map[string]*Indicator {
	m := make(map[string]*Indicator, len(indicators))
	for _, ind := range indicators {
		m[ind.Name] = ind
	}
	return m
}()
