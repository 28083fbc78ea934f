package talib

import (
	"fmt"
	"strings"

	"github.com/hsiuhsiu/talib-go/internal/bindings"
)

// MovingAverageType selects the smoothing used by MovingAverage,
// BollingerBands and StochasticOscillator. The zero value asks for the
// function's default.
type MovingAverageType int

const (
	DefaultMovingAverage MovingAverageType = iota
	SimpleMovingAverageType
	ExponentialMovingAverageType
	WeightedMovingAverageType
	DoubleExponentialMovingAverageType
	TripleExponentialMovingAverageType
	TriangularMovingAverageType
	KaufmanAdaptiveMovingAverageType
	MesaAdaptiveMovingAverageType
	TripleGeneralizedDoubleExponentialMovingAverageType
)

var maTypeNames = []string{"default", "sma", "ema", "wma", "dema", "tema", "trima", "kama", "mama", "t3"}

// String returns the upper-case TA-Lib short name, e.g. EMA.
func (t MovingAverageType) String() string {
	if t < 0 || int(t) >= len(maTypeNames) {
		return fmt.Sprintf("MovingAverageType(%d)", int(t))
	}
	return strings.ToUpper(maTypeNames[t])
}

// ParseMovingAverageType accepts the TA-Lib short names (sma, ema, ..., t3)
// in any case. An empty string yields DefaultMovingAverage.
func ParseMovingAverageType(s string) (MovingAverageType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMovingAverage, nil
	}
	for i, name := range maTypeNames {
		if name == s {
			return MovingAverageType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: moving average type %q", ErrBadParam, s)
}

// raw translates the public value, passing TA_INTEGER_DEFAULT for the zero
// value. Out-of-range values are forwarded so TA-Lib reports TA_BAD_PARAM.
func (t MovingAverageType) raw() bindings.MAType {
	if t == DefaultMovingAverage {
		return bindings.MAType(bindings.IntegerDefault)
	}
	return bindings.MAType(t - 1)
}

// or substitutes def for the zero value.
func (t MovingAverageType) or(def MovingAverageType) MovingAverageType {
	if t == DefaultMovingAverage {
		return def
	}
	return t
}
