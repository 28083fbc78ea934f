package talib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ind, err := Lookup(" sma ")
	require.NoError(t, err)
	assert.Equal(t, "SMA", ind.Name)
	assert.Equal(t, "SimpleMovingAverage", ind.Func)
	assert.Equal(t, []string{"real"}, ind.Outputs)

	_, err = Lookup("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownIndicator))
}

func TestComputeWithParams(t *testing.T) {
	ind, err := Lookup("SMA")
	require.NoError(t, err)

	out, err := ind.Compute(Inputs{Real: ramp(10)}, Params{"Period": "3"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "real", out[0].Name)
	assert.Equal(t, 2, out[0].Begin)
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, out[0].Values, 1e-9)
}

func TestComputeRealFallsBackToClose(t *testing.T) {
	ind, err := Lookup("EMA")
	require.NoError(t, err)

	out, err := ind.Compute(Inputs{Close: constant(12, 3)}, Params{"period": "4"})
	require.NoError(t, err)
	assert.Equal(t, 3, out[0].Begin)
	for _, v := range out[0].Values {
		assert.InDelta(t, 3.0, v, 1e-9)
	}
}

func TestComputeMultipleOutputs(t *testing.T) {
	ind, err := Lookup("bbands")
	require.NoError(t, err)

	out, err := ind.Compute(Inputs{Real: constant(20, 5)}, Params{"ma_type": "sma", "nbdev_up": "1.5"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "upper", out[0].Name)
	assert.Equal(t, "middle", out[1].Name)
	assert.Equal(t, "lower", out[2].Name)
	assert.Equal(t, 4, out[1].Begin)
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name   string
		ind    string
		in     Inputs
		params Params
		want   error
	}{
		{"unknown param", "SMA", Inputs{Real: ramp(10)}, Params{"length": "3"}, ErrBadParam},
		{"duplicate param by case", "SMA", Inputs{Real: ramp(10)}, Params{"period": "3", "PERIOD": "4"}, ErrBadParam},
		{"bad int", "SMA", Inputs{Real: ramp(10)}, Params{"period": "three"}, ErrBadParam},
		{"bad real", "BBANDS", Inputs{Real: ramp(10)}, Params{"nbdev_up": "wide"}, ErrBadParam},
		{"bad ma type", "MA", Inputs{Real: ramp(10)}, Params{"ma_type": "hull"}, ErrBadParam},
		{"out of range period", "RSI", Inputs{Real: ramp(10)}, Params{"period": "1"}, ErrBadParam},
		{"missing input", "ATR", Inputs{High: ramp(10), Low: ramp(10)}, nil, ErrEmptyInput},
		{"short input", "OBV", Inputs{Close: ramp(10), Volume: ramp(4)}, nil, ErrInputLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind, err := Lookup(tt.ind)
			require.NoError(t, err)
			_, err = ind.Compute(tt.in, tt.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestComputeParamNamesIgnoreCase(t *testing.T) {
	ind, err := Lookup("SMA")
	require.NoError(t, err)

	upper, err := ind.Compute(Inputs{Real: ramp(10)}, Params{"PERIOD": "4"})
	require.NoError(t, err)
	lower, err := ind.Compute(Inputs{Real: ramp(10)}, Params{"period": "4"})
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	assert.Equal(t, 3, upper[0].Begin)

	_, err = ind.Compute(Inputs{Real: ramp(10)}, Params{"Period": "3", "period": "3"})
	require.ErrorIs(t, err, ErrBadParam)
	assert.Contains(t, err.Error(), "given twice")
}

func TestRegistryShape(t *testing.T) {
	all := Indicators()
	assert.Len(t, all, 43)

	seen := map[string]bool{}
	for i, ind := range all {
		assert.False(t, seen[ind.Name], "duplicate %s", ind.Name)
		seen[ind.Name] = true
		if i > 0 {
			assert.Less(t, all[i-1].Name, ind.Name)
		}
		assert.NotEmpty(t, ind.Inputs, ind.Name)
		assert.NotEmpty(t, ind.Outputs, ind.Name)
		assert.Contains(t, Groups(), ind.Group)
		for _, p := range ind.Params {
			assert.NotEmpty(t, p.Default, "%s.%s", ind.Name, p.Name)
		}
	}

	assert.Equal(t, []string{
		"Momentum Indicators",
		"Overlap Studies",
		"Pattern Recognition",
		"Price Transform",
		"Volatility Indicators",
		"Volume Indicators",
	}, Groups())
}

func TestParamKindString(t *testing.T) {
	assert.Equal(t, "integer", ParamInt.String())
	assert.Equal(t, "real", ParamReal.String())
	assert.Equal(t, "ma_type", ParamMAType.String())
}
