//go:build !cgo || !talib

package talib

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/talib-go/pkg/talib/logging"
)

func TestPureGoBackend(t *testing.T) {
	assert.Equal(t, BackendPureGo, Backend())
	assert.Equal(t, "go-talib", UpstreamVersion())
	assert.Equal(t, "v0.0.0-in-progress", WrapperVersion())
}

func TestOpenClose(t *testing.T) {
	lib, err := Open(Config{UnstablePeriods: map[string]int{"ALL": 0, "ema": 0}})
	require.NoError(t, err)
	require.NoError(t, lib.Close())
	assert.True(t, errors.Is(lib.Close(), ErrLibraryClosed))

	_, err = lib.Functions()
	assert.True(t, errors.Is(err, ErrLibraryClosed))
}

func TestOpenRejectsUnsupportedConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"metastock", Config{Compatibility: CompatibilityMetastock}, ErrNotSupported},
		{"unstable period", Config{UnstablePeriods: map[string]int{"EMA": 5}}, ErrNotSupported},
		{"unknown function", Config{UnstablePeriods: map[string]int{"SMA": 0}}, ErrBadParam},
		{"negative period", Config{UnstablePeriods: map[string]int{"RSI": -1}}, ErrBadParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestOpenLogsRejectedConfig(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Open(Config{Compatibility: CompatibilityMetastock, Logger: log})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "ta-lib initialised")
	assert.Contains(t, out, "ta-lib configuration rejected")
	assert.Contains(t, out, "TA_NOT_SUPPORTED")
	assert.NotContains(t, out, "ta-lib shutdown failed")
	assert.NotContains(t, out, "ta-lib configured")
}

func TestFunctionsNotBuilt(t *testing.T) {
	lib, err := Open(Config{})
	require.NoError(t, err)
	defer lib.Close()

	_, err = lib.Functions()
	assert.True(t, errors.Is(err, ErrNotBuilt))
}

func TestGlobals(t *testing.T) {
	require.NoError(t, SetCompatibility(CompatibilityDefault))
	assert.Equal(t, CompatibilityDefault, CurrentCompatibility())

	p, err := UnstablePeriod("rsi")
	require.NoError(t, err)
	assert.Zero(t, p)

	_, err = UnstablePeriod("ALL")
	assert.True(t, errors.Is(err, ErrBadParam))

	c, err := ParseCompatibility("MetaStock")
	require.NoError(t, err)
	assert.Equal(t, "metastock", c.String())
	_, err = ParseCompatibility("excel")
	assert.True(t, errors.Is(err, ErrBadParam))

	names := UnstableFunctions()
	assert.Contains(t, names, "ALL")
	assert.Contains(t, names, "T3")
	assert.IsIncreasing(t, names)
}

func TestPatternsNotSupported(t *testing.T) {
	open, high, low, closes, _ := candles(30)
	for name, f := range map[string]func(o, h, l, c []float64) (IntSeries, error){
		"doji":      Doji,
		"hammer":    Hammer,
		"engulfing": Engulfing,
	} {
		_, err := f(open, high, low, closes)
		assert.True(t, errors.Is(err, ErrNotSupported), name)
	}

	_, err := Doji(open, high[:10], low, closes)
	assert.True(t, errors.Is(err, ErrInputLength))
}
