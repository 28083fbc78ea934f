//go:build !cgo || !talib

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

func TestPureGoRejectsNativeFeatures(t *testing.T) {
	_, _, err := run(t, "", "functions", "--native")
	require.Error(t, err)
	assert.True(t, errors.Is(err, talib.ErrNotBuilt))

	_, _, err = run(t, rampCSV, "--unstable", "EMA=5", "compute", "EMA", "-i", "-")
	assert.True(t, errors.Is(err, talib.ErrNotSupported))

	_, _, err = run(t, rampCSV, "--compat", "metastock", "compute", "EMA", "-i", "-")
	assert.True(t, errors.Is(err, talib.ErrNotSupported))
}
