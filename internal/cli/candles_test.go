package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCandles(t *testing.T) {
	in := "Date, OPEN,High,low,Close,Volume,notes\n" +
		"2024-01-01,1,2,0.5,1.5,100,x\n" +
		"2024-01-02,1.5,3,1,2.5,200,y\n"

	c, err := ReadCandles(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, c.Time)
	assert.Equal(t, []float64{1, 1.5}, c.Inputs.Open)
	assert.Equal(t, []float64{2, 3}, c.Inputs.High)
	assert.Equal(t, []float64{0.5, 1}, c.Inputs.Low)
	assert.Equal(t, []float64{1.5, 2.5}, c.Inputs.Close)
	assert.Equal(t, []float64{100, 200}, c.Inputs.Volume)
	assert.Empty(t, c.Inputs.Real)
}

func TestReadCandlesWithoutTime(t *testing.T) {
	c, err := ReadCandles(strings.NewReader("close\n1\n2\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, c.Time)
	assert.Equal(t, []float64{1, 2, 3}, c.Inputs.Close)
	assert.Empty(t, c.Inputs.High)
}

func TestReadCandlesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "empty input"},
		{"header only", "time,close\n", "no rows"},
		{"no prices", "time,notes\n1,x\n", "no price columns"},
		{"duplicate", "close,c\n1,2\n", "duplicate close"},
		{"bad number", "close\n1\nabc\n", "line 3: close"},
		{"ragged", "time,close\n1,2\n3\n", "wrong number of fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCandles(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
