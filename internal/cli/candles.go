package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

// Candles is a column-oriented view of an OHLCV CSV file.
type Candles struct {
	Time   []string
	Inputs talib.Inputs
}

// Len returns the number of rows read.
func (c *Candles) Len() int { return len(c.Time) }

var columnAliases = map[string]string{
	"time":      "time",
	"date":      "time",
	"timestamp": "time",
	"open":      "open",
	"o":         "open",
	"high":      "high",
	"h":         "high",
	"low":       "low",
	"l":         "low",
	"close":     "close",
	"c":         "close",
	"volume":    "volume",
	"v":         "volume",
	"real":      "real",
	"value":     "real",
}

// ReadCandles parses a CSV file with a header row. Column names are matched
// case-insensitively; unknown columns are ignored and absent ones stay empty.
// Prices are parsed as decimals, so NaN and Inf are rejected.
func ReadCandles(r io.Reader) (*Candles, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("candles: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("candles: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, dup := cols[key]; dup {
			return nil, fmt.Errorf("candles: duplicate %s column", key)
		}
		cols[key] = i
	}
	if len(cols) == 0 || (len(cols) == 1 && hasKey(cols, "time")) {
		return nil, fmt.Errorf("candles: no price columns in header %q", strings.Join(header, ","))
	}

	c := &Candles{}
	series := map[string]*[]float64{
		"open":   &c.Inputs.Open,
		"high":   &c.Inputs.High,
		"low":    &c.Inputs.Low,
		"close":  &c.Inputs.Close,
		"volume": &c.Inputs.Volume,
		"real":   &c.Inputs.Real,
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("candles: %w", err)
		}
		ts := strconv.Itoa(line - 2)
		if i, ok := cols["time"]; ok {
			ts = rec[i]
		}
		c.Time = append(c.Time, ts)
		for key, dst := range series {
			i, ok := cols[key]
			if !ok {
				continue
			}
			d, err := decimal.NewFromString(strings.TrimSpace(rec[i]))
			if err != nil {
				return nil, fmt.Errorf("candles: line %d: %s: %w", line, key, err)
			}
			*dst = append(*dst, d.InexactFloat64())
		}
	}
	if c.Len() == 0 {
		return nil, errors.New("candles: no rows")
	}
	return c, nil
}

func hasKey(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}
