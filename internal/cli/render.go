package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/talib-go/pkg/talib"
)

// Output formats accepted by compute.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var formats = []string{FormatTable, FormatCSV, FormatJSON, FormatYAML}

type record struct {
	Index  int                 `json:"index" yaml:"index"`
	Time   string              `json:"time,omitempty" yaml:"time,omitempty"`
	Values map[string]*float64 `json:"values" yaml:"values"`
}

// result aligns indicator outputs with the candle rows they belong to.
// A negative precision prints the shortest exact representation. Inf and NaN
// are printed as is in table and csv output and as null in json and yaml.
type result struct {
	times     []string
	out       []talib.NamedSeries
	begin     int
	end       int
	precision int
}

func newResult(c *Candles, out []talib.NamedSeries, precision int) result {
	r := result{times: c.Time, out: out, begin: c.Len(), end: c.Len(), precision: precision}
	for _, s := range out {
		if s.Len() > 0 && s.Begin < r.begin {
			r.begin = s.Begin
		}
	}
	return r
}

func (r result) rows() int { return r.end - r.begin }

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func (r result) format(v float64) string {
	if r.precision < 0 || !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(r.precision))
}

func (r result) round(v float64) float64 {
	if r.precision < 0 || !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(r.precision)).InexactFloat64()
}

func (r result) header() []string {
	h := []string{"index", "time"}
	for _, s := range r.out {
		h = append(h, s.Name)
	}
	return h
}

func (r result) cells(i int) []string {
	row := []string{strconv.Itoa(i), r.times[i]}
	for _, s := range r.out {
		if v, ok := s.At(i); ok {
			row = append(row, r.format(v))
		} else {
			row = append(row, "")
		}
	}
	return row
}

func (r result) records() []record {
	recs := make([]record, 0, r.rows())
	for i := r.begin; i < r.end; i++ {
		rec := record{Index: i, Time: r.times[i], Values: make(map[string]*float64, len(r.out))}
		for _, s := range r.out {
			if v, ok := s.At(i); ok && finite(v) {
				v = r.round(v)
				rec.Values[s.Name] = &v
			} else {
				rec.Values[s.Name] = nil
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

func render(w io.Writer, format string, r result) error {
	switch strings.ToLower(format) {
	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.ToUpper(strings.Join(r.header(), "\t")))
		for i := r.begin; i < r.end; i++ {
			fmt.Fprintln(tw, strings.Join(r.cells(i), "\t"))
		}
		return tw.Flush()
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(r.header()); err != nil {
			return err
		}
		for i := r.begin; i < r.end; i++ {
			if err := cw.Write(r.cells(i)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.records())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.records()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
}
