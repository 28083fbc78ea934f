package talib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hsiuhsiu/talib-go/internal/bindings"
)

// Compatibility selects how TA-Lib seeds some indicators.
type Compatibility int

const (
	CompatibilityDefault Compatibility = iota
	CompatibilityMetastock
)

// String returns "default" or "metastock".
func (c Compatibility) String() string {
	switch c {
	case CompatibilityDefault:
		return "default"
	case CompatibilityMetastock:
		return "metastock"
	default:
		return fmt.Sprintf("Compatibility(%d)", int(c))
	}
}

// ParseCompatibility accepts "default" or "metastock". Empty means default.
func ParseCompatibility(s string) (Compatibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return CompatibilityDefault, nil
	case "metastock":
		return CompatibilityMetastock, nil
	}
	return 0, fmt.Errorf("%w: compatibility %q", ErrBadParam, s)
}

// SetCompatibility changes the process-wide compatibility mode.
func SetCompatibility(c Compatibility) error {
	return codeError("SetCompatibility", bindings.SetCompatibility(bindings.Compatibility(c)))
}

// CurrentCompatibility returns the process-wide compatibility mode.
func CurrentCompatibility() Compatibility {
	return Compatibility(bindings.GetCompatibility())
}

var unstableIDs = map[string]bindings.FuncUnstID{
	"ADX":          bindings.UnstADX,
	"ADXR":         bindings.UnstADXR,
	"ATR":          bindings.UnstATR,
	"CMO":          bindings.UnstCMO,
	"DX":           bindings.UnstDX,
	"EMA":          bindings.UnstEMA,
	"HT_DCPERIOD":  bindings.UnstHTDCPeriod,
	"HT_DCPHASE":   bindings.UnstHTDCPhase,
	"HT_PHASOR":    bindings.UnstHTPhasor,
	"HT_SINE":      bindings.UnstHTSine,
	"HT_TRENDLINE": bindings.UnstHTTrendline,
	"HT_TRENDMODE": bindings.UnstHTTrendMode,
	"KAMA":         bindings.UnstKAMA,
	"MAMA":         bindings.UnstMAMA,
	"MFI":          bindings.UnstMFI,
	"MINUS_DI":     bindings.UnstMinusDI,
	"MINUS_DM":     bindings.UnstMinusDM,
	"NATR":         bindings.UnstNATR,
	"PLUS_DI":      bindings.UnstPlusDI,
	"PLUS_DM":      bindings.UnstPlusDM,
	"RSI":          bindings.UnstRSI,
	"STOCHRSI":     bindings.UnstStochRSI,
	"T3":           bindings.UnstT3,
	"ALL":          bindings.UnstAll,
}

// UnstableFunctions lists the names accepted by SetUnstablePeriod.
func UnstableFunctions() []string {
	names := make([]string, 0, len(unstableIDs))
	for name := range unstableIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unstableID(name string) (bindings.FuncUnstID, error) {
	id, ok := unstableIDs[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: no unstable period for %q", ErrBadParam, name)
	}
	return id, nil
}

// SetUnstablePeriod sets the number of extra leading values TA-Lib discards
// for an indicator with memory. "ALL" applies to every such indicator.
func SetUnstablePeriod(name string, period int) error {
	id, err := unstableID(name)
	if err != nil {
		return err
	}
	if period < 0 {
		return fmt.Errorf("%w: negative unstable period %d", ErrBadParam, period)
	}
	return codeError("SetUnstablePeriod", bindings.SetUnstablePeriod(id, int32(period)))
}

// UnstablePeriod returns the unstable period configured for name.
func UnstablePeriod(name string) (int, error) {
	id, err := unstableID(name)
	if err != nil {
		return 0, err
	}
	if id == bindings.UnstAll {
		return 0, fmt.Errorf("%w: ALL has no single unstable period", ErrBadParam)
	}
	return int(bindings.GetUnstablePeriod(id)), nil
}
