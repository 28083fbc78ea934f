// Package talib is a memory-safe Go API over the TA-Lib technical analysis
// library.
//
// Every indicator takes plain []float64 inputs and returns a Series whose
// Begin field is the index of the first input that has a value. Optional
// integer parameters use the zero value for "TA-Lib default"; optional reals
// are pointers (see Float). Failures are reported as *Error values that
// unwrap to the sentinels in this package:
//
//	sma, err := talib.SimpleMovingAverage(closes, 10)
//	if err != nil {
//	    return err
//	}
//	last, _ := sma.Last()
//
// By default the indicators are computed by a pure-Go engine. Building with
// -tags talib links the system libta_lib through cgo instead, which also
// enables candlestick patterns, unstable periods, Metastock compatibility and
// the function catalogue returned by Library.Functions.
package talib
