package bindings

// Upper bound TA-Lib places on real-valued optional inputs.
const realLimit = 3e37

// checkRange applies the index validation every TA function starts with.
func checkRange(startIdx, endIdx int32) RetCode {
	if startIdx < 0 {
		return OutOfRangeStartIndex
	}
	if endIdx < 0 || endIdx < startIdx {
		return OutOfRangeEndIndex
	}
	return Success
}

// checkInputs stands in for the NULL pointer checks of the C API: every input
// must cover [0, endIdx].
func checkInputs(endIdx int32, ins ...[]float64) RetCode {
	for _, in := range ins {
		if len(in) <= int(endIdx) {
			return BadParam
		}
	}
	return Success
}

// checkOutputs makes sure the caller-provided buffers can hold the largest
// result TA-Lib may write for [startIdx, endIdx].
func checkOutputs(startIdx, endIdx int32, outs ...[]float64) RetCode {
	need := int(endIdx-startIdx) + 1
	for _, out := range outs {
		if len(out) < need {
			return BadParam
		}
	}
	return Success
}

func checkIntOutputs(startIdx, endIdx int32, outs ...[]int32) RetCode {
	need := int(endIdx-startIdx) + 1
	for _, out := range outs {
		if len(out) < need {
			return BadParam
		}
	}
	return Success
}

// intParam describes an integer optional input: its default and valid range.
type intParam struct {
	def, min, max int32
}

func (p intParam) resolve(v int32) (int32, bool) {
	if v == IntegerDefault {
		return p.def, true
	}
	if v < p.min || v > p.max {
		return 0, false
	}
	return v, true
}

// realParam describes a real optional input.
type realParam struct {
	def, min, max float64
}

func (p realParam) resolve(v float64) (float64, bool) {
	if v == RealDefault {
		return p.def, true
	}
	if v < p.min || v > p.max {
		return 0, false
	}
	return v, true
}

func resolveMAType(v MAType) (MAType, bool) {
	if int32(v) == IntegerDefault {
		return MATypeSMA, true
	}
	if v < MATypeSMA || v > MATypeT3 {
		return 0, false
	}
	return v, true
}

var (
	period30From2 = intParam{def: 30, min: 2, max: 100000}
	period30From1 = intParam{def: 30, min: 1, max: 100000}
	period14From2 = intParam{def: 14, min: 2, max: 100000}
	period14From1 = intParam{def: 14, min: 1, max: 100000}
	period10From1 = intParam{def: 10, min: 1, max: 100000}
	period5From2  = intParam{def: 5, min: 2, max: 100000}

	devParam = realParam{def: 2, min: -realLimit, max: realLimit}
)
