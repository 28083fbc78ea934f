package bindings

import (
	"errors"
	"fmt"
	"math"
)

// RetCode mirrors TA_RetCode from ta_defs.h.
type RetCode int32

const (
	Success                RetCode = 0
	LibNotInitialize       RetCode = 1
	BadParam               RetCode = 2
	AllocErr               RetCode = 3
	GroupNotFound          RetCode = 4
	FuncNotFound           RetCode = 5
	InvalidHandle          RetCode = 6
	InvalidParamHolder     RetCode = 7
	InvalidParamHolderType RetCode = 8
	InvalidParamFunction   RetCode = 9
	InputNotAllInitialize  RetCode = 10
	OutputNotAllInitialize RetCode = 11
	OutOfRangeStartIndex   RetCode = 12
	OutOfRangeEndIndex     RetCode = 13
	InvalidListType        RetCode = 14
	BadObject              RetCode = 15
	NotSupported           RetCode = 16
	InternalError          RetCode = 5000
	UnknownErr             RetCode = 0xFFFF
)

var retCodeNames = map[RetCode]string{
	Success:                "TA_SUCCESS",
	LibNotInitialize:       "TA_LIB_NOT_INITIALIZE",
	BadParam:               "TA_BAD_PARAM",
	AllocErr:               "TA_ALLOC_ERR",
	GroupNotFound:          "TA_GROUP_NOT_FOUND",
	FuncNotFound:           "TA_FUNC_NOT_FOUND",
	InvalidHandle:          "TA_INVALID_HANDLE",
	InvalidParamHolder:     "TA_INVALID_PARAM_HOLDER",
	InvalidParamHolderType: "TA_INVALID_PARAM_HOLDER_TYPE",
	InvalidParamFunction:   "TA_INVALID_PARAM_FUNCTION",
	InputNotAllInitialize:  "TA_INPUT_NOT_ALL_INITIALIZE",
	OutputNotAllInitialize: "TA_OUTPUT_NOT_ALL_INITIALIZE",
	OutOfRangeStartIndex:   "TA_OUT_OF_RANGE_START_INDEX",
	OutOfRangeEndIndex:     "TA_OUT_OF_RANGE_END_INDEX",
	InvalidListType:        "TA_INVALID_LIST_TYPE",
	BadObject:              "TA_BAD_OBJECT",
	NotSupported:           "TA_NOT_SUPPORTED",
	InternalError:          "TA_INTERNAL_ERROR",
	UnknownErr:             "TA_UNKNOWN_ERR",
}

func (rc RetCode) String() string {
	if name, ok := retCodeNames[rc]; ok {
		return name
	}
	// TA-Lib encodes the failing function id in the low bits of internal errors.
	if rc > InternalError && rc < UnknownErr {
		return fmt.Sprintf("TA_INTERNAL_ERROR(%d)", int32(rc-InternalError))
	}
	return fmt.Sprintf("TA_RetCode(%d)", int32(rc))
}

// Sentinels understood by every TA function as "use the documented default".
const (
	IntegerDefault int32   = math.MinInt32
	RealDefault    float64 = -4e37
)

// MAType mirrors TA_MAType.
type MAType int32

const (
	MATypeSMA   MAType = 0
	MATypeEMA   MAType = 1
	MATypeWMA   MAType = 2
	MATypeDEMA  MAType = 3
	MATypeTEMA  MAType = 4
	MATypeTRIMA MAType = 5
	MATypeKAMA  MAType = 6
	MATypeMAMA  MAType = 7
	MATypeT3    MAType = 8
)

// FuncUnstID mirrors TA_FuncUnstId, the index into the unstable period table.
type FuncUnstID int32

const (
	UnstADX FuncUnstID = iota
	UnstADXR
	UnstATR
	UnstCMO
	UnstDX
	UnstEMA
	UnstHTDCPeriod
	UnstHTDCPhase
	UnstHTPhasor
	UnstHTSine
	UnstHTTrendline
	UnstHTTrendMode
	UnstKAMA
	UnstMAMA
	UnstMFI
	UnstMinusDI
	UnstMinusDM
	UnstNATR
	UnstPlusDI
	UnstPlusDM
	UnstRSI
	UnstStochRSI
	UnstT3
	UnstAll
	UnstNone FuncUnstID = -1
)

// Compatibility mirrors TA_Compatibility.
type Compatibility int32

const (
	CompatibilityDefault   Compatibility = 0
	CompatibilityMetastock Compatibility = 1
)

// ParamType describes the kind of data a parameter carries in the abstract
// interface.
type ParamType int32

const (
	ParamPrice ParamType = iota
	ParamReal
	ParamInteger
	ParamRealRange
	ParamIntegerRange
	ParamRealList
	ParamIntegerList
)

func (t ParamType) String() string {
	switch t {
	case ParamPrice:
		return "price"
	case ParamReal:
		return "real"
	case ParamInteger:
		return "integer"
	case ParamRealRange:
		return "real_range"
	case ParamIntegerRange:
		return "integer_range"
	case ParamRealList:
		return "real_list"
	case ParamIntegerList:
		return "integer_list"
	default:
		return "unknown"
	}
}

// ParamInfo is a flattened TA_InputParameterInfo, TA_OptInputParameterInfo or
// TA_OutputParameterInfo.
type ParamInfo struct {
	Name         string
	DisplayName  string
	Type         ParamType
	DefaultValue float64
	Hint         string
}

// FuncInfo is a flattened TA_FuncInfo.
type FuncInfo struct {
	Name      string
	Group     string
	Hint      string
	CamelCase string
	Inputs    []ParamInfo
	OptInputs []ParamInfo
	Outputs   []ParamInfo
}

// ErrNotBuilt reports that the requested feature needs the native TA-Lib
// library, which was not linked into the current binary.
var ErrNotBuilt = errors.New("talib/internal/bindings: native ta-lib not built")

// CodeError carries a non-success RetCode out of the calls that report
// failures as Go errors (the abstract catalogue).
type CodeError struct {
	Op   string
	Code RetCode
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

// Backend names reported by Backend.
const (
	BackendNative = "native"
	BackendPureGo = "purego"
)
